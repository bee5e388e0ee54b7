// Package enrich populates display properties on query results.
//
// A query method declares, as data, which of its result columns should be
// resolved through which lookup function and into which property:
//
//	enrich.Declaration{
//		{Column: "dept_id", Property: "deptName", Select: "DeptService.findNameById"},
//	}
//
// After the query returns, the Dispatcher walks the result (a single entity,
// a slice of entities or a page) and the Engine applies every descriptor to
// every entity in order. Wrap turns this into a decorator around the query
// function itself.
//
// Enrichment is best effort. A failing (descriptor, entity) pair is reported
// to the Sink and skipped; the destination property keeps its previous value
// and nothing is returned to the caller.
package enrich
