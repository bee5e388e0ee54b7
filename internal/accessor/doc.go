// Package accessor is the explicit registry of entity getters and setters.
//
// Entities are never inspected by name at runtime. Each entity type binds its
// properties once at start-up, either by hand or through the generated
// RegisterAccessors function of its package:
//
//	accessor.Register(r,
//		accessor.Field("deptId", func(e *Job) int64 { return e.DeptID }, func(e *Job, v int64) { e.DeptID = v }),
//		accessor.ReadOnly("name", (*Job).DisplayName),
//	)
//
// Lookups follow the get<Property> / set<Property> convention: FindGetter and
// FindSetter synthesize the accessor name from the property with its first
// letter upper-cased, so "deptName" and "DeptName" resolve to the same pair.
// Setters match their parameter type exactly; there is no coercion.
package accessor
