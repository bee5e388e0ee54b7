// Package lookup resolves and invokes the single-argument lookup functions
// named by enrichment descriptors.
//
// A lookup reference has the form "<Owner>.<method>", for example
// "DeptService.findNameById". The Registry maps each reference to a typed Go
// function, usually a method expression:
//
//	lookup.Register(reg, "DeptService", "findNameById", (*store.DeptService).FindNameByID)
//
// At call time the Invoker asks the Services registry for the live owner
// instance and calls the function on it with the column value.
package lookup
