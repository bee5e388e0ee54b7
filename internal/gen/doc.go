// Package gen generates explicit accessor registrations for entity structs.
//
// Generation approach uses text/template + go/format. For every exported
// struct of a package it emits one accessor.Register call binding a typed
// getter and setter per exported field, so the enrichment engine never has
// to look fields up by name at runtime.
//
// Output is deterministic: types and fields follow source order.
package gen
