// Package entity holds the rows the system module reads and the display
// fields enrichment fills in.
//
// Properties are exposed to the enrichment engine through explicit accessor
// bindings generated into accessors_gen.go:
//
//	smpe-admin gen accessors --pkg ./internal/entity --out internal/entity
//
// A property is named by its prop tag, else its json name, else the field
// name in lower camel case. Fields tagged prop:"-" get no accessors.
package entity
