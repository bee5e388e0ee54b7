package enrich

import (
	"maps"
	"slices"
)

// Descriptor declares one enrichment: read Column, pass it to the lookup
// named by Select, write the result into Property.
type Descriptor struct {
	// Column is the source column, usually snake_case ("dept_id").
	Column string `yaml:"column" json:"column"`
	// Property is the destination property ("deptName").
	Property string `yaml:"property" json:"property"`
	// Select is the lookup reference, "<Owner>.<method>".
	Select string `yaml:"select" json:"select"`
}

// String returns "column -> property via select".
func (d Descriptor) String() string {
	return d.Column + " -> " + d.Property + " via " + d.Select
}

// Declaration is the ordered descriptors attached to one query method.
type Declaration []Descriptor

// Declarations maps query method names to their declarations.
type Declarations map[string]Declaration

// Get returns the declaration for method, or nil.
func (ds Declarations) Get(method string) Declaration {
	return ds[method]
}

// Merge returns a new set where every method declared in other replaces the
// one in ds.
func (ds Declarations) Merge(other Declarations) Declarations {
	out := make(Declarations, len(ds)+len(other))
	maps.Copy(out, ds)
	maps.Copy(out, other)

	return out
}

// Methods returns the declared method names, sorted.
func (ds Declarations) Methods() []string {
	return slices.Sorted(maps.Keys(ds))
}
