package analyze

import (
	"go/types"
	"reflect"
	"strings"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "smpe-admin/internal/entity"
	Name    string // e.g., "Job"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeInfo describes an exported named struct.
type TypeInfo struct {
	ID     TypeID      // Unique identifier
	Fields []FieldInfo // Exported fields in declaration order
	GoType types.Type  // The named go/types.Type
}

// Field returns the field with the given Go name.
func (t *TypeInfo) Field(name string) (FieldInfo, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldInfo{}, false
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     types.Type        // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// JSONName returns the JSON tag name, or "" when the tag is absent or "-".
func (f *FieldInfo) JSONName() string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds the structs of all loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported structs.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Structs returns the structs of a loaded package in source order.
func (g *TypeGraph) Structs(pkgPath string) []*TypeInfo {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	out := make([]*TypeInfo, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		out = append(out, g.Types[id])
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Types []TypeID // Exported structs in source order
}
