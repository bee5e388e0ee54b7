package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	dir   string
	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer resolving patterns relative to the
// current directory.
func NewAnalyzer() *Analyzer {
	return &Analyzer{graph: NewTypeGraph()}
}

// WithDir resolves package patterns relative to dir.
func (a *Analyzer) WithDir(dir string) *Analyzer {
	a.dir = dir
	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./internal/entity").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage records the exported structs of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	var names []*types.TypeName

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		if _, ok := typeName.Type().Underlying().(*types.Struct); !ok {
			continue
		}

		names = append(names, typeName)
	}

	// Scope names are sorted alphabetically; generated code follows the source.
	sort.SliceStable(names, func(i, j int) bool { return names[i].Pos() < names[j].Pos() })

	for _, tn := range names {
		info := &TypeInfo{
			ID:     TypeID{PkgPath: pkg.PkgPath, Name: tn.Name()},
			GoType: tn.Type(),
			Fields: structFields(tn.Type().Underlying().(*types.Struct)),
		}

		a.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// structFields extracts the exported fields of a struct type.
func structFields(st *types.Struct) []FieldInfo {
	var fields []FieldInfo

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		fields = append(fields, FieldInfo{
			Name:     field.Name(),
			Type:     field.Type(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}

	return fields
}

// GetStruct returns the TypeInfo for a struct by package path and name.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("struct %s not found", id)
	}

	return info, nil
}
