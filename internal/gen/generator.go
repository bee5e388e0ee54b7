package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"strings"
	"text/template"

	"smpe-admin/internal/analyze"
	"smpe-admin/internal/common"
	"smpe-admin/internal/match"
)

// DefaultAccessorPkg is the import path of the accessor registry.
const DefaultAccessorPkg = "smpe-admin/internal/accessor"

// PropTag is the struct tag overriding a property name. prop:"-" skips the field.
const PropTag = "prop"

// ErrNoStructs is returned when a package has no exported structs to bind.
var ErrNoStructs = errors.New("no exported structs")

// Options configures accessor generation.
type Options struct {
	// PackageName of the generated file. Defaults to the analyzed package name.
	PackageName string
	// AccessorPkg is the import path of the accessor package.
	AccessorPkg string
	// Filename of the generated file.
	Filename string
	// FuncName is the name of the generated registration function.
	FuncName string
	// DebugDir receives the unformatted source when formatting fails.
	DebugDir string
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		AccessorPkg: DefaultAccessorPkg,
		Filename:    "accessors_gen.go",
		FuncName:    "RegisterAccessors",
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "accessors_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

type propertyData struct {
	Name  string
	Field string
	Type  string
}

type typeData struct {
	Name  string
	Props []propertyData
}

type templateData struct {
	PackageName   string
	FuncName      string
	AccessorAlias string
	StdImports    []importSpec
	Imports       []importSpec
	Types         []typeData
}

var accessorsTemplate = template.Must(
	template.New("accessors").
		Parse(`// Code generated by smpe-admin gen accessors. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .StdImports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
{{- if .StdImports}}
{{end}}
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// {{.FuncName}} binds the properties of every entity in this package.
func {{.FuncName}}(r *{{.AccessorAlias}}.Registry) {
{{- range $i, $t := .Types}}
{{- if $i}}
{{end}}
	{{$.AccessorAlias}}.Register(r,
{{- range $t.Props}}
		{{$.AccessorAlias}}.Field("{{.Name}}", func(e *{{$t.Name}}) {{.Type}} { return e.{{.Field}} }, func(e *{{$t.Name}}, v {{.Type}}) { e.{{.Field}} = v }),
{{- end}}
	)
{{- end}}
}
`))

// Accessors renders the accessor registration file for the structs of
// pkgPath found in graph.
func Accessors(graph *analyze.TypeGraph, pkgPath string, opts Options) (*GeneratedFile, error) {
	opts = withDefaults(opts)

	pkg, ok := graph.Packages[pkgPath]
	if !ok {
		return nil, fmt.Errorf("package %s not loaded", pkgPath)
	}

	if opts.PackageName == "" {
		opts.PackageName = pkg.Name
	}

	imports := newImportSet(pkgPath)
	data := &templateData{
		PackageName:   opts.PackageName,
		FuncName:      opts.FuncName,
		AccessorAlias: imports.add(opts.AccessorPkg, common.PkgAlias(opts.AccessorPkg)),
	}

	for _, info := range graph.Structs(pkgPath) {
		td, err := buildTypeData(info, imports)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", info.ID, err)
		}

		if len(td.Props) == 0 {
			continue
		}

		data.Types = append(data.Types, td)
	}

	if len(data.Types) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoStructs, pkgPath)
	}

	data.StdImports, data.Imports = imports.split()

	var buf bytes.Buffer
	if err := accessorsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if opts.DebugDir != "" {
			_ = writeDebugUnformatted(opts.DebugDir, opts.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: opts.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: opts.Filename,
		Content:  formatted,
	}, nil
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()

	if opts.AccessorPkg == "" {
		opts.AccessorPkg = def.AccessorPkg
	}

	if opts.Filename == "" {
		opts.Filename = def.Filename
	}

	if opts.FuncName == "" {
		opts.FuncName = def.FuncName
	}

	return opts
}

func buildTypeData(info *analyze.TypeInfo, imports *importSet) (typeData, error) {
	td := typeData{Name: info.ID.Name}
	seen := map[string]string{}

	for _, f := range info.Fields {
		if f.Embedded {
			continue
		}

		name, ok := PropertyName(f)
		if !ok {
			continue
		}

		if prev, dup := seen[name]; dup {
			return typeData{}, fmt.Errorf("fields %s and %s both bind property %q", prev, f.Name, name)
		}

		seen[name] = f.Name

		td.Props = append(td.Props, propertyData{
			Name:  name,
			Field: f.Name,
			Type:  types.TypeString(f.Type, imports.qualifier),
		})
	}

	return td, nil
}

// PropertyName returns the accessor property name of a field and whether
// the field is bound at all.
func PropertyName(f analyze.FieldInfo) (string, bool) {
	if f.HasTag(PropTag) {
		name := f.GetTag(PropTag)
		if name == "-" || name == "" {
			return "", false
		}

		return name, true
	}

	if name := f.JSONName(); name != "" {
		return name, true
	}

	return match.LowerCamel(f.Name), true
}

// importSet collects the imports of the generated file.
type importSet struct {
	self  string
	specs map[string]importSpec
	order []string
}

func newImportSet(self string) *importSet {
	return &importSet{self: self, specs: map[string]importSpec{}}
}

// add records pkgPath under name and returns the identifier to use.
func (s *importSet) add(pkgPath, name string) string {
	if spec, ok := s.specs[pkgPath]; ok {
		if spec.Alias != "" {
			return spec.Alias
		}

		return name
	}

	spec := importSpec{Path: pkgPath}
	if common.PkgAlias(pkgPath) != name {
		spec.Alias = name
	}

	s.specs[pkgPath] = spec
	s.order = append(s.order, pkgPath)

	return name
}

func (s *importSet) qualifier(pkg *types.Package) string {
	if pkg.Path() == s.self {
		return ""
	}

	return s.add(pkg.Path(), pkg.Name())
}

// split separates standard library imports from the rest.
func (s *importSet) split() (std, other []importSpec) {
	for _, p := range s.order {
		first, _, _ := strings.Cut(p, "/")
		if strings.Contains(first, ".") || p == DefaultAccessorPkg || strings.HasPrefix(p, modulePath(s.self)) {
			other = append(other, s.specs[p])
		} else {
			std = append(std, s.specs[p])
		}
	}

	return std, other
}

func modulePath(pkgPath string) string {
	first, _, _ := strings.Cut(pkgPath, "/")
	return first + "/"
}
