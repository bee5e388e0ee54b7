package mapping

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"smpe-admin/internal/accessor"
	"smpe-admin/internal/diagnostic"
	"smpe-admin/internal/enrich"
	"smpe-admin/internal/lookup"
	"smpe-admin/internal/match"
)

const maxSuggestions = 3

// Validate checks a declaration file. accessors and lookups may be nil, in
// which case only the structural checks run.
func Validate(f *File, accessors *accessor.Registry, lookups *lookup.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", f.Version), "", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Queries {
		q := &f.Queries[i]

		subject := q.Method
		if subject == "" {
			subject = fmt.Sprintf("queries[%d]", i)
			res.AddError("method_missing", "query method name is required", subject, "")
		} else if _, dup := seen[q.Method]; dup {
			res.AddError("duplicate_method", fmt.Sprintf("method %q declared more than once", q.Method), subject, "")
		}

		seen[q.Method] = struct{}{}

		var entityType reflect.Type

		if q.Entity != "" && accessors != nil {
			t, ok := accessors.TypeByName(q.Entity)
			if !ok {
				res.AddError("unknown_entity", fmt.Sprintf("entity %q has no registered accessors", q.Entity),
					subject, "", match.Suggest(q.Entity, accessors.TypeNames(), maxSuggestions)...)
			}

			entityType = t
		}

		if len(q.Enrich) == 0 {
			res.AddWarning("empty_declaration", "no descriptors declared", subject, "")
			continue
		}

		written := map[string]int{}

		for j, d := range q.Enrich {
			v := descriptorValidator{
				res:        res,
				subject:    subject,
				entityType: entityType,
				accessors:  accessors,
				lookups:    lookups,
			}
			v.validate(d)

			if d.Property == "" {
				continue
			}

			if prev, ok := written[d.Property]; ok {
				res.AddWarning("duplicate_property",
					fmt.Sprintf("descriptors %d and %d both write %q; the later one wins", prev, j, d.Property),
					subject, d.Property)
			}

			written[d.Property] = j
		}
	}

	return res
}

type descriptorValidator struct {
	res        *diagnostic.Diagnostics
	subject    string
	entityType reflect.Type
	accessors  *accessor.Registry
	lookups    *lookup.Registry
}

func (v *descriptorValidator) validate(d enrich.Descriptor) {
	if !v.requireFields(d) {
		return
	}

	if strings.IndexFunc(d.Column, unicode.IsUpper) >= 0 {
		v.res.AddWarning("column_not_snake_case",
			fmt.Sprintf("column %q is lower-cased to %q before lookup", d.Column, match.ToCamelCase(d.Column)),
			v.subject, d.Column)
	}

	method := v.resolveSelect(d)

	if v.entityType == nil {
		return
	}

	v.checkGetter(d, method)
	v.checkSetter(d, method)
}

func (v *descriptorValidator) requireFields(d enrich.Descriptor) bool {
	ok := true

	if d.Column == "" {
		v.res.AddError("column_missing", "column is required", v.subject, d.Property)
		ok = false
	}

	if d.Property == "" {
		v.res.AddError("property_missing", "property is required", v.subject, d.Column)
		ok = false
	}

	if d.Select == "" {
		v.res.AddError("select_missing", "select is required", v.subject, d.Column)
		ok = false
	}

	return ok
}

func (v *descriptorValidator) resolveSelect(d enrich.Descriptor) *lookup.Method {
	ref, err := lookup.ParseRef(d.Select)
	if err != nil {
		v.res.AddError("invalid_select", err.Error(), v.subject, d.Select)
		return nil
	}

	if v.lookups == nil {
		return nil
	}

	m, err := v.lookups.Resolve(ref)
	if err != nil {
		v.res.AddError("unknown_select", err.Error(), v.subject, d.Select,
			match.Suggest(d.Select, v.lookups.Refs(), maxSuggestions)...)

		return nil
	}

	return m
}

func (v *descriptorValidator) checkGetter(d enrich.Descriptor, method *lookup.Method) {
	column := match.ToCamelCase(d.Column)

	if _, err := v.accessors.FindGetter(v.entityType, column); err != nil {
		v.res.AddError("getter_not_found", err.Error(), v.subject, d.Column, v.suggestProperty(column)...)
		return
	}

	if method == nil {
		return
	}

	prop, ok := v.accessors.Describe(v.entityType, column)
	if ok && !lookup.AcceptsType(prop.Type, method.ArgType) {
		v.res.AddError("argument_not_accepted",
			fmt.Sprintf("%s takes %s, column %q is %s", method.Ref, method.ArgType, d.Column, prop.Type),
			v.subject, d.Column)
	}
}

func (v *descriptorValidator) checkSetter(d enrich.Descriptor, method *lookup.Method) {
	if method == nil {
		prop, ok := v.accessors.Describe(v.entityType, d.Property)
		if !ok || !prop.Writable() {
			v.res.AddError("setter_not_found",
				fmt.Sprintf("%s has no %s", v.entityType, accessor.SetterName(d.Property)),
				v.subject, d.Property, v.suggestProperty(d.Property)...)
		}

		return
	}

	_, err := v.accessors.FindSetter(v.entityType, d.Property, method.ReturnType)

	switch {
	case err == nil:
	case errors.Is(err, accessor.ErrSignatureMismatch):
		v.res.AddError("setter_type_mismatch", err.Error(), v.subject, d.Property)
	default:
		v.res.AddError("setter_not_found", err.Error(), v.subject, d.Property, v.suggestProperty(d.Property)...)
	}
}

func (v *descriptorValidator) suggestProperty(name string) []string {
	return match.Suggest(name, v.accessors.Properties(v.entityType), maxSuggestions)
}
