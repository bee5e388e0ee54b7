package enrich

import (
	"reflect"

	"smpe-admin/internal/paging"
)

// Shape is the kind of value a query method returned.
type Shape int

const (
	// ShapeNone is the zero Result: nothing to enrich.
	ShapeNone Shape = iota
	// ShapeSingle is one entity.
	ShapeSingle
	// ShapeMany is an ordered collection of entities.
	ShapeMany
	// ShapePage is a page of entities with its metadata.
	ShapePage
)

// PageMeta is the metadata of a page result. Enrichment never changes it.
type PageMeta struct {
	Total   int64
	Current int64
	Size    int64
}

// Result is a query return value classified by shape. Build it with Single,
// Many or Page. The entities are the caller's own pointers, in their
// original order.
type Result struct {
	shape    Shape
	entities []any
	meta     PageMeta
}

// Single wraps one entity. A nil entity, typed or not, yields an empty Result.
func Single(entity any) Result {
	if isNil(entity) {
		return Result{}
	}

	return Result{shape: ShapeSingle, entities: []any{entity}}
}

// Many wraps a slice of entity pointers.
func Many[E any](entities []*E) Result {
	return Result{shape: ShapeMany, entities: toAny(entities)}
}

// Page wraps a page of entity pointers. A nil page yields an empty Result.
func Page[E any](p *paging.Page[E]) Result {
	if p == nil {
		return Result{}
	}

	return Result{
		shape:    ShapePage,
		entities: toAny(p.Records),
		meta:     PageMeta{Total: p.Total, Current: p.Current, Size: p.Size},
	}
}

// Shape returns the classified shape.
func (r Result) Shape() Shape { return r.shape }

// Len returns the number of entities.
func (r Result) Len() int { return len(r.entities) }

// Meta returns the page metadata; zero unless Shape is ShapePage.
func (r Result) Meta() PageMeta { return r.meta }

// ShapeOne classifies a single-entity result.
func ShapeOne[E any](e *E) Result { return Single(e) }

// ShapeAll classifies a slice result.
func ShapeAll[E any](es []*E) Result { return Many(es) }

// ShapePaged classifies a page result.
func ShapePaged[E any](p *paging.Page[E]) Result { return Page(p) }

func toAny[E any](entities []*E) []any {
	out := make([]any, len(entities))
	for i, e := range entities {
		out[i] = e
	}

	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
