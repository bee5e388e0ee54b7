package enrich

import (
	"context"
)

// Dispatcher feeds every entity of a Result to the Engine.
type Dispatcher struct {
	engine *Engine
}

// NewDispatcher creates a Dispatcher over engine.
func NewDispatcher(engine *Engine) *Dispatcher {
	return &Dispatcher{engine: engine}
}

// Dispatch applies decl to every entity of r: entities in their original
// order, descriptors in declaration order. Entities are mutated in place, so
// whatever the caller holds is the enriched result once Dispatch returns.
func (d *Dispatcher) Dispatch(ctx context.Context, r Result, decl Declaration) {
	if len(decl) == 0 {
		return
	}

	var entities []any

	switch r.shape {
	case ShapePage, ShapeMany, ShapeSingle:
		entities = r.entities
	case ShapeNone:
		return
	}

	for _, entity := range entities {
		for _, desc := range decl {
			d.engine.Enrich(ctx, desc, entity)
		}
	}
}

// QueryFunc is a query method taking one argument.
type QueryFunc[A, T any] func(ctx context.Context, arg A) (T, error)

// Wrap decorates fn so that its successful results are enriched with decl
// before being returned. shape classifies the result; use ShapeOne, ShapeAll
// or ShapePaged. Errors from fn are returned untouched and skip enrichment.
func Wrap[A, T any](d *Dispatcher, decl Declaration, shape func(T) Result, fn func(context.Context, A) (T, error)) QueryFunc[A, T] {
	if len(decl) == 0 {
		return fn
	}

	return func(ctx context.Context, arg A) (T, error) {
		res, err := fn(ctx, arg)
		if err != nil {
			return res, err
		}

		d.Dispatch(ctx, shape(res), decl)

		return res, nil
	}
}
