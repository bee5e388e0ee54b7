package enrich

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"smpe-admin/internal/accessor"
	"smpe-admin/internal/lookup"
	"smpe-admin/internal/match"
)

// Engine applies one descriptor to one entity.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	accessors *accessor.Registry
	lookups   lookup.Caller
	sink      Sink
}

// NewEngine creates an Engine. A nil sink discards failures.
func NewEngine(accessors *accessor.Registry, lookups lookup.Caller, sink Sink) *Engine {
	if sink == nil {
		sink = NopSink{}
	}

	return &Engine{
		accessors: accessors,
		lookups:   lookups,
		sink:      sink,
	}
}

// Enrich reads d.Column from entity, resolves it through d.Select and writes
// the result into d.Property. Failures are reported to the sink and leave the
// entity untouched.
func (e *Engine) Enrich(ctx context.Context, d Descriptor, entity any) {
	if failure := e.apply(ctx, d, entity); failure != nil {
		e.sink.Report(failure)
	}
}

func (e *Engine) apply(ctx context.Context, d Descriptor, entity any) *Error {
	t := reflect.TypeOf(entity)

	fail := func(kind Kind, field string, err error) *Error {
		return &Error{
			Kind:       kind,
			Descriptor: d,
			EntityType: typeString(t),
			Field:      field,
			Err:        err,
			entityType: t,
		}
	}

	column := match.ToCamelCase(d.Column)

	get, err := e.accessors.FindGetter(t, column)
	if err != nil {
		return fail(KindAccessorNotFound, column, err)
	}

	columnValue, err := callGetter(get, entity)
	if err != nil {
		return fail(KindAccessorNotFound, column, err)
	}

	value, err := e.lookups.Invoke(ctx, d.Select, columnValue)
	if err != nil {
		kind := KindLookupInvocationFailed
		if errors.Is(err, lookup.ErrResolution) {
			kind = KindLookupResolutionFailed
		}

		return fail(kind, d.Property, err)
	}

	set, err := e.accessors.FindSetter(t, d.Property, value.Type)
	if err != nil {
		kind := KindAccessorNotFound
		if errors.Is(err, accessor.ErrSignatureMismatch) {
			kind = KindTypeMismatch
		}

		return fail(kind, d.Property, err)
	}

	if err := callSetter(set, entity, value.V); err != nil {
		return fail(KindTypeMismatch, d.Property, err)
	}

	return nil
}

func callGetter(get accessor.Getter, entity any) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("getter panicked: %v", r)
		}
	}()

	return get(entity), nil
}

func callSetter(set accessor.Setter, entity any, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("setter panicked: %v", r)
		}
	}()

	set(entity, v)

	return nil
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
