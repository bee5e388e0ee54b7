package enrich

import (
	"fmt"
	"reflect"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies an abandoned enrichment.
type Kind int

const (
	_ Kind = iota

	// KindAccessorNotFound: the getter or setter is missing.
	KindAccessorNotFound
	// KindLookupResolutionFailed: the lookup reference, owner or method could
	// not be resolved, or the argument was not accepted.
	KindLookupResolutionFailed
	// KindLookupInvocationFailed: the lookup function returned an error.
	KindLookupInvocationFailed
	// KindTypeMismatch: the setter exists but does not take the lookup's
	// return type.
	KindTypeMismatch
)

// Error records one abandoned (descriptor, entity) pair.
type Error struct {
	Kind       Kind
	Descriptor Descriptor
	// EntityType is the runtime type of the entity, e.g. "*entity.Job".
	EntityType string
	// Field is the property whose accessor was involved.
	Field string
	Err   error

	entityType reflect.Type
}

func (e *Error) Error() string {
	return fmt.Sprintf("enrich %s on %s: %s: %v", e.Descriptor, e.EntityType, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Type returns the runtime type of the entity, nil for a nil entity.
func (e *Error) Type() reflect.Type {
	return e.entityType
}
