package accessor

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"

	"smpe-admin/internal/match"
)

var (
	// ErrNotFound is returned when no accessor with the synthesized name exists.
	ErrNotFound = errors.New("accessor not found")
	// ErrSignatureMismatch is returned when a setter exists but takes a
	// different parameter type than requested.
	ErrSignatureMismatch = errors.New("setter signature mismatch")
)

// Getter reads a property from an entity.
type Getter func(entity any) any

// Setter writes a property on an entity.
type Setter func(entity any, value any)

// Binding is one typed property accessor pair for entity type E.
// Either half may be nil.
type Binding[E any] struct {
	name      string
	valueType reflect.Type
	get       func(*E) any
	set       func(*E, any)
}

// Field binds a readable and writable property.
func Field[E, V any](name string, get func(*E) V, set func(*E, V)) Binding[E] {
	b := ReadOnly(name, get)
	b.set = WriteOnly(name, set).set

	return b
}

// ReadOnly binds a property that only has a getter.
func ReadOnly[E, V any](name string, get func(*E) V) Binding[E] {
	return Binding[E]{
		name:      name,
		valueType: reflect.TypeFor[V](),
		get:       func(e *E) any { return get(e) },
	}
}

// WriteOnly binds a property that only has a setter.
func WriteOnly[E, V any](name string, set func(*E, V)) Binding[E] {
	return Binding[E]{
		name:      name,
		valueType: reflect.TypeFor[V](),
		set: func(e *E, v any) {
			if v == nil {
				var zero V
				set(e, zero)

				return
			}

			set(e, v.(V))
		},
	}
}

// Property describes one registered property of an entity type.
type Property struct {
	Name string
	Type reflect.Type

	getter Getter
	setter Setter
}

// Readable reports whether the property has a getter.
func (p *Property) Readable() bool { return p.getter != nil }

// Writable reports whether the property has a setter.
func (p *Property) Writable() bool { return p.setter != nil }

type entityAccessors struct {
	getters map[string]*Property
	setters map[string]*Property
	order   []string
}

// Registry maps (entity type, accessor name) to accessor functions.
// It is safe for concurrent use; registration normally happens once at start-up.
type Registry struct {
	mu       sync.RWMutex
	entities map[reflect.Type]*entityAccessors
	names    map[string]reflect.Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[reflect.Type]*entityAccessors),
		names:    make(map[string]reflect.Type),
	}
}

// Register binds properties for entity type E. Entities are addressed by
// their pointer type *E. Registering a property twice replaces it.
func Register[E any](r *Registry, bindings ...Binding[E]) {
	t := reflect.TypeFor[*E]()

	r.mu.Lock()
	defer r.mu.Unlock()

	ea := r.entities[t]
	if ea == nil {
		ea = &entityAccessors{
			getters: make(map[string]*Property),
			setters: make(map[string]*Property),
		}
		r.entities[t] = ea
		r.names[t.Elem().Name()] = t
	}

	for _, b := range bindings {
		prop := &Property{Name: b.name, Type: b.valueType}

		if b.get != nil {
			get := b.get
			prop.getter = func(entity any) any { return get(entity.(*E)) }
			ea.getters[GetterName(b.name)] = prop
		}

		if b.set != nil {
			set := b.set
			prop.setter = func(entity any, v any) { set(entity.(*E), v) }
			ea.setters[SetterName(b.name)] = prop
		}

		if !slices.Contains(ea.order, b.name) {
			ea.order = append(ea.order, b.name)
		}
	}
}

// GetterName synthesizes the getter name for a property.
func GetterName(property string) string {
	return "get" + match.Capitalize(property)
}

// SetterName synthesizes the setter name for a property.
func SetterName(property string) string {
	return "set" + match.Capitalize(property)
}

// FindGetter locates the zero-argument getter for property on entity type t.
func (r *Registry) FindGetter(t reflect.Type, property string) (Getter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name := GetterName(property)

	ea := r.entities[t]
	if ea == nil {
		return nil, fmt.Errorf("%w: %s on unregistered type %s", ErrNotFound, name, typeName(t))
	}

	prop, ok := ea.getters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s()", ErrNotFound, typeName(t), name)
	}

	return prop.getter, nil
}

// FindSetter locates the single-argument setter for property on entity type t
// whose parameter type is exactly arg.
func (r *Registry) FindSetter(t reflect.Type, property string, arg reflect.Type) (Setter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name := SetterName(property)

	ea := r.entities[t]
	if ea == nil {
		return nil, fmt.Errorf("%w: %s on unregistered type %s", ErrNotFound, name, typeName(t))
	}

	prop, ok := ea.setters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s(%s)", ErrNotFound, typeName(t), name, typeName(arg))
	}

	if prop.Type != arg {
		return nil, fmt.Errorf("%w: %s.%s takes %s, not %s",
			ErrSignatureMismatch, typeName(t), name, typeName(prop.Type), typeName(arg))
	}

	return prop.setter, nil
}

// Properties returns the registered property names of t in registration order.
func (r *Registry) Properties(t reflect.Type) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ea := r.entities[t]
	if ea == nil {
		return nil
	}

	return append([]string(nil), ea.order...)
}

// Describe returns the property description, preferring the getter side.
func (r *Registry) Describe(t reflect.Type, property string) (*Property, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ea := r.entities[t]
	if ea == nil {
		return nil, false
	}

	if p, ok := ea.getters[GetterName(property)]; ok {
		return p, true
	}

	p, ok := ea.setters[SetterName(property)]

	return p, ok
}

// TypeByName returns the registered entity pointer type whose struct name is name.
func (r *Registry) TypeByName(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.names[name]

	return t, ok
}

// TypeNames returns the struct names of all registered entity types, sorted.
func (r *Registry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.names))
	for n := range r.names {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
