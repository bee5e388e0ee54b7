package lookup

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

var (
	// ErrResolution is returned when a reference cannot be resolved to a
	// callable function on a live owner.
	ErrResolution = errors.New("lookup resolution failed")
	// ErrInvocation is returned when the lookup function itself fails.
	ErrInvocation = errors.New("lookup invocation failed")
)

// Key constrains lookup arguments to identifier-like values.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string
}

// Method is a registered lookup function.
type Method struct {
	Ref        Ref
	OwnerType  reflect.Type
	ArgType    reflect.Type
	ReturnType reflect.Type

	call func(ctx context.Context, owner any, arg any) (any, error)
}

// Registry maps lookup references to typed functions.
type Registry struct {
	mu      sync.RWMutex
	methods map[Ref]*Method
	owners  map[string]reflect.Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		methods: make(map[Ref]*Method),
		owners:  make(map[string]reflect.Type),
	}
}

// Register binds owner.method to fn. All methods of one owner must share the
// owner type S.
func Register[S any, A Key, R any](r *Registry, owner, method string, fn func(S, context.Context, A) (R, error)) error {
	if owner == "" || method == "" {
		return fmt.Errorf("registering lookup: owner and method are required (got %q.%q)", owner, method)
	}

	ownerType := reflect.TypeFor[S]()
	ref := Ref{Owner: owner, Method: method}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.owners[owner]; ok && prev != ownerType {
		return fmt.Errorf("registering lookup %s: owner already bound to %s, not %s", ref, prev, ownerType)
	}

	r.owners[owner] = ownerType
	r.methods[ref] = &Method{
		Ref:        ref,
		OwnerType:  ownerType,
		ArgType:    reflect.TypeFor[A](),
		ReturnType: reflect.TypeFor[R](),
		call: func(ctx context.Context, inst any, arg any) (any, error) {
			return fn(inst.(S), ctx, arg.(A))
		},
	}

	return nil
}

// MustRegister is Register that panics on error, for start-up wiring.
func MustRegister[S any, A Key, R any](r *Registry, owner, method string, fn func(S, context.Context, A) (R, error)) {
	if err := Register(r, owner, method, fn); err != nil {
		panic(err)
	}
}

// Resolve returns the method registered for ref.
func (r *Registry) Resolve(ref Ref) (*Method, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.owners[ref.Owner]; !ok {
		return nil, fmt.Errorf("%w: unknown owner %q", ErrResolution, ref.Owner)
	}

	m, ok := r.methods[ref]
	if !ok {
		return nil, fmt.Errorf("%w: owner %q has no method %q", ErrResolution, ref.Owner, ref.Method)
	}

	return m, nil
}

// Refs returns all registered references as strings, sorted.
func (r *Registry) Refs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refs := make([]string, 0, len(r.methods))
	for ref := range r.methods {
		refs = append(refs, ref.String())
	}

	sort.Strings(refs)

	return refs
}
