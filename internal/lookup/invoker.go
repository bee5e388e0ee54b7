package lookup

import (
	"context"
	"fmt"
	"reflect"
)

// Value is a lookup result together with the function's declared return type.
// Type is what destination setters are matched against; V may be nil when
// the return type is an interface or pointer.
type Value struct {
	V    any
	Type reflect.Type
}

// Caller is anything that can invoke a lookup by reference.
type Caller interface {
	Invoke(ctx context.Context, reference string, arg any) (Value, error)
}

// Invoker resolves references against a Registry and calls them on owners
// supplied by Services.
type Invoker struct {
	registry *Registry
	services Services
}

var _ Caller = (*Invoker)(nil)

// NewInvoker creates an Invoker.
func NewInvoker(registry *Registry, services Services) *Invoker {
	return &Invoker{registry: registry, services: services}
}

// Invoke calls the function named by reference with arg.
func (i *Invoker) Invoke(ctx context.Context, reference string, arg any) (Value, error) {
	ref, err := ParseRef(reference)
	if err != nil {
		return Value{}, err
	}

	m, err := i.registry.Resolve(ref)
	if err != nil {
		return Value{}, err
	}

	owner, ok := i.services.Instance(ref.Owner)
	if !ok {
		return Value{}, fmt.Errorf("%w: no live instance of %q", ErrResolution, ref.Owner)
	}

	if owner == nil || !reflect.TypeOf(owner).AssignableTo(m.OwnerType) {
		return Value{}, fmt.Errorf("%w: instance of %q is %T, want %s", ErrResolution, ref.Owner, owner, m.OwnerType)
	}

	a, err := adaptArg(arg, m.ArgType)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s: %w", ErrResolution, ref, err)
	}

	out, err := m.invoke(ctx, owner, a)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s(%v): %w", ErrInvocation, ref, arg, err)
	}

	return Value{V: out, Type: m.ReturnType}, nil
}

func (m *Method) invoke(ctx context.Context, owner, arg any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return m.call(ctx, owner, arg)
}

// adaptArg converts a column value into the lookup's argument type. Values of
// the exact type pass through; other integers and strings are converted when
// the value fits. Non-nil pointers are dereferenced once.
func adaptArg(arg any, want reflect.Type) (any, error) {
	if arg == nil {
		return nil, fmt.Errorf("nil argument, want %s", want)
	}

	v := reflect.ValueOf(arg)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("nil %s argument, want %s", v.Type(), want)
		}

		v = v.Elem()
	}

	if v.Type() == want {
		return v.Interface(), nil
	}

	switch {
	case isSigned(v.Kind()) && isInteger(want.Kind()):
		n := v.Int()
		if isSigned(want.Kind()) {
			if reflect.Zero(want).OverflowInt(n) {
				return nil, fmt.Errorf("%d overflows %s", n, want)
			}
		} else if n < 0 || reflect.Zero(want).OverflowUint(uint64(n)) {
			return nil, fmt.Errorf("%d overflows %s", n, want)
		}

		return v.Convert(want).Interface(), nil

	case isUnsigned(v.Kind()) && isInteger(want.Kind()):
		n := v.Uint()
		if isSigned(want.Kind()) {
			if n > 1<<63-1 || reflect.Zero(want).OverflowInt(int64(n)) {
				return nil, fmt.Errorf("%d overflows %s", n, want)
			}
		} else if reflect.Zero(want).OverflowUint(n) {
			return nil, fmt.Errorf("%d overflows %s", n, want)
		}

		return v.Convert(want).Interface(), nil

	case v.Kind() == reflect.String && want.Kind() == reflect.String:
		return v.Convert(want).Interface(), nil
	}

	return nil, fmt.Errorf("argument of type %s not accepted, want %s", v.Type(), want)
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isInteger(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k)
}

// AcceptsType reports whether values of type from can be passed to a lookup
// taking want, ignoring overflow, which is only known per value.
func AcceptsType(from, want reflect.Type) bool {
	if from == nil || want == nil {
		return false
	}

	if from.Kind() == reflect.Pointer {
		from = from.Elem()
	}

	switch {
	case from == want:
		return true
	case isInteger(from.Kind()) && isInteger(want.Kind()):
		return true
	case from.Kind() == reflect.String && want.Kind() == reflect.String:
		return true
	default:
		return false
	}
}
