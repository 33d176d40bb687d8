package di

import (
	"reflect"

	"github.com/xraph/weave/internal/errors"
	"github.com/xraph/weave/internal/metrics"
)

// FactoryFunc is the typed form of Factory.
type FactoryFunc[T any] func(r Resolver, args Arguments) T

// FromResolver adapts a factory that ignores arguments.
func FromResolver[T any](fn func(r Resolver) T) FactoryFunc[T] {
	return func(r Resolver, _ Arguments) T { return fn(r) }
}

// FromFunc adapts a factory with no inputs.
func FromFunc[T any](fn func() T) FactoryFunc[T] {
	return func(Resolver, Arguments) T { return fn() }
}

// FromValue always produces v.
func FromValue[T any](v T) FactoryFunc[T] {
	return func(Resolver, Arguments) T { return v }
}

// Register registers factory under the key of T.
//
//	di.Register(r, di.FromResolver(func(r di.Resolver) *Service {
//	    return &Service{db: di.MustResolve[*DB](r)}
//	}), di.AsContainer())
func Register[T any](reg Registrator, factory FactoryFunc[T], opts ...RegisterOption) (Forwarding, error) {
	o := mergeOptions(opts)
	key := KeyOf[T](o.Name)
	if factory == nil {
		return nil, errors.NewServiceError(key.String(), "register", errors.ErrInvalidFactory)
	}
	produce := func(r Resolver, args Arguments) any {
		return factory(r, args)
	}
	if isInterfacePointer(reflect.TypeFor[T]()) {
		// *I shares its key with I, so store the interface value itself.
		produce = func(r Resolver, args Arguments) any {
			p := reflect.ValueOf(factory(r, args))
			if p.IsNil() {
				return nil
			}
			return p.Elem().Interface()
		}
	}
	return reg.Register(key, o, produce)
}

// Resolve resolves T. The error wraps a not-found error when nothing is registered
// and a type mismatch when the produced value is not a T. Resolving a pointer to
// an interface returns a fresh pointer holding the registered value.
func Resolve[T any](r Resolver, opts ...ResolveOption) (T, error) {
	var zero T
	o := mergeResolveOptions(opts)
	key := KeyOf[T](o.name)

	// A registry records the outcome once the value has been narrowed; any other
	// resolver records its own.
	obs, observed := r.(resolutionObserver)
	observe := func(string) {}
	var (
		instance any
		ok       bool
	)
	if observed {
		instance, ok = obs.produce(key, o.args)
		observe = func(outcome string) { obs.observeResolution(key, outcome) }
	} else {
		instance, ok = r.OptionalResolve(key, o.args)
	}

	if !ok {
		observe(metrics.OutcomeMiss)
		return zero, errors.NewServiceError(key.String(), "resolve", errors.ErrServiceNotFound(key.String()))
	}
	typed, ok := narrow[T](instance)
	if !ok {
		observe(metrics.OutcomeMismatch)
		return zero, errors.NewServiceError(key.String(), "resolve",
			errors.ErrServiceTypeMismatch(key.String(), reflect.TypeFor[T]().String(), instance))
	}
	observe(metrics.OutcomeHit)
	return typed, nil
}

type resolutionObserver interface {
	produce(key ServiceKey, args Arguments) (any, bool)
	observeResolution(key ServiceKey, outcome string)
}

// narrow asserts instance to T. When T is *I and instance implements I, the
// result is a new *I pointing at instance.
func narrow[T any](instance any) (T, bool) {
	if typed, ok := instance.(T); ok {
		return typed, true
	}
	var zero T
	t := reflect.TypeFor[T]()
	if instance == nil || !isInterfacePointer(t) || !reflect.TypeOf(instance).Implements(t.Elem()) {
		return zero, false
	}
	p := reflect.New(t.Elem())
	p.Elem().Set(reflect.ValueOf(instance))
	return p.Interface().(T), true
}

func isInterfacePointer(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Interface
}

// ResolveOptional resolves T, reporting false instead of failing.
func ResolveOptional[T any](r Resolver, opts ...ResolveOption) (T, bool) {
	typed, err := Resolve[T](r, opts...)
	return typed, err == nil
}

// MustResolve resolves T or panics. A missing registration is a wiring defect, so
// this is the form factories normally use.
func MustResolve[T any](r Resolver, opts ...ResolveOption) T {
	typed, err := Resolve[T](r, opts...)
	if err != nil {
		panic(err)
	}
	return typed
}

// Implements aliases the registration behind f under the key of T.
func Implements[T any](f Forwarding, opts ...ForwardOption) error {
	o := mergeForwardOptions(opts)
	return f.Implements(KeyOf[T](o.name), o.level)
}

// Registration returns a handle to the registration of T. It panics when T is not
// registered, which means assemblies are applied in the wrong order.
func Registration[T any](reg Registrator, name ...string) Forwarding {
	f, err := reg.Lookup(KeyOf[T](name...))
	if err != nil {
		panic(err)
	}
	return f
}
