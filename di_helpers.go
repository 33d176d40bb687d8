package weave

import (
	"github.com/xraph/weave/internal/di"
)

// FactoryFunc is the typed form of Factory.
type FactoryFunc[T any] = di.FactoryFunc[T]

// Lazy produces its value once, on first access.
type Lazy[T any] = di.Lazy[T]

// Provider produces a value on every access.
type Provider[T any] = di.Provider[T]

// KeyOf derives the key for T, optionally qualified by name.
func KeyOf[T any](name ...string) ServiceKey {
	return di.KeyOf[T](name...)
}

// FromResolver adapts a factory that ignores arguments.
func FromResolver[T any](fn func(r Resolver) T) FactoryFunc[T] {
	return di.FromResolver(fn)
}

// FromFunc adapts a factory with no inputs.
func FromFunc[T any](fn func() T) FactoryFunc[T] {
	return di.FromFunc(fn)
}

// FromValue always produces v.
func FromValue[T any](v T) FactoryFunc[T] {
	return di.FromValue(v)
}

// Register registers factory under the key of T.
func Register[T any](r Registrator, factory FactoryFunc[T], opts ...RegisterOption) (Forwarding, error) {
	return di.Register(r, factory, opts...)
}

// Resolve resolves T, returning an error when it is missing or has another type.
func Resolve[T any](r Resolver, opts ...ResolveOption) (T, error) {
	return di.Resolve[T](r, opts...)
}

// ResolveOptional resolves T, reporting false instead of failing.
func ResolveOptional[T any](r Resolver, opts ...ResolveOption) (T, bool) {
	return di.ResolveOptional[T](r, opts...)
}

// MustResolve resolves T or panics.
func MustResolve[T any](r Resolver, opts ...ResolveOption) T {
	return di.MustResolve[T](r, opts...)
}

// Implements aliases the registration behind f under the key of T.
func Implements[T any](f Forwarding, opts ...ForwardOption) error {
	return di.Implements[T](f, opts...)
}

// Registration returns a handle to the registration of T, panicking if there is none.
func Registration[T any](r Registrator, name ...string) Forwarding {
	return di.Registration[T](r, name...)
}

// NewLazy wraps factory in a Lazy.
func NewLazy[T any](factory func() T) *Lazy[T] {
	return di.NewLazy(factory)
}

// NewProvider wraps factory in a Provider.
func NewProvider[T any](factory func() T) *Provider[T] {
	return di.NewProvider(factory)
}

// ResolveLazy defers resolving T until first access.
func ResolveLazy[T any](r Resolver, opts ...ResolveOption) *Lazy[T] {
	return di.ResolveLazy[T](r, opts...)
}

// ResolveProvider resolves T on every access.
func ResolveProvider[T any](r Resolver, opts ...ResolveOption) *Provider[T] {
	return di.ResolveProvider[T](r, opts...)
}

// ResolveWrapped builds a custom wrapper around a deferred resolution of T.
func ResolveWrapped[T, W any](r Resolver, wrap func(func() T) W, opts ...ResolveOption) W {
	return di.ResolveWrapped(r, wrap, opts...)
}

// Inject resolves T from the shared registry.
func Inject[T any](opts ...ResolveOption) T {
	return di.Inject[T](opts...)
}

// InjectLazy resolves T from the shared registry on first access.
func InjectLazy[T any](opts ...ResolveOption) *Lazy[T] {
	return di.InjectLazy[T](opts...)
}

// InjectProvider resolves T from the shared registry on every access.
func InjectProvider[T any](opts ...ResolveOption) *Provider[T] {
	return di.InjectProvider[T](opts...)
}

// Arg returns argument i narrowed to T.
func Arg[T any](a Arguments, i int) (T, bool) {
	return di.Arg[T](a, i)
}

// MustArg returns argument i narrowed to T or panics.
func MustArg[T any](a Arguments, i int) T {
	return di.MustArg[T](a, i)
}

// First returns the first argument of type T.
func First[T any](a Arguments) (T, bool) {
	return di.First[T](a)
}

// MustFirst returns the first argument of type T or panics.
func MustFirst[T any](a Arguments) T {
	return di.MustFirst[T](a)
}
