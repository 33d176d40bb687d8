package di

import (
	"sync"
)

// Lazy produces its value once, on first access, and then drops the closure that
// built it.
type Lazy[T any] struct {
	once    sync.Once
	factory func() T
	value   T
}

// NewLazy wraps factory.
func NewLazy[T any](factory func() T) *Lazy[T] {
	return &Lazy[T]{factory: factory}
}

// Get returns the value, building it on the first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.factory()
		l.factory = nil
	})
	return l.value
}

// Provider builds a value on every access.
type Provider[T any] struct {
	factory func() T
}

// NewProvider wraps factory.
func NewProvider[T any](factory func() T) *Provider[T] {
	return &Provider[T]{factory: factory}
}

// Get calls the factory.
func (p *Provider[T]) Get() T {
	return p.factory()
}

// ResolveLazy returns a Lazy that resolves T from r on first access.
func ResolveLazy[T any](r Resolver, opts ...ResolveOption) *Lazy[T] {
	return NewLazy(func() T { return MustResolve[T](r, opts...) })
}

// ResolveProvider returns a Provider that resolves T from r on every access.
func ResolveProvider[T any](r Resolver, opts ...ResolveOption) *Provider[T] {
	return NewProvider(func() T { return MustResolve[T](r, opts...) })
}

// ResolveWrapped builds any wrapper around a deferred resolution of T.
//
//	lazy := di.ResolveWrapped(r, di.NewLazy[*Pool])
func ResolveWrapped[T, W any](r Resolver, wrap func(func() T) W, opts ...ResolveOption) W {
	return wrap(func() T { return MustResolve[T](r, opts...) })
}
