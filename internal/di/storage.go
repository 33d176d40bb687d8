package di

import (
	"reflect"
	"sync"
	"unsafe"
	"weak"
)

// Factory builds an instance. It receives the resolver for its own dependencies
// and the arguments of the resolution that triggered it.
type Factory func(r Resolver, args Arguments) any

// Storage is the per-key record of a registry. Each lifetime policy is one
// implementation; forwarding storages delegate to another storage.
type Storage interface {
	AccessLevel() AccessLevel
	Lifetime() Lifetime
	Produce(r Resolver, args Arguments) any
	// Instantiated reports whether a cached instance is currently held or observed.
	Instantiated() bool
}

func newStorage(lifetime Lifetime, access AccessLevel, factory Factory) Storage {
	switch lifetime {
	case LifetimeContainer:
		return &containerStorage{access: access, factory: factory}
	case LifetimeTransient:
		return &transientStorage{access: access, factory: factory}
	default:
		return &weakStorage{access: access, factory: factory}
	}
}

// containerStorage builds once and owns the result.
//
// The factory runs without the lock held, so two first resolutions racing on the
// same key may both build; the last one to finish is what stays cached.
type containerStorage struct {
	access   AccessLevel
	factory  Factory
	mu       sync.Mutex
	built    bool
	instance any
}

func (s *containerStorage) AccessLevel() AccessLevel { return s.access }
func (s *containerStorage) Lifetime() Lifetime       { return LifetimeContainer }

func (s *containerStorage) Produce(r Resolver, args Arguments) any {
	s.mu.Lock()
	if s.built {
		instance := s.instance
		s.mu.Unlock()
		return instance
	}
	s.mu.Unlock()

	instance := s.factory(r, args)

	s.mu.Lock()
	s.instance = instance
	s.built = true
	s.mu.Unlock()

	return instance
}

func (s *containerStorage) Instantiated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.built
}

// weakStorage observes the last instance through a weak pointer and hands it out
// while someone else keeps it alive.
//
// Only heap pointers can be observed. Any other value (struct, scalar, nil, pointer
// to a zero-sized type) is returned uncached, so it is rebuilt on every resolution.
type weakStorage struct {
	access  AccessLevel
	factory Factory
	mu      sync.Mutex
	typ     reflect.Type
	ref     weak.Pointer[byte]
}

func (s *weakStorage) AccessLevel() AccessLevel { return s.access }
func (s *weakStorage) Lifetime() Lifetime       { return LifetimeWeak }

func (s *weakStorage) Produce(r Resolver, args Arguments) any {
	if instance, ok := s.load(); ok {
		return instance
	}

	instance := s.factory(r, args)
	s.store(instance)
	return instance
}

func (s *weakStorage) Instantiated() bool {
	_, ok := s.load()
	return ok
}

func (s *weakStorage) load() (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.typ == nil {
		return nil, false
	}
	p := s.ref.Value()
	if p == nil {
		return nil, false
	}
	return reflect.NewAt(s.typ.Elem(), unsafe.Pointer(p)).Interface(), true
}

func (s *weakStorage) store(instance any) {
	rv := reflect.ValueOf(instance)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !observable(rv) {
		s.typ = nil
		s.ref = weak.Pointer[byte]{}
		return
	}
	s.typ = rv.Type()
	s.ref = weak.Make((*byte)(rv.UnsafePointer()))
}

func observable(rv reflect.Value) bool {
	return rv.IsValid() &&
		rv.Kind() == reflect.Pointer &&
		!rv.IsNil() &&
		rv.Type().Elem().Size() > 0
}

// transientStorage keeps no state at all.
type transientStorage struct {
	access  AccessLevel
	factory Factory
}

func (s *transientStorage) AccessLevel() AccessLevel { return s.access }
func (s *transientStorage) Lifetime() Lifetime       { return LifetimeTransient }
func (s *transientStorage) Instantiated() bool       { return false }

func (s *transientStorage) Produce(r Resolver, args Arguments) any {
	return s.factory(r, args)
}

// forwardingStorage exposes another storage under a second key. Production and
// caching belong to the target; only the access level can differ.
type forwardingStorage struct {
	target Storage
	access AccessLevel
}

func (s *forwardingStorage) AccessLevel() AccessLevel {
	if s.access == AccessInherit {
		return s.target.AccessLevel()
	}
	return s.access
}

func (s *forwardingStorage) Lifetime() Lifetime { return s.target.Lifetime() }
func (s *forwardingStorage) Instantiated() bool { return s.target.Instantiated() }

func (s *forwardingStorage) Produce(r Resolver, args Arguments) any {
	return s.target.Produce(r, args)
}
