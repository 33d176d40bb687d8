package di

import (
	"sync"

	"github.com/xraph/weave/internal/errors"
	"github.com/xraph/weave/internal/logger"
)

var shared struct {
	mu       sync.RWMutex
	registry *Registry
}

// MakeShared installs r as the process-wide registry. The slot can be set once;
// while it holds another registry the call is rejected, a warning is logged and the
// existing registry stays. With strict assertions enabled on r it panics instead.
// Use ClearShared or Registry.Close to empty the slot; a nil r is rejected.
func MakeShared(r *Registry) error {
	if r == nil {
		return errors.ErrNilRegistry
	}

	shared.mu.Lock()
	current := shared.registry
	if current == nil || current == r {
		shared.registry = r
		shared.mu.Unlock()
		return nil
	}
	shared.mu.Unlock()

	err := errors.ErrSharedAlreadySet(current.ID())
	r.logger.Warn("shared registry already set",
		logger.String("registry", r.id),
		logger.String("shared", current.ID()),
	)
	r.assert(err)
	return err
}

// RazeShared clears the slot if it holds r. Registry.Close calls it.
func RazeShared(r *Registry) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.registry == r {
		shared.registry = nil
	}
}

// ClearShared empties the slot whatever it holds. Tests use it between cases.
func ClearShared() {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	shared.registry = nil
}

// Shared returns the process-wide registry, if one is installed.
func Shared() (*Registry, bool) {
	shared.mu.RLock()
	defer shared.mu.RUnlock()
	return shared.registry, shared.registry != nil
}

func mustShared() *Registry {
	r, ok := Shared()
	if !ok {
		panic(errors.NewServiceError("", "inject", errors.New("no shared registry installed")))
	}
	return r
}

// Inject resolves T from the shared registry. It panics when no shared registry is
// installed or T cannot be resolved.
func Inject[T any](opts ...ResolveOption) T {
	return MustResolve[T](mustShared(), opts...)
}

// InjectLazy defers Inject until first access.
func InjectLazy[T any](opts ...ResolveOption) *Lazy[T] {
	return NewLazy(func() T { return Inject[T](opts...) })
}

// InjectProvider runs Inject on every access.
func InjectProvider[T any](opts ...ResolveOption) *Provider[T] {
	return NewProvider(func() T { return Inject[T](opts...) })
}
