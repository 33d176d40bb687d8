package di

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type session struct {
	id   int
	user string
}

func sessionFactory(calls *int) Factory {
	return func(Resolver, Arguments) any {
		*calls++
		return &session{id: *calls, user: "alice"}
	}
}

//go:noinline
func produceAndDrop(s Storage) int {
	return s.Produce(nil, Arguments{}).(*session).id
}

func collect() {
	runtime.GC()
	runtime.GC()
}

func TestContainerStorage(t *testing.T) {
	var calls int
	s := newStorage(LifetimeContainer, AccessFinal, sessionFactory(&calls))

	assert.Equal(t, LifetimeContainer, s.Lifetime())
	assert.False(t, s.Instantiated())

	first := s.Produce(nil, Arguments{})
	assert.Same(t, first, s.Produce(nil, Arguments{}))
	assert.True(t, s.Instantiated())

	first = nil
	collect()
	assert.Equal(t, 1, s.Produce(nil, Arguments{}).(*session).id)
	assert.Equal(t, 1, calls)
}

func TestTransientStorage(t *testing.T) {
	var calls int
	s := newStorage(LifetimeTransient, AccessOpen, sessionFactory(&calls))

	assert.Equal(t, AccessOpen, s.AccessLevel())
	assert.NotSame(t, s.Produce(nil, Arguments{}), s.Produce(nil, Arguments{}))
	assert.False(t, s.Instantiated())
	assert.Equal(t, 2, calls)
}

func TestWeakStorage_HeldInstanceIsShared(t *testing.T) {
	var calls int
	s := newStorage(LifetimeWeak, AccessFinal, sessionFactory(&calls))

	held := s.Produce(nil, Arguments{}).(*session)
	again := s.Produce(nil, Arguments{}).(*session)

	assert.Same(t, held, again)
	assert.True(t, s.Instantiated())
	assert.Equal(t, 1, calls)
	runtime.KeepAlive(held)
}

func TestWeakStorage_ReleasedInstanceIsRebuilt(t *testing.T) {
	var calls int
	s := newStorage(LifetimeWeak, AccessFinal, sessionFactory(&calls))

	assert.Equal(t, 1, produceAndDrop(s))
	collect()

	assert.False(t, s.Instantiated())
	assert.Equal(t, 2, produceAndDrop(s))
	assert.Equal(t, 2, calls)
}

func TestWeakStorage_SurvivesCollectionWhileHeld(t *testing.T) {
	var calls int
	s := newStorage(LifetimeWeak, AccessFinal, sessionFactory(&calls))

	held := s.Produce(nil, Arguments{}).(*session)
	collect()

	assert.Same(t, held, s.Produce(nil, Arguments{}).(*session))
	assert.Equal(t, 1, calls)
	runtime.KeepAlive(held)
}

func TestWeakStorage_NonPointerValuesAreNotCached(t *testing.T) {
	tests := []struct {
		name    string
		produce func(n int) any
	}{
		{"struct value", func(n int) any { return session{id: n} }},
		{"scalar", func(n int) any { return n }},
		{"nil", func(int) any { return nil }},
		{"zero sized", func(int) any { return &struct{}{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			s := newStorage(LifetimeWeak, AccessFinal, func(Resolver, Arguments) any {
				calls++
				return tt.produce(calls)
			})

			s.Produce(nil, Arguments{})
			s.Produce(nil, Arguments{})
			assert.Equal(t, 2, calls)
			assert.False(t, s.Instantiated())
		})
	}
}

func TestWeakStorage_ConcurrentProduce(t *testing.T) {
	s := newStorage(LifetimeWeak, AccessFinal, func(Resolver, Arguments) any {
		return &session{user: "bob"}
	})

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		held []*session
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := s.Produce(nil, Arguments{}).(*session)
			mu.Lock()
			held = append(held, got)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Racing first resolutions may each build; once settled every caller gets the
	// last stored instance.
	settled := s.Produce(nil, Arguments{}).(*session)
	assert.Same(t, settled, s.Produce(nil, Arguments{}).(*session))
	assert.Contains(t, held, settled)
	runtime.KeepAlive(held)
}

func TestForwardingStorage(t *testing.T) {
	var calls int
	target := newStorage(LifetimeContainer, AccessFinal, sessionFactory(&calls))

	inherit := &forwardingStorage{target: target}
	open := &forwardingStorage{target: target, access: AccessOpen}

	assert.Equal(t, AccessFinal, inherit.AccessLevel())
	assert.Equal(t, AccessOpen, open.AccessLevel())
	assert.Equal(t, LifetimeContainer, open.Lifetime())

	first := inherit.Produce(nil, Arguments{})
	assert.Same(t, first, open.Produce(nil, Arguments{}))
	assert.Same(t, first, target.Produce(nil, Arguments{}))
	assert.True(t, open.Instantiated())
	assert.Equal(t, 1, calls)
}

func TestForwardingStorage_Chained(t *testing.T) {
	var calls int
	target := newStorage(LifetimeWeak, AccessOpen, sessionFactory(&calls))
	alias := &forwardingStorage{target: &forwardingStorage{target: target}, access: AccessFinal}

	held := target.Produce(nil, Arguments{})
	require.Same(t, held, alias.Produce(nil, Arguments{}))
	assert.Equal(t, AccessFinal, alias.AccessLevel())
	assert.Equal(t, LifetimeWeak, alias.Lifetime())
	assert.Equal(t, 1, calls)
	runtime.KeepAlive(held)
}
