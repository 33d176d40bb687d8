package weave_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/weave"
)

type Clock interface {
	Now() int
}

type fixedClock struct {
	at   int
	zone string
}

func (c *fixedClock) Now() int { return c.at }

type Scheduler struct {
	clock Clock
}

type clockAssembly struct{ t *testing.T }

func (a clockAssembly) Assemble(r weave.Registrator) {
	handle, err := weave.Register(r, weave.FromValue(&fixedClock{at: 42, zone: "UTC"}), weave.AsContainer())
	require.NoError(a.t, err)
	require.NoError(a.t, weave.Implements[Clock](handle))
}

type schedulerAssembly struct{ t *testing.T }

func (a schedulerAssembly) Dependencies() []weave.Assembly {
	return []weave.Assembly{clockAssembly{t: a.t}}
}

func (a schedulerAssembly) Assemble(r weave.Registrator) {
	_, err := weave.Register(r, weave.FromResolver(func(r weave.Resolver) *Scheduler {
		return &Scheduler{clock: weave.MustResolve[Clock](r)}
	}), weave.AsTransient())
	require.NoError(a.t, err)
}

func TestFacade_Assemblies(t *testing.T) {
	r := weave.New(weave.WithAssemblies(schedulerAssembly{t: t}))
	t.Cleanup(func() { _ = r.Close() })

	s := weave.MustResolve[*Scheduler](r)
	assert.Equal(t, 42, s.clock.Now())
	assert.Same(t, weave.MustResolve[*fixedClock](r), s.clock.(*fixedClock))
	assert.NotSame(t, s, weave.MustResolve[*Scheduler](r))
}

func TestFacade_Config(t *testing.T) {
	cfg, err := weave.ParseConfig([]byte("strict_assertions: true\nlog_level: \"off\"\n"))
	require.NoError(t, err)

	r := weave.New(weave.WithConfig(cfg))
	_, err = weave.Register(r, weave.FromValue(&fixedClock{}))
	require.NoError(t, err)

	assert.Panics(t, func() { _, _ = weave.Register(r, weave.FromValue(&fixedClock{})) })
}

func TestFacade_Shared(t *testing.T) {
	t.Cleanup(weave.ClearShared)
	weave.ClearShared()

	r := weave.New(weave.WithAssemblies(clockAssembly{t: t}))
	require.NoError(t, weave.MakeShared(r))

	assert.Equal(t, 42, weave.Inject[Clock]().Now())
	assert.Equal(t, 42, weave.InjectLazy[Clock]().Get().Now())
	assert.Equal(t, 42, (*weave.Inject[*Clock]()).Now())

	require.NoError(t, r.Close())
	_, ok := weave.Shared()
	assert.False(t, ok)
}

func ExampleRegister() {
	r := weave.New()

	var built int
	_, _ = weave.Register(r, func(_ weave.Resolver, args weave.Arguments) *fixedClock {
		built++
		return &fixedClock{at: weave.MustFirst[int](args)}
	}, weave.AsContainer())

	first := weave.MustResolve[*fixedClock](r, weave.WithArguments(7))
	second := weave.MustResolve[*fixedClock](r, weave.WithArguments(9))

	fmt.Println(first.Now(), second.Now(), built)
	// Output: 7 7 1
}

func ExampleImplements() {
	r := weave.New()

	handle, _ := weave.Register(r, weave.FromValue(&fixedClock{at: 3}), weave.AsContainer())
	_ = weave.Implements[Clock](handle, weave.ForwardNamed("wall"))

	_, ok := weave.ResolveOptional[Clock](r)
	fmt.Println(ok, weave.MustResolve[Clock](r, weave.ResolveNamed("wall")).Now())
	// Output: false 3
}

func ExampleFlatten() {
	b := weave.NamedAssembly{Name: "B"}
	c := weave.NamedAssembly{Name: "C", DependsOn: []weave.Assembly{b}}
	a := weave.NamedAssembly{Name: "A", DependsOn: []weave.Assembly{b, c}}
	d := weave.NamedAssembly{Name: "D"}

	for _, assembly := range weave.Flatten([]weave.Assembly{a, d}) {
		fmt.Print(weave.AssemblyID(assembly), " ")
	}
	fmt.Println()
	// Output: A B C D
}
