package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArguments_Empty(t *testing.T) {
	var args Arguments

	assert.True(t, args.IsEmpty())
	assert.Equal(t, 0, args.Len())
	assert.True(t, NewArguments().IsEmpty())

	_, ok := args.At(0)
	assert.False(t, ok)
}

func TestArguments_Positional(t *testing.T) {
	args := NewArguments("dsn", 5, true)

	assert.Equal(t, 3, args.Len())
	assert.False(t, args.IsEmpty())

	s, ok := Arg[string](args, 0)
	assert.True(t, ok)
	assert.Equal(t, "dsn", s)

	_, ok = Arg[string](args, 1)
	assert.False(t, ok)

	_, ok = Arg[int](args, 7)
	assert.False(t, ok)

	_, ok = args.At(-1)
	assert.False(t, ok)

	assert.Equal(t, 5, MustArg[int](args, 1))
	assert.PanicsWithValue(t, "di: argument 2 is not a string", func() { MustArg[string](args, 2) })
}

func TestArguments_FirstOfType(t *testing.T) {
	args := NewArguments(1, "a", 2, "b")

	n, ok := First[int](args)
	assert.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, "a", MustFirst[string](args))

	_, ok = First[bool](args)
	assert.False(t, ok)
	assert.Panics(t, func() { MustFirst[float64](args) })
}

func TestArguments_FirstOfInterface(t *testing.T) {
	g := &englishGreeter{name: "x"}
	args := NewArguments(3, g)

	got, ok := First[greeter](args)
	assert.True(t, ok)
	assert.Same(t, g, got.(*englishGreeter))
	assert.PanicsWithValue(t, "di: no argument of type di.store", func() { MustFirst[store](args) })
}

func TestArguments_CopiesInput(t *testing.T) {
	elements := []any{"a", "b"}
	args := NewArguments(elements...)
	elements[0] = "changed"

	assert.Equal(t, "a", MustArg[string](args, 0))
}

func TestArguments_All(t *testing.T) {
	args := NewArguments("a", "b", "c")

	var got []any
	for i, e := range args.All() {
		assert.Equal(t, len(got), i)
		got = append(got, e)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []any{"a", "b"}, got)
}
