package di

import (
	"fmt"
	"iter"
	"reflect"
)

// Arguments is an ordered, read-only bundle of values handed to a factory at
// resolution time. The zero value is an empty bundle.
type Arguments struct {
	elements []any
}

// NewArguments copies elements into a new bundle.
func NewArguments(elements ...any) Arguments {
	if len(elements) == 0 {
		return Arguments{}
	}
	return Arguments{elements: append([]any(nil), elements...)}
}

// Len returns the number of elements.
func (a Arguments) Len() int { return len(a.elements) }

// IsEmpty reports whether the bundle has no elements.
func (a Arguments) IsEmpty() bool { return len(a.elements) == 0 }

// At returns the element at index i.
func (a Arguments) At(i int) (any, bool) {
	if i < 0 || i >= len(a.elements) {
		return nil, false
	}
	return a.elements[i], true
}

// All iterates over index/element pairs in order.
func (a Arguments) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, e := range a.elements {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Arg returns the element at index i narrowed to T.
func Arg[T any](a Arguments, i int) (T, bool) {
	var zero T
	e, ok := a.At(i)
	if !ok {
		return zero, false
	}
	typed, ok := e.(T)
	return typed, ok
}

// MustArg is Arg that panics when the element is missing or has another type.
func MustArg[T any](a Arguments, i int) T {
	typed, ok := Arg[T](a, i)
	if !ok {
		panic(fmt.Sprintf("di: argument %d is not a %s", i, reflect.TypeFor[T]()))
	}
	return typed
}

// First returns the first element assignable to T.
func First[T any](a Arguments) (T, bool) {
	for _, e := range a.elements {
		if typed, ok := e.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// MustFirst is First that panics when no element matches.
func MustFirst[T any](a Arguments) T {
	typed, ok := First[T](a)
	if !ok {
		panic(fmt.Sprintf("di: no argument of type %s", reflect.TypeFor[T]()))
	}
	return typed
}
