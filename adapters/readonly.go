package adapters

import (
	"iter"

	"github.com/forestrie/go-dynarray/dynarray"
)

// ReadOnly is a view over a DynamicArray that offers no way to change it.
type ReadOnly[T comparable] struct {
	a *dynarray.DynamicArray[T]
}

func NewReadOnly[T comparable](a *dynarray.DynamicArray[T]) ReadOnly[T] {
	return ReadOnly[T]{a: a}
}

func (r ReadOnly[T]) Len() int               { return r.a.Len() }
func (r ReadOnly[T]) Get(i int) (T, error)   { return r.a.Get(i) }
func (r ReadOnly[T]) IndexOf(v T) int        { return r.a.IndexOf(v) }
func (r ReadOnly[T]) Contains(v T) bool      { return r.a.Contains(v) }
func (r ReadOnly[T]) ToArray() []T           { return r.a.ToArray() }
func (r ReadOnly[T]) All() iter.Seq2[int, T] { return r.a.All() }
func (r ReadOnly[T]) Values() iter.Seq[T]    { return r.a.Values() }
