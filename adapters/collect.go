package adapters

import (
	"iter"
	"slices"

	"github.com/forestrie/go-dynarray/dynarray"
)

// Collect returns a new array holding the values of seq in order. The array is
// populated in a single structural change.
func Collect[T comparable](seq iter.Seq[T], opts ...dynarray.Option) *dynarray.DynamicArray[T] {
	a := dynarray.New[T](opts...)
	a.AddRange(slices.Collect(seq)...)
	return a
}
