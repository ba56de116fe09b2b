package dynarray

import (
	"fmt"
	"iter"
	"slices"

	"github.com/forestrie/go-dynarray/spans"
)

// NotFound is returned by IndexOf, and reported by RemoveRange, for values
// that are not present.
const NotFound = spans.NotFound

// DynamicArray is a resizable array of comparable values. The zero value is an
// empty array using ExactGrowth and no logger.
type DynamicArray[T comparable] struct {
	items []T
	opts  Options
}

// New returns an empty array.
func New[T comparable](opts ...Option) *DynamicArray[T] {
	a := &DynamicArray[T]{items: []T{}}
	for _, o := range opts {
		o(&a.opts)
	}
	return a
}

// From returns an array holding a copy of initial. The caller keeps ownership
// of initial.
func From[T comparable](initial []T, opts ...Option) *DynamicArray[T] {
	a := New[T](opts...)
	a.items = append(make([]T, 0, len(initial)), initial...)
	return a
}

// Len returns the number of elements.
func (a *DynamicArray[T]) Len() int { return len(a.items) }

// IsValidIndex reports whether i addresses an element.
func (a *DynamicArray[T]) IsValidIndex(i int) bool {
	return i >= 0 && i < len(a.items)
}

func (a *DynamicArray[T]) checkIndex(i int) error {
	if !a.IsValidIndex(i) {
		return indexError(i, len(a.items))
	}
	return nil
}

func (a *DynamicArray[T]) Get(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.items[i], nil
}

// Set replaces the value at i. It is not a structural mutation.
func (a *DynamicArray[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.items[i] = v
	return nil
}

// Add appends v.
func (a *DynamicArray[T]) Add(v T) {
	if a.opts.Growth == AmortizedGrowth {
		a.items = append(a.items, v)
		return
	}
	items := a.open(len(a.items), 1)
	items[len(items)-1] = v
	a.items = items
}

// Insert places v at i, shifting the elements at i and above one place right.
// i must address an existing element; use Add to append.
func (a *DynamicArray[T]) Insert(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	items := a.open(i, 1)
	items[i] = v
	a.items = items
	return nil
}

// RemoveAt removes the element at i, shifting the elements above it one place
// left.
func (a *DynamicArray[T]) RemoveAt(i int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.items = a.cut(i, 1)
	return nil
}

// Remove removes the first element equal to v. It returns false, leaving the
// array unchanged, if there is no such element.
func (a *DynamicArray[T]) Remove(v T) bool {
	i := a.IndexOf(v)
	if i == NotFound {
		return false
	}
	a.items = a.cut(i, 1)
	return true
}

// IndexOf returns the index of the first element equal to v, or NotFound.
func (a *DynamicArray[T]) IndexOf(v T) int {
	return slices.Index(a.items, v)
}

func (a *DynamicArray[T]) Contains(v T) bool {
	return a.IndexOf(v) != NotFound
}

// Clear removes all elements.
func (a *DynamicArray[T]) Clear() {
	if a.opts.Growth == AmortizedGrowth {
		clear(a.items)
		a.items = a.items[:0]
		return
	}
	a.items = []T{}
}

// ToArray returns a copy of the contents. Changes to the copy do not affect
// the array.
func (a *DynamicArray[T]) ToArray() []T {
	return append(make([]T, 0, len(a.items)), a.items...)
}

// CopyTo copies every element into dst, starting at dst[at]. Nothing is
// written unless dst has room for all of them.
func (a *DynamicArray[T]) CopyTo(dst []T, at int) error {
	if at < 0 || at > len(dst) {
		return fmt.Errorf("%w: destination index %d, destination length %d", ErrIndexOutOfRange, at, len(dst))
	}
	if len(dst)-at < len(a.items) {
		return fmt.Errorf(
			"%w: %d elements from index %d of %d", ErrInsufficientSpace, len(a.items), at, len(dst))
	}
	copy(dst[at:], a.items)
	return nil
}

// All returns an iterator over the index and value of each element in order.
// The array must not be structurally mutated while iterating.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (a *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (a *DynamicArray[T]) String() string {
	return fmt.Sprint(a.items)
}

// open returns storage for Len()+n elements holding the current contents with
// a gap of n zeroed slots starting at at. The caller fills the gap and swaps the
// result in. at must be in [0, Len()].
func (a *DynamicArray[T]) open(at, n int) []T {
	if a.opts.Growth == AmortizedGrowth {
		return slices.Insert(a.items, at, make([]T, n)...)
	}
	items := make([]T, len(a.items)+n)
	copy(items, a.items[:at])
	copy(items[at+n:], a.items[at:])
	return items
}

// cut returns storage holding the current contents less the n elements
// starting at first. The span must be valid.
func (a *DynamicArray[T]) cut(first, n int) []T {
	if a.opts.Growth == AmortizedGrowth {
		return slices.Delete(a.items, first, first+n)
	}
	items := make([]T, len(a.items)-n)
	copy(items, a.items[:first])
	copy(items[first:], a.items[first+n:])
	return items
}
