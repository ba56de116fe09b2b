package dynarray

import (
	"fmt"

	"github.com/forestrie/go-dynarray/spans"
)

// AddRange appends values, in order, in a single structural change.
func (a *DynamicArray[T]) AddRange(values ...T) {
	if len(values) == 0 {
		return
	}
	at := len(a.items)
	items := a.open(at, len(values))
	copy(items[at:], values)
	a.items = items
	a.debugf("AddRange: n=%d, len=%d", len(values), len(a.items))
}

// InsertRange inserts values, in order, starting at i. The elements at i and
// above move right by len(values). As for Insert, i must address an existing
// element.
func (a *DynamicArray[T]) InsertRange(i int, values ...T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	items := a.open(i, len(values))
	copy(items[i:], values)
	a.items = items
	a.debugf("InsertRange: i=%d, n=%d, len=%d", i, len(values), len(a.items))
	return nil
}

// RemoveRange removes the first occurrence of each of values.
//
// Every value is resolved against the contents as they are before anything is
// removed, so a value repeated in values resolves to the same index each time
// and removes only one element. The result holds, for each value in turn, the
// index it resolved to or NotFound. Those indices are not adjusted for the
// removal.
func (a *DynamicArray[T]) RemoveRange(values ...T) []int {
	indices := make([]int, len(values))
	for i, v := range values {
		indices[i] = a.IndexOf(v)
	}

	found := spans.Extract(indices)

	// Highest first, so the lower spans stay valid as we go.
	for i := len(found) - 1; i >= 0; i-- {
		a.items = a.cut(found[i].First, found[i].Len())
	}
	a.debugf("RemoveRange: n=%d, spans=%v, removed=%d, len=%d",
		len(values), found, spans.Covered(found), len(a.items))

	return indices
}

// RemoveSpan removes the elements from first to last inclusive in a single
// structural change.
func (a *DynamicArray[T]) RemoveSpan(first, last int) error {
	if err := a.checkIndex(first); err != nil {
		return err
	}
	if err := a.checkIndex(last); err != nil {
		return err
	}
	if last < first {
		return fmt.Errorf("%w: last index %d, first index %d", ErrInvalidRange, last, first)
	}
	a.items = a.cut(first, last-first+1)
	a.debugf("RemoveSpan: first=%d, last=%d, len=%d", first, last, len(a.items))
	return nil
}

func (a *DynamicArray[T]) debugf(format string, args ...any) {
	if a.opts.Log == nil {
		return
	}
	a.opts.Log.Debugf(format, args...)
}
