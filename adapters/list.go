package adapters

import (
	"fmt"
	"reflect"

	"github.com/forestrie/go-dynarray/dynarray"
)

// List is an untyped view over a DynamicArray.
type List[T comparable] struct {
	a *dynarray.DynamicArray[T]
}

func NewList[T comparable](a *dynarray.DynamicArray[T]) *List[T] {
	return &List[T]{a: a}
}

// cast converts v to the element type. A nil v is accepted only when T is an
// interface type, for which nil is the zero value.
func cast[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	elem := reflect.TypeFor[T]()
	if v == nil && elem.Kind() == reflect.Interface {
		return zero, nil
	}
	return zero, fmt.Errorf("%w: %T is not %s", ErrTypeMismatch, v, elem)
}

func (l *List[T]) Len() int { return l.a.Len() }

// IsFixedSize is always false, a List grows and shrinks with its array.
func (l *List[T]) IsFixedSize() bool { return false }

func (l *List[T]) IsReadOnly() bool { return false }

func (l *List[T]) Get(i int) (any, error) {
	v, err := l.a.Get(i)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Set checks the index before the value type, so an out of range index is
// reported as such whatever v is.
func (l *List[T]) Set(i int, v any) error {
	if _, err := l.a.Get(i); err != nil {
		return err
	}
	t, err := cast[T](v)
	if err != nil {
		return err
	}
	return l.a.Set(i, t)
}

// Add appends v and returns its index.
func (l *List[T]) Add(v any) (int, error) {
	t, err := cast[T](v)
	if err != nil {
		return dynarray.NotFound, err
	}
	l.a.Add(t)
	return l.a.Len() - 1, nil
}

func (l *List[T]) Insert(i int, v any) error {
	t, err := cast[T](v)
	if err != nil {
		return err
	}
	return l.a.Insert(i, t)
}

// Remove removes the first element equal to v, reporting whether there was
// one.
func (l *List[T]) Remove(v any) (bool, error) {
	t, err := cast[T](v)
	if err != nil {
		return false, err
	}
	return l.a.Remove(t), nil
}

func (l *List[T]) RemoveAt(i int) error {
	return l.a.RemoveAt(i)
}

func (l *List[T]) IndexOf(v any) (int, error) {
	t, err := cast[T](v)
	if err != nil {
		return dynarray.NotFound, err
	}
	return l.a.IndexOf(t), nil
}

func (l *List[T]) Contains(v any) (bool, error) {
	t, err := cast[T](v)
	if err != nil {
		return false, err
	}
	return l.a.Contains(t), nil
}

func (l *List[T]) Clear() { l.a.Clear() }

// ToArray returns the elements boxed as any.
func (l *List[T]) ToArray() []any {
	values := make([]any, 0, l.a.Len())
	for v := range l.a.Values() {
		values = append(values, v)
	}
	return values
}

// CopyTo copies every element into dst starting at dst[at]. It fails, writing
// nothing, under the same conditions as DynamicArray.CopyTo.
func (l *List[T]) CopyTo(dst []any, at int) error {
	if at < 0 || at > len(dst) {
		return fmt.Errorf("%w: destination index %d, destination length %d", dynarray.ErrIndexOutOfRange, at, len(dst))
	}
	if len(dst)-at < l.a.Len() {
		return fmt.Errorf(
			"%w: %d elements from index %d of %d", dynarray.ErrInsufficientSpace, l.a.Len(), at, len(dst))
	}
	for i, v := range l.a.All() {
		dst[at+i] = v
	}
	return nil
}
