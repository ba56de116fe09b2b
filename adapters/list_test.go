package adapters

import (
	"fmt"
	"testing"

	"github.com/forestrie/go-dynarray/dynarray"
	"github.com/forestrie/go-dynarray/dynarraytesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAddInsertRemove(t *testing.T) {
	a := dynarray.From([]int{1, 3})
	l := NewList(a)

	i, err := l.Add(4)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	require.NoError(t, l.Insert(1, 2))
	dynarraytesting.RequireContents(t, a, []int{1, 2, 3, 4})

	removed, err := l.Remove(3)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = l.Remove(30)
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, l.RemoveAt(0))
	dynarraytesting.RequireContents(t, a, []int{2, 4})
	assert.Equal(t, []any{2, 4}, l.ToArray())
	assert.Equal(t, 2, l.Len())
	assert.False(t, l.IsFixedSize())
	assert.False(t, l.IsReadOnly())

	l.Clear()
	assert.Equal(t, 0, a.Len())
}

func TestListGetSet(t *testing.T) {
	a := dynarray.From([]string{"a", "b"})
	l := NewList(a)

	v, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	require.NoError(t, l.Set(0, "z"))
	dynarraytesting.RequireContents(t, a, []string{"z", "b"})

	_, err = l.Get(2)
	assert.ErrorIs(t, err, dynarray.ErrIndexOutOfRange)
}

func TestListIndexOfContains(t *testing.T) {
	l := NewList(dynarray.From([]int{5, 6, 5}))

	i, err := l.IndexOf(5)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = l.IndexOf(7)
	require.NoError(t, err)
	assert.Equal(t, dynarray.NotFound, i)

	ok, err := l.Contains(6)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestListTypeMismatch(t *testing.T) {
	a := dynarray.From([]int{1, 2})
	l := NewList(a)

	type call struct {
		name string
		do   func() error
	}
	calls := []call{
		{"Set", func() error { return l.Set(0, "x") }},
		{"Add", func() error { _, err := l.Add(1.5); return err }},
		{"Insert", func() error { return l.Insert(0, int64(1)) }},
		{"Remove", func() error { _, err := l.Remove("1"); return err }},
		{"IndexOf", func() error { _, err := l.IndexOf(nil); return err }},
		{"Contains", func() error { _, err := l.Contains(uint(1)); return err }},
	}
	for _, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			err := c.do()
			assert.ErrorIs(t, err, ErrTypeMismatch)
			dynarraytesting.RequireContents(t, a, []int{1, 2})
		})
	}
}

func TestListTypeMismatchMessage(t *testing.T) {
	_, err := NewList(dynarray.New[int]()).Add("x")
	require.Error(t, err)
	assert.Equal(t, "adapters: value type does not match the element type: string is not int", err.Error())
}

func TestListSetChecksIndexFirst(t *testing.T) {
	l := NewList(dynarray.From([]int{1}))
	err := l.Set(5, "not an int")
	assert.ErrorIs(t, err, dynarray.ErrIndexOutOfRange)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
}

func TestListInterfaceElements(t *testing.T) {
	a := dynarray.New[fmt.Stringer]()
	l := NewList(a)

	// nil is the zero value of an interface element type
	i, err := l.Add(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = l.Add(42)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	ok, err := l.Contains(nil)
	require.NoError(t, err)
	assert.True(t, ok)

	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestListCopyTo(t *testing.T) {
	l := NewList(dynarray.From([]int{1, 2}))

	dst := make([]any, 4)
	require.NoError(t, l.CopyTo(dst, 1))
	assert.Equal(t, []any{nil, 1, 2, nil}, dst)

	dst = make([]any, 2)
	assert.ErrorIs(t, l.CopyTo(dst, 1), dynarray.ErrInsufficientSpace)
	assert.ErrorIs(t, l.CopyTo(dst, 3), dynarray.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.CopyTo(dst, -1), dynarray.ErrIndexOutOfRange)
	assert.Equal(t, []any{nil, nil}, dst)
}
