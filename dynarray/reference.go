package dynarray

// Referencer is implemented by containers that can hand out pointers into
// their own storage. It is kept apart from the value access methods so that
// views which must not alias storage, such as those in the adapters package,
// can omit it.
type Referencer[T any] interface {
	Len() int
	Contains(v T) bool
	Ref(i int) (*T, error)
}

var _ Referencer[int] = (*DynamicArray[int])(nil)

// Ref returns a pointer to the element at i, allowing it to be changed in
// place.
//
// The pointer is valid only until the next structural mutation of the array.
// Under ExactGrowth that mutation moves the contents to new storage, and
// writes through an older pointer no longer reach the array. Under
// AmortizedGrowth the pointer may instead address whichever element was
// shifted into the slot. Neither case is detected; callers must not hold a
// reference across Add, Insert, Remove, RemoveAt, Clear or any range
// operation.
func (a *DynamicArray[T]) Ref(i int) (*T, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}
	return &a.items[i], nil
}
