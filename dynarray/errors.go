package dynarray

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange   = errors.New("dynarray: index out of range")
	ErrInvalidRange      = errors.New("dynarray: last index is before first index")
	ErrInsufficientSpace = errors.New("dynarray: not enough space in destination")
)

func indexError(i, length int) error {
	return fmt.Errorf("%w: index %d does not exist in array of length %d", ErrIndexOutOfRange, i, length)
}
