package adapters

import "errors"

var ErrTypeMismatch = errors.New("adapters: value type does not match the element type")
