package dynarray

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Growth selects how structural mutations obtain storage.
type Growth uint8

const (
	// ExactGrowth reallocates to exactly the new length on every structural
	// mutation.
	ExactGrowth Growth = iota
	// AmortizedGrowth grows and shrinks the existing slice in place, keeping
	// slack capacity between mutations.
	AmortizedGrowth
)

func (g Growth) String() string {
	switch g {
	case ExactGrowth:
		return "exact"
	case AmortizedGrowth:
		return "amortized"
	default:
		return "unknown"
	}
}

type Options struct {
	Growth Growth
	// Log, when not nil, receives debug level traces of the range
	// operations.
	Log logger.Logger
}

// Option is a generic option type. Implementations type assert to the
// Options target record and ignore the option if that fails.
type Option func(any)

func WithGrowth(growth Growth) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Growth = growth
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}
