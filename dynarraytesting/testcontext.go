package dynarraytesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log   logger.Logger
	Label string
	T     *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	// LogLevel defaults to NOOP. Set it to INFO or DEBUG to see the range
	// operation traces of arrays created WithLogger(c.Log).
	LogLevel string
}

// NewTestContext sets up the global logger and derives a service logger
// whose name is the label prefix plus a unique suffix, so that the output of
// tests run in parallel can be told apart.
func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)

	label := cfg.TestLabelPrefix
	if label == "" {
		label = t.Name()
	}
	label += "-" + uuid.NewString()[:8]

	return TestContext{
		Log:   logger.Sugar.WithServiceName(label),
		Label: label,
		T:     t,
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Lister is satisfied by dynarray.DynamicArray and the views in adapters.
type Lister[T any] interface {
	Len() int
	ToArray() []T
}

// RequireContents fails the test immediately unless l holds exactly want, in
// order, and reports a length consistent with its contents.
func RequireContents[T any](t *testing.T, l Lister[T], want []T, msgAndArgs ...any) {
	t.Helper()
	got := l.ToArray()
	require.Equal(t, len(got), l.Len(), msgAndArgs...)
	if len(want) == 0 {
		require.Empty(t, got, msgAndArgs...)
		return
	}
	require.Equal(t, want, got, msgAndArgs...)
}

// Ints returns the consecutive values first to last inclusive.
func Ints(first, last int) []int {
	if last < first {
		return nil
	}
	values := make([]int, 0, last-first+1)
	for v := first; v <= last; v++ {
		values = append(values, v)
	}
	return values
}
