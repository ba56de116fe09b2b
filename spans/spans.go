package spans

import "slices"

// NotFound is the index reported for a value that could not be resolved.
// Extract discards it.
const NotFound = -1

// Span is an inclusive run of consecutive indices. First <= Last always holds
// for spans produced by Extract.
type Span struct {
	First int
	Last  int
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int {
	return s.Last - s.First + 1
}

// Contains reports whether i lies within the span.
func (s Span) Contains(i int) bool {
	return i >= s.First && i <= s.Last
}

// Extract returns the minimal set of spans covering the distinct non negative
// values of indices, sorted ascending by First.
//
// Entries equal to NotFound (or any other negative value) are ignored, as are
// duplicates. The indices slice is not modified. Empty input, or input
// consisting only of sentinels, returns nil.
func Extract(indices []int) []Span {
	if len(indices) == 0 {
		return nil
	}

	sorted := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 {
			continue
		}
		sorted = append(sorted, i)
	}
	if len(sorted) == 0 {
		return nil
	}
	slices.Sort(sorted)

	var result []Span
	open := Span{First: sorted[0], Last: sorted[0]}
	for _, i := range sorted[1:] {
		switch {
		case i == open.Last:
			// duplicate, already covered
		case i == open.Last+1:
			open.Last = i
		default:
			result = append(result, open)
			open = Span{First: i, Last: i}
		}
	}
	return append(result, open)
}

// Covered returns the total count of indices covered by spans. For the output
// of Extract this is the number of distinct valid indices in its input.
func Covered(spans []Span) int {
	n := 0
	for _, s := range spans {
		n += s.Len()
	}
	return n
}
