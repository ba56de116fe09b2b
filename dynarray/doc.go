// Package dynarray provides DynamicArray, a generic resizable array with
// contiguous storage, index based mutation and batch range operations.
//
// # Storage and growth
//
// A DynamicArray owns a single slice holding exactly Len() elements. There is
// no visible distinction between length and capacity: every valid index i
// satisfies 0 <= i < Len(), and nothing outside that interval can be read.
//
// By default every structural mutation (Add, Insert, RemoveAt, the range
// operations, Clear) allocates a new slice of exactly the new length, copies
// the surviving segments into it and swaps it in. This costs O(n) per
// mutation, whether one element or many are involved, and is kept because it
// makes the lifetime of interior references (see Ref) easy to reason about.
// WithGrowth(AmortizedGrowth) selects in place growth with slack capacity.
// Both policies produce identical observable contents, indices and errors.
//
// # Validation
//
// Every operation validates its arguments before the buffer is touched. A
// call that returns an error leaves the array exactly as it was. Index
// failures wrap ErrIndexOutOfRange and inverted spans wrap ErrInvalidRange;
// use errors.Is to test for them. A value that is not present is not an
// error: Remove reports false and IndexOf reports NotFound.
//
// # Range removal by value
//
// RemoveRange resolves each value to the index of its first occurrence in the
// array as it is before the call, reduces the resolved indices to contiguous
// spans with spans.Extract, and removes the spans from the highest to the
// lowest. The resolved indices are returned unadjusted so the caller can see
// which values were present.
//
//	a := dynarray.From([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
//	a.RemoveRange(4, 5, 6, 42) // returns [3 4 5 -1], a is [1 2 3 7 8 9 10]
//
// # Concurrency
//
// A DynamicArray is not safe for concurrent use. Callers that share one
// between goroutines must serialize all access themselves.
package dynarray
