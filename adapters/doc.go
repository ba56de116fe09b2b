// Package adapters presents a dynarray.DynamicArray through other collection
// shapes without adding anything to the core type.
//
// List is an untyped view whose methods accept and return any. Values are
// checked against the element type at the boundary, and a mismatch fails
// with ErrTypeMismatch before the underlying array is touched. ReadOnly
// exposes only the non mutating methods. Collect builds an array from any
// iterator.
//
// Views share storage with the array they wrap: changes made through the
// array are visible through the view and the other way around. Neither view
// hands out interior references.
package adapters
