// Package cursor implements the skip-oriented iterator protocol and its
// composed operators: Intersection, GeneralIntersection, Union, KVUnion,
// plus the Vector/Const adapter cursors.
package cursor

import "github.com/intellect4all/invidx/row"

// Cursor is the uniform forward, skip-capable pointer into a sorted
// sequence of rows, terminating at T.Largest().
type Cursor[T row.Row[T]] interface {
	// Current returns the cursor's current value without advancing it.
	Current() T

	// SkipTo advances the cursor to the smallest value it can produce
	// that is >= v, sets it as Current, and returns it. T.Largest()
	// means exhausted. A call with v <= Current is a no-op and may
	// re-emit Current.
	SkipTo(v T) T

	// Next advances strictly past Current. Implementations conventionally
	// compute this as SkipTo(Current().Next()).
	Next() T
}
