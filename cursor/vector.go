package cursor

import "github.com/intellect4all/invidx/row"

// VectorIterator walks a pre-sorted in-memory slice as a Cursor, used
// throughout tests and as a leaf-level building block for composing
// cursors over data that isn't backed by a skiptree.
type VectorIterator[T row.Row[T]] struct {
	values []T
	idx    int
}

// NewVectorIterator wraps values, which must already be sorted ascending
// by Less. The cursor starts positioned at values[0], or exhausted if
// values is empty.
func NewVectorIterator[T row.Row[T]](values []T) *VectorIterator[T] {
	return &VectorIterator[T]{values: values}
}

func (v *VectorIterator[T]) Current() T {
	if v.idx >= len(v.values) {
		var zero T
		return zero.Largest()
	}
	return v.values[v.idx]
}

func (v *VectorIterator[T]) SkipTo(target T) T {
	for v.idx < len(v.values) && v.values[v.idx].Less(target) {
		v.idx++
	}
	return v.Current()
}

func (v *VectorIterator[T]) Next() T {
	if v.idx < len(v.values) {
		v.idx++
	}
	return v.Current()
}
