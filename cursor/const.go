package cursor

import "github.com/intellect4all/invidx/row"

// ConstIterator is a Cursor fixed at a single value forever (SkipTo/Next
// are no-ops). InvertedIndex.IteratorFrom returns one fixed at
// T.Largest() as the permanently exhausted cursor of an unseen token.
type ConstIterator[T row.Row[T]] struct {
	value T
}

// NewConstIterator returns a Cursor that always reports value.
func NewConstIterator[T row.Row[T]](value T) *ConstIterator[T] {
	return &ConstIterator[T]{value: value}
}

func (c *ConstIterator[T]) Current() T    { return c.value }
func (c *ConstIterator[T]) SkipTo(T) T    { return c.value }
func (c *ConstIterator[T]) Next() T       { return c.value }
