package skiptree

import (
	"github.com/intellect4all/invidx/pageio"
	"github.com/intellect4all/invidx/row"
)

// TreeCursor is a cursor.Cursor[T] over a bounded slice [low, high) of a
// SkipTree, walking the leaf chain directly rather than re-descending
// from the root on every step.
type TreeCursor[T row.Row[T]] struct {
	tree      *SkipTree[T]
	low, high T
	page      *pageio.Page[T]
	idx       int
	current   T
}

// Iterator returns a cursor positioned at the first row in [low, high).
func (t *SkipTree[T]) Iterator(low, high T) *TreeCursor[T] {
	c := &TreeCursor[T]{tree: t, low: low, high: high}
	c.SkipTo(low)
	return c
}

// Current returns the cursor's current value without advancing it.
func (c *TreeCursor[T]) Current() T {
	return c.current
}

// SkipTo advances to the smallest row in [max(v, low), high), or
// T.Largest() if none exists. A call with v <= Current leaves a
// positioned or exhausted cursor where it is.
func (c *TreeCursor[T]) SkipTo(v T) T {
	var largest T
	if !c.current.Less(v) && (c.page != nil || rowsEqual(c.current, largest.Largest())) {
		return c.current
	}
	bound := v
	if bound.Less(c.low) {
		bound = c.low
	}
	page, idx, ok := c.tree.lowerBound(bound)
	if ok && page.Rows[idx].Less(c.high) {
		c.page, c.idx, c.current = page, idx, page.Rows[idx]
	} else {
		c.page = nil
		var zero T
		c.current = zero.Largest()
	}
	return c.current
}

// Next advances strictly past Current.
func (c *TreeCursor[T]) Next() T {
	if c.page == nil {
		return c.current
	}
	c.idx++
	if c.idx >= int(c.page.Length) {
		if c.page.Next == pageio.NullPageID {
			c.page = nil
			var zero T
			c.current = zero.Largest()
			return c.current
		}
		c.page = c.tree.pm.LoadPage(c.page.Next)
		c.idx = 0
	}
	if c.page.Length > 0 && c.page.Rows[c.idx].Less(c.high) {
		c.current = c.page.Rows[c.idx]
	} else {
		c.page = nil
		var zero T
		c.current = zero.Largest()
	}
	return c.current
}
