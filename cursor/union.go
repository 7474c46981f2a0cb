package cursor

import (
	"github.com/intellect4all/invidx/common"
	"github.com/intellect4all/invidx/row"
)

// UnionIterator composes N cursors into their set union, emitting each
// distinct value exactly once in ascending order.
type UnionIterator[T row.Row[T]] struct {
	children []Cursor[T]
	current  T
}

// NewUnionIterator builds the union of children. Returns
// common.ErrEmptyOperandList if children is empty.
func NewUnionIterator[T row.Row[T]](children []Cursor[T]) (*UnionIterator[T], error) {
	if len(children) == 0 {
		return nil, common.ErrEmptyOperandList
	}
	it := &UnionIterator[T]{children: children}
	var zero T
	it.settle(zero.Smallest())
	return it, nil
}

func (it *UnionIterator[T]) settle(floor T) {
	var best T
	haveBest := false
	for _, c := range it.children {
		v := c.SkipTo(floor)
		if isLargest(v) {
			continue
		}
		if !haveBest || v.Less(best) {
			best = v
			haveBest = true
		}
	}
	if !haveBest {
		var zero T
		it.current = zero.Largest()
		return
	}
	it.current = best
}

func (it *UnionIterator[T]) Current() T { return it.current }

func (it *UnionIterator[T]) SkipTo(v T) T {
	if v.Less(it.current) {
		return it.current
	}
	it.settle(v)
	return it.current
}

func (it *UnionIterator[T]) Next() T {
	return it.SkipTo(it.current.Next())
}
