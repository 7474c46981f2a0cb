package cursor

import (
	"github.com/intellect4all/invidx/common"
	"github.com/intellect4all/invidx/row"
)

func rowsEqual[T row.Row[T]](a, b T) bool {
	return !a.Less(b) && !b.Less(a)
}

func isLargest[T row.Row[T]](v T) bool {
	var zero T
	return rowsEqual(v, zero.Largest())
}

// IntersectionIterator composes N>=1 cursors into their set intersection:
// current advances to the first value every child agrees on.
type IntersectionIterator[T row.Row[T]] struct {
	children []Cursor[T]
	current  T
}

// NewIntersectionIterator builds the intersection of children. Returns
// common.ErrEmptyOperandList if children is empty.
func NewIntersectionIterator[T row.Row[T]](children []Cursor[T]) (*IntersectionIterator[T], error) {
	if len(children) == 0 {
		return nil, common.ErrEmptyOperandList
	}
	it := &IntersectionIterator[T]{children: children}
	var zero T
	it.converge(zero.Smallest())
	return it, nil
}

// converge drives every child to agree on a single value >= floor, or
// settles current at Largest() once any child is exhausted.
func (it *IntersectionIterator[T]) converge(floor T) {
	candidate := floor
	for {
		if isLargest(candidate) {
			it.current = candidate
			return
		}
		agree := true
		for _, c := range it.children {
			v := c.SkipTo(candidate)
			if isLargest(v) {
				it.current = v
				return
			}
			if candidate.Less(v) {
				candidate = v
				agree = false
			}
		}
		if agree {
			it.current = candidate
			return
		}
	}
}

func (it *IntersectionIterator[T]) Current() T { return it.current }

func (it *IntersectionIterator[T]) SkipTo(v T) T {
	if v.Less(it.current) {
		return it.current
	}
	it.converge(v)
	return it.current
}

func (it *IntersectionIterator[T]) Next() T {
	return it.SkipTo(it.current.Next())
}
