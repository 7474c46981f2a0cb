package cursor

import (
	"github.com/intellect4all/invidx/common"
	"github.com/intellect4all/invidx/row"
)

// Operand pairs a cursor operand of GeneralIntersection with whether it
// participates negated (the result excludes values the operand produces)
// or positively (the result is restricted to values the operand
// produces).
type Operand[T row.Row[T]] struct {
	Cursor  Cursor[T]
	Negated bool
}

// GeneralIntersectionIterator is the intersection of every positive
// operand minus the union of every negated operand's values. Requires at
// least one positive (non-negated) operand, since a set of pure
// exclusions has no defined universe to exclude from.
type GeneralIntersectionIterator[T row.Row[T]] struct {
	positive *IntersectionIterator[T]
	negative []Cursor[T]
	current  T
}

// NewGeneralIntersectionIterator builds the composed cursor. Returns
// common.ErrMissingPositiveOperand if operands contains no non-negated
// entry.
func NewGeneralIntersectionIterator[T row.Row[T]](operands []Operand[T]) (*GeneralIntersectionIterator[T], error) {
	var positives []Cursor[T]
	var negatives []Cursor[T]
	for _, op := range operands {
		if op.Negated {
			negatives = append(negatives, op.Cursor)
		} else {
			positives = append(positives, op.Cursor)
		}
	}
	if len(positives) == 0 {
		return nil, common.ErrMissingPositiveOperand
	}

	// positives is non-empty here, so the intersection can never fail
	// with ErrEmptyOperandList.
	positive, _ := NewIntersectionIterator(positives)
	it := &GeneralIntersectionIterator[T]{
		positive: positive,
		negative: negatives,
	}
	var zero T
	it.converge(zero.Smallest())
	return it, nil
}

func (it *GeneralIntersectionIterator[T]) converge(floor T) {
	candidate := it.positive.SkipTo(floor)
	for {
		if isLargest(candidate) {
			it.current = candidate
			return
		}
		excluded := false
		for _, n := range it.negative {
			if rowsEqual(n.SkipTo(candidate), candidate) {
				excluded = true
				break
			}
		}
		if !excluded {
			it.current = candidate
			return
		}
		candidate = it.positive.SkipTo(candidate.Next())
	}
}

func (it *GeneralIntersectionIterator[T]) Current() T { return it.current }

func (it *GeneralIntersectionIterator[T]) SkipTo(v T) T {
	if v.Less(it.current) {
		return it.current
	}
	it.converge(v)
	return it.current
}

func (it *GeneralIntersectionIterator[T]) Next() T {
	return it.SkipTo(it.current.Next())
}
