package cursor

import (
	"github.com/intellect4all/invidx/common"
	"github.com/intellect4all/invidx/row"
)

// KVUnionIterator composes N cursors over a key-only row type into an
// aligned (key, values[N]) stream: at the minimum key any child currently
// holds, values[i] is child i's value at that key, or the row type's
// Largest().KVValue() sentinel if child i has no row there. A child that
// supplied the emitted key advances on the next Next().
type KVUnionIterator[T row.KV[T]] struct {
	children []Cursor[T]
	sentinel uint64

	key       uint64
	values    []uint64
	exhausted bool
}

// NewKVUnionIterator builds the key-aligned union of children. Returns
// common.ErrEmptyOperandList if children is empty.
func NewKVUnionIterator[T row.KV[T]](children []Cursor[T]) (*KVUnionIterator[T], error) {
	if len(children) == 0 {
		return nil, common.ErrEmptyOperandList
	}
	var zero T
	it := &KVUnionIterator[T]{
		children: children,
		sentinel: zero.Largest().KVValue(),
		values:   make([]uint64, len(children)),
	}
	it.settle(zero.Smallest().KVKey())
	return it, nil
}

// settle advances every child to floor and recomputes the emitted
// (key, values) pair from whichever land on the lowest key.
func (it *KVUnionIterator[T]) settle(floor uint64) {
	var zero T
	seek := zero.WithKVKey(floor)

	current := make([]T, len(it.children))
	lowest := zero.Largest()
	haveLowest := false
	for i, c := range it.children {
		v := c.SkipTo(seek)
		current[i] = v
		if isLargest(v) {
			continue
		}
		if !haveLowest || v.Less(lowest) {
			lowest = v
			haveLowest = true
		}
	}

	if !haveLowest {
		it.exhausted = true
		it.key = 0
		for i := range it.values {
			it.values[i] = it.sentinel
		}
		return
	}

	it.exhausted = false
	it.key = lowest.KVKey()
	for i, v := range current {
		if !isLargest(v) && v.KVKey() == it.key {
			it.values[i] = v.KVValue()
		} else {
			it.values[i] = it.sentinel
		}
	}
}

// Current returns the key and per-child value alignment at the cursor's
// present position, and whether the cursor still has a value to emit
// (false means every child is exhausted).
func (it *KVUnionIterator[T]) Current() (uint64, []uint64, bool) {
	return it.key, it.values, !it.exhausted
}

// SkipTo advances to the smallest aligned key >= key. A call with
// key <= the current key is a no-op and re-emits the current alignment.
func (it *KVUnionIterator[T]) SkipTo(key uint64) (uint64, []uint64, bool) {
	if !it.exhausted && key <= it.key {
		return it.Current()
	}
	it.settle(key)
	return it.Current()
}

// Next advances strictly past the current key.
func (it *KVUnionIterator[T]) Next() (uint64, []uint64, bool) {
	if it.exhausted {
		return it.Current()
	}
	it.settle(it.key + 1)
	return it.Current()
}
