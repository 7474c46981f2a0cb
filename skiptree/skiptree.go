// Package skiptree implements the paged, B+-tree-shaped ordered
// collection every other package in this module is ultimately built on:
// invertedindex's rare and per-token trees are each a SkipTree instance.
// The implementation is split across skiptree.go (core navigation),
// insert.go, remove.go and iterator.go.
package skiptree

import (
	"github.com/intellect4all/invidx/pageio"
	"github.com/intellect4all/invidx/row"
)

// SkipTree is an ordered collection of rows of type T, paged through a
// pageio.PageManager[T]. It has no locking of its own: the concurrency
// model is single-writer cooperative, so every method here assumes
// exclusive access to pm for its duration.
type SkipTree[T row.Row[T]] struct {
	pm   pageio.PageManager[T]
	root pageio.PageID
}

// New attaches a SkipTree to pm rooted at root. Pass pageio.NullPageID to
// have New allocate a fresh, empty root page.
func New[T row.Row[T]](pm pageio.PageManager[T], root pageio.PageID) *SkipTree[T] {
	if root == pageio.NullPageID {
		_, id := pm.NewPage()
		root = id
	}
	return &SkipTree[T]{pm: pm, root: root}
}

// Root returns the PageID of the tree's current root page, for callers
// (invertedindex's TokenRow) that need to persist it as a pointer.
func (t *SkipTree[T]) Root() pageio.PageID {
	return t.root
}

// lowerBound walks from the root to the leaf holding the first row >=
// query, returning that leaf, the row's index within it, and whether one
// was found at all (false means query is past every row in the tree).
func (t *SkipTree[T]) lowerBound(query T) (*pageio.Page[T], int, bool) {
	node := t.pm.LoadPage(t.root)
	for {
		idx := lowerBoundRows(node.Rows[:node.Length], query)
		if node.IsLeaf() {
			if idx < int(node.Length) {
				return node, idx, true
			}
			if node.Length > 0 && node.Rows[0].Less(query) && node.Next != pageio.NullPageID {
				next := t.pm.LoadPage(node.Next)
				idx2 := lowerBoundRows(next.Rows[:next.Length], query)
				if idx2 < int(next.Length) {
					return next, idx2, true
				}
			}
			return nil, 0, false
		}

		var childIdx int
		if idx < int(node.Length) {
			if idx == 0 || rowsEqual(node.Rows[idx], query) {
				childIdx = idx
			} else {
				childIdx = idx - 1
			}
		} else {
			childIdx = int(node.Length) - 1
		}
		node = t.pm.LoadPage(node.Children[childIdx])
	}
}

// Find returns the row equal to query (by Less-derived equality, which
// is key-only equality for a key-only row type) and true, or the zero
// value and false if no such row exists.
func (t *SkipTree[T]) Find(query T) (T, bool) {
	var zero T
	page, idx, ok := t.lowerBound(query)
	if !ok {
		return zero, false
	}
	candidate := page.Rows[idx]
	if rowsEqual(candidate, query) {
		return candidate, true
	}
	return zero, false
}

// UpdateInPlace finds the row equal to query, replaces it with
// mutate(found), and returns the replacement and true. Returns the zero
// value and false if no row matches query. Panics if mutate's result has
// a different order key than the row it replaced — in-place mutation
// must never reorder the tree, only change non-key payload.
func (t *SkipTree[T]) UpdateInPlace(query T, mutate func(T) T) (T, bool) {
	var zero T
	page, idx, ok := t.lowerBound(query)
	if !ok {
		return zero, false
	}
	old := page.Rows[idx]
	if !rowsEqual(old, query) {
		return zero, false
	}
	updated := mutate(old)
	if old.Less(updated) || updated.Less(old) {
		panic("skiptree: in-place mutation changed the row's order key")
	}
	leaf := t.pm.LoadAndModifyPage(page.Self)
	leaf.Rows[idx] = updated
	return updated, true
}

// Range returns every row r with low <= r < high, in ascending order.
func (t *SkipTree[T]) Range(low, high T) []T {
	var result []T
	page, idx, ok := t.lowerBound(low)
	if !ok {
		return result
	}
	for {
		if page.Length == 0 || !page.Min().Less(high) {
			break
		}
		for i := idx; i < int(page.Length); i++ {
			if !page.Rows[i].Less(high) {
				return result
			}
			result = append(result, page.Rows[i])
		}
		if page.Next == pageio.NullPageID {
			break
		}
		page = t.pm.LoadPage(page.Next)
		idx = 0
	}
	return result
}

// All returns every row in the tree, in ascending order.
func (t *SkipTree[T]) All() []T {
	var zero T
	return t.Range(zero.Smallest(), zero.Largest())
}

// Commit persists every dirty page through pm.
func (t *SkipTree[T]) Commit() error {
	return t.pm.Commit()
}

// Flush commits and drops pm's cache.
func (t *SkipTree[T]) Flush() error {
	return t.pm.Flush()
}
