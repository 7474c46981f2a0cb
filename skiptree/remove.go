package skiptree

import (
	"github.com/intellect4all/invidx/pageio"
)

// Remove deletes the row equal to query (by Less-derived equality) from
// the tree. Returns true if a row was removed.
func (t *SkipTree[T]) Remove(query T) bool {
	root := t.pm.LoadPage(t.root)
	removed := t.remove(root, query)
	root = t.pm.LoadPage(t.root)
	if !root.IsLeaf() && root.Length == 1 {
		t.shrinkRoot(root)
	}
	return removed
}

func (t *SkipTree[T]) remove(node *pageio.Page[T], query T) bool {
	if node.IsLeaf() {
		idx := lowerBoundRows(node.Rows[:node.Length], query)
		if idx >= int(node.Length) || !rowsEqual(node.Rows[idx], query) {
			return false
		}
		leaf := t.pm.LoadAndModifyPage(node.Self)
		copy(leaf.Rows[idx:], leaf.Rows[idx+1:leaf.Length])
		leaf.Length--
		leaf.Rows = leaf.Rows[:leaf.Length]
		return true
	}

	idx := lowerBoundRows(node.Rows[:node.Length], query)
	if idx > 0 && (idx >= int(node.Length) || !rowsEqual(node.Rows[idx], query)) {
		idx--
	}

	child := t.pm.LoadPage(node.Children[idx])
	removed := t.remove(child, query)
	if !removed {
		return false
	}

	if child.Length == 0 || child.IsUnderfull() {
		parent := t.pm.LoadAndModifyPage(node.Self)
		t.handleUnderfullChild(parent, idx)
	} else if !rowsEqual(child.Min(), node.Rows[idx]) {
		parent := t.pm.LoadAndModifyPage(node.Self)
		parent.Rows[idx] = child.Min()
	}
	return true
}

// shrinkRoot is called when removal leaves the root with a single child:
// the tree shrinks by one level, root's contents replaced in place by
// its only child's, and the now-unreachable child page is freed.
func (t *SkipTree[T]) shrinkRoot(root *pageio.Page[T]) {
	rootID := root.Self
	childID := root.Children[0]
	child := t.pm.LoadAndModifyPage(childID)
	root = t.pm.LoadAndModifyPage(rootID)

	root.Depth = child.Depth
	root.Length = child.Length
	root.Next = pageio.NullPageID
	root.Rows = append(root.Rows[:0], child.Rows[:child.Length]...)
	if child.IsLeaf() {
		root.Children = nil
	} else {
		root.Children = append(make([]pageio.PageID, 0, pageio.InternalCapacity), child.Children[:child.Length]...)
	}

	t.pm.DeletePage(childID)
}

// handleUnderfullChild repairs the child of parent at index idx after it
// has fallen below its minimum fill: it either merges with an adjacent
// sibling or redistributes entries with it, whichever keeps both within
// their capacity and fill bounds.
func (t *SkipTree[T]) handleUnderfullChild(parent *pageio.Page[T], idx int) {
	leftIdx := idx
	if idx != 0 {
		leftIdx = idx - 1
	}
	left := t.pm.LoadAndModifyPage(parent.Children[leftIdx])
	right := t.pm.LoadAndModifyPage(parent.Children[leftIdx+1])

	if int(left.Length)+int(right.Length) < 2*left.MinFill() {
		t.merge(parent, left, right, leftIdx)
	} else {
		t.redistribute(parent, left, right, leftIdx)
	}
}

// merge folds right's contents into left, unlinks right from parent and
// the leaf chain, and frees right's page.
func (t *SkipTree[T]) merge(parent, left, right *pageio.Page[T], leftIdx int) {
	left.Rows = append(left.Rows, right.Rows[:right.Length]...)
	if !left.IsLeaf() {
		left.Children = append(left.Children, right.Children[:right.Length]...)
	}
	left.Length += right.Length
	left.Next = right.Next

	for i := leftIdx + 1; i < int(parent.Length)-1; i++ {
		parent.Rows[i] = parent.Rows[i+1]
		parent.Children[i] = parent.Children[i+1]
	}
	parent.Length--
	parent.Rows = parent.Rows[:parent.Length]
	parent.Children = parent.Children[:parent.Length]
	parent.Rows[leftIdx] = left.Min()

	t.pm.DeletePage(right.Self)
}

// redistribute moves entries between left and right (whichever is
// longer donates to whichever is shorter) until both are within their
// fill bounds, then fixes up parent's two separator rows.
func (t *SkipTree[T]) redistribute(parent, left, right *pageio.Page[T], leftIdx int) {
	if left.Length < right.Length {
		delta := int(right.Length-left.Length) / 2
		oldLeftLen := int(left.Length)

		left.Rows = left.Rows[:oldLeftLen+delta]
		if !left.IsLeaf() {
			left.Children = left.Children[:oldLeftLen+delta]
		}
		for i := 0; i < delta; i++ {
			left.Rows[oldLeftLen+i] = right.Rows[i]
			if !left.IsLeaf() {
				left.Children[oldLeftLen+i] = right.Children[i]
			}
		}
		left.Length += uint16(delta)

		copy(right.Rows[:int(right.Length)-delta], right.Rows[delta:right.Length])
		if !right.IsLeaf() {
			copy(right.Children[:int(right.Length)-delta], right.Children[delta:right.Length])
		}
		right.Length -= uint16(delta)
		right.Rows = right.Rows[:right.Length]
		if !right.IsLeaf() {
			right.Children = right.Children[:right.Length]
		}
	} else {
		delta := int(left.Length-right.Length) / 2
		oldLeftLen := int(left.Length)
		oldRightLen := int(right.Length)

		right.Rows = right.Rows[:oldRightLen+delta]
		if !right.IsLeaf() {
			right.Children = right.Children[:oldRightLen+delta]
		}
		copy(right.Rows[delta:], right.Rows[:oldRightLen])
		if !right.IsLeaf() {
			copy(right.Children[delta:], right.Children[:oldRightLen])
		}
		copy(right.Rows[:delta], left.Rows[oldLeftLen-delta:oldLeftLen])
		if !right.IsLeaf() {
			copy(right.Children[:delta], left.Children[oldLeftLen-delta:oldLeftLen])
		}
		right.Length = uint16(oldRightLen + delta)

		left.Length = uint16(oldLeftLen - delta)
		left.Rows = left.Rows[:left.Length]
		if !left.IsLeaf() {
			left.Children = left.Children[:left.Length]
		}
	}

	parent.Rows[leftIdx] = left.Min()
	parent.Rows[leftIdx+1] = right.Min()
}
