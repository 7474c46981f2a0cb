package skiptree

import (
	"github.com/intellect4all/invidx/pageio"
	"github.com/intellect4all/invidx/row"
)

// Insert adds r to the tree, or overwrites the existing row with the
// same order key if T implements row.Overwriter[T] (KeyValueRow), or
// replaces it outright otherwise. Returns true if a new row was added,
// false if an existing row was overwritten.
func (t *SkipTree[T]) Insert(r T) bool {
	root := t.pm.LoadPage(t.root)
	added := t.insert(root, r)
	root = t.pm.LoadPage(t.root)
	if root.IsFull() {
		t.growRoot(root)
	}
	return added
}

func (t *SkipTree[T]) insert(node *pageio.Page[T], r T) bool {
	if node.IsLeaf() {
		return t.insertLeaf(node, r)
	}

	idx := lowerBoundRows(node.Rows[:node.Length], r)
	if idx > 0 && (idx >= int(node.Length) || !rowsEqual(node.Rows[idx], r)) {
		idx--
	}

	child := t.pm.LoadPage(node.Children[idx])
	added := t.insert(child, r)

	if !rowsEqual(child.Min(), node.Rows[idx]) {
		parent := t.pm.LoadAndModifyPage(node.Self)
		parent.Rows[idx] = child.Min()
	}
	if child.IsFull() {
		parent := t.pm.LoadAndModifyPage(node.Self)
		t.split(parent, child, idx)
	}
	return added
}

func (t *SkipTree[T]) insertLeaf(node *pageio.Page[T], r T) bool {
	leaf := t.pm.LoadAndModifyPage(node.Self)
	idx := lowerBoundRows(leaf.Rows[:leaf.Length], r)
	if idx < int(leaf.Length) && rowsEqual(leaf.Rows[idx], r) {
		if ow, ok := any(leaf.Rows[idx]).(row.Overwriter[T]); ok {
			merged := ow.Overwrite(r)
			if !rowsEqual(merged, leaf.Rows[idx]) {
				panic("skiptree: Overwrite changed the row's order key")
			}
			leaf.Rows[idx] = merged
		} else {
			leaf.Rows[idx] = r
		}
		return false
	}

	leaf.Rows = leaf.Rows[:leaf.Length+1]
	copy(leaf.Rows[idx+1:], leaf.Rows[idx:leaf.Length])
	leaf.Rows[idx] = r
	leaf.Length++
	return true
}

// growRoot is called when the root page is full after an insert: the
// tree grows by one level, turning root into a fresh internal page
// pointing at a single child that inherits root's old (full) contents,
// then immediately splitting that child.
func (t *SkipTree[T]) growRoot(root *pageio.Page[T]) {
	rootID := root.Self
	newChild, newChildID := t.pm.NewPage()
	newChild.Depth = root.Depth
	newChild.Next = pageio.NullPageID
	newChild.Rows = append(newChild.Rows[:0], root.Rows[:root.Length]...)
	newChild.Length = root.Length
	if !root.IsLeaf() {
		newChild.Children = append(make([]pageio.PageID, 0, pageio.InternalCapacity), root.Children[:root.Length]...)
	} else {
		newChild.Children = nil
	}

	root = t.pm.LoadAndModifyPage(rootID)
	root.Depth++
	root.Next = pageio.NullPageID
	root.Rows = append(root.Rows[:0], newChild.Min())
	root.Children = append(make([]pageio.PageID, 0, pageio.InternalCapacity), newChildID)
	root.Length = 1

	t.split(root, newChild, 0)
}

// split splits child (which must be full) into itself (the left half)
// and a freshly allocated right sibling, inserting the new sibling into
// parent at index idx+1.
func (t *SkipTree[T]) split(parent, child *pageio.Page[T], idx int) {
	newSibling, newSiblingID := t.pm.NewPage()
	newSibling.Depth = child.Depth
	if !child.IsLeaf() {
		newSibling.Children = make([]pageio.PageID, 0, pageio.InternalCapacity)
	} else {
		newSibling.Children = nil
	}

	leftN := int(child.Length) / 2
	rightN := int(child.Length) - leftN

	newSibling.Rows = append(newSibling.Rows[:0], child.Rows[leftN:child.Length]...)
	if !child.IsLeaf() {
		newSibling.Children = append(newSibling.Children[:0], child.Children[leftN:child.Length]...)
	}
	newSibling.Length = uint16(rightN)

	child.Rows = child.Rows[:leftN]
	if !child.IsLeaf() {
		child.Children = child.Children[:leftN]
	}
	child.Length = uint16(leftN)

	newSibling.Next = child.Next
	child.Next = newSiblingID

	parent.Rows = parent.Rows[:parent.Length+1]
	parent.Children = parent.Children[:parent.Length+1]
	for i := int(parent.Length); i > idx+1; i-- {
		parent.Rows[i] = parent.Rows[i-1]
		parent.Children[i] = parent.Children[i-1]
	}
	parent.Rows[idx] = child.Min()
	parent.Children[idx] = child.Self
	parent.Rows[idx+1] = newSibling.Min()
	parent.Children[idx+1] = newSiblingID
	parent.Length++
}
