// Package pageio implements the paged, disk-backed page manager that
// skiptree.SkipTree is built on top of: fixed-capacity leaf/internal
// pages addressed by a 32-bit PageID, a free list, and commit/flush
// semantics.
package pageio

import "github.com/intellect4all/invidx/row"

// PageID addresses a single fixed-size page within a page-kind's backing
// store (memory map or file).
type PageID uint32

// NullPageID is the sentinel "no page" value.
const NullPageID PageID = 1<<32 - 1

const (
	// LeafCapacity is the maximum number of rows a leaf page holds.
	LeafCapacity = 32
	// InternalCapacity is the maximum number of (row, child) entries an
	// internal page holds.
	InternalCapacity = 32
	// MinLeafFill is the minimum number of rows a non-root leaf page must
	// hold.
	MinLeafFill = LeafCapacity / 2
	// MinInternalFill is the minimum number of entries a non-root
	// internal page must hold.
	MinInternalFill = InternalCapacity / 2
)

// Page is one node of a SkipTree: a leaf holding up to LeafCapacity rows,
// or an internal node holding up to InternalCapacity (row, child) pairs
// where each stored row is the minimum row of the corresponding child
// subtree. Depth 0 means leaf. Next forms the leaf-level forward chain
// (meaningless, but still settable, on internal nodes).
//
// Go has no union type, so Rows/Children are plain slices sized to their
// capacity and only the first Length entries are meaningful.
type Page[T row.Row[T]] struct {
	Self   PageID
	Next   PageID
	Depth  uint16
	Length uint16

	Rows     []T
	Children []PageID // empty/unused for leaves
}

// IsLeaf reports whether p is a leaf page.
func (p *Page[T]) IsLeaf() bool {
	return p.Depth == 0
}

// Capacity is the maximum Length this page may hold before it must split.
func (p *Page[T]) Capacity() int {
	if p.IsLeaf() {
		return LeafCapacity
	}
	return InternalCapacity
}

// MinFill is the minimum Length a non-root page of this kind must hold.
func (p *Page[T]) MinFill() int {
	if p.IsLeaf() {
		return MinLeafFill
	}
	return MinInternalFill
}

// IsFull reports whether p has no room for another row without splitting.
func (p *Page[T]) IsFull() bool {
	return int(p.Length) >= p.Capacity()
}

// IsUnderfull reports whether p has fallen below its minimum fill.
func (p *Page[T]) IsUnderfull() bool {
	return int(p.Length) < p.MinFill()
}

// Min returns the smallest row stored in p. p.Length must be > 0.
func (p *Page[T]) Min() T {
	return p.Rows[0]
}

// Max returns the largest row stored in p. p.Length must be > 0.
func (p *Page[T]) Max() T {
	return p.Rows[p.Length-1]
}

// newLeaf allocates an empty leaf page's storage.
func newLeaf[T row.Row[T]](self PageID) *Page[T] {
	return &Page[T]{
		Self:     self,
		Next:     NullPageID,
		Depth:    0,
		Length:   0,
		Rows:     make([]T, 0, LeafCapacity),
		Children: nil,
	}
}

// newInternal allocates an empty internal page's storage at the given
// depth (depth must be > 0).
func newInternal[T row.Row[T]](self PageID, depth uint16) *Page[T] {
	return &Page[T]{
		Self:     self,
		Next:     NullPageID,
		Depth:    depth,
		Length:   0,
		Rows:     make([]T, 0, InternalCapacity),
		Children: make([]PageID, 0, InternalCapacity),
	}
}

// byteSize is the encoded on-disk footprint of a page holding rows of
// type T, used by DiskPageManager to compute file offsets. Every page
// (leaf or internal) is written at the same fixed size — LeafCapacity
// and InternalCapacity are both 32 — so that PageID * byteSize is always
// a valid offset into a dense array of pages indexed by PageID.
func byteSize[T row.Row[T]]() int {
	var zero T
	rowSize := zero.EncodedSize()
	// header: self(4) next(4) depth(2) length(2) = 12 bytes
	// then InternalCapacity rows, then InternalCapacity child ids (4
	// bytes each) — every page reserves room for both, so leaf and
	// internal pages are the same fixed size and interchangeable as disk
	// records.
	return 12 + InternalCapacity*rowSize + InternalCapacity*4
}
