// Package invertedindex implements a token -> postings index:
// Insert/Remove/Count/Iterator/Range/All over a posting row type T,
// backed by three skiptree.SkipTree instances — a header tree of
// TokenRow (token metadata), a shared rare tree multiplexing every
// low-frequency token's postings together, and one dedicated per-token
// SkipTree[T] once a token's postings cross RareThreshold.
package invertedindex

import (
	"github.com/intellect4all/invidx/cursor"
	"github.com/intellect4all/invidx/pageio"
	"github.com/intellect4all/invidx/row"
	"github.com/intellect4all/invidx/skiptree"
)

// RareThreshold is the insertion count above which a token's postings
// are migrated out of the shared rare tree into their own dedicated
// tree. A token that crosses it is never demoted back, and the rows
// already in the rare tree at the moment of promotion are copied, not
// moved — the rare tree keeps them as harmless, never-again-consulted
// leftovers once TokenRow.Root is set (see Insert).
const RareThreshold = 50

// closer is implemented by pageio.DiskPageManager; InvertedIndex.Close
// type-asserts for it since pageio.PageManager itself has no Close
// method (MemoryPageManager needs none).
type closer interface {
	Close() error
}

// InvertedIndex is a token -> postings(T) index over three page
// managers. T is typically row.PairRow (docid, value) for a traditional
// postings list, row.KeyValueRow for a per-token key-value map, or
// row.UInt64Row for a plain per-token set of ids.
type InvertedIndex[T row.Row[T]] struct {
	headerPM pageio.PageManager[TokenRow]
	pm       pageio.PageManager[T]
	rarePM   pageio.PageManager[RareRow[T]]

	header *skiptree.SkipTree[TokenRow]
	rare   *skiptree.SkipTree[RareRow[T]]

	collections map[uint64]*skiptree.SkipTree[T]
}

// Open opens (creating if missing) a disk-backed index rooted at the
// three files path+".header", path, and path+".rare".
func Open[T row.Row[T]](path string) (*InvertedIndex[T], error) {
	headerPM, err := pageio.OpenDiskPageManager[TokenRow](path + ".header")
	if err != nil {
		return nil, err
	}
	pm, err := pageio.OpenDiskPageManager[T](path)
	if err != nil {
		return nil, err
	}
	rarePM, err := pageio.OpenDiskPageManager[RareRow[T]](path + ".rare")
	if err != nil {
		return nil, err
	}
	return newInvertedIndex[T](headerPM, pm, rarePM), nil
}

// OpenWith builds an index directly on top of caller-supplied page
// managers — the in-memory variant for tests and benchmarks, or a
// caller-assembled disk layout.
func OpenWith[T row.Row[T]](pm pageio.PageManager[T], headerPM pageio.PageManager[TokenRow], rarePM pageio.PageManager[RareRow[T]]) *InvertedIndex[T] {
	return newInvertedIndex[T](headerPM, pm, rarePM)
}

func newInvertedIndex[T row.Row[T]](headerPM pageio.PageManager[TokenRow], pm pageio.PageManager[T], rarePM pageio.PageManager[RareRow[T]]) *InvertedIndex[T] {
	headerRoot := pageio.PageID(0)
	if headerPM.Empty() {
		headerRoot = pageio.NullPageID
	}
	rareRoot := pageio.PageID(0)
	if rarePM.Empty() {
		rareRoot = pageio.NullPageID
	}
	return &InvertedIndex[T]{
		headerPM:    headerPM,
		pm:          pm,
		rarePM:      rarePM,
		header:      skiptree.New[TokenRow](headerPM, headerRoot),
		rare:        skiptree.New[RareRow[T]](rarePM, rareRoot),
		collections: make(map[uint64]*skiptree.SkipTree[T]),
	}
}

// collection returns (creating and caching if necessary) the dedicated
// SkipTree for token, whose root page is root.
func (idx *InvertedIndex[T]) collection(token uint64, root pageio.PageID) *skiptree.SkipTree[T] {
	if tree, ok := idx.collections[token]; ok {
		return tree
	}
	tree := skiptree.New[T](idx.pm, root)
	idx.collections[token] = tree
	return tree
}

// Insert adds row as a posting under token, bumping token's count in the
// header. Once that count exceeds RareThreshold, the token's postings
// are migrated from the shared rare tree into a newly allocated
// dedicated tree, and TokenRow.Root is updated to point at it.
func (idx *InvertedIndex[T]) Insert(token uint64, r T) {
	tokenRow, found := idx.header.UpdateInPlace(TokenRow{Token: token}, func(cur TokenRow) TokenRow {
		cur.Count++
		return cur
	})
	if !found {
		tokenRow = TokenRow{Token: token, Count: 1, Root: pageio.NullPageID}
		idx.header.Insert(tokenRow)
	}

	if tokenRow.Root == pageio.NullPageID {
		idx.rare.Insert(RareRow[T]{Token: token, Row: r})
	} else {
		idx.collection(token, tokenRow.Root).Insert(r)
	}

	if tokenRow.Count > RareThreshold && tokenRow.Root == pageio.NullPageID {
		tree := skiptree.New[T](idx.pm, pageio.NullPageID)
		newRoot := tree.Root()
		idx.collections[token] = tree

		var zero T
		rareRows := idx.rare.Range(
			RareRow[T]{Token: token, Row: zero.Smallest()},
			RareRow[T]{Token: token, Row: zero.Largest()},
		)
		for _, rr := range rareRows {
			tree.Insert(rr.Row)
		}

		idx.header.UpdateInPlace(TokenRow{Token: token}, func(cur TokenRow) TokenRow {
			cur.Root = newRoot
			return cur
		})
	}
}

// Remove deletes row from token's postings, reporting whether it was
// present. It does not touch TokenRow.Count — Count is an
// insertion-count upper bound used only to decide promotion, not a live
// cardinality.
func (idx *InvertedIndex[T]) Remove(token uint64, r T) bool {
	tokenRow, found := idx.header.Find(TokenRow{Token: token})
	if !found {
		return false
	}
	if tokenRow.Root == pageio.NullPageID {
		return idx.rare.Remove(RareRow[T]{Token: token, Row: r})
	}
	return idx.collection(token, tokenRow.Root).Remove(r)
}

// Count returns the number of times Insert has been called for token
// (an upper bound on its live posting count; see Remove).
func (idx *InvertedIndex[T]) Count(token uint64) uint64 {
	tokenRow, found := idx.header.Find(TokenRow{Token: token})
	if !found {
		return 0
	}
	return tokenRow.Count
}

// All returns every posting currently stored under token, in ascending
// order.
func (idx *InvertedIndex[T]) All(token uint64) []T {
	tokenRow, found := idx.header.Find(TokenRow{Token: token})
	if !found {
		return nil
	}
	if tokenRow.Root == pageio.NullPageID {
		var zero T
		rareRows := idx.rare.Range(
			RareRow[T]{Token: token, Row: zero.Smallest()},
			RareRow[T]{Token: token, Row: zero.Largest()},
		)
		result := make([]T, len(rareRows))
		for i, rr := range rareRows {
			result[i] = rr.Row
		}
		return result
	}
	return idx.collection(token, tokenRow.Root).All()
}

// Range returns every posting r under token with low <= r < high.
func (idx *InvertedIndex[T]) Range(token uint64, low, high T) []T {
	tokenRow, found := idx.header.Find(TokenRow{Token: token})
	if !found {
		return nil
	}
	if tokenRow.Root == pageio.NullPageID {
		rareRows := idx.rare.Range(
			RareRow[T]{Token: token, Row: low},
			RareRow[T]{Token: token, Row: high},
		)
		result := make([]T, len(rareRows))
		for i, rr := range rareRows {
			result[i] = rr.Row
		}
		return result
	}
	return idx.collection(token, tokenRow.Root).Range(low, high)
}

// rareToCommon adapts a cursor over RareRow[T] scoped to a single token
// into a cursor.Cursor[T] over the wrapped postings, so callers never
// see whether a token happens to be rare or promoted.
type rareToCommon[T row.Row[T]] struct {
	token uint64
	it    *skiptree.TreeCursor[RareRow[T]]
}

func (c *rareToCommon[T]) Current() T {
	return c.it.Current().Row
}

func (c *rareToCommon[T]) SkipTo(v T) T {
	c.it.SkipTo(RareRow[T]{Token: c.token, Row: v})
	return c.it.Current().Row
}

func (c *rareToCommon[T]) Next() T {
	c.it.Next()
	return c.it.Current().Row
}

// IteratorFrom returns a cursor over token's postings starting at the
// first one >= lowerBound. If token has never been inserted, the
// returned cursor is permanently exhausted.
func (idx *InvertedIndex[T]) IteratorFrom(token uint64, lowerBound T) cursor.Cursor[T] {
	tokenRow, found := idx.header.Find(TokenRow{Token: token})
	var zero T
	if !found {
		return cursor.NewConstIterator(zero.Largest())
	}
	if tokenRow.Root == pageio.NullPageID {
		tc := idx.rare.Iterator(
			RareRow[T]{Token: token, Row: lowerBound},
			RareRow[T]{Token: token, Row: zero.Largest()},
		)
		return &rareToCommon[T]{token: token, it: tc}
	}
	return idx.collection(token, tokenRow.Root).Iterator(lowerBound, zero.Largest())
}

// Iterator returns a cursor over all of token's postings in ascending
// order, equivalent to IteratorFrom(token, T.Smallest()).
func (idx *InvertedIndex[T]) Iterator(token uint64) cursor.Cursor[T] {
	var zero T
	return idx.IteratorFrom(token, zero.Smallest())
}

// Flush commits and drops the page cache of every underlying tree. Do
// not call while any cursor returned by Iterator/IteratorFrom is still
// in use — their pages may be evicted out from under them.
func (idx *InvertedIndex[T]) Flush() error {
	if err := idx.header.Flush(); err != nil {
		return err
	}
	if err := idx.rare.Flush(); err != nil {
		return err
	}
	return idx.pm.Flush()
}

// Commit persists every dirty page across all three page managers
// without dropping the cache, including the rare tree — skipping it
// would silently lose every still-rare token's postings on reopen.
func (idx *InvertedIndex[T]) Commit() error {
	if err := idx.header.Commit(); err != nil {
		return err
	}
	if err := idx.rare.Commit(); err != nil {
		return err
	}
	return idx.pm.Commit()
}

// CurrentMemoryUsed approximates the total bytes held across all three
// page managers' caches.
func (idx *InvertedIndex[T]) CurrentMemoryUsed() uint64 {
	return idx.headerPM.CurrentMemoryUsed() + idx.pm.CurrentMemoryUsed() + idx.rarePM.CurrentMemoryUsed()
}

// Close flushes and, for disk-backed page managers, closes their
// underlying file handles.
func (idx *InvertedIndex[T]) Close() error {
	if err := idx.Flush(); err != nil {
		return err
	}
	managers := []any{idx.headerPM, idx.pm, idx.rarePM}
	for _, pm := range managers {
		if c, ok := pm.(closer); ok {
			if err := c.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}
