package pageio

import "github.com/intellect4all/invidx/row"

// PageManager is the allocator + cache contract every SkipTree is built
// on top of.
//
// LoadPage panics if id was never allocated — that is a programming
// error, not a recoverable one. LoadAndModifyPage marks the page dirty.
// NewPage reuses the free list first. DeletePage appends to the free
// list without zeroing contents. Commit persists dirty pages and the
// free list; Flush commits then drops the cache.
type PageManager[T row.Row[T]] interface {
	// LoadPage returns the page at id for reading. Panics if id was
	// never allocated.
	LoadPage(id PageID) *Page[T]

	// LoadAndModifyPage returns the page at id for mutation, marking its
	// cache entry dirty. Panics if id was never allocated.
	LoadAndModifyPage(id PageID) *Page[T]

	// NewPage allocates a page, preferring the free list, and returns it
	// already marked dirty along with its id.
	NewPage() (*Page[T], PageID)

	// DeletePage removes id from the cache and adds it to the free list.
	// Contents are not cleared.
	DeletePage(id PageID)

	// Commit writes every dirty cached page (and the free list) to the
	// backing store and clears all dirty bits. A no-op for
	// MemoryPageManager.
	Commit() error

	// Flush commits, then drops the entire cache, freeing memory.
	Flush() error

	// Empty reports whether no pages have ever been allocated.
	Empty() bool

	// CurrentMemoryUsed returns the approximate number of bytes held by
	// cached pages.
	CurrentMemoryUsed() uint64
}
