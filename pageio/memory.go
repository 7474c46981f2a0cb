package pageio

import "github.com/intellect4all/invidx/row"

// MemoryPageManager is the volatile-memory PageManager variant: pages
// never touch disk, Commit/Flush are no-ops beyond dropping the cache
// (Flush) and CurrentMemoryUsed approximates bytes held.
type MemoryPageManager[T row.Row[T]] struct {
	pages    map[PageID]*MemoryBlock[T]
	freeList []PageID
	nextID   PageID
}

// NewMemoryPageManager constructs an empty in-memory page manager.
func NewMemoryPageManager[T row.Row[T]]() *MemoryPageManager[T] {
	return &MemoryPageManager[T]{
		pages: make(map[PageID]*MemoryBlock[T]),
	}
}

func (m *MemoryPageManager[T]) LoadPage(id PageID) *Page[T] {
	block, ok := m.pages[id]
	if !ok {
		panic("pageio: load_page of unallocated page")
	}
	return block.Page
}

func (m *MemoryPageManager[T]) LoadAndModifyPage(id PageID) *Page[T] {
	block, ok := m.pages[id]
	if !ok {
		panic("pageio: load_and_modify_page of unallocated page")
	}
	block.Dirty = true
	return block.Page
}

func (m *MemoryPageManager[T]) NewPage() (*Page[T], PageID) {
	var id PageID
	if n := len(m.freeList); n > 0 {
		id = m.freeList[n-1]
		m.freeList = m.freeList[:n-1]
	} else {
		id = m.nextID
		m.nextID++
	}
	page := newLeaf[T](id)
	m.pages[id] = &MemoryBlock[T]{Page: page, Dirty: true}
	return page, id
}

func (m *MemoryPageManager[T]) DeletePage(id PageID) {
	delete(m.pages, id)
	m.freeList = append(m.freeList, id)
}

func (m *MemoryPageManager[T]) Commit() error {
	for _, block := range m.pages {
		block.Dirty = false
	}
	return nil
}

func (m *MemoryPageManager[T]) Flush() error {
	if err := m.Commit(); err != nil {
		return err
	}
	m.pages = make(map[PageID]*MemoryBlock[T])
	return nil
}

func (m *MemoryPageManager[T]) Empty() bool {
	return len(m.pages) == 0 && m.nextID == 0
}

func (m *MemoryPageManager[T]) CurrentMemoryUsed() uint64 {
	return uint64(len(m.pages)) * uint64(byteSize[T]())
}
