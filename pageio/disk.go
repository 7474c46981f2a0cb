package pageio

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/intellect4all/invidx/row"
)

// DiskPageManager is the file-backed PageManager variant. Pages live in a
// dense main file (one byteSize[T]()-byte record per PageID) and the
// free list persists to a "<path>.freelist" sidecar holding a plain
// contiguous array of free PageIds.
type DiskPageManager[T row.Row[T]] struct {
	file     *os.File
	path     string
	numPages PageID
	pages    map[PageID]*MemoryBlock[T]
	freeList []PageID
}

// OpenDiskPageManager opens (creating if missing) the main file at path
// and its "<path>.freelist" sidecar.
func OpenDiskPageManager[T row.Row[T]](path string) (*DiskPageManager[T], error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("pageio: open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("pageio: stat %s: %w", path, err)
	}

	recordSize := int64(byteSize[T]())
	numPages := PageID(info.Size() / recordSize)

	freeList, err := readFreeList(path + ".freelist")
	if err != nil {
		file.Close()
		return nil, err
	}

	return &DiskPageManager[T]{
		file:     file,
		path:     path,
		numPages: numPages,
		pages:    make(map[PageID]*MemoryBlock[T]),
		freeList: freeList,
	}, nil
}

func readFreeList(path string) ([]PageID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("pageio: read %s: %w", path, err)
	}
	n := len(data) / 4
	list := make([]PageID, n)
	for i := 0; i < n; i++ {
		list[i] = PageID(binary.BigEndian.Uint32(data[i*4:]))
	}
	return list, nil
}

func (m *DiskPageManager[T]) writeFreeList() error {
	data := make([]byte, 4*len(m.freeList))
	for i, id := range m.freeList {
		binary.BigEndian.PutUint32(data[i*4:], uint32(id))
	}
	if err := os.WriteFile(m.path+".freelist", data, 0644); err != nil {
		return fmt.Errorf("pageio: write %s.freelist: %w", m.path, err)
	}
	return nil
}

func (m *DiskPageManager[T]) readPage(id PageID) *Page[T] {
	if id >= m.numPages {
		panic(fmt.Sprintf("pageio: load_page of unallocated page %d", id))
	}
	recordSize := int64(byteSize[T]())
	buf := make([]byte, recordSize)
	if _, err := m.file.ReadAt(buf, int64(id)*recordSize); err != nil {
		panic(fmt.Sprintf("pageio: read page %d: %v", id, err))
	}
	return decodePage[T](buf)
}

func (m *DiskPageManager[T]) LoadPage(id PageID) *Page[T] {
	if block, ok := m.pages[id]; ok {
		return block.Page
	}
	page := m.readPage(id)
	m.pages[id] = &MemoryBlock[T]{Page: page, Dirty: false}
	return page
}

func (m *DiskPageManager[T]) LoadAndModifyPage(id PageID) *Page[T] {
	page := m.LoadPage(id)
	m.pages[id].Dirty = true
	return page
}

func (m *DiskPageManager[T]) NewPage() (*Page[T], PageID) {
	var id PageID
	if n := len(m.freeList); n > 0 {
		id = m.freeList[n-1]
		m.freeList = m.freeList[:n-1]
	} else {
		id = m.numPages
		m.numPages++
	}
	page := newLeaf[T](id)
	m.pages[id] = &MemoryBlock[T]{Page: page, Dirty: true}
	return page, id
}

func (m *DiskPageManager[T]) DeletePage(id PageID) {
	delete(m.pages, id)
	m.freeList = append(m.freeList, id)
}

func (m *DiskPageManager[T]) Commit() error {
	recordSize := int64(byteSize[T]())
	for id, block := range m.pages {
		if !block.Dirty {
			continue
		}
		buf := encodePage(block.Page)
		if _, err := m.file.WriteAt(buf, int64(id)*recordSize); err != nil {
			return fmt.Errorf("pageio: write page %d: %w", id, err)
		}
		block.Dirty = false
	}
	return m.writeFreeList()
}

func (m *DiskPageManager[T]) Flush() error {
	if err := m.Commit(); err != nil {
		return err
	}
	m.pages = make(map[PageID]*MemoryBlock[T])
	return nil
}

func (m *DiskPageManager[T]) Empty() bool {
	return m.numPages == 0
}

func (m *DiskPageManager[T]) CurrentMemoryUsed() uint64 {
	return uint64(len(m.pages)) * uint64(byteSize[T]())
}

// Close flushes and releases the underlying file handle. Go has no
// destructors, so callers must call this explicitly (InvertedIndex.Close
// does).
func (m *DiskPageManager[T]) Close() error {
	if err := m.Flush(); err != nil {
		return err
	}
	return m.file.Close()
}
