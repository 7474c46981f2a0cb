package pageio

import (
	"testing"

	"github.com/intellect4all/invidx/row"
)

func TestMemoryPageManagerAllocateLoadModify(t *testing.T) {
	pm := NewMemoryPageManager[row.UInt64Row]()
	if !pm.Empty() {
		t.Fatalf("fresh manager should be empty")
	}

	page, id := pm.NewPage()
	if pm.Empty() {
		t.Fatalf("manager should not be empty after NewPage")
	}
	if !page.IsLeaf() {
		t.Fatalf("NewPage should allocate a leaf")
	}

	loaded := pm.LoadPage(id)
	if loaded != page {
		t.Fatalf("LoadPage should return the same cached pointer")
	}

	mutable := pm.LoadAndModifyPage(id)
	mutable.Rows = append(mutable.Rows, row.UInt64Row{Val: 7})
	mutable.Length = 1

	reloaded := pm.LoadPage(id)
	if reloaded.Length != 1 || reloaded.Rows[0].Val != 7 {
		t.Fatalf("mutation through LoadAndModifyPage should be visible via LoadPage")
	}
}

func TestMemoryPageManagerLoadUnallocatedPanics(t *testing.T) {
	pm := NewMemoryPageManager[row.UInt64Row]()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic loading an unallocated page")
		}
	}()
	pm.LoadPage(0)
}

func TestMemoryPageManagerFreeListReuse(t *testing.T) {
	pm := NewMemoryPageManager[row.UInt64Row]()
	_, id0 := pm.NewPage()
	_, id1 := pm.NewPage()
	pm.DeletePage(id0)

	_, id2 := pm.NewPage()
	if id2 != id0 {
		t.Fatalf("NewPage should reuse freed id %d before allocating new, got %d", id0, id2)
	}
	if id1 == id2 {
		t.Fatalf("ids should be distinct")
	}
}

func TestMemoryPageManagerFlushDropsCache(t *testing.T) {
	pm := NewMemoryPageManager[row.UInt64Row]()
	pm.NewPage()
	if err := pm.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(pm.pages) != 0 {
		t.Fatalf("Flush should drop the cache")
	}
}
