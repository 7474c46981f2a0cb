package pageio

import (
	"path/filepath"
	"testing"

	"github.com/intellect4all/invidx/common/testutil"
	"github.com/intellect4all/invidx/row"
)

func TestDiskPageManagerCommitAndReopen(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, "pages")

	pm, err := OpenDiskPageManager[row.PairRow](path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	page, id := pm.NewPage()
	page.Rows = append(page.Rows, row.PairRow{Doc: 1, Val: 2})
	page.Length = 1

	if err := pm.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := pm.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenDiskPageManager[row.PairRow](path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	loaded := reopened.LoadPage(id)
	if loaded.Length != 1 || loaded.Rows[0].Doc != 1 || loaded.Rows[0].Val != 2 {
		t.Fatalf("reloaded page mismatch: %+v", loaded)
	}
}

func TestDiskPageManagerFreeListPersists(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, "pages")

	pm, err := OpenDiskPageManager[row.UInt64Row](path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_, id0 := pm.NewPage()
	pm.NewPage()
	pm.DeletePage(id0)
	if err := pm.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := pm.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenDiskPageManager[row.UInt64Row](path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	_, reused := reopened.NewPage()
	if reused != id0 {
		t.Fatalf("free list should have persisted across reopen, got id %d want %d", reused, id0)
	}
}

func TestDiskPageManagerLoadUnallocatedPanics(t *testing.T) {
	dir := testutil.TempDir(t)
	pm, err := OpenDiskPageManager[row.UInt64Row](filepath.Join(dir, "pages"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer pm.Close()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic loading an unallocated page")
		}
	}()
	pm.LoadPage(0)
}
