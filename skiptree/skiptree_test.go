package skiptree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/intellect4all/invidx/common/testutil"
	"github.com/intellect4all/invidx/pageio"
	"github.com/intellect4all/invidx/row"
)

func newMemTree() *SkipTree[row.UInt64Row] {
	pm := pageio.NewMemoryPageManager[row.UInt64Row]()
	return New[row.UInt64Row](pm, pageio.NullPageID)
}

func TestInsertFindRemove(t *testing.T) {
	tree := newMemTree()

	if _, ok := tree.Find(row.UInt64Row{Val: 5}); ok {
		t.Fatalf("empty tree should not contain anything")
	}

	tree.Insert(row.UInt64Row{Val: 5})
	got, ok := tree.Find(row.UInt64Row{Val: 5})
	if !ok || got.Val != 5 {
		t.Fatalf("Find(5) = %v, %v", got, ok)
	}

	if !tree.Remove(row.UInt64Row{Val: 5}) {
		t.Fatalf("Remove(5) should report true")
	}
	if _, ok := tree.Find(row.UInt64Row{Val: 5}); ok {
		t.Fatalf("row should be gone after Remove")
	}
	if tree.Remove(row.UInt64Row{Val: 5}) {
		t.Fatalf("second Remove(5) should report false")
	}
}

func TestInsertManyKeepsOrder(t *testing.T) {
	tree := newMemTree()
	const n = 5000

	vals := rand.New(rand.NewSource(1)).Perm(n)
	for _, v := range vals {
		tree.Insert(row.UInt64Row{Val: uint64(v)})
	}

	all := tree.All()
	if len(all) != n {
		t.Fatalf("len(All()) = %d, want %d", len(all), n)
	}
	for i := 1; i < len(all); i++ {
		if !all[i-1].Less(all[i]) {
			t.Fatalf("rows out of order at %d: %v then %v", i, all[i-1], all[i])
		}
	}
}

func TestRangeBounds(t *testing.T) {
	tree := newMemTree()
	for i := 0; i < 200; i++ {
		tree.Insert(row.UInt64Row{Val: uint64(i)})
	}
	got := tree.Range(row.UInt64Row{Val: 50}, row.UInt64Row{Val: 55})
	if len(got) != 5 {
		t.Fatalf("Range(50,55) returned %d rows, want 5", len(got))
	}
	for i, r := range got {
		if r.Val != uint64(50+i) {
			t.Fatalf("Range(50,55)[%d] = %d, want %d", i, r.Val, 50+i)
		}
	}
}

func TestDuplicateInsertOverwritesKeyValueRow(t *testing.T) {
	pm := pageio.NewMemoryPageManager[row.KeyValueRow]()
	tree := New[row.KeyValueRow](pm, pageio.NullPageID)

	added := tree.Insert(row.NewKeyValueRow(1, 100))
	if !added {
		t.Fatalf("first insert should report added=true")
	}
	added = tree.Insert(row.NewKeyValueRow(1, 200))
	if added {
		t.Fatalf("second insert with same key should report added=false")
	}

	got, ok := tree.Find(row.NewKeyValueRow(1, 0))
	if !ok || got.Value != 200 {
		t.Fatalf("Find(1) = %+v, want value 200", got)
	}
}

func TestUpdateInPlace(t *testing.T) {
	pm := pageio.NewMemoryPageManager[row.KeyValueRow]()
	tree := New[row.KeyValueRow](pm, pageio.NullPageID)
	tree.Insert(row.NewKeyValueRow(1, 10))

	updated, ok := tree.UpdateInPlace(row.NewKeyValueRow(1, 0), func(cur row.KeyValueRow) row.KeyValueRow {
		cur.Value += 5
		return cur
	})
	if !ok || updated.Value != 15 {
		t.Fatalf("UpdateInPlace result = %+v, %v", updated, ok)
	}

	got, _ := tree.Find(row.NewKeyValueRow(1, 0))
	if got.Value != 15 {
		t.Fatalf("value after UpdateInPlace = %d, want 15", got.Value)
	}
}

func TestUpdateInPlaceRejectsKeyChange(t *testing.T) {
	pm := pageio.NewMemoryPageManager[row.KeyValueRow]()
	tree := New[row.KeyValueRow](pm, pageio.NullPageID)
	tree.Insert(row.NewKeyValueRow(1, 10))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when mutation changes the order key")
		}
	}()
	tree.UpdateInPlace(row.NewKeyValueRow(1, 0), func(cur row.KeyValueRow) row.KeyValueRow {
		cur.Key = 2
		return cur
	})
}

func TestInsertRemoveSoak(t *testing.T) {
	tree := newMemTree()
	rng := rand.New(rand.NewSource(42))
	present := make(map[uint64]bool)

	const n = 3000
	for i := 0; i < n; i++ {
		v := uint64(rng.Intn(n / 2))
		if rng.Intn(2) == 0 {
			tree.Insert(row.UInt64Row{Val: v})
			present[v] = true
		} else {
			tree.Remove(row.UInt64Row{Val: v})
			delete(present, v)
		}
	}

	var want []uint64
	for v := range present {
		want = append(want, v)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	got := tree.All()
	if len(got) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(got), len(want))
	}
	for i, r := range got {
		if r.Val != want[i] {
			t.Fatalf("entry %d: got %d, want %d", i, r.Val, want[i])
		}
	}
}

func TestIteratorMatchesRange(t *testing.T) {
	tree := newMemTree()
	for i := 0; i < 500; i++ {
		tree.Insert(row.UInt64Row{Val: uint64(i)})
	}

	it := tree.Iterator(row.UInt64Row{Val: 100}, row.UInt64Row{Val: 110})
	var got []uint64
	var largest row.UInt64Row
	largest = largest.Largest()
	for v := it.Current(); v != largest; v = it.Next() {
		got = append(got, v.Val)
	}
	if len(got) != 10 {
		t.Fatalf("iterator produced %d rows, want 10", len(got))
	}
	for i, v := range got {
		if v != uint64(100+i) {
			t.Fatalf("got[%d] = %d, want %d", i, v, 100+i)
		}
	}
}

func TestDiskBackedTreePersistsAcrossReopen(t *testing.T) {
	dir := testutil.TempDir(t) + "/tree"
	pm, err := pageio.OpenDiskPageManager[row.UInt64Row](dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	tree := New[row.UInt64Row](pm, pageio.NullPageID)
	for i := 0; i < 300; i++ {
		tree.Insert(row.UInt64Row{Val: uint64(i)})
	}
	root := tree.Root()
	if err := tree.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := pm.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopenedPM, err := pageio.OpenDiskPageManager[row.UInt64Row](dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopenedPM.Close()
	reopened := New[row.UInt64Row](reopenedPM, root)
	all := reopened.All()
	if len(all) != 300 {
		t.Fatalf("reopened tree has %d rows, want 300", len(all))
	}
}
