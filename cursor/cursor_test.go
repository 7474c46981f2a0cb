package cursor

import (
	"testing"

	"github.com/intellect4all/invidx/common"
	"github.com/intellect4all/invidx/row"
)

func vals(vs ...uint64) []row.UInt64Row {
	out := make([]row.UInt64Row, len(vs))
	for i, v := range vs {
		out[i] = row.UInt64Row{Val: v}
	}
	return out
}

func drain(c Cursor[row.UInt64Row]) []uint64 {
	var out []uint64
	var largest row.UInt64Row
	largest = largest.Largest()
	for v := c.Current(); !rowsEqual(v, largest); v = c.Next() {
		out = append(out, v.Val)
	}
	return out
}

func TestVectorIteratorSkipTo(t *testing.T) {
	v := NewVectorIterator(vals(1, 3, 5, 7))
	if got := v.SkipTo(row.UInt64Row{Val: 4}); got.Val != 5 {
		t.Fatalf("SkipTo(4) = %d, want 5", got.Val)
	}
	if got := v.Next(); got.Val != 7 {
		t.Fatalf("Next() = %d, want 7", got.Val)
	}
	if got := v.Next(); got.Val != (row.UInt64Row{}).Largest().Val {
		t.Fatalf("Next() past end = %d, want largest", got.Val)
	}
}

func TestIntersectionBasic(t *testing.T) {
	a := NewVectorIterator(vals(1, 2, 3, 4, 5, 6))
	b := NewVectorIterator(vals(2, 4, 6, 8))
	it, err := NewIntersectionIterator([]Cursor[row.UInt64Row]{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := drain(it)
	want := []uint64{2, 4, 6}
	if !equalSlices(got, want) {
		t.Fatalf("intersection = %v, want %v", got, want)
	}
}

func TestIntersectionSingleOperand(t *testing.T) {
	a := NewVectorIterator(vals(1, 2, 3))
	it, err := NewIntersectionIterator([]Cursor[row.UInt64Row]{a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := drain(it)
	if !equalSlices(got, []uint64{1, 2, 3}) {
		t.Fatalf("intersection of one operand = %v, want [1 2 3]", got)
	}
}

func TestIntersectionEmptyOperandList(t *testing.T) {
	_, err := NewIntersectionIterator([]Cursor[row.UInt64Row]{})
	if err != common.ErrEmptyOperandList {
		t.Fatalf("err = %v, want ErrEmptyOperandList", err)
	}
}

func TestUnionBasic(t *testing.T) {
	a := NewVectorIterator(vals(1, 3, 5))
	b := NewVectorIterator(vals(2, 3, 4))
	it, err := NewUnionIterator([]Cursor[row.UInt64Row]{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := drain(it)
	want := []uint64{1, 2, 3, 4, 5}
	if !equalSlices(got, want) {
		t.Fatalf("union = %v, want %v", got, want)
	}
}

func TestUnionEmptyOperandList(t *testing.T) {
	_, err := NewUnionIterator([]Cursor[row.UInt64Row]{})
	if err != common.ErrEmptyOperandList {
		t.Fatalf("err = %v, want ErrEmptyOperandList", err)
	}
}

func TestGeneralIntersectionNegation(t *testing.T) {
	positive := NewVectorIterator(vals(1, 2, 3, 4, 5))
	negative := NewVectorIterator(vals(2, 4))
	it, err := NewGeneralIntersectionIterator([]Operand[row.UInt64Row]{
		{Cursor: positive, Negated: false},
		{Cursor: negative, Negated: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := drain(it)
	want := []uint64{1, 3, 5}
	if !equalSlices(got, want) {
		t.Fatalf("general intersection = %v, want %v", got, want)
	}
}

func TestGeneralIntersectionRequiresPositiveOperand(t *testing.T) {
	negative := NewVectorIterator(vals(1, 2))
	_, err := NewGeneralIntersectionIterator([]Operand[row.UInt64Row]{
		{Cursor: negative, Negated: true},
	})
	if err != common.ErrMissingPositiveOperand {
		t.Fatalf("err = %v, want ErrMissingPositiveOperand", err)
	}
}

type kvAlignment struct {
	key    uint64
	values []uint64
}

func drainKVUnion(it *KVUnionIterator[row.KeyValueRow]) []kvAlignment {
	var out []kvAlignment
	for key, values, ok := it.Current(); ok; key, values, ok = it.Next() {
		cp := make([]uint64, len(values))
		copy(cp, values)
		out = append(out, kvAlignment{key: key, values: cp})
	}
	return out
}

func TestKVUnionEmptyOperandList(t *testing.T) {
	_, err := NewKVUnionIterator([]Cursor[row.KeyValueRow]{})
	if err != common.ErrEmptyOperandList {
		t.Fatalf("err = %v, want ErrEmptyOperandList", err)
	}
}

// TestKVUnionAlignsAndFillsSentinel mirrors the (k=3,v=100)/token-1,
// (k=3,v=200)+(k=5,v=201)/token-2 KV union scenario: kv_union([1,2])
// yields [(3,[100,200]), (5,[largest-sentinel,201])].
func TestKVUnionAlignsAndFillsSentinel(t *testing.T) {
	token1 := NewVectorIterator([]row.KeyValueRow{
		row.NewKeyValueRow(3, 100),
	})
	token2 := NewVectorIterator([]row.KeyValueRow{
		row.NewKeyValueRow(3, 200),
		row.NewKeyValueRow(5, 201),
	})
	it, err := NewKVUnionIterator([]Cursor[row.KeyValueRow]{token1, token2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sentinel := row.KeyValueRow{}.Largest().KVValue()
	got := drainKVUnion(it)
	want := []kvAlignment{
		{key: 3, values: []uint64{100, 200}},
		{key: 5, values: []uint64{sentinel, 201}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i].key != want[i].key || !equalSlices(got[i].values, want[i].values) {
			t.Fatalf("entry %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func equalSlices(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
