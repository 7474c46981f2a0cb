package row

import "testing"

func TestUInt64RowOrderAndCodec(t *testing.T) {
	a := UInt64Row{Val: 5}
	b := UInt64Row{Val: 9}
	if !a.Less(b) || b.Less(a) {
		t.Fatalf("expected 5 < 9")
	}

	buf := make([]byte, a.EncodedSize())
	a.Encode(buf)
	var decoded UInt64Row
	decoded = decoded.Decode(buf)
	if decoded != a {
		t.Fatalf("round trip mismatch: got %v want %v", decoded, a)
	}

	if a.Next().Val != 6 {
		t.Fatalf("Next() = %d, want 6", a.Next().Val)
	}
	if a.Smallest().Val != 0 {
		t.Fatalf("Smallest() = %d, want 0", a.Smallest().Val)
	}
}

func TestPairRowOrder(t *testing.T) {
	a := PairRow{Doc: 1, Val: 100}
	b := PairRow{Doc: 1, Val: 50}
	c := PairRow{Doc: 2, Val: 0}

	if !b.Less(a) {
		t.Fatalf("expected same-doc rows ordered by Val")
	}
	if !a.Less(c) {
		t.Fatalf("expected doc 1 < doc 2 regardless of Val")
	}

	buf := make([]byte, a.EncodedSize())
	a.Encode(buf)
	var decoded PairRow
	decoded = decoded.Decode(buf)
	if decoded != a {
		t.Fatalf("round trip mismatch: got %v want %v", decoded, a)
	}
}

func TestKeyValueRowKeyOnlyOrder(t *testing.T) {
	a := NewKeyValueRow(10, 1)
	b := NewKeyValueRow(10, 999)

	if a.Less(b) || b.Less(a) {
		t.Fatalf("rows with equal key must compare equal regardless of value")
	}

	merged := a.Overwrite(b)
	if merged.Key != 10 || merged.Value != 999 {
		t.Fatalf("Overwrite() = %+v, want key=10 value=999", merged)
	}

	buf := make([]byte, a.EncodedSize())
	a.Encode(buf)
	var decoded KeyValueRow
	decoded = decoded.Decode(buf)
	if decoded != a {
		t.Fatalf("round trip mismatch: got %v want %v", decoded, a)
	}
}
