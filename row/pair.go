package row

import (
	"encoding/binary"
	"fmt"
	"math"
)

// PairRow is a (docid, value) row where both fields participate in the
// order: ties on Doc are broken by Val.
type PairRow struct {
	Doc uint32
	Val uint32
}

// NewPairRow constructs a PairRow.
func NewPairRow(doc, val uint32) PairRow {
	return PairRow{Doc: doc, Val: val}
}

func (r PairRow) Less(other PairRow) bool {
	if r.Doc != other.Doc {
		return r.Doc < other.Doc
	}
	return r.Val < other.Val
}

func (r PairRow) Next() PairRow {
	if r.Val == math.MaxUint32 {
		return PairRow{Doc: r.Doc + 1}
	}
	return PairRow{Doc: r.Doc, Val: r.Val + 1}
}

func (r PairRow) Smallest() PairRow {
	return PairRow{Doc: 0, Val: 0}
}

func (r PairRow) Largest() PairRow {
	return PairRow{Doc: math.MaxUint32, Val: math.MaxUint32}
}

func (r PairRow) EncodedSize() int {
	return 8
}

func (r PairRow) Encode(dst []byte) {
	binary.BigEndian.PutUint32(dst, r.Doc)
	binary.BigEndian.PutUint32(dst[4:], r.Val)
}

func (r PairRow) Decode(src []byte) PairRow {
	return PairRow{
		Doc: binary.BigEndian.Uint32(src),
		Val: binary.BigEndian.Uint32(src[4:]),
	}
}

func (r PairRow) String() string {
	return fmt.Sprintf("(%d:%d)", r.Doc, r.Val)
}
