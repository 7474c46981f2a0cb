package row

import (
	"encoding/binary"
	"fmt"
	"math"
)

// UInt64Row is the simplest row shape: a single uint64 value, fully
// participating in the order.
type UInt64Row struct {
	Val uint64
}

// NewUInt64Row constructs a UInt64Row.
func NewUInt64Row(val uint64) UInt64Row {
	return UInt64Row{Val: val}
}

func (r UInt64Row) Less(other UInt64Row) bool {
	return r.Val < other.Val
}

func (r UInt64Row) Next() UInt64Row {
	return UInt64Row{Val: r.Val + 1}
}

func (r UInt64Row) Smallest() UInt64Row {
	return UInt64Row{Val: 0}
}

func (r UInt64Row) Largest() UInt64Row {
	return UInt64Row{Val: math.MaxUint64}
}

func (r UInt64Row) EncodedSize() int {
	return 8
}

func (r UInt64Row) Encode(dst []byte) {
	binary.BigEndian.PutUint64(dst, r.Val)
}

func (r UInt64Row) Decode(src []byte) UInt64Row {
	return UInt64Row{Val: binary.BigEndian.Uint64(src)}
}

func (r UInt64Row) String() string {
	return fmt.Sprintf("%d", r.Val)
}
