package row

import (
	"encoding/binary"
	"fmt"
	"math"
)

// KeyValueRow is a (key, value) row whose order and equality consider
// only Key: a SkipTree[KeyValueRow] is effectively a map from Key to
// Value with last-write-wins semantics on insert.
type KeyValueRow struct {
	Key   uint64
	Value uint64
}

// NewKeyValueRow constructs a KeyValueRow.
func NewKeyValueRow(key, value uint64) KeyValueRow {
	return KeyValueRow{Key: key, Value: value}
}

func (r KeyValueRow) Less(other KeyValueRow) bool {
	return r.Key < other.Key
}

func (r KeyValueRow) Next() KeyValueRow {
	return KeyValueRow{Key: r.Key + 1}
}

func (r KeyValueRow) Smallest() KeyValueRow {
	return KeyValueRow{Key: 0, Value: 0}
}

func (r KeyValueRow) Largest() KeyValueRow {
	return KeyValueRow{Key: math.MaxUint64, Value: math.MaxUint64}
}

// Overwrite implements row.Overwriter: a second insert under the same Key
// replaces Value but keeps the (unchanging) order key.
func (r KeyValueRow) Overwrite(newer KeyValueRow) KeyValueRow {
	return KeyValueRow{Key: r.Key, Value: newer.Value}
}

// KVKey implements row.KV.
func (r KeyValueRow) KVKey() uint64 { return r.Key }

// KVValue implements row.KV.
func (r KeyValueRow) KVValue() uint64 { return r.Value }

// WithKVKey implements row.KV.
func (r KeyValueRow) WithKVKey(key uint64) KeyValueRow {
	return KeyValueRow{Key: key, Value: 0}
}

func (r KeyValueRow) EncodedSize() int {
	return 16
}

func (r KeyValueRow) Encode(dst []byte) {
	binary.BigEndian.PutUint64(dst, r.Key)
	binary.BigEndian.PutUint64(dst[8:], r.Value)
}

func (r KeyValueRow) Decode(src []byte) KeyValueRow {
	return KeyValueRow{
		Key:   binary.BigEndian.Uint64(src),
		Value: binary.BigEndian.Uint64(src[8:]),
	}
}

func (r KeyValueRow) String() string {
	return fmt.Sprintf("(%d:%d)", r.Key, r.Value)
}
