package invertedindex

import (
	"github.com/intellect4all/invidx/common"
	"github.com/intellect4all/invidx/cursor"
	"github.com/intellect4all/invidx/row"
)

// KVResult is one row of a KVUnion materialization.
type KVResult struct {
	Key uint64
	// Values[i] is the value tokens[i] holds at Key, or the sentinel
	// (row.KV's Largest().KVValue()) if tokens[i] has no posting there.
	Values []uint64
}

// kvRow is the runtime-asserted half of row.KV that KVUnion needs: a
// row's key and value, independent of the generic constraint T must
// satisfy to be an InvertedIndex's row type at all.
type kvRow interface {
	KVKey() uint64
	KVValue() uint64
}

func isLargestRow[T row.Row[T]](v T) bool {
	var zero T
	large := zero.Largest()
	return !v.Less(large) && !large.Less(v)
}

// KVUnion materializes the key-aligned union of tokens' postings: for
// every key any token holds a row at, Values[i] is the value tokens[i]
// holds there or the sentinel if tokens[i] has none. Every token's
// postings advance at most once per emitted key, mirroring
// cursor.KVUnionIterator but driven here as a materialized scan since
// idx's row type T is only known generically as row.Row[T] — whether it
// also satisfies row.KV[T] can only be checked at runtime.
//
// Returns common.ErrInvalidRowShape if T is not a key-only row, and
// common.ErrEmptyOperandList if tokens is empty.
func KVUnion[T row.Row[T]](idx *InvertedIndex[T], tokens []uint64) ([]KVResult, error) {
	var zero T
	largest, ok := any(zero.Largest()).(kvRow)
	if !ok {
		return nil, common.ErrInvalidRowShape
	}
	if len(tokens) == 0 {
		return nil, common.ErrEmptyOperandList
	}
	sentinel := largest.KVValue()

	children := make([]cursor.Cursor[T], len(tokens))
	for i, tok := range tokens {
		children[i] = idx.Iterator(tok)
	}

	var results []KVResult
	for {
		var lowestKey uint64
		haveLowest := false
		for _, c := range children {
			v := c.Current()
			if isLargestRow(v) {
				continue
			}
			key := any(v).(kvRow).KVKey()
			if !haveLowest || key < lowestKey {
				lowestKey = key
				haveLowest = true
			}
		}
		if !haveLowest {
			return results, nil
		}

		values := make([]uint64, len(children))
		for i, c := range children {
			v := c.Current()
			if !isLargestRow(v) && any(v).(kvRow).KVKey() == lowestKey {
				values[i] = any(v).(kvRow).KVValue()
				c.Next()
			} else {
				values[i] = sentinel
			}
		}
		results = append(results, KVResult{Key: lowestKey, Values: values})
	}
}
