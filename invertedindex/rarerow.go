package invertedindex

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/intellect4all/invidx/row"
)

// RareRow is an entry in the shared rare tree: a posting for a token
// that has not yet crossed RareThreshold insertions, multiplexed
// together with every other still-rare token's postings in one tree,
// ordered first by Token and then by the wrapped Row.
type RareRow[T row.Row[T]] struct {
	Token uint64
	Row   T
}

func (r RareRow[T]) Less(other RareRow[T]) bool {
	if r.Token != other.Token {
		return r.Token < other.Token
	}
	return r.Row.Less(other.Row)
}

func (r RareRow[T]) Next() RareRow[T] {
	return RareRow[T]{Token: r.Token, Row: r.Row.Next()}
}

func (r RareRow[T]) Smallest() RareRow[T] {
	var zero T
	return RareRow[T]{Token: 0, Row: zero.Smallest()}
}

func (r RareRow[T]) Largest() RareRow[T] {
	var zero T
	return RareRow[T]{Token: math.MaxUint64, Row: zero.Largest()}
}

func (r RareRow[T]) EncodedSize() int {
	var zero T
	return 8 + zero.EncodedSize()
}

func (r RareRow[T]) Encode(dst []byte) {
	binary.BigEndian.PutUint64(dst, r.Token)
	r.Row.Encode(dst[8:])
}

func (r RareRow[T]) Decode(src []byte) RareRow[T] {
	var zero T
	token := binary.BigEndian.Uint64(src)
	decoded := zero.Decode(src[8:])
	return RareRow[T]{Token: token, Row: decoded}
}

func (r RareRow[T]) String() string {
	return fmt.Sprintf("[RareRow token:%d row:%v]", r.Token, r.Row)
}
