package invertedindex

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/intellect4all/invidx/pageio"
)

// TokenRow is an entry in the header tree: one per token ever inserted,
// tracking how many times Insert has been called for it (Remove does not
// decrement this) and where its postings currently
// live. Root is pageio.NullPageID while the token is still "rare" (its
// postings live keyed by token inside the shared rare tree); once
// promoted, Root points at the token's own dedicated SkipTree. Ordered
// and compared by Token alone.
type TokenRow struct {
	Token uint64
	Count uint64
	Root  pageio.PageID
}

func (r TokenRow) Less(other TokenRow) bool {
	return r.Token < other.Token
}

func (r TokenRow) Next() TokenRow {
	return TokenRow{Token: r.Token + 1}
}

func (r TokenRow) Smallest() TokenRow {
	return TokenRow{Token: 0, Count: 0, Root: pageio.NullPageID}
}

func (r TokenRow) Largest() TokenRow {
	return TokenRow{Token: math.MaxUint64, Count: 0, Root: pageio.NullPageID}
}

func (r TokenRow) EncodedSize() int {
	return 20
}

func (r TokenRow) Encode(dst []byte) {
	binary.BigEndian.PutUint64(dst, r.Token)
	binary.BigEndian.PutUint64(dst[8:], r.Count)
	binary.BigEndian.PutUint32(dst[16:], uint32(r.Root))
}

func (r TokenRow) Decode(src []byte) TokenRow {
	return TokenRow{
		Token: binary.BigEndian.Uint64(src),
		Count: binary.BigEndian.Uint64(src[8:]),
		Root:  pageio.PageID(binary.BigEndian.Uint32(src[16:])),
	}
}

func (r TokenRow) String() string {
	return fmt.Sprintf("[TokenRow token:%d root:%d count:%d]", r.Token, r.Root, r.Count)
}
