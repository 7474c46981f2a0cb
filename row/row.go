// Package row defines the capability set a row type must satisfy to be
// stored in a skiptree.SkipTree or composed by the cursor package.
//
// Go has no template specialization on a value type's own static
// members, so the capability set becomes a generic constraint instead: a
// row type parameterizes skiptree.SkipTree[T] by implementing Row[T] on
// itself (the "curiously recurring" self-referential generic pattern).
package row

// RowType is the total-order + sentinel + successor capability set every
// row stored in a SkipTree must provide.
//
//   - Less reports whether the receiver's order key is strictly less than
//     other's. Equality is derived as !a.Less(b) && !b.Less(a); for a
//     key-only row type (KeyValueRow) Less must compare only the key, so
//     that derived equality is "equal by key".
//   - Next returns the smallest row strictly greater than the receiver;
//     used by cursor composition to advance a cursor past a consumed
//     value (skip_to(current.Next())).
//   - Smallest and Largest are the type's sentinel bounds. They ignore
//     the receiver's fields entirely and may be called on any value of
//     T, including a zero value.
type RowType[T any] interface {
	Less(other T) bool
	Next() T
	Smallest() T
	Largest() T
}

// Overwriter is an optional capability: a row type whose order key does
// not cover every field (KeyValueRow: ordered by Key only) implements it
// so that SkipTree.Insert can overwrite the payload of an existing row
// with the same key instead of adding a duplicate.
type Overwriter[T any] interface {
	// Overwrite returns a copy of the receiver with its non-key payload
	// fields replaced by newer's. The order key of the result must equal
	// the receiver's order key; SkipTree.Insert asserts this.
	Overwrite(newer T) T
}

// Codec is the fixed-width binary serialization capability pageio needs
// to persist a row inside a Page[T]. Every row type in this repo has a
// compile-time-constant encoded size, so Page[T] can lay out a dense
// array of rows.
type Codec[T any] interface {
	// EncodedSize is the constant number of bytes Encode writes and
	// Decode reads. It must be identical across all values of T.
	EncodedSize() int
	// Encode writes EncodedSize() bytes to the front of dst.
	Encode(dst []byte)
	// Decode reads EncodedSize() bytes from the front of src and returns
	// the decoded row.
	Decode(src []byte) T
}

// Row is the full capability set a concrete row type must implement to be
// used as the type parameter of skiptree.SkipTree, pageio.Page, and the
// cursor package.
type Row[T any] interface {
	RowType[T]
	Codec[T]
}

// KV is an optional capability for a key-only row type (one whose Less
// compares only a key, per RowType's doc on KeyValueRow): it exposes the
// key/value split that cursor.KVUnionIterator needs but that Row itself,
// being shape-agnostic, does not. KVKey and KVValue are named apart from
// any field of the same name (KeyValueRow.Key, KeyValueRow.Value) because
// Go forbids a field and a method sharing an identifier.
type KV[T any] interface {
	Row[T]

	// KVKey returns the receiver's key.
	KVKey() uint64
	// KVValue returns the receiver's value.
	KVValue() uint64
	// WithKVKey returns a row holding key and an arbitrary value, suitable
	// only as a skip_to seek target — Less for a KV row considers the key
	// alone, so the value does not affect where it lands.
	WithKVKey(key uint64) T
}
