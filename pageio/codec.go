package pageio

import (
	"encoding/binary"

	"github.com/intellect4all/invidx/row"
)

// encodePage serializes p into a dst buffer of exactly byteSize[T]()
// bytes: header (self, next, depth, length), then InternalCapacity
// encoded rows, then InternalCapacity 4-byte child PageIDs (zero/unused
// for leaves). Go has no portable "reinterpret struct as bytes", so the
// layout is written out field by field instead.
func encodePage[T row.Row[T]](p *Page[T]) []byte {
	var zero T
	rowSize := zero.EncodedSize()
	buf := make([]byte, byteSize[T]())

	binary.BigEndian.PutUint32(buf[0:], uint32(p.Self))
	binary.BigEndian.PutUint32(buf[4:], uint32(p.Next))
	binary.BigEndian.PutUint16(buf[8:], p.Depth)
	binary.BigEndian.PutUint16(buf[10:], p.Length)

	off := 12
	for i := 0; i < int(p.Length); i++ {
		p.Rows[i].Encode(buf[off:])
		off += rowSize
	}
	off = 12 + InternalCapacity*rowSize
	if !p.IsLeaf() {
		for i := 0; i < int(p.Length); i++ {
			binary.BigEndian.PutUint32(buf[off+i*4:], uint32(p.Children[i]))
		}
	}
	return buf
}

// decodePage deserializes a byteSize[T]()-byte buffer produced by
// encodePage back into a Page[T].
func decodePage[T row.Row[T]](buf []byte) *Page[T] {
	var zero T
	rowSize := zero.EncodedSize()

	p := &Page[T]{
		Self:   PageID(binary.BigEndian.Uint32(buf[0:])),
		Next:   PageID(binary.BigEndian.Uint32(buf[4:])),
		Depth:  binary.BigEndian.Uint16(buf[8:]),
		Length: binary.BigEndian.Uint16(buf[10:]),
	}
	p.Rows = make([]T, p.Length, InternalCapacity)
	off := 12
	for i := 0; i < int(p.Length); i++ {
		p.Rows[i] = zero.Decode(buf[off:])
		off += rowSize
	}
	if !p.IsLeaf() {
		childOff := 12 + InternalCapacity*rowSize
		p.Children = make([]PageID, p.Length, InternalCapacity)
		for i := 0; i < int(p.Length); i++ {
			p.Children[i] = PageID(binary.BigEndian.Uint32(buf[childOff+i*4:]))
		}
	}
	return p
}
