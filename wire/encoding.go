// Package wire implements the three NBT wire encodings: BigEndian,
// LittleEndian, and NetworkLittleEndian. Each is a small value type
// satisfying the Encoding interface, so the tag codec is written once
// against the interface and the three encodings plug in as strategies.
package wire

import "io"

// Encoding is the set of primitive read/write operations that differ
// between the supported wire encodings. ReadI32/ReadI64 and their Write
// counterparts carry signed integer *values* and are varint-encoded under
// NetworkLittleEndian; ReadLen32/WriteLen32 carry array and list element
// counts, which stay fixed-width 32-bit in every encoding. Compounds carry
// no count; they end at an END id byte.
// ReadStringLen/WriteStringLen carry the one length prefix that does vary
// in width: 16-bit fixed under BigEndian/LittleEndian, unsigned varint
// under NetworkLittleEndian.
type Encoding interface {
	ReadU8(r io.Reader) (uint8, error)
	ReadI8(r io.Reader) (int8, error)
	ReadI16(r io.Reader) (int16, error)
	ReadI32(r io.Reader) (int32, error)
	ReadI64(r io.Reader) (int64, error)
	ReadF32(r io.Reader) (float32, error)
	ReadF64(r io.Reader) (float64, error)
	ReadLen32(r io.Reader) (int32, error)
	ReadStringLen(r io.Reader) (int32, error)

	WriteU8(w io.Writer, v uint8) error
	WriteI8(w io.Writer, v int8) error
	WriteI16(w io.Writer, v int16) error
	WriteI32(w io.Writer, v int32) error
	WriteI64(w io.Writer, v int64) error
	WriteF32(w io.Writer, v float32) error
	WriteF64(w io.Writer, v float64) error
	WriteLen32(w io.Writer, n int32) error
	WriteStringLen(w io.Writer, n int32) error
}
