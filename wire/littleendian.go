package wire

import (
	"io"

	"github.com/landru27/gonbt/endian"
)

// LittleEndian is the wire encoding used by Minecraft: Bedrock Edition
// world saves. It is identical in shape to BigEndian, byte order flipped;
// it must not be confused with NetworkLittleEndian, which additionally
// varint-encodes signed 32/64-bit integers and the string length.
type LittleEndian struct {
	fixedWidth
}

// NewLittleEndian returns the little-endian Encoding.
func NewLittleEndian() LittleEndian {
	return LittleEndian{fixedWidth{engine: endian.GetLittleEndianEngine()}}
}

// ReadStringLen reads a 16-bit signed length prefix.
func (e LittleEndian) ReadStringLen(r io.Reader) (int32, error) {
	n, err := e.ReadI16(r)

	return int32(n), err
}

// WriteStringLen writes a 16-bit signed length prefix.
func (e LittleEndian) WriteStringLen(w io.Writer, n int32) error {
	return e.WriteI16(w, int16(n)) //nolint:gosec
}
