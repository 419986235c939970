package wire

import (
	"io"

	"github.com/landru27/gonbt/endian"
)

// BigEndian is the wire encoding most commonly seen in Minecraft: Java
// Edition saves and network traffic. Every multi-byte quantity, including
// the string length prefix, is big-endian fixed-width.
type BigEndian struct {
	fixedWidth
}

// NewBigEndian returns the big-endian Encoding.
func NewBigEndian() BigEndian {
	return BigEndian{fixedWidth{engine: endian.GetBigEndianEngine()}}
}

// ReadStringLen reads a 16-bit signed length prefix.
func (e BigEndian) ReadStringLen(r io.Reader) (int32, error) {
	n, err := e.ReadI16(r)

	return int32(n), err
}

// WriteStringLen writes a 16-bit signed length prefix.
func (e BigEndian) WriteStringLen(w io.Writer, n int32) error {
	return e.WriteI16(w, int16(n)) //nolint:gosec
}
