package wire

import (
	"io"

	"github.com/landru27/gonbt/endian"
)

// NetworkLittleEndian is the wire encoding used in Minecraft: Bedrock
// Edition's network protocol. 8/16-bit integers and floats stay
// fixed-width little-endian (inherited from fixedWidth, same as
// LittleEndian); signed 32/64-bit integer values are zig-zag varints, and
// the string length prefix is a plain unsigned varint. Array and list
// counts are unaffected: they use fixedWidth's ReadLen32/WriteLen32, which
// stay fixed 32-bit even here.
type NetworkLittleEndian struct {
	fixedWidth
}

// NewNetworkLittleEndian returns the network-little-endian Encoding.
func NewNetworkLittleEndian() NetworkLittleEndian {
	return NetworkLittleEndian{fixedWidth{engine: endian.GetLittleEndianEngine()}}
}

// ReadI32 reads a zig-zag varint-encoded signed 32-bit value.
func (e NetworkLittleEndian) ReadI32(r io.Reader) (int32, error) {
	u, err := readVarUint(r, 5, 32)
	if err != nil {
		return 0, err
	}

	return zigzagDecode32(uint32(u)), nil
}

// WriteI32 writes v as a zig-zag varint.
func (e NetworkLittleEndian) WriteI32(w io.Writer, v int32) error {
	return writeVarUint(w, uint64(zigzagEncode32(v)))
}

// ReadI64 reads a zig-zag varint-encoded signed 64-bit value.
func (e NetworkLittleEndian) ReadI64(r io.Reader) (int64, error) {
	u, err := readVarUint(r, 10, 64)
	if err != nil {
		return 0, err
	}

	return zigzagDecode64(u), nil
}

// WriteI64 writes v as a zig-zag varint.
func (e NetworkLittleEndian) WriteI64(w io.Writer, v int64) error {
	return writeVarUint(w, zigzagEncode64(v))
}

// ReadStringLen reads a plain (non-zig-zag) unsigned varint length.
func (e NetworkLittleEndian) ReadStringLen(r io.Reader) (int32, error) {
	u, err := readVarUint(r, 5, 32)
	if err != nil {
		return 0, err
	}

	return int32(u), nil //nolint:gosec
}

// WriteStringLen writes n as a plain unsigned varint.
func (e NetworkLittleEndian) WriteStringLen(w io.Writer, n int32) error {
	return writeVarUint(w, uint64(uint32(n)))
}
