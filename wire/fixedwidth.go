package wire

import (
	"io"
	"math"

	"github.com/landru27/gonbt/endian"
)

// fixedWidth implements the portion of Encoding that never changes shape
// across the three wire encodings: 8/16-bit integers, floats, and the
// fixed-width 32-bit length form used for array and list counts.
// BigEndian and LittleEndian embed it unmodified; NetworkLittleEndian
// embeds it too but shadows ReadI32/WriteI32/ReadI64/WriteI64 with its
// varint forms. Because Go method sets resolve statically, ReadLen32 and
// WriteLen32 always call fixedWidth's own fixed-width I32 methods even
// from an embedding type that overrides ReadI32/WriteI32.
type fixedWidth struct {
	engine endian.EndianEngine
}

func (f fixedWidth) ReadU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

func (f fixedWidth) ReadI8(r io.Reader) (int8, error) {
	v, err := f.ReadU8(r)

	return int8(v), err
}

func (f fixedWidth) ReadI16(r io.Reader) (int16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return int16(f.engine.Uint16(b[:])), nil
}

func (f fixedWidth) ReadI32(r io.Reader) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return int32(f.engine.Uint32(b[:])), nil
}

func (f fixedWidth) ReadI64(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return int64(f.engine.Uint64(b[:])), nil
}

func (f fixedWidth) ReadF32(r io.Reader) (float32, error) {
	v, err := f.ReadI32(r)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(v)), nil
}

func (f fixedWidth) ReadF64(r io.Reader) (float64, error) {
	v, err := f.ReadI64(r)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(uint64(v)), nil
}

func (f fixedWidth) ReadLen32(r io.Reader) (int32, error) {
	return f.ReadI32(r)
}

func (f fixedWidth) WriteU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})

	return err
}

func (f fixedWidth) WriteI8(w io.Writer, v int8) error {
	return f.WriteU8(w, uint8(v))
}

func (f fixedWidth) WriteI16(w io.Writer, v int16) error {
	var b [2]byte
	f.engine.PutUint16(b[:], uint16(v))
	_, err := w.Write(b[:])

	return err
}

func (f fixedWidth) WriteI32(w io.Writer, v int32) error {
	var b [4]byte
	f.engine.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])

	return err
}

func (f fixedWidth) WriteI64(w io.Writer, v int64) error {
	var b [8]byte
	f.engine.PutUint64(b[:], uint64(v))
	_, err := w.Write(b[:])

	return err
}

func (f fixedWidth) WriteF32(w io.Writer, v float32) error {
	return f.WriteI32(w, int32(math.Float32bits(v))) //nolint:gosec
}

func (f fixedWidth) WriteF64(w io.Writer, v float64) error {
	return f.WriteI64(w, int64(math.Float64bits(v))) //nolint:gosec
}

func (f fixedWidth) WriteLen32(w io.Writer, n int32) error {
	return f.WriteI32(w, n)
}
