package codec

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/landru27/gonbt/errs"
	"github.com/landru27/gonbt/tag"
	"github.com/landru27/gonbt/wire"
)

func allEncodings() map[string]wire.Encoding {
	return map[string]wire.Encoding{
		"BigEndian":           wire.NewBigEndian(),
		"LittleEndian":        wire.NewLittleEndian(),
		"NetworkLittleEndian": wire.NewNetworkLittleEndian(),
	}
}

func sampleCompound() *tag.Compound {
	c := tag.NewCompound()
	c.Set("byte", tag.Byte(1))
	c.Set("short", tag.Short(2))
	c.Set("int", tag.Int(3))
	c.Set("long", tag.Long(4))
	c.Set("float", tag.Float(5.5))
	c.Set("double", tag.Double(6.5))
	c.Set("string", tag.StringFromText("hello"))
	c.Set("byteArray", tag.ByteArray{1, 2, 3})
	c.Set("intArray", tag.IntArray{1, 2, 3})
	c.Set("longArray", tag.LongArray{1, 2, 3})

	l := tag.NewList(tag.TypeInt)
	l.Append(tag.Int(10))
	l.Append(tag.Int(20))
	c.Set("list", l)

	nested := tag.NewCompound()
	nested.Set("inner", tag.StringFromText("value"))
	c.Set("nested", nested)

	return c
}

func TestRoundTrip_AllEncodings(t *testing.T) {
	for name, enc := range allEncodings() {
		t.Run(name, func(t *testing.T) {
			d, err := NewDecoder(enc)
			require.NoError(t, err)
			e, err := NewEncoder(enc)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, e.WriteRoot(&buf, "root", sampleCompound()))

			name, v, err := d.ReadRoot(&buf)
			require.NoError(t, err)
			require.Equal(t, "root", name)

			c, ok := v.(*tag.Compound)
			require.True(t, ok)
			require.Equal(t, 12, c.Len())

			bv, _ := c.GetByte("byte")
			require.Equal(t, tag.Byte(1), bv)

			sv, _ := c.GetString("string")
			text, _ := sv.Text()
			require.Equal(t, "hello", text)

			lv, _ := c.GetList("list")
			require.Equal(t, 2, lv.Len())
			require.Equal(t, tag.Int(10), lv.At(0))

			nv, _ := c.GetCompound("nested")
			iv, _ := nv.GetString("inner")
			itext, _ := iv.Text()
			require.Equal(t, "value", itext)
		})
	}
}

func TestRoundTrip_EmptyList(t *testing.T) {
	for name, enc := range allEncodings() {
		t.Run(name, func(t *testing.T) {
			d, err := NewDecoder(enc)
			require.NoError(t, err)
			e, err := NewEncoder(enc)
			require.NoError(t, err)

			c := tag.NewCompound()
			c.Set("empty", tag.NewList(tag.TypeByte))

			var buf bytes.Buffer
			require.NoError(t, e.WriteRoot(&buf, "", c))

			_, v, err := d.ReadRoot(&buf)
			require.NoError(t, err)

			got := v.(*tag.Compound)
			l, ok := got.GetList("empty")
			require.True(t, ok)
			require.Equal(t, tag.TypeEnd, l.ElemType)
			require.Equal(t, 0, l.Len())
		})
	}
}

func TestReadRoot_EndAtRootIsError(t *testing.T) {
	enc := wire.NewBigEndian()
	d, err := NewDecoder(enc)
	require.NoError(t, err)

	buf := bytes.NewReader([]byte{0x00})
	_, _, err = d.ReadRoot(buf)
	require.ErrorIs(t, err, errs.ErrEndAtRoot)
}

func TestReadRoot_UnknownTagType(t *testing.T) {
	enc := wire.NewBigEndian()
	d, err := NewDecoder(enc)
	require.NoError(t, err)

	// id 0xFF, name length 0
	buf := bytes.NewReader([]byte{0xFF, 0x00, 0x00})
	_, _, err = d.ReadRoot(buf)
	require.ErrorIs(t, err, errs.ErrUnknownTagType)
}

func TestWriteRoot_HeterogeneousListRejected(t *testing.T) {
	enc := wire.NewBigEndian()
	e, err := NewEncoder(enc)
	require.NoError(t, err)

	l := tag.NewList(tag.TypeByte)
	l.Append(tag.Byte(1))
	l.Append(tag.Int(2))

	var buf bytes.Buffer
	err = e.WriteRoot(&buf, "root", l)
	require.ErrorIs(t, err, errs.ErrUnexpectedTag)

	var pe *errs.PathError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "[1]", pe.Path.String())
}

func TestReadRoot_TypedCompoundMismatch(t *testing.T) {
	enc := wire.NewBigEndian()
	e, err := NewEncoder(enc)
	require.NoError(t, err)
	d, err := NewDecoder(enc)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, e.WriteRoot(&buf, "n", tag.Int(5)))

	_, _, err = d.ExpectCompound(&buf)
	require.ErrorIs(t, err, errs.ErrUnexpectedTag)
}

func TestReadRoot_TypedMatchSucceeds(t *testing.T) {
	enc := wire.NewBigEndian()
	e, err := NewEncoder(enc)
	require.NoError(t, err)
	d, err := NewDecoder(enc)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, e.WriteRoot(&buf, "n", tag.Int(5)))

	name, v, err := d.ExpectInt(&buf)
	require.NoError(t, err)
	require.Equal(t, "n", name)
	require.Equal(t, tag.Int(5), v)
}

func TestDecode_NestedCompoundErrorPathIncludesKeys(t *testing.T) {
	enc := wire.NewBigEndian()

	var buf bytes.Buffer
	buf.Write([]byte{0x0A, 0x00, 0x00})                               // root compound, no name
	buf.Write([]byte{0x0A, 0x00, 0x05, 'c', 'h', 'i', 'l', 'd'})       // nested compound "child"
	buf.Write([]byte{0x03, 0x00, 0x03, 'b', 'a', 'd'})                // Int "bad", header only
	buf.Write([]byte{0x00, 0x00})                                     // truncated: only 2 of 4 payload bytes

	d, err := NewDecoder(enc)
	require.NoError(t, err)

	_, _, err = d.ReadRoot(&buf)
	require.Error(t, err)

	var pe *errs.PathError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "child.bad", pe.Path.String())
}

func TestDecode_InvalidStringFallsBackToRawBytes(t *testing.T) {
	enc := wire.NewBigEndian()

	// String tag: id=0x08, name len=0, payload len=2, payload=invalid overlong 0xC1 0x81
	wireBytes := []byte{0x08, 0x00, 0x00, 0x00, 0x02, 0xC1, 0x81}

	d, err := NewDecoder(enc)
	require.NoError(t, err)

	_, v, err := d.ReadRoot(bytes.NewReader(wireBytes))
	require.NoError(t, err)

	s, ok := v.(tag.String)
	require.True(t, ok)
	require.True(t, s.IsRaw())

	raw, ok := s.RawBytes()
	require.True(t, ok)
	require.Equal(t, []byte{0xC1, 0x81}, raw)
}

func TestDecode_DuplicateKeyLastWins(t *testing.T) {
	// Compound containing two Int children named "a", values 1 then 2.
	enc := wire.NewBigEndian()

	var buf bytes.Buffer
	w := func(b ...byte) { buf.Write(b) }
	w(0x0A, 0x00, 0x00) // Compound, name len 0

	w(0x03, 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x01) // Int "a" = 1
	w(0x03, 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x02) // Int "a" = 2
	w(0x00)                                          // END

	d, err := NewDecoder(enc)
	require.NoError(t, err)

	_, v, err := d.ReadRoot(&buf)
	require.NoError(t, err)

	c := v.(*tag.Compound)
	require.Equal(t, 1, c.Len())

	got, ok := c.GetInt("a")
	require.True(t, ok)
	require.Equal(t, tag.Int(2), got)
}

func TestDecode_SeqLengthViolationOnNegativeLength(t *testing.T) {
	enc := wire.NewBigEndian()
	// ByteArray tag: id=0x07, name len=0, array len = -1
	wireBytes := []byte{0x07, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}

	d, err := NewDecoder(enc)
	require.NoError(t, err)

	_, _, err = d.ReadRoot(bytes.NewReader(wireBytes))
	require.ErrorIs(t, err, errs.ErrSeqLengthViolation)
}

func TestRoundTrip_FloatNaNSurvivesBitPattern(t *testing.T) {
	for name, enc := range allEncodings() {
		t.Run(name, func(t *testing.T) {
			e, err := NewEncoder(enc)
			require.NoError(t, err)
			d, err := NewDecoder(enc)
			require.NoError(t, err)

			c := tag.NewCompound()
			c.Set("nan", tag.Double(math.NaN()))

			var buf bytes.Buffer
			require.NoError(t, e.WriteRoot(&buf, "", c))

			_, v, err := d.ReadRoot(&buf)
			require.NoError(t, err)

			got, _ := v.(*tag.Compound).GetDouble("nan")
			require.Equal(t, math.Float64bits(math.NaN()), math.Float64bits(float64(got)))
		})
	}
}

func TestWithMaxDepth_RejectsDeepRecursion(t *testing.T) {
	enc := wire.NewBigEndian()
	e, err := NewEncoder(enc, WithMaxDepth(2))
	require.NoError(t, err)

	innermost := tag.NewCompound()
	innermost.Set("v", tag.Int(1))
	mid := tag.NewCompound()
	mid.Set("mid", innermost)
	outer := tag.NewCompound()
	outer.Set("outer", mid)

	var buf bytes.Buffer
	err = e.WriteRoot(&buf, "", outer)
	require.Error(t, err)
}

func TestWithMaxDepth_RejectsNonPositive(t *testing.T) {
	_, err := NewDecoder(wire.NewBigEndian(), WithMaxDepth(0))
	require.Error(t, err)
}
