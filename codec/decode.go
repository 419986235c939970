package codec

import (
	"fmt"
	"io"
	"math"

	"github.com/landru27/gonbt/errs"
	"github.com/landru27/gonbt/mutf8"
	"github.com/landru27/gonbt/tag"
)

// hostileCapBudget bounds how much capacity a claimed sequence length is
// allowed to pre-reserve before any element has actually been read. A
// length field lifted from an untrusted stream is otherwise an invitation
// to allocate gigabytes for a four-byte claim.
const hostileCapBudget = 1024

func clampCap(n int32, elemSize int) int {
	if n <= 0 {
		return 0
	}

	budget := hostileCapBudget / elemSize
	if int(n) > budget {
		return budget
	}

	return int(n)
}

// ReadRoot reads one complete named tag: an id byte, a name, and that id's
// payload. An id of END is illegal at the root and reported as
// errs.ErrEndAtRoot.
func (d *Decoder) ReadRoot(r io.Reader) (string, tag.Tag, error) {
	id, err := d.enc.ReadU8(r)
	if err != nil {
		return "", nil, err
	}

	if tag.Type(id) == tag.TypeEnd {
		return "", nil, errs.ErrEndAtRoot
	}

	name, err := d.readName(r)
	if err != nil {
		return "", nil, err
	}

	v, err := d.readPayload(r, tag.Type(id), 0)
	if err != nil {
		return "", nil, err
	}

	return name, v, nil
}

func expectRoot[T tag.Tag](r io.Reader, d *Decoder, want tag.Type) (string, T, error) {
	name, v, err := d.ReadRoot(r)
	if err != nil {
		var zero T

		return "", zero, err
	}

	t, ok := v.(T)
	if !ok {
		var zero T

		return "", zero, errs.UnexpectedTag(byte(want), byte(v.Type()))
	}

	return name, t, nil
}

// ExpectByte reads a root tag, failing with errs.ErrUnexpectedTag if its
// id is not Byte.
func (d *Decoder) ExpectByte(r io.Reader) (string, tag.Byte, error) {
	return expectRoot[tag.Byte](r, d, tag.TypeByte)
}

// ExpectShort reads a root tag, failing with errs.ErrUnexpectedTag if its
// id is not Short.
func (d *Decoder) ExpectShort(r io.Reader) (string, tag.Short, error) {
	return expectRoot[tag.Short](r, d, tag.TypeShort)
}

// ExpectInt reads a root tag, failing with errs.ErrUnexpectedTag if its
// id is not Int.
func (d *Decoder) ExpectInt(r io.Reader) (string, tag.Int, error) {
	return expectRoot[tag.Int](r, d, tag.TypeInt)
}

// ExpectLong reads a root tag, failing with errs.ErrUnexpectedTag if its
// id is not Long.
func (d *Decoder) ExpectLong(r io.Reader) (string, tag.Long, error) {
	return expectRoot[tag.Long](r, d, tag.TypeLong)
}

// ExpectFloat reads a root tag, failing with errs.ErrUnexpectedTag if its
// id is not Float.
func (d *Decoder) ExpectFloat(r io.Reader) (string, tag.Float, error) {
	return expectRoot[tag.Float](r, d, tag.TypeFloat)
}

// ExpectDouble reads a root tag, failing with errs.ErrUnexpectedTag if its
// id is not Double.
func (d *Decoder) ExpectDouble(r io.Reader) (string, tag.Double, error) {
	return expectRoot[tag.Double](r, d, tag.TypeDouble)
}

// ExpectString reads a root tag, failing with errs.ErrUnexpectedTag if its
// id is not String.
func (d *Decoder) ExpectString(r io.Reader) (string, tag.String, error) {
	return expectRoot[tag.String](r, d, tag.TypeString)
}

// ExpectByteArray reads a root tag, failing with errs.ErrUnexpectedTag if
// its id is not ByteArray.
func (d *Decoder) ExpectByteArray(r io.Reader) (string, tag.ByteArray, error) {
	return expectRoot[tag.ByteArray](r, d, tag.TypeByteArray)
}

// ExpectIntArray reads a root tag, failing with errs.ErrUnexpectedTag if
// its id is not IntArray.
func (d *Decoder) ExpectIntArray(r io.Reader) (string, tag.IntArray, error) {
	return expectRoot[tag.IntArray](r, d, tag.TypeIntArray)
}

// ExpectLongArray reads a root tag, failing with errs.ErrUnexpectedTag if
// its id is not LongArray.
func (d *Decoder) ExpectLongArray(r io.Reader) (string, tag.LongArray, error) {
	return expectRoot[tag.LongArray](r, d, tag.TypeLongArray)
}

// ExpectList reads a root tag, failing with errs.ErrUnexpectedTag if its
// id is not List.
func (d *Decoder) ExpectList(r io.Reader) (string, *tag.List, error) {
	return expectRoot[*tag.List](r, d, tag.TypeList)
}

// ExpectCompound reads a root tag, failing with errs.ErrUnexpectedTag if
// its id is not Compound. This is the common case: every well-formed
// world, chunk, and item-stack document is rooted in a Compound.
func (d *Decoder) ExpectCompound(r io.Reader) (string, *tag.Compound, error) {
	return expectRoot[*tag.Compound](r, d, tag.TypeCompound)
}

func (d *Decoder) readPayload(r io.Reader, typ tag.Type, depth int) (tag.Tag, error) {
	if depth > d.cfg.maxDepth {
		return nil, fmt.Errorf("%w: %d", errMaxDepthExceeded, d.cfg.maxDepth)
	}

	switch typ {
	case tag.TypeByte:
		v, err := d.enc.ReadI8(r)

		return tag.Byte(v), err

	case tag.TypeShort:
		v, err := d.enc.ReadI16(r)

		return tag.Short(v), err

	case tag.TypeInt:
		v, err := d.enc.ReadI32(r)

		return tag.Int(v), err

	case tag.TypeLong:
		v, err := d.enc.ReadI64(r)

		return tag.Long(v), err

	case tag.TypeFloat:
		v, err := d.enc.ReadF32(r)

		return tag.Float(v), err

	case tag.TypeDouble:
		v, err := d.enc.ReadF64(r)

		return tag.Double(v), err

	case tag.TypeByteArray:
		return d.readByteArray(r)

	case tag.TypeString:
		return d.readStringTag(r)

	case tag.TypeList:
		return d.readList(r, depth)

	case tag.TypeCompound:
		return d.readCompound(r, depth)

	case tag.TypeIntArray:
		return d.readIntArray(r)

	case tag.TypeLongArray:
		return d.readLongArray(r)

	default:
		return nil, errs.UnknownTagType(byte(typ))
	}
}

func (d *Decoder) readByteArray(r io.Reader) (tag.ByteArray, error) {
	n, err := d.enc.ReadLen32(r)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errs.SeqLengthViolation(math.MaxInt32, int64(n))
	}

	out := make(tag.ByteArray, 0, clampCap(n, 1))
	for i := int32(0); i < n; i++ {
		v, err := d.enc.ReadI8(r)
		if err != nil {
			return nil, errs.WithPath(err, errs.Element(int(i)))
		}

		out = append(out, v)
	}

	return out, nil
}

func (d *Decoder) readIntArray(r io.Reader) (tag.IntArray, error) {
	n, err := d.enc.ReadLen32(r)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errs.SeqLengthViolation(math.MaxInt32, int64(n))
	}

	out := make(tag.IntArray, 0, clampCap(n, 4))
	for i := int32(0); i < n; i++ {
		v, err := d.enc.ReadI32(r)
		if err != nil {
			return nil, errs.WithPath(err, errs.Element(int(i)))
		}

		out = append(out, v)
	}

	return out, nil
}

func (d *Decoder) readLongArray(r io.Reader) (tag.LongArray, error) {
	n, err := d.enc.ReadLen32(r)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errs.SeqLengthViolation(math.MaxInt32, int64(n))
	}

	out := make(tag.LongArray, 0, clampCap(n, 8))
	for i := int32(0); i < n; i++ {
		v, err := d.enc.ReadI64(r)
		if err != nil {
			return nil, errs.WithPath(err, errs.Element(int(i)))
		}

		out = append(out, v)
	}

	return out, nil
}

func (d *Decoder) readList(r io.Reader, depth int) (*tag.List, error) {
	elemID, err := d.enc.ReadU8(r)
	if err != nil {
		return nil, err
	}

	n, err := d.enc.ReadLen32(r)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errs.SeqLengthViolation(math.MaxInt32, int64(n))
	}

	elemType := tag.Type(elemID)
	list := tag.NewList(elemType)
	list.Elems = make([]tag.Tag, 0, clampCap(n, 1))

	for i := int32(0); i < n; i++ {
		v, err := d.readPayload(r, elemType, depth+1)
		if err != nil {
			return nil, errs.WithPath(err, errs.Element(int(i)))
		}

		list.Elems = append(list.Elems, v)
	}

	return list, nil
}

func (d *Decoder) readCompound(r io.Reader, depth int) (*tag.Compound, error) {
	c := tag.NewCompound()

	for {
		id, err := d.enc.ReadU8(r)
		if err != nil {
			return nil, err
		}

		if tag.Type(id) == tag.TypeEnd {
			return c, nil
		}

		name, err := d.readName(r)
		if err != nil {
			return nil, err
		}

		v, err := d.readPayload(r, tag.Type(id), depth+1)
		if err != nil {
			return nil, errs.WithPath(err, errs.MapKey(name))
		}

		c.Set(name, v)
	}
}

// readStringBytes reads a length-prefixed byte string. The length's own
// bound (i16 under BigEndian/LittleEndian, an unsigned varint under
// NetworkLittleEndian but still validated against the same i16 ceiling)
// keeps the resulting allocation small enough that no extra capacity
// clamp is needed the way arrays and lists require one.
func (d *Decoder) readStringBytes(r io.Reader) ([]byte, error) {
	n, err := d.enc.ReadStringLen(r)
	if err != nil {
		return nil, err
	}

	if n < 0 || n > math.MaxInt16 {
		return nil, errs.SeqLengthViolation(math.MaxInt16, int64(n))
	}

	if n == 0 {
		return nil, nil
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}

	return buf, nil
}

func (d *Decoder) readName(r io.Reader) (string, error) {
	raw, err := d.readStringBytes(r)
	if err != nil {
		return "", err
	}

	s, ok := mutf8.Decode(raw)
	if !ok {
		return "", errs.InvalidString(len(raw))
	}

	return s, nil
}

func (d *Decoder) readStringTag(r io.Reader) (tag.String, error) {
	raw, err := d.readStringBytes(r)
	if err != nil {
		return tag.String{}, err
	}

	if s, ok := mutf8.Decode(raw); ok {
		return tag.StringFromText(s), nil
	}

	return tag.StringFromBytes(raw), nil
}
