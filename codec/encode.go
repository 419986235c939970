package codec

import (
	"fmt"
	"io"
	"math"

	"github.com/landru27/gonbt/errs"
	"github.com/landru27/gonbt/mutf8"
	"github.com/landru27/gonbt/tag"
)

// WriteRoot writes one complete named tag: an id byte, a name, and that
// tag's payload.
func (e *Encoder) WriteRoot(w io.Writer, name string, t tag.Tag) error {
	if err := e.enc.WriteU8(w, byte(t.Type())); err != nil {
		return err
	}

	if err := e.writeName(w, name); err != nil {
		return err
	}

	return e.writePayload(w, t, 0)
}

func (e *Encoder) writePayload(w io.Writer, t tag.Tag, depth int) error {
	if depth > e.cfg.maxDepth {
		return fmt.Errorf("%w: %d", errMaxDepthExceeded, e.cfg.maxDepth)
	}

	switch v := t.(type) {
	case tag.Byte:
		return e.enc.WriteI8(w, int8(v))

	case tag.Short:
		return e.enc.WriteI16(w, int16(v))

	case tag.Int:
		return e.enc.WriteI32(w, int32(v))

	case tag.Long:
		return e.enc.WriteI64(w, int64(v))

	case tag.Float:
		return e.enc.WriteF32(w, float32(v))

	case tag.Double:
		return e.enc.WriteF64(w, float64(v))

	case tag.String:
		return e.writeStringBytes(w, v.EncodedBytes())

	case tag.ByteArray:
		return e.writeByteArray(w, v)

	case tag.IntArray:
		return e.writeIntArray(w, v)

	case tag.LongArray:
		return e.writeLongArray(w, v)

	case *tag.List:
		return e.writeList(w, v, depth)

	case *tag.Compound:
		return e.writeCompound(w, v, depth)

	default:
		return fmt.Errorf("codec: unsupported tag implementation %T", t)
	}
}

func (e *Encoder) writeByteArray(w io.Writer, a tag.ByteArray) error {
	if len(a) > math.MaxInt32 {
		return errs.SeqLengthViolation(math.MaxInt32, int64(len(a)))
	}

	if err := e.enc.WriteLen32(w, int32(len(a))); err != nil {
		return err
	}

	for i, v := range a {
		if err := e.enc.WriteI8(w, v); err != nil {
			return errs.WithPath(err, errs.Element(i))
		}
	}

	return nil
}

func (e *Encoder) writeIntArray(w io.Writer, a tag.IntArray) error {
	if len(a) > math.MaxInt32 {
		return errs.SeqLengthViolation(math.MaxInt32, int64(len(a)))
	}

	if err := e.enc.WriteLen32(w, int32(len(a))); err != nil {
		return err
	}

	for i, v := range a {
		if err := e.enc.WriteI32(w, v); err != nil {
			return errs.WithPath(err, errs.Element(i))
		}
	}

	return nil
}

func (e *Encoder) writeLongArray(w io.Writer, a tag.LongArray) error {
	if len(a) > math.MaxInt32 {
		return errs.SeqLengthViolation(math.MaxInt32, int64(len(a)))
	}

	if err := e.enc.WriteLen32(w, int32(len(a))); err != nil {
		return err
	}

	for i, v := range a {
		if err := e.enc.WriteI64(w, v); err != nil {
			return errs.WithPath(err, errs.Element(i))
		}
	}

	return nil
}

// writeList writes l's element-type byte, its element count, and each
// element in turn. An empty list always writes END as its element type,
// regardless of l.ElemType; a non-empty list derives its element type from
// its first element and rejects any later element whose variant disagrees.
func (e *Encoder) writeList(w io.Writer, l *tag.List, depth int) error {
	elemType := tag.TypeEnd
	if l.Len() > 0 {
		elemType = l.Elems[0].Type()
	}

	if err := e.enc.WriteU8(w, byte(elemType)); err != nil {
		return err
	}

	if len(l.Elems) > math.MaxInt32 {
		return errs.SeqLengthViolation(math.MaxInt32, int64(len(l.Elems)))
	}

	if err := e.enc.WriteLen32(w, int32(len(l.Elems))); err != nil {
		return err
	}

	for i, el := range l.Elems {
		if el.Type() != elemType {
			return errs.WithPath(errs.UnexpectedTag(byte(elemType), byte(el.Type())), errs.Element(i))
		}

		if err := e.writePayload(w, el, depth+1); err != nil {
			return errs.WithPath(err, errs.Element(i))
		}
	}

	return nil
}

func (e *Encoder) writeCompound(w io.Writer, c *tag.Compound, depth int) error {
	for k, v := range c.All() {
		if err := e.enc.WriteU8(w, byte(v.Type())); err != nil {
			return errs.WithPath(err, errs.MapKey(k))
		}

		if err := e.writeName(w, k); err != nil {
			return errs.WithPath(err, errs.MapKey(k))
		}

		if err := e.writePayload(w, v, depth+1); err != nil {
			return errs.WithPath(err, errs.MapKey(k))
		}
	}

	return e.enc.WriteU8(w, byte(tag.TypeEnd))
}

func (e *Encoder) writeStringBytes(w io.Writer, raw []byte) error {
	if len(raw) > math.MaxInt16 {
		return errs.SeqLengthViolation(math.MaxInt16, int64(len(raw)))
	}

	if err := e.enc.WriteStringLen(w, int32(len(raw))); err != nil {
		return err
	}

	if len(raw) == 0 {
		return nil
	}

	_, err := w.Write(raw)

	return err
}

func (e *Encoder) writeName(w io.Writer, name string) error {
	return e.writeStringBytes(w, mutf8.Encode(name))
}
