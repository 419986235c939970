package nbt

import (
	"bytes"
	"errors"
	"io"

	"github.com/landru27/gonbt/codec"
	"github.com/landru27/gonbt/errs"
	"github.com/landru27/gonbt/internal/pool"
	"github.com/landru27/gonbt/tag"
	"github.com/landru27/gonbt/wire"
)

// Document is the single named root tag an NBT stream carries.
type Document struct {
	Name string
	Root tag.Tag
}

// ReadRoot reads one Document from r under enc. opts configure the
// underlying codec.Decoder (see codec.WithMaxDepth).
func ReadRoot(r io.Reader, enc wire.Encoding, opts ...codec.Option) (Document, error) {
	d, err := codec.NewDecoder(enc, opts...)
	if err != nil {
		return Document{}, err
	}

	name, v, err := d.ReadRoot(r)
	if err != nil {
		var pe *errs.PathError
		if !errors.As(err, &pe) {
			err = &errs.PathError{Err: err}
		}

		return Document{}, err
	}

	return Document{Name: name, Root: v}, nil
}

// WriteRoot writes doc to w under enc.
func WriteRoot(w io.Writer, enc wire.Encoding, doc Document, opts ...codec.Option) error {
	e, err := codec.NewEncoder(enc, opts...)
	if err != nil {
		return err
	}

	return e.WriteRoot(w, doc.Name, doc.Root)
}

// Marshal encodes doc under enc into a freshly allocated byte slice. It
// uses a pooled scratch buffer internally, so repeated calls from the same
// goroutine avoid an allocation per call for the buffer itself.
func Marshal(enc wire.Encoding, doc Document, opts ...codec.Option) ([]byte, error) {
	buf := pool.Get()
	defer pool.Put(buf)

	if err := WriteRoot(buf, enc, doc, opts...); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Unmarshal decodes data as a single Document under enc.
func Unmarshal(data []byte, enc wire.Encoding, opts ...codec.Option) (Document, error) {
	return ReadRoot(bytes.NewReader(data), enc, opts...)
}
