// Package codec implements the recursive tag tree reader and writer shared
// by every wire encoding. It dispatches on the tag id byte read from (or
// derived for) each node, delegating the primitive reads and writes to a
// wire.Encoding and the path bookkeeping on failure to package errs.
package codec

import (
	"errors"
	"fmt"

	"github.com/landru27/gonbt/internal/options"
	"github.com/landru27/gonbt/wire"
)

// defaultMaxDepth bounds tag tree recursion. It is generous for any
// legitimate document but keeps a maliciously deep chain of single-child
// Compounds or Lists from exhausting the goroutine stack.
const defaultMaxDepth = 512

// config holds the tunables shared by Decoder and Encoder.
type config struct {
	maxDepth int
}

func newConfig() *config {
	return &config{maxDepth: defaultMaxDepth}
}

func (c *config) setMaxDepth(n int) error {
	if n <= 0 {
		return fmt.Errorf("codec: max depth must be positive, got %d", n)
	}

	c.maxDepth = n

	return nil
}

// Option configures a Decoder or Encoder.
type Option = options.Option[*config]

// WithMaxDepth overrides the maximum tag tree depth a Decoder or Encoder
// will walk before refusing to recurse further.
func WithMaxDepth(n int) Option {
	return options.New(func(c *config) error {
		return c.setMaxDepth(n)
	})
}

var errMaxDepthExceeded = errors.New("codec: maximum tag tree depth exceeded")

// Decoder reads tag trees in one wire encoding.
type Decoder struct {
	enc wire.Encoding
	cfg *config
}

// NewDecoder returns a Decoder that reads using enc.
func NewDecoder(enc wire.Encoding, opts ...Option) (*Decoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{enc: enc, cfg: cfg}, nil
}

// Encoder writes tag trees in one wire encoding.
type Encoder struct {
	enc wire.Encoding
	cfg *config
}

// NewEncoder returns an Encoder that writes using enc.
func NewEncoder(enc wire.Encoding, opts ...Option) (*Encoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{enc: enc, cfg: cfg}, nil
}
