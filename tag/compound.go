package tag

import (
	"iter"

	"github.com/landru27/gonbt/internal/hash"
)

// Compound is an order-preserving mapping from string key to Tag. Lookup
// is backed by a hash-bucket index keyed on the xxHash64 of each key
// (internal/hash), with an explicit string comparison on every candidate
// in a bucket to resolve the rare hash collision; insertion order is kept
// in a parallel slice so an unmodified tree re-encodes byte-for-byte. The
// zero value is a ready-to-use empty Compound.
type Compound struct {
	keys   []string
	values []Tag
	index  map[uint64][]int
}

// NewCompound returns an empty Compound.
func NewCompound() *Compound {
	return &Compound{}
}

// Type implements Tag.
func (*Compound) Type() Type { return TypeCompound }

func (c *Compound) find(key string) (int, bool) {
	for _, i := range c.index[hash.ID(key)] {
		if c.keys[i] == key {
			return i, true
		}
	}

	return 0, false
}

// Set inserts value under key, or overwrites the existing value in place
// if key is already present. A repeated key during decode therefore
// replaces the prior value silently, per the last-wins rule, without
// disturbing its position in iteration order.
func (c *Compound) Set(key string, value Tag) {
	if i, ok := c.find(key); ok {
		c.values[i] = value

		return
	}

	if c.index == nil {
		c.index = make(map[uint64][]int)
	}

	i := len(c.keys)
	c.keys = append(c.keys, key)
	c.values = append(c.values, value)
	h := hash.ID(key)
	c.index[h] = append(c.index[h], i)
}

// Get returns the tag stored at key, if present.
func (c *Compound) Get(key string) (Tag, bool) {
	i, ok := c.find(key)
	if !ok {
		return nil, false
	}

	return c.values[i], true
}

// Delete removes key, if present, shifting later entries left and
// rebuilding the index. Compound deletion is not on the decode/encode hot
// path, so the rebuild's O(n) cost is not a concern.
func (c *Compound) Delete(key string) {
	i, ok := c.find(key)
	if !ok {
		return
	}

	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	c.values = append(c.values[:i], c.values[i+1:]...)

	c.index = make(map[uint64][]int, len(c.keys))
	for j, k := range c.keys {
		h := hash.ID(k)
		c.index[h] = append(c.index[h], j)
	}
}

// Len returns the number of key/value pairs.
func (c *Compound) Len() int {
	return len(c.keys)
}

// Keys returns the compound's keys in insertion order. The caller must
// not mutate the returned slice.
func (c *Compound) Keys() []string {
	return c.keys
}

// All returns an iterator over the compound's entries in insertion order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for i, k := range c.keys {
			if !yield(k, c.values[i]) {
				return
			}
		}
	}
}
