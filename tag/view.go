package tag

// This file provides typed, read-only accessors over Compound children.
// Each returns the child only when it is both present and of the matching
// variant; they never affect the codec and never return an error, only
// (zero value, false) on any mismatch.

// GetByte returns the Byte child at key, if present.
func (c *Compound) GetByte(key string) (Byte, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	b, ok := v.(Byte)

	return b, ok
}

// GetShort returns the Short child at key, if present.
func (c *Compound) GetShort(key string) (Short, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	s, ok := v.(Short)

	return s, ok
}

// GetInt returns the Int child at key, if present.
func (c *Compound) GetInt(key string) (Int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	i, ok := v.(Int)

	return i, ok
}

// GetLong returns the Long child at key, if present.
func (c *Compound) GetLong(key string) (Long, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	l, ok := v.(Long)

	return l, ok
}

// GetFloat returns the Float child at key, if present.
func (c *Compound) GetFloat(key string) (Float, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	f, ok := v.(Float)

	return f, ok
}

// GetDouble returns the Double child at key, if present.
func (c *Compound) GetDouble(key string) (Double, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	d, ok := v.(Double)

	return d, ok
}

// GetString returns the String child at key, if present.
func (c *Compound) GetString(key string) (String, bool) {
	v, ok := c.Get(key)
	if !ok {
		return String{}, false
	}

	s, ok := v.(String)

	return s, ok
}

// GetCompound returns the Compound child at key, if present.
func (c *Compound) GetCompound(key string) (*Compound, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}

	child, ok := v.(*Compound)

	return child, ok
}

// GetList returns the List child at key, if present.
func (c *Compound) GetList(key string) (*List, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}

	l, ok := v.(*List)

	return l, ok
}

// GetByteArray returns the ByteArray child at key, if present.
func (c *Compound) GetByteArray(key string) (ByteArray, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}

	a, ok := v.(ByteArray)

	return a, ok
}

// GetIntArray returns the IntArray child at key, if present.
func (c *Compound) GetIntArray(key string) (IntArray, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}

	a, ok := v.(IntArray)

	return a, ok
}

// GetLongArray returns the LongArray child at key, if present.
func (c *Compound) GetLongArray(key string) (LongArray, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}

	a, ok := v.(LongArray)

	return a, ok
}
