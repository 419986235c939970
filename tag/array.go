package tag

// ByteArray is an ordered sequence of signed 8-bit integers.
type ByteArray []int8

// Type implements Tag.
func (ByteArray) Type() Type { return TypeByteArray }

// IntArray is an ordered sequence of signed 32-bit integers.
type IntArray []int32

// Type implements Tag.
func (IntArray) Type() Type { return TypeIntArray }

// LongArray is an ordered sequence of signed 64-bit integers.
type LongArray []int64

// Type implements Tag.
func (LongArray) Type() Type { return TypeLongArray }
