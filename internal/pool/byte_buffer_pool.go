// Package pool provides reusable byte buffers for the codec's one-shot
// Marshal/Unmarshal helpers, avoiding an allocation per call for the common
// case of encoding or decoding a single in-memory tag tree.
package pool

import (
	"io"
	"sync"
)

// DefaultBufferSize and MaxBufferThreshold size the package-level pool used
// by Marshal. Most NBT documents (chunk sections, entity data, item tags)
// are well under a few KiB; buffers that grow past the threshold during an
// unusually large encode are discarded instead of returned to the pool.
const (
	DefaultBufferSize  = 4 * 1024   // 4KiB
	MaxBufferThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice wrapper designed for reuse across
// encode calls via a sync.Pool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations across
// repeated Marshal calls.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse. Oversized buffers are
// discarded rather than retained, to bound the pool's worst-case footprint.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(DefaultBufferSize, MaxBufferThreshold)

// Get retrieves a ByteBuffer from the default pool.
func Get() *ByteBuffer {
	return defaultPool.Get()
}

// Put returns a ByteBuffer to the default pool.
func Put(bb *ByteBuffer) {
	defaultPool.Put(bb)
}
