package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	require.Equal(t, 0, len(bb.B))
	require.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(DefaultBufferSize)
	bb.MustWrite([]byte("hello"))

	require.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(DefaultBufferSize)
	bb.MustWrite([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(DefaultBufferSize)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	pool := NewByteBufferPool(16, 64)

	bb := pool.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("0123456789abcdef0123456789"))
	pool.Put(bb)

	// oversized buffers are dropped rather than retained.
	big := pool.Get()
	big.MustWrite(make([]byte, 128))
	pool.Put(big)
}

func TestDefaultPool(t *testing.T) {
	bb := Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	bb.MustWrite([]byte("abc"))
	Put(bb)
}
