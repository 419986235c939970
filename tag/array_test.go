package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayTags_Type(t *testing.T) {
	require.Equal(t, TypeByteArray, ByteArray{1, 2, 3}.Type())
	require.Equal(t, TypeIntArray, IntArray{1, 2, 3}.Type())
	require.Equal(t, TypeLongArray, LongArray{1, 2, 3}.Type())
}

func TestArrayTags_Empty(t *testing.T) {
	require.Equal(t, 0, len(ByteArray(nil)))
	require.Equal(t, TypeByteArray, ByteArray(nil).Type())
}
