package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimitiveTags_Type(t *testing.T) {
	require.Equal(t, TypeByte, Byte(1).Type())
	require.Equal(t, TypeShort, Short(1).Type())
	require.Equal(t, TypeInt, Int(1).Type())
	require.Equal(t, TypeLong, Long(1).Type())
	require.Equal(t, TypeFloat, Float(1).Type())
	require.Equal(t, TypeDouble, Double(1).Type())
}

func TestPrimitiveTags_AsTagInterface(t *testing.T) {
	var tags []Tag = []Tag{Byte(1), Short(2), Int(3), Long(4), Float(5), Double(6)}

	for _, tg := range tags {
		require.True(t, tg.Type().Valid())
	}
}
