package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		width       Width
		valid       bool
		bytes       int
		maxUnsigned uint64
		maxSigned   int64
		name        string
	}{
		{Width8, true, 1, 255, 127, "uint8"},
		{Width16, true, 2, 65535, 32767, "uint16"},
		{Width32, true, 4, 4294967295, 2147483647, "uint32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, tt.width.IsValid())
			require.Equal(t, tt.bytes, tt.width.Bytes())
			require.Equal(t, tt.maxUnsigned, tt.width.MaxUnsigned())
			require.Equal(t, tt.maxSigned, tt.width.MaxSigned())
			require.Equal(t, tt.name, tt.width.String())
		})
	}
}

func TestWidth_Invalid(t *testing.T) {
	for _, w := range []Width{0, 1, 12, 24, 64} {
		require.False(t, w.IsValid(), "width %d", w)
	}
	require.Equal(t, "Unknown", Width(64).String())
}

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		cType    CompressionType
		expected string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionZlib, "Zlib"},
		{CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.cType.String())
	}
}
