package picowire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piccolo2/picowire/format"
	"github.com/piccolo2/picowire/metadata"
)

// TestPixels_ReferencePayload verifies the default codec reads payloads of the
// reference instrument software.
func TestPixels_ReferencePayload(t *testing.T) {
	pixels, err := DecodePixels("eJxLYchkSGe4wA4ACOECDA==")
	require.NoError(t, err)
	require.Equal(t, []uint32{100, 105, 103, 2000}, pixels)

	payload, err := EncodePixels(pixels)
	require.NoError(t, err)

	decoded, err := DecodePixels(payload)
	require.NoError(t, err)
	require.Equal(t, pixels, decoded)
}

func TestPixelsDelta(t *testing.T) {
	result, err := EncodePixelsDelta([]uint32{100, 105, 103, 2000})
	require.NoError(t, err)
	require.False(t, result.UsedDelta)

	pixels, err := DecodePixelsDelta(result, 0)
	require.NoError(t, err)
	require.Equal(t, []uint32{100, 105, 103, 2000}, pixels)

	smooth := []uint32{1200, 1210, 1206, 1190, 1191}
	result, err = EncodePixelsDelta(smooth)
	require.NoError(t, err)
	require.True(t, result.UsedDelta)

	pixels, err = DecodePixelsDelta(result, smooth[0])
	require.NoError(t, err)
	require.Equal(t, smooth, pixels)
}

func TestNewCompactArrayCodec(t *testing.T) {
	c, err := NewCompactArrayCodec()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, c.Compression())

	pixels := make([]uint32, 1024)
	for i := range pixels {
		pixels[i] = uint32(60000 - i*17) //nolint:gosec
	}

	payload, err := c.Encode(pixels, PixelWidth)
	require.NoError(t, err)
	require.False(t, strings.ContainsAny(payload, "+/"))

	decoded, err := c.Decode(payload, PixelWidth)
	require.NoError(t, err)
	require.Equal(t, pixels, decoded)
}

func TestNewArrayCodec_Options(t *testing.T) {
	c, err := NewArrayCodec()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZlib, c.Compression())
}

func TestMetadata(t *testing.T) {
	records := []metadata.Record{
		{SerialNumber: "QEP01651", Direction: metadata.Upwelling},
		{SerialNumber: "QEP01651", Direction: metadata.Upwelling, Dark: true},
	}

	text, err := EncodeMetadata(records)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, "QEP01651 "))
	require.True(t, strings.HasSuffix(text, " 00Uu"))

	decoded, err := DecodeMetadata(text)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.Equal(t, metadata.DefaultSaturationLevel, decoded[0].Calibration.SaturationLevel)
}

func TestStatusWrappers(t *testing.T) {
	s, err := DecodeStatus("0x3")
	require.NoError(t, err)
	require.True(t, s.Connected())
	require.True(t, s.Busy())

	ext, err := NewExtendedStatus([]string{"sA", "sB"}, []string{"up", "down"})
	require.NoError(t, err)
	require.Equal(t, 8, ext.Len())
}

func TestInstrumentID(t *testing.T) {
	require.Equal(t, InstrumentID("QEP01651"), InstrumentID("QEP01651"))
	require.NotEqual(t, InstrumentID("QEP01651"), InstrumentID("QEP01652"))
}
