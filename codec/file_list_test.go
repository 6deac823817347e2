package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piccolo2/picowire/errs"
)

func TestFileList_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"single", []string{"000001.pico"}},
		{"several", []string{"run_000001.pico", "run_000002.pico", "b/000003.pico"}},
		{"empty", []string{}},
	}

	for _, comp := range allCompressions {
		c := newCodec(t, WithCompression(comp))
		for _, tt := range tests {
			t.Run(comp.String()+"/"+tt.name, func(t *testing.T) {
				payload, err := c.EncodeFileList(tt.names)
				require.NoError(t, err)

				decoded, err := c.DecodeFileList(payload)
				require.NoError(t, err)
				require.NotNil(t, decoded)
				require.Equal(t, tt.names, decoded)
			})
		}
	}
}

func TestFileList_EmptyIsNotOneEmptyName(t *testing.T) {
	c := newCodec(t)

	// zlib stream of "" from the reference software
	decoded, err := c.DecodeFileList("eJwDAAAAAAE=")
	require.NoError(t, err)
	require.Empty(t, decoded)

	decoded, err = c.DecodeFileList("eJxL1CvITM7XSQJTAB+VBKI=")
	require.NoError(t, err)
	require.Equal(t, []string{"a.pico", "b.pico"}, decoded)
}

func TestFileList_InvalidNames(t *testing.T) {
	c := newCodec(t)

	_, err := c.EncodeFileList([]string{"a,b.pico"})
	require.ErrorIs(t, err, errs.ErrInvalidFileName)

	_, err = c.EncodeFileList([]string{"a.pico", ""})
	require.ErrorIs(t, err, errs.ErrInvalidFileName)
}

func TestFileList_DecodeErrors(t *testing.T) {
	c := newCodec(t)

	_, err := c.DecodeFileList("!!")
	require.ErrorIs(t, err, errs.ErrDecode)

	names, err := c.DecodeFileList("")
	require.ErrorIs(t, err, errs.ErrDecode, "an empty payload is not an empty list")
	require.Nil(t, names)

	payload, err := c.seal([]byte("a.pico,,b.pico"))
	require.NoError(t, err)
	_, err = c.DecodeFileList(payload)
	require.ErrorIs(t, err, errs.ErrDecode)
}
