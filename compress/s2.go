package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

const maxS2Output = 128 * 1024 * 1024

// S2Compressor provides S2 (Snappy-compatible) block compression.
//
// Payloads are small, so blocks are always encoded in the "better" mode,
// trading a little speed for ratio.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data into one S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes one S2 block. Blocks claiming more than 128MB are rejected.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > maxS2Output {
		return nil, fmt.Errorf("s2 decompression failed: block claims %d bytes", n)
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
