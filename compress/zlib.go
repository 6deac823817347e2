package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// maxZlibOutput caps decompressed zlib payloads so a corrupt or hostile stream
// cannot exhaust memory.
const maxZlibOutput = 128 * 1024 * 1024

var zlibWriterPool = sync.Pool{
	New: func() any {
		w, err := zlib.NewWriterLevel(nil, zlib.DefaultCompression)
		if err != nil {
			panic(fmt.Sprintf("failed to create zlib writer for pool: %v", err))
		}

		return w
	},
}

// ZlibCompressor provides zlib (RFC 1950 wrapped deflate) compression.
//
// This is the default compression for picowire payloads. Streams are plain
// zlib streams as produced by zlib's compress(), so payloads exchanged with the
// reference instrument software decode unchanged in both directions.
//
// Unlike the other codecs, compressing empty input still produces a complete
// zlib stream, since the reference software always emits one.
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor creates a new zlib compressor using the default compression level.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// Compress compresses the input data into a zlib stream.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer

	w, _ := zlibWriterPool.Get().(*zlib.Writer)
	defer zlibWriterPool.Put(w)

	w.Reset(&out)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return out.Bytes(), nil
}

// Decompress inflates a zlib stream.
//
// Returns an error if data is empty (Compress never produces an empty stream),
// the stream header or checksum is invalid, the stream is truncated, or the
// output would exceed 128MB.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("zlib decompression failed: empty stream")
	}

	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, maxZlibOutput+1))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	if len(out) > maxZlibOutput {
		return nil, fmt.Errorf("zlib decompression failed: output exceeds %d bytes", maxZlibOutput)
	}

	return out, nil
}
