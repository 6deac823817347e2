package compress

// ZstdCompressor provides Zstandard compression.
//
// It trades encode speed for ratio and suits archived spectra batches. The
// pure Go implementation from klauspost/compress is used by default; building
// with the gozstd tag (and cgo) switches to the libzstd binding. Both produce
// standard zstd frames, so payloads are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
