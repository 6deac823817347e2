// Package compress provides the compression stage of picowire array payloads.
//
// Array payloads are produced in three stages:
//
//  1. Packing: samples become fixed-width little-endian integers (package encoding)
//  2. Compression: the packed block is compressed by a Codec from this package
//  3. Text-safe encoding: the compressed bytes become radix-64 text
//
// # Supported Algorithms
//
//   - Zlib (format.CompressionZlib): the default. Streams are interchangeable
//     with the reference instrument software.
//   - Zstd (format.CompressionZstd): best ratio, for archived batches.
//   - S2 (format.CompressionS2): fast, Snappy-compatible blocks.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//   - None (format.CompressionNone): pass-through.
//
// Only zlib payloads are understood by the reference software; the other codecs
// are meant for links where both ends run picowire.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZlib)
//	if err != nil {
//	    return err
//	}
//	compressed, _ := codec.Compress(packed)
//	packed, err = codec.Decompress(compressed)
//
// # Thread Safety
//
// All codec implementations are stateless values backed by pooled encoders and
// can be shared across goroutines.
package compress
