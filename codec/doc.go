// Package codec turns spectrometer sample arrays and file lists into compact,
// text-safe payloads and back.
//
// An ArrayCodec chains three stages: packing (package encoding), compression
// (package compress, zlib by default) and radix-64 text encoding. With the
// default configuration, payloads are exchanged with the reference instrument
// software in both directions.
//
// # Payload kinds
//
//   - Primitive: fixed-width little-endian integers (Encode / Decode).
//   - Delta: signed first differences in a narrow width, falling back to the
//     primitive payload at a wider width when the differences do not fit
//     (EncodeDelta / DecodeDiff / Reconstruct). Whether delta or fallback was
//     used travels out of band in DeltaResult.UsedDelta, and the delta payload
//     does not carry the first sample.
//   - Lossy: 8-bit quantization with a 6-byte recovery header
//     (EncodeLossy / DecodeLossy).
//   - File list: comma-joined names (EncodeFileList / DecodeFileList).
//
// # Usage
//
//	c, _ := codec.NewArrayCodec()
//	payload, err := c.Encode(pixels, format.Width16)
//	...
//	pixels, err = c.Decode(payload, format.Width16)
//
// # Errors
//
// Corrupt payloads are reported as errs.ErrDecode and nothing is returned
// partially decoded. An ArrayCodec is immutable and safe for concurrent use.
package codec
