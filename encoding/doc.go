// Package encoding packs picowire sample arrays into binary blocks.
//
// Three block layouts are provided, all little-endian on the wire:
//
//   - Fixed width: each sample is an unsigned 8, 16 or 32-bit integer
//     (FixedWidthEncoder / FixedWidthDecoder). Values wider than the chosen
//     width wrap silently; choosing a width that covers the data is the
//     caller's responsibility.
//   - Signed fixed width: first differences stored as two's complement
//     integers of the narrow width (SignedWidthEncoder, Diff, Integrate).
//   - Quantized: a 6-byte header (float32 scale, uint16 minimum) followed by
//     one byte per sample (AppendQuantized / Dequantize). Lossy.
//
// Compression and text-safe encoding of these blocks are layered on top by
// the codec package; most users should use codec.ArrayCodec instead.
package encoding
