// Package picowire provides the compact text encodings used to move spectrometer
// telemetry between field instruments and their controllers.
//
// Every payload is printable text, so it can be embedded in JSON documents or
// line-oriented protocols without further escaping.
//
// # Core Features
//
//   - Fixed-width integer arrays (8, 16 or 32 bits), deflate-compressed and radix-64 encoded
//   - Delta-encoded arrays that fall back to plain encoding when differences are too wide
//   - Lossy 8-bit quantized arrays with a bounded reconstruction error
//   - A compact metadata format that factors out shared instrument calibrations
//   - Device status registers and per-instrument status bit vectors
//   - Optional alternative compression (Zstd, S2, LZ4) for links that do not
//     need to interoperate with the reference instrument software
//
// # Basic Usage
//
// Encoding a spectrum and its metadata:
//
//	import "github.com/piccolo2/picowire"
//
//	pixels := []uint32{1200, 1210, 1206, 1190}
//	payload, _ := picowire.EncodePixels(pixels)
//
//	meta, _ := picowire.EncodeMetadata([]metadata.Record{{
//	    SerialNumber: "QEP01651",
//	    Calibration:  metadata.Calibration{Coefficients: [4]float32{344.2, 0.8, -1.1e-4, 2.3e-9}},
//	    Direction:    metadata.Upwelling,
//	}})
//
// Decoding:
//
//	pixels, _ = picowire.DecodePixels(payload)
//	records, _ := picowire.DecodeMetadata(meta)
//
// # Package Structure
//
// This package provides top-level wrappers with the defaults understood by the
// reference instrument software. For other widths, compressions or alphabets,
// use the codec, metadata and status packages directly.
package picowire

import (
	"sync"

	"github.com/piccolo2/picowire/codec"
	"github.com/piccolo2/picowire/format"
	"github.com/piccolo2/picowire/internal/hash"
	"github.com/piccolo2/picowire/metadata"
	"github.com/piccolo2/picowire/status"
)

const (
	// PixelWidth is the working width of spectrometer pixel counts.
	PixelWidth = format.Width16
	// DiffWidth is the width delta-encoded pixel differences are tried at.
	DiffWidth = format.Width8
)

var defaultCodec = sync.OnceValue(func() *codec.ArrayCodec {
	c, err := codec.NewArrayCodec()
	if err != nil {
		panic(err)
	}

	return c
})

// NewArrayCodec creates an array codec with the given options.
//
// Without options the codec uses zlib compression and the standard radix-64
// alphabet, the combination the reference instrument software reads.
func NewArrayCodec(opts ...codec.ArrayCodecOption) (*codec.ArrayCodec, error) {
	return codec.NewArrayCodec(opts...)
}

// NewCompactArrayCodec creates an array codec tuned for payload size on links
// between picowire peers: Zstd compression and the URL-safe alphabet.
//
// Its payloads are not readable by the reference instrument software.
func NewCompactArrayCodec() (*codec.ArrayCodec, error) {
	return codec.NewArrayCodec(
		codec.WithCompression(format.CompressionZstd),
		codec.WithURLSafeText(),
	)
}

// EncodePixels encodes pixel counts at PixelWidth with the default codec.
func EncodePixels(pixels []uint32) (string, error) {
	return defaultCodec().Encode(pixels, PixelWidth)
}

// DecodePixels reverses EncodePixels.
func DecodePixels(payload string) ([]uint32, error) {
	return defaultCodec().Decode(payload, PixelWidth)
}

// EncodePixelsDelta delta-encodes pixel counts at DiffWidth, falling back to
// PixelWidth when differences do not fit.
//
// A delta payload does not carry pixels[0]; DecodePixelsDelta needs it.
func EncodePixelsDelta(pixels []uint32) (codec.DeltaResult, error) {
	return defaultCodec().EncodeDelta(pixels, DiffWidth, PixelWidth)
}

// DecodePixelsDelta reverses EncodePixelsDelta. first is ignored for
// fallback payloads.
func DecodePixelsDelta(result codec.DeltaResult, first uint32) ([]uint32, error) {
	return defaultCodec().DecodeDelta(result, first, DiffWidth, PixelWidth)
}

// EncodeMetadata serializes a batch of metadata records.
func EncodeMetadata(records []metadata.Record) (string, error) {
	return metadata.Encode(records)
}

// DecodeMetadata reverses EncodeMetadata.
func DecodeMetadata(text string) ([]metadata.Record, error) {
	return metadata.Decode(text)
}

// DecodeStatus parses a hexadecimal status register.
func DecodeStatus(text string) (status.Status, error) {
	return status.Decode(text)
}

// NewExtendedStatus creates an extended status vector for the given
// instruments and shutters.
func NewExtendedStatus(instruments, shutters []string) (*status.ExtendedStatus, error) {
	return status.NewExtendedStatus(instruments, shutters)
}

// InstrumentID returns the 64-bit xxHash of an instrument serial number.
//
// It is a stable key for indexing instruments in maps and logs; payloads
// always carry the serial number itself.
func InstrumentID(serial string) uint64 {
	return hash.ID(serial)
}
