package encoding

import (
	"fmt"
	"math"

	"github.com/piccolo2/picowire/endian"
	"github.com/piccolo2/picowire/errs"
)

// QuantizeHeaderSize is the size of the quantized block header: a float32
// scale followed by a uint16 minimum.
const QuantizeHeaderSize = 6

// QuantizeHeader recovers approximate samples from 8-bit quantized values:
// sample = Min + raw/Scale.
type QuantizeHeader struct {
	Scale float32
	Min   uint16
}

// AppendQuantized appends the quantized block of samples to dst.
//
// Samples are shifted by their minimum and scaled so the largest lands on 255,
// then truncated to a byte. A constant array (every sample equal) uses a
// scale of 1 and all-zero bytes.
//
// Returns errs.ErrEmptyArray for no samples, and errs.ErrValueOutOfRange when
// the minimum does not fit the 16-bit header field.
func AppendQuantized(dst []byte, engine endian.EndianEngine, samples []uint32) ([]byte, QuantizeHeader, error) {
	if len(samples) == 0 {
		return dst, QuantizeHeader{}, errs.ErrEmptyArray
	}

	minVal, maxVal := samples[0], samples[0]
	for _, s := range samples[1:] {
		minVal = min(minVal, s)
		maxVal = max(maxVal, s)
	}

	if minVal > math.MaxUint16 {
		return dst, QuantizeHeader{}, fmt.Errorf("%w: minimum %d exceeds uint16 header field", errs.ErrValueOutOfRange, minVal)
	}

	header := QuantizeHeader{Scale: 1, Min: uint16(minVal)}
	span := maxVal - minVal
	if span > 0 {
		header.Scale = float32(255.0 / float64(span))
	}

	dst = engine.AppendUint32(dst, math.Float32bits(header.Scale))
	dst = engine.AppendUint16(dst, header.Min)

	scale := float64(header.Scale)
	for _, s := range samples {
		if span == 0 {
			dst = append(dst, 0)
			continue
		}
		q := math.Floor(float64(s-minVal) * scale)
		dst = append(dst, uint8(min(q, 255))) //nolint:gosec
	}

	return dst, header, nil
}

// ParseQuantizeHeader reads the header of a quantized block.
//
// Returns errs.ErrDecode for a block shorter than the header or a scale that
// is not a positive finite number.
func ParseQuantizeHeader(engine endian.EndianEngine, data []byte) (QuantizeHeader, error) {
	if len(data) < QuantizeHeaderSize {
		return QuantizeHeader{}, fmt.Errorf("%w: quantized block of %d bytes is shorter than its %d byte header",
			errs.ErrDecode, len(data), QuantizeHeaderSize)
	}

	header := QuantizeHeader{
		Scale: math.Float32frombits(engine.Uint32(data[0:4])),
		Min:   engine.Uint16(data[4:6]),
	}

	scale := float64(header.Scale)
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return QuantizeHeader{}, fmt.Errorf("%w: invalid quantization scale %v", errs.ErrDecode, header.Scale)
	}

	return header, nil
}

// Dequantize reconstructs approximate samples from a quantized block.
func Dequantize(engine endian.EndianEngine, data []byte) ([]float64, error) {
	header, err := ParseQuantizeHeader(engine, data)
	if err != nil {
		return nil, err
	}

	raw := data[QuantizeHeaderSize:]
	out := make([]float64, len(raw))
	minVal := float64(header.Min)
	scale := float64(header.Scale)
	for i, b := range raw {
		out[i] = minVal + float64(b)/scale
	}

	return out, nil
}
