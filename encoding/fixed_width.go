package encoding

import (
	"fmt"
	"iter"

	"github.com/piccolo2/picowire/endian"
	"github.com/piccolo2/picowire/errs"
	"github.com/piccolo2/picowire/format"
	"github.com/piccolo2/picowire/internal/pool"
)

// FixedWidthEncoder packs unsigned samples as fixed-width integers.
//
// Each sample is truncated to the configured width: a 16-bit encoder stores
// 70000 as 4464. No range check is made.
type FixedWidthEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	width  format.Width
	count  int
}

var _ ColumnarEncoder[uint32] = (*FixedWidthEncoder)(nil)

// NewFixedWidthEncoder creates an encoder for the given width.
//
// Returns errs.ErrInvalidWidth unless width is 8, 16 or 32.
func NewFixedWidthEncoder(engine endian.EndianEngine, width format.Width) (*FixedWidthEncoder, error) {
	if !width.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidWidth, width)
	}

	return &FixedWidthEncoder{
		engine: engine,
		width:  width,
		buf:    pool.GetPackBuffer(),
	}, nil
}

// Write encodes a single sample.
//
// Panics if Finish() has been called.
func (e *FixedWidthEncoder) Write(value uint32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(e.width.Bytes())
	e.appendValue(value)
}

// WriteSlice encodes a slice of samples with a single buffer growth.
//
// Panics if Finish() has been called.
func (e *FixedWidthEncoder) WriteSlice(values []uint32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}

	e.count += len(values)
	e.buf.Grow(len(values) * e.width.Bytes())
	for _, v := range values {
		e.appendValue(v)
	}
}

// Bytes returns the packed block.
func (e *FixedWidthEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded samples.
func (e *FixedWidthEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the packed block.
func (e *FixedWidthEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool.
func (e *FixedWidthEncoder) Finish() {
	if e.buf != nil {
		pool.PutPackBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

func (e *FixedWidthEncoder) appendValue(v uint32) {
	switch e.width {
	case format.Width8:
		e.buf.B = append(e.buf.B, uint8(v)) //nolint:gosec
	case format.Width16:
		e.buf.B = e.engine.AppendUint16(e.buf.B, uint16(v)) //nolint:gosec
	default:
		e.buf.B = e.engine.AppendUint32(e.buf.B, v)
	}
}

// SignedWidthEncoder packs signed values as two's complement fixed-width integers.
//
// Values outside the width's signed range wrap silently; callers check the
// range first (see FitsSigned).
type SignedWidthEncoder struct {
	inner *FixedWidthEncoder
}

var _ ColumnarEncoder[int64] = (*SignedWidthEncoder)(nil)

// NewSignedWidthEncoder creates a signed encoder for the given width.
func NewSignedWidthEncoder(engine endian.EndianEngine, width format.Width) (*SignedWidthEncoder, error) {
	inner, err := NewFixedWidthEncoder(engine, width)
	if err != nil {
		return nil, err
	}

	return &SignedWidthEncoder{inner: inner}, nil
}

// Write encodes a single signed value.
func (e *SignedWidthEncoder) Write(value int64) {
	e.inner.Write(uint32(value)) //nolint:gosec
}

// WriteSlice encodes a slice of signed values.
func (e *SignedWidthEncoder) WriteSlice(values []int64) {
	if e.inner.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.inner.count += len(values)
	e.inner.buf.Grow(len(values) * e.inner.width.Bytes())
	for _, v := range values {
		e.inner.appendValue(uint32(v)) //nolint:gosec
	}
}

// Bytes returns the packed block.
func (e *SignedWidthEncoder) Bytes() []byte { return e.inner.Bytes() }

// Len returns the number of encoded values.
func (e *SignedWidthEncoder) Len() int { return e.inner.Len() }

// Size returns the size in bytes of the packed block.
func (e *SignedWidthEncoder) Size() int { return e.inner.Size() }

// Finish returns the buffer to the pool.
func (e *SignedWidthEncoder) Finish() { e.inner.Finish() }

// FixedWidthDecoder reads blocks produced by FixedWidthEncoder and SignedWidthEncoder.
//
// The decoder is immutable and stateless and is returned by value.
type FixedWidthDecoder struct {
	engine endian.EndianEngine
	width  format.Width
}

var _ ColumnarDecoder[uint32] = FixedWidthDecoder{}

// NewFixedWidthDecoder creates a decoder for the given width.
//
// Returns errs.ErrInvalidWidth unless width is 8, 16 or 32.
func NewFixedWidthDecoder(engine endian.EndianEngine, width format.Width) (FixedWidthDecoder, error) {
	if !width.IsValid() {
		return FixedWidthDecoder{}, fmt.Errorf("%w: %d", errs.ErrInvalidWidth, width)
	}

	return FixedWidthDecoder{engine: engine, width: width}, nil
}

// Count returns the number of samples in data.
//
// Returns errs.ErrDecode if the length of data is not a multiple of the sample size.
func (d FixedWidthDecoder) Count(data []byte) (int, error) {
	size := d.width.Bytes()
	if len(data)%size != 0 {
		return 0, fmt.Errorf("%w: %d bytes is not a multiple of %s size %d",
			errs.ErrDecode, len(data), d.width, size)
	}

	return len(data) / size, nil
}

// All yields every complete sample in data. A trailing partial sample is ignored;
// use Decode to reject it.
func (d FixedWidthDecoder) All(data []byte) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		n := len(data) / d.width.Bytes()
		for i := range n {
			if !yield(d.at(data, i)) {
				return
			}
		}
	}
}

// Decode unpacks all samples in data.
func (d FixedWidthDecoder) Decode(data []byte) ([]uint32, error) {
	n, err := d.Count(data)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, 0, n)
	for v := range d.All(data) {
		out = append(out, v)
	}

	return out, nil
}

// DecodeSigned unpacks all values in data as sign-extended two's complement integers.
func (d FixedWidthDecoder) DecodeSigned(data []byte) ([]int64, error) {
	n, err := d.Count(data)
	if err != nil {
		return nil, err
	}

	out := make([]int64, 0, n)
	for v := range d.All(data) {
		switch d.width {
		case format.Width8:
			out = append(out, int64(int8(v))) //nolint:gosec
		case format.Width16:
			out = append(out, int64(int16(v))) //nolint:gosec
		default:
			out = append(out, int64(int32(v))) //nolint:gosec
		}
	}

	return out, nil
}

func (d FixedWidthDecoder) at(data []byte, index int) uint32 {
	switch d.width {
	case format.Width8:
		return uint32(data[index])
	case format.Width16:
		start := index * 2
		return uint32(d.engine.Uint16(data[start : start+2]))
	default:
		start := index * 4
		return d.engine.Uint32(data[start : start+4])
	}
}
