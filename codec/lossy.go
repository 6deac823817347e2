package codec

import (
	"github.com/piccolo2/picowire/encoding"
	"github.com/piccolo2/picowire/internal/pool"
)

// EncodeLossy quantizes samples to 8 bits and returns the payload.
//
// Each decoded sample is within (max-min)/255 of the original. A constant
// array decodes exactly. Returns errs.ErrEmptyArray for no samples and
// errs.ErrValueOutOfRange when the smallest sample exceeds 65535.
func (c *ArrayCodec) EncodeLossy(samples []uint32) (string, error) {
	bb := pool.GetPackBuffer()
	defer pool.PutPackBuffer(bb)

	block, _, err := encoding.AppendQuantized(bb.B, c.engine, samples)
	if err != nil {
		return "", err
	}
	bb.B = block

	return c.seal(bb.Bytes())
}

// DecodeLossy reverses EncodeLossy, returning approximate samples.
func (c *ArrayCodec) DecodeLossy(payload string) ([]float64, error) {
	block, err := c.open(payload)
	if err != nil {
		return nil, err
	}

	return encoding.Dequantize(c.engine, block)
}
