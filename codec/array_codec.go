package codec

import (
	"fmt"

	"github.com/piccolo2/picowire/compress"
	"github.com/piccolo2/picowire/encoding"
	"github.com/piccolo2/picowire/endian"
	"github.com/piccolo2/picowire/errs"
	"github.com/piccolo2/picowire/format"
	"github.com/piccolo2/picowire/internal/options"
	"github.com/piccolo2/picowire/internal/textsafe"
)

// ArrayCodec encodes sample arrays and file lists to text payloads.
type ArrayCodec struct {
	compression format.CompressionType
	codec       compress.Codec
	alphabet    textsafe.Alphabet
	engine      endian.EndianEngine
}

// ArrayCodecOption configures an ArrayCodec.
type ArrayCodecOption = options.Option[*ArrayCodec]

// WithCompression selects the compression stage. The default is
// format.CompressionZlib, the only one the reference software understands.
func WithCompression(comp format.CompressionType) ArrayCodecOption {
	return options.New(func(c *ArrayCodec) error {
		codec, err := compress.GetCodec(comp)
		if err != nil {
			return err
		}
		c.compression = comp
		c.codec = codec

		return nil
	})
}

// WithURLSafeText switches the text stage to the URL and filename safe alphabet.
func WithURLSafeText() ArrayCodecOption {
	return options.NoError(func(c *ArrayCodec) {
		c.alphabet = textsafe.URLSafe
	})
}

// NewArrayCodec creates an ArrayCodec. Without options it uses zlib
// compression and the standard radix-64 alphabet.
func NewArrayCodec(opts ...ArrayCodecOption) (*ArrayCodec, error) {
	c := &ArrayCodec{
		compression: format.CompressionZlib,
		codec:       compress.NewZlibCompressor(),
		alphabet:    textsafe.Standard,
		engine:      endian.Wire(),
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Compression returns the configured compression type.
func (c *ArrayCodec) Compression() format.CompressionType {
	return c.compression
}

// Encode packs samples as unsigned integers of width bits and returns the payload.
//
// Samples that do not fit in width bits wrap silently; choosing a width that
// covers the data is the caller's responsibility.
func (c *ArrayCodec) Encode(samples []uint32, width format.Width) (string, error) {
	encoder, err := encoding.NewFixedWidthEncoder(c.engine, width)
	if err != nil {
		return "", err
	}
	defer encoder.Finish()

	encoder.WriteSlice(samples)

	return c.seal(encoder.Bytes())
}

// Decode reverses Encode.
//
// Returns errs.ErrDecode for malformed text, a corrupt compression stream, or
// a block whose length is not a multiple of the sample size.
func (c *ArrayCodec) Decode(payload string, width format.Width) ([]uint32, error) {
	decoder, err := encoding.NewFixedWidthDecoder(c.engine, width)
	if err != nil {
		return nil, err
	}

	block, err := c.open(payload)
	if err != nil {
		return nil, err
	}

	return decoder.Decode(block)
}

// seal compresses block and text-encodes the result. block may alias a
// pooled buffer; it is fully consumed before seal returns.
func (c *ArrayCodec) seal(block []byte) (string, error) {
	compressed, err := c.codec.Compress(block)
	if err != nil {
		return "", err
	}

	return c.alphabet.Encode(compressed), nil
}

// open reverses seal.
func (c *ArrayCodec) open(payload string) ([]byte, error) {
	compressed, err := c.alphabet.Decode(payload)
	if err != nil {
		return nil, err
	}

	block, err := c.codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecode, err)
	}

	return block, nil
}
