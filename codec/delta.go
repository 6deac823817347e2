package codec

import (
	"fmt"

	"github.com/piccolo2/picowire/encoding"
	"github.com/piccolo2/picowire/errs"
	"github.com/piccolo2/picowire/format"
)

// DeltaResult is the outcome of EncodeDelta.
//
// UsedDelta must travel with Payload: it selects DecodeDiff at the narrow
// width (true) or Decode at the fallback width (false).
type DeltaResult struct {
	UsedDelta bool
	Payload   string
}

// EncodeDelta stores the first differences of samples at the narrow width when
// they fit, and samples themselves at the fallback width otherwise.
//
// The differences fit when their largest magnitude is strictly below the
// largest signed value of the narrow width (127 for 8 bits); they are stored
// as two's complement integers. A single sample yields an empty difference
// sequence, which always fits; an empty array always falls back since it has
// no first sample to reconstruct from.
//
// A delta payload does not include samples[0]. Consumers need the first
// sample from another channel and rebuild the array with Reconstruct.
func (c *ArrayCodec) EncodeDelta(samples []uint32, narrow, fallback format.Width) (DeltaResult, error) {
	for _, w := range []format.Width{narrow, fallback} {
		if !w.IsValid() {
			return DeltaResult{}, fmt.Errorf("%w: %d", errs.ErrInvalidWidth, w)
		}
	}

	diffs := encoding.Diff(samples)
	if len(samples) == 0 || !encoding.FitsSigned(diffs, narrow) {
		payload, err := c.Encode(samples, fallback)
		if err != nil {
			return DeltaResult{}, err
		}

		return DeltaResult{UsedDelta: false, Payload: payload}, nil
	}

	encoder, err := encoding.NewSignedWidthEncoder(c.engine, narrow)
	if err != nil {
		return DeltaResult{}, err
	}
	defer encoder.Finish()

	encoder.WriteSlice(diffs)

	payload, err := c.seal(encoder.Bytes())
	if err != nil {
		return DeltaResult{}, err
	}

	return DeltaResult{UsedDelta: true, Payload: payload}, nil
}

// DecodeDiff decodes a delta payload into its signed difference sequence.
func (c *ArrayCodec) DecodeDiff(payload string, narrow format.Width) ([]int64, error) {
	decoder, err := encoding.NewFixedWidthDecoder(c.engine, narrow)
	if err != nil {
		return nil, err
	}

	block, err := c.open(payload)
	if err != nil {
		return nil, err
	}

	return decoder.DecodeSigned(block)
}

// DecodeDelta decodes either kind of EncodeDelta payload back into samples.
//
// first is only consulted for delta payloads, where it supplies the sample
// the payload does not carry.
func (c *ArrayCodec) DecodeDelta(result DeltaResult, first uint32, narrow, fallback format.Width) ([]uint32, error) {
	if !result.UsedDelta {
		return c.Decode(result.Payload, fallback)
	}

	diffs, err := c.DecodeDiff(result.Payload, narrow)
	if err != nil {
		return nil, err
	}

	return Reconstruct(first, diffs)
}

// Reconstruct rebuilds a sample array from its first sample and its first
// differences.
func Reconstruct(first uint32, diffs []int64) ([]uint32, error) {
	return encoding.Integrate(first, diffs)
}
