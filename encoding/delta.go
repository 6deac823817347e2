package encoding

import (
	"fmt"
	"math"

	"github.com/piccolo2/picowire/errs"
	"github.com/piccolo2/picowire/format"
)

// Diff returns the first differences d[i] = samples[i+1] - samples[i].
//
// The result has one element fewer than samples and does not carry
// samples[0]; Integrate needs it supplied separately. Returns an empty slice
// for fewer than two samples.
func Diff(samples []uint32) []int64 {
	if len(samples) < 2 {
		return []int64{}
	}

	diffs := make([]int64, len(samples)-1)
	for i := range diffs {
		diffs[i] = int64(samples[i+1]) - int64(samples[i])
	}

	return diffs
}

// MaxAbs returns the largest absolute value in values, or 0 for an empty slice.
func MaxAbs(values []int64) int64 {
	var maxAbs int64
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}

	return maxAbs
}

// FitsSigned reports whether every value's magnitude is strictly below the
// largest signed value representable in width bits.
func FitsSigned(values []int64, width format.Width) bool {
	return MaxAbs(values) < width.MaxSigned()
}

// Integrate rebuilds samples from the first sample and the first differences.
//
// Returns errs.ErrValueOutOfRange if a running sum leaves the uint32 range,
// which means first does not belong to the difference sequence.
func Integrate(first uint32, diffs []int64) ([]uint32, error) {
	out := make([]uint32, len(diffs)+1)
	out[0] = first

	acc := int64(first)
	for i, d := range diffs {
		acc += d
		if acc < 0 || acc > math.MaxUint32 {
			return nil, fmt.Errorf("%w: sample %d reconstructs to %d", errs.ErrValueOutOfRange, i+1, acc)
		}
		out[i+1] = uint32(acc)
	}

	return out, nil
}
