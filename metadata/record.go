package metadata

import (
	"fmt"
	"math"

	"github.com/piccolo2/picowire/errs"
)

// DefaultSaturationLevel replaces a missing (zero) saturation level.
const DefaultSaturationLevel uint32 = 1

// MaxInstruments is the number of distinct instruments one encoded batch can
// index with a single decimal digit.
const MaxInstruments = 10

// Direction is the viewing direction of a spectrum.
type Direction uint8

const (
	DirectionUnknown Direction = iota
	Upwelling
	Downwelling
)

func (d Direction) String() string {
	switch d {
	case Upwelling:
		return "Upwelling"
	case Downwelling:
		return "Downwelling"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is Upwelling or Downwelling.
func (d Direction) IsValid() bool {
	return d == Upwelling || d == Downwelling
}

// ParseDirection parses "Upwelling" or "Downwelling".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "Upwelling":
		return Upwelling, nil
	case "Downwelling":
		return Downwelling, nil
	default:
		return DirectionUnknown, fmt.Errorf("%w: %q", errs.ErrInvalidDirection, s)
	}
}

// Calibration holds the immutable per-instrument attributes shared by every
// spectrum recorded with that instrument.
type Calibration struct {
	Coefficients    [4]float32
	SaturationLevel uint32
}

// Normalized returns c with a zero saturation level replaced by
// DefaultSaturationLevel.
func (c Calibration) Normalized() Calibration {
	if c.SaturationLevel == 0 {
		c.SaturationLevel = DefaultSaturationLevel
	}

	return c
}

// Equal reports whether c and other describe the same calibration after
// normalization. Coefficients are compared bit for bit.
func (c Calibration) Equal(other Calibration) bool {
	a, b := c.Normalized(), other.Normalized()
	if a.SaturationLevel != b.SaturationLevel {
		return false
	}
	for i := range a.Coefficients {
		if math.Float32bits(a.Coefficients[i]) != math.Float32bits(b.Coefficients[i]) {
			return false
		}
	}

	return true
}

// Record is the metadata of one spectrum.
type Record struct {
	SerialNumber string
	Calibration  Calibration
	Direction    Direction
	Dark         bool
}

// Letter returns the flag letter of a direction and dark pair: U, u, D or d.
// Lower case marks a dark spectrum.
func Letter(direction Direction, dark bool) (byte, error) {
	var letter byte
	switch direction {
	case Upwelling:
		letter = 'U'
	case Downwelling:
		letter = 'D'
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidDirection, direction)
	}

	if dark {
		letter += 'a' - 'A'
	}

	return letter, nil
}

// ParseLetter reverses Letter.
func ParseLetter(letter byte) (Direction, bool, error) {
	switch letter {
	case 'U':
		return Upwelling, false, nil
	case 'u':
		return Upwelling, true, nil
	case 'D':
		return Downwelling, false, nil
	case 'd':
		return Downwelling, true, nil
	default:
		return DirectionUnknown, false, fmt.Errorf("%w: unknown flag letter %q", errs.ErrDecode, letter)
	}
}
