package metadata

import (
	"fmt"
	"math"
	"strings"

	"github.com/piccolo2/picowire/endian"
	"github.com/piccolo2/picowire/errs"
	"github.com/piccolo2/picowire/internal/pool"
	"github.com/piccolo2/picowire/internal/textsafe"
)

const (
	coefficientBlockSize = 4 * 4
	saturationBlockSize  = 4
	instrumentBlockSize  = coefficientBlockSize + saturationBlockSize
)

// Encode serializes a batch of records.
//
// Distinct serial numbers are listed in order of first occurrence, which
// defines the digit each record is indexed by. An empty batch encodes to "".
//
// Returns errs.ErrInvalidSerial for an empty serial or one containing a space,
// errs.ErrInvalidDirection for a record without a valid direction,
// errs.ErrCalibrationConflict when records sharing a serial disagree on their
// calibration, and errs.ErrTooManyInstruments for more than MaxInstruments
// distinct serials.
func Encode(records []Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	index := make(map[string]int, MaxInstruments)
	serials := make([]string, 0, MaxInstruments)
	cals := make([]Calibration, 0, MaxInstruments)
	codes := make([]byte, 2*len(records))

	for i, r := range records {
		if err := validateSerial(r.SerialNumber); err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}

		letter, err := Letter(r.Direction, r.Dark)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}

		cal := r.Calibration.Normalized()
		idx, ok := index[r.SerialNumber]
		switch {
		case !ok:
			if len(serials) == MaxInstruments {
				return "", fmt.Errorf("%w: record %d introduces instrument %d, at most %d fit",
					errs.ErrTooManyInstruments, i, len(serials)+1, MaxInstruments)
			}
			idx = len(serials)
			index[r.SerialNumber] = idx
			serials = append(serials, r.SerialNumber)
			cals = append(cals, cal)
		case !cals[idx].Equal(cal):
			return "", fmt.Errorf("%w: %q at record %d", errs.ErrCalibrationConflict, r.SerialNumber, i)
		}

		codes[i] = '0' + byte(idx) //nolint:gosec
		codes[len(records)+i] = letter
	}

	bb := pool.GetPackBuffer()
	defer pool.PutPackBuffer(bb)

	bb.B = appendCalibrations(bb.B, endian.Wire(), cals)

	var sb strings.Builder
	for _, serial := range serials {
		sb.WriteString(serial)
		sb.WriteByte(' ')
	}
	sb.WriteString(textsafe.Standard.Encode(bb.Bytes()))
	sb.WriteByte(' ')
	sb.Write(codes)

	return sb.String(), nil
}

// Decode parses text produced by Encode. "" decodes to an empty batch.
//
// Returns errs.ErrDecode for a malformed payload.
func Decode(text string) ([]Record, error) {
	if text == "" {
		return []Record{}, nil
	}

	tokens := strings.Split(text, " ")
	if len(tokens) < 3 {
		return nil, fmt.Errorf("%w: metadata needs at least 3 tokens, got %d", errs.ErrDecode, len(tokens))
	}

	serials := tokens[:len(tokens)-2]
	blockText := tokens[len(tokens)-2]
	codes := tokens[len(tokens)-1]

	if len(serials) > MaxInstruments {
		return nil, fmt.Errorf("%w: %d instruments listed, at most %d fit", errs.ErrDecode, len(serials), MaxInstruments)
	}
	seen := make(map[string]struct{}, len(serials))
	for _, serial := range serials {
		if serial == "" {
			return nil, fmt.Errorf("%w: empty serial token", errs.ErrDecode)
		}
		if _, dup := seen[serial]; dup {
			return nil, fmt.Errorf("%w: serial %q listed twice", errs.ErrDecode, serial)
		}
		seen[serial] = struct{}{}
	}

	if codes == "" || len(codes)%2 != 0 {
		return nil, fmt.Errorf("%w: code string of length %d", errs.ErrDecode, len(codes))
	}

	block, err := textsafe.Standard.Decode(blockText)
	if err != nil {
		return nil, err
	}

	cals, err := parseCalibrations(block, endian.Wire(), len(serials))
	if err != nil {
		return nil, err
	}

	n := len(codes) / 2
	digits, letters := codes[:n], codes[n:]
	records := make([]Record, n)
	for i := range records {
		d := int(digits[i]) - '0'
		if d < 0 || d >= len(serials) {
			return nil, fmt.Errorf("%w: record %d has instrument digit %q for %d instruments",
				errs.ErrDecode, i, digits[i], len(serials))
		}

		direction, dark, err := ParseLetter(letters[i])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		records[i] = Record{
			SerialNumber: serials[d],
			Calibration:  cals[d],
			Direction:    direction,
			Dark:         dark,
		}
	}

	return records, nil
}

func validateSerial(serial string) error {
	if serial == "" || strings.Contains(serial, " ") {
		return fmt.Errorf("%w: %q", errs.ErrInvalidSerial, serial)
	}

	return nil
}

// appendCalibrations writes every coefficient block, then every saturation level.
func appendCalibrations(dst []byte, engine endian.EndianEngine, cals []Calibration) []byte {
	for _, cal := range cals {
		for _, c := range cal.Coefficients {
			dst = engine.AppendUint32(dst, math.Float32bits(c))
		}
	}
	for _, cal := range cals {
		dst = engine.AppendUint32(dst, cal.SaturationLevel)
	}

	return dst
}

func parseCalibrations(block []byte, engine endian.EndianEngine, n int) ([]Calibration, error) {
	if len(block) != n*instrumentBlockSize {
		return nil, fmt.Errorf("%w: numeric block of %d bytes, want %d for %d instruments",
			errs.ErrDecode, len(block), n*instrumentBlockSize, n)
	}

	cals := make([]Calibration, n)
	for i := range cals {
		coeffs := block[i*coefficientBlockSize : (i+1)*coefficientBlockSize]
		for j := range cals[i].Coefficients {
			cals[i].Coefficients[j] = math.Float32frombits(engine.Uint32(coeffs[j*4 : j*4+4]))
		}

		off := n*coefficientBlockSize + i*saturationBlockSize
		cals[i].SaturationLevel = engine.Uint32(block[off : off+saturationBlockSize])
	}

	return cals, nil
}
