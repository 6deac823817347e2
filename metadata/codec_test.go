package metadata

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piccolo2/picowire/errs"
)

var (
	calA = Calibration{Coefficients: [4]float32{1.5, 0.25, -0.5, 2.0}}
	calB = Calibration{Coefficients: [4]float32{300, 0.5, 0, 0}, SaturationLevel: 65535}
)

const referencePayload = "QEP1 QEP2 AADAPwAAgD4AAAC/AAAAQAAAlkMAAAA/AAAAAAAAAAABAAAA//8AAA== 010Udu"

func referenceRecords() []Record {
	return []Record{
		{SerialNumber: "QEP1", Calibration: calA, Direction: Upwelling},
		{SerialNumber: "QEP2", Calibration: calB, Direction: Downwelling, Dark: true},
		{SerialNumber: "QEP1", Calibration: calA, Direction: Upwelling, Dark: true},
	}
}

func normalized(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.Calibration = r.Calibration.Normalized()
		out[i] = r
	}

	return out
}

func TestEncode_ReferencePayload(t *testing.T) {
	text, err := Encode(referenceRecords())
	require.NoError(t, err)
	require.Equal(t, referencePayload, text)
}

func TestDecode_ReferencePayload(t *testing.T) {
	records, err := Decode(referencePayload)
	require.NoError(t, err)
	require.Equal(t, normalized(referenceRecords()), records)
	require.Equal(t, DefaultSaturationLevel, records[0].Calibration.SaturationLevel)
}

func TestRoundTrip_AnyOrdering(t *testing.T) {
	base := referenceRecords()
	base = append(base, Record{SerialNumber: "QEP3", Direction: Downwelling})

	orderings := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}

	for _, order := range orderings {
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			records := make([]Record, len(order))
			for i, j := range order {
				records[i] = base[j]
			}

			text, err := Encode(records)
			require.NoError(t, err)

			decoded, err := Decode(text)
			require.NoError(t, err)
			require.Equal(t, normalized(records), decoded)
		})
	}
}

func TestRoundTrip_SpecialFloats(t *testing.T) {
	cal := Calibration{
		Coefficients:    [4]float32{float32(math.Inf(-1)), float32(math.NaN()), -0.0, math.MaxFloat32},
		SaturationLevel: math.MaxUint32,
	}
	records := []Record{
		{SerialNumber: "S1", Calibration: cal, Direction: Upwelling},
		{SerialNumber: "S1", Calibration: cal, Direction: Downwelling},
	}

	text, err := Encode(records)
	require.NoError(t, err)

	decoded, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.True(t, cal.Equal(decoded[0].Calibration))
	require.True(t, cal.Equal(decoded[1].Calibration))
}

func TestEncode_EmptyBatch(t *testing.T) {
	text, err := Encode(nil)
	require.NoError(t, err)
	require.Empty(t, text)

	records, err := Decode("")
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestEncode_InstrumentLimit(t *testing.T) {
	records := make([]Record, 0, MaxInstruments+1)
	for i := range MaxInstruments {
		records = append(records, Record{SerialNumber: fmt.Sprintf("SN%02d", i), Direction: Upwelling})
	}

	text, err := Encode(records)
	require.NoError(t, err)

	decoded, err := Decode(text)
	require.NoError(t, err)
	require.Equal(t, normalized(records), decoded)

	records = append(records, Record{SerialNumber: "SN10", Direction: Upwelling})
	_, err = Encode(records)
	require.ErrorIs(t, err, errs.ErrTooManyInstruments)
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		wantErr error
	}{
		{
			name:    "empty serial",
			records: []Record{{Direction: Upwelling}},
			wantErr: errs.ErrInvalidSerial,
		},
		{
			name:    "serial with space",
			records: []Record{{SerialNumber: "QE P1", Direction: Upwelling}},
			wantErr: errs.ErrInvalidSerial,
		},
		{
			name:    "missing direction",
			records: []Record{{SerialNumber: "QEP1"}},
			wantErr: errs.ErrInvalidDirection,
		},
		{
			name: "calibration conflict",
			records: []Record{
				{SerialNumber: "QEP1", Calibration: calA, Direction: Upwelling},
				{SerialNumber: "QEP1", Calibration: calB, Direction: Upwelling},
			},
			wantErr: errs.ErrCalibrationConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.records)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncode_MissingSaturationIsNotAConflict(t *testing.T) {
	withDefault := calA
	withDefault.SaturationLevel = DefaultSaturationLevel

	_, err := Encode([]Record{
		{SerialNumber: "QEP1", Calibration: calA, Direction: Upwelling},
		{SerialNumber: "QEP1", Calibration: withDefault, Direction: Upwelling},
	})
	require.NoError(t, err)
}

func TestDecode_Errors(t *testing.T) {
	block := strings.Fields(referencePayload)[2]

	tests := []struct {
		name string
		text string
	}{
		{"too few tokens", "QEP1 010Udu"},
		{"odd code string", "QEP1 QEP2 " + block + " 010Ud"},
		{"empty code string", "QEP1 QEP2 " + block + " "},
		{"bad radix-64", "QEP1 QEP2 !!!! 0U"},
		{"block length", "QEP1 " + block + " 0U"},
		{"digit out of range", "QEP1 QEP2 " + block + " 2U"},
		{"non-digit index", "QEP1 QEP2 " + block + " xU"},
		{"unknown letter", "QEP1 QEP2 " + block + " 0X"},
		{"duplicate serial", "QEP1 QEP1 " + block + " 0U"},
		{"empty serial", "QEP1  QEP2 " + block + " 0U"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text)
			require.ErrorIs(t, err, errs.ErrDecode)
		})
	}
}

func TestLetter(t *testing.T) {
	tests := []struct {
		direction Direction
		dark      bool
		letter    byte
	}{
		{Upwelling, false, 'U'},
		{Upwelling, true, 'u'},
		{Downwelling, false, 'D'},
		{Downwelling, true, 'd'},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			letter, err := Letter(tt.direction, tt.dark)
			require.NoError(t, err)
			require.Equal(t, tt.letter, letter)

			direction, dark, err := ParseLetter(letter)
			require.NoError(t, err)
			require.Equal(t, tt.direction, direction)
			require.Equal(t, tt.dark, dark)
		})
	}

	_, err := Letter(DirectionUnknown, false)
	require.ErrorIs(t, err, errs.ErrInvalidDirection)
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Upwelling, Downwelling} {
		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	_, err := ParseDirection("Sideways")
	require.ErrorIs(t, err, errs.ErrInvalidDirection)
	require.Equal(t, "Unknown", DirectionUnknown.String())
}
