package metadata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/piccolo2/picowire/errs"
)

// Table maps serial numbers to instrument calibrations.
type Table map[string]Calibration

type tableConfig struct {
	Instruments []InstrumentConfig `yaml:"instruments"`
}

// InstrumentConfig is one instrument entry of a YAML calibration table:
//
//	instruments:
//	  - serial: QEP01651
//	    coefficients: [344.2, 0.8, -1.1e-4, 2.3e-9]
//	    saturation_level: 200000
type InstrumentConfig struct {
	Serial          string    `yaml:"serial"`
	Coefficients    []float32 `yaml:"coefficients"`
	SaturationLevel uint32    `yaml:"saturation_level"` // 0 or missing => DefaultSaturationLevel
}

// LoadCalibrations reads a YAML calibration table. Unknown keys are rejected.
func LoadCalibrations(r io.Reader) (Table, error) {
	var cfg tableConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("calibration table: %w", err)
	}

	return NewTable(cfg.Instruments)
}

// LoadCalibrationsFile reads a YAML calibration table from path.
func LoadCalibrationsFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCalibrations(f)
}

// NewTable validates instrument entries and builds a normalized table.
func NewTable(instruments []InstrumentConfig) (Table, error) {
	t := make(Table, len(instruments))
	for i, inst := range instruments {
		if err := validateSerial(inst.Serial); err != nil {
			return nil, fmt.Errorf("instrument %d: %w", i, err)
		}
		if _, dup := t[inst.Serial]; dup {
			return nil, fmt.Errorf("%w: serial %q", errs.ErrDuplicateName, inst.Serial)
		}
		if len(inst.Coefficients) != 4 {
			return nil, fmt.Errorf("instrument %q: expected 4 coefficients, got %d",
				inst.Serial, len(inst.Coefficients))
		}

		var cal Calibration
		copy(cal.Coefficients[:], inst.Coefficients)
		cal.SaturationLevel = inst.SaturationLevel
		t[inst.Serial] = cal.Normalized()
	}

	return t, nil
}

// Serials returns the serial numbers of t in ascending order.
func (t Table) Serials() []string {
	serials := make([]string, 0, len(t))
	for serial := range t {
		serials = append(serials, serial)
	}
	slices.Sort(serials)

	return serials
}

// Apply sets the calibration of every record from the table.
//
// Returns errs.ErrInvalidSerial, leaving records untouched, if any record's
// serial number has no entry.
func (t Table) Apply(records []Record) error {
	for i, r := range records {
		if _, ok := t[r.SerialNumber]; !ok {
			return fmt.Errorf("%w: record %d serial %q has no calibration", errs.ErrInvalidSerial, i, r.SerialNumber)
		}
	}

	for i := range records {
		records[i].Calibration = t[records[i].SerialNumber]
	}

	return nil
}
