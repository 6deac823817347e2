// Package metadata carries the per-spectrum metadata that travels alongside
// encoded sample arrays.
//
// A batch of records is serialized into a compact positional text format that
// factors out the few distinct instrument calibrations:
//
//	<serial> [<serial>...] <numeric block> <digits><letters>
//
// The numeric block holds the four float32 wavelength coefficients of every
// distinct instrument, followed by their uint32 saturation levels, little-endian
// and radix-64 encoded. Each record contributes one decimal digit (the index of
// its instrument) and one letter (U, u, D or d) describing its direction and
// whether it is a dark spectrum.
//
// Calibrations can also be loaded from YAML tables with LoadCalibrations and
// applied to records by serial number.
package metadata
