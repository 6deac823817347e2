// Package errs defines the sentinel errors returned by picowire codecs.
//
// Errors are returned as-is or wrapped with additional context using
// fmt.Errorf("%w: ..."), so callers should match them with errors.Is.
package errs

import "errors"

var (
	// ErrDecode reports a corrupt or truncated payload: malformed text-safe
	// encoding, a broken compression stream, or a byte length that does not
	// fit the expected layout.
	ErrDecode = errors.New("corrupt payload")

	// ErrInvalidWidth reports a sample width other than 8, 16 or 32 bits.
	ErrInvalidWidth = errors.New("invalid sample width")

	// ErrEmptyArray reports an operation that needs at least one sample.
	ErrEmptyArray = errors.New("empty sample array")

	// ErrValueOutOfRange reports a value that cannot be stored in its header field.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrUnknownCompression reports an unsupported compression type.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrTooManyInstruments reports a metadata batch with more distinct
	// instruments than a single decimal digit can index.
	ErrTooManyInstruments = errors.New("too many instruments in batch")

	// ErrInvalidSerial reports a serial identifier that is empty or contains a space.
	ErrInvalidSerial = errors.New("invalid serial identifier")

	// ErrInvalidDirection reports a direction other than upwelling or downwelling.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrCalibrationConflict reports two records sharing a serial identifier
	// but carrying different calibration data.
	ErrCalibrationConflict = errors.New("conflicting calibration for serial")

	// ErrInvalidFileName reports a file name that cannot be carried in a file list payload.
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrUnknownFlag reports a status flag, shutter or instrument name that is not known.
	ErrUnknownFlag = errors.New("unknown status flag")

	// ErrDuplicateName reports a repeated instrument or shutter name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrStatusLengthMismatch reports an extended status payload whose length
	// disagrees with the configured instrument and shutter sets.
	ErrStatusLengthMismatch = errors.New("status length mismatch")
)
