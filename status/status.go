package status

import (
	"fmt"
	"strconv"

	"github.com/piccolo2/picowire/errs"
)

// Flag is a named bit of the Status register. Its value is the bit index.
type Flag uint8

const (
	FlagConnected       Flag = iota // bit 0
	FlagBusy                        // bit 1
	FlagPaused                      // bit 2
	FlagFileIncremented             // bit 3
	FlagNewMessage                  // bit 4
)

var flagNames = [...]string{
	FlagConnected:       "connected",
	FlagBusy:            "busy",
	FlagPaused:          "paused",
	FlagFileIncremented: "file_incremented",
	FlagNewMessage:      "new_message",
}

// Flags returns every named flag in bit order.
func Flags() []Flag {
	return []Flag{FlagConnected, FlagBusy, FlagPaused, FlagFileIncremented, FlagNewMessage}
}

func (f Flag) String() string {
	if int(f) < len(flagNames) {
		return flagNames[f]
	}

	return "Unknown"
}

// Mask returns the register bit of f.
func (f Flag) Mask() uint32 {
	return 1 << f
}

// ParseFlag looks up a flag by its name, e.g. "file_incremented".
func ParseFlag(name string) (Flag, error) {
	for i, n := range flagNames {
		if n == name {
			return Flag(i), nil //nolint:gosec
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownFlag, name)
}

// Status is the 32-bit device status register. Bits above FlagNewMessage are
// reserved; they are carried through Decode and Encode unchanged.
//
// The zero value has every flag cleared.
type Status struct {
	word uint32
}

// FromValue wraps a raw register value.
func FromValue(word uint32) Status {
	return Status{word: word}
}

// Decode parses a hexadecimal register value with an optional 0x or 0X prefix.
//
// Returns errs.ErrDecode for text that is not a 32-bit hexadecimal number.
func Decode(text string) (Status, error) {
	digits := text
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	word, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Status{}, fmt.Errorf("%w: status %q: %v", errs.ErrDecode, text, err)
	}

	return Status{word: uint32(word)}, nil
}

// Encode returns the register as lowercase hexadecimal with a 0x prefix.
func (s Status) Encode() string {
	return "0x" + strconv.FormatUint(uint64(s.word), 16)
}

// Value returns the raw register value.
func (s Status) Value() uint32 {
	return s.word
}

// Has reports whether flag f is set.
func (s Status) Has(f Flag) bool {
	return s.word&f.Mask() != 0
}

// SetFlag sets or clears flag f.
func (s *Status) SetFlag(f Flag, on bool) {
	if on {
		s.word |= f.Mask()
	} else {
		s.word &^= f.Mask()
	}
}

// Set sets the flag with the given name.
func (s *Status) Set(name string) error {
	return s.setNamed(name, true)
}

// Unset clears the flag with the given name.
func (s *Status) Unset(name string) error {
	return s.setNamed(name, false)
}

// Get reports whether the flag with the given name is set.
func (s Status) Get(name string) (bool, error) {
	f, err := ParseFlag(name)
	if err != nil {
		return false, err
	}

	return s.Has(f), nil
}

func (s *Status) setNamed(name string, on bool) error {
	f, err := ParseFlag(name)
	if err != nil {
		return err
	}
	s.SetFlag(f, on)

	return nil
}

// Connected reports FlagConnected.
func (s Status) Connected() bool { return s.Has(FlagConnected) }

// Busy reports FlagBusy.
func (s Status) Busy() bool { return s.Has(FlagBusy) }

// Paused reports FlagPaused.
func (s Status) Paused() bool { return s.Has(FlagPaused) }

// FileIncremented reports FlagFileIncremented.
func (s Status) FileIncremented() bool { return s.Has(FlagFileIncremented) }

// NewMessage reports FlagNewMessage.
func (s Status) NewMessage() bool { return s.Has(FlagNewMessage) }

// SetConnected sets or clears FlagConnected.
func (s *Status) SetConnected(on bool) { s.SetFlag(FlagConnected, on) }

// SetBusy sets or clears FlagBusy.
func (s *Status) SetBusy(on bool) { s.SetFlag(FlagBusy, on) }

// SetPaused sets or clears FlagPaused.
func (s *Status) SetPaused(on bool) { s.SetFlag(FlagPaused, on) }

// SetFileIncremented sets or clears FlagFileIncremented.
func (s *Status) SetFileIncremented(on bool) { s.SetFlag(FlagFileIncremented, on) }

// SetNewMessage sets or clears FlagNewMessage.
func (s *Status) SetNewMessage(on bool) { s.SetFlag(FlagNewMessage, on) }
