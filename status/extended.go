package status

import (
	"fmt"
	"slices"
	"sync"

	"github.com/piccolo2/picowire/errs"
	"github.com/piccolo2/picowire/internal/hash"
	"github.com/piccolo2/picowire/internal/textsafe"
)

const (
	bitAutointegrating = 0
	bitRecording       = 1
	firstShutterBit    = 2
)

// ExtendedStatus is the per-instrument status bit vector.
//
// Instrument and shutter names are sorted on construction and fix the bit
// layout for the lifetime of the value:
//
//	bit 0                                      autointegrating
//	bit 1                                      recording
//	bit 2+s                                    shutter s open
//	bit 2+numShutters+i*numShutters+s          instrument i autointegrated
//	                                           successfully behind shutter s
//
// Bits are packed most significant bit first and the vector is padded with
// zero bits to a whole byte. Every method is safe for concurrent use and
// atomic with respect to the instance.
type ExtendedStatus struct {
	instruments   []string
	shutters      []string
	instrumentIdx map[string]int
	shutterIdx    map[string]int
	nbits         int
	layoutID      uint64

	mu   sync.RWMutex
	bits []byte
}

// NewExtendedStatus creates an all-clear status vector for the given
// instruments and shutters.
//
// Returns errs.ErrDuplicateName if a name repeats within either list.
func NewExtendedStatus(instruments, shutters []string) (*ExtendedStatus, error) {
	s := &ExtendedStatus{
		instruments: slices.Sorted(slices.Values(instruments)),
		shutters:    slices.Sorted(slices.Values(shutters)),
	}

	var err error
	if s.instrumentIdx, err = indexNames("instrument", s.instruments); err != nil {
		return nil, err
	}
	if s.shutterIdx, err = indexNames("shutter", s.shutters); err != nil {
		return nil, err
	}

	s.nbits = firstShutterBit + len(s.shutters) + len(s.instruments)*len(s.shutters)
	s.bits = make([]byte, s.byteLen())
	s.layoutID = hash.Layout(s.instruments, s.shutters)

	return s, nil
}

func indexNames(kind string, sorted []string) (map[string]int, error) {
	idx := make(map[string]int, len(sorted))
	for i, name := range sorted {
		if i > 0 && sorted[i-1] == name {
			return nil, fmt.Errorf("%w: %s %q", errs.ErrDuplicateName, kind, name)
		}
		idx[name] = i
	}

	return idx, nil
}

// Len returns the number of meaningful bits, excluding padding.
func (s *ExtendedStatus) Len() int {
	return s.nbits
}

// Instruments returns the sorted instrument names.
func (s *ExtendedStatus) Instruments() []string {
	return slices.Clone(s.instruments)
}

// Shutters returns the sorted shutter names.
func (s *ExtendedStatus) Shutters() []string {
	return slices.Clone(s.shutters)
}

// LayoutID fingerprints the instrument and shutter sets. Two vectors with the
// same LayoutID exchange payloads bit for bit.
func (s *ExtendedStatus) LayoutID() uint64 {
	return s.layoutID
}

// Bits returns a snapshot of the Len meaningful bits.
func (s *ExtendedStatus) Bits() []bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]bool, s.nbits)
	for i := range out {
		out[i] = s.get(i)
	}

	return out
}

// StartAutointegration sets the autointegrating flag (bit 0).
func (s *ExtendedStatus) StartAutointegration() { s.store(bitAutointegrating, true) }

// StopAutointegration clears the autointegrating flag.
func (s *ExtendedStatus) StopAutointegration() { s.store(bitAutointegrating, false) }

// IsAutointegrating reports the autointegrating flag.
func (s *ExtendedStatus) IsAutointegrating() bool {
	return s.load(bitAutointegrating)
}

// StartRecording sets the recording flag (bit 1).
func (s *ExtendedStatus) StartRecording() { s.store(bitRecording, true) }

// StopRecording clears the recording flag.
func (s *ExtendedStatus) StopRecording() { s.store(bitRecording, false) }

// IsRecording reports the recording flag.
func (s *ExtendedStatus) IsRecording() bool {
	return s.load(bitRecording)
}

// Open marks shutter as open.
func (s *ExtendedStatus) Open(shutter string) error {
	return s.storeShutter(shutter, true)
}

// Close marks shutter as closed.
func (s *ExtendedStatus) Close(shutter string) error {
	return s.storeShutter(shutter, false)
}

// IsOpen reports whether shutter is open.
func (s *ExtendedStatus) IsOpen(shutter string) (bool, error) {
	bit, err := s.shutterBit(shutter)
	if err != nil {
		return false, err
	}

	return s.load(bit), nil
}

// IsClosed reports whether shutter is closed.
func (s *ExtendedStatus) IsClosed(shutter string) (bool, error) {
	open, err := s.IsOpen(shutter)
	return !open, err
}

// SetAutointegrationResult records whether autointegration of instrument
// behind shutter succeeded.
func (s *ExtendedStatus) SetAutointegrationResult(instrument, shutter string, ok bool) error {
	bit, err := s.autoBit(instrument, shutter)
	if err != nil {
		return err
	}
	s.store(bit, ok)

	return nil
}

// AutoSuccess records a successful autointegration of instrument behind shutter.
func (s *ExtendedStatus) AutoSuccess(instrument, shutter string) error {
	return s.SetAutointegrationResult(instrument, shutter, true)
}

// AutoFail records a failed autointegration of instrument behind shutter.
func (s *ExtendedStatus) AutoFail(instrument, shutter string) error {
	return s.SetAutointegrationResult(instrument, shutter, false)
}

// IsAutointegrationSuccessful reports the last recorded autointegration
// result of instrument behind shutter.
func (s *ExtendedStatus) IsAutointegrationSuccessful(instrument, shutter string) (bool, error) {
	bit, err := s.autoBit(instrument, shutter)
	if err != nil {
		return false, err
	}

	return s.load(bit), nil
}

// Encode returns the packed bit vector as radix-64 text.
func (s *ExtendedStatus) Encode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return textsafe.Standard.Encode(s.bits)
}

// Update replaces the whole vector with the one encoded in text.
//
// The state is left untouched on failure. Returns errs.ErrStatusLengthMismatch
// if text does not hold exactly the bytes of this layout, and errs.ErrDecode
// for malformed text or set padding bits.
func (s *ExtendedStatus) Update(text string) error {
	bits, err := textsafe.Standard.Decode(text)
	if err != nil {
		return err
	}

	if want := s.byteLen(); len(bits) != want {
		return fmt.Errorf("%w: got %d bytes, layout %016x of %d instruments and %d shutters needs %d",
			errs.ErrStatusLengthMismatch, len(bits), s.layoutID, len(s.instruments), len(s.shutters), want)
	}

	for i := s.nbits; i < len(bits)*8; i++ {
		if bits[i/8]&mask(i) != 0 {
			return fmt.Errorf("%w: padding bit %d is set", errs.ErrDecode, i)
		}
	}

	s.mu.Lock()
	s.bits = bits
	s.mu.Unlock()

	return nil
}

func (s *ExtendedStatus) shutterBit(shutter string) (int, error) {
	i, ok := s.shutterIdx[shutter]
	if !ok {
		return 0, fmt.Errorf("%w: shutter %q", errs.ErrUnknownFlag, shutter)
	}

	return firstShutterBit + i, nil
}

func (s *ExtendedStatus) autoBit(instrument, shutter string) (int, error) {
	inst, ok := s.instrumentIdx[instrument]
	if !ok {
		return 0, fmt.Errorf("%w: instrument %q", errs.ErrUnknownFlag, instrument)
	}
	sh, ok := s.shutterIdx[shutter]
	if !ok {
		return 0, fmt.Errorf("%w: shutter %q", errs.ErrUnknownFlag, shutter)
	}
	n := len(s.shutters)

	return firstShutterBit + n + inst*n + sh, nil
}

func (s *ExtendedStatus) storeShutter(shutter string, open bool) error {
	bit, err := s.shutterBit(shutter)
	if err != nil {
		return err
	}
	s.store(bit, open)

	return nil
}

func (s *ExtendedStatus) store(bit int, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if on {
		s.bits[bit/8] |= mask(bit)
	} else {
		s.bits[bit/8] &^= mask(bit)
	}
}

func (s *ExtendedStatus) load(bit int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.get(bit)
}

// get requires s.mu to be held.
func (s *ExtendedStatus) get(bit int) bool {
	return s.bits[bit/8]&mask(bit) != 0
}

// byteLen is the packed size of the vector. It depends only on the immutable
// layout, so it needs no lock.
func (s *ExtendedStatus) byteLen() int {
	return (s.nbits + 7) / 8
}

func mask(bit int) byte {
	return 0x80 >> (bit % 8)
}
