// Package status encodes device state snapshots.
//
// Status is the fixed 32-bit register of global device flags, exchanged as a
// hexadecimal string. ExtendedStatus is a variable-length bit vector holding
// the autointegration and recording flags, one bit per shutter and one
// autointegration result per (instrument, shutter) pair, exchanged as
// radix-64 text.
package status
