// Package endian provides the byte order used by picowire binary layouts.
//
// Every binary block produced by picowire (packed sample arrays, the quantization
// header, calibration coefficient blocks) is little-endian. The EndianEngine
// interface combines binary.ByteOrder and binary.AppendByteOrder so packers can
// append values directly into pooled buffers:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint16(buf, sample)
//
// The returned engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Wire returns the engine used by all picowire payloads.
func Wire() EndianEngine {
	return GetLittleEndianEngine()
}
