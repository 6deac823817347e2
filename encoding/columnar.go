package encoding

import "iter"

// ColumnarEncoder appends values of type T to a pooled binary block.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice or Finish.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded values.
	Size() int

	// Finish returns buffer resources to the pool. The encoder is unusable afterwards:
	//
	//	encoder, _ := NewFixedWidthEncoder(engine, format.Width16)
	//	defer encoder.Finish()
	Finish()

	// Write encodes a single value.
	Write(value T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values of type T back from a binary block.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator over every complete value in data.
	All(data []byte) iter.Seq[T]
}
