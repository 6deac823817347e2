package format

type (
	Width           uint8
	CompressionType uint8
)

const (
	Width8  Width = 8  // Width8 packs each sample into one byte.
	Width16 Width = 16 // Width16 packs each sample into two bytes, the nominal working width.
	Width32 Width = 32 // Width32 packs each sample into four bytes.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionZlib CompressionType = 0x5 // CompressionZlib represents zlib (deflate) compression.
)

// IsValid reports whether w is one of the supported sample widths.
func (w Width) IsValid() bool {
	switch w {
	case Width8, Width16, Width32:
		return true
	default:
		return false
	}
}

// Bytes returns the number of bytes occupied by one sample of width w.
func (w Width) Bytes() int {
	return int(w) / 8
}

// MaxUnsigned returns the largest unsigned value representable in w bits.
func (w Width) MaxUnsigned() uint64 {
	return 1<<uint(w) - 1
}

// MaxSigned returns the largest signed value representable in w bits.
func (w Width) MaxSigned() int64 {
	return 1<<(uint(w)-1) - 1
}

func (w Width) String() string {
	switch w {
	case Width8:
		return "uint8"
	case Width16:
		return "uint16"
	case Width32:
		return "uint32"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZlib:
		return "Zlib"
	default:
		return "Unknown"
	}
}
