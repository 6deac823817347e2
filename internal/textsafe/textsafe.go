// Package textsafe maps arbitrary bytes to printable radix-64 text and back.
//
// Decode failures are reported as errs.ErrDecode.
package textsafe

import (
	"encoding/base64"
	"fmt"

	"github.com/piccolo2/picowire/errs"
)

// Alphabet selects the radix-64 character set.
type Alphabet uint8

const (
	// Standard is the RFC 4648 alphabet with padding, as produced by the
	// reference instrument software.
	Standard Alphabet = iota
	// URLSafe is the RFC 4648 URL and filename safe alphabet with padding.
	URLSafe
)

func (a Alphabet) encoding() *base64.Encoding {
	if a == URLSafe {
		return base64.URLEncoding
	}

	return base64.StdEncoding
}

// Encode returns the radix-64 text of data.
func (a Alphabet) Encode(data []byte) string {
	return a.encoding().EncodeToString(data)
}

// Decode parses radix-64 text produced by Encode.
func (a Alphabet) Decode(text string) ([]byte, error) {
	data, err := a.encoding().DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecode, err)
	}

	return data, nil
}
