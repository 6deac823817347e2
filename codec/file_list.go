package codec

import (
	"fmt"
	"strings"

	"github.com/piccolo2/picowire/errs"
	"github.com/piccolo2/picowire/internal/pool"
)

const fileListSeparator = ","

// EncodeFileList joins names with commas and returns the payload.
//
// Names must be non-empty and free of commas, otherwise they could not be told
// apart on decode; such names fail with errs.ErrInvalidFileName.
func (c *ArrayCodec) EncodeFileList(names []string) (string, error) {
	bb := pool.GetPackBuffer()
	defer pool.PutPackBuffer(bb)

	for i, name := range names {
		if name == "" || strings.Contains(name, fileListSeparator) {
			return "", fmt.Errorf("%w: entry %d %q", errs.ErrInvalidFileName, i, name)
		}
		if i > 0 {
			bb.MustWrite([]byte(fileListSeparator))
		}
		bb.MustWrite([]byte(name))
	}

	return c.seal(bb.Bytes())
}

// DecodeFileList reverses EncodeFileList. An empty list decodes to an empty,
// non-nil slice rather than a list holding one empty name.
func (c *ArrayCodec) DecodeFileList(payload string) ([]string, error) {
	block, err := c.open(payload)
	if err != nil {
		return nil, err
	}

	if len(block) == 0 {
		return []string{}, nil
	}

	names := strings.Split(string(block), fileListSeparator)
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty entry %d in file list", errs.ErrDecode, i)
		}
	}

	return names, nil
}
