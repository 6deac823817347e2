package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Layout fingerprints an ordered list of name groups.
//
// Names are NUL-terminated and groups are closed by 0x01, so moving a name
// from one group to the next changes the fingerprint.
func Layout(groups ...[]string) uint64 {
	d := xxhash.New()
	for _, group := range groups {
		for _, name := range group {
			_, _ = d.WriteString(name)
			_, _ = d.Write([]byte{0x00})
		}
		_, _ = d.Write([]byte{0x01})
	}

	return d.Sum64()
}
