package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWireIsLittleEndian(t *testing.T) {
	require.Equal(t, binary.LittleEndian, Wire())
	require.Equal(t, GetLittleEndianEngine(), Wire())
}

func TestEngines_Append(t *testing.T) {
	require := require.New(t)

	le := GetLittleEndianEngine()
	require.Equal([]byte{0x34, 0x12}, le.AppendUint16(nil, 0x1234))
	require.Equal([]byte{0x78, 0x56, 0x34, 0x12}, le.AppendUint32(nil, 0x12345678))

	be := GetBigEndianEngine()
	require.Equal([]byte{0x12, 0x34}, be.AppendUint16(nil, 0x1234))
	require.Equal(uint16(0x1234), be.Uint16([]byte{0x12, 0x34}))
}
