package buf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutUint(t *testing.T) {
	var b8 [8]byte
	PutUint(b8[:], 0x0102030405060708, binary.BigEndian)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b8[:])

	PutUint(b8[:], 0x0102030405060708, binary.LittleEndian)
	require.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, b8[:])

	var b4 [4]byte
	PutUint(b4[:], 0x11002233, binary.BigEndian)
	require.Equal(t, []byte{0x11, 0x00, 0x22, 0x33}, b4[:])

	var b2 [2]byte
	PutUint(b2[:], 0x6120, binary.LittleEndian)
	require.Equal(t, []byte{0x20, 0x61}, b2[:])

	var b1 [1]byte
	PutUint(b1[:], 0x41FF, binary.BigEndian)
	require.Equal(t, []byte{0xFF}, b1[:])
}

func TestPutUintTruncates(t *testing.T) {
	var b2 [2]byte
	PutUint(b2[:], 0xDEADBEEF, binary.BigEndian)
	require.Equal(t, []byte{0xBE, 0xEF}, b2[:])
}

func TestLittle(t *testing.T) {
	require.True(t, Little(binary.LittleEndian))
	require.False(t, Little(binary.BigEndian))
}
