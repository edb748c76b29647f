package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUIDRoundTrip(t *testing.T) {
	uids := []UID{0, 1, 0xFF, 0x100, 0x1234, 0xFFFF, 0x10000, 0xABCDEF, 0xFFFFFF}

	for _, uid := range uids {
		b0, b1, b2 := EncodeUID(uid)
		require.Equal(t, uid, DecodeUID(b0, b1, b2), "uid=%d", uid)
	}
}

func TestUIDRoundTripExhaustiveLowRange(t *testing.T) {
	// Server-assigned UIDs are small and dense in practice; cover the dense
	// range exhaustively and the rest by the boundary cases above.
	for u := UID(0); u < 0x2000; u++ {
		b0, b1, b2 := EncodeUID(u)
		require.Equal(t, u, DecodeUID(b0, b1, b2))
	}
}

func TestDecodeUIDLittleEndian(t *testing.T) {
	// b0 is the least significant byte.
	require.Equal(t, UID(0x030201), DecodeUID(0x01, 0x02, 0x03))
	require.Equal(t, UID(1), DecodeUID(0x01, 0x00, 0x00))
	require.Equal(t, UID(0x10000), DecodeUID(0x00, 0x00, 0x01))
}
