package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	// The wire format's byte order: least significant byte first.
	buf := []byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	require.Equal(t, uint64(7), engine.Uint64(buf))
}

func TestEngineAppendUint16(t *testing.T) {
	// The request envelope's 2-byte size prefix: [len & 0xFF, len >> 8].
	prefix := GetLittleEndianEngine().AppendUint16(nil, 0x0201)
	require.Equal(t, []byte{0x01, 0x02}, prefix)
}

func TestEngineIsStateless(t *testing.T) {
	// Engines from repeated calls are the same immutable instance, so they
	// are safe to share across readers.
	require.Equal(t, GetLittleEndianEngine(), GetLittleEndianEngine())
}
