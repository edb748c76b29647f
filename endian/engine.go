// Package endian provides the byte order engine for the wire codec.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the standard
// encoding/binary package into a single EndianEngine interface, so the codec
// can thread one value through both decode (Uint64) and append
// (AppendUint16) paths.
//
// The LispTick wire format is little-endian throughout, so the only engine
// offered is GetLittleEndianEngine():
//
//	engine := endian.GetLittleEndianEngine()
//	v := engine.Uint64(buf)
//	prefix = engine.AppendUint16(prefix, size)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian, keeping the codec fully compatible
// with standard-library byte order values.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. The returned value
// is immutable and stateless, safe to share across readers.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
