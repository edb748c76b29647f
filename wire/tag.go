// Package wire implements the binary frame codec for the LispTick streaming
// protocol: type tags, fixed-width little-endian scalars, Dec64 decimals,
// 24-bit UIDs, length-prefixed blobs, and the outgoing request envelope.
//
// Everything in this package is little-endian and blocking: a Read* call
// either returns a fully-populated value or an error, re-issuing reads on
// the underlying stream until the requested byte count is satisfied.
package wire

// Tag identifies the shape of a frame's payload. It is the first byte of
// every top-level frame and every serialized sub-value.
type Tag uint8

const (
	TagNull         Tag = 0x00
	TagInt          Tag = 0x01
	TagFloat        Tag = 0x02
	TagTime         Tag = 0x03
	TagDuration     Tag = 0x04
	TagError        Tag = 0x05
	TagString       Tag = 0x06
	TagArray        Tag = 0x07
	TagArraySerial  Tag = 0x08
	TagTimeSeries   Tag = 0x09
	TagSentinel     Tag = 0x0A
	TagBool         Tag = 0x0B
	TagDec64        Tag = 0x0C
	TagPair         Tag = 0x0D
	TagHeartBeat    Tag = 0x0E
	TagTensor       Tag = 0x0F
)

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "Null"
	case TagInt:
		return "Int"
	case TagFloat:
		return "Float"
	case TagTime:
		return "Time"
	case TagDuration:
		return "Duration"
	case TagError:
		return "Error"
	case TagString:
		return "String"
	case TagArray:
		return "Array"
	case TagArraySerial:
		return "ArraySerial"
	case TagTimeSeries:
		return "TimeSeries"
	case TagSentinel:
		return "Sentinel"
	case TagBool:
		return "Bool"
	case TagDec64:
		return "Dec64"
	case TagPair:
		return "Pair"
	case TagHeartBeat:
		return "HeartBeat"
	case TagTensor:
		return "Tensor"
	default:
		return "Unknown"
	}
}

// SentinelValue is the payload of a Sentinel frame (Tag 0x0A).
type SentinelValue int64

const (
	SentinelNull   SentinelValue = 0
	SentinelEnd    SentinelValue = 1
	SentinelMarker SentinelValue = 2
)

func (s SentinelValue) String() string {
	switch s {
	case SentinelNull:
		return "Null"
	case SentinelEnd:
		return "End"
	case SentinelMarker:
		return "Marker"
	default:
		return "Unknown"
	}
}
