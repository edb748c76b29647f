package wire

import (
	"fmt"
	"io"
	"math"

	"github.com/lisptickio/lisptick-go/endian"
	"github.com/lisptickio/lisptick-go/errs"
	"github.com/lisptickio/lisptick-go/internal/pool"
)

// EmptyTimeEpochNanos is the historical sentinel wire value meaning "no
// time"; callers should treat it as a distinguished empty instant, never as
// a real point in time.
const EmptyTimeEpochNanos int64 = -6795364578871345152

// Reader decodes the little-endian primitives of the LispTick wire format
// off a blocking byte stream. It re-issues reads until the requested byte
// count is satisfied; a zero-byte read is only tolerated at a frame
// boundary (see ReadFrameStart).
//
// Reader is not safe for concurrent use; the protocol is inherently
// single-threaded and synchronous.
type Reader struct {
	r       io.Reader
	engine  endian.EndianEngine
	scratch [8]byte
}

// NewReader wraps r (typically a net.Conn) for little-endian frame decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, engine: endian.GetLittleEndianEngine()}
}

// readFull reads exactly len(buf) bytes, blocking across short reads. It
// returns io.EOF only when zero bytes were read before the peer closed;
// any other incomplete read is a protocol-level short read.
func (r *Reader) readFull(buf []byte) error {
	n := 0
	for n < len(buf) {
		m, err := r.r.Read(buf[n:])
		n += m
		if err != nil && n < len(buf) {
			if err == io.EOF {
				if n == 0 {
					return io.EOF
				}

				return fmt.Errorf("%w: got %d of %d bytes", errs.ErrShortRead, n, len(buf))
			}

			return fmt.Errorf("%w: %v", errs.ErrShortRead, err)
		}
	}

	return nil
}

// ReadFrameStart reads the one-byte tag and three-byte UID that open every
// top-level frame. ok is false only when the stream ended cleanly at this
// boundary (orderly EOF, not an error).
func (r *Reader) ReadFrameStart() (tag Tag, uid UID, ok bool, err error) {
	var tagBuf [1]byte
	if err := r.readFull(tagBuf[:]); err != nil {
		if err == io.EOF {
			return 0, 0, false, nil
		}

		return 0, 0, false, err
	}

	var uidBuf [3]byte
	if err := r.readFull(uidBuf[:]); err != nil {
		if err == io.EOF {
			// The tag byte was read, so this is mid-frame, not a boundary.
			return 0, 0, false, fmt.Errorf("%w: stream ended inside a frame header", errs.ErrShortRead)
		}

		return 0, 0, false, err
	}

	return Tag(tagBuf[0]), DecodeUID(uidBuf[0], uidBuf[1], uidBuf[2]), true, nil
}

// ReadSubHeader reads the tag+uid pair that opens a serialized sub-value.
// The UID is present for wire symmetry only; callers ignore it. ok is false
// only at a clean stream end.
func (r *Reader) ReadSubHeader() (tag Tag, ok bool, err error) {
	t, _, ok, err := r.ReadFrameStart()
	return t, ok, err
}

// ReadInt64 reads a little-endian signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	if err := r.readFull(r.scratch[:8]); err != nil {
		return 0, err
	}

	return int64(r.engine.Uint64(r.scratch[:8])), nil
}

// ReadFloat64 reads an IEEE-754 binary64 value.
func (r *Reader) ReadFloat64() (float64, error) {
	bits, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(uint64(bits)), nil
}

// ReadBool reads an 8-byte boolean: 0 is false, anything else is true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadInt64()
	if err != nil {
		return false, err
	}

	return v != 0, nil
}

// ReadDec64 reads and decodes an 8-byte Dec64 decimal into a float64.
func (r *Reader) ReadDec64() (float64, error) {
	raw, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}

	return DecodeDec64(raw), nil
}

// ReadSentinel reads an 8-byte sentinel code (Null/End/Marker).
func (r *Reader) ReadSentinel() (SentinelValue, error) {
	v, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}

	return SentinelValue(v), nil
}

// ReadTimeRaw reads the raw nanoseconds-since-epoch wire value. Callers map
// EmptyTimeEpochNanos to a distinguished empty time themselves (value.FromWireTime).
func (r *Reader) ReadTimeRaw() (int64, error) {
	return r.ReadInt64()
}

// ReadDurationRaw reads the four verbatim int64 fields of a duration: year,
// month, day, sub-day nanoseconds. No normalization is performed.
func (r *Reader) ReadDurationRaw() (year, month, day, nanos int64, err error) {
	if year, err = r.ReadInt64(); err != nil {
		return
	}
	if month, err = r.ReadInt64(); err != nil {
		return
	}
	if day, err = r.ReadInt64(); err != nil {
		return
	}
	nanos, err = r.ReadInt64()
	return
}

// ReadString reads an 8-byte length prefix followed by that many UTF-8
// bytes, using a pooled buffer for the intermediate read.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt64()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", fmt.Errorf("%w: negative string length %d", errs.ErrMalformedSize, n)
	}
	if n == 0 {
		return "", nil
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)
	buf.ExtendOrGrow(int(n))

	if err := r.readFull(buf.Bytes()); err != nil {
		return "", err
	}

	return string(buf.Bytes()), nil
}
