package wire

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lisptickio/lisptick-go/errs"
	"github.com/lisptickio/lisptick-go/value"
)

func appendInt64(buf []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(buf, uint64(v))
}

func TestReaderReadInt64(t *testing.T) {
	var buf []byte
	buf = appendInt64(buf, 7)
	buf = appendInt64(buf, -1)
	buf = appendInt64(buf, math.MinInt64)

	r := NewReader(bytes.NewReader(buf))

	for _, want := range []int64{7, -1, math.MinInt64} {
		got, err := r.ReadInt64()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestReaderReadFloat64(t *testing.T) {
	buf := binary.LittleEndian.AppendUint64(nil, math.Float64bits(3.5))
	r := NewReader(bytes.NewReader(buf))

	got, err := r.ReadFloat64()
	require.NoError(t, err)
	require.Equal(t, 3.5, got)
}

func TestReaderReadBool(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		r := NewReader(bytes.NewReader(appendInt64(nil, 0)))
		got, err := r.ReadBool()
		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("NonZero", func(t *testing.T) {
		// Anything other than zero is true, not just one.
		r := NewReader(bytes.NewReader(appendInt64(nil, -42)))
		got, err := r.ReadBool()
		require.NoError(t, err)
		require.True(t, got)
	})
}

func TestReaderReadString(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		var buf []byte
		buf = appendInt64(buf, 4)
		buf = append(buf, "toto"...)

		r := NewReader(bytes.NewReader(buf))
		got, err := r.ReadString()
		require.NoError(t, err)
		require.Equal(t, "toto", got)
	})

	t.Run("Empty", func(t *testing.T) {
		r := NewReader(bytes.NewReader(appendInt64(nil, 0)))
		got, err := r.ReadString()
		require.NoError(t, err)
		require.Equal(t, "", got)
	})

	t.Run("NegativeLength", func(t *testing.T) {
		r := NewReader(bytes.NewReader(appendInt64(nil, -1)))
		_, err := r.ReadString()
		require.ErrorIs(t, err, errs.ErrMalformedSize)
	})

	t.Run("Truncated", func(t *testing.T) {
		var buf []byte
		buf = appendInt64(buf, 10)
		buf = append(buf, "short"...)

		r := NewReader(bytes.NewReader(buf))
		_, err := r.ReadString()
		require.ErrorIs(t, err, errs.ErrShortRead)
	})
}

func TestReaderReadDurationRaw(t *testing.T) {
	var buf []byte
	for _, v := range []int64{1, 1, 10, 10_000_000_000} {
		buf = appendInt64(buf, v)
	}

	r := NewReader(bytes.NewReader(buf))
	year, month, day, nanos, err := r.ReadDurationRaw()
	require.NoError(t, err)
	require.Equal(t, int64(1), year)
	require.Equal(t, int64(1), month)
	require.Equal(t, int64(10), day)
	require.Equal(t, int64(10_000_000_000), nanos)
}

func TestReaderReadTimeRaw(t *testing.T) {
	want := time.Date(2017, 10, 18, 10, 30, 0, 0, time.UTC)

	r := NewReader(bytes.NewReader(appendInt64(nil, want.UnixNano())))
	raw, err := r.ReadTimeRaw()
	require.NoError(t, err)
	require.True(t, want.Equal(value.FromWireTime(raw)))
}

func TestFromWireTimeEmptySentinel(t *testing.T) {
	require.True(t, value.FromWireTime(EmptyTimeEpochNanos).IsZero())
}

func TestReaderReadFrameStart(t *testing.T) {
	t.Run("TagAndUID", func(t *testing.T) {
		r := NewReader(bytes.NewReader([]byte{0x01, 0x0A, 0x00, 0x00}))
		tag, uid, ok, err := r.ReadFrameStart()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, TagInt, tag)
		require.Equal(t, UID(10), uid)
	})

	t.Run("CleanEOF", func(t *testing.T) {
		r := NewReader(bytes.NewReader(nil))
		_, _, ok, err := r.ReadFrameStart()
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("EOFInsideHeader", func(t *testing.T) {
		// A close after the tag byte is mid-frame, not a frame boundary.
		r := NewReader(bytes.NewReader([]byte{0x01}))
		_, _, _, err := r.ReadFrameStart()
		require.ErrorIs(t, err, errs.ErrShortRead)
	})
}

// chunkReader yields one byte per Read call to exercise the re-issue loop.
type chunkReader struct {
	data []byte
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}

	p[0] = c.data[0]
	c.data = c.data[1:]

	return 1, nil
}

func TestReaderReassemblesShortReads(t *testing.T) {
	r := NewReader(&chunkReader{data: appendInt64(nil, 123456789)})
	got, err := r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(123456789), got)
}
