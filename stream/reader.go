package stream

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lisptickio/lisptick-go/errs"
	"github.com/lisptickio/lisptick-go/internal/options"
	"github.com/lisptickio/lisptick-go/value"
	"github.com/lisptickio/lisptick-go/wire"
)

// slot is the declared membership of a child UID in a parent array.
type slot struct {
	parent wire.UID
	index  int
}

// Reader is the stream interpreter: it reads top-level frames one at a time,
// tracks outstanding array layouts and time-series registrations, and hands
// user-visible deliveries to a walk callback in wire order.
//
// A Reader serves exactly one response stream and is not safe for concurrent
// use; the protocol is single-threaded and synchronous.
type Reader struct {
	wr     *wire.Reader
	logger logrus.FieldLogger

	series map[wire.UID]string // uid -> declared time-series label
	sizes  map[wire.UID]int64  // array uid -> declared element count
	where  map[wire.UID]slot   // child uid -> (parent array uid, index)
}

// ReaderOption configures a Reader at construction time.
type ReaderOption = options.Option[*Reader]

// WithLogger injects the structured logger used for frame traces and
// protocol fault reporting. Defaults to the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) ReaderOption {
	return options.NoError(func(r *Reader) {
		r.logger = logger
	})
}

// NewReader creates a stream interpreter over r, typically a net.Conn that
// has just carried a request envelope.
func NewReader(r io.Reader, opts ...ReaderOption) (*Reader, error) {
	reader := &Reader{
		wr:     wire.NewReader(r),
		logger: logrus.StandardLogger(),
		series: make(map[wire.UID]string),
		sizes:  make(map[wire.UID]int64),
		where:  make(map[wire.UID]slot),
	}

	if err := options.Apply(reader, opts...); err != nil {
		return nil, err
	}

	return reader, nil
}

// Delivery is one user-visible unit handed to the walk callback: the frame's
// UID, its decoded payload, and, when the UID names a registered time
// series, the timestamped point built from it.
type Delivery struct {
	UID   wire.UID
	Value value.Value

	// Point is non-nil when the frame extends a time series; its Value
	// field equals the Value field above.
	Point *value.Point
}

// WalkFunc consumes one delivery. Returning a non-nil error aborts the walk
// and propagates the error to the Walk caller. The callback is invoked
// inline on the decode goroutine and must not re-enter the reader.
type WalkFunc func(r *Reader, d Delivery) error

// SeriesLabel reports whether uid names a registered time series and, if
// so, the label it was declared with.
func (r *Reader) SeriesLabel(uid wire.UID) (string, bool) {
	label, ok := r.series[uid]
	return label, ok
}

// ArraySlot reports the (parent, index) array membership declared for uid by
// a previously seen array header.
func (r *Reader) ArraySlot(uid wire.UID) (parent wire.UID, index int, ok bool) {
	s, ok := r.where[uid]
	return s.parent, s.index, ok
}

// ArraySize returns the declared element count of the array registered at
// uid.
func (r *Reader) ArraySize(uid wire.UID) (int64, bool) {
	size, ok := r.sizes[uid]
	return size, ok
}

// Walk reads top-level frames until a Sentinel(End), an orderly EOF at a
// frame boundary, or a failure, invoking fn for every user-visible delivery.
//
// Array headers and time-series declarations update interpreter state
// without producing a delivery. A server Error frame terminates the walk
// with errs.ErrServerError; deliveries made before the error remain valid.
func (r *Reader) Walk(fn WalkFunc) error {
	for {
		tag, uid, ok, err := r.wr.ReadFrameStart()
		if err != nil {
			return err
		}
		if !ok {
			// Orderly close at a frame boundary is a valid terminator.
			return nil
		}

		r.logger.WithFields(logrus.Fields{"tag": tag.String(), "uid": uid}).Debug("frame")

		var v value.Value

		switch tag {
		case wire.TagError:
			msg, err := r.wr.ReadString()
			if err != nil {
				return err
			}

			r.logger.WithField("uid", uid).Warn("server error frame")

			return fmt.Errorf("%w: %s", errs.ErrServerError, msg)

		case wire.TagArray:
			if err := r.readArrayHeader(uid); err != nil {
				return err
			}

			continue

		case wire.TagTimeSeries:
			label, err := r.wr.ReadString()
			if err != nil {
				return err
			}
			r.series[uid] = label

			continue

		case wire.TagSentinel:
			s, err := r.wr.ReadSentinel()
			if err != nil {
				return err
			}
			if s == wire.SentinelEnd {
				// End of stream; buffered bytes past this frame stay
				// unconsumed.
				return nil
			}
			v = value.SentinelValue(value.Sentinel(s))

		case wire.TagArraySerial, wire.TagPair, wire.TagHeartBeat, wire.TagTensor:
			v, err = r.readSerial(tag)
			if err != nil {
				return err
			}

		default:
			var known bool
			v, known, err = r.readScalarPayload(tag)
			if err != nil {
				return err
			}
			if !known || tag == wire.TagNull {
				// Null is legal only inside serialized sub-values.
				return fmt.Errorf("%w %d", errs.ErrUnhandledType, tag)
			}
		}

		d := Delivery{UID: uid, Value: v}
		if _, inSeries := r.series[uid]; inSeries {
			// Time-series points carry their timestamp after the value.
			raw, err := r.wr.ReadTimeRaw()
			if err != nil {
				return err
			}
			d.Point = &value.Point{Time: value.FromWireTime(raw), Value: v}
		}

		if err := fn(r, d); err != nil {
			return err
		}
	}
}

// readArrayHeader consumes the payload of an Array frame: the declared size
// followed by size (child tag, child UID) pairs. Child payloads arrive later
// as their own top-level frames; only the layout is recorded here.
func (r *Reader) readArrayHeader(uid wire.UID) error {
	size, err := r.wr.ReadInt64()
	if err != nil {
		return err
	}
	if size < 0 {
		return fmt.Errorf("%w: negative array size %d", errs.ErrMalformedSize, size)
	}

	r.sizes[uid] = size
	for i := int64(0); i < size; i++ {
		// The child tag is declared here but only the UID matters; the
		// payload follows under the child's own frame.
		_, child, ok, err := r.wr.ReadFrameStart()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: stream ended inside an array header", errs.ErrShortRead)
		}

		r.where[child] = slot{parent: uid, index: int(i)}
	}

	return nil
}

// readScalarPayload decodes the payload of the scalar tags shared by
// top-level frames and serialized sub-values. known is false when the tag is
// not a scalar tag.
func (r *Reader) readScalarPayload(tag wire.Tag) (v value.Value, known bool, err error) {
	switch tag {
	case wire.TagNull:
		return value.Null(), true, nil

	case wire.TagInt:
		n, err := r.wr.ReadInt64()
		if err != nil {
			return value.Value{}, true, err
		}

		return value.Int(n), true, nil

	case wire.TagFloat:
		f, err := r.wr.ReadFloat64()
		if err != nil {
			return value.Value{}, true, err
		}

		return value.Float(f), true, nil

	case wire.TagTime:
		raw, err := r.wr.ReadTimeRaw()
		if err != nil {
			return value.Value{}, true, err
		}

		return value.TimeValue(value.FromWireTime(raw)), true, nil

	case wire.TagDuration:
		year, month, day, nanos, err := r.wr.ReadDurationRaw()
		if err != nil {
			return value.Value{}, true, err
		}

		return value.DurationValue(value.Duration{
			Years:  year,
			Months: month,
			Days:   day,
			Nanos:  nanos,
		}), true, nil

	case wire.TagString:
		s, err := r.wr.ReadString()
		if err != nil {
			return value.Value{}, true, err
		}

		return value.String(s), true, nil

	case wire.TagSentinel:
		s, err := r.wr.ReadSentinel()
		if err != nil {
			return value.Value{}, true, err
		}

		return value.SentinelValue(value.Sentinel(s)), true, nil

	case wire.TagBool:
		b, err := r.wr.ReadBool()
		if err != nil {
			return value.Value{}, true, err
		}

		return value.Bool(b), true, nil

	case wire.TagDec64:
		f, err := r.wr.ReadDec64()
		if err != nil {
			return value.Value{}, true, err
		}

		return value.Dec64(f), true, nil

	default:
		return value.Value{}, false, nil
	}
}
