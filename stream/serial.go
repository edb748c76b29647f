package stream

import (
	"fmt"

	"github.com/lisptickio/lisptick-go/errs"
	"github.com/lisptickio/lisptick-go/value"
	"github.com/lisptickio/lisptick-go/wire"
)

// readSub reads one complete serialized sub-value: its tag+uid header
// followed by the payload. The UID is present on the wire for symmetry with
// top-level frames but carries no meaning here.
func (r *Reader) readSub() (value.Value, error) {
	tag, ok, err := r.wr.ReadSubHeader()
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		return value.Value{}, fmt.Errorf("%w: stream ended inside a serialized value", errs.ErrShortRead)
	}

	return r.readSerial(tag)
}

// readSerial decodes the payload of a serialized sub-value whose tag has
// already been consumed. Array and TimeSeries frames never appear inside a
// serialized value, and a serialized Error is fatal.
func (r *Reader) readSerial(tag wire.Tag) (value.Value, error) {
	switch tag {
	case wire.TagError:
		msg, err := r.wr.ReadString()
		if err != nil {
			return value.Value{}, err
		}

		return value.Value{}, fmt.Errorf("%w: %s", errs.ErrServerError, msg)

	case wire.TagArraySerial:
		return r.readSerialArray()

	case wire.TagPair:
		return r.readPair()

	case wire.TagHeartBeat:
		return r.readHeartBeat()

	case wire.TagTensor:
		return r.readTensor()

	case wire.TagArray, wire.TagTimeSeries:
		return value.Value{}, fmt.Errorf("%w: %s inside a serialized value", errs.ErrUnexpectedTag, tag)

	default:
		v, known, err := r.readScalarPayload(tag)
		if err != nil {
			return value.Value{}, err
		}
		if !known {
			return value.Value{}, fmt.Errorf("%w %d", errs.ErrUnhandledType, tag)
		}

		return v, nil
	}
}

// readSerialArray decodes an ArraySerial payload: a declared size followed
// by that many sub-values. Nesting is permitted.
func (r *Reader) readSerialArray() (value.Value, error) {
	size, err := r.wr.ReadInt64()
	if err != nil {
		return value.Value{}, err
	}
	if size < 0 {
		return value.Value{}, fmt.Errorf("%w: negative serialized array size %d", errs.ErrMalformedSize, size)
	}

	elems := make([]value.Value, size)
	for i := range elems {
		if elems[i], err = r.readSub(); err != nil {
			return value.Value{}, err
		}
	}

	return value.ArrayValue(elems), nil
}

// readPair decodes a Pair payload: two consecutive sub-values.
func (r *Reader) readPair() (value.Value, error) {
	first, err := r.readSub()
	if err != nil {
		return value.Value{}, err
	}

	second, err := r.readSub()
	if err != nil {
		return value.Value{}, err
	}

	return value.PairValue(first, second), nil
}

// readHeartBeat decodes a HeartBeat payload: one sub-value carrying a
// progress indicator the consumer may discard.
func (r *Reader) readHeartBeat() (value.Value, error) {
	v, err := r.readSub()
	if err != nil {
		return value.Value{}, err
	}

	return value.HeartBeatValue(v), nil
}

// readTensor decodes a Tensor payload: a serialized shape vector followed by
// one serialized sub-value per cell, row-major.
func (r *Reader) readTensor() (value.Value, error) {
	shapeValue, err := r.readSub()
	if err != nil {
		return value.Value{}, err
	}
	if shapeValue.Kind != value.KindArray {
		return value.Value{}, fmt.Errorf("%w: tensor shape is %s, want Array", errs.ErrUnexpectedTag, shapeValue.Kind)
	}

	shape := make([]int64, len(shapeValue.Array))
	for i, dim := range shapeValue.Array {
		if dim.Kind != value.KindInt {
			return value.Value{}, fmt.Errorf("%w: tensor dimension is %s, want Int", errs.ErrUnexpectedTag, dim.Kind)
		}
		if dim.Int < 0 {
			return value.Value{}, fmt.Errorf("%w: negative tensor dimension %d", errs.ErrMalformedSize, dim.Int)
		}
		shape[i] = dim.Int
	}

	tensor := &value.Tensor{Shape: shape}
	tensor.Values = make([]value.Value, tensor.Size())
	for i := range tensor.Values {
		if tensor.Values[i], err = r.readSub(); err != nil {
			return value.Value{}, err
		}
	}

	return value.TensorValue(tensor), nil
}
