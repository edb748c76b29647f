// Package value defines the tagged-sum result tree produced by the
// LispTick stream decoder: scalars, durations, time series, arrays,
// pairs, tensors, and sentinels.
//
// Polymorphism is limited to display and equality, per the variant
// dispatch on the Kind is otherwise done
// with a type switch or a Kind comparison, not virtual methods.
package value

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies which field of a Value is populated.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindDec64
	KindBool
	KindString
	KindTime
	KindDuration
	KindSentinel
	KindPair
	KindArray
	KindTimeSeries
	KindTensor
	KindHeartBeat
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindDec64:
		return "Dec64"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindTime:
		return "Time"
	case KindDuration:
		return "Duration"
	case KindSentinel:
		return "Sentinel"
	case KindPair:
		return "Pair"
	case KindArray:
		return "Array"
	case KindTimeSeries:
		return "TimeSeries"
	case KindTensor:
		return "Tensor"
	case KindHeartBeat:
		return "HeartBeat"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Sentinel mirrors wire.SentinelValue without importing the wire package,
// keeping value free of a codec dependency.
type Sentinel int64

const (
	SentinelNull   Sentinel = 0
	SentinelEnd    Sentinel = 1
	SentinelMarker Sentinel = 2
)

func (s Sentinel) String() string {
	switch s {
	case SentinelNull:
		return "Null"
	case SentinelEnd:
		return "End"
	case SentinelMarker:
		return "Marker"
	default:
		return fmt.Sprintf("Sentinel(%d)", int64(s))
	}
}

// Value is a tagged union over every result variant the server can send.
// Exactly one field is meaningful for a given Kind; zero values of the
// others are ignored.
type Value struct {
	Kind Kind

	Int      int64
	Float    float64
	Bool     bool
	Str      string
	Time     time.Time
	Duration Duration
	Sentinel Sentinel
	Err      string

	Pair   *Pair
	Array  []Value
	Series *TimeSeries
	Tensor *Tensor
	Beat   *Value
}

// Null is the zero-payload Null value.
func Null() Value { return Value{Kind: KindNull} }

func Int(v int64) Value       { return Value{Kind: KindInt, Int: v} }
func Float(v float64) Value   { return Value{Kind: KindFloat, Float: v} }
func Dec64(v float64) Value   { return Value{Kind: KindDec64, Float: v} }
func Bool(v bool) Value       { return Value{Kind: KindBool, Bool: v} }
func String(v string) Value   { return Value{Kind: KindString, Str: v} }
func ErrorValue(v string) Value { return Value{Kind: KindError, Err: v} }

func TimeValue(t time.Time) Value { return Value{Kind: KindTime, Time: t} }

func DurationValue(d Duration) Value { return Value{Kind: KindDuration, Duration: d} }

func SentinelValue(s Sentinel) Value { return Value{Kind: KindSentinel, Sentinel: s} }

func PairValue(first, second Value) Value {
	return Value{Kind: KindPair, Pair: &Pair{First: first, Second: second}}
}

func ArrayValue(elems []Value) Value { return Value{Kind: KindArray, Array: elems} }

func TimeSeriesValue(ts *TimeSeries) Value { return Value{Kind: KindTimeSeries, Series: ts} }

func TensorValue(t *Tensor) Value { return Value{Kind: KindTensor, Tensor: t} }

func HeartBeatValue(v Value) Value { return Value{Kind: KindHeartBeat, Beat: &v} }

// Pair is an ordered pair of arbitrary values.
type Pair struct {
	First  Value
	Second Value
}

// FromWireTime maps the raw nanoseconds-since-epoch wire value to a
// time.Time, treating the historical sentinel as a distinguished empty
// time, never as a real instant.
func FromWireTime(epochNanos int64) time.Time {
	const emptySentinel = -6795364578871345152
	if epochNanos == emptySentinel {
		return time.Time{}
	}

	return time.Unix(0, epochNanos).UTC()
}

// String renders a Value for diagnostics and test failure messages; it is
// not the wire format and is not meant to round-trip.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindFloat, KindDec64:
		return fmt.Sprintf("%v", v.Float)
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindString:
		return v.Str
	case KindTime:
		if v.Time.IsZero() {
			return "<empty time>"
		}
		return v.Time.Format(time.RFC3339Nano)
	case KindDuration:
		return v.Duration.String()
	case KindSentinel:
		return v.Sentinel.String()
	case KindPair:
		return fmt.Sprintf("(%s . %s)", v.Pair.First, v.Pair.Second)
	case KindArray:
		parts := make([]string, len(v.Array))
		for i, e := range v.Array {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindTimeSeries:
		return v.Series.String()
	case KindTensor:
		return v.Tensor.String()
	case KindHeartBeat:
		return fmt.Sprintf("heartbeat(%s)", v.Beat)
	case KindError:
		return fmt.Sprintf("error(%s)", v.Err)
	default:
		return "<invalid value>"
	}
}
