package value

import (
	"fmt"
	"time"
)

// Point is one element of a time series: a value observed at an instant.
type Point struct {
	Time  time.Time
	Value Value
}

func (p Point) String() string {
	if p.Time.IsZero() {
		return "<empty time> " + p.Value.String()
	}

	return p.Time.Format(time.RFC3339Nano) + " " + p.Value.String()
}

// TimeSeries is a named, ordered sequence of points sharing one wire UID.
// Points appear in wire order, which the server guarantees to be time order.
type TimeSeries struct {
	Label  string
	Points []Point
}

// Len returns the number of accumulated points.
func (ts *TimeSeries) Len() int {
	return len(ts.Points)
}

func (ts *TimeSeries) String() string {
	return fmt.Sprintf("timeserie(%q, %d points)", ts.Label, len(ts.Points))
}
