package stream

import (
	"fmt"

	"github.com/lisptickio/lisptick-go/errs"
	"github.com/lisptickio/lisptick-go/value"
	"github.com/lisptickio/lisptick-go/wire"
)

// NoLimit disables the materializer's point budget.
const NoLimit int64 = -1

// Materializer assembles one full response into a value.Value tree by
// walking the reader and routing every delivery into its array slot,
// time-series accumulator, or the root scalar. An optional point budget
// aborts the stream once the response grows past what the caller is willing
// to hold in memory.
type Materializer struct {
	reader *Reader

	// budget is the count of non-HeartBeat deliveries at which the stream
	// is aborted: the budget-th delivery fails the run. Negative disables
	// the check.
	budget int64
	count  int64

	arrays map[wire.UID][]value.Value
	series map[wire.UID]*value.TimeSeries
	root   value.Value
	rooted bool
}

// NewMaterializer wraps reader with a point budget. Pass NoLimit to accept
// responses of any size.
func NewMaterializer(reader *Reader, pointBudget int64) *Materializer {
	return &Materializer{
		reader: reader,
		budget: pointBudget,
		arrays: make(map[wire.UID][]value.Value),
		series: make(map[wire.UID]*value.TimeSeries),
	}
}

// Run drives the stream to completion and returns the assembled result. On
// any failure, including an exhausted point budget, no partial result is
// returned.
func (m *Materializer) Run() (value.Value, error) {
	if err := m.reader.Walk(m.deliver); err != nil {
		return value.Value{}, err
	}

	return m.finish(), nil
}

// deliver routes one delivery per the interpreter state: array slot,
// time-series accumulator, or root scalar. HeartBeats are dropped without
// touching the budget.
func (m *Materializer) deliver(r *Reader, d Delivery) error {
	if d.Value.Kind == value.KindHeartBeat {
		return nil
	}

	if m.budget >= 0 {
		m.count++
		if m.count >= m.budget {
			return fmt.Errorf("%w (budget %d)", errs.ErrPointsLimitReached, m.budget)
		}
	}

	if d.Point != nil {
		ts := m.series[d.UID]
		if ts == nil {
			label, _ := r.SeriesLabel(d.UID)
			ts = &value.TimeSeries{Label: label}
			m.series[d.UID] = ts
		}
		ts.Points = append(ts.Points, *d.Point)

		// A series that is itself an array element keeps a stable
		// reference in its slot; re-setting it per point is idempotent.
		if s, ok := r.where[d.UID]; ok {
			m.slots(s.parent)[s.index] = value.TimeSeriesValue(ts)
		}

		return nil
	}

	if s, ok := r.where[d.UID]; ok {
		m.slots(s.parent)[s.index] = d.Value
		return nil
	}

	m.root = d.Value
	m.rooted = true

	return nil
}

// slots returns the slot slice for the array registered at parent, creating
// it lazily at the declared size. Unfilled slots are Null.
func (m *Materializer) slots(parent wire.UID) []value.Value {
	if a, ok := m.arrays[parent]; ok {
		return a
	}

	a := make([]value.Value, m.reader.sizes[parent])
	m.arrays[parent] = a

	return a
}

// finish reconciles the accumulated state into the single result value:
// declared-but-empty series are realized, arrays and series are substituted
// into their parents' slots via the recorded layout, then the root is
// resolved per the response shape.
func (m *Materializer) finish() value.Value {
	for uid, label := range m.reader.series {
		ts := m.series[uid]
		if ts == nil {
			ts = &value.TimeSeries{Label: label}
			m.series[uid] = ts
		}
		if s, ok := m.reader.where[uid]; ok {
			m.slots(s.parent)[s.index] = value.TimeSeriesValue(ts)
		}
	}

	// Nested arrays share their element storage with the parent slot, so
	// the wiring order between levels does not matter.
	for uid := range m.reader.sizes {
		if uid == wire.RootUID {
			continue
		}
		if s, ok := m.reader.where[uid]; ok {
			m.slots(s.parent)[s.index] = value.ArrayValue(m.slots(uid))
		}
	}

	if _, ok := m.reader.sizes[wire.RootUID]; ok {
		return value.ArrayValue(m.slots(wire.RootUID))
	}

	if len(m.series) == 1 {
		for _, ts := range m.series {
			return value.TimeSeriesValue(ts)
		}
	}

	if !m.rooted {
		return value.Null()
	}

	return m.root
}
