package series

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

// TimeSeries is one extracted variable: a time axis, the values on it, and the
// metadata the source file records for the variable. Instances are built once
// per extraction and not mutated afterwards.
type TimeSeries struct {
	Times  []time.Time
	Values []float64
	Meta   map[string]string
}

// New validates the axis/value pairing and wraps it into a TimeSeries.
func New(times []time.Time, values []float64, meta map[string]string) (TimeSeries, error) {
	if len(times) != len(values) {
		return TimeSeries{}, fmt.Errorf("series: %d timestamps vs %d values", len(times), len(values))
	}
	if meta == nil {
		meta = map[string]string{}
	}
	return TimeSeries{Times: times, Values: values, Meta: meta}, nil
}

// Len returns the number of points.
func (s TimeSeries) Len() int { return len(s.Times) }

// Window restricts the series to the closed-open interval [from, to).
// A window with no overlap yields an empty series.
func (s TimeSeries) Window(from, to time.Time) TimeSeries {
	out := TimeSeries{Meta: s.Meta}
	for i, t := range s.Times {
		if t.Before(from) || !t.Before(to) {
			continue
		}
		out.Times = append(out.Times, t)
		out.Values = append(out.Values, s.Values[i])
	}
	return out
}

// Range returns the first and last timestamps. ok is false for an empty series.
func (s TimeSeries) Range() (first, last time.Time, ok bool) {
	if len(s.Times) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.Times[0], s.Times[len(s.Times)-1], true
}

// EqualWithin reports whether two series agree point for point: values within
// relTol (relative, falling back to absolute near zero) and timestamps within
// timeTol of each other.
func (s TimeSeries) EqualWithin(other TimeSeries, relTol float64, timeTol time.Duration) error {
	if s.Len() != other.Len() {
		return fmt.Errorf("series: length mismatch: %d vs %d", s.Len(), other.Len())
	}
	for i := range s.Values {
		if !scalar.EqualWithinAbsOrRel(s.Values[i], other.Values[i], relTol, relTol) {
			return fmt.Errorf("series: value mismatch at %d: %g vs %g", i, s.Values[i], other.Values[i])
		}
		delta := s.Times[i].Sub(other.Times[i])
		if delta < 0 {
			delta = -delta
		}
		if delta > timeTol {
			return fmt.Errorf("series: timestamp mismatch at %d: %s vs %s",
				i, s.Times[i].UTC().Format(time.RFC3339), other.Times[i].UTC().Format(time.RFC3339))
		}
	}
	return nil
}
