package cdfio

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownEpoch indicates a time variable whose element type matches neither
// of the two epoch encodings found in CDF files.
var ErrUnknownEpoch = errors.New("cdfio: unrecognized epoch encoding")

// Milliseconds between 0000-01-01T00:00:00 and the Unix epoch.
const epochMillisAtUnix = 62167219200000

// tt2000Base is the UTC instant of the TT2000 zero point, 2000-01-01T12:00:00 TT.
// TT led UTC by 64.184s at that date (32.184s TT-TAI plus 32 leap seconds).
var tt2000Base = time.Date(2000, 1, 1, 11, 58, 55, 816000000, time.UTC)

// Leap second steps since the TT2000 zero point: TAI-UTC totals effective
// from the given UTC instant onward.
var leapSteps = []struct {
	at  time.Time
	tai int64
}{
	{time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC), 33},
	{time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC), 34},
	{time.Date(2012, 7, 1, 0, 0, 0, 0, time.UTC), 35},
	{time.Date(2015, 7, 1, 0, 0, 0, 0, time.UTC), 36},
	{time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), 37},
}

// EpochToTime converts a CDF_EPOCH value, milliseconds since 0000-01-01 UTC,
// to a UTC timestamp.
func EpochToTime(ms float64) time.Time {
	return time.UnixMilli(int64(ms) - epochMillisAtUnix).UTC()
}

// TT2000ToTime converts a CDF_TIME_TT2000 value, nanoseconds since
// 2000-01-01T12:00:00 TT, to a UTC timestamp.
func TT2000ToTime(ns int64) time.Time {
	approx := tt2000Base.Add(time.Duration(ns))
	leap := taiMinusUTC(approx)
	return approx.Add(-time.Duration(leap-32) * time.Second)
}

func taiMinusUTC(t time.Time) int64 {
	leap := int64(32)
	for _, step := range leapSteps {
		if t.Before(step.at) {
			break
		}
		leap = step.tai
	}
	return leap
}

// DecodeEpochs converts a raw time-variable slice into UTC timestamps,
// detecting the encoding from the element type: float64 is CDF_EPOCH, int64 is
// CDF_TIME_TT2000. Anything else is ErrUnknownEpoch; there is no fallback.
func DecodeEpochs(raw interface{}) ([]time.Time, error) {
	switch v := raw.(type) {
	case []float64:
		out := make([]time.Time, len(v))
		for i, ms := range v {
			out[i] = EpochToTime(ms)
		}
		return out, nil
	case []int64:
		out := make([]time.Time, len(v))
		for i, ns := range v {
			out[i] = TT2000ToTime(ns)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: element type %T", ErrUnknownEpoch, raw)
	}
}
