package cdfio

import (
	"fmt"
	"strconv"

	"cdf-compare/internal/series"
)

// Attribute keys used by the CDF ISTP metadata convention.
const (
	attrDescription = "CATDESC"
	attrUnits       = "UNITS"
	attrTimeAxis    = "DEPEND_0"
)

// Reader is the minimal capability set a CDF-reading library must expose:
// read a variable by name, read an attribute by variable and key, close.
// Everything above this interface is backend-agnostic.
type Reader interface {
	// Variable returns the raw typed slice stored for the named variable.
	Variable(name string) (interface{}, error)
	// Attribute returns the named attribute of a variable rendered as a
	// string, and whether it exists.
	Attribute(varName, key string) (string, bool)
	Close() error
}

// OpenFunc opens a local file with one particular library.
type OpenFunc func(path string) (Reader, error)

// Backend couples a human-readable name with its opener.
type Backend struct {
	Name string
	Open OpenFunc
}

// Backends lists the two comparison backends in a fixed order.
func Backends() []Backend {
	return []Backend{
		{Name: "classic", Open: OpenClassic},
		{Name: "native", Open: OpenNative},
	}
}

// Extract reads one variable and its time axis through the given reader.
// The time variable is located via the variable's DEPEND_0 attribute, falling
// back to defaultTimeVar. The returned metadata carries the "description" and
// "units" keys sourced from the file's attribute table; a variable missing
// either attribute is an extraction error.
func Extract(r Reader, varName, defaultTimeVar string) (series.TimeSeries, error) {
	raw, err := r.Variable(varName)
	if err != nil {
		return series.TimeSeries{}, err
	}
	values, err := toFloat64s(raw)
	if err != nil {
		return series.TimeSeries{}, fmt.Errorf("cdfio: variable %q: %w", varName, err)
	}

	timeVar := defaultTimeVar
	if dep, ok := r.Attribute(varName, attrTimeAxis); ok && dep != "" {
		timeVar = dep
	}
	rawTimes, err := r.Variable(timeVar)
	if err != nil {
		return series.TimeSeries{}, fmt.Errorf("cdfio: time axis %q: %w", timeVar, err)
	}
	times, err := DecodeEpochs(rawTimes)
	if err != nil {
		return series.TimeSeries{}, fmt.Errorf("cdfio: time axis %q: %w", timeVar, err)
	}

	desc, ok := r.Attribute(varName, attrDescription)
	if !ok {
		return series.TimeSeries{}, fmt.Errorf("cdfio: variable %q has no %s attribute", varName, attrDescription)
	}
	units, ok := r.Attribute(varName, attrUnits)
	if !ok {
		return series.TimeSeries{}, fmt.Errorf("cdfio: variable %q has no %s attribute", varName, attrUnits)
	}

	return series.New(times, values, map[string]string{
		"description": desc,
		"units":       units,
	})
}

func toFloat64s(raw interface{}) ([]float64, error) {
	switch v := raw.(type) {
	case []float64:
		return v, nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int16:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", raw)
	}
}

// attrString renders an attribute value, which libraries surface as either a
// string or a typed slice, into a flat string.
func attrString(attr interface{}) (string, bool) {
	switch v := attr.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case []float32:
		if len(v) == 1 {
			return strconv.FormatFloat(float64(v[0]), 'g', -1, 32), true
		}
	case []float64:
		if len(v) == 1 {
			return strconv.FormatFloat(v[0], 'g', -1, 64), true
		}
	case []int32:
		if len(v) == 1 {
			return strconv.FormatInt(int64(v[0]), 10), true
		}
	}
	return fmt.Sprint(attr), true
}
