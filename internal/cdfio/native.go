package cdfio

import (
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// nativeReader adapts github.com/batchatco/go-native-netcdf to the Reader
// interface.
type nativeReader struct {
	g api.Group
}

// OpenNative opens a file with the go-native-netcdf library.
func OpenNative(path string) (Reader, error) {
	g, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cdfio: open %s: %w", path, err)
	}
	return &nativeReader{g: g}, nil
}

func (r *nativeReader) Variable(name string) (interface{}, error) {
	v, err := r.g.GetVariable(name)
	if err != nil {
		return nil, fmt.Errorf("cdfio: variable %q: %w", name, err)
	}
	return v.Values, nil
}

func (r *nativeReader) Attribute(varName, key string) (string, bool) {
	v, err := r.g.GetVariable(varName)
	if err != nil {
		return "", false
	}
	val, has := v.Attributes.Get(key)
	if !has {
		return "", false
	}
	return attrString(val)
}

func (r *nativeReader) Close() error {
	r.g.Close()
	return nil
}

var _ Reader = (*nativeReader)(nil)
