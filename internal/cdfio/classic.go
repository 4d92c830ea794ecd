package cdfio

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
)

// classicReader adapts github.com/ctessum/cdf to the Reader interface.
type classicReader struct {
	f  *os.File
	cf *cdf.File
}

// OpenClassic opens a file with the ctessum/cdf library.
func OpenClassic(path string) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	cf, err := cdf.Open(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("cdfio: open %s: %w", path, err)
	}
	return &classicReader{f: f, cf: cf}, nil
}

func (r *classicReader) Variable(name string) (interface{}, error) {
	dims := r.cf.Header.Lengths(name)
	if len(dims) == 0 {
		return nil, fmt.Errorf("cdfio: variable %q not in file", name)
	}
	rd := r.cf.Reader(name, nil, nil)
	buf := rd.Zero(-1)
	if _, err := rd.Read(buf); err != nil {
		return nil, fmt.Errorf("cdfio: read variable %q: %w", name, err)
	}
	return buf, nil
}

func (r *classicReader) Attribute(varName, key string) (string, bool) {
	return attrString(r.cf.Header.GetAttribute(varName, key))
}

func (r *classicReader) Close() error {
	return r.f.Close()
}

var _ Reader = (*classicReader)(nil)
