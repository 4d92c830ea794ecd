package app

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"cdf-compare/internal/cdfio"
)

// Show prints a variable's metadata and leading samples from one backend.
func (a *App) Show(ctx context.Context, opts ShowOptions) error {
	backend, err := resolveBackend(opts.Backend)
	if err != nil {
		return err
	}

	varName := opts.Variable
	if varName == "" {
		varName = a.Config.Extract.Variable
	}

	s, err := a.extract(backend, opts.FilePath, varName)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(s.Meta))
	for k := range s.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(os.Stdout, "%s: %s\n", k, s.Meta[k])
	}
	fmt.Fprintf(os.Stdout, "points: %d (backend %s)\n\n", s.Len(), backend.Name)

	limit := opts.Limit
	if limit <= 0 || limit > s.Len() {
		limit = s.Len()
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Time (UTC)\tValue")
	for i := 0; i < limit; i++ {
		fmt.Fprintf(writer, "%s\t%g\n", s.Times[i].UTC().Format(time.RFC3339), s.Values[i])
	}
	return writer.Flush()
}

func resolveBackend(name string) (cdfio.Backend, error) {
	backends := cdfio.Backends()
	if name == "" {
		return backends[0], nil
	}
	for _, b := range backends {
		if b.Name == name {
			return b, nil
		}
	}
	return cdfio.Backend{}, fmt.Errorf("unknown backend %q", name)
}
