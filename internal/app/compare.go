package app

import (
	"context"
	"fmt"

	"cdf-compare/internal/cdfio"
	"cdf-compare/internal/compare"
	"cdf-compare/internal/series"
)

// Compare runs the full pipeline: fetch (unless a local file is given),
// extract the variable through both backends, verify the reads agree,
// restrict to the shared window, and render the stacked comparison chart.
func (a *App) Compare(ctx context.Context, opts CompareOptions) error {
	path := opts.FilePath
	if path == "" {
		local, err := a.newFetcher().Fetch(ctx, opts.Date, opts.Force)
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}
		path = local
	}

	varName := opts.Variable
	if varName == "" {
		varName = a.Config.Extract.Variable
	}

	backends := cdfio.Backends()
	pairs := make([]compare.Pair, 0, len(backends))
	for _, backend := range backends {
		s, err := a.extract(backend, path, varName)
		if err != nil {
			return err
		}
		a.Logger.Info().
			Str("backend", backend.Name).
			Int("points", s.Len()).
			Str("units", s.Meta["units"]).
			Msg("variable extracted")
		pairs = append(pairs, compare.Pair{Label: backend.Name, Series: s})
	}

	tol := a.Config.Compare
	if err := pairs[0].Series.EqualWithin(pairs[1].Series, tol.ValueTolerance, tol.TimeTolerance); err != nil {
		return fmt.Errorf("backend disagreement reading %s: %w", path, err)
	}
	a.Logger.Info().
		Float64("value_tolerance", tol.ValueTolerance).
		Dur("time_tolerance", tol.TimeTolerance).
		Msg("backends agree")

	windowOpts := compare.Options{
		From:        opts.From,
		To:          opts.To,
		PanelWidth:  tol.PanelWidth,
		PanelHeight: tol.PanelHeight,
	}
	wa, wb := compare.SharedWindow(pairs[0].Series, pairs[1].Series, windowOpts)
	pairs[0].Series, pairs[1].Series = wa, wb
	a.Logger.Info().Int("points", wa.Len()).Msg("windowed to shared interval")

	if opts.CSVPath != "" {
		if err := compare.WriteCSV(opts.CSVPath, pairs[0], pairs[1]); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		a.Logger.Info().Str("path", opts.CSVPath).Msg("csv written")
	}

	if opts.PNGPath != "" {
		if err := compare.RenderPNG(opts.PNGPath, pairs[0], pairs[1], windowOpts); err != nil {
			return fmt.Errorf("render png: %w", err)
		}
		a.Logger.Info().Str("path", opts.PNGPath).Msg("chart written")
	}

	return nil
}

func (a *App) extract(backend cdfio.Backend, path, varName string) (series.TimeSeries, error) {
	r, err := backend.Open(path)
	if err != nil {
		return series.TimeSeries{}, fmt.Errorf("backend %s: %w", backend.Name, err)
	}
	defer r.Close()

	s, err := cdfio.Extract(r, varName, a.Config.Extract.TimeVariable)
	if err != nil {
		return series.TimeSeries{}, fmt.Errorf("backend %s: %w", backend.Name, err)
	}
	return s, nil
}
