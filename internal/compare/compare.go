// Package compare renders two reads of the same variable as stacked charts
// for visual diffing.
package compare

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"cdf-compare/internal/series"
)

// Pair labels one extracted series with the backend that produced it.
type Pair struct {
	Label  string
	Series series.TimeSeries
}

// Options tune the comparison window and panel geometry.
type Options struct {
	From        *time.Time
	To          *time.Time
	PanelWidth  int
	PanelHeight int
}

// SharedWindow restricts both series to the closed-open intersection of their
// ranges, optionally narrowed by the caller-supplied bounds. Zero overlap is
// not an error; it yields empty series.
func SharedWindow(a, b series.TimeSeries, opts Options) (series.TimeSeries, series.TimeSeries) {
	from, to, ok := intersect(a, b)
	if !ok {
		return a.Window(time.Time{}, time.Time{}), b.Window(time.Time{}, time.Time{})
	}
	if opts.From != nil && opts.From.After(from) {
		from = *opts.From
	}
	if opts.To != nil && opts.To.Before(to) {
		to = *opts.To
	}
	return a.Window(from, to), b.Window(from, to)
}

func intersect(a, b series.TimeSeries) (time.Time, time.Time, bool) {
	aFirst, aLast, ok := a.Range()
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	bFirst, bLast, ok := b.Range()
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	from := aFirst
	if bFirst.After(from) {
		from = bFirst
	}
	last := aLast
	if bLast.Before(last) {
		last = bLast
	}
	// The window is closed-open; nudge past the last shared point.
	return from, last.Add(time.Nanosecond), true
}

// RenderPNG draws the two series as vertically stacked line plots and writes
// the composite image to path.
func RenderPNG(path string, a, b Pair, opts Options) error {
	width := opts.PanelWidth
	if width <= 0 {
		width = 1280
	}
	height := opts.PanelHeight
	if height <= 0 {
		height = 400
	}

	top, err := renderPanel(a, width, height)
	if err != nil {
		return fmt.Errorf("render %s panel: %w", a.Label, err)
	}
	bottom, err := renderPanel(b, width, height)
	if err != nil {
		return fmt.Errorf("render %s panel: %w", b.Label, err)
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, stack(top, bottom))
}

func renderPanel(p Pair, width, height int) (image.Image, error) {
	if p.Series.Len() < 2 {
		return nil, errors.New("need at least two points to plot")
	}

	title := p.Label
	if desc := p.Series.Meta["description"]; desc != "" {
		title = fmt.Sprintf("%s — %s", desc, p.Label)
	}

	grid := chart.Style{
		StrokeColor: chart.ColorAlternateGray,
		StrokeWidth: 1.0,
	}
	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:           "Time (UTC)",
			ValueFormatter: chart.TimeValueFormatter,
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           p.Series.Meta["units"],
			GridMajorStyle: grid,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    p.Label,
				XValues: p.Series.Times,
				YValues: p.Series.Values,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// stack composites two panels vertically. go-chart has no subplot support,
// so panels are rendered separately and joined here.
func stack(top, bottom image.Image) *image.RGBA {
	tb, bb := top.Bounds(), bottom.Bounds()
	width := tb.Dx()
	if bb.Dx() > width {
		width = bb.Dx()
	}

	out := image.NewRGBA(image.Rect(0, 0, width, tb.Dy()+bb.Dy()))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, tb.Dx(), tb.Dy()), top, tb.Min, draw.Src)
	draw.Draw(out, image.Rect(0, tb.Dy(), bb.Dx(), tb.Dy()+bb.Dy()), bottom, bb.Min, draw.Src)
	return out
}

// WriteCSV exports the windowed pair side by side. Callers are expected to
// have verified the two series share a time axis.
func WriteCSV(path string, a, b Pair) error {
	if a.Series.Len() != b.Series.Len() {
		return fmt.Errorf("series length mismatch: %d vs %d", a.Series.Len(), b.Series.Len())
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"timestamp", a.Label, b.Label}); err != nil {
		return err
	}
	for i := range a.Series.Times {
		record := []string{
			a.Series.Times[i].UTC().Format(time.RFC3339),
			fmt.Sprintf("%g", a.Series.Values[i]),
			fmt.Sprintf("%g", b.Series.Values[i]),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
