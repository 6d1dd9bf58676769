// Package report renders the build history as a self-contained HTML
// page of charts: how often each object gets built and how long the
// builds take.
package report

import (
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/efficio-cad/efficio/internal/fsutil"
	"github.com/efficio-cad/efficio/internal/history"
)

// WriteHTML queries the history database and writes the report page to
// path. Returns an error if no builds have been recorded yet.
func WriteHTML(fs fsutil.FileSystem, db *history.DB, path string) error {
	counts, err := db.CountByObject()
	if err != nil {
		return fmt.Errorf("failed to load build counts: %w", err)
	}
	if len(counts) == 0 {
		return fmt.Errorf("no builds recorded yet")
	}

	stats, err := db.DurationStatsByObject()
	if err != nil {
		return fmt.Errorf("failed to load durations: %w", err)
	}

	page := components.NewPage()
	page.PageTitle = "efficio build report"
	page.AddCharts(barBuildCounts(counts), barDurations(stats))

	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render report: %w", err)
	}
	return f.Close()
}

// barBuildCounts charts how many times each object has been built,
// most built first.
func barBuildCounts(counts []history.ObjectCount) *charts.Bar {
	x := make([]string, len(counts))
	y := make([]opts.BarData, len(counts))
	var total int64
	for i, c := range counts {
		x[i] = c.Object
		y[i] = opts.BarData{Value: c.Builds}
		total += c.Builds
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Builds by object",
			Subtitle: fmt.Sprintf("%d builds across %d objects, generated %s", total, len(counts), time.Now().Format(time.RFC3339)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("builds", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}

// barDurations charts mean and worst-case build duration per object.
func barDurations(stats []history.ObjectDuration) *charts.Bar {
	x := make([]string, len(stats))
	mean := make([]opts.BarData, len(stats))
	max := make([]opts.BarData, len(stats))
	for i, s := range stats {
		x[i] = s.Object
		mean[i] = opts.BarData{Value: s.MeanMS}
		max[i] = opts.BarData{Value: s.MaxMS}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Build duration",
			Subtitle: "milliseconds per object",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("mean ms", mean).
		AddSeries("max ms", max,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}
