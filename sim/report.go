package sim

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/GRASBOCK/fmcw-radar-demo-0/radar"
	"github.com/GRASBOCK/fmcw-radar-demo-0/store"
)

func lineXY(xs, ys []float64) []opts.LineData {
	data := make([]opts.LineData, len(xs))
	for i := range xs {
		data[i] = opts.LineData{Value: []interface{}{xs[i], ys[i]}}
	}
	return data
}

// TargetLabel names a target for legends and tables.
func TargetLabel(t radar.Target) string {
	state := "off"
	if t.Enabled {
		state = "on"
	}
	return fmt.Sprintf("%s %gm %gm/s (%s)", t.Color, t.Range, t.Velocity, state)
}

// TimelineChart plots the transmitted sweep over one sawtooth cycle.
func TimelineChart(f *Frame) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Transmitted frequency"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Hz", Type: "value"}),
	)
	line.AddSeries("tx", lineXY(f.Times, f.TxHz),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	return line
}

// BeatChart plots every target's beat series on the shared grid.
func BeatChart(f *Frame, targets []radar.Target) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Beat frequency per target"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Hz", Type: "value"}),
	)
	for _, tgt := range targets {
		beats, ok := f.Beats[tgt.ID]
		if !ok {
			continue
		}
		line.AddSeries(TargetLabel(tgt), lineXY(f.Times, beats),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: tgt.Color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: tgt.Color}))
	}
	return line
}

// SpectrumChart plots one window's magnitude spectrum with its detected
// peaks overlaid.
func SpectrumChart(res WindowResult, idx int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Window %d spectrum", idx),
			Subtitle: fmt.Sprintf("capture at t=%gs, %d samples", res.Window.Start, res.Window.Samples),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hz", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "magnitude", Type: "value"}),
	)
	xs := make([]float64, len(res.Spectrum))
	ys := make([]float64, len(res.Spectrum))
	for i, b := range res.Spectrum {
		xs[i], ys[i] = b.Hz, b.Mag
	}
	line.AddSeries("spectrum", lineXY(xs, ys),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))

	pts := make([]opts.ScatterData, len(res.Peaks))
	for i, p := range res.Peaks {
		pts[i] = opts.ScatterData{Value: []interface{}{p.Hz, p.Mag}}
	}
	scatter := charts.NewScatter()
	scatter.AddSeries("peaks", pts,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ff5252"}))
	line.Overlap(scatter)
	return line
}

// PlaneChart draws the range-velocity plane: every window's ambiguity
// lines plus the enabled targets.
func PlaneChart(f *Frame, targets []radar.Target) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Range-velocity ambiguity"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "range (m)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "velocity (m/s)", Type: "value"}),
	)
	for wi, res := range f.Windows {
		for li, l := range res.Lines {
			data := []opts.LineData{
				{Value: []interface{}{l.From.Range, l.From.Velocity}},
				{Value: []interface{}{l.To.Range, l.To.Velocity}},
			}
			line.AddSeries(fmt.Sprintf("w%d p%d", wi, li), data,
				charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
		}
	}
	scatter := charts.NewScatter()
	for _, tgt := range targets {
		if !tgt.Enabled {
			continue
		}
		pts := []opts.ScatterData{{Value: []interface{}{tgt.Range, tgt.Velocity}}}
		scatter.AddSeries(TargetLabel(tgt), pts,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: tgt.Color}))
	}
	line.Overlap(scatter)
	return line
}

// WriteReport renders every chart of the frame into a single page.
func WriteReport(w io.Writer, f *Frame, scene store.Scene) error {
	page := components.NewPage()
	page.PageTitle = "fmcw radar report"
	page.AddCharts(TimelineChart(f), BeatChart(f, scene.Targets))
	for i, res := range f.Windows {
		page.AddCharts(SpectrumChart(res, i))
	}
	page.AddCharts(PlaneChart(f, scene.Targets))
	return page.Render(w)
}

// WriteReportFile writes the chart report to path, "-" for stdout.
func WriteReportFile(path string, f *Frame, scene store.Scene) error {
	out, err := OpenOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return WriteReport(out, f, scene)
}
