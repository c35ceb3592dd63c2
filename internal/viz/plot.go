// Package viz renders profile fields as terminal charts.
package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
)

const (
	ChartWidth  = 80
	ChartHeight = 15
)

// Log10 maps values to log10, turning non-positive or NaN entries into NaN.
func Log10(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) || v <= 0 {
			out[i] = math.NaN()
		} else {
			out[i] = math.Log10(v)
		}
	}
	return out
}

// dropNaN removes flagged samples so asciigraph only sees plottable values.
func dropNaN(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Field charts one profile field over the grid. logY plots log10 of the
// values. The caption records the radial range since the x axis is sample
// index.
func Field(name string, vals []float64, logY bool, rminPc, rmaxPc float64) string {
	data := vals
	label := name
	if logY {
		data = Log10(vals)
		label = "log10 " + name
	}
	data = dropNaN(data)
	if len(data) == 0 {
		return WarnStyle.Render("no valid samples to plot")
	}

	caption := fmt.Sprintf("%s   r = %.3g..%.3g pc", label, rminPc, rmaxPc)
	graph := asciigraph.Plot(data,
		asciigraph.Height(ChartHeight),
		asciigraph.Width(ChartWidth),
		asciigraph.Caption(caption),
	)
	return GraphStyle.Render(graph)
}

// Overlay charts several series on the same axes, e.g. cooling vs free-fall
// time or the two closures' densities.
func Overlay(caption string, logY bool, series ...[]float64) string {
	data := make([][]float64, 0, len(series))
	for _, s := range series {
		if logY {
			s = Log10(s)
		}
		s = dropNaN(s)
		if len(s) > 0 {
			data = append(data, s)
		}
	}
	if len(data) == 0 {
		return WarnStyle.Render("no valid samples to plot")
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(ChartHeight),
		asciigraph.Width(ChartWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
	)
	return GraphStyle.Render(graph)
}
