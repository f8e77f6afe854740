package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/phasorsim/internal/phasor"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red, asciigraph.Orange, asciigraph.Yellow, asciigraph.Green,
	asciigraph.Cyan, asciigraph.Blue, asciigraph.Purple, asciigraph.Magenta,
}

// Downsample keeps every k-th value so the series fits in width columns.
func Downsample(data []float64, width int) []float64 {
	if width <= 0 || len(data) <= width {
		return data
	}
	step := (len(data) + width - 1) / width
	out := make([]float64, 0, width)
	for i := 0; i < len(data); i += step {
		out = append(out, data[i])
	}
	return out
}

// SpacePlot charts v(z) at the current time.
func SpacePlot(sig *phasor.Signal, width, height int) string {
	m := sig.Magnitude()
	if m < 0 {
		m = -m
	}
	caption := fmt.Sprintf("v(z, t=%.3f)  z in [0, %g]", sig.Time()[sig.CurrentTimeIndex()], sig.MaxSpace())
	return asciigraph.Plot(Downsample(sig.CurrentRow(), width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(-m),
		asciigraph.UpperBound(m),
		asciigraph.Caption(caption),
	)
}

// TimePlot charts v(t) at every spatial sample location, one color each.
func TimePlot(sig *phasor.Signal, width, height int) string {
	series := sig.SampleTimeSeries()
	data := make([][]float64, len(series))
	for k, s := range series {
		data[k] = Downsample(s, width)
	}
	colors := seriesColors
	if len(data) < len(colors) {
		colors = colors[:len(data)]
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("v(t) at %d sample locations, t in [0, %g]", len(data), sig.MaxTime())),
	)
}

// SpectrumPlot charts a power spectrum.
func SpectrumPlot(ps []float64, width, height int) string {
	return asciigraph.Plot(Downsample(ps, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("power spectrum"),
	)
}
