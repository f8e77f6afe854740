package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// WaveformSVG renders ys against xs as a single polyline.
func WaveformSVG(xs, ys []float64, width, height int, strokeColor string) (string, error) {
	if len(xs) != len(ys) {
		return "", fmt.Errorf("export: %d x values, %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return "", errors.New("export: need at least two points")
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		minX, maxX = min(minX, xs[i]), max(maxX, xs[i])
		minY, maxY = min(minY, ys[i]), max(maxY, ys[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	// vertical padding only; the x axis is the sampling window
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String(), nil
}

func WriteSVG(w io.Writer, xs, ys []float64, width, height int, strokeColor string) error {
	svg, err := WaveformSVG(xs, ys, width, height, strokeColor)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, svg)
	return err
}
