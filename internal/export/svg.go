// Package export renders evaluated profiles as standalone SVG figures.
package export

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// Curve is one named series to draw.
type Curve struct {
	Label string
	X, Y  []float64
	Color string
}

// ProfileToSVG draws one or more curves on shared log-log style axes (the
// caller passes already-transformed coordinates, typically log10). Flagged
// samples (NaN) break the path rather than being bridged over.
func ProfileToSVG(title string, curves []Curve, width, height int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, c := range curves {
		for i := range c.X {
			if math.IsNaN(c.X[i]) || math.IsNaN(c.Y[i]) {
				continue
			}
			minX = math.Min(minX, c.X[i])
			maxX = math.Max(maxX, c.X[i])
			minY = math.Min(minY, c.Y[i])
			maxY = math.Max(maxY, c.Y[i])
		}
	}
	if minX > maxX || minY > maxY {
		return ""
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	minY -= rangeY * 0.05
	rangeX *= 1.1
	rangeY *= 1.1

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%d" y="20" text-anchor="middle" font-family="monospace" font-size="14">%s</text>
`, width, height, width, height, width/2, title))

	for _, c := range curves {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="`, c.Color))
		pen := false
		for i := range c.X {
			if math.IsNaN(c.X[i]) || math.IsNaN(c.Y[i]) {
				pen = false
				continue
			}
			x := (c.X[i] - minX) / rangeX * float64(width)
			y := float64(height) - (c.Y[i]-minY)/rangeY*float64(height)
			if !pen {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
				pen = true
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// legend
	for i, c := range curves {
		y := 40 + i*18
		sb.WriteString(fmt.Sprintf(`<line x1="12" y1="%d" x2="36" y2="%d" stroke="%s" stroke-width="2"/>
<text x="42" y="%d" font-family="monospace" font-size="12">%s</text>
`, y, y, c.Color, y+4, c.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteSVG renders the curves and writes the figure to path.
func WriteSVG(path, title string, curves []Curve, width, height int) error {
	svg := ProfileToSVG(title, curves, width, height)
	if svg == "" {
		return fmt.Errorf("export: no valid samples to draw")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
