// Package export renders property curves as standalone SVG documents.
package export

import (
	"fmt"
	"strings"
)

// XY is one point of a plotted curve.
type XY struct{ X, Y float64 }

// CurveSVG renders points as a single autoscaled polyline with a dark
// background and min/max axis annotations. Returns the empty string for
// fewer than two points.
func CurveSVG(points []XY, width, height int, stroke, title string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	// Margin for the axis labels, plus breathing room around the curve.
	const margin = 40.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin
	pad := 0.05

	toX := func(x float64) float64 {
		return margin + ((x-minX)/rangeX*(1-2*pad)+pad)*plotW
	}
	toY := func(y float64) float64 {
		return margin + plotH - ((y-minY)/rangeY*(1-2*pad)+pad)*plotH
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="none" stroke="#444444"/>
`, width, height, width, height, margin, margin, plotW, plotH)

	if title != "" {
		fmt.Fprintf(&sb, `<text x="%.0f" y="%.0f" fill="#cccccc" font-family="monospace" font-size="13" text-anchor="middle">%s</text>
`, float64(width)/2, margin-12, title)
	}
	fmt.Fprintf(&sb, `<text x="%.0f" y="%.0f" fill="#888888" font-family="monospace" font-size="11">%.4g</text>
<text x="%.0f" y="%.0f" fill="#888888" font-family="monospace" font-size="11" text-anchor="end">%.4g</text>
<text x="%.0f" y="%.0f" fill="#888888" font-family="monospace" font-size="11" text-anchor="end">%.4g</text>
<text x="%.0f" y="%.0f" fill="#888888" font-family="monospace" font-size="11" text-anchor="end">%.4g</text>
`,
		margin, margin+plotH+16, minX,
		margin+plotW, margin+plotH+16, maxX,
		margin-4, margin+plotH, minY,
		margin-4, margin+10, maxY)

	sb.WriteString(`<path fill="none" stroke="` + stroke + `" stroke-width="1.5" d="M`)
	for i, p := range points {
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", toX(p.X), toY(p.Y))
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", toX(p.X), toY(p.Y))
		}
	}
	sb.WriteString(`"/>
</svg>
`)
	return sb.String()
}
