package export

import (
	"strings"
	"testing"
)

func TestCurveSVG(t *testing.T) {
	points := []XY{{300, 1e5}, {400, 5e5}, {500, 2e6}, {600, 1e7}}
	out := CurveSVG(points, 640, 480, "#00ff00", "saturation pressure")

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="640" height="480"`,
		`stroke="#00ff00"`,
		"saturation pressure",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// One moveto plus one lineto per remaining point.
	if got := strings.Count(out, " L"); got != len(points)-1 {
		t.Errorf("expected %d line segments, got %d", len(points)-1, got)
	}
}

func TestCurveSVGDegenerate(t *testing.T) {
	if out := CurveSVG(nil, 640, 480, "#fff", ""); out != "" {
		t.Error("expected empty output for no points")
	}
	if out := CurveSVG([]XY{{1, 1}}, 640, 480, "#fff", ""); out != "" {
		t.Error("expected empty output for a single point")
	}
}

func TestCurveSVGFlatLine(t *testing.T) {
	// A constant curve must not divide by a zero range.
	out := CurveSVG([]XY{{0, 5}, {1, 5}, {2, 5}}, 320, 240, "#fff", "")
	if !strings.Contains(out, "</svg>") {
		t.Error("expected a complete document for a flat curve")
	}
}
