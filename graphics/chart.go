package graphics

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gopanel/geometry2D"
	"github.com/notargets/gopanel/model_problems/PanelMethod2D"
)

// PanelLines builds the line segments for an interactive chart: the raw
// boundary in white, upper and lower panels in red and blue, and outward
// normals of length normalScale at each collocation point in green
func PanelLines(x, y []float64, panels PanelMethod2D.PanelSet, normalScale float64) (lines map[color.RGBA][]float32) {
	lines = make(map[color.RGBA][]float32)
	for i := range x {
		ip := (i + 1) % len(x)
		addSegment(x[i], y[i], x[ip], y[ip], utils2.WHITE, lines)
	}
	for _, p := range panels {
		col := utils2.RED
		if p.Side == PanelMethod2D.Lower {
			col = utils2.BLUE
		}
		addSegment(p.XA, p.YA, p.XB, p.YB, col, lines)
		nx, ny := p.Normal()
		addSegment(p.XC, p.YC, p.XC+normalScale*nx, p.YC+normalScale*ny, utils2.GREEN, lines)
	}
	return
}

// ChartPanels opens a chart window with the discretization and blocks
func ChartPanels(x, y []float64, panels PanelMethod2D.PanelSet) {
	var (
		box   = geometry2D.NewPolygon(x, y).Box.Square().Scale(1.2)
		lines = PanelLines(x, y, panels, 0.02*(box.XMax[0]-box.XMin[0]))
	)
	ch := chart2d.NewChart2D(
		float32(box.XMin[0]), float32(box.XMax[0]), float32(box.XMin[1]), float32(box.XMax[1]),
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for col, line := range lines {
		ch.AddLine(line, col)
	}
	select {}
}

func addSegment(x1, y1, x2, y2 float64, col color.RGBA, lines map[color.RGBA][]float32) {
	lines[col] = append(lines[col],
		float32(x1), float32(y1),
		float32(x2), float32(y2),
	)
}
