package graphics

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gopanel/model_problems/PanelMethod2D"
)

var (
	upperColor = color.RGBA{R: 200, A: 255}
	lowerColor = color.RGBA{B: 200, A: 255}
	bodyColor  = color.RGBA{A: 255}
)

// PlotPressure writes -cp against x at the collocation points, one series
// per surface, so suction plots upward
func PlotPressure(sol *PanelMethod2D.Solution, title, fileName string) (err error) {
	var (
		p            = plot.New()
		upper, lower plotter.XYs
	)
	for _, pn := range sol.Panels {
		pt := plotter.XY{X: pn.XC, Y: -pn.Cp}
		switch pn.Side {
		case PanelMethod2D.Upper:
			upper = append(upper, pt)
		default:
			lower = append(lower, pt)
		}
	}
	p.Title.Text = fmt.Sprintf("%s, alpha = %.2f deg, CL = %.4f", title, sol.FS.AlphaDegrees(), sol.CL)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "-Cp"
	p.Legend.Top = true
	if err = addSeries(p, "upper", upper, upperColor); err != nil {
		return
	}
	if err = addSeries(p, "lower", lower, lowerColor); err != nil {
		return
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, fileName)
}

// PlotGeometry draws the input boundary with the panels laid over it
func PlotGeometry(x, y []float64, panels PanelMethod2D.PanelSet, title, fileName string) (err error) {
	var (
		p    = plot.New()
		body = make(plotter.XYs, len(x))
		ends = make(plotter.XYs, 0, len(panels)+1)
		line *plotter.Line
		sc   *plotter.Scatter
	)
	for i := range x {
		body[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	for _, pn := range panels {
		ends = append(ends, plotter.XY{X: pn.XA, Y: pn.YA})
	}
	if n := len(panels); n != 0 {
		ends = append(ends, plotter.XY{X: panels[n-1].XB, Y: panels[n-1].YB})
	}
	p.Title.Text = fmt.Sprintf("%s, %d panels", title, len(panels))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	if line, err = plotter.NewLine(body); err != nil {
		return
	}
	line.LineStyle.Color = bodyColor
	line.LineStyle.Width = vg.Points(0.5)
	p.Add(line)
	p.Legend.Add("boundary", line)
	if line, sc, err = plotter.NewLinePoints(ends); err != nil {
		return
	}
	line.LineStyle.Color = upperColor
	sc.GlyphStyle.Color = upperColor
	p.Add(line, sc)
	p.Legend.Add("panels", line, sc)
	// Equal axis scaling on a 2:1 canvas
	half, cy := 0.25*(p.X.Max-p.X.Min), 0.5*(p.Y.Min+p.Y.Max)
	p.Y.Min, p.Y.Max = cy-half, cy+half
	return p.Save(10*vg.Inch, 5*vg.Inch, fileName)
}

// PlotPolar writes CL against the angle of attack
func PlotPolar(alphas, cls []float64, title, fileName string) (err error) {
	if len(alphas) != len(cls) {
		return fmt.Errorf("polar has %d angles and %d lift coefficients", len(alphas), len(cls))
	}
	var (
		p   = plot.New()
		pts = make(plotter.XYs, len(alphas))
	)
	for i := range alphas {
		pts[i] = plotter.XY{X: alphas[i], Y: cls[i]}
	}
	p.Title.Text = title
	p.X.Label.Text = "alpha (deg)"
	p.Y.Label.Text = "CL"
	if err = addSeries(p, "CL", pts, upperColor); err != nil {
		return
	}
	return p.Save(6*vg.Inch, 5*vg.Inch, fileName)
}

func addSeries(p *plot.Plot, name string, pts plotter.XYs, col color.Color) (err error) {
	var (
		line *plotter.Line
		sc   *plotter.Scatter
	)
	if len(pts) == 0 {
		return
	}
	if line, sc, err = plotter.NewLinePoints(pts); err != nil {
		return
	}
	line.LineStyle.Color = col
	sc.GlyphStyle.Color = col
	p.Add(line, sc)
	p.Legend.Add(name, line, sc)
	return
}
