package geometry2D

import (
	"fmt"
	"math"
	"strconv"
)

/*
	NACA 4 digit sections, "MPTT":
		M  - maximum camber in percent of chord
		P  - position of maximum camber in tenths of chord
		TT - thickness in percent of chord
	Points are returned in Selig order, trailing edge -> upper surface ->
	leading edge -> lower surface -> trailing edge, with x cosine clustered
	toward both edges and a unit chord.
*/

const (
	a4Open   = 0.1015 // Finite trailing edge thickness
	a4Closed = 0.1036 // Zero trailing edge thickness
)

type NACA4Section struct {
	Camber, CamberPos, Thickness float64
}

func ParseNACA4(code string) (sec NACA4Section, err error) {
	if len(code) != 4 {
		err = fmt.Errorf("NACA 4 digit code must have 4 digits, have %q", code)
		return
	}
	var (
		digits [3]int
	)
	for i, s := range []string{code[0:1], code[1:2], code[2:4]} {
		if digits[i], err = strconv.Atoi(s); err != nil || digits[i] < 0 {
			err = fmt.Errorf("invalid NACA 4 digit code %q", code)
			return
		}
	}
	sec = NACA4Section{
		Camber:    float64(digits[0]) / 100.,
		CamberPos: float64(digits[1]) / 10.,
		Thickness: float64(digits[2]) / 100.,
	}
	switch {
	case sec.Thickness == 0:
		err = fmt.Errorf("NACA section %q has zero thickness", code)
	case sec.Camber != 0 && sec.CamberPos == 0:
		err = fmt.Errorf("NACA section %q is cambered with no camber position", code)
	}
	return
}

// NACA4 generates nPts points per surface. With closedTE the upper and lower
// surfaces meet at (1,0) and that point appears once, otherwise the trailing
// edge is blunt and both corners are returned.
func NACA4(code string, nPts int, closedTE bool) (x, y []float64, err error) {
	var (
		sec NACA4Section
	)
	if nPts < 3 {
		err = fmt.Errorf("need at least 3 points per surface, have %d", nPts)
		return
	}
	if sec, err = ParseNACA4(code); err != nil {
		return
	}
	var (
		xu, yu = make([]float64, nPts), make([]float64, nPts)
		xl, yl = make([]float64, nPts), make([]float64, nPts)
	)
	for k := 0; k < nPts; k++ {
		xc := 0.5 * (1 - math.Cos(math.Pi*float64(k)/float64(nPts-1)))
		yt := sec.HalfThickness(xc, closedTE)
		yc, dyc := sec.CamberLine(xc)
		sinT, cosT := math.Sincos(math.Atan(dyc))
		xu[k], yu[k] = xc-yt*sinT, yc+yt*cosT
		xl[k], yl[k] = xc+yt*sinT, yc-yt*cosT
	}
	// Upper surface from the trailing edge forward
	for k := nPts - 1; k >= 0; k-- {
		x, y = append(x, xu[k]), append(y, yu[k])
	}
	// Lower surface without the shared leading edge point
	kEnd := nPts
	if closedTE {
		kEnd = nPts - 1
	}
	for k := 1; k < kEnd; k++ {
		x, y = append(x, xl[k]), append(y, yl[k])
	}
	return
}

func (sec NACA4Section) HalfThickness(x float64, closedTE bool) float64 {
	a4 := a4Open
	if closedTE {
		a4 = a4Closed
	}
	return 5 * sec.Thickness * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - a4*x*x*x*x)
}

// CamberLine returns the mean line and its slope
func (sec NACA4Section) CamberLine(x float64) (yc, dyc float64) {
	var (
		m, p = sec.Camber, sec.CamberPos
	)
	switch {
	case m == 0:
		return 0, 0
	case x < p:
		yc = m / (p * p) * (2*p*x - x*x)
		dyc = 2 * m / (p * p) * (p - x)
	default:
		yc = m / ((1 - p) * (1 - p)) * (1 - 2*p + 2*p*x - x*x)
		dyc = 2 * m / ((1 - p) * (1 - p)) * (p - x)
	}
	return
}

// Circle of radius R centered on the origin, starting at (R,0) and running
// counterclockwise, with no repeated point
func Circle(R float64, nPts int) (x, y []float64) {
	x, y = make([]float64, nPts), make([]float64, nPts)
	for k := 0; k < nPts; k++ {
		sinT, cosT := math.Sincos(2 * math.Pi * float64(k) / float64(nPts))
		x[k], y[k] = R*cosT, R*sinT
	}
	return
}

// TrailingEdgeGap is the distance between the first and last boundary points
// when both sit at the maximum abscissa, zero when the section closes on a
// single trailing edge point or does not end there
func TrailingEdgeGap(x, y []float64) (gap float64) {
	n := len(x)
	if n < 2 || len(y) != n {
		return
	}
	xMin, xMax := x[0], x[0]
	for _, xx := range x {
		xMin, xMax = math.Min(xMin, xx), math.Max(xMax, xx)
	}
	tol := 1.e-9 * (xMax - xMin)
	if math.Abs(x[0]-xMax) > tol || math.Abs(x[n-1]-xMax) > tol {
		return
	}
	return math.Hypot(x[0]-x[n-1], y[0]-y[n-1])
}
