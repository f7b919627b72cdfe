package PanelMethod2D

import (
	"fmt"
	"math"
)

type SurfaceSide uint8

const (
	Upper SurfaceSide = iota
	Lower
)

func (s SurfaceSide) String() string {
	return [...]string{"upper", "lower"}[s]
}

// Panel is a straight boundary segment from (XA,YA) to (XB,YB) carrying a
// uniform source density Sigma. Beta is the angle between the outward normal
// and the x axis.
type Panel struct {
	XA, YA, XB, YB float64
	XC, YC         float64 // Collocation point, the panel center
	Length, Beta   float64
	Side           SurfaceSide
	Sigma, Vt, Cp  float64
}

func NewPanel(xa, ya, xb, yb float64) (p *Panel, err error) {
	p = &Panel{
		XA: xa, YA: ya,
		XB: xb, YB: yb,
		XC: 0.5 * (xa + xb),
		YC: 0.5 * (ya + yb),
	}
	p.Length = math.Hypot(xb-xa, yb-ya)
	if !(p.Length > 0) {
		err = fmt.Errorf("%w: zero length panel at (%v,%v)", ErrInvalidGeometry, xa, ya)
		return nil, err
	}
	if xb-xa <= 0 {
		p.Beta = math.Acos((yb - ya) / p.Length)
	} else {
		p.Beta = math.Pi + math.Acos(-(yb-ya)/p.Length)
	}
	if p.Beta <= math.Pi {
		p.Side = Upper
	} else {
		p.Side = Lower
	}
	return
}

// Normal and Tangent are the unit outward normal and the unit tangent
// pointing from A towards B
func (p *Panel) Normal() (nx, ny float64)  { return math.Cos(p.Beta), math.Sin(p.Beta) }
func (p *Panel) Tangent() (tx, ty float64) { return -math.Sin(p.Beta), math.Cos(p.Beta) }

// PanelSet is ordered along the discretization traversal, the first and last
// panels form the trailing edge pair
type PanelSet []*Panel

func (ps PanelSet) Len() int { return len(ps) }

func (ps PanelSet) Next(i int) int { return (i + 1) % len(ps) }

func (ps PanelSet) Prev(i int) int { return (i - 1 + len(ps)) % len(ps) }

// TrailingEdge returns the indices of the Kutta condition pair
func (ps PanelSet) TrailingEdge() (first, last int) { return 0, len(ps) - 1 }

func (ps PanelSet) Lengths() (l []float64) {
	l = make([]float64, len(ps))
	for i, p := range ps {
		l[i] = p.Length
	}
	return
}

func (ps PanelSet) Sigmas() (s []float64) {
	s = make([]float64, len(ps))
	for i, p := range ps {
		s[i] = p.Sigma
	}
	return
}

// IsClosed checks the polyline formed by the panel endpoints
func (ps PanelSet) IsClosed(tol float64) bool {
	for i, p := range ps {
		n := ps[ps.Next(i)]
		if math.Abs(p.XB-n.XA) > tol || math.Abs(p.YB-n.YA) > tol {
			return false
		}
	}
	return true
}

// Copy returns a deep copy so solved state can be kept per case
func (ps PanelSet) Copy() (cp PanelSet) {
	cp = make(PanelSet, len(ps))
	for i, p := range ps {
		pp := *p
		cp[i] = &pp
	}
	return
}
