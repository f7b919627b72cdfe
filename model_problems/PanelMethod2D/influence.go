package PanelMethod2D

import (
	"math"

	"github.com/notargets/gopanel/utils"
)

// Kernel evaluates the line integral of the point singularity kernel over a
// panel, observed at (x,y):
//
//	int_0^L [(x-xp(s))*dxdk + (y-yp(s))*dydk] / [(x-xp(s))^2 + (y-yp(s))^2] ds
//
// where (xp,yp)(s) = (xa - sin(beta)*s, ya + cos(beta)*s). The weights dxdk,
// dydk select the velocity component being accumulated. The observation
// point must not lie on the panel.
type Kernel interface {
	Integral(x, y float64, p *Panel, dxdk, dydk float64) float64
}

const (
	DefaultQuadratureOrder    = 8
	DefaultQuadratureTol      = 1.e-10
	DefaultQuadratureMaxDepth = 30
)

type QuadratureKernel struct {
	aq *utils.AdaptiveQuadrature
}

func NewQuadratureKernel(Order int, Tol float64, MaxDepth int) *QuadratureKernel {
	return &QuadratureKernel{
		aq: utils.NewAdaptiveQuadrature(Order, Tol, MaxDepth),
	}
}

func NewDefaultKernel() *QuadratureKernel {
	return NewQuadratureKernel(DefaultQuadratureOrder, DefaultQuadratureTol, DefaultQuadratureMaxDepth)
}

func (k *QuadratureKernel) Integral(x, y float64, p *Panel, dxdk, dydk float64) float64 {
	var (
		sinB, cosB = math.Sincos(p.Beta)
	)
	integrand := func(s float64) float64 {
		dx := x - (p.XA - sinB*s)
		dy := y - (p.YA + cosB*s)
		return (dx*dxdk + dy*dydk) / (dx*dx + dy*dy)
	}
	return k.aq.Integrate(integrand, 0, p.Length)
}
