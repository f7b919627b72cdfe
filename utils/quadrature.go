package utils

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const roundoffTol = 1.e-14

// AdaptiveQuadrature integrates a function over a finite interval by
// recursive bisection, comparing a Gauss-Legendre estimate over each interval
// with the sum of the estimates over its two halves.
type AdaptiveQuadrature struct {
	Order    int     // Number of Gauss-Legendre points per interval
	Tol      float64 // Absolute tolerance over the whole interval
	MaxDepth int     // Bisection limit
	r, w     []float64
}

func NewAdaptiveQuadrature(Order int, Tol float64, MaxDepth int) (aq *AdaptiveQuadrature) {
	if Order < 1 {
		Order = 1
	}
	aq = &AdaptiveQuadrature{
		Order:    Order,
		Tol:      Tol,
		MaxDepth: MaxDepth,
		r:        make([]float64, Order),
		w:        make([]float64, Order),
	}
	// Reference nodes and weights on [-1,1], mapped onto each sub-interval
	quad.Legendre{}.FixedLocations(aq.r, aq.w, -1, 1)
	return
}

// Fixed is a single Gauss-Legendre estimate of the integral over [a,b]
func (aq *AdaptiveQuadrature) Fixed(f func(float64) float64, a, b float64) (sum float64) {
	var (
		half = 0.5 * (b - a)
		mid  = 0.5 * (b + a)
	)
	for i, r := range aq.r {
		sum += aq.w[i] * f(mid+half*r)
	}
	return half * sum
}

func (aq *AdaptiveQuadrature) Integrate(f func(float64) float64, a, b float64) float64 {
	if a == b {
		return 0
	}
	return aq.bisect(f, a, b, aq.Fixed(f, a, b), aq.Tol, 0)
}

func (aq *AdaptiveQuadrature) bisect(f func(float64) float64, a, b, whole, tol float64, depth int) float64 {
	var (
		mid         = 0.5 * (a + b)
		left, right = aq.Fixed(f, a, mid), aq.Fixed(f, mid, b)
	)
	diff := math.Abs(left + right - whole)
	// Differences at the roundoff level of the estimate can not be reduced
	if depth >= aq.MaxDepth || diff <= tol || diff <= roundoffTol*math.Abs(left+right) {
		return left + right
	}
	return aq.bisect(f, a, mid, left, 0.5*tol, depth+1) +
		aq.bisect(f, mid, b, right, 0.5*tol, depth+1)
}
