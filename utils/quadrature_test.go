package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdaptiveQuadrature(t *testing.T) {
	aq := NewAdaptiveQuadrature(8, 1.e-12, 40)
	{ // Polynomials up to degree 2*Order-1 are exact in one interval
		f := func(x float64) float64 { return 3*x*x*x*x*x - x*x + 2 }
		// int_0^2 = 3*64/6 - 8/3 + 4
		assert.InDelta(t, 32.-8./3.+4., aq.Fixed(f, 0, 2), 1.e-12)
		assert.InDelta(t, 32.-8./3.+4., aq.Integrate(f, 0, 2), 1.e-12)
	}
	{ // Smooth transcendental
		assert.InDelta(t, 2., aq.Integrate(math.Sin, 0, math.Pi), 1.e-12)
	}
	{ // Nearly singular kernel, 1/(x^2+eps^2) has integral atan(x/eps)/eps
		eps := 1.e-3
		f := func(x float64) float64 { return 1. / (x*x + eps*eps) }
		exact := (math.Atan(1/eps) - math.Atan(-1/eps)) / eps
		assert.InDelta(t, 0., (aq.Integrate(f, -1, 1)-exact)/exact, 1.e-10)
	}
	{ // Empty interval
		assert.Equal(t, 0., aq.Integrate(math.Exp, 1, 1))
	}
}
