package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	{ // Wraps caller data without copying
		data := []float64{1, 2, 3}
		v := NewVector(3, data)
		data[2] = 5
		assert.Equal(t, 5., v.AtVec(2))
		assert.Equal(t, 3, v.Len())
		assert.Panics(t, func() { NewVector(2, data) })
	}
	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 0., req.AtVec(1))
		assert.Equal(t, 1., req.AtVec(2))
		req = NewVector(41).Linspace(0, 2*math.Pi)
		assert.Equal(t, 2*math.Pi, req.AtVec(40))
	}
	// NaN detection
	{
		assert.False(t, IsNan(NewVector(3, []float64{1, 2, 3})))
		assert.True(t, IsNan(NewVector(2, []float64{1, math.NaN()})))
		assert.True(t, IsNan(NewMatrix(1, 2, []float64{math.Inf(1), 0})))
		assert.True(t, IsNan(math.Inf(-1)))
	}
	// POW
	{
		assert.Equal(t, 0.25, POW(0.5, 2))
		assert.Equal(t, 4., POW(0.5, -2))
		assert.InDelta(t, math.Pow(1.1, 11), POW(1.1, 11), 1.e-12)
	}
}
