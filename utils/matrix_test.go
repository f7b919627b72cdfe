package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	// SetBlock
	{
		M := NewMatrix(3, 3)
		A := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		M.SetBlock(0, 1, A)
		assert.Equal(t, []float64{
			0, 1, 2,
			0, 3, 4,
			0, 0, 0,
		}, M.DataP)
		assert.Panics(t, func() { M.SetBlock(2, 2, A) })
	}
	// RowSums and Row
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{6, 15}, M.RowSums().DataP)
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).DataP)
		// Row returns a copy
		r := M.Row(0)
		r.DataP[0] = 100
		assert.Equal(t, 1., M.At(0, 0))
	}
	// MulVec
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		v := NewVector(3, []float64{1, 0, -1})
		assert.Equal(t, []float64{-2, -2}, M.MulVec(v).DataP)
	}
	// Read only matrices refuse writes
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		require.True(t, M.IsReadOnly())
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1) })
		assert.Equal(t, 1., M.At(0, 0))
	}
	// Copy is deep
	{
		M := NewMatrix(1, 2, []float64{1, 2})
		C := M.Copy()
		C.Set(0, 0, 5)
		assert.Equal(t, 1., M.At(0, 0))
	}
	// Condition number
	{
		I := NewMatrix(2, 2, []float64{1, 0, 0, 1})
		assert.InDelta(t, 1., I.ConditionNumber(), 1.e-12)
		D := NewMatrix(2, 2, []float64{4, 0, 0, 1})
		assert.InDelta(t, 4., D.ConditionNumber(), 1.e-12)
		S := NewMatrix(2, 2, []float64{1, 1, 1, 1})
		assert.True(t, S.ConditionNumber() > 1.e15)
	}
	// Allocation mismatch
	{
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
}
