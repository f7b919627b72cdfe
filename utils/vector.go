package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(N int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			err := fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v\n", N, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(N, dataO[0])
	} else {
		v = mat.NewVecDense(N, make([]float64, N))
	}
	return Vector{V: v, DataP: v.RawVector().Data}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Linspace(begin, end float64) Vector {
	var (
		N = v.Len()
	)
	if N == 1 {
		v.DataP[0] = begin
		return v
	}
	step := (end - begin) / float64(N-1)
	for i := range v.DataP {
		v.DataP[i] = begin + float64(i)*step
	}
	// Pin the last value so the range closes exactly
	v.DataP[N-1] = end
	return v
}

