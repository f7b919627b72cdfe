package PanelMethod2D

import (
	"github.com/notargets/gopanel/utils"
)

// LinearSystem is the augmented (N+1)x(N+1) system. Unknowns 0..N-1 are the
// panel source strengths, unknown N is the circulation density shared by
// every panel.
type LinearSystem struct {
	A utils.Matrix
	B utils.Vector
}

func NewLinearSystem(panels PanelSet, fs *FreeStream, im *InfluenceMatrices) *LinearSystem {
	return &LinearSystem{
		A: BuildSingularityMatrix(im),
		B: BuildFreestreamRHS(panels, fs),
	}
}

// KuttaCondition is the last row of the augmented matrix. It sets the
// tangential velocities on the trailing edge pair equal and opposite:
//
//	vt[0] + vt[N-1] = 0
func KuttaCondition(im *InfluenceMatrices) (row []float64) {
	var (
		N, _        = im.ASource.Dims()
		A, B        = im.ASource, im.BVortex
		first, last = 0, N - 1
		sumA        float64
	)
	row = make([]float64, N+1)
	for j := 0; j < N; j++ {
		// Source -> tangential is the vortex -> normal matrix
		row[j] = B.At(first, j) + B.At(last, j)
		// Vortex -> tangential is the negative of source -> normal
		sumA += A.At(first, j) + A.At(last, j)
	}
	row[N] = -sumA
	return
}

func BuildSingularityMatrix(im *InfluenceMatrices) (A utils.Matrix) {
	var (
		N, _ = im.ASource.Dims()
		bSum = im.BVortex.RowSums()
	)
	A = utils.NewMatrix(N+1, N+1)
	A.SetBlock(0, 0, im.ASource)
	// A single circulation unknown multiplies every panel's vortex kernel
	for i := 0; i < N; i++ {
		A.Set(i, N, bSum.DataP[i])
	}
	A.SetRow(N, KuttaCondition(im))
	return
}

func BuildFreestreamRHS(panels PanelSet, fs *FreeStream) (b utils.Vector) {
	var (
		N           = len(panels)
		first, last = panels.TrailingEdge()
	)
	b = utils.NewVector(N + 1)
	for i, p := range panels {
		b.DataP[i] = -fs.NormalComponent(p.Beta)
	}
	b.DataP[N] = -(fs.TangentialComponent(panels[first].Beta) + fs.TangentialComponent(panels[last].Beta))
	return
}
