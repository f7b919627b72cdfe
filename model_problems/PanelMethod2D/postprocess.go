package PanelMethod2D

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gopanel/utils"
)

// ComputeTangentialVelocity sets Vt on every panel from the solved strengths,
// reusing the normal influence matrices for the tangential components
func ComputeTangentialVelocity(panels PanelSet, fs *FreeStream, s Strengths, im *InfluenceMatrices) {
	var (
		N    = len(panels)
		At   = utils.NewMatrix(N, N+1)
		aSum = im.ASource.RowSums()
	)
	At.SetBlock(0, 0, im.BVortex)
	for i := 0; i < N; i++ {
		At.Set(i, N, -aSum.DataP[i])
	}
	vt := At.MulVec(s.Vector)
	for i, p := range panels {
		p.Vt = vt.DataP[i] + fs.TangentialComponent(p.Beta)
	}
}

func ComputePressureCoefficient(panels PanelSet, fs *FreeStream) {
	for _, p := range panels {
		p.Cp = 1. - utils.POW(p.Vt/fs.UInf, 2)
	}
}

func ChordLength(panels PanelSet) float64 {
	xa := make([]float64, len(panels))
	for i, p := range panels {
		xa[i] = p.XA
	}
	return floats.Max(xa) - floats.Min(xa)
}

// LiftCoefficient applies Kutta-Joukowski to the total circulation
// gamma * perimeter
func LiftCoefficient(panels PanelSet, fs *FreeStream, gamma float64) float64 {
	return gamma * floats.Sum(panels.Lengths()) / (0.5 * fs.UInf * ChordLength(panels))
}

// SourceSumDiagnostic is the net source outflow of the body, zero for an
// exact solution over a closed body
func SourceSumDiagnostic(panels PanelSet) float64 {
	return floats.Dot(panels.Sigmas(), panels.Lengths())
}

// PressureForce integrates -cp*n over the panels, giving the force
// coefficients normalized by the chord, rotated into lift and drag
func PressureForce(panels PanelSet, fs *FreeStream) (cl, cd float64) {
	var (
		cx, cy float64
		chord  = ChordLength(panels)
	)
	for _, p := range panels {
		nx, ny := p.Normal()
		cx -= p.Cp * p.Length * nx
		cy -= p.Cp * p.Length * ny
	}
	cx /= chord
	cy /= chord
	sinA, cosA := math.Sincos(fs.Alpha)
	cl = cy*cosA - cx*sinA
	cd = cx*cosA + cy*sinA
	return
}
