package PanelMethod2D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gopanel/geometry2D"
	"github.com/notargets/gopanel/utils"
)

func TestNACA0012(t *testing.T) {
	x, y := naca0012(t)
	N := 40
	pm, err := NewPanelMethod(x, y, N, 1, Options{})
	require.NoError(t, err)
	{ // Zero incidence on a symmetric section carries no lift
		sol, err := pm.Solve(0)
		require.NoError(t, err)
		assert.Less(t, math.Abs(sol.CL), 0.01)
		assert.Less(t, math.Abs(sol.Gamma), 1.e-3)
		assert.False(t, utils.IsNan(sol.Strengths.Vector))
		assert.Equal(t, N+1, sol.Strengths.Len())
		assert.True(t, near(1, sol.Chord))
		for i := 0; i < N/2; i++ {
			pu, pl := sol.Panels[i], sol.Panels[N-1-i]
			assert.True(t, near(pu.Cp, pl.Cp, 1.e-6), "panel %d", i)
			assert.True(t, near(pu.Sigma, pl.Sigma, 1.e-6), "panel %d", i)
		}
		// Stagnation near the leading edge, suction over the thick section
		cpMax, cpMin := -math.MaxFloat64, math.MaxFloat64
		for _, p := range sol.Panels {
			cpMax, cpMin = math.Max(cpMax, p.Cp), math.Min(cpMin, p.Cp)
			assert.LessOrEqual(t, p.Cp, 1.)
		}
		assert.Greater(t, cpMax, 0.7)
		assert.InDelta(t, -0.4, cpMin, 0.1)
		// The discretization is untouched by the solve
		assert.Zero(t, pm.Panels[3].Sigma)
	}
	{ // Lift at four degrees, close to thin airfoil theory
		sol, err := pm.Solve(4)
		require.NoError(t, err)
		assert.True(t, sol.CL >= 0.3 && sol.CL <= 0.6, "CL = %v", sol.CL)
		assert.Greater(t, sol.Gamma, 0.)
		// Kutta condition, equal and opposite tangential velocity at the trailing edge
		first, last := sol.Panels.TrailingEdge()
		assert.True(t, near(0, sol.Panels[first].Vt+sol.Panels[last].Vt, 1.e-9))
		// Surface pressure integrates to nearly the same lift
		cl, cd := PressureForce(sol.Panels, sol.FS)
		assert.InDelta(t, sol.CL, cl, 0.1*sol.CL)
		assert.Less(t, math.Abs(cd), 0.05)
	}
	{ // Flow stays tangent to the body at every collocation point
		sol, err := pm.Solve(2)
		require.NoError(t, err)
		im := pm.InfluenceMatrices()
		vn := im.ASource.MulVec(utils.NewVector(len(sol.Panels), sol.Strengths.Sigma()))
		bSum := im.BVortex.RowSums()
		for i, p := range sol.Panels {
			vni := vn.AtVec(i) + sol.Gamma*bSum.AtVec(i) + sol.FS.NormalComponent(p.Beta)
			assert.True(t, near(0, vni, 1.e-9), "panel %d", i)
		}
	}
}

func TestCircle(t *testing.T) {
	x, y := geometry2D.Circle(1, 200)
	sol, err := Solve(x, y, 40, 1, 0)
	require.NoError(t, err)
	assert.True(t, near(0, sol.Gamma, 1.e-8))
	assert.True(t, near(0, sol.CL, 1.e-8))
	assert.True(t, near(2, sol.Chord))
	assert.Greater(t, sol.Condition, 1.)
	assert.False(t, math.IsInf(sol.Condition, 0))
	// Potential flow about a cylinder, cp = 1 - 4 sin^2(theta)
	for i, p := range sol.Panels {
		theta := math.Atan2(p.YC, p.XC)
		exact := 1 - 4*math.Pow(math.Sin(theta), 2)
		assert.InDelta(t, exact, p.Cp, 0.05, "panel %d", i)
	}
	// A closed body has no net source outflow
	assert.Less(t, math.Abs(sol.SourceSum), 1.e-6)
}

func TestSourceSum(t *testing.T) {
	x, y := naca0012(t)
	var sums []float64
	for _, N := range []int{40, 80, 160} {
		sol, err := Solve(x, y, N, 1, 4)
		require.NoError(t, err)
		assert.True(t, sol.CL >= 0.3 && sol.CL <= 0.6, "N = %d, CL = %v", N, sol.CL)
		assert.Less(t, math.Abs(sol.SourceSum), 0.02, "N = %d", N)
		assert.Equal(t, SourceSumDiagnostic(sol.Panels), sol.SourceSum)
		sums = append(sums, sol.SourceSum)
	}
	t.Logf("source sums for N = 40, 80, 160: %v", sums)
	// Refinement must not grow the net outflow
	for i := 1; i < len(sums); i++ {
		assert.LessOrEqual(t, math.Abs(sums[i]), math.Abs(sums[i-1]), "level %d: %v", i, sums)
	}
}

func TestSweep(t *testing.T) {
	x, y := naca0012(t)
	pm, err := NewPanelMethod(x, y, 40, 10, Options{ProcLimit: 2})
	require.NoError(t, err)
	alphas := []float64{-2, 0, 2, 4}
	sols, err := pm.Sweep(alphas)
	require.NoError(t, err)
	require.Equal(t, len(alphas), len(sols))
	for i := 1; i < len(sols); i++ {
		assert.Greater(t, sols[i].CL, sols[i-1].CL)
		assert.NotSame(t, sols[i].Panels[0], sols[i-1].Panels[0])
	}
	// Linear in the angle of attack, symmetric about zero
	assert.True(t, near(-sols[0].CL, sols[2].CL, 1.e-6))
	assert.True(t, near(2*sols[2].CL, sols[3].CL, 0.02))
	// A lone solve matches the sweep
	sol, err := pm.Solve(4)
	require.NoError(t, err)
	assert.Equal(t, sols[3].CL, sol.CL)
	// CL does not depend on the freestream speed
	lone, err := Solve(x, y, 40, 1, 4)
	require.NoError(t, err)
	assert.True(t, near(lone.CL, sol.CL, 1.e-9))
	assert.True(t, near(10*lone.Gamma, sol.Gamma, 1.e-9))
}

func TestAccuracyWarning(t *testing.T) {
	x, y := naca0012(t)
	{
		pm, err := NewPanelMethod(x, y, 40, 1, Options{SourceSumTol: 1.e-15})
		require.NoError(t, err)
		sol, err := pm.Solve(4)
		require.NoError(t, err)
		require.Equal(t, 1, len(sol.Warnings))
		w := sol.Warnings[0]
		assert.Equal(t, 40, w.NumPanels)
		assert.Equal(t, sol.SourceSum, w.SourceSum)
		assert.Contains(t, w.Error(), "exceeds tolerance")
	}
	{
		pm, err := NewPanelMethod(x, y, 40, 1, Options{SourceSumTol: 1})
		require.NoError(t, err)
		sol, err := pm.Solve(4)
		require.NoError(t, err)
		assert.Empty(t, sol.Warnings)
	}
}

func TestPanelMethodErrors(t *testing.T) {
	x, y := naca0012(t)
	{
		_, err := Solve(x, y, 0, 1, 0)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		_, err = Solve(x, y, 20, 0, 0)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		_, err = Solve(x, y, 20, math.Inf(1), 0)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		_, err = NewPanelMethod(x, y, 20, 1, Options{SourceSumTol: -1})
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	}
	{
		sol, err := Solve([]float64{0, 1}, []float64{0, 0}, 20, 1, 0)
		assert.Nil(t, sol)
		assert.True(t, errors.Is(err, ErrInvalidGeometry))
		assert.False(t, errors.Is(err, ErrInvalidConfiguration))
	}
	{ // Coarse closed bodies
		for _, N := range []int{2, 3} {
			sol, err := Solve(x, y, N, 1, 4)
			assert.Nil(t, sol)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "N = %d", N)
		}
		sol, err := Solve(x, y, 7, 1, 0)
		require.NoError(t, err)
		assert.Greater(t, floats.Min(sol.Panels.Lengths()), 1.e-2)
		assert.Less(t, math.Abs(sol.CL), 1.e-8)
		sol, err = Solve(x, y, 7, 1, 4)
		require.NoError(t, err)
		assert.Greater(t, sol.CL, 0.)
	}
}

func TestFreeStream(t *testing.T) {
	fs, err := NewFreeStream(3, 90)
	require.NoError(t, err)
	assert.True(t, near(0.5*math.Pi, fs.Alpha))
	assert.True(t, near(90, fs.AlphaDegrees()))
	// Panel facing +y sees the full speed normal to it
	assert.True(t, near(3, fs.NormalComponent(0.5*math.Pi)))
	assert.True(t, near(0, fs.TangentialComponent(0.5*math.Pi)))
	_, err = NewFreeStream(-1, 0)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	_, err = NewFreeStream(math.NaN(), 0)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
