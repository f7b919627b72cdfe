package graphics

import (
	"os"
	"path/filepath"
	"testing"

	utils2 "github.com/notargets/avs/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopanel/geometry2D"
	"github.com/notargets/gopanel/model_problems/PanelMethod2D"
)

func TestPlots(t *testing.T) {
	x, y, err := geometry2D.NACA4("0012", 61, true)
	require.NoError(t, err)
	N := 20
	sol, err := PanelMethod2D.Solve(x, y, N, 1, 4)
	require.NoError(t, err)
	dir := t.TempDir()
	{
		file := filepath.Join(dir, "cp.png")
		require.NoError(t, PlotPressure(sol, "NACA 0012", file))
		fi, err := os.Stat(file)
		require.NoError(t, err)
		assert.Greater(t, fi.Size(), int64(0))
	}
	{
		file := filepath.Join(dir, "geometry.png")
		require.NoError(t, PlotGeometry(x, y, sol.Panels, "NACA 0012", file))
		_, err := os.Stat(file)
		assert.NoError(t, err)
	}
	{
		file := filepath.Join(dir, "polar.png")
		require.NoError(t, PlotPolar([]float64{0, 2, 4}, []float64{0, 0.24, 0.48}, "polar", file))
		assert.Error(t, PlotPolar([]float64{0, 2}, []float64{0}, "polar", file))
	}
	{ // Chart segments, four floats per segment
		lines := PanelLines(x, y, sol.Panels, 0.05)
		assert.Equal(t, 4*len(x), len(lines[utils2.WHITE]))
		assert.Equal(t, 4*N, len(lines[utils2.GREEN]))
		assert.Equal(t, 4*N, len(lines[utils2.RED])+len(lines[utils2.BLUE]))
		assert.Equal(t, 4*N/2, len(lines[utils2.RED]))
	}
}
