package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParametersPanel(t *testing.T) {
	{
		fileInput := []byte(`
Title: "NACA 2412 polar"
NACA: "2412"
Panels: 80
UInf: 10.
Alpha: 4
AlphaSweep:
  Min: -4
  Max: 8
  Step: 2
Tolerance:
  Quadrature: 1.e-9
  SourceSum: 0.01
ClosedTE: false
`)
		ip := NewInputParametersPanel()
		require.NoError(t, ip.Parse(fileInput))
		assert.Equal(t, "NACA 2412 polar", ip.Title)
		assert.Equal(t, "2412", ip.NACA)
		assert.Equal(t, 80, ip.Panels)
		assert.Equal(t, 10., ip.UInf)
		assert.Equal(t, 4., ip.Alpha)
		assert.Equal(t, 1.e-9, ip.Tolerance.Quadrature)
		assert.Equal(t, 0.01, ip.Tolerance.SourceSum)
		assert.False(t, ip.IsClosedTE())
		// Defaults survive
		assert.Equal(t, 101, ip.NACAPoints)
		alphas, err := ip.Alphas()
		require.NoError(t, err)
		assert.Equal(t, []float64{-4, -2, 0, 2, 4, 6, 8}, alphas)
		ip.Print()
	}
	{
		ip := NewInputParametersPanel()
		require.NoError(t, ip.Parse([]byte("CoordFile: naca0012.dat\nAlphaSweep: {Min: 3, Max: 3}\n")))
		assert.True(t, ip.IsClosedTE())
		assert.Equal(t, "naca0012.dat", ip.CoordFile)
		alphas, err := ip.Alphas()
		require.NoError(t, err)
		assert.Equal(t, []float64{3}, alphas)
		ip.AlphaSweep = AlphaSweep{Min: 0, Max: 1, Step: 0.3}
		alphas, err = ip.Alphas()
		require.NoError(t, err)
		assert.Equal(t, 4, len(alphas))
		ip.AlphaSweep = AlphaSweep{Min: 2, Max: 1, Step: 1}
		_, err = ip.Alphas()
		assert.Error(t, err)
	}
	{
		ip := NewInputParametersPanel()
		assert.Error(t, ip.Parse([]byte("Panels: [1, 2]")))
	}
}
