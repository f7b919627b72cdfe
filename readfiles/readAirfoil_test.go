package readfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAirfoil(t *testing.T) {
	dir := t.TempDir()
	write := func(name, contents string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
		return path
	}
	{ // Commented header
		path := write("diamond.dat", "# diamond section\n1.0 0.0\n0.5 0.1\n0.0 0.0\n0.5 -0.1\n")
		title, X, Y, err := ReadAirfoil(path, false)
		require.NoError(t, err)
		assert.Equal(t, "diamond section", title)
		assert.InDeltaSlice(t, []float64{1, 0.5, 0, 0.5}, X, 1.e-15)
		assert.InDeltaSlice(t, []float64{0, 0.1, 0, -0.1}, Y, 1.e-15)
	}
	{ // Selig style title line
		path := write("selig2.dat", "NACA 0012 AIRFOILS\n  1.00000  0.00126\n  0.50000  0.05294\n  0.00000  0.00000\n  0.50000 -0.05294\n")
		title, X, Y, err := ReadAirfoil(path, true)
		require.NoError(t, err)
		assert.Equal(t, "NACA 0012 AIRFOILS", title)
		assert.Equal(t, 4, len(X))
		assert.InDelta(t, -0.05294, Y[3], 1.e-15)
	}
	{ // Too few points
		path := write("short.dat", "# short\n0 0\n1 0\n")
		_, _, _, err := ReadAirfoil(path, false)
		assert.Error(t, err)
	}
	{
		_, _, _, err := ReadAirfoil(filepath.Join(dir, "missing.dat"), false)
		assert.Error(t, err)
	}
}
