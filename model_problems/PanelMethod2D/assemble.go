package PanelMethod2D

import (
	"math"
	"sync"

	"github.com/notargets/gopanel/utils"
)

/*
	Influence coefficients at the collocation point of panel i due to a unit
	strength distribution on panel j. The vortex distribution produces the
	source velocity field rotated by 90 degrees, so:
		source -> tangential == vortex -> normal   (BVortex)
		vortex -> tangential == -(source -> normal) (-ASource)
	Only ASource and BVortex are assembled for a solve, the tangential
	matrices are reused from them.
*/

const oo2pi = 0.5 / math.Pi

type InfluenceMatrices struct {
	ASource utils.Matrix // Normal velocity due to sources, NxN
	BVortex utils.Matrix // Normal velocity due to vortices, NxN
}

func NewInfluenceMatrices(panels PanelSet, k Kernel, ProcLimit int) (im *InfluenceMatrices) {
	im = &InfluenceMatrices{
		ASource: SourceContributionsNormal(panels, k, ProcLimit),
		BVortex: VortexContributionsNormal(panels, k, ProcLimit),
	}
	im.ASource.SetReadOnly("ASource")
	im.BVortex.SetReadOnly("BVortex")
	return
}

func SourceContributionsNormal(panels PanelSet, k Kernel, ProcLimit int) utils.Matrix {
	return buildInfluence(panels, ProcLimit, 0.5, func(pi, pj *Panel) float64 {
		nx, ny := pi.Normal()
		return oo2pi * k.Integral(pi.XC, pi.YC, pj, nx, ny)
	})
}

func VortexContributionsNormal(panels PanelSet, k Kernel, ProcLimit int) utils.Matrix {
	return buildInfluence(panels, ProcLimit, 0, func(pi, pj *Panel) float64 {
		nx, ny := pi.Normal()
		return -oo2pi * k.Integral(pi.XC, pi.YC, pj, ny, -nx)
	})
}

func SourceContributionsTangential(panels PanelSet, k Kernel, ProcLimit int) utils.Matrix {
	return buildInfluence(panels, ProcLimit, 0, func(pi, pj *Panel) float64 {
		tx, ty := pi.Tangent()
		return oo2pi * k.Integral(pi.XC, pi.YC, pj, tx, ty)
	})
}

func VortexContributionsTangential(panels PanelSet, k Kernel, ProcLimit int) utils.Matrix {
	return buildInfluence(panels, ProcLimit, -0.5, func(pi, pj *Panel) float64 {
		nx, ny := pi.Normal()
		return -oo2pi * k.Integral(pi.XC, pi.YC, pj, nx, ny)
	})
}

// buildInfluence fills an NxN matrix with the self influence diag on the
// diagonal. Rows are split into buckets, one go routine per bucket.
func buildInfluence(panels PanelSet, ProcLimit int, diag float64,
	cell func(pi, pj *Panel) float64) (M utils.Matrix) {
	var (
		N  = len(panels)
		NP = utils.ParallelDegree(ProcLimit, N)
		pm = utils.NewPartitionMap(NP, N)
		wg = sync.WaitGroup{}
	)
	M = utils.NewMatrix(N, N)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				row := M.DataP[i*N : (i+1)*N]
				for j, pj := range panels {
					if i == j {
						row[j] = diag
						continue
					}
					row[j] = cell(panels[i], pj)
				}
			}
		}(np)
	}
	wg.Wait()
	return
}
