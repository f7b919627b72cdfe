package PanelMethod2D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gopanel/utils"
)

/*
	The boundary is discretized by projecting cosine spaced abscissae onto it:
		- A circle is drawn around the body using the x extent as its diameter
		- N+1 equally spaced angles on the circle give the panel end abscissae
		- Each abscissa is projected onto the boundary polyline, found by a
		  forward scan for the segment that brackets it. Ends on the first
		  half of the circle are searched for before the minimum abscissa of
		  the boundary, ends on the second half after it.
	This clusters panels near the leading and trailing edges.
*/

// MinClosedPanels is the smallest closed discretization with at least two
// panels on each surface
const MinClosedPanels = 4

// DefinePanels returns N panels whose endpoints form a closed polyline on
// the boundary (x,y). The boundary must be ordered, with each half monotonic
// in x, e.g. trailing edge -> upper surface -> leading edge -> lower surface.
func DefinePanels(x, y []float64, N int) (panels PanelSet, err error) {
	var (
		xEnds, yEnds []float64
	)
	if xEnds, yEnds, err = projectEndpoints(x, y, N, 2*math.Pi, true); err != nil {
		return
	}
	return panelsFromEnds(xEnds, yEnds)
}

// DefineHalfPanels samples the angles on [0,π], producing N panels running
// from the maximum to the minimum abscissa along the first half of the
// boundary. The result is an open polyline, the other half is its mirror.
func DefineHalfPanels(x, y []float64, N int) (panels PanelSet, err error) {
	var (
		xEnds, yEnds []float64
	)
	if xEnds, yEnds, err = projectEndpoints(x, y, N, math.Pi, false); err != nil {
		return
	}
	return panelsFromEnds(xEnds, yEnds)
}

func panelsFromEnds(xEnds, yEnds []float64) (panels PanelSet, err error) {
	var (
		N      = len(xEnds) - 1
		minLen = utils.NODETOL * (floats.Max(xEnds) - floats.Min(xEnds))
	)
	panels = make(PanelSet, N)
	for i := 0; i < N; i++ {
		if panels[i], err = NewPanel(xEnds[i], yEnds[i], xEnds[i+1], yEnds[i+1]); err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		if panels[i].Length < minLen {
			return nil, fmt.Errorf("%w: panel %d has length %v, below %v",
				ErrInvalidGeometry, i, panels[i].Length, minLen)
		}
	}
	return
}

func projectEndpoints(x, y []float64, N int, thetaMax float64, closed bool) (xEnds, yEnds []float64, err error) {
	if N <= 0 {
		err = fmt.Errorf("%w: number of panels must be positive, have %d", ErrInvalidConfiguration, N)
		return
	}
	if closed && N < MinClosedPanels {
		err = fmt.Errorf("%w: a closed body needs at least %d panels, have %d",
			ErrInvalidConfiguration, MinClosedPanels, N)
		return
	}
	if err = checkBoundary(x, y); err != nil {
		return
	}
	var (
		xMin, xMax = floats.Min(x), floats.Max(x)
		R          = 0.5 * (xMax - xMin)
		xCenter    = 0.5 * (xMax + xMin)
		theta      = utils.NewVector(N+1).Linspace(0, thetaMax)
		// Close the boundary by repeating its first point
		xB = append(append(make([]float64, 0, len(x)+1), x...), x[0])
		yB = append(append(make([]float64, 0, len(y)+1), y...), y[0])
		// Segments [0,iLE) hold the first surface, [iLE,len(x)) the second
		iLE = floats.MinIdx(x)
		I   int
	)
	xEnds, yEnds = make([]float64, N+1), make([]float64, N+1)
	for i, th := range theta.DataP {
		// Clamp so the circle extremes land exactly on the boundary extremes
		xEnds[i] = math.Max(xMin, math.Min(xMax, xCenter+R*math.Cos(th)))
	}
	nProject := N + 1
	if closed {
		nProject = N
	}
	for i := 0; i < nProject; i++ {
		var (
			xe     = xEnds[i]
			lo, hi = 0, iLE
		)
		if closed && 2*i > N {
			lo, hi = iLE, len(xB)-1
		}
		I = max(I, lo)
		for I < hi {
			if (xB[I] <= xe && xe <= xB[I+1]) || (xB[I+1] <= xe && xe <= xB[I]) {
				break
			}
			I++
		}
		if I >= hi {
			err = fmt.Errorf("%w: no boundary segment brackets x = %v for panel end %d, the boundary must be monotonic in x on each surface",
				ErrInvalidGeometry, xe, i)
			return
		}
		dx := xB[I+1] - xB[I]
		if dx == 0 {
			yEnds[i] = yB[I]
		} else {
			yEnds[i] = yB[I] + (yB[I+1]-yB[I])/dx*(xe-xB[I])
		}
	}
	if closed {
		xEnds[N], yEnds[N] = xEnds[0], yEnds[0]
	}
	return
}

func checkBoundary(x, y []float64) (err error) {
	if len(x) != len(y) {
		return fmt.Errorf("%w: coordinate lengths differ, len(x) = %d, len(y) = %d",
			ErrInvalidGeometry, len(x), len(y))
	}
	if utils.IsNan(x) || utils.IsNan(y) {
		return fmt.Errorf("%w: boundary contains non finite coordinates", ErrInvalidGeometry)
	}
	var (
		distinct [][2]float64
	)
	for i := range x {
		isNew := true
		for _, d := range distinct {
			if math.Abs(x[i]-d[0]) < utils.NODETOL && math.Abs(y[i]-d[1]) < utils.NODETOL {
				isNew = false
				break
			}
		}
		if isNew {
			if distinct = append(distinct, [2]float64{x[i], y[i]}); len(distinct) == 3 {
				return
			}
		}
	}
	return fmt.Errorf("%w: need at least 3 distinct boundary points, have %d",
		ErrInvalidGeometry, len(distinct))
}
