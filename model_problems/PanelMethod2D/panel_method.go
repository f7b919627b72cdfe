package PanelMethod2D

import (
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/gopanel/utils"
)

type Options struct {
	Kernel       Kernel  // Defaults to NewDefaultKernel()
	ProcLimit    int     // Number of go routines for assembly, 0 uses all CPUs
	SourceSumTol float64 // Accuracy warning threshold for the source sum, 0 disables
	Verbose      bool
}

type PanelMethod struct {
	// Input parameters
	X, Y           []float64
	NumPanels      int
	UInf           float64
	Kernel         Kernel
	ParallelDegree int
	SourceSumTol   float64
	Panels         PanelSet
	verbose        bool
	// Geometry dependent, shared by every angle of attack
	im     *InfluenceMatrices
	solver *Solver
	A      utils.Matrix
}

type Solution struct {
	FS        *FreeStream
	Panels    PanelSet
	Strengths Strengths
	Gamma     float64
	CL        float64
	Chord     float64
	SourceSum float64
	Condition float64
	Warnings  []AccuracyWarning
	Elapsed   time.Duration
}

// NewPanelMethod discretizes the boundary (x,y) into N panels and assembles
// the augmented matrix, which depends only on the geometry
func NewPanelMethod(x, y []float64, N int, UInf float64, opts Options) (pm *PanelMethod, err error) {
	if !(UInf > 0) || math.IsInf(UInf, 0) {
		err = fmt.Errorf("%w: freestream speed must be positive, have %v", ErrInvalidConfiguration, UInf)
		return
	}
	if opts.SourceSumTol < 0 || math.IsNaN(opts.SourceSumTol) {
		err = fmt.Errorf("%w: source sum tolerance must be non negative, have %v",
			ErrInvalidConfiguration, opts.SourceSumTol)
		return
	}
	pm = &PanelMethod{
		X:              x,
		Y:              y,
		NumPanels:      N,
		UInf:           UInf,
		Kernel:         opts.Kernel,
		ParallelDegree: utils.ParallelDegree(opts.ProcLimit, N),
		SourceSumTol:   opts.SourceSumTol,
		verbose:        opts.Verbose,
	}
	if pm.Kernel == nil {
		pm.Kernel = NewDefaultKernel()
	}
	start := time.Now()
	if pm.Panels, err = DefinePanels(x, y, N); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"panels": N, "elapsed": time.Since(start)}).Debug("discretized boundary")

	start = time.Now()
	pm.im = NewInfluenceMatrices(pm.Panels, pm.Kernel, pm.ParallelDegree)
	log.WithFields(log.Fields{"goroutines": pm.ParallelDegree, "elapsed": time.Since(start)}).
		Debug("assembled influence matrices")

	pm.A = BuildSingularityMatrix(pm.im)
	pm.A.SetReadOnly("Singularity")
	pm.solver = NewSolver(pm.A)
	return
}

func (pm *PanelMethod) InfluenceMatrices() *InfluenceMatrices { return pm.im }

// Solve computes the surface solution at one angle of attack in degrees.
// On failure no partial solution is returned.
func (pm *PanelMethod) Solve(AlphaDegrees float64) (sol *Solution, err error) {
	var (
		fs     *FreeStream
		s      Strengths
		start  = time.Now()
		panels = pm.Panels.Copy()
	)
	if fs, err = NewFreeStream(pm.UInf, AlphaDegrees); err != nil {
		return
	}
	if s, err = pm.solver.Solve(BuildFreestreamRHS(panels, fs)); err != nil {
		return nil, fmt.Errorf("alpha = %v: %w", AlphaDegrees, err)
	}
	s.Apply(panels)
	ComputeTangentialVelocity(panels, fs, s, pm.im)
	ComputePressureCoefficient(panels, fs)
	sol = &Solution{
		FS:        fs,
		Panels:    panels,
		Strengths: s,
		Gamma:     s.Gamma(),
		CL:        LiftCoefficient(panels, fs, s.Gamma()),
		Chord:     ChordLength(panels),
		SourceSum: SourceSumDiagnostic(panels),
		Elapsed:   time.Since(start),
	}
	if pm.SourceSumTol > 0 && math.Abs(sol.SourceSum) > pm.SourceSumTol {
		w := AccuracyWarning{SourceSum: sol.SourceSum, Tolerance: pm.SourceSumTol, NumPanels: len(panels)}
		sol.Warnings = append(sol.Warnings, w)
		log.WithField("alpha", AlphaDegrees).Warn(w.Error())
	}
	if pm.verbose {
		log.WithFields(log.Fields{
			"alpha": AlphaDegrees, "CL": sol.CL, "gamma": sol.Gamma, "sourceSum": sol.SourceSum,
		}).Info("solved")
	}
	return
}

// Sweep solves each angle of attack against the same factorized system
func (pm *PanelMethod) Sweep(alphas []float64) (sols []*Solution, err error) {
	sols = make([]*Solution, 0, len(alphas))
	for _, alpha := range alphas {
		var sol *Solution
		if sol, err = pm.Solve(alpha); err != nil {
			return nil, err
		}
		sols = append(sols, sol)
	}
	return
}

// ConditionNumber of the augmented matrix, estimated from its singular values
func (pm *PanelMethod) ConditionNumber() float64 { return pm.A.ConditionNumber() }

// Solve runs the full pipeline for a single case
func Solve(x, y []float64, N int, UInf, AlphaDegrees float64) (sol *Solution, err error) {
	var pm *PanelMethod
	if pm, err = NewPanelMethod(x, y, N, UInf, Options{}); err != nil {
		return
	}
	if sol, err = pm.Solve(AlphaDegrees); err != nil {
		return
	}
	sol.Condition = pm.ConditionNumber()
	return
}

func (sol *Solution) Print() {
	fmt.Printf("Angle of Attack = %8.4f deg, UInf = %8.4f\n", sol.FS.AlphaDegrees(), sol.FS.UInf)
	fmt.Printf("Panels = %d, Chord = %8.5f\n", len(sol.Panels), sol.Chord)
	fmt.Printf("Gamma = %12.8f, CL = %10.6f\n", sol.Gamma, sol.CL)
	fmt.Printf("Source Sum = %12.5e", sol.SourceSum)
	if sol.Condition != 0 {
		fmt.Printf(", Condition Number = %10.3e", sol.Condition)
	}
	fmt.Printf("\n")
	for _, w := range sol.Warnings {
		fmt.Printf("Warning: %s\n", w.Error())
	}
}

// PrintSurface writes the per panel solution as a table
func (sol *Solution) PrintSurface() {
	fmt.Printf("%5s %6s %12s %12s %12s %12s %12s\n", "i", "side", "xc", "yc", "sigma", "vt", "cp")
	for i, p := range sol.Panels {
		fmt.Printf("%5d %6s %12.6f %12.6f %12.6f %12.6f %12.6f\n", i, p.Side, p.XC, p.YC, p.Sigma, p.Vt, p.Cp)
	}
}
