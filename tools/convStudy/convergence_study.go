package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/gopanel/geometry2D"
	"github.com/notargets/gopanel/model_problems/PanelMethod2D"
)

var (
	naca     = "0012"
	alpha    = 4.
	nMin     = 20
	levels   = 4
	closedTE = true
	csvFile  string
)

func main() {
	nacaPtr := flag.String("naca", naca, "NACA 4 digit section")
	alphaPtr := flag.Float64("alpha", alpha, "angle of attack in degrees")
	nMinPtr := flag.Int("nMin", nMin, "panel count of the coarsest level, doubled at each level")
	levelsPtr := flag.Int("levels", levels, "number of levels in the study")
	closedTEPtr := flag.Bool("closedTE", closedTE, "close the trailing edge of the section")
	csvFilePtr := flag.String("csvFile", csvFile, "file to write the study to, stdout if empty")
	flag.Parse()
	naca, alpha, nMin, levels, closedTE, csvFile = *nacaPtr, *alphaPtr, *nMinPtr, *levelsPtr, *closedTEPtr, *csvFilePtr
	if nMin < PanelMethod2D.MinClosedPanels || levels < 1 {
		flag.Usage()
		os.Exit(1)
	}
	if err := run(); err != nil {
		log.WithError(err).Fatal("convergence study failed")
	}
}

func run() (err error) {
	x, y, err := geometry2D.NACA4(naca, 4*nMin<<levels, closedTE)
	if err != nil {
		return fmt.Errorf("generating section: %w", err)
	}
	if gap := geometry2D.TrailingEdgeGap(x, y); gap > 0 {
		log.WithField("gap", gap).Warn("open trailing edge, expect CL to fall as the panel count grows")
	}
	cs := NewConvergenceStudy("NACA "+naca, alpha)
	for n := nMin; n < nMin<<levels; n *= 2 {
		var sol *PanelMethod2D.Solution
		if sol, err = PanelMethod2D.Solve(x, y, n, 1, alpha); err != nil {
			return fmt.Errorf("solving with %d panels: %w", n, err)
		}
		cs.Add(n, sol.CL, sol.SourceSum, sol.Condition)
	}
	if len(csvFile) == 0 {
		return cs.WriteCSV(os.Stdout)
	}
	f, err := os.Create(csvFile)
	if err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return cs.WriteCSV(f)
}

type ConvergenceStudy struct {
	title               string
	alpha               float64
	numPanels           []int
	CL, sourceSum, cond []float64
}

func NewConvergenceStudy(title string, alpha float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		alpha: alpha,
	}
}

func (cs *ConvergenceStudy) Add(numPanels int, CL, sourceSum, cond float64) {
	cs.numPanels = append(cs.numPanels, numPanels)
	cs.CL = append(cs.CL, CL)
	cs.sourceSum = append(cs.sourceSum, sourceSum)
	cs.cond = append(cs.cond, cond)
}

// Order is the observed order of convergence of CL at level i, from the
// three levels ending at i. NaN until three levels exist or when the
// differences do not shrink.
func (cs *ConvergenceStudy) Order(i int) float64 {
	if i < 2 || i >= len(cs.CL) {
		return math.NaN()
	}
	d1 := math.Abs(cs.CL[i-1] - cs.CL[i-2])
	d2 := math.Abs(cs.CL[i] - cs.CL[i-1])
	if d2 == 0 || d1 == 0 {
		return math.NaN()
	}
	return math.Log2(d1 / d2)
}

func (cs *ConvergenceStudy) WriteCSV(w io.Writer) (err error) {
	var (
		cw = csv.NewWriter(w)
		ff = func(f float64) string { return strconv.FormatFloat(f, 'g', 10, 64) }
	)
	if err = cw.Write([]string{"title", "alpha", "panels", "CL", "sourceSum", "condition", "order"}); err != nil {
		return
	}
	for i, n := range cs.numPanels {
		rec := []string{cs.title, ff(cs.alpha), strconv.Itoa(n), ff(cs.CL[i]), ff(cs.sourceSum[i]), ff(cs.cond[i]), ""}
		if p := cs.Order(i); !math.IsNaN(p) {
			rec[6] = fmt.Sprintf("%.3f", p)
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
