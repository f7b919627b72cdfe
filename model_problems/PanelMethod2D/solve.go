package PanelMethod2D

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopanel/utils"
)

// Strengths holds the N panel source strengths followed by the shared
// circulation density at index N
type Strengths struct {
	utils.Vector
}

func (s Strengths) NumPanels() int { return s.Len() - 1 }

func (s Strengths) Sigma() []float64 { return s.DataP[:s.NumPanels()] }

func (s Strengths) Gamma() float64 { return s.DataP[s.NumPanels()] }

// Apply writes the source strengths onto the panels in order
func (s Strengths) Apply(panels PanelSet) {
	for i, sigma := range s.Sigma() {
		panels[i].Sigma = sigma
	}
}

// Solver holds the LU factors of an augmented matrix so several right hand
// sides can be solved against the same discretization
type Solver struct {
	lu mat.LU
	N  int
}

func NewSolver(A utils.Matrix) (sv *Solver) {
	sv = &Solver{}
	sv.N, _ = A.Dims()
	sv.lu.Factorize(A.M)
	return
}

func (sv *Solver) Solve(b utils.Vector) (s Strengths, err error) {
	x := utils.NewVector(sv.N)
	if err = sv.lu.SolveVecTo(x.V, false, b.V); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			err = fmt.Errorf("%w: condition number %8.3e", ErrSingularSystem, float64(cond))
		} else {
			err = fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
		return
	}
	if utils.IsNan(x) {
		err = fmt.Errorf("%w: solution contains non finite strengths", ErrSingularSystem)
		return
	}
	s = Strengths{x}
	return
}

func SolveSystem(sys *LinearSystem) (s Strengths, err error) {
	return NewSolver(sys.A).Solve(sys.B)
}
