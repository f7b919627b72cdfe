package PanelMethod2D

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry covers too few boundary points, a boundary that can
	// not be projected onto and degenerate panels
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrInvalidConfiguration covers non-positive panel counts and freestream speeds
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrSingularSystem is returned when the augmented system can not be solved
	ErrSingularSystem = errors.New("singular system")
)

// AccuracyWarning reports a source strength sum that exceeds the caller's
// tolerance. It is collected on the Solution and never returned as the
// error of a solve.
type AccuracyWarning struct {
	SourceSum, Tolerance float64
	NumPanels            int
}

func (w AccuracyWarning) Error() string {
	return fmt.Sprintf("source strength sum %8.3e exceeds tolerance %8.3e with %d panels",
		w.SourceSum, w.Tolerance, w.NumPanels)
}
