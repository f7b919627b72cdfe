package PanelMethod2D

import (
	"fmt"
	"math"
)

type FreeStream struct {
	UInf  float64
	Alpha float64 // Angle of attack in radians
}

// NewFreeStream takes the angle of attack in degrees
func NewFreeStream(UInf, AlphaDegrees float64) (fs *FreeStream, err error) {
	if !(UInf > 0) || math.IsInf(UInf, 0) {
		err = fmt.Errorf("%w: freestream speed must be positive, have %v", ErrInvalidConfiguration, UInf)
		return
	}
	fs = &FreeStream{
		UInf:  UInf,
		Alpha: AlphaDegrees * math.Pi / 180.,
	}
	return
}

func (fs *FreeStream) AlphaDegrees() float64 { return fs.Alpha * 180. / math.Pi }

// NormalComponent and TangentialComponent project the freestream onto a
// panel with orientation beta
func (fs *FreeStream) NormalComponent(beta float64) float64 {
	return fs.UInf * math.Cos(fs.Alpha-beta)
}

func (fs *FreeStream) TangentialComponent(beta float64) float64 {
	return fs.UInf * math.Sin(fs.Alpha-beta)
}
