//go:build netlib && cgo
// +build netlib,cgo

package utils

/*
#cgo CFLAGS: -march=native -mavx -mavx2
#cgo LDFLAGS: -lopenblas -llapacke -lgfortran -lm -lpthread
#include <cblas.h>
#include <lapacke.h>
*/
import "C"

import (
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// Build with -tags netlib to route the dense LU solve and influence matrix
// products through OpenBLAS.
func init() {
	blas64.Use(netblas.Implementation{})
	log.Debug("Using netlib to accelerate BLAS")
}
