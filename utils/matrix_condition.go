package utils

import (
	"gonum.org/v1/gonum/mat"
)

func (m Matrix) ConditionNumber() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDNone) {
		// If SVD fails, return a large number indicating poor conditioning
		return 1e16
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 1e16
	}
	// Singular values are in descending order
	minVal, maxVal := values[len(values)-1], values[0]
	if minVal < 1e-16 {
		return 1e16
	}
	return maxVal / minVal
}
