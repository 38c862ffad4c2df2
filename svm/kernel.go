package svm

import (
	"math"

	"github.com/scitune/scitune/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Supported kernel families.
const (
	KernelLinear = "linear"
	KernelRBF    = "rbf"
)

// kernelFunc computes the kernel value between two feature rows.
type kernelFunc func(a, b []float64) float64

func linearKernel(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}

func rbfKernel(gamma float64) kernelFunc {
	return func(a, b []float64) float64 {
		var sq float64
		for i := range a {
			d := a[i] - b[i]
			sq += d * d
		}
		return math.Exp(-gamma * sq)
	}
}

func kernelFor(kernel string, gamma float64) (kernelFunc, error) {
	switch kernel {
	case KernelLinear:
		return linearKernel, nil
	case KernelRBF:
		return rbfKernel(gamma), nil
	default:
		return nil, errors.NewValueError("KernelClassifier", "unknown kernel: "+kernel)
	}
}

// kernelMatrix computes the m×n Gram matrix between the rows of A and B.
func kernelMatrix(k kernelFunc, A, B *mat.Dense) *mat.Dense {
	m, _ := A.Dims()
	n, _ := B.Dims()

	K := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		ai := A.RawRowView(i)
		for j := 0; j < n; j++ {
			K.Set(i, j, k(ai, B.RawRowView(j)))
		}
	}
	return K
}
