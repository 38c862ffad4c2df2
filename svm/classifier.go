// Package svm implements a kernel classifier for the model-selection harness.
//
// KernelClassifier is a one-vs-rest regularized kernel least-squares
// classifier. It exposes the same hyperparameter surface as a classic SVC
// (kernel family, inverse regularization strength C, RBF width gamma) and
// satisfies the core/model.Classifier capability interface, which is all the
// search core consumes.
package svm

import (
	"fmt"
	"sort"

	"github.com/scitune/scitune/core/model"
	"github.com/scitune/scitune/metrics"
	"github.com/scitune/scitune/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// KernelClassifier is a kernel classifier with SVC-style hyperparameters.
type KernelClassifier struct {
	state *model.StateManager

	// Hyperparameters
	kernel string  // Kernel family: "linear" or "rbf"
	c      float64 // Inverse regularization strength
	gamma  float64 // RBF kernel width (ignored for linear)

	// Learned parameters
	xSupport *mat.Dense // Training rows retained for kernel expansion
	alpha    *mat.Dense // Dual coefficients (n_samples x n_classes)
	classes_ []int      // Unique class labels in code order
}

// Option configures a KernelClassifier.
type Option func(*KernelClassifier)

// WithKernel sets the kernel family ("linear" or "rbf").
func WithKernel(kernel string) Option {
	return func(k *KernelClassifier) {
		k.kernel = kernel
	}
}

// WithC sets the inverse regularization strength. Larger C fits the
// training data more tightly.
func WithC(c float64) Option {
	return func(k *KernelClassifier) {
		k.c = c
	}
}

// WithGamma sets the RBF kernel width.
func WithGamma(gamma float64) Option {
	return func(k *KernelClassifier) {
		k.gamma = gamma
	}
}

// NewKernelClassifier creates a classifier with rbf kernel, C=1, gamma=0.1
// unless overridden by options.
func NewKernelClassifier(options ...Option) *KernelClassifier {
	k := &KernelClassifier{
		state:  model.NewStateManager(),
		kernel: KernelRBF,
		c:      1.0,
		gamma:  0.1,
	}
	for _, opt := range options {
		opt(k)
	}
	return k
}

// Fit trains the classifier on X (n_samples x n_features) and integer class
// labels y (n_samples x 1, float64-encoded codes).
//
// Training solves (K + I/C) A = Y for the dual coefficients A, where K is
// the training Gram matrix and Y is the one-hot class indicator matrix.
func (k *KernelClassifier) Fit(X, y mat.Matrix) error {
	n, d := X.Dims()
	ry, cy := y.Dims()
	if n == 0 || d == 0 {
		return errors.Wrap(errors.ErrEmptyData, "KernelClassifier.Fit")
	}
	if ry != n {
		return errors.NewDimensionError("KernelClassifier.Fit", n, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("KernelClassifier.Fit", "y must be a column vector (n×1 matrix)")
	}
	if k.c <= 0 {
		return errors.NewValueError("KernelClassifier.Fit", fmt.Sprintf("C must be positive, got %g", k.c))
	}
	if err := errors.CheckMatrix("KernelClassifier.Fit", X, n, d); err != nil {
		return err
	}

	kernel, err := kernelFor(k.kernel, k.gamma)
	if err != nil {
		return err
	}

	// Collect the class labels in code order.
	seen := make(map[int]struct{})
	for i := 0; i < n; i++ {
		seen[int(y.At(i, 0))] = struct{}{}
	}
	k.classes_ = make([]int, 0, len(seen))
	for class := range seen {
		k.classes_ = append(k.classes_, class)
	}
	sort.Ints(k.classes_)

	classIndex := make(map[int]int, len(k.classes_))
	for idx, class := range k.classes_ {
		classIndex[class] = idx
	}

	// One-hot indicator targets.
	Y := mat.NewDense(n, len(k.classes_), nil)
	for i := 0; i < n; i++ {
		Y.Set(i, classIndex[int(y.At(i, 0))], 1)
	}

	k.xSupport = mat.DenseCopyOf(X)

	// Regularized Gram matrix: K + I/C. With a positive ridge term the
	// matrix is symmetric positive definite, so Cholesky applies.
	K := kernelMatrix(kernel, k.xSupport, k.xSupport)
	lambda := 1 / k.c
	gram := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := K.At(i, j)
			if i == j {
				v += lambda
			}
			gram.SetSym(i, j, v)
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(gram); !ok {
		return errors.Wrap(errors.ErrSingularKernel, "KernelClassifier.Fit")
	}

	k.alpha = mat.NewDense(n, len(k.classes_), nil)
	if err := chol.SolveTo(k.alpha, Y); err != nil {
		return errors.Wrap(err, "KernelClassifier.Fit: solving dual system")
	}

	k.state.SetDimensions(d, n)
	k.state.SetFitted()
	return nil
}

// Predict returns the predicted class labels for X as an m×1 matrix.
func (k *KernelClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := k.state.RequireFitted("KernelClassifier", "Predict"); err != nil {
		return nil, err
	}

	m, d := X.Dims()
	nFeatures, _ := k.state.GetDimensions()
	if d != nFeatures {
		return nil, errors.NewDimensionError("KernelClassifier.Predict", nFeatures, d, 1)
	}

	kernel, err := kernelFor(k.kernel, k.gamma)
	if err != nil {
		return nil, err
	}

	// Decision scores: K(X, Xtrain) * alpha, one column per class.
	Ktest := kernelMatrix(kernel, mat.DenseCopyOf(X), k.xSupport)
	var scores mat.Dense
	scores.Mul(Ktest, k.alpha)

	pred := mat.NewDense(m, 1, nil)
	for i := 0; i < m; i++ {
		bestIdx := 0
		bestScore := scores.At(i, 0)
		for j := 1; j < len(k.classes_); j++ {
			if s := scores.At(i, j); s > bestScore {
				bestScore = s
				bestIdx = j
			}
		}
		pred.Set(i, 0, float64(k.classes_[bestIdx]))
	}

	return pred, nil
}

// Score returns the mean accuracy of Predict(X) against y.
func (k *KernelClassifier) Score(X, y mat.Matrix) (float64, error) {
	pred, err := k.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, pred)
}

// Classes returns the unique class labels seen during fitting.
func (k *KernelClassifier) Classes() []int {
	return k.classes_
}

// GetParams returns the model's hyperparameters.
func (k *KernelClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"kernel": k.kernel,
		"C":      k.c,
		"gamma":  k.gamma,
	}
}

// String returns a string representation of the classifier.
func (k *KernelClassifier) String() string {
	if k.kernel == KernelLinear {
		return fmt.Sprintf("KernelClassifier(kernel=%s, C=%g)", k.kernel, k.c)
	}
	return fmt.Sprintf("KernelClassifier(kernel=%s, C=%g, gamma=%g)", k.kernel, k.c, k.gamma)
}
