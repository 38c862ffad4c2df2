// Package model defines the capability interfaces the search core consumes.
// The harness never binds to a concrete learning algorithm: the trial runner
// and the cross-validation evaluator accept anything satisfying Classifier,
// so tests can inject stubs and the driver can inject the svm implementation.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Scorer is the interface for models that can compute an evaluation score.
type Scorer interface {
	// Score returns the mean accuracy of the prediction on X against y.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Classifier combines the capabilities the harness needs from a model:
// fit on a train partition, predict labels, and report the classes seen.
type Classifier interface {
	Fitter
	Predictor
	Scorer

	// Classes returns the unique integer class labels seen during fitting.
	Classes() []int
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
