package search

import (
	"github.com/scitune/scitune/core/model"
	"gonum.org/v1/gonum/mat"
)

// stubClassifier is a canned model.Classifier for exercising the core
// without any real learning.
type stubClassifier struct {
	fitErr     error
	scoreValue float64
	scoreErr   error
	predictFn  func(X mat.Matrix) (mat.Matrix, error)
}

func (s *stubClassifier) Fit(X, y mat.Matrix) error {
	return s.fitErr
}

func (s *stubClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if s.predictFn != nil {
		return s.predictFn(X)
	}
	r, _ := X.Dims()
	return mat.NewDense(r, 1, nil), nil
}

func (s *stubClassifier) Score(X, y mat.Matrix) (float64, error) {
	if s.scoreErr != nil {
		return 0, s.scoreErr
	}
	return s.scoreValue, nil
}

func (s *stubClassifier) Classes() []int {
	return []int{0, 1}
}

// stubFactory returns the same stub for every configuration.
func stubFactory(clf *stubClassifier) ClassifierFactory {
	return func(Configuration) (model.Classifier, error) {
		return clf, nil
	}
}

// stubEvaluator returns canned round results in sequence, repeating the
// last one when calls run past the script.
type stubEvaluator struct {
	rounds []stubRound
	calls  int
}

type stubRound struct {
	scored []ScoredConfig
	best   Configuration
	err    error
}

func (e *stubEvaluator) Evaluate(subgrid Subgrid, X, y mat.Matrix, folds int) ([]ScoredConfig, Configuration, error) {
	round := e.rounds[min(e.calls, len(e.rounds)-1)]
	e.calls++
	if round.err != nil {
		return nil, nil, round.err
	}
	return round.scored, round.best, nil
}

// tinyDataset returns a 24-row, 2-feature dataset with two classes.
func tinyDataset() (*mat.Dense, *mat.Dense) {
	n := 24
	X := mat.NewDense(n, 2, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		X.Set(i, 1, float64(i%5))
		y.Set(i, 0, float64(i%2))
	}
	return X, y
}
