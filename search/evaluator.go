package search

import (
	"log/slog"

	"github.com/scitune/scitune/core/model"
	"github.com/scitune/scitune/core/parallel"
	"github.com/scitune/scitune/pkg/errors"
	scilog "github.com/scitune/scitune/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// ClassifierFactory builds a fresh classifier for one configuration. Each
// fold and the final fit get their own instance, so nothing learned leaks
// between evaluations.
type ClassifierFactory func(cfg Configuration) (model.Classifier, error)

// ScoredConfig pairs a configuration with its mean validation score.
type ScoredConfig struct {
	Config    Configuration
	MeanScore float64
}

// Evaluator scores every configuration materialized from a subgrid by
// cross-validation and reports the round's best configuration. Evaluation
// is a single blocking call: no partial results, no cancellation.
type Evaluator interface {
	Evaluate(subgrid Subgrid, X, y mat.Matrix, folds int) ([]ScoredConfig, Configuration, error)
}

// CVEvaluator evaluates subgrids with k-fold cross-validation using
// classifiers built by an injected factory. Folds of one configuration are
// scored in parallel internally; callers only see the synchronous call.
type CVEvaluator struct {
	factory ClassifierFactory
	logger  *slog.Logger
}

// EvaluatorOption configures a CVEvaluator.
type EvaluatorOption func(*CVEvaluator)

// WithEvaluatorLogger sets the evaluator's logger.
func WithEvaluatorLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *CVEvaluator) {
		e.logger = logger
	}
}

// NewCVEvaluator creates an evaluator backed by the given factory.
func NewCVEvaluator(factory ClassifierFactory, options ...EvaluatorOption) *CVEvaluator {
	e := &CVEvaluator{
		factory: factory,
		logger:  slog.Default(),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Evaluate scores every combination from the subgrid with k-fold
// cross-validation on the train partition. It returns one ScoredConfig per
// combination in materialization order and the configuration with the
// highest mean score (first one wins ties). Any model failure, including a
// panicking implementation, surfaces as a SearchEvaluationError.
func (e *CVEvaluator) Evaluate(subgrid Subgrid, X, y mat.Matrix, folds int) ([]ScoredConfig, Configuration, error) {
	if folds < 2 {
		return nil, nil, errors.NewConfigurationError("CVEvaluator", "folds must be at least 2", folds)
	}

	combos := subgrid.Combinations()
	if len(combos) == 0 {
		return nil, nil, errors.NewConfigurationError("CVEvaluator", "subgrid materialized no configurations", nil)
	}

	n, _ := X.Dims()
	if n < folds {
		return nil, nil, errors.NewConfigurationError("CVEvaluator", "fewer rows than folds", n)
	}

	cvFolds := kfoldSplit(n, folds)

	scored := make([]ScoredConfig, len(combos))
	for i, cfg := range combos {
		mean, err := e.crossValidate(cfg, X, y, cvFolds)
		if err != nil {
			return nil, nil, err
		}
		scored[i] = ScoredConfig{Config: cfg, MeanScore: mean}
		e.logger.Debug("configuration scored",
			slog.String(scilog.ComponentKey, "search"),
			slog.String(scilog.KernelKey, cfg.Kernel()),
			slog.Float64(scilog.CKey, cfg.C()),
			slog.Float64(scilog.MeanScoreKey, mean),
		)
	}

	best := scored[0]
	for _, sc := range scored[1:] {
		if sc.MeanScore > best.MeanScore {
			best = sc
		}
	}
	return scored, best.Config, nil
}

// crossValidate returns the mean validation accuracy of one configuration
// across the given folds. Folds run concurrently; each gets a fresh
// classifier instance.
func (e *CVEvaluator) crossValidate(cfg Configuration, X, y mat.Matrix, folds []cvFold) (float64, error) {
	scores := make([]float64, len(folds))

	err := parallel.ForEach(len(folds), func(i int) (foldErr error) {
		defer errors.Recover(&foldErr, "CVEvaluator.crossValidate")

		clf, err := e.factory(cfg)
		if err != nil {
			return err
		}

		XTrain, yTrain := extractSubset(X, y, folds[i].trainIndices)
		XVal, yVal := extractSubset(X, y, folds[i].testIndices)

		if err := clf.Fit(XTrain, yTrain); err != nil {
			return err
		}
		score, err := clf.Score(XVal, yVal)
		if err != nil {
			return err
		}

		scores[i] = score
		return nil
	})
	if err != nil {
		return 0, errors.NewSearchEvaluationError("cross_validation", "", err)
	}
	if err := errors.CheckNumericalStability("CVEvaluator.crossValidate", scores); err != nil {
		return 0, errors.NewSearchEvaluationError("cross_validation", "", err)
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)), nil
}
