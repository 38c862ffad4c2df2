package search

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/scitune/scitune/metrics"
	"github.com/scitune/scitune/pkg/errors"
	scilog "github.com/scitune/scitune/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// trialPhase tracks a trial's progress through its linear lifecycle.
// There are no cycles and no retries: a failure in any phase aborts the run.
type trialPhase int

const (
	phaseInit trialPhase = iota
	phaseSplit
	phaseSearching
	phaseFinalFit
	phaseEvaluated
	phaseDone
)

func (p trialPhase) String() string {
	switch p {
	case phaseInit:
		return "init"
	case phaseSplit:
		return "split"
	case phaseSearching:
		return "searching"
	case phaseFinalFit:
		return "final_fit"
	case phaseEvaluated:
		return "evaluated"
	case phaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// TrialResult is the immutable outcome of one partition's trial.
type TrialResult struct {
	// Partition is the partition id, "S1".."S10".
	Partition string

	// Config is the configuration selected for the final fit.
	Config Configuration

	// Accuracy is the exact-match rate on the holdout test set, in [0,1].
	Accuracy float64

	// Convergence is the partition's best-score-so-far trace.
	Convergence []float64
}

// TrialRunner executes one partition's full search-and-evaluate lifecycle:
// split, NumRounds search rounds feeding the convergence tracker, a fresh
// final fit with the last round's best configuration, and a holdout
// evaluation.
type TrialRunner struct {
	index        int
	grid         ParameterGrid
	evaluator    Evaluator
	factory      ClassifierFactory
	sampler      *SubgridSampler
	testFraction float64
	rounds       int
	folds        int
	subgridDraw  int
	logger       *slog.Logger

	phase trialPhase
}

// RunnerOption configures a TrialRunner.
type RunnerOption func(*TrialRunner)

// WithSampler replaces the runner's subgrid sampler. Tests use this to pin
// the sampled subgrids with a fixed random source.
func WithSampler(sampler *SubgridSampler) RunnerOption {
	return func(r *TrialRunner) {
		r.sampler = sampler
	}
}

// WithTestFraction overrides the holdout share of the partition split.
func WithTestFraction(fraction float64) RunnerOption {
	return func(r *TrialRunner) {
		r.testFraction = fraction
	}
}

// WithRounds overrides the number of search rounds.
func WithRounds(rounds int) RunnerOption {
	return func(r *TrialRunner) {
		r.rounds = rounds
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *TrialRunner) {
		r.logger = logger
	}
}

// NewTrialRunner creates a runner for partition index (0-based).
func NewTrialRunner(index int, grid ParameterGrid, evaluator Evaluator, factory ClassifierFactory, options ...RunnerOption) *TrialRunner {
	r := &TrialRunner{
		index:        index,
		grid:         grid,
		evaluator:    evaluator,
		factory:      factory,
		sampler:      NewSubgridSampler(nil),
		testFraction: DefaultTestFraction,
		rounds:       NumRounds,
		folds:        CVFolds,
		subgridDraw:  SubgridDraw,
		logger:       slog.Default(),
		phase:        phaseInit,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// PartitionID returns the 1-based partition id, e.g. "S1".
func (r *TrialRunner) PartitionID() string {
	return fmt.Sprintf("S%d", r.index+1)
}

// Run executes the trial and returns its result. A SearchEvaluationError
// from any round or from the final fit is fatal: no partial result is
// emitted.
func (r *TrialRunner) Run(X, y mat.Matrix) (*TrialResult, error) {
	if err := r.grid.Validate(); err != nil {
		return nil, err
	}

	partition := r.PartitionID()
	logger := r.logger.With(
		slog.String(scilog.ComponentKey, "search"),
		slog.String(scilog.PartitionKey, partition),
	)

	r.phase = phaseSplit
	XTrain, yTrain, XTest, yTest, err := TrainTestSplit(X, y, r.index, r.testFraction)
	if err != nil {
		return nil, err
	}
	nTrain, _ := XTrain.Dims()
	nTest, _ := XTest.Dims()
	logger.Debug("partition split",
		slog.String(scilog.PhaseKey, r.phase.String()),
		slog.Int("train_rows", nTrain),
		slog.Int("test_rows", nTest),
	)

	r.phase = phaseSearching
	tracker := NewConvergenceTracker()
	var selected Configuration

	for round := 1; round <= r.rounds; round++ {
		subgrid, err := r.sampler.Sample(r.grid, r.subgridDraw)
		if err != nil {
			return nil, err
		}

		scored, best, err := r.evaluator.Evaluate(subgrid, XTrain, yTrain, r.folds)
		if err != nil {
			return nil, annotatePartition(err, partition)
		}

		// The round's top scores, best first, feed the trace.
		roundScores := make([]float64, len(scored))
		for i, sc := range scored {
			roundScores[i] = sc.MeanScore
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(roundScores)))
		tracker.Record(roundScores)

		// Deliberately keep only the latest round's winner: the selected
		// configuration is whatever the final round judged best, not the
		// best across all rounds.
		selected = best

		logger.Debug("round evaluated",
			slog.String(scilog.PhaseKey, r.phase.String()),
			slog.Int(scilog.RoundKey, round),
			slog.Int("configurations", len(scored)),
			slog.Float64(scilog.BestScoreKey, tracker.Best()),
		)
	}

	r.phase = phaseFinalFit
	clf, err := r.factory(selected)
	if err != nil {
		return nil, errors.NewSearchEvaluationError("final_fit", partition, err)
	}
	if err := clf.Fit(XTrain, yTrain); err != nil {
		return nil, errors.NewSearchEvaluationError("final_fit", partition, err)
	}

	r.phase = phaseEvaluated
	pred, err := clf.Predict(XTest)
	if err != nil {
		return nil, errors.NewSearchEvaluationError("final_fit", partition, err)
	}
	accuracy, err := metrics.AccuracyMatrix(yTest, pred)
	if err != nil {
		return nil, err
	}

	r.phase = phaseDone
	logger.Info("trial finished",
		slog.String(scilog.PhaseKey, r.phase.String()),
		slog.Float64(scilog.AccuracyKey, accuracy),
		slog.String("configuration", selected.String()),
	)

	return &TrialResult{
		Partition:   partition,
		Config:      selected.Clone(),
		Accuracy:    accuracy,
		Convergence: tracker.Trace(),
	}, nil
}

// annotatePartition stamps the partition id onto a SearchEvaluationError
// raised below the runner, where the partition is not known.
func annotatePartition(err error, partition string) error {
	var evalErr *errors.SearchEvaluationError
	if errors.As(err, &evalErr) && evalErr.Partition == "" {
		return errors.NewSearchEvaluationError(evalErr.Phase, partition, evalErr.Err)
	}
	return err
}
