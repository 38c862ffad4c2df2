package search

import (
	"fmt"
	"log/slog"

	"github.com/scitune/scitune/metrics"
	"github.com/scitune/scitune/pkg/errors"
	scilog "github.com/scitune/scitune/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// SummaryRow is one partition's line in the comparison report.
type SummaryRow struct {
	Partition     string
	Accuracy      string
	Configuration string
}

// DatasetSummary holds the descriptive statistics of the input data:
// per-class sample counts and the feature-to-target correlation ranking.
type DatasetSummary struct {
	ClassCounts map[int]int
	Correlation []metrics.FeatureCorrelation
}

// ResultAggregator drives the partitions sequentially and owns the ordered
// collection of their results.
type ResultAggregator struct {
	grid         ParameterGrid
	evaluator    Evaluator
	factory      ClassifierFactory
	partitions   int
	testFraction float64
	runnerOpts   []RunnerOption
	logger       *slog.Logger

	results []*TrialResult
}

// AggregatorOption configures a ResultAggregator.
type AggregatorOption func(*ResultAggregator)

// WithPartitions overrides the number of partitions (tests only; a full
// run always uses NumPartitions).
func WithPartitions(n int) AggregatorOption {
	return func(a *ResultAggregator) {
		a.partitions = n
	}
}

// WithAggregatorTestFraction sets the holdout fraction passed to each runner.
func WithAggregatorTestFraction(fraction float64) AggregatorOption {
	return func(a *ResultAggregator) {
		a.testFraction = fraction
	}
}

// WithRunnerOptions appends options forwarded to every TrialRunner.
func WithRunnerOptions(opts ...RunnerOption) AggregatorOption {
	return func(a *ResultAggregator) {
		a.runnerOpts = append(a.runnerOpts, opts...)
	}
}

// WithAggregatorLogger sets the aggregator's logger.
func WithAggregatorLogger(logger *slog.Logger) AggregatorOption {
	return func(a *ResultAggregator) {
		a.logger = logger
	}
}

// NewResultAggregator creates an aggregator for the given search space and
// injected model boundary.
func NewResultAggregator(grid ParameterGrid, evaluator Evaluator, factory ClassifierFactory, options ...AggregatorOption) *ResultAggregator {
	a := &ResultAggregator{
		grid:         grid,
		evaluator:    evaluator,
		factory:      factory,
		partitions:   NumPartitions,
		testFraction: DefaultTestFraction,
		logger:       slog.Default(),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Run executes every partition's trial sequentially. The first error aborts
// the run; results from earlier partitions are discarded, and no summary is
// available afterwards.
func (a *ResultAggregator) Run(X, y mat.Matrix) error {
	if err := a.grid.Validate(); err != nil {
		return err
	}

	results := make([]*TrialResult, 0, a.partitions)
	for i := 0; i < a.partitions; i++ {
		opts := append([]RunnerOption{
			WithTestFraction(a.testFraction),
			WithLogger(a.logger),
		}, a.runnerOpts...)
		runner := NewTrialRunner(i, a.grid, a.evaluator, a.factory, opts...)

		result, err := runner.Run(X, y)
		if err != nil {
			a.results = nil
			return err
		}
		results = append(results, result)

		a.logger.Info("partition complete",
			slog.String(scilog.ComponentKey, "search"),
			slog.String(scilog.PartitionKey, result.Partition),
			slog.Float64(scilog.AccuracyKey, result.Accuracy),
			slog.String("configuration", result.Config.String()),
		)
	}

	a.results = results
	return nil
}

// Results returns the ordered trial results, one per partition.
func (a *ResultAggregator) Results() []*TrialResult {
	return a.results
}

// Best returns the partition with the highest holdout accuracy. Ties
// resolve to the lowest partition index.
func (a *ResultAggregator) Best() (*TrialResult, error) {
	if len(a.results) == 0 {
		return nil, errors.NewValueError("ResultAggregator.Best", "no results: run the aggregator first")
	}

	best := a.results[0]
	for _, r := range a.results[1:] {
		if r.Accuracy > best.Accuracy {
			best = r
		}
	}
	return best, nil
}

// SummaryRows formats one row per partition: accuracy to 4 decimal places
// and the human-readable configuration string.
func (a *ResultAggregator) SummaryRows() []SummaryRow {
	rows := make([]SummaryRow, len(a.results))
	for i, r := range a.results {
		rows[i] = SummaryRow{
			Partition:     r.Partition,
			Accuracy:      fmt.Sprintf("%.4f", r.Accuracy),
			Configuration: r.Config.String(),
		}
	}
	return rows
}

// WinningConvergence returns the convergence trace of the best partition
// for charting.
func (a *ResultAggregator) WinningConvergence() ([]float64, error) {
	best, err := a.Best()
	if err != nil {
		return nil, err
	}
	return best.Convergence, nil
}

// DescribeDataset computes the run's descriptive statistics over the
// prepared feature matrix and encoded labels.
func DescribeDataset(X, y mat.Matrix) (*DatasetSummary, error) {
	counts, err := metrics.ClassCounts(y)
	if err != nil {
		return nil, err
	}
	ranking, err := metrics.CorrelationRanking(X, y)
	if err != nil {
		return nil, err
	}
	return &DatasetSummary{ClassCounts: counts, Correlation: ranking}, nil
}
