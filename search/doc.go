// Package search implements the model-selection core: repeated train/test
// partitioning, budgeted randomized subgrid search with cross-validation,
// capped monotonic convergence tracking, and cross-partition aggregation.
//
// A run processes NumPartitions independent partitions sequentially. Each
// partition executes NumRounds sampling/evaluation rounds: a small subgrid
// of the parameter space is drawn, every materialized configuration is
// scored by k-fold cross-validation, and the round's top scores feed the
// partition's convergence trace. The configuration chosen for a partition is
// the best configuration of its final round, which is then refit on the full
// train partition and scored on the holdout.
//
// The underlying classifier is injected as a ClassifierFactory, so the core
// has no dependency on any concrete learning algorithm.
package search

// Fixed budgets of a run. The trace cap and the round count are independent:
// rounds past the cap still sample and evaluate, they just no longer extend
// the trace.
const (
	// NumPartitions is the number of independent train/test partitions.
	NumPartitions = 10

	// NumRounds is the number of sampling/evaluation rounds per partition.
	NumRounds = 25

	// TraceCap is the maximum length of a partition's convergence trace.
	TraceCap = 100

	// RoundAdmissions is how many of a round's top scores may enter the trace.
	RoundAdmissions = 4

	// CVFolds is the number of cross-validation folds per evaluation.
	CVFolds = 3

	// SubgridDraw is the per-dimension sample count for each round's subgrid.
	SubgridDraw = 2

	// DefaultTestFraction is the holdout share of each partition split.
	DefaultTestFraction = 0.25
)
