// Package scitune provides a model-selection harness for Go: repeated
// train/test partitioning, randomized subgrid search with k-fold
// cross-validation over a kernel classifier's parameter grid, and
// aggregation of the per-partition results into a comparison table and a
// convergence chart.
//
// scitune follows a scikit-learn-like API so the search core stays decoupled
// from any particular model: estimators implement Fit/Predict/Score, and the
// harness receives them through an injected factory.
//
// # Features
//
// - Deterministic partition splits: each trial's shuffle is seeded from its index
// - Randomized subgrid search: small random slices of the grid per round, scored by cross-validation
// - Monotonic convergence tracking with a hard iteration cap
// - Kernel least-squares classifier with linear and RBF kernels
// - Robust error handling with typed, loggable errors
//
// # Quick Start
//
// Run the full harness on a dataset:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log/slog"
//
//	    "github.com/scitune/scitune/dataset"
//	    "github.com/scitune/scitune/search"
//	    "github.com/scitune/scitune/svm"
//	)
//
//	func main() {
//	    ds, err := dataset.Load(dataset.DefaultURL, slog.Default())
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    evaluator := search.NewCVEvaluator(svm.FromConfiguration)
//	    agg := search.NewResultAggregator(search.DefaultGrid(), evaluator, svm.FromConfiguration)
//	    if err := agg.Run(ds.X, ds.Y); err != nil {
//	        panic(err)
//	    }
//
//	    for _, row := range agg.SummaryRows() {
//	        fmt.Println(row.Partition, row.Accuracy, row.Configuration)
//	    }
//	}
//
// # Package Layout
//
//   - search: partitioning, subgrid sampling, cross-validated evaluation,
//     convergence tracking, aggregation
//   - svm: the kernel least-squares classifier and its configuration factory
//   - dataset: remote CSV acquisition with a synthetic fallback
//   - preprocessing: standardization and label encoding
//   - metrics: accuracy and descriptive statistics
//   - report: comparison table and convergence chart rendering
package scitune
