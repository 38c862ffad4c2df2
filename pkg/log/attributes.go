package log

// Standard attribute keys for search-run records. Using the same keys
// consistently keeps run logs filterable: every record about one partition
// carries "search.partition", every round-level record "search.round".
// Names follow a hierarchical convention ("search.round", "data.samples").

// Search context
// These attributes identify where inside the harness a record was produced.
const (
	// PartitionKey identifies the partition being processed ("S1".."S10").
	PartitionKey = "search.partition"

	// RoundKey is the 1-based sampling/evaluation round within a partition.
	RoundKey = "search.round"

	// PhaseKey indicates the trial phase.
	// Values: "split", "searching", "final_fit", "evaluated"
	PhaseKey = "search.phase"

	// ComponentKey identifies which package produced the record.
	// Examples: "search", "dataset", "report"
	ComponentKey = "component"
)

// Model context
const (
	// KernelKey is the kernel family of the configuration under discussion.
	KernelKey = "model.kernel"

	// CKey is the inverse regularization strength.
	CKey = "model.c"

	// GammaKey is the RBF kernel width (absent for linear kernels).
	GammaKey = "model.gamma"
)

// Data shape
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// ClassesKey indicates the number of distinct label classes.
	ClassesKey = "data.classes"
)

// Scores
const (
	// AccuracyKey is a holdout accuracy in [0,1].
	AccuracyKey = "score.accuracy"

	// BestScoreKey is the best mean validation score seen so far.
	BestScoreKey = "score.best"

	// MeanScoreKey is a round's mean cross-validation score.
	MeanScoreKey = "score.mean"
)
