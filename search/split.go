package search

import (
	"math"
	"math/rand/v2"

	"github.com/scitune/scitune/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// splitSeedStride spaces the per-partition seeds so partition i always
// reproduces the same shuffle.
const splitSeedStride = 10

// TrainTestSplit deterministically partitions X and y into disjoint train
// and test sets whose union recovers every row. The shuffle is seeded by
// trialIndex*10, so the same trial index always produces the same split.
// No stratification is applied.
func TrainTestSplit(X, y mat.Matrix, trialIndex int, testFraction float64) (XTrain, yTrain, XTest, yTest *mat.Dense, err error) {
	n, d := X.Dims()
	ry, cy := y.Dims()

	if n < 2 {
		return nil, nil, nil, nil, errors.NewConfigurationError("SplitGenerator", "dataset has fewer than 2 rows", n)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, nil, nil, errors.NewConfigurationError("SplitGenerator", "test fraction must be in (0, 1)", testFraction)
	}
	if ry != n {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", n, ry, 0)
	}
	if cy != 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "y must be a column vector (n×1 matrix)")
	}

	seed := uint64(trialIndex * splitSeedStride)
	rng := rand.New(rand.NewPCG(seed, seed))

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	nTest := int(math.Ceil(float64(n) * testFraction))
	if nTest < 1 {
		nTest = 1
	}
	if nTest > n-1 {
		nTest = n - 1
	}

	testIdx := indices[:nTest]
	trainIdx := indices[nTest:]

	XTrain, yTrain = subsetRows(X, y, trainIdx, d)
	XTest, yTest = subsetRows(X, y, testIdx, d)
	return XTrain, yTrain, XTest, yTest, nil
}

// subsetRows copies the selected rows of X and y into fresh matrices.
func subsetRows(X, y mat.Matrix, indices []int, d int) (*mat.Dense, *mat.Dense) {
	Xs := mat.NewDense(len(indices), d, nil)
	ys := mat.NewDense(len(indices), 1, nil)
	for to, from := range indices {
		for j := 0; j < d; j++ {
			Xs.Set(to, j, X.At(from, j))
		}
		ys.Set(to, 0, y.At(from, 0))
	}
	return Xs, ys
}
