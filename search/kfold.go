package search

import (
	"gonum.org/v1/gonum/mat"
)

// cvFold is one train/validation index split of a cross-validation run.
type cvFold struct {
	trainIndices []int
	testIndices  []int
}

// kfoldSplit produces k contiguous folds over n rows, spreading the
// remainder over the leading folds. The evaluator's inputs are already
// shuffled by the partition split, so the folds are not reshuffled here.
func kfoldSplit(n, k int) []cvFold {
	folds := make([]cvFold, k)
	foldSize := n / k
	remainder := n % k

	current := 0
	for i := 0; i < k; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		testIndices := make([]int, testSize)
		for j := 0; j < testSize; j++ {
			testIndices[j] = current + j
		}

		trainIndices := make([]int, 0, n-testSize)
		for j := 0; j < n; j++ {
			if j < current || j >= current+testSize {
				trainIndices = append(trainIndices, j)
			}
		}

		folds[i] = cvFold{trainIndices: trainIndices, testIndices: testIndices}
		current += testSize
	}
	return folds
}

// extractSubset copies the indexed rows of X and y into fresh matrices.
func extractSubset(X, y mat.Matrix, indices []int) (*mat.Dense, *mat.Dense) {
	_, d := X.Dims()
	return subsetRows(X, y, indices, d)
}
