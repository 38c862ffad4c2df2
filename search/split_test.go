package search

import (
	"testing"

	"github.com/scitune/scitune/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestTrainTestSplitDisjointUnion(t *testing.T) {
	X, y := tinyDataset()
	n, _ := X.Dims()

	XTrain, yTrain, XTest, yTest, err := TrainTestSplit(X, y, 3, 0.25)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}

	nTrain, _ := XTrain.Dims()
	nTest, _ := XTest.Dims()
	if nTrain+nTest != n {
		t.Fatalf("union has %d rows, want %d", nTrain+nTest, n)
	}
	if nTest != 6 {
		t.Errorf("test rows = %d, want 6 for fraction 0.25 of 24", nTest)
	}

	// Feature 0 is the original row index, so disjointness is checkable.
	seen := make(map[float64]bool, n)
	for i := 0; i < nTrain; i++ {
		seen[XTrain.At(i, 0)] = true
	}
	for i := 0; i < nTest; i++ {
		if seen[XTest.At(i, 0)] {
			t.Fatalf("row %v is in both partitions", XTest.At(i, 0))
		}
		seen[XTest.At(i, 0)] = true
	}
	if len(seen) != n {
		t.Errorf("union covers %d distinct rows, want %d", len(seen), n)
	}

	_ = yTrain
	_ = yTest
}

func TestTrainTestSplitDeterministicPerTrial(t *testing.T) {
	X, y := tinyDataset()

	first, _, _, _, err := TrainTestSplit(X, y, 4, 0.25)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	second, _, _, _, err := TrainTestSplit(X, y, 4, 0.25)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}

	if !mat.Equal(first, second) {
		t.Error("same trial index must reproduce the same split")
	}

	other, _, _, _, err := TrainTestSplit(X, y, 5, 0.25)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if mat.Equal(first, other) {
		t.Error("different trial indices should shuffle differently")
	}
}

func TestTrainTestSplitLabelsFollowRows(t *testing.T) {
	X, y := tinyDataset()

	XTest, yTest := func() (*mat.Dense, *mat.Dense) {
		_, _, XTest, yTest, err := TrainTestSplit(X, y, 0, 0.25)
		if err != nil {
			t.Fatalf("split failed: %v", err)
		}
		return XTest, yTest
	}()

	nTest, _ := XTest.Dims()
	for i := 0; i < nTest; i++ {
		rowIndex := int(XTest.At(i, 0))
		want := float64(rowIndex % 2)
		if yTest.At(i, 0) != want {
			t.Errorf("row %d label = %v, want %v", rowIndex, yTest.At(i, 0), want)
		}
	}
}

func TestTrainTestSplitErrors(t *testing.T) {
	X, y := tinyDataset()

	tests := []struct {
		name     string
		X        mat.Matrix
		y        mat.Matrix
		fraction float64
	}{
		{name: "single row", X: mat.NewDense(1, 2, nil), y: mat.NewDense(1, 1, nil), fraction: 0.25},
		{name: "zero fraction", X: X, y: y, fraction: 0},
		{name: "fraction of one", X: X, y: y, fraction: 1},
		{name: "negative fraction", X: X, y: y, fraction: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, err := TrainTestSplit(tt.X, tt.y, 0, tt.fraction)
			var cfgErr *errors.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigurationError, got %v", err)
			}
		})
	}
}
