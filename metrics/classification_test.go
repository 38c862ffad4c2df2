package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "Perfect prediction",
			yTrue: []float64{0, 1, 2, 3},
			yPred: []float64{0, 1, 2, 3},
			want:  1.0,
		},
		{
			name:  "All wrong",
			yTrue: []float64{0, 0, 0},
			yPred: []float64{1, 1, 1},
			want:  0.0,
		},
		{
			name:  "Half right",
			yTrue: []float64{0, 1, 2, 3},
			yPred: []float64{0, 1, 0, 0},
			want:  0.5,
		},
		{
			name:    "Dimension mismatch",
			yTrue:   []float64{0, 1},
			yPred:   []float64{0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yTrue := mat.NewVecDense(len(tt.yTrue), tt.yTrue)
			yPred := mat.NewVecDense(len(tt.yPred), tt.yPred)

			got, err := Accuracy(yTrue, yPred)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Accuracy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccuracyMatrix(t *testing.T) {
	yTrue := mat.NewDense(4, 1, []float64{0, 1, 1, 2})
	yPred := mat.NewDense(4, 1, []float64{0, 1, 2, 2})

	got, err := AccuracyMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.75 {
		t.Errorf("AccuracyMatrix = %v, want 0.75", got)
	}
}

func TestAccuracyMatrixRejectsWideMatrix(t *testing.T) {
	y := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	if _, err := AccuracyMatrix(y, y); err == nil {
		t.Error("expected error for non column vector input")
	}
}

func TestClassCounts(t *testing.T) {
	y := mat.NewDense(6, 1, []float64{0, 1, 1, 2, 2, 2})

	counts, err := ClassCounts(y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[int]int{0: 1, 1: 2, 2: 3}
	for class, n := range want {
		if counts[class] != n {
			t.Errorf("counts[%d] = %d, want %d", class, counts[class], n)
		}
	}
	if len(counts) != len(want) {
		t.Errorf("len(counts) = %d, want %d", len(counts), len(want))
	}
}

func TestCorrelationRanking(t *testing.T) {
	// Feature 0 is perfectly correlated with the target, feature 1 is
	// anti-correlated, feature 2 is constant.
	X := mat.NewDense(4, 3, []float64{
		1, 4, 7,
		2, 3, 7,
		3, 2, 7,
		4, 1, 7,
	})
	y := mat.NewDense(4, 1, []float64{1, 2, 3, 4})

	ranking, err := CorrelationRanking(X, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranking) != 3 {
		t.Fatalf("len(ranking) = %d, want 3", len(ranking))
	}

	// Constant feature must be ranked last with correlation 0.
	if ranking[2].Feature != 2 || ranking[2].Correlation != 0 {
		t.Errorf("constant feature ranked %v", ranking[2])
	}

	// Strongest absolute correlations first.
	if math.Abs(ranking[0].Correlation) < math.Abs(ranking[1].Correlation) {
		t.Error("ranking not sorted by absolute correlation")
	}
	if math.Abs(math.Abs(ranking[0].Correlation)-1) > 1e-10 {
		t.Errorf("top correlation = %v, want |r| = 1", ranking[0].Correlation)
	}
}

func TestCorrelationRankingDimensionMismatch(t *testing.T) {
	X := mat.NewDense(4, 2, nil)
	y := mat.NewDense(3, 1, nil)
	if _, err := CorrelationRanking(X, y); err == nil {
		t.Error("expected error for row mismatch")
	}
}
