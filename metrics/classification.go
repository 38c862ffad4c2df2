// Package metrics は分類結果とデータセットの評価指標を提供する
package metrics

import (
	"math"
	"sort"

	"github.com/scitune/scitune/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Accuracy は正解率（完全一致したラベルの割合）を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	matches := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			matches++
		}
	}

	return float64(matches) / float64(n), nil
}

// AccuracyMatrix は列ベクトル形式（n×1行列）の入力に対して正解率を計算する
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("AccuracyMatrix", "empty matrix")
	}
	if rTrue != rPred || cTrue != cPred {
		return 0, errors.NewDimensionError("AccuracyMatrix", rTrue, rPred, 0)
	}
	if cTrue != 1 {
		return 0, errors.NewValueError("AccuracyMatrix", "must be a column vector (n×1 matrix)")
	}

	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)
	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return Accuracy(yTrueVec, yPredVec)
}

// ClassCounts はクラスごとのサンプル数を数える
// ラベルは整数コード（float64表現）であることを前提とする
func ClassCounts(y mat.Matrix) (map[int]int, error) {
	r, c := y.Dims()
	if r == 0 {
		return nil, errors.NewValueError("ClassCounts", "empty matrix")
	}
	if c != 1 {
		return nil, errors.NewValueError("ClassCounts", "must be a column vector (n×1 matrix)")
	}

	counts := make(map[int]int)
	for i := 0; i < r; i++ {
		counts[int(y.At(i, 0))]++
	}
	return counts, nil
}

// FeatureCorrelation は1つの特徴量とターゲットのピアソン相関
type FeatureCorrelation struct {
	Feature     int
	Correlation float64
}

// CorrelationRanking は各特徴量とターゲットのピアソン相関を計算し、
// 絶対値の降順に並べて返す
func CorrelationRanking(X, y mat.Matrix) ([]FeatureCorrelation, error) {
	r, c := X.Dims()
	ry, cy := y.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("CorrelationRanking", "empty matrix")
	}
	if ry != r {
		return nil, errors.NewDimensionError("CorrelationRanking", r, ry, 0)
	}
	if cy != 1 {
		return nil, errors.NewValueError("CorrelationRanking", "target must be a column vector (n×1 matrix)")
	}

	target := make([]float64, r)
	for i := 0; i < r; i++ {
		target[i] = y.At(i, 0)
	}

	ranking := make([]FeatureCorrelation, c)
	column := make([]float64, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			column[i] = X.At(i, j)
		}
		corr := stat.Correlation(column, target, nil)
		if math.IsNaN(corr) {
			// 定数特徴量は相関0として扱う
			corr = 0
		}
		ranking[j] = FeatureCorrelation{Feature: j, Correlation: corr}
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return math.Abs(ranking[a].Correlation) > math.Abs(ranking[b].Correlation)
	})

	return ranking, nil
}
