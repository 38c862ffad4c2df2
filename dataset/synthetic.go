package dataset

import (
	"fmt"
	"math/rand/v2"
)

const (
	// SyntheticRows is the fallback dataset size, matching the remote
	// letter-recognition dataset's order of magnitude.
	SyntheticRows = 10000

	// SyntheticClasses mirrors the 26 letter classes.
	SyntheticClasses = 26
)

// Synthetic generates a learnable stand-in dataset: each class gets its own
// Gaussian center per feature, and rows are unit-variance noise around the
// center of their class. Labels cycle through the classes so counts stay
// balanced. The same seed always produces the same dataset.
func Synthetic(rows, features, classes int, seed uint64) (*Dataset, error) {
	rng := rand.New(rand.NewPCG(seed, seed))

	centers := make([][]float64, classes)
	for c := range centers {
		centers[c] = make([]float64, features)
		for f := range centers[c] {
			// Centers spread over [-3, 3) keep classes separable but
			// overlapping, like the real data.
			centers[c][f] = rng.Float64()*6 - 3
		}
	}

	data := make([][]float64, rows)
	labels := make([]string, rows)
	for i := 0; i < rows; i++ {
		c := i % classes
		row := make([]float64, features)
		for f := range row {
			row[f] = centers[c][f] + rng.NormFloat64()
		}
		data[i] = row
		labels[i] = className(c)
	}

	return prepare(data, labels, "synthetic")
}

// className maps a class index to a letter label, falling back to a numbered
// name past Z.
func className(c int) string {
	if c < 26 {
		return string(rune('A' + c))
	}
	return fmt.Sprintf("Z%d", c-25)
}
