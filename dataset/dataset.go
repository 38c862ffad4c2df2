// Package dataset acquires and prepares the letter-recognition data the
// search harness runs on: one uppercase letter label followed by 16 integer
// features per CSV row. Acquisition failures never escape this package; a
// synthetic dataset with the same schema stands in when the remote source is
// unreachable.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/scitune/scitune/pkg/errors"
	scilog "github.com/scitune/scitune/pkg/log"
	"github.com/scitune/scitune/preprocessing"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultURL is the UCI letter-recognition dataset.
	DefaultURL = "https://archive.ics.uci.edu/ml/machine-learning-databases/letter-recognition/letter-recognition.data"

	// NumFeatures is the number of numeric columns after the label.
	NumFeatures = 16

	fetchTimeout = 30 * time.Second
)

// Dataset is the prepared input to the search harness: standardized
// features, integer-encoded labels, and the class names in code order.
type Dataset struct {
	// X is the standardized n×NumFeatures feature matrix.
	X *mat.Dense

	// Y is the n×1 matrix of encoded labels, 0..C-1.
	Y *mat.Dense

	// ClassNames lists the original labels in code order.
	ClassNames []string

	// Source records where the data came from, "remote" or "synthetic".
	Source string
}

// Load fetches and prepares the dataset at url. Any acquisition failure is
// logged and recovered by substituting a synthetic dataset with the same
// schema, so callers always get usable data back.
func Load(url string, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	features, labels, err := fetchLetterCSV(url)
	if err != nil {
		errors.Warn(err)
		logger.Info("substituting synthetic data for the unavailable remote dataset",
			slog.String("url", url),
		)
		return Synthetic(SyntheticRows, NumFeatures, SyntheticClasses, uint64(time.Now().UnixNano()))
	}

	logger.Info("dataset fetched",
		slog.String("url", url),
		slog.Int(scilog.SamplesKey, len(labels)),
	)
	return prepare(features, labels, "remote")
}

// fetchLetterCSV downloads and decodes the CSV at url. Every failure mode
// maps to a DataAcquisitionError naming the stage that broke.
func fetchLetterCSV(url string) ([][]float64, []string, error) {
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, nil, errors.NewDataAcquisitionError(url, "fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.NewDataAcquisitionError(url, "fetch",
			errors.Newf("unexpected status %d", resp.StatusCode))
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = NumFeatures + 1

	var features [][]float64
	var labels []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.NewDataAcquisitionError(url, "parse", err)
		}

		row := make([]float64, NumFeatures)
		for j, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, errors.NewDataAcquisitionError(url, "decode", err)
			}
			row[j] = v
		}
		features = append(features, row)
		labels = append(labels, record[0])
	}

	if len(labels) == 0 {
		return nil, nil, errors.NewDataAcquisitionError(url, "parse", errors.ErrEmptyData)
	}
	return features, labels, nil
}

// prepare standardizes the features and encodes the labels. The search core
// only ever sees the resulting matrices.
func prepare(features [][]float64, labels []string, source string) (*Dataset, error) {
	n := len(features)
	if n == 0 || n != len(labels) {
		return nil, errors.NewDataAcquisitionError(source, "prepare",
			errors.Newf("feature rows %d and labels %d do not match", n, len(labels)))
	}

	cols := len(features[0])
	X := mat.NewDense(n, cols, nil)
	for i, row := range features {
		if len(row) != cols {
			return nil, errors.NewDataAcquisitionError(source, "prepare",
				errors.Newf("row %d has %d features, want %d", i, len(row), cols))
		}
		X.SetRow(i, row)
	}

	scaler := preprocessing.NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		return nil, errors.NewDataAcquisitionError(source, "prepare", err)
	}

	encoder := preprocessing.NewLabelEncoder()
	codes, err := encoder.FitTransform(labels)
	if err != nil {
		return nil, errors.NewDataAcquisitionError(source, "prepare", err)
	}

	Y := mat.NewDense(n, 1, nil)
	for i, c := range codes {
		Y.Set(i, 0, float64(c))
	}

	return &Dataset{
		X:          mat.DenseCopyOf(scaled),
		Y:          Y,
		ClassNames: encoder.Classes(),
		Source:     source,
	}, nil
}

// Describe returns a short human-readable summary line.
func (d *Dataset) Describe() string {
	n, c := d.X.Dims()
	return fmt.Sprintf("%s dataset: %d samples, %d features, %d classes", d.Source, n, c, len(d.ClassNames))
}
