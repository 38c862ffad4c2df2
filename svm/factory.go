package svm

import (
	"github.com/scitune/scitune/core/model"
	"github.com/scitune/scitune/pkg/errors"
	"github.com/scitune/scitune/search"
)

// FromConfiguration builds a KernelClassifier from a sampled search
// configuration. It is the ClassifierFactory the driver injects into the
// search core.
func FromConfiguration(cfg search.Configuration) (model.Classifier, error) {
	kernel := cfg.Kernel()
	if kernel == "" {
		return nil, errors.NewValueError("svm.FromConfiguration", "configuration has no kernel")
	}
	if cfg.C() <= 0 {
		return nil, errors.NewValueError("svm.FromConfiguration", "configuration has no positive C")
	}

	options := []Option{
		WithKernel(kernel),
		WithC(cfg.C()),
	}
	if gamma, ok := cfg.Gamma(); ok {
		options = append(options, WithGamma(gamma))
	}
	return NewKernelClassifier(options...), nil
}
