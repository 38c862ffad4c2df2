package search

import (
	"math/rand/v2"
	"testing"

	"github.com/scitune/scitune/pkg/errors"
)

func fixedSampler(seed uint64) *SubgridSampler {
	return NewSubgridSampler(rand.New(rand.NewPCG(seed, seed)))
}

func TestSampleDrawSizes(t *testing.T) {
	grid := ParameterGrid{
		"C":      {0.1, 1.0, 5.0, 10.0, 50.0, 100.0},
		"kernel": {"linear", "rbf"},
		"gamma":  {0.001, 0.01, 0.1, 1.0},
	}

	sub, err := fixedSampler(1).Sample(grid, 2)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	// min(requested, |candidates|) per dimension: all three have >= 2.
	for name, draw := range sub {
		if len(draw) != 2 {
			t.Errorf("dimension %s drew %d values, want 2", name, len(draw))
		}
	}
}

func TestSampleClampsToDimensionSize(t *testing.T) {
	grid := ParameterGrid{
		"kernel": {"linear"},
		"C":      {1.0, 2.0, 3.0},
	}

	sub, err := fixedSampler(2).Sample(grid, 5)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	if len(sub["kernel"]) != 1 {
		t.Errorf("kernel drew %d values, want 1", len(sub["kernel"]))
	}
	if len(sub["C"]) != 3 {
		t.Errorf("C drew %d values, want 3", len(sub["C"]))
	}
}

func TestSamplePreservesDuplicates(t *testing.T) {
	// A single candidate drawn twice must appear twice.
	grid := ParameterGrid{"C": {7.0, 7.0}}

	sub, err := fixedSampler(3).Sample(grid, 2)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(sub["C"]) != 2 {
		t.Fatalf("C drew %d values, want 2", len(sub["C"]))
	}
	if sub["C"][0] != 7.0 || sub["C"][1] != 7.0 {
		t.Errorf("duplicates not preserved: %v", sub["C"])
	}
}

func TestSampleOnlyDrawsCandidates(t *testing.T) {
	grid := ParameterGrid{"kernel": {"linear", "rbf"}}
	allowed := map[interface{}]bool{"linear": true, "rbf": true}

	sampler := fixedSampler(4)
	for i := 0; i < 50; i++ {
		sub, err := sampler.Sample(grid, 2)
		if err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
		for _, v := range sub["kernel"] {
			if !allowed[v] {
				t.Fatalf("drew value outside candidate set: %v", v)
			}
		}
	}
}

func TestSampleVariesAcrossCalls(t *testing.T) {
	grid := ParameterGrid{"C": {1.0, 2.0, 3.0, 4.0, 5.0, 6.0}}
	sampler := fixedSampler(5)

	varied := false
	first, err := sampler.Sample(grid, 2)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		next, err := sampler.Sample(grid, 2)
		if err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
		if next["C"][0] != first["C"][0] || next["C"][1] != first["C"][1] {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("20 successive draws never varied; sampler looks stuck")
	}
}

func TestSampleErrors(t *testing.T) {
	t.Run("empty dimension", func(t *testing.T) {
		_, err := fixedSampler(6).Sample(ParameterGrid{"C": {}}, 2)
		var cfgErr *errors.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected ConfigurationError, got %v", err)
		}
	})

	t.Run("non positive count", func(t *testing.T) {
		_, err := fixedSampler(7).Sample(ParameterGrid{"C": {1.0}}, 0)
		var cfgErr *errors.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected ConfigurationError, got %v", err)
		}
	})
}

func TestNewSubgridSamplerNilSource(t *testing.T) {
	sampler := NewSubgridSampler(nil)
	if _, err := sampler.Sample(ParameterGrid{"C": {1.0, 2.0}}, 2); err != nil {
		t.Errorf("time-seeded sampler should work: %v", err)
	}
}
