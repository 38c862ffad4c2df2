package search

import (
	"math/rand/v2"
	"time"

	"github.com/scitune/scitune/pkg/errors"
)

// SubgridSampler draws a small random subset of a parameter grid each
// round. Sampling is with replacement, uniform, and independent across
// dimensions and across calls: only the partition split is seeded, round
// sampling is deliberately nondeterministic unless a fixed source is
// injected.
type SubgridSampler struct {
	rng *rand.Rand
}

// NewSubgridSampler creates a sampler. Passing nil uses a time-seeded
// source; tests inject a fixed source to pin the drawn subgrid.
func NewSubgridSampler(rng *rand.Rand) *SubgridSampler {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &SubgridSampler{rng: rng}
}

// Sample draws min(perDimensionCount, |candidates|) values per dimension,
// with replacement. Duplicate draws within a dimension are preserved.
func (s *SubgridSampler) Sample(grid ParameterGrid, perDimensionCount int) (Subgrid, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if perDimensionCount < 1 {
		return nil, errors.NewConfigurationError("SubgridSampler", "per-dimension count must be at least 1", perDimensionCount)
	}

	sub := make(Subgrid, len(grid))
	for _, name := range grid.dimensionNames() {
		candidates := grid[name]
		count := perDimensionCount
		if len(candidates) < count {
			count = len(candidates)
		}

		draw := make([]interface{}, count)
		for i := 0; i < count; i++ {
			draw[i] = candidates[s.rng.IntN(len(candidates))]
		}
		sub[name] = draw
	}
	return sub, nil
}
