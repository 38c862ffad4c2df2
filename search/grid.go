package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scitune/scitune/pkg/errors"
)

// Hyperparameter dimension names used by the default grid and the
// configuration formatter.
const (
	ParamKernel = "kernel"
	ParamC      = "C"
	ParamGamma  = "gamma"
)

// ParameterGrid maps a hyperparameter name to its ordered candidate values.
// It is constructed once and read-only thereafter.
type ParameterGrid map[string][]interface{}

// DefaultGrid returns the search space used by the letter-recognition runs.
func DefaultGrid() ParameterGrid {
	return ParameterGrid{
		ParamC:      {0.1, 1.0, 5.0, 10.0, 50.0, 100.0},
		ParamKernel: {"linear", "rbf"},
		ParamGamma:  {0.001, 0.01, 0.1, 1.0},
	}
}

// Validate checks that the grid has at least one dimension and that every
// dimension has at least one candidate.
func (g ParameterGrid) Validate() error {
	if len(g) == 0 {
		return errors.NewConfigurationError("ParameterGrid", "grid has no dimensions", nil)
	}
	for name, candidates := range g {
		if len(candidates) == 0 {
			return errors.NewConfigurationError("ParameterGrid", "dimension has no candidates", name)
		}
	}
	return nil
}

// dimensionNames returns the grid's dimension names in sorted order, so
// iteration over the map is reproducible.
func (g ParameterGrid) dimensionNames() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Configuration is one point in the grid: a hyperparameter name mapped to
// one selected value. Dimensions not applicable to a kernel family may be
// absent.
type Configuration map[string]interface{}

// Kernel returns the configuration's kernel family, or "" if absent.
func (c Configuration) Kernel() string {
	if v, ok := c[ParamKernel].(string); ok {
		return v
	}
	return ""
}

// C returns the inverse regularization strength, or 0 if absent.
func (c Configuration) C() float64 {
	return floatValue(c[ParamC])
}

// Gamma returns the RBF width and whether it is present.
func (c Configuration) Gamma() (float64, bool) {
	v, ok := c[ParamGamma]
	if !ok {
		return 0, false
	}
	return floatValue(v), true
}

// String formats the configuration for the summary table:
// "Kernel: {kernel}, C: {C}" for linear kernels, with a trailing
// ", γ: {gamma}" for every other kernel family. Numbers use 4 decimals.
func (c Configuration) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Kernel: %s, C: %.4f", c.Kernel(), c.C())
	if c.Kernel() != "linear" {
		if gamma, ok := c.Gamma(); ok {
			fmt.Fprintf(&b, ", γ: %.4f", gamma)
		}
	}
	return b.String()
}

// Clone returns an independent copy of the configuration.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Subgrid is one round's sampled slice of the parameter space: each
// dimension mapped to a small multiset of candidate values. Duplicates from
// sampling with replacement are preserved.
type Subgrid map[string][]interface{}

// Combinations materializes the cross product of the subgrid's dimensions
// in a stable order: dimension names sorted, values in draw order.
func (s Subgrid) Combinations() []Configuration {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 1
	for _, name := range names {
		total *= len(s[name])
	}
	if len(names) == 0 || total == 0 {
		return nil
	}

	combos := make([]Configuration, 0, total)
	idx := make([]int, len(names))
	for {
		cfg := make(Configuration, len(names))
		for d, name := range names {
			cfg[name] = s[name][idx[d]]
		}
		combos = append(combos, cfg)

		// Odometer increment, last dimension fastest.
		d := len(names) - 1
		for d >= 0 {
			idx[d]++
			if idx[d] < len(s[names[d]]) {
				break
			}
			idx[d] = 0
			d--
		}
		if d < 0 {
			break
		}
	}
	return combos
}

func floatValue(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	default:
		return 0
	}
}
