package search

import (
	"testing"
)

func TestTrackerMonotonicTrace(t *testing.T) {
	tracker := NewConvergenceTracker()

	tracker.Record([]float64{0.5, 0.3, 0.7, 0.2})
	tracker.Record([]float64{0.6, 0.9})

	trace := tracker.Trace()
	want := []float64{0.5, 0.5, 0.7, 0.7, 0.7, 0.9}
	if len(trace) != len(want) {
		t.Fatalf("trace length = %d, want %d", len(trace), len(want))
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %v, want %v", i, trace[i], want[i])
		}
	}
	if tracker.Best() != 0.9 {
		t.Errorf("Best = %v, want 0.9", tracker.Best())
	}
}

func TestTrackerAdmitsAtMostFourPerRound(t *testing.T) {
	tracker := NewConvergenceTracker()

	tracker.Record([]float64{0.1, 0.2, 0.3, 0.4, 0.99, 0.99})

	if tracker.Iterations() != 4 {
		t.Errorf("Iterations = %d, want 4", tracker.Iterations())
	}
	if tracker.Best() == 0.99 {
		t.Error("fifth score must not be admitted")
	}
}

func TestTrackerShortRound(t *testing.T) {
	tracker := NewConvergenceTracker()

	tracker.Record([]float64{0.4})
	tracker.Record(nil)

	if tracker.Iterations() != 1 {
		t.Errorf("Iterations = %d, want 1", tracker.Iterations())
	}
}

func TestTrackerCapBoundary(t *testing.T) {
	tracker := NewConvergenceTracker()

	// 25 rounds of 4 admissions reach the cap exactly.
	for round := 0; round < 25; round++ {
		tracker.Record([]float64{0.1, 0.2, 0.3, 0.4})
	}

	if tracker.Iterations() != TraceCap {
		t.Fatalf("Iterations = %d, want %d", tracker.Iterations(), TraceCap)
	}
	before := tracker.Trace()

	// Past the cap, rounds still happen but the trace is frozen.
	tracker.Record([]float64{1.0, 1.0, 1.0, 1.0})

	after := tracker.Trace()
	if len(after) != TraceCap {
		t.Errorf("trace grew past the cap: %d", len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("trace changed at %d after the cap", i)
		}
	}
	if tracker.Best() == 1.0 {
		t.Error("scores after the cap must not update the best")
	}
}

func TestTrackerCapMidRound(t *testing.T) {
	tracker := NewConvergenceTracker()

	// 99 admissions, then one round with room for only one more.
	for i := 0; i < 33; i++ {
		tracker.Record([]float64{0.5, 0.5, 0.5})
	}
	if tracker.Iterations() != 99 {
		t.Fatalf("setup: Iterations = %d, want 99", tracker.Iterations())
	}

	tracker.Record([]float64{0.8, 0.9, 0.95, 0.99})

	if tracker.Iterations() != TraceCap {
		t.Errorf("Iterations = %d, want %d", tracker.Iterations(), TraceCap)
	}
	if tracker.Best() != 0.8 {
		t.Errorf("Best = %v, want 0.8 (only the first entry fit)", tracker.Best())
	}
}

func TestTrackerBestEqualsMaxAdmitted(t *testing.T) {
	tracker := NewConvergenceTracker()

	rounds := [][]float64{
		{0.31, 0.12},
		{0.55, 0.41, 0.22},
		{0.18},
		{0.74, 0.29, 0.61, 0.08},
	}
	max := 0.0
	for _, r := range rounds {
		tracker.Record(r)
		for _, s := range r {
			if s > max {
				max = s
			}
		}
	}

	if tracker.Best() != max {
		t.Errorf("Best = %v, want %v", tracker.Best(), max)
	}

	trace := tracker.Trace()
	for i := 1; i < len(trace); i++ {
		if trace[i] < trace[i-1] {
			t.Fatalf("trace not monotonic at %d: %v < %v", i, trace[i], trace[i-1])
		}
	}
}

func TestTrackerTraceIsACopy(t *testing.T) {
	tracker := NewConvergenceTracker()
	tracker.Record([]float64{0.5})

	trace := tracker.Trace()
	trace[0] = 99

	if tracker.Trace()[0] != 0.5 {
		t.Error("Trace must return a copy, not the internal slice")
	}
}
