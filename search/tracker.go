package search

// ConvergenceTracker folds one partition's noisy round scores into a
// capped, monotonic best-score-so-far trace. It admits at most
// RoundAdmissions entries per round and stops admitting entirely once the
// trace reaches TraceCap; later rounds still run but leave the trace
// untouched.
type ConvergenceTracker struct {
	bestScoreSoFar float64
	iterationCount int
	scores         []float64
}

// NewConvergenceTracker creates a tracker with an empty trace.
func NewConvergenceTracker() *ConvergenceTracker {
	return &ConvergenceTracker{
		scores: make([]float64, 0, TraceCap),
	}
}

// Record admits up to RoundAdmissions of the round's scores, in the order
// given. For each admitted score the running best is updated and appended
// to the trace. Once the trace holds TraceCap entries, Record is a no-op.
func (t *ConvergenceTracker) Record(roundScores []float64) {
	admitted := 0
	for _, score := range roundScores {
		if t.iterationCount >= TraceCap || admitted >= RoundAdmissions {
			return
		}
		if score > t.bestScoreSoFar {
			t.bestScoreSoFar = score
		}
		t.scores = append(t.scores, t.bestScoreSoFar)
		t.iterationCount++
		admitted++
	}
}

// Best returns the highest score admitted so far.
func (t *ConvergenceTracker) Best() float64 {
	return t.bestScoreSoFar
}

// Iterations returns the number of admitted entries.
func (t *ConvergenceTracker) Iterations() int {
	return t.iterationCount
}

// Trace returns a copy of the convergence trace.
func (t *ConvergenceTracker) Trace() []float64 {
	out := make([]float64, len(t.scores))
	copy(out, t.scores)
	return out
}
