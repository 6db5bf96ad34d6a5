package qsim

import (
	"fmt"
	"sort"
	"strings"
)

/*
Histogram aggregates measurement outcomes across shots for one measurement
position in the circuit. Width is the number of qubits that measurement
covered, used to zero-pad the binary rendering of each outcome.
*/
type Histogram struct {
	Counts map[int]int
	Width  int
}

// NewHistogram returns an empty histogram for a measurement over the given
// number of qubits.
func NewHistogram(width int) *Histogram {
	return &Histogram{
		Counts: make(map[int]int),
		Width:  width,
	}
}

// Record increments the count for one sampled outcome.
func (h *Histogram) Record(outcome int) {
	h.Counts[outcome]++
}

// Total returns the sum of all counts; after a run it equals the shot count.
func (h *Histogram) Total() int {
	total := 0
	for _, n := range h.Counts {
		total += n
	}
	return total
}

// Merge folds another histogram's counts into this one. Used to reduce
// per-worker partial histograms after a concurrent run.
func (h *Histogram) Merge(other *Histogram) {
	for outcome, n := range other.Counts {
		h.Counts[outcome] += n
	}
}

// String renders the histogram as {'00': 493, '11': 507} with outcomes in
// ascending order, zero-padded to the measurement width. Outcomes that never
// occurred are omitted.
func (h *Histogram) String() string {
	outcomes := make([]int, 0, len(h.Counts))
	for outcome := range h.Counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Ints(outcomes)

	parts := make([]string, len(outcomes))
	for i, outcome := range outcomes {
		parts[i] = fmt.Sprintf("'%0*b': %d", h.Width, outcome, h.Counts[outcome])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
