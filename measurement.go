package qsim

import (
	"fmt"
	"math"
	"math/rand/v2"
)

/*
RandomSource is the single randomness operation the engine consumes: one
uniform variate in [0, 1) per sample. Shot workers must each own an
independent source, or serialize access to a shared one; the generators in
math/rand/v2 are not safe for unsynchronized concurrent use.
*/
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded PCG-backed source. Two sources built from
// the same seed produce the same draw sequence, which keeps simulations
// reproducible.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

/*
SampleMeasurement draws one full-register measurement outcome. Per-index
probabilities |amp|² are normalized against their actual total rather than
an assumed 1.0, then a single uniform draw walks the cumulative
distribution. If floating error leaves the cumulative total fractionally
short of the draw, the last index wins; that is a rounding artifact, not an
error.
*/
func SampleMeasurement(state *StateVector, rng RandomSource) int {
	probs := state.Probabilities()
	var total float64
	for _, p := range probs {
		total += p
	}

	draw := rng.Float64() * total
	var cumulative float64
	for i, p := range probs {
		cumulative += p
		if draw < cumulative {
			return i
		}
	}
	return len(probs) - 1
}

// CollapseToState returns the exact computational basis state for a full
// measurement outcome: amplitude 1 at the outcome index, 0 everywhere else.
// Full measurement leaves no residual entanglement.
func CollapseToState(state *StateVector, outcome int) (*StateVector, error) {
	if outcome < 0 || outcome >= len(state.Amplitudes) {
		return nil, fmt.Errorf("%w: outcome %d of %d states",
			ErrQubitRange, outcome, len(state.Amplitudes))
	}
	amps := make([]complex128, len(state.Amplitudes))
	amps[outcome] = 1
	return &StateVector{Amplitudes: amps}, nil
}

// partialOutcome extracts the measured-subset value from a basis index,
// with qubits[0] in the most significant bit — the same ordering convention
// gate application uses.
func partialOutcome(index int, qubits []int) int {
	out := 0
	for j, q := range qubits {
		out |= ((index >> q) & 1) << (len(qubits) - 1 - j)
	}
	return out
}

/*
SamplePartialMeasurement draws an outcome for a subset of qubits. Each basis
index contributes its |amp|² to the outcome its measured bits spell out;
the 2^k outcome probabilities are then normalized and sampled exactly like
the full case.
*/
func SamplePartialMeasurement(state *StateVector, qubits []int, rng RandomSource) int {
	probs := make([]float64, 1<<len(qubits))
	var total float64
	for i, amp := range state.Amplitudes {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		probs[partialOutcome(i, qubits)] += p
		total += p
	}

	draw := rng.Float64() * total
	var cumulative float64
	for i, p := range probs {
		cumulative += p
		if draw < cumulative {
			return i
		}
	}
	return len(probs) - 1
}

/*
CollapseToPartialMeasurement projects the state onto the sampled outcome:
amplitudes whose measured bits disagree are zeroed, survivors are rescaled
by 1/√(Σ|amp|²). Qubits outside the measured subset keep any entanglement
with each other and with the now-fixed measured bits.
*/
func CollapseToPartialMeasurement(state *StateVector, qubits []int, outcome int) (*StateVector, error) {
	if outcome < 0 || outcome >= 1<<len(qubits) {
		return nil, fmt.Errorf("%w: outcome %d exceeds %d measured qubits",
			ErrQubitRange, outcome, len(qubits))
	}

	amps := make([]complex128, len(state.Amplitudes))
	var surviving float64
	for i, amp := range state.Amplitudes {
		if partialOutcome(i, qubits) != outcome {
			continue
		}
		amps[i] = amp
		surviving += real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	if surviving == 0 {
		return nil, fmt.Errorf("outcome %d has zero probability, cannot renormalize", outcome)
	}

	scale := complex(1/math.Sqrt(surviving), 0)
	for i := range amps {
		amps[i] *= scale
	}
	return &StateVector{Amplitudes: amps}, nil
}
