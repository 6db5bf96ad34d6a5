package qsim

import (
	"fmt"
	"math/cmplx"
	"strings"
)

/*
StateVector holds the full superposition of an n-qubit register as 2^n
complex amplitudes. The amplitude at index i belongs to the basis state
whose bit j equals the value of qubit j, with qubit 0 in the least
significant bit.

Operations never mutate a StateVector in place; every gate application,
initialization, or collapse derives a fresh vector from the previous one.
*/
type StateVector struct {
	Amplitudes []complex128
}

// NewStateVector returns the all-zero basis state |00...0⟩ for the given
// number of qubits.
func NewStateVector(qubits int) *StateVector {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps}
}

// Qubits returns the number of qubits the vector spans.
func (sv *StateVector) Qubits() int {
	n := 0
	for size := len(sv.Amplitudes); size > 1; size >>= 1 {
		n++
	}
	return n
}

// Clone deep-copies the amplitude array. Each shot branches on its own clone.
func (sv *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(sv.Amplitudes))
	copy(amps, sv.Amplitudes)
	return &StateVector{Amplitudes: amps}
}

// Norm returns the total squared magnitude. It stays ≈ 1 after any unitary
// operation or collapse.
func (sv *StateVector) Norm() float64 {
	var total float64
	for _, amp := range sv.Amplitudes {
		total += real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	return total
}

// Probabilities returns the per-basis-state measurement probability |amp|².
func (sv *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(sv.Amplitudes))
	for i, amp := range sv.Amplitudes {
		mod := cmplx.Abs(amp)
		probs[i] = mod * mod
	}
	return probs
}

/*
String renders one line per basis state with a non-negligible amplitude, in
ket notation with the amplitude printed as a complex pair:

	|00⟩: 0.7071+0.0000i
	|11⟩: 0.7071+0.0000i
*/
func (sv *StateVector) String() string {
	qubits := sv.Qubits()
	var b strings.Builder
	for i, amp := range sv.Amplitudes {
		if cmplx.Abs(amp) < 1e-12 {
			continue
		}
		fmt.Fprintf(&b, "|%0*b⟩: %.4f%+.4fi\n", qubits, i, real(amp), imag(amp))
	}
	return b.String()
}

// isPowerOfTwo reports whether the amplitude count is a valid register size.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
