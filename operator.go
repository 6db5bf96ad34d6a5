package qsim

import (
	"errors"
	"fmt"
)

var (
	ErrStateSize      = errors.New("state length is not a power of two")
	ErrMatrixSize     = errors.New("matrix dimension does not match qubit count")
	ErrQubitRange     = errors.New("qubit index out of range")
	ErrDuplicateQubit = errors.New("duplicate qubit index")
)

/*
ApplySingleQubitGate applies a 2×2 unitary to one qubit of the state. Basis
indices pair up across the target bit: every index with the bit clear is
combined with its bit-set partner as a 2-vector, and only the bit-clear
indices are iterated so each pair is touched exactly once.
*/
func ApplySingleQubitGate(state *StateVector, m Matrix, target int) (*StateVector, error) {
	if !isPowerOfTwo(len(state.Amplitudes)) {
		return nil, ErrStateSize
	}
	if m.Dim() != 2 || len(m[0]) != 2 || len(m[1]) != 2 {
		return nil, fmt.Errorf("%w: want 2x2, got %dx%d", ErrMatrixSize, m.Dim(), m.Dim())
	}
	if target < 0 || target >= state.Qubits() {
		return nil, fmt.Errorf("%w: qubit %d of %d", ErrQubitRange, target, state.Qubits())
	}

	amps := state.Amplitudes
	next := make([]complex128, len(amps))
	bit := 1 << target
	for i := range amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		next[i] = m[0][0]*amps[i] + m[0][1]*amps[j]
		next[j] = m[1][0]*amps[i] + m[1][1]*amps[j]
	}
	return &StateVector{Amplitudes: next}, nil
}

/*
ApplyMultiQubitGate applies a 2^k×2^k unitary to k qubits. For each basis
index the k target bits are gathered into a column value with qubits[0] as
the most significant bit; every matrix row then scatters its contribution
back into the index formed by overwriting the target bit positions with the
row value, same bit order. Cost is O(2^n · 2^k).
*/
func ApplyMultiQubitGate(state *StateVector, m Matrix, qubits []int) (*StateVector, error) {
	if !isPowerOfTwo(len(state.Amplitudes)) {
		return nil, ErrStateSize
	}
	k := len(qubits)
	dim := 1 << k
	if m.Dim() != dim {
		return nil, fmt.Errorf("%w: want %dx%d for %d qubits, got %dx%d",
			ErrMatrixSize, dim, dim, k, m.Dim(), m.Dim())
	}
	for _, row := range m {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: ragged row", ErrMatrixSize)
		}
	}
	seen := make(map[int]bool, k)
	for _, q := range qubits {
		if q < 0 || q >= state.Qubits() {
			return nil, fmt.Errorf("%w: qubit %d of %d", ErrQubitRange, q, state.Qubits())
		}
		if seen[q] {
			return nil, fmt.Errorf("%w: qubit %d", ErrDuplicateQubit, q)
		}
		seen[q] = true
	}

	amps := state.Amplitudes
	next := make([]complex128, len(amps))
	for i, amp := range amps {
		if amp == 0 {
			continue
		}
		col := 0
		base := i
		for j, q := range qubits {
			col |= ((i >> q) & 1) << (k - 1 - j)
			base &^= 1 << q
		}
		for r := 0; r < dim; r++ {
			if m[r][col] == 0 {
				continue
			}
			dest := base
			for j, q := range qubits {
				dest |= ((r >> (k - 1 - j)) & 1) << q
			}
			next[dest] += m[r][col] * amp
		}
	}
	return &StateVector{Amplitudes: next}, nil
}

/*
InitializeState re-expresses one qubit's component as α|0⟩ + β|1⟩ while
preserving every other qubit's amplitudes. The qubit's current basis value
is treated as a relabeling onto the new state, so no particular pre-state is
required. The caller must guarantee the qubit has not been entangled by a
prior gate; the result is mathematically meaningless otherwise, and this
function does not check.
*/
func InitializeState(state *StateVector, target int, alpha, beta complex128) (*StateVector, error) {
	// Relabeling matrix: both basis values of the qubit fold onto the new
	// (α, β) pair. Not unitary, and not required to be.
	return ApplySingleQubitGate(state, Matrix{{alpha, alpha}, {beta, beta}}, target)
}
