package qsim

import (
	"math"
	"math/cmplx"
)

// GateKind discriminates the supported gate variants, including the
// measurement marker that terminates deterministic evaluation.
type GateKind int

const (
	KindIdentity GateKind = iota
	KindPauliX
	KindPauliY
	KindPauliZ
	KindHadamard
	KindS
	KindT
	KindPhase
	KindRotationX
	KindRotationY
	KindRotationZ
	KindControlledX
	KindControlledY
	KindControlledZ
	KindControlledPhase
	KindSwap
	KindToffoli
	KindFredkin
	KindCustom
	KindMeasure
)

func (k GateKind) String() string {
	switch k {
	case KindIdentity:
		return "I"
	case KindPauliX:
		return "X"
	case KindPauliY:
		return "Y"
	case KindPauliZ:
		return "Z"
	case KindHadamard:
		return "H"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindPhase:
		return "P"
	case KindRotationX:
		return "Rx"
	case KindRotationY:
		return "Ry"
	case KindRotationZ:
		return "Rz"
	case KindControlledX:
		return "CX"
	case KindControlledY:
		return "CY"
	case KindControlledZ:
		return "CZ"
	case KindControlledPhase:
		return "CP"
	case KindSwap:
		return "SWAP"
	case KindToffoli:
		return "CCX"
	case KindFredkin:
		return "CSWAP"
	case KindCustom:
		return "U"
	case KindMeasure:
		return "M"
	default:
		return "?"
	}
}

// Matrix is a square complex gate matrix of side 2^k for a k-qubit gate.
type Matrix [][]complex128

// Dim returns the side length of the matrix.
func (m Matrix) Dim() int {
	return len(m)
}

/*
Gate is a tagged descriptor: a kind, the unitary it applies, and the ordered
qubits it acts on.

Qubit ordering contract: Qubits[0] occupies the MOST significant bit of the
matrix row/column index, Qubits[len-1] the least significant. Controlled
gates list their controls before their targets, so a CX over [control,
target] uses the textbook matrix with the control in the high bit. Custom
gates follow the same rule; there is no per-kind special case.

A KindMeasure gate carries no matrix; its Qubits slice names the measured
subset, and an empty slice means a full measurement of every qubit.
*/
type Gate struct {
	Kind   GateKind
	Matrix Matrix
	Qubits []int
}

// IsMeasurement reports whether the gate is a measurement marker rather
// than a unitary.
func (g Gate) IsMeasurement() bool {
	return g.Kind == KindMeasure
}

// Identity returns the 2×2 identity matrix.
func Identity() Matrix {
	return Matrix{{1, 0}, {0, 1}}
}

// PauliX returns the bit-flip matrix.
func PauliX() Matrix {
	return Matrix{{0, 1}, {1, 0}}
}

// PauliY returns the Y rotation-by-π matrix.
func PauliY() Matrix {
	return Matrix{{0, -1i}, {1i, 0}}
}

// PauliZ returns the phase-flip matrix.
func PauliZ() Matrix {
	return Matrix{{1, 0}, {0, -1}}
}

// Hadamard returns the superposition matrix H = 1/√2 [[1,1],[1,-1]].
func Hadamard() Matrix {
	h := complex(1/math.Sqrt2, 0)
	return Matrix{{h, h}, {h, -h}}
}

// SGate returns the quarter-turn phase matrix.
func SGate() Matrix {
	return Matrix{{1, 0}, {0, 1i}}
}

// TGate returns the eighth-turn phase matrix.
func TGate() Matrix {
	return Matrix{{1, 0}, {0, cmplx.Exp(1i * math.Pi / 4)}}
}

// Phase returns the phase-shift matrix diag(1, e^iθ).
func Phase(theta float64) Matrix {
	return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, theta))}}
}

// RotationX returns the X-axis Bloch rotation by theta.
func RotationX(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return Matrix{{c, s}, {s, c}}
}

// RotationY returns the Y-axis Bloch rotation by theta.
func RotationY(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix{{c, -s}, {s, c}}
}

// RotationZ returns the Z-axis Bloch rotation by theta.
func RotationZ(theta float64) Matrix {
	return Matrix{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

// Swap returns the two-qubit exchange matrix. It is symmetric, so the
// operand order does not matter.
func Swap() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
}

/*
Controlled embeds a k-qubit matrix into a (k+1)-qubit controlled matrix:
identity on the upper block, the wrapped unitary on the lower block where
the new most-significant (control) bit is 1. Nest it for multi-control
gates, e.g. Controlled(Controlled(PauliX())) is the Toffoli matrix.
*/
func Controlled(m Matrix) Matrix {
	d := m.Dim()
	out := make(Matrix, 2*d)
	for r := range out {
		out[r] = make([]complex128, 2*d)
	}
	for r := 0; r < d; r++ {
		out[r][r] = 1
		for c := 0; c < d; c++ {
			out[d+r][d+c] = m[r][c]
		}
	}
	return out
}

// Toffoli returns the doubly-controlled X matrix over [control, control,
// target].
func Toffoli() Matrix {
	return Controlled(Controlled(PauliX()))
}

// Fredkin returns the controlled-SWAP matrix over [control, target,
// target].
func Fredkin() Matrix {
	return Controlled(Swap())
}
