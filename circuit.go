package qsim

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// MaxQubits caps the register size; 2^30 amplitudes is already 16 GiB.
const MaxQubits = 30

var (
	ErrQubitCount      = errors.New("qubit count out of range")
	ErrNotUnitary      = errors.New("matrix is not unitary")
	ErrCustomGateSize  = errors.New("custom gate must act on 1 to 4 qubits")
	ErrAlreadyTouched  = errors.New("qubit already touched by a gate")
	ErrInvalidInitNorm = errors.New("initialization amplitudes are not normalized")
)

// Initialization imprints a single-qubit state α|0⟩ + β|1⟩ on one qubit
// before any gate runs.
type Initialization struct {
	Qubit int
	Alpha complex128
	Beta  complex128
}

/*
Circuit records an ordered gate sequence over a fixed qubit register,
validating every operation as it is added so the simulator only ever sees
well-formed descriptors. The recorded sequence is immutable once simulation
starts and is shared by reference across shots; only state vectors are
cloned.
*/
type Circuit struct {
	qubits  int
	gates   []Gate
	inits   []Initialization
	touched []bool
}

// NewCircuit creates an empty circuit over the given number of qubits.
func NewCircuit(qubits int) (*Circuit, error) {
	if qubits < 1 || qubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrQubitCount, qubits, MaxQubits)
	}
	return &Circuit{
		qubits:  qubits,
		touched: make([]bool, qubits),
	}, nil
}

// Qubits returns the register size.
func (c *Circuit) Qubits() int {
	return c.qubits
}

// Gates returns the recorded sequence. Callers must treat it as read-only.
func (c *Circuit) Gates() []Gate {
	return c.gates
}

// Initializations returns the recorded pre-gate qubit initializations.
func (c *Circuit) Initializations() []Initialization {
	return c.inits
}

func (c *Circuit) checkQubits(qubits ...int) error {
	seen := make(map[int]bool, len(qubits))
	for _, q := range qubits {
		if q < 0 || q >= c.qubits {
			return fmt.Errorf("%w: qubit %d of %d", ErrQubitRange, q, c.qubits)
		}
		if seen[q] {
			return fmt.Errorf("%w: qubit %d", ErrDuplicateQubit, q)
		}
		seen[q] = true
	}
	return nil
}

func (c *Circuit) record(kind GateKind, m Matrix, qubits ...int) error {
	if err := c.checkQubits(qubits...); err != nil {
		return err
	}
	for _, q := range qubits {
		c.touched[q] = true
	}
	c.gates = append(c.gates, Gate{Kind: kind, Matrix: m, Qubits: qubits})
	return nil
}

// I applies the identity gate; it only occupies a drawing column.
func (c *Circuit) I(q int) error { return c.record(KindIdentity, Identity(), q) }

// H applies a Hadamard gate to one qubit.
func (c *Circuit) H(q int) error { return c.record(KindHadamard, Hadamard(), q) }

// X applies a Pauli-X (bit flip) to one qubit.
func (c *Circuit) X(q int) error { return c.record(KindPauliX, PauliX(), q) }

// Y applies a Pauli-Y to one qubit.
func (c *Circuit) Y(q int) error { return c.record(KindPauliY, PauliY(), q) }

// Z applies a Pauli-Z (phase flip) to one qubit.
func (c *Circuit) Z(q int) error { return c.record(KindPauliZ, PauliZ(), q) }

// S applies the quarter-turn phase gate to one qubit.
func (c *Circuit) S(q int) error { return c.record(KindS, SGate(), q) }

// T applies the eighth-turn phase gate to one qubit.
func (c *Circuit) T(q int) error { return c.record(KindT, TGate(), q) }

// Phase applies a phase shift of theta radians to one qubit.
func (c *Circuit) Phase(q int, theta float64) error {
	return c.record(KindPhase, Phase(theta), q)
}

// RX rotates one qubit by theta around the Bloch X axis.
func (c *Circuit) RX(q int, theta float64) error {
	return c.record(KindRotationX, RotationX(theta), q)
}

// RY rotates one qubit by theta around the Bloch Y axis.
func (c *Circuit) RY(q int, theta float64) error {
	return c.record(KindRotationY, RotationY(theta), q)
}

// RZ rotates one qubit by theta around the Bloch Z axis.
func (c *Circuit) RZ(q int, theta float64) error {
	return c.record(KindRotationZ, RotationZ(theta), q)
}

// CNOT applies a controlled-X with the control listed first.
func (c *Circuit) CNOT(control, target int) error {
	return c.record(KindControlledX, Controlled(PauliX()), control, target)
}

// CY applies a controlled-Y.
func (c *Circuit) CY(control, target int) error {
	return c.record(KindControlledY, Controlled(PauliY()), control, target)
}

// CZ applies a controlled-Z.
func (c *Circuit) CZ(control, target int) error {
	return c.record(KindControlledZ, Controlled(PauliZ()), control, target)
}

// CPhase applies a controlled phase shift of theta radians.
func (c *Circuit) CPhase(control, target int, theta float64) error {
	return c.record(KindControlledPhase, Controlled(Phase(theta)), control, target)
}

// Swap exchanges two qubits.
func (c *Circuit) Swap(a, b int) error {
	return c.record(KindSwap, Swap(), a, b)
}

// Toffoli applies a doubly-controlled X.
func (c *Circuit) Toffoli(control1, control2, target int) error {
	return c.record(KindToffoli, Toffoli(), control1, control2, target)
}

// Fredkin applies a controlled swap of targetA and targetB.
func (c *Circuit) Fredkin(control, targetA, targetB int) error {
	return c.record(KindFredkin, Fredkin(), control, targetA, targetB)
}

/*
Custom applies an arbitrary unitary over 1 to 4 qubits, listed most
significant matrix bit first. The matrix must be 2^k on a side for k qubits
and must pass IsUnitary before it is admitted.
*/
func (c *Circuit) Custom(m Matrix, qubits ...int) error {
	k := len(qubits)
	if k < 1 || k > 4 {
		return fmt.Errorf("%w: got %d", ErrCustomGateSize, k)
	}
	if m.Dim() != 1<<k {
		return fmt.Errorf("%w: want %dx%d for %d qubits, got %dx%d",
			ErrMatrixSize, 1<<k, 1<<k, k, m.Dim(), m.Dim())
	}
	if !IsUnitary(m) {
		return ErrNotUnitary
	}
	return c.record(KindCustom, m, qubits...)
}

/*
InitQubit imprints α|0⟩ + β|1⟩ on a qubit that no gate has touched yet. The
amplitude pair must be normalized. Once any gate references the qubit, the
purity assumption behind initialization no longer holds and the call is
rejected.
*/
func (c *Circuit) InitQubit(q int, alpha, beta complex128) error {
	if err := c.checkQubits(q); err != nil {
		return err
	}
	if c.touched[q] {
		return fmt.Errorf("%w: qubit %d", ErrAlreadyTouched, q)
	}
	norm := cmplx.Abs(alpha)*cmplx.Abs(alpha) + cmplx.Abs(beta)*cmplx.Abs(beta)
	if norm < 1-1e-9 || norm > 1+1e-9 {
		return fmt.Errorf("%w: |α|²+|β|² = %f", ErrInvalidInitNorm, norm)
	}
	c.inits = append(c.inits, Initialization{Qubit: q, Alpha: alpha, Beta: beta})
	return nil
}

// Measure records a measurement marker over the named qubits, or over the
// whole register when none are named.
func (c *Circuit) Measure(qubits ...int) error {
	if err := c.checkQubits(qubits...); err != nil {
		return err
	}
	if len(qubits) == 0 {
		for q := range c.touched {
			c.touched[q] = true
		}
	}
	for _, q := range qubits {
		c.touched[q] = true
	}
	c.gates = append(c.gates, Gate{Kind: KindMeasure, Qubits: qubits})
	return nil
}
