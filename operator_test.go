package qsim

import (
	"math"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApplySingleQubitGate(t *testing.T) {
	Convey("Given a fresh single-qubit state", t, func() {
		state := NewStateVector(1)

		Convey("Applying X flips |0⟩ to |1⟩", func() {
			next, err := ApplySingleQubitGate(state, PauliX(), 0)
			So(err, ShouldBeNil)
			So(next.Amplitudes[0], ShouldEqual, complex128(0))
			So(next.Amplitudes[1], ShouldEqual, complex128(1))
		})

		Convey("Applying Hadamard twice is the identity", func() {
			once, err := ApplySingleQubitGate(state, Hadamard(), 0)
			So(err, ShouldBeNil)
			twice, err := ApplySingleQubitGate(once, Hadamard(), 0)
			So(err, ShouldBeNil)

			So(cmplx.Abs(twice.Amplitudes[0]-1), ShouldBeLessThan, 1e-9)
			So(cmplx.Abs(twice.Amplitudes[1]), ShouldBeLessThan, 1e-9)
		})

		Convey("The input state is never mutated", func() {
			_, err := ApplySingleQubitGate(state, PauliX(), 0)
			So(err, ShouldBeNil)
			So(state.Amplitudes[0], ShouldEqual, complex128(1))
		})
	})

	Convey("Given a three-qubit superposition", t, func() {
		state := NewStateVector(3)
		var err error
		for q := 0; q < 3; q++ {
			state, err = ApplySingleQubitGate(state, Hadamard(), q)
			So(err, ShouldBeNil)
		}

		Convey("Unitary gates preserve total probability", func() {
			for _, m := range []Matrix{PauliY(), SGate(), TGate(), RotationX(1.234), RotationZ(0.7)} {
				next, err := ApplySingleQubitGate(state, m, 1)
				So(err, ShouldBeNil)
				So(next.Norm(), ShouldAlmostEqual, 1.0, 1e-9)
			}
		})
	})

	Convey("Given invalid arguments", t, func() {
		state := NewStateVector(2)

		Convey("A non-2x2 matrix is rejected", func() {
			_, err := ApplySingleQubitGate(state, Swap(), 0)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "matrix dimension")
		})

		Convey("An out-of-range target is rejected", func() {
			_, err := ApplySingleQubitGate(state, PauliX(), 2)
			So(err, ShouldNotBeNil)

			_, err = ApplySingleQubitGate(state, PauliX(), -1)
			So(err, ShouldNotBeNil)
		})

		Convey("A non-power-of-two state is rejected", func() {
			broken := &StateVector{Amplitudes: make([]complex128, 3)}
			_, err := ApplySingleQubitGate(broken, PauliX(), 0)
			So(err, ShouldEqual, ErrStateSize)
		})
	})
}

func TestApplyMultiQubitGate(t *testing.T) {
	Convey("Given a two-qubit register", t, func() {
		Convey("CNOT does nothing when the control qubit is 0", func() {
			// Qubit order [control, target]: control qubit 0, target qubit 1.
			state := NewStateVector(2)
			state, err := ApplySingleQubitGate(state, PauliX(), 1)
			So(err, ShouldBeNil)

			next, err := ApplyMultiQubitGate(state, Controlled(PauliX()), []int{0, 1})
			So(err, ShouldBeNil)
			So(next.Amplitudes[2], ShouldEqual, complex128(1))
		})

		Convey("CNOT flips the target when the control is 1", func() {
			state := NewStateVector(2)
			state, err := ApplySingleQubitGate(state, PauliX(), 0)
			So(err, ShouldBeNil)

			next, err := ApplyMultiQubitGate(state, Controlled(PauliX()), []int{0, 1})
			So(err, ShouldBeNil)
			// Both qubits set: basis index 0b11.
			So(next.Amplitudes[3], ShouldEqual, complex128(1))
		})

		Convey("SWAP exchanges the two qubits", func() {
			state := NewStateVector(2)
			state, err := ApplySingleQubitGate(state, PauliX(), 0)
			So(err, ShouldBeNil)

			next, err := ApplyMultiQubitGate(state, Swap(), []int{0, 1})
			So(err, ShouldBeNil)
			So(next.Amplitudes[2], ShouldEqual, complex128(1))
		})

		Convey("A multi-qubit unitary preserves total probability", func() {
			state := NewStateVector(2)
			var err error
			state, err = ApplySingleQubitGate(state, Hadamard(), 0)
			So(err, ShouldBeNil)
			state, err = ApplySingleQubitGate(state, RotationY(0.9), 1)
			So(err, ShouldBeNil)

			next, err := ApplyMultiQubitGate(state, Controlled(Phase(math.Pi/3)), []int{0, 1})
			So(err, ShouldBeNil)
			So(next.Norm(), ShouldAlmostEqual, 1.0, 1e-9)
		})
	})

	Convey("Given a three-qubit register", t, func() {
		Convey("Toffoli flips the target only when both controls are set", func() {
			state := NewStateVector(3)
			var err error
			state, err = ApplySingleQubitGate(state, PauliX(), 0)
			So(err, ShouldBeNil)
			state, err = ApplySingleQubitGate(state, PauliX(), 1)
			So(err, ShouldBeNil)

			next, err := ApplyMultiQubitGate(state, Toffoli(), []int{0, 1, 2})
			So(err, ShouldBeNil)
			So(next.Amplitudes[7], ShouldEqual, complex128(1))
		})
	})

	Convey("Given invalid arguments", t, func() {
		state := NewStateVector(3)

		Convey("Duplicate qubits are rejected", func() {
			_, err := ApplyMultiQubitGate(state, Swap(), []int{1, 1})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "duplicate")
		})

		Convey("A dimension mismatch is rejected", func() {
			_, err := ApplyMultiQubitGate(state, Swap(), []int{0, 1, 2})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "matrix dimension")
		})

		Convey("An out-of-range qubit is rejected", func() {
			_, err := ApplyMultiQubitGate(state, Swap(), []int{0, 3})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestInitializeState(t *testing.T) {
	Convey("Given an untouched register", t, func() {
		Convey("Initialization imprints the amplitude pair on one qubit", func() {
			state := NewStateVector(2)
			alpha := complex(0.6, 0)
			beta := complex(0.8, 0)

			next, err := InitializeState(state, 1, alpha, beta)
			So(err, ShouldBeNil)
			So(next.Amplitudes[0], ShouldEqual, alpha)
			So(next.Amplitudes[2], ShouldEqual, beta)
			So(next.Norm(), ShouldAlmostEqual, 1.0, 1e-9)
		})

		Convey("Other qubits' amplitudes survive initialization", func() {
			state := NewStateVector(2)
			state, err := ApplySingleQubitGate(state, Hadamard(), 0)
			So(err, ShouldBeNil)

			next, err := InitializeState(state, 1, 0, 1)
			So(err, ShouldBeNil)
			// Qubit 1 forced to |1⟩, qubit 0 still in superposition.
			So(cmplx.Abs(next.Amplitudes[2]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-9)
			So(cmplx.Abs(next.Amplitudes[3]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-9)
			So(cmplx.Abs(next.Amplitudes[0]), ShouldBeLessThan, 1e-12)
		})

		Convey("A qubit already in |1⟩ is relabeled onto the new pair", func() {
			state := NewStateVector(1)
			state, err := ApplySingleQubitGate(state, PauliX(), 0)
			So(err, ShouldBeNil)

			next, err := InitializeState(state, 0, complex(0.6, 0), complex(0.8, 0))
			So(err, ShouldBeNil)
			So(next.Amplitudes[0], ShouldEqual, complex(0.6, 0))
			So(next.Amplitudes[1], ShouldEqual, complex(0.8, 0))
		})
	})
}
