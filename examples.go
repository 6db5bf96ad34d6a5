package qsim

import "fmt"

/*
BellPair builds the canonical two-qubit entanglement circuit: H on qubit 0,
CNOT from 0 to 1, full measurement. Across many shots only 00 and 11 occur,
split evenly.
*/
func BellPair() (*Circuit, error) {
	c, err := NewCircuit(2)
	if err != nil {
		return nil, err
	}
	if err = c.H(0); err != nil {
		return nil, err
	}
	if err = c.CNOT(0, 1); err != nil {
		return nil, err
	}
	if err = c.Measure(); err != nil {
		return nil, err
	}
	return c, nil
}

// GHZ builds an n-qubit Greenberger-Horne-Zeilinger circuit: all qubits end
// up perfectly correlated, measuring all zeros or all ones.
func GHZ(qubits int) (*Circuit, error) {
	c, err := NewCircuit(qubits)
	if err != nil {
		return nil, err
	}
	if err = c.H(0); err != nil {
		return nil, err
	}
	for q := 1; q < qubits; q++ {
		if err = c.CNOT(0, q); err != nil {
			return nil, err
		}
	}
	if err = c.Measure(); err != nil {
		return nil, err
	}
	return c, nil
}

/*
Teleportation builds a three-qubit teleportation circuit with the
corrections deferred to quantum-controlled gates: qubit 0 carries the
message state (α, β), qubits 1 and 2 share a Bell pair, and after the
protocol qubit 2's measurement statistics reproduce the message.
*/
func Teleportation(alpha, beta complex128) (*Circuit, error) {
	c, err := NewCircuit(3)
	if err != nil {
		return nil, err
	}
	if err = c.InitQubit(0, alpha, beta); err != nil {
		return nil, fmt.Errorf("message state: %w", err)
	}

	steps := []func() error{
		func() error { return c.H(1) },
		func() error { return c.CNOT(1, 2) },
		func() error { return c.CNOT(0, 1) },
		func() error { return c.H(0) },
		func() error { return c.CNOT(1, 2) },
		func() error { return c.CZ(0, 2) },
		func() error { return c.Measure(2) },
	}
	for _, step := range steps {
		if err = step(); err != nil {
			return nil, err
		}
	}
	return c, nil
}
