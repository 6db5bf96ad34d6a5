package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/theapemachine/qsim"
	"gopkg.in/yaml.v3"
)

// circuitFile is the YAML description of a circuit.
//
//	qubits: 2
//	init:
//	  - qubit: 0
//	    alpha: 0.6
//	    beta: 0.8
//	gates:
//	  - gate: h
//	    qubits: [0]
//	  - gate: cx
//	    qubits: [0, 1]
//	  - gate: measure
type circuitFile struct {
	Qubits int         `yaml:"qubits"`
	Init   []initEntry `yaml:"init"`
	Gates  []gateEntry `yaml:"gates"`
}

type initEntry struct {
	Qubit int     `yaml:"qubit"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

type gateEntry struct {
	Gate   string  `yaml:"gate"`
	Qubits []int   `yaml:"qubits"`
	Theta  float64 `yaml:"theta"`
}

func loadCircuitFile(path string) (*qsim.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file circuitFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	circuit, err := qsim.NewCircuit(file.Qubits)
	if err != nil {
		return nil, err
	}
	for _, init := range file.Init {
		if err := circuit.InitQubit(init.Qubit, complex(init.Alpha, 0), complex(init.Beta, 0)); err != nil {
			return nil, err
		}
	}
	for i, entry := range file.Gates {
		if err := addGate(circuit, entry); err != nil {
			return nil, fmt.Errorf("gate %d (%s): %w", i, entry.Gate, err)
		}
	}
	return circuit, nil
}

func addGate(c *qsim.Circuit, entry gateEntry) error {
	q := entry.Qubits
	need := func(n int) error {
		if len(q) != n {
			return fmt.Errorf("want %d qubits, got %d", n, len(q))
		}
		return nil
	}

	switch strings.ToLower(entry.Gate) {
	case "i", "id":
		return firstErr(need(1), func() error { return c.I(q[0]) })
	case "h", "hadamard":
		return firstErr(need(1), func() error { return c.H(q[0]) })
	case "x":
		return firstErr(need(1), func() error { return c.X(q[0]) })
	case "y":
		return firstErr(need(1), func() error { return c.Y(q[0]) })
	case "z":
		return firstErr(need(1), func() error { return c.Z(q[0]) })
	case "s":
		return firstErr(need(1), func() error { return c.S(q[0]) })
	case "t":
		return firstErr(need(1), func() error { return c.T(q[0]) })
	case "p", "phase":
		return firstErr(need(1), func() error { return c.Phase(q[0], entry.Theta) })
	case "rx":
		return firstErr(need(1), func() error { return c.RX(q[0], entry.Theta) })
	case "ry":
		return firstErr(need(1), func() error { return c.RY(q[0], entry.Theta) })
	case "rz":
		return firstErr(need(1), func() error { return c.RZ(q[0], entry.Theta) })
	case "cx", "cnot":
		return firstErr(need(2), func() error { return c.CNOT(q[0], q[1]) })
	case "cy":
		return firstErr(need(2), func() error { return c.CY(q[0], q[1]) })
	case "cz":
		return firstErr(need(2), func() error { return c.CZ(q[0], q[1]) })
	case "cp", "cphase":
		return firstErr(need(2), func() error { return c.CPhase(q[0], q[1], entry.Theta) })
	case "swap":
		return firstErr(need(2), func() error { return c.Swap(q[0], q[1]) })
	case "ccx", "toffoli":
		return firstErr(need(3), func() error { return c.Toffoli(q[0], q[1], q[2]) })
	case "cswap", "fredkin":
		return firstErr(need(3), func() error { return c.Fredkin(q[0], q[1], q[2]) })
	case "measure", "m":
		return c.Measure(q...)
	default:
		return fmt.Errorf("unknown gate %q", entry.Gate)
	}
}

func firstErr(err error, apply func() error) error {
	if err != nil {
		return err
	}
	return apply()
}
