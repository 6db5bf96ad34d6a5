package qsim

import (
	"fmt"
	"strings"
)

// controlCount maps each gate kind to how many of its leading qubits act as
// controls in the drawing.
func controlCount(kind GateKind) int {
	switch kind {
	case KindControlledX, KindControlledY, KindControlledZ, KindControlledPhase, KindFredkin:
		return 1
	case KindToffoli:
		return 2
	default:
		return 0
	}
}

// cell returns the drawing fragment for one qubit lane in one gate column:
// a control dot, a boxed target symbol, a connector through lanes the gate
// spans, or empty for uninvolved lanes.
func cell(g Gate, qubit int) string {
	qubits := g.Qubits
	if g.IsMeasurement() && len(qubits) == 0 {
		return "M"
	}

	for i, q := range qubits {
		if q != qubit {
			continue
		}
		switch {
		case g.IsMeasurement():
			return "M"
		case i < controlCount(g.Kind):
			return "●"
		case g.Kind == KindSwap || g.Kind == KindFredkin:
			return "x"
		default:
			return "[" + g.Kind.String() + "]"
		}
	}

	// Lanes strictly inside a multi-qubit gate's span get a connector.
	if len(qubits) > 1 {
		lo, hi := qubits[0], qubits[0]
		for _, q := range qubits {
			if q < lo {
				lo = q
			}
			if q > hi {
				hi = q
			}
		}
		if qubit > lo && qubit < hi {
			return "│"
		}
	}
	return ""
}

/*
Draw renders the circuit as ASCII art: one lane per qubit, one column per
gate, controls as dots and targets boxed by symbol.

	q0: ──[H]──●───M
	q1: ──────[X]──M
*/
func Draw(c *Circuit) string {
	gates := c.Gates()
	columns := make([][]string, len(gates))
	widths := make([]int, len(gates))
	for col, g := range gates {
		columns[col] = make([]string, c.Qubits())
		for q := 0; q < c.Qubits(); q++ {
			fragment := cell(g, q)
			columns[col][q] = fragment
			if n := len([]rune(fragment)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	var b strings.Builder
	for q := 0; q < c.Qubits(); q++ {
		fmt.Fprintf(&b, "q%d: ", q)
		for col := range columns {
			fragment := columns[col][q]
			if fragment == "" {
				fragment = "─"
			}
			pad := widths[col] - len([]rune(fragment))
			if pad < 0 {
				pad = 0
			}
			left := pad / 2
			right := pad - left
			b.WriteString("─" + strings.Repeat("─", left) + fragment + strings.Repeat("─", right) + "─")
		}
		b.WriteString("\n")
	}
	return b.String()
}
