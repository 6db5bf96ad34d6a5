package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func testConfig(workers int) *Config {
	return &Config{Workers: workers, Seed: 0xfeedface}
}

func TestSimulatorRun(t *testing.T) {
	Convey("Given a Bell pair circuit", t, func() {
		circuit, err := BellPair()
		So(err, ShouldBeNil)

		Convey("1000 shots only ever produce 00 and 11, split evenly", func() {
			sim := NewSimulator(circuit, testConfig(1))
			result, err := sim.Run(1000)
			So(err, ShouldBeNil)
			So(result.Histograms, ShouldHaveLength, 1)

			h := result.Histograms[0]
			So(h.Width, ShouldEqual, 2)
			So(h.Total(), ShouldEqual, 1000)
			So(h.Counts[0b01], ShouldEqual, 0)
			So(h.Counts[0b10], ShouldEqual, 0)
			So(h.Counts[0b00], ShouldBeBetween, 400, 600)
			So(h.Counts[0b11], ShouldBeBetween, 400, 600)
		})

		Convey("The same seed reproduces the same histogram", func() {
			first, err := NewSimulator(circuit, testConfig(1)).Run(200)
			So(err, ShouldBeNil)
			second, err := NewSimulator(circuit, testConfig(1)).Run(200)
			So(err, ShouldBeNil)
			So(second.Histograms[0].Counts, ShouldResemble, first.Histograms[0].Counts)
		})

		Convey("Concurrent workers agree on the statistics", func() {
			sim := NewSimulator(circuit, testConfig(4))
			result, err := sim.Run(1000)
			So(err, ShouldBeNil)

			h := result.Histograms[0]
			So(h.Total(), ShouldEqual, 1000)
			So(h.Counts[0b01], ShouldEqual, 0)
			So(h.Counts[0b10], ShouldEqual, 0)
			So(h.Counts[0b00], ShouldBeBetween, 400, 600)
		})

		Convey("Each run gets its own ID and elapsed time", func() {
			sim := NewSimulator(circuit, testConfig(1))
			first, err := sim.Run(10)
			So(err, ShouldBeNil)
			second, err := sim.Run(10)
			So(err, ShouldBeNil)
			So(first.ID.String(), ShouldNotEqual, second.ID.String())
		})

		Convey("A non-positive shot count is rejected", func() {
			sim := NewSimulator(circuit, testConfig(1))
			_, err := sim.Run(0)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a circuit with gates after a measurement", t, func() {
		circuit, err := NewCircuit(2)
		So(err, ShouldBeNil)
		So(circuit.H(0), ShouldBeNil)
		So(circuit.Measure(0), ShouldBeNil)
		So(circuit.X(1), ShouldBeNil)
		So(circuit.Measure(1), ShouldBeNil)

		Convey("Each marker gets its own histogram in program order", func() {
			sim := NewSimulator(circuit, testConfig(1))
			result, err := sim.Run(500)
			So(err, ShouldBeNil)
			So(result.Histograms, ShouldHaveLength, 2)

			first, second := result.Histograms[0], result.Histograms[1]
			So(first.Width, ShouldEqual, 1)
			So(first.Total(), ShouldEqual, 500)
			So(first.Counts[0], ShouldBeBetween, 180, 320)

			// The X after the first marker runs on every shot.
			So(second.Total(), ShouldEqual, 500)
			So(second.Counts[1], ShouldEqual, 500)
		})
	})

	Convey("Given a GHZ circuit over 3 qubits", t, func() {
		circuit, err := GHZ(3)
		So(err, ShouldBeNil)

		Convey("Only the all-zero and all-one outcomes occur", func() {
			sim := NewSimulator(circuit, testConfig(2))
			result, err := sim.Run(600)
			So(err, ShouldBeNil)

			h := result.Histograms[0]
			So(h.Total(), ShouldEqual, 600)
			So(h.Counts[0b000]+h.Counts[0b111], ShouldEqual, 600)
		})
	})

	Convey("Given a teleportation circuit", t, func() {
		circuit, err := Teleportation(complex(0.6, 0), complex(0.8, 0))
		So(err, ShouldBeNil)

		Convey("The target qubit reproduces the message statistics", func() {
			sim := NewSimulator(circuit, testConfig(1))
			result, err := sim.Run(1000)
			So(err, ShouldBeNil)

			h := result.Histograms[0]
			So(h.Width, ShouldEqual, 1)
			So(h.Total(), ShouldEqual, 1000)
			// P(1) = |0.8|² = 0.64.
			So(h.Counts[1], ShouldBeBetween, 560, 720)
		})
	})

	Convey("Given a circuit with an initialization", t, func() {
		circuit, err := NewCircuit(1)
		So(err, ShouldBeNil)
		So(circuit.InitQubit(0, 0, 1), ShouldBeNil)
		So(circuit.Measure(), ShouldBeNil)

		Convey("The imprinted state drives the outcome", func() {
			sim := NewSimulator(circuit, testConfig(1))
			result, err := sim.Run(50)
			So(err, ShouldBeNil)
			So(result.Histograms[0].Counts[1], ShouldEqual, 50)
		})
	})

	Convey("Given a simulator that has run", t, func() {
		circuit, err := BellPair()
		So(err, ShouldBeNil)
		sim := NewSimulator(circuit, testConfig(1))
		_, err = sim.Run(100)
		So(err, ShouldBeNil)

		Convey("Metrics reflect the completed run", func() {
			snapshot := sim.Metrics().ExportMetrics()
			So(snapshot["run_count"], ShouldEqual, int64(1))
			So(snapshot["shot_count"], ShouldEqual, int64(100))
			So(snapshot["measurements_taken"], ShouldEqual, int64(100))
		})
	})
}

func TestSimulatorBaseline(t *testing.T) {
	Convey("Given a Bell pair circuit", t, func() {
		circuit, err := BellPair()
		So(err, ShouldBeNil)
		sim := NewSimulator(circuit, testConfig(1))

		Convey("The baseline is the pre-measurement entangled state", func() {
			baseline, err := sim.Baseline()
			So(err, ShouldBeNil)
			So(baseline.Norm(), ShouldAlmostEqual, 1.0, 1e-9)

			probs := baseline.Probabilities()
			So(probs[0b00], ShouldAlmostEqual, 0.5, 1e-9)
			So(probs[0b11], ShouldAlmostEqual, 0.5, 1e-9)
			So(probs[0b01], ShouldAlmostEqual, 0.0, 1e-12)
		})

		Convey("Repeated runs never disturb the baseline", func() {
			before, err := sim.Baseline()
			So(err, ShouldBeNil)
			_, err = sim.Run(100)
			So(err, ShouldBeNil)
			after, err := sim.Baseline()
			So(err, ShouldBeNil)
			So(after.Amplitudes, ShouldResemble, before.Amplitudes)
		})
	})
}
