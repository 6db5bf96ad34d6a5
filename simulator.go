package qsim

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

var ErrShotCount = errors.New("shot count must be positive")

/*
Simulator runs repeated trials of a recorded circuit. The gates before the
first measurement marker are deterministic, so their result is computed once
and shared read-only by every shot; each shot clones that baseline before
walking the probabilistic remainder.
*/
type Simulator struct {
	circuit *Circuit
	config  *Config
	metrics *Metrics
}

// Result carries the aggregated outcome of one Run.
type Result struct {
	ID         uuid.UUID
	Histograms []*Histogram
	Shots      int
	Elapsed    time.Duration
}

// NewSimulator creates a simulator for the circuit. A nil config gets the
// defaults from NewConfig.
func NewSimulator(circuit *Circuit, config *Config) *Simulator {
	if config == nil {
		config = NewConfig()
	}
	errnie.Info(
		"NewSimulator - qubits %d, gates %d, workers %d",
		circuit.Qubits(),
		len(circuit.Gates()),
		config.Workers,
	)
	return &Simulator{
		circuit: circuit,
		config:  config,
		metrics: newMetrics(),
	}
}

// Metrics returns the simulator's cumulative run metrics.
func (s *Simulator) Metrics() *Metrics {
	return s.metrics
}

// applyGate dispatches a unitary descriptor to the matching operator.
func applyGate(state *StateVector, g Gate) (*StateVector, error) {
	if len(g.Qubits) == 1 {
		return ApplySingleQubitGate(state, g.Matrix, g.Qubits[0])
	}
	return ApplyMultiQubitGate(state, g.Matrix, g.Qubits)
}

/*
Baseline returns the deterministic state of the circuit: initializations
applied to |00...0⟩, then every gate up to the first measurement marker.
Collaborators use it for amplitude rendering; Run uses it as the shared
starting point of every shot.
*/
func (s *Simulator) Baseline() (*StateVector, error) {
	state := NewStateVector(s.circuit.Qubits())

	var err error
	for _, init := range s.circuit.Initializations() {
		state, err = InitializeState(state, init.Qubit, init.Alpha, init.Beta)
		if err != nil {
			return nil, fmt.Errorf("initialization of qubit %d: %w", init.Qubit, err)
		}
	}
	for _, g := range s.circuit.Gates() {
		if g.IsMeasurement() {
			break
		}
		state, err = applyGate(state, g)
		if err != nil {
			return nil, fmt.Errorf("gate %s: %w", g.Kind, err)
		}
	}
	return state, nil
}

// prefixLength returns the number of leading gates before the first
// measurement marker.
func (s *Simulator) prefixLength() int {
	for i, g := range s.circuit.Gates() {
		if g.IsMeasurement() {
			return i
		}
	}
	return len(s.circuit.Gates())
}

/*
Run executes the circuit for the requested number of shots and returns one
histogram per measurement marker, in program order. Every shot traverses
the identical marker sequence, so histogram i always aggregates the i-th
measurement across all shots, and its counts sum to exactly the shot count.

With Config.Workers > 1 the shots are spread across a worker pool. Each
worker owns a RandomSource derived from the configured seed and a private
set of partial histograms; the partials are merged once all workers have
joined, so no generator state or counter is ever shared hot.
*/
func (s *Simulator) Run(shots int) (*Result, error) {
	if shots < 1 {
		return nil, fmt.Errorf("%w: %d", ErrShotCount, shots)
	}

	startTime := time.Now()
	errnie.Info("Run - shots %d, qubits %d", shots, s.circuit.Qubits())

	baseline, err := s.Baseline()
	if err != nil {
		return nil, err
	}
	remainder := s.circuit.Gates()[s.prefixLength():]

	// One histogram slot per marker, bound by position in program order.
	var widths []int
	for _, g := range remainder {
		if g.IsMeasurement() {
			widths = append(widths, s.measureWidth(g))
		}
	}

	workers := s.config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > shots {
		workers = shots
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		partials = make([][]*Histogram, workers)
		firstErr error
	)
	for w := 0; w < workers; w++ {
		share := shots / workers
		if w < shots%workers {
			share++
		}

		wg.Add(1)
		go func(worker, share int) {
			defer wg.Done()

			rng := NewRandomSource(s.config.Seed + uint64(worker)*0x5851f42d4c957f2d)
			local := make([]*Histogram, len(widths))
			for i, width := range widths {
				local[i] = NewHistogram(width)
			}

			for shot := 0; shot < share; shot++ {
				if err := s.runShot(baseline, remainder, local, rng); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
			}
			partials[worker] = local
		}(w, share)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	histograms := make([]*Histogram, len(widths))
	for i, width := range widths {
		histograms[i] = NewHistogram(width)
	}
	for _, local := range partials {
		for i, partial := range local {
			histograms[i].Merge(partial)
		}
	}

	gateCount := int64(s.prefixLength()) +
		int64(shots)*int64(len(remainder)-len(widths))
	s.metrics.recordRun(startTime, shots, gateCount, int64(shots)*int64(len(widths)))

	return &Result{
		ID:         uuid.New(),
		Histograms: histograms,
		Shots:      shots,
		Elapsed:    time.Since(startTime),
	}, nil
}

// measureWidth returns the outcome width of a measurement marker: the size
// of its qubit subset, or the whole register for a full measurement.
func (s *Simulator) measureWidth(g Gate) int {
	if len(g.Qubits) == 0 {
		return s.circuit.Qubits()
	}
	return len(g.Qubits)
}

// runShot clones the baseline and walks the post-prefix sequence once,
// recording each sampled outcome into the histogram bound to its marker.
func (s *Simulator) runShot(baseline *StateVector, remainder []Gate, histograms []*Histogram, rng RandomSource) error {
	state := baseline.Clone()

	var err error
	position := 0
	for _, g := range remainder {
		if !g.IsMeasurement() {
			state, err = applyGate(state, g)
			if err != nil {
				return fmt.Errorf("gate %s: %w", g.Kind, err)
			}
			continue
		}

		var outcome int
		if len(g.Qubits) == 0 {
			outcome = SampleMeasurement(state, rng)
			state, err = CollapseToState(state, outcome)
		} else {
			outcome = SamplePartialMeasurement(state, g.Qubits, rng)
			state, err = CollapseToPartialMeasurement(state, g.Qubits, outcome)
		}
		if err != nil {
			return fmt.Errorf("measurement %d: %w", position, err)
		}
		histograms[position].Record(outcome)
		position++
	}
	return nil
}
