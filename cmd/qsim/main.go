package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qsim"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "qsim",
		Short: "qsim - state-vector quantum circuit simulator",
		Long: `qsim simulates small quantum circuits on classical hardware by tracking
the full complex amplitude vector, applying gate matrices, and sampling
probabilistic measurements over repeated shots.`,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Int("shots", 1000, "Number of measurement shots")
	rootCmd.PersistentFlags().Int("workers", 1, "Concurrent shot workers")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 = time-based)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDemoCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("qsim version %s\n", version)
			}
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [bell|ghz|teleport]",
		Short: "Run a built-in example circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				circuit *qsim.Circuit
				err     error
			)
			switch strings.ToLower(args[0]) {
			case "bell":
				circuit, err = qsim.BellPair()
			case "ghz":
				circuit, err = qsim.GHZ(3)
			case "teleport":
				circuit, err = qsim.Teleportation(complex(0.6, 0), complex(0.8, 0))
			default:
				return fmt.Errorf("unknown demo %q (want bell, ghz, or teleport)", args[0])
			}
			if err != nil {
				return err
			}
			return simulate(cmd, circuit)
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <circuit.yaml>",
		Short: "Run a circuit described in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			circuit, err := loadCircuitFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load circuit: %w", err)
			}
			return simulate(cmd, circuit)
		},
	}
}

func simulate(cmd *cobra.Command, circuit *qsim.Circuit) error {
	shots, _ := cmd.Flags().GetInt("shots")
	workers, _ := cmd.Flags().GetInt("workers")
	seed, _ := cmd.Flags().GetUint64("seed")
	jsonOut, _ := cmd.Flags().GetBool("json")

	config := qsim.NewConfig()
	config.Workers = workers
	if seed != 0 {
		config.Seed = seed
	}

	sim := qsim.NewSimulator(circuit, config)
	result, err := sim.Run(shots)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(circuit, result)
	}

	fmt.Println(qsim.Draw(circuit))
	if baseline, err := sim.Baseline(); err == nil {
		fmt.Println("Pre-measurement amplitudes:")
		fmt.Println(baseline)
	}
	fmt.Printf("Run %s (%d shots in %s)\n", result.ID, result.Shots, result.Elapsed)
	for i, h := range result.Histograms {
		fmt.Printf("measurement %d: %s\n", i, h)
	}
	return nil
}

func writeJSON(circuit *qsim.Circuit, result *qsim.Result) error {
	type histogramOut struct {
		Width  int            `json:"width"`
		Counts map[string]int `json:"counts"`
	}
	out := struct {
		ID         string         `json:"id"`
		Qubits     int            `json:"qubits"`
		Shots      int            `json:"shots"`
		ElapsedMS  int64          `json:"elapsed_ms"`
		Histograms []histogramOut `json:"histograms"`
	}{
		ID:        result.ID.String(),
		Qubits:    circuit.Qubits(),
		Shots:     result.Shots,
		ElapsedMS: result.Elapsed.Milliseconds(),
	}
	for _, h := range result.Histograms {
		counts := make(map[string]int, len(h.Counts))
		for outcome, n := range h.Counts {
			counts[fmt.Sprintf("%0*b", h.Width, outcome)] = n
		}
		out.Histograms = append(out.Histograms, histogramOut{Width: h.Width, Counts: counts})
	}
	return json.NewEncoder(os.Stdout).Encode(out)
}
