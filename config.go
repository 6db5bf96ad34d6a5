package qsim

import "time"

// Config tunes how a Simulator executes its shots.
type Config struct {
	// Workers is the number of concurrent shot workers. Each worker gets
	// its own RandomSource and its own partial histograms.
	Workers int

	// Seed drives every derived RandomSource; runs with the same seed,
	// circuit, and worker count reproduce the same histograms.
	Seed uint64
}

func NewConfig() *Config {
	return &Config{
		Workers: 1,
		Seed:    uint64(time.Now().UnixNano()),
	}
}
