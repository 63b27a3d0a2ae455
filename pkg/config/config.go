package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nstd-go/circq/internal/testbench"
)

// Workload is an alias for testbench.Config. This allows other programs to
// import workload definitions without pulling in the entire testbench
// package.
type Workload = testbench.Config

// Suite is a full benchmark run: the workloads to drive and how many times
// to repeat each one.
type Suite struct {
	Iterations int        `yaml:"iterations"`
	Workloads  []Workload `yaml:"workloads"`
}

// DefaultSuite returns the built-in suite used when no suite file is given.
func DefaultSuite() Suite {
	return Suite{
		Iterations: 5,
		Workloads: []Workload{
			// Tiny residency: the ring stays at minimum capacity and every
			// slot is reused constantly.
			{Name: "churn-tiny", Ops: 1_000_000, Resident: 8, Burst: 4},
			// Steady state with a wrapped live range of 1k elements.
			{Name: "steady-wrapped", Ops: 1_000_000, Resident: 1024, Burst: 64},
			// Large bursts force the growth path early, then exercise long
			// linear runs of pushes and pops.
			{Name: "burst-4k", Ops: 1_000_000, Resident: 0, Burst: 4096},
		},
	}
}

// Load reads a Suite from a YAML file. Missing or non-positive iteration
// counts default to 1; a suite with no workloads is an error.
func Load(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("parse suite %q: %w", path, err)
	}
	if s.Iterations < 1 {
		s.Iterations = 1
	}
	if len(s.Workloads) == 0 {
		return Suite{}, fmt.Errorf("suite %q has no workloads", path)
	}
	for i, w := range s.Workloads {
		if w.Name == "" {
			return Suite{}, fmt.Errorf("suite %q: workload %d has no name", path, i)
		}
		if w.Ops < 1 {
			return Suite{}, fmt.Errorf("suite %q: workload %q has no ops", path, w.Name)
		}
	}
	return s, nil
}
