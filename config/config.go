// Package config loads an optional YAML overlay for the scheduler's
// compile-time tunables, for use by cmd/schedsim. Library consumers of
// package scheduler never need this package: scheduler.DefaultTunables
// matches spec's compile-time constants exactly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-foundations/mlfq/scheduler"
)

// Tunables mirrors scheduler.Tunables for YAML decoding, with the same
// field names in snake_case.
type Tunables struct {
	AgingThresholdTicks int `yaml:"aging_threshold_ticks"`
	PriorityIncrement   int `yaml:"priority_increment"`
	PriorityCap         int `yaml:"priority_cap"`
	L3QuantumTicks      int `yaml:"l3_quantum_ticks"`
	TimerTicks          int `yaml:"timer_ticks"`
}

// Load reads a YAML tunables overlay from path and merges it onto
// scheduler.DefaultTunables(). Zero fields in the file leave the
// default in place, so a partial override file is valid.
func Load(path string) (scheduler.Tunables, error) {
	out := scheduler.DefaultTunables()

	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("config: read %s: %w", path, err)
	}

	var overlay Tunables
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return out, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if overlay.AgingThresholdTicks != 0 {
		out.AgingThresholdTicks = overlay.AgingThresholdTicks
	}
	if overlay.PriorityIncrement != 0 {
		out.PriorityIncrement = overlay.PriorityIncrement
	}
	if overlay.PriorityCap != 0 {
		out.PriorityCap = overlay.PriorityCap
	}
	if overlay.L3QuantumTicks != 0 {
		out.L3QuantumTicks = overlay.L3QuantumTicks
	}
	if overlay.TimerTicks != 0 {
		out.TimerTicks = overlay.TimerTicks
	}

	return out, nil
}
