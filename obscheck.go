package main

import (
	"fmt"

	"github.com/algo-boyz/obscheck/pkg/compare"
	"github.com/algo-boyz/obscheck/pkg/fixture"
	"github.com/algo-boyz/obscheck/pkg/sensortest"
)

type Config struct {
	ExpectedPath, ActualPath string
	Tolerance                float64
	AllMismatches            bool
}

func DefaultConfig() Config {
	return Config{}
}

// run replays the recorded observation through a sensor and compares it with
// the expected fixture, as 3D when the expected fixture has rank 3.
func run(cfg Config) error {
	expected, err := fixture.Load(cfg.ExpectedPath)
	if err != nil {
		return fmt.Errorf("failed to load expected observation: %w", err)
	}
	actual, err := fixture.Load(cfg.ActualPath)
	if err != nil {
		return fmt.Errorf("failed to load actual observation: %w", err)
	}
	if actual.Shape.Len() != expected.Shape.Len() {
		return fmt.Errorf("actual observation has %d values, expected %d", actual.Shape.Len(), expected.Shape.Len())
	}
	comparer := compare.DefaultConfig()
	comparer.Tolerance = cfg.Tolerance
	comparer.AllMismatches = cfg.AllMismatches

	replay := sensortest.NewReplay(cfg.ActualPath, actual)
	if expected.Shape.Rank() == 3 {
		cube, err := expected.Cube()
		if err != nil {
			return err
		}
		return comparer.Observation3D(replay, cube)
	}
	return comparer.Observation(replay, expected.Values)
}
