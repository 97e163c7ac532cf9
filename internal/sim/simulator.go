package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/solarsim/internal/gravity"
	"github.com/san-kum/solarsim/internal/integrators"
)

// Simulator owns the time loop: it repeatedly applies one integrator to
// the current state and records trajectories. It has no mutable state of
// its own; every Run starts from the caller's initial conditions.
type Simulator struct {
	field   *gravity.Field
	stepper integrators.Stepper
}

// New builds a Simulator for the named integration method. An unknown
// method is a configuration error, reported before any run begins.
func New(field *gravity.Field, method string) (*Simulator, error) {
	stepper, err := integrators.New(method)
	if err != nil {
		return nil, err
	}
	return &Simulator{field: field, stepper: stepper}, nil
}

// Method returns the name of the selected integrator.
func (s *Simulator) Method() string {
	return s.stepper.Name()
}

// Run advances the system cfg.Steps times from the given initial state.
// The first force-model error aborts the whole run; no partial buffers
// are returned. Context cancellation is honored between steps.
func (s *Simulator) Run(ctx context.Context, positions, velocities []gravity.Vec2, masses []float64, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(positions) != len(masses) || len(velocities) != len(masses) {
		return nil, gravity.ErrDimensionMismatch
	}
	if len(masses) == 0 {
		return nil, fmt.Errorf("sim: at least one body required")
	}

	n := len(masses)
	result := &Result{
		Trajectories: make([][]gravity.Vec2, n),
		Times:        make([]float64, 0, cfg.Steps+1),
	}
	for i := range result.Trajectories {
		result.Trajectories[i] = make([]gravity.Vec2, 0, cfg.Steps+1)
	}
	if cfg.TrackCentroid {
		result.Centroid = make([]gravity.Vec2, 0, cfg.Steps+1)
	}

	pos := clone(positions)
	vel := clone(velocities)

	record := func(t float64) {
		for i := range pos {
			result.Trajectories[i] = append(result.Trajectories[i], pos[i])
		}
		result.Times = append(result.Times, t)
		if cfg.TrackCentroid {
			result.Centroid = append(result.Centroid, gravity.Centroid(pos, masses))
		}
	}
	record(0)

	for step := 1; step <= cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		newPos, newVel, err := s.stepper.Step(s.field, pos, vel, masses, cfg.Dt)
		if err != nil {
			return nil, &StepError{Step: step, Time: float64(step) * cfg.Dt, Wrapped: err}
		}

		pos, vel = newPos, newVel
		record(float64(step) * cfg.Dt)
	}

	result.FinalPositions = pos
	result.FinalVelocities = vel
	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Steps < 1 {
		return fmt.Errorf("sim: steps must be at least 1, got %d", cfg.Steps)
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %f", cfg.Dt)
	}
	return nil
}

func clone(vs []gravity.Vec2) []gravity.Vec2 {
	c := make([]gravity.Vec2, len(vs))
	copy(c, vs)
	return c
}
