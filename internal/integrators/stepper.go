package integrators

import (
	"fmt"

	"github.com/san-kum/solarsim/internal/gravity"
)

// Stepper advances the system state by one timestep. Implementations are
// pure: they retain no state between calls and never mutate their inputs.
type Stepper interface {
	Step(f *gravity.Field, pos, vel []gravity.Vec2, masses []float64, dt float64) ([]gravity.Vec2, []gravity.Vec2, error)
	Name() string
}

// New returns the integrator registered under name.
func New(name string) (Stepper, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	}
	return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
}

// Names lists the registered integrators.
func Names() []string {
	return []string{"euler", "rk4"}
}
