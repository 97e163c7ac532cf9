package sim

import (
	"fmt"

	"github.com/san-kum/solarsim/internal/gravity"
)

// Config controls one simulation run.
type Config struct {
	Steps         int
	Dt            float64
	TrackCentroid bool
}

// Result holds the buffers accumulated over a completed run. Each body's
// trajectory has Steps+1 points; index 0 is the initial condition.
type Result struct {
	Trajectories    [][]gravity.Vec2
	Times           []float64
	Centroid        []gravity.Vec2 // nil unless TrackCentroid was set
	FinalPositions  []gravity.Vec2
	FinalVelocities []gravity.Vec2
}

// Bodies returns the number of simulated bodies.
func (r *Result) Bodies() int {
	return len(r.Trajectories)
}

// StepError wraps an integration failure with the step it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4e s): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
