package integrators

import "github.com/san-kum/solarsim/internal/gravity"

// Euler is the semi-implicit (symplectic) Euler scheme: the velocity is
// advanced first and the position update uses the updated velocity. The
// ordering matters for long-run energy drift and must not be swapped for
// the fully-explicit variant.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f *gravity.Field, pos, vel []gravity.Vec2, masses []float64, dt float64) ([]gravity.Vec2, []gravity.Vec2, error) {
	acc, err := f.Accelerations(pos, masses)
	if err != nil {
		return nil, nil, err
	}

	newPos := make([]gravity.Vec2, len(pos))
	newVel := make([]gravity.Vec2, len(vel))
	for i := range pos {
		newVel[i] = vel[i].Add(acc[i].Scale(dt))
		newPos[i] = pos[i].Add(newVel[i].Scale(dt))
	}
	return newPos, newVel, nil
}
