package integrators

import "github.com/san-kum/solarsim/internal/gravity"

// RK4 is the classical 4th-order Runge-Kutta scheme applied to the coupled
// (position, velocity) system: velocity is the derivative of position and
// acceleration the derivative of velocity. Each step evaluates the force
// model four times; a singularity at any stage aborts the step.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(f *gravity.Field, pos, vel []gravity.Vec2, masses []float64, dt float64) ([]gravity.Vec2, []gravity.Vec2, error) {
	n := len(pos)

	a1, err := f.Accelerations(pos, masses)
	if err != nil {
		return nil, nil, err
	}
	k1x := scaled(vel, dt)
	k1v := scaled(a1, dt)

	a2, err := f.Accelerations(offset(pos, k1x, 0.5), masses)
	if err != nil {
		return nil, nil, err
	}
	k2x := make([]gravity.Vec2, n)
	for i := range k2x {
		k2x[i] = vel[i].Add(k1v[i].Scale(0.5)).Scale(dt)
	}
	k2v := scaled(a2, dt)

	a3, err := f.Accelerations(offset(pos, k2x, 0.5), masses)
	if err != nil {
		return nil, nil, err
	}
	k3x := make([]gravity.Vec2, n)
	for i := range k3x {
		k3x[i] = vel[i].Add(k2v[i].Scale(0.5)).Scale(dt)
	}
	k3v := scaled(a3, dt)

	a4, err := f.Accelerations(offset(pos, k3x, 1.0), masses)
	if err != nil {
		return nil, nil, err
	}
	k4x := make([]gravity.Vec2, n)
	for i := range k4x {
		k4x[i] = vel[i].Add(k3v[i]).Scale(dt)
	}
	k4v := scaled(a4, dt)

	newPos := make([]gravity.Vec2, n)
	newVel := make([]gravity.Vec2, n)
	for i := 0; i < n; i++ {
		newPos[i] = pos[i].Add(combine(k1x[i], k2x[i], k3x[i], k4x[i]))
		newVel[i] = vel[i].Add(combine(k1v[i], k2v[i], k3v[i], k4v[i]))
	}
	return newPos, newVel, nil
}

// combine forms (k1 + 2*k2 + 2*k3 + k4) / 6.
func combine(k1, k2, k3, k4 gravity.Vec2) gravity.Vec2 {
	return k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4).Scale(1.0 / 6.0)
}

func scaled(vs []gravity.Vec2, s float64) []gravity.Vec2 {
	out := make([]gravity.Vec2, len(vs))
	for i := range vs {
		out[i] = vs[i].Scale(s)
	}
	return out
}

// offset returns base + frac*inc, element-wise.
func offset(base, inc []gravity.Vec2, frac float64) []gravity.Vec2 {
	out := make([]gravity.Vec2, len(base))
	for i := range base {
		out[i] = base[i].Add(inc[i].Scale(frac))
	}
	return out
}
