package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/solarsim/internal/gravity"
)

func sunEarth() ([]gravity.Vec2, []gravity.Vec2, []float64) {
	pos := []gravity.Vec2{{X: 0, Y: 0}, {X: 1.496e11, Y: 0}}
	vel := []gravity.Vec2{{X: 0, Y: 0}, {X: 0, Y: 29780}}
	masses := []float64{1.989e30, 5.972e24}
	return pos, vel, masses
}

func TestRK4MatchesEulerAtSmallDt(t *testing.T) {
	f := gravity.NewField()
	pos, vel, masses := sunEarth()

	ep, ev, err := NewEuler().Step(f, pos, vel, masses, 1e-6)
	if err != nil {
		t.Fatalf("euler step failed: %v", err)
	}
	rp, rv, err := NewRK4().Step(f, pos, vel, masses, 1e-6)
	if err != nil {
		t.Fatalf("rk4 step failed: %v", err)
	}

	// Differences are measured against the orbital scale, since the two
	// schemes only differ by higher-order terms in dt.
	const posScale = 1.496e11
	const velScale = 29780.0
	for i := range pos {
		if ep[i].Sub(rp[i]).Norm()/posScale > 1e-12 {
			t.Errorf("body %d: positions diverge at tiny dt: %+v vs %+v", i, ep[i], rp[i])
		}
		if ev[i].Sub(rv[i]).Norm()/velScale > 1e-12 {
			t.Errorf("body %d: velocities diverge at tiny dt: %+v vs %+v", i, ev[i], rv[i])
		}
	}
}

// TestRK4CircularOrbitAccuracy uses normalized units (G=1): a light body on
// a circular orbit of radius 1 around a unit mass, period 2*pi. RK4 should
// hold the radius far more accurately than Euler at the same dt.
func TestRK4CircularOrbitAccuracy(t *testing.T) {
	f := &gravity.Field{G: 1.0, Softening: 1e-9}

	run := func(integ Stepper) float64 {
		pos := []gravity.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}
		vel := []gravity.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}}
		masses := []float64{1.0, 1e-9}

		maxDrift := 0.0
		for i := 0; i < 1000; i++ {
			var err error
			pos, vel, err = integ.Step(f, pos, vel, masses, 0.01)
			if err != nil {
				t.Fatalf("%s step %d failed: %v", integ.Name(), i, err)
			}
			drift := math.Abs(pos[1].Sub(pos[0]).Norm() - 1.0)
			if drift > maxDrift {
				maxDrift = drift
			}
		}
		return maxDrift
	}

	eulerDrift := run(NewEuler())
	rk4Drift := run(NewRK4())

	if rk4Drift >= eulerDrift {
		t.Errorf("rk4 drift %.3e should beat euler drift %.3e", rk4Drift, eulerDrift)
	}
	if rk4Drift > 1e-6 {
		t.Errorf("rk4 radius drift too large: %.3e", rk4Drift)
	}
	if eulerDrift < 1e-5 {
		t.Errorf("euler drift suspiciously small: %.3e", eulerDrift)
	}
}

func TestRK4Repeatable(t *testing.T) {
	f := gravity.NewField()
	pos, vel, masses := sunEarth()
	integ := NewRK4()

	p1, v1, err := integ.Step(f, pos, vel, masses, 3600)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	p2, v2, err := integ.Step(f, pos, vel, masses, 3600)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	for i := range p1 {
		if p1[i] != p2[i] || v1[i] != v2[i] {
			t.Errorf("body %d: repeated step differs", i)
		}
	}
}

func TestRK4PropagatesSingularity(t *testing.T) {
	f := gravity.NewField()
	integ := NewRK4()

	pos := []gravity.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}}
	vel := []gravity.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}}
	masses := []float64{1.0, 1.0}

	_, _, err := integ.Step(f, pos, vel, masses, 1.0)
	if !errors.Is(err, gravity.ErrSingular) {
		t.Errorf("expected ErrSingular, got %v", err)
	}
}

func TestNewUnknownIntegrator(t *testing.T) {
	if _, err := New("leapfrog"); err == nil {
		t.Error("expected error for unknown integrator")
	}

	for _, name := range Names() {
		integ, err := New(name)
		if err != nil {
			t.Errorf("expected %s to resolve, got %v", name, err)
			continue
		}
		if integ.Name() != name {
			t.Errorf("expected name %s, got %s", name, integ.Name())
		}
	}
}
