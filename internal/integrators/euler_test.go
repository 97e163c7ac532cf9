package integrators

import (
	"testing"

	"github.com/san-kum/solarsim/internal/gravity"
)

func TestEulerFreeBody(t *testing.T) {
	f := gravity.NewField()
	integ := NewEuler()

	// A lone body feels no force, so one step is exact linear motion.
	pos := []gravity.Vec2{{X: 10, Y: -5}}
	vel := []gravity.Vec2{{X: 3, Y: 4}}
	masses := []float64{2.0}
	dt := 0.5

	newPos, newVel, err := integ.Step(f, pos, vel, masses, dt)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	want := gravity.Vec2{X: 10 + 3*dt, Y: -5 + 4*dt}
	if newPos[0] != want {
		t.Errorf("expected position %+v, got %+v", want, newPos[0])
	}
	if newVel[0] != vel[0] {
		t.Errorf("expected unchanged velocity %+v, got %+v", vel[0], newVel[0])
	}
}

func TestEulerSemiImplicitOrdering(t *testing.T) {
	f := gravity.NewField()
	integ := NewEuler()

	pos := []gravity.Vec2{{X: 0, Y: 0}, {X: 1.496e11, Y: 0}}
	vel := []gravity.Vec2{{X: 0, Y: 0}, {X: 0, Y: 29780}}
	masses := []float64{1.989e30, 5.972e24}
	dt := 3600.0

	acc, err := f.Accelerations(pos, masses)
	if err != nil {
		t.Fatalf("accelerations failed: %v", err)
	}

	newPos, newVel, err := integ.Step(f, pos, vel, masses, dt)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	// The position update must use the already-updated velocity.
	for i := range pos {
		wantVel := vel[i].Add(acc[i].Scale(dt))
		if newVel[i] != wantVel {
			t.Errorf("body %d: expected velocity %+v, got %+v", i, wantVel, newVel[i])
		}
		wantPos := pos[i].Add(wantVel.Scale(dt))
		if newPos[i] != wantPos {
			t.Errorf("body %d: expected position %+v, got %+v", i, wantPos, newPos[i])
		}
	}
}

func TestEulerDoesNotMutateInputs(t *testing.T) {
	f := gravity.NewField()
	integ := NewEuler()

	pos := []gravity.Vec2{{X: 0, Y: 0}, {X: 1.496e11, Y: 0}}
	vel := []gravity.Vec2{{X: 0, Y: 0}, {X: 0, Y: 29780}}
	masses := []float64{1.989e30, 5.972e24}

	if _, _, err := integ.Step(f, pos, vel, masses, 3600); err != nil {
		t.Fatalf("step failed: %v", err)
	}

	if pos[1] != (gravity.Vec2{X: 1.496e11, Y: 0}) || vel[1] != (gravity.Vec2{X: 0, Y: 29780}) {
		t.Error("inputs were mutated")
	}
}

func TestEulerRepeatable(t *testing.T) {
	f := gravity.NewField()
	integ := NewEuler()

	pos := []gravity.Vec2{{X: 0, Y: 0}, {X: 1.496e11, Y: 0}}
	vel := []gravity.Vec2{{X: 0, Y: 0}, {X: 0, Y: 29780}}
	masses := []float64{1.989e30, 5.972e24}

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
