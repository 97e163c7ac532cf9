package gravity

import (
	"errors"
	"math"
	"testing"
)

func TestForceMagnitude(t *testing.T) {
	f := NewField()

	force, err := f.Force(Vec2{0, 0}, Vec2{1, 0}, 1.0, 2.0)
	if err != nil {
		t.Fatalf("force failed: %v", err)
	}

	expected := f.G * 1.0 * 2.0 / 1.0
	if math.Abs(force.Norm()-expected) > 1e-25 {
		t.Errorf("expected magnitude %.6e, got %.6e", expected, force.Norm())
	}
}

func TestForceDirection(t *testing.T) {
	f := NewField()

	// Body j sits on the +x axis, so the force on i must point along +x.
	force, err := f.Force(Vec2{0, 0}, Vec2{2, 0}, 5.0, 10.0)
	if err != nil {
		t.Fatalf("force failed: %v", err)
	}

	if force.X <= 0 {
		t.Errorf("force should be attractive (+x), got %+v", force)
	}
	if force.Y != 0 {
		t.Errorf("expected zero y component, got %v", force.Y)
	}
}

func TestForceSingularity(t *testing.T) {
	f := NewField()

	tests := []struct {
		name   string
		ri, rj Vec2
	}{
		{"coincident", Vec2{1, 1}, Vec2{1, 1}},
		{"below threshold", Vec2{0, 0}, Vec2{f.Softening / 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Force(tt.ri, tt.rj, 1.0, 1.0)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrSingular) {
				t.Errorf("expected ErrSingular, got %v", err)
			}
			var sep *SeparationError
			if !errors.As(err, &sep) {
				t.Fatalf("expected SeparationError, got %T", err)
			}
			if sep.Softening != f.Softening {
				t.Errorf("expected softening %v in error, got %v", f.Softening, sep.Softening)
			}
		})
	}
}

func TestAccelerationsTwoBodySymmetry(t *testing.T) {
	f := NewField()

	positions := []Vec2{{0, 0}, {1, 0}}
	masses := []float64{1.0, 1.0}

	acc, err := f.Accelerations(positions, masses)
	if err != nil {
		t.Fatalf("accelerations failed: %v", err)
	}

	if acc[0].X != -acc[1].X || acc[0].Y != -acc[1].Y {
		t.Errorf("expected antiparallel accelerations, got %+v and %+v", acc[0], acc[1])
	}
}

func TestAccelerationsSingleBody(t *testing.T) {
	f := NewField()

	acc, err := f.Accelerations([]Vec2{{3, 4}}, []float64{1e24})
	if err != nil {
		t.Fatalf("accelerations failed: %v", err)
	}

	if acc[0] != (Vec2{}) {
		t.Errorf("expected zero acceleration for lone body, got %+v", acc[0])
	}
}

func TestAccelerationsDimensionMismatch(t *testing.T) {
	f := NewField()

	_, err := f.Accelerations([]Vec2{{0, 0}, {1, 0}}, []float64{1.0})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestAccelerationsDeterministic(t *testing.T) {
	f := NewField()

	positions := []Vec2{{0, 0}, {1.5e11, 0}, {0, 2.3e11}}
	masses := []float64{1.989e30, 5.972e24, 6.39e23}

	a1, err := f.Accelerations(positions, masses)
	if err != nil {
		t.Fatalf("accelerations failed: %v", err)
	}
	a2, err := f.Accelerations(positions, masses)
	if err != nil {
		t.Fatalf("accelerations failed: %v", err)
	}

	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("body %d: repeated call differs: %+v vs %+v", i, a1[i], a2[i])
		}
	}
}

func TestCentroid(t *testing.T) {
	positions := []Vec2{{0, 0}, {4, 0}}
	masses := []float64{3.0, 1.0}

	c := Centroid(positions, masses)
	if math.Abs(c.X-1.0) > 1e-15 || c.Y != 0 {
		t.Errorf("expected centroid (1, 0), got %+v", c)
	}
}

func TestMomentumOppositeVelocities(t *testing.T) {
	velocities := []Vec2{{1, 2}, {-1, -2}}
	masses := []float64{5.0, 5.0}

	p := Momentum(velocities, masses)
	if p != (Vec2{}) {
		t.Errorf("expected zero momentum, got %+v", p)
	}
}

func TestAngularMomentumCircular(t *testing.T) {
	// Counter-clockwise motion on the unit circle has positive L.
	positions := []Vec2{{1, 0}}
	velocities := []Vec2{{0, 1}}
	masses := []float64{2.0}

	L := AngularMomentum(positions, velocities, masses)
	if L != 2.0 {
		t.Errorf("expected L=2, got %v", L)
	}
}
