package gravity

// Physical defaults in SI units.
const (
	// DefaultG is the universal gravitational constant [m^3 kg^-1 s^-2].
	DefaultG = 6.67430e-11

	// DefaultSoftening is the minimum allowed inter-body distance [m].
	DefaultSoftening = 1e-6
)

// Field evaluates Newtonian gravity between point masses. G and the
// softening length are per-instance so tests can vary them independently.
type Field struct {
	G         float64
	Softening float64
}

// NewField returns a Field with SI defaults.
func NewField() *Field {
	return &Field{G: DefaultG, Softening: DefaultSoftening}
}

// Force returns the gravitational force on body i exerted by body j,
// directed from i toward j (attractive). It returns a SeparationError
// when the pair distance is below the softening length; callers must not
// pass coincident bodies.
func (f *Field) Force(ri, rj Vec2, mi, mj float64) (Vec2, error) {
	d := rj.Sub(ri)
	r := d.Norm()

	if r < f.Softening {
		return Vec2{}, &SeparationError{Dist: r, Softening: f.Softening}
	}

	mag := f.G * mi * mj / (r * r)
	return d.Scale(mag / r), nil
}

// Accelerations returns the net gravitational acceleration on each body.
// Every ordered pair (i, j), j != i, is evaluated independently; the
// summation order is fixed so results are reproducible bit for bit.
// A single body experiences zero acceleration.
func (f *Field) Accelerations(positions []Vec2, masses []float64) ([]Vec2, error) {
	if len(positions) != len(masses) {
		return nil, ErrDimensionMismatch
	}

	acc := make([]Vec2, len(positions))
	for i := range positions {
		for j := range positions {
			if j == i {
				continue
			}
			fij, err := f.Force(positions[i], positions[j], masses[i], masses[j])
			if err != nil {
				return nil, err
			}
			acc[i] = acc[i].Add(fij.Scale(1 / masses[i]))
		}
	}
	return acc, nil
}
