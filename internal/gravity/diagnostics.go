package gravity

// Centroid returns the mass-weighted mean position of all bodies.
func Centroid(positions []Vec2, masses []float64) Vec2 {
	var sum Vec2
	total := 0.0
	for i := range positions {
		sum = sum.Add(positions[i].Scale(masses[i]))
		total += masses[i]
	}
	return sum.Scale(1 / total)
}

// Energy returns the total mechanical energy (kinetic plus pairwise
// potential). Pair distances are floored at the softening length so the
// diagnostic stays finite even for configurations the force model rejects.
func (f *Field) Energy(positions, velocities []Vec2, masses []float64) float64 {
	ke := 0.0
	pe := 0.0

	for i := range positions {
		v := velocities[i]
		ke += 0.5 * masses[i] * (v.X*v.X + v.Y*v.Y)

		for j := i + 1; j < len(positions); j++ {
			r := positions[j].Sub(positions[i]).Norm()
			if r < f.Softening {
				r = f.Softening
			}
			pe -= f.G * masses[i] * masses[j] / r
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum.
func Momentum(velocities []Vec2, masses []float64) Vec2 {
	var p Vec2
	for i := range velocities {
		p = p.Add(velocities[i].Scale(masses[i]))
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin.
func AngularMomentum(positions, velocities []Vec2, masses []float64) float64 {
	L := 0.0
	for i := range positions {
		L += masses[i] * (positions[i].X*velocities[i].Y - positions[i].Y*velocities[i].X)
	}
	return L
}
