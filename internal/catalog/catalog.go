// Package catalog holds approximate initial conditions for the Sun and
// the eight planets, assuming circular orbits.
// Units: mass [kg], orbit radius [m], orbit speed [m/s].
package catalog

import "github.com/san-kum/solarsim/internal/gravity"

// Body is one catalog entry.
type Body struct {
	Name        string
	Mass        float64
	OrbitRadius float64
	OrbitSpeed  float64
}

// Planets lists the Sun and the eight planets, ordered outward from the
// star. Index 0 is always the Sun.
var Planets = []Body{
	{"Sun", 1.989e30, 0.0, 0.0},
	{"Mercury", 3.285e23, 5.79e10, 47400},
	{"Venus", 4.867e24, 1.082e11, 35000},
	{"Earth", 5.972e24, 1.496e11, 29780},
	{"Mars", 6.39e23, 2.279e11, 24100},
	{"Jupiter", 1.898e27, 7.785e11, 13070},
	{"Saturn", 5.683e26, 1.433e12, 9680},
	{"Uranus", 8.681e25, 2.877e12, 6800},
	{"Neptune", 1.024e26, 4.503e12, 5430},
}

// Take returns initial conditions for the first n catalog bodies. The Sun
// sits at rest at the origin; each planet is placed on the positive x-axis
// at its orbital radius with velocity along +y (counter-clockwise orbit).
// n is silently truncated to the catalog size and raised to at least 1.
func Take(n int) (names []string, masses []float64, positions, velocities []gravity.Vec2) {
	if n < 1 {
		n = 1
	}
	if n > len(Planets) {
		n = len(Planets)
	}

	names = make([]string, n)
	masses = make([]float64, n)
	positions = make([]gravity.Vec2, n)
	velocities = make([]gravity.Vec2, n)

	for i, b := range Planets[:n] {
		names[i] = b.Name
		masses[i] = b.Mass
		positions[i] = gravity.Vec2{X: b.OrbitRadius}
		velocities[i] = gravity.Vec2{Y: b.OrbitSpeed}
	}
	return names, masses, positions, velocities
}
