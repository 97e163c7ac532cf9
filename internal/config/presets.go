package config

var Presets = map[string]*Config{
	// One Earth year at daily resolution.
	"earth-year": {
		Bodies: 4, Steps: 365, Dt: 86400, Integrator: "rk4",
	},
	// Sun through Mars, roughly two Mars years.
	"inner": {
		Bodies: 5, Steps: 15000, Dt: 80000, Integrator: "rk4",
	},
	// All nine bodies; the coarse dt suits the slow outer orbits.
	"full": {
		Bodies: 9, Steps: 50000, Dt: 200000, Integrator: "rk4", TrackCentroid: true,
	},
	// Deliberately crude: shows symplectic Euler's energy drift.
	"euler-drift": {
		Bodies: 2, Steps: 8760, Dt: 3600, Integrator: "euler",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
