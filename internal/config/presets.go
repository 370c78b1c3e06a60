package config

// Presets maps substance -> preset name -> resolution request. Target
// values are molar SI: K, Pa, m^3/mol, J/mol.
var Presets = map[string]map[string]*Config{
	"water": {
		"steam": {
			Substance: "water", Pair: "TV", X: 500.0, Y: 0.02,
		},
		"liquid": {
			Substance: "water", Pair: "TV", X: 300.0, Y: 3.5e-5,
		},
		"supercritical": {
			Substance: "water", Pair: "TV", X: 700.0, Y: 1.0e-4,
		},
	},
	"co2": {
		"gas": {
			Substance: "co2", Pair: "TV", X: 320.0, Y: 0.01,
		},
		"dense": {
			Substance: "co2", Pair: "TV", X: 310.0, Y: 1.5e-4,
		},
	},
	"nitrogen": {
		"ambient": {
			Substance: "nitrogen", Pair: "PV", X: 1.0e5, Y: 0.024,
		},
		"cryogenic": {
			Substance: "nitrogen", Pair: "TV", X: 80.0, Y: 5.0e-5,
		},
	},
	"methane": {
		"pipeline": {
			Substance: "methane", Pair: "TV", X: 280.0, Y: 4.0e-4,
		},
	},
}

func GetPreset(substance, preset string) *Config {
	subPresets, ok := Presets[substance]
	if !ok {
		return nil
	}
	cfg, ok := subPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(substance string) []string {
	subPresets, ok := Presets[substance]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(subPresets))
	for name := range subPresets {
		names = append(names, name)
	}
	return names
}
