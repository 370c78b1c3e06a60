package eos

// Substance holds the constants defining one van der Waals fluid.
// Cv0 is the constant ideal-gas molar heat capacity at constant volume.
// TMin stands in for the triple-point temperature: saturation queries below
// it are rejected.
type Substance struct {
	Name      string
	MolarMass float64 // kg/mol
	Tc        float64 // K
	Pc        float64 // Pa
	Cv0       float64 // J/(mol*K)
	TMin      float64 // K
}

// Substances is the built-in parameter table. Critical constants are the
// accepted experimental values; the cubic reproduces Tc and Pc exactly and
// approximates everything else.
var Substances = map[string]Substance{
	"water": {
		Name: "water", MolarMass: 0.0180153,
		Tc: 647.096, Pc: 22.064e6, Cv0: 25.3, TMin: 275.0,
	},
	"co2": {
		Name: "co2", MolarMass: 0.0440095,
		Tc: 304.128, Pc: 7.3773e6, Cv0: 28.9, TMin: 220.0,
	},
	"nitrogen": {
		Name: "nitrogen", MolarMass: 0.0280134,
		Tc: 126.192, Pc: 3.3958e6, Cv0: 20.8, TMin: 65.0,
	},
	"methane": {
		Name: "methane", MolarMass: 0.0160425,
		Tc: 190.564, Pc: 4.5992e6, Cv0: 27.4, TMin: 95.0,
	},
	"ammonia": {
		Name: "ammonia", MolarMass: 0.0170305,
		Tc: 405.4, Pc: 11.3333e6, Cv0: 26.7, TMin: 200.0,
	},
}
