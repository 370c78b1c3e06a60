package fluid

import (
	"fmt"
	"math"
	"strings"
)

// GasConstant is the universal gas constant in J/(mol*K).
const GasConstant = 8.314462618

// DefaultTol is the relative convergence tolerance used when a caller does
// not supply one.
const DefaultTol = 1e-8

// Oracle evaluates equation-of-state properties for a single substance.
// Temperature is in K, density is molar (mol/m^3), energies are J/mol and
// entropy is J/(mol*K). Implementations return a DomainError-kind failure
// for inputs outside the range reported by Bounds.
type Oracle interface {
	// Pressure returns p(T, rho) in Pa for a single-phase point.
	Pressure(t, rho float64) (float64, error)

	// InternalEnergy returns the molar internal energy u(T, rho).
	InternalEnergy(t, rho float64) (float64, error)

	// Entropy returns the molar entropy s(T, rho).
	Entropy(t, rho float64) (float64, error)

	// SatPressure returns the saturation pressure at T, valid for
	// MinTemp <= T < Tc.
	SatPressure(t float64) (float64, error)

	// SatDensities returns the coexisting liquid and vapor molar densities
	// at T, valid for MinTemp <= T < Tc.
	SatDensities(t float64) (rhoLiq, rhoVap float64, err error)

	// IsTwoPhase reports whether (T, rho) lies strictly inside the
	// two-phase dome.
	IsTwoPhase(t, rho float64) (bool, error)

	// Critical returns the critical temperature, pressure and molar density.
	Critical() (tc, pc, rhoc float64)

	// Bounds returns the valid temperature and density window.
	Bounds() (tMin, tMax, rhoMin, rhoMax float64)

	// MolarMass returns the molar mass in kg/mol.
	MolarMass() float64
}

// DerivativeProvider is an optional Oracle extension exposing analytic
// pressure partials. Callers fall back to finite differences when an Oracle
// does not implement it.
type DerivativeProvider interface {
	// DPressureDT returns (dp/dT) at constant density.
	DPressureDT(t, rho float64) (float64, error)

	// DPressureDRho returns (dp/drho) at constant temperature.
	DPressureDRho(t, rho float64) (float64, error)
}

// ReferenceProvider is an optional Oracle extension exposing the ideal-gas
// reference state used for the *_ref accessors on a phase.
type ReferenceProvider interface {
	// IdealEnthalpy returns the ideal-gas molar enthalpy at T.
	IdealEnthalpy(t float64) float64

	// IdealEntropy returns the ideal-gas molar entropy at T and pressure p.
	IdealEntropy(t, p float64) float64
}

// State is a fully resolved thermodynamic state. Rho is the overall molar
// density. For a two-phase state, RhoLiq and RhoVap are the coexisting phase
// densities and X is the vapor quality; the invariant
// RhoVap <= Rho <= RhoLiq holds.
type State struct {
	T        float64
	Rho      float64
	TwoPhase bool
	RhoLiq   float64
	RhoVap   float64
	X        float64
}

// Valid reports whether the state carries finite, physical values.
func (s State) Valid() bool {
	if s.T <= 0 || s.Rho <= 0 {
		return false
	}
	for _, v := range []float64{s.T, s.Rho, s.RhoLiq, s.RhoVap, s.X} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if s.TwoPhase && (s.X < 0 || s.X > 1) {
		return false
	}
	return true
}

// MolarVolume returns 1/Rho in m^3/mol.
func (s State) MolarVolume() float64 { return 1.0 / s.Rho }

// Pair identifies which two intensive properties are held fixed when
// resolving a state. The letters name the first and second target in order:
// H enthalpy, U internal energy, S entropy, P pressure, T temperature,
// V molar volume.
type Pair int

const (
	HP Pair = iota
	UV
	SV
	SP
	ST
	TV
	PV
	UP
	VH
	TH
	SH
)

var pairNames = [...]string{"HP", "UV", "SV", "SP", "ST", "TV", "PV", "UP", "VH", "TH", "SH"}

func (p Pair) String() string {
	if p < 0 || int(p) >= len(pairNames) {
		return fmt.Sprintf("Pair(%d)", int(p))
	}
	return pairNames[p]
}

// ParsePair converts a case-insensitive pair name ("hp", "UV", ...) to its
// tag.
func ParsePair(s string) (Pair, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range pairNames {
		if name == u {
			return Pair(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPair, s)
}

// Pairs lists all supported pair tags.
func Pairs() []Pair {
	out := make([]Pair, len(pairNames))
	for i := range pairNames {
		out[i] = Pair(i)
	}
	return out
}

// Spec is a state-resolution request: which pair is fixed, the two target
// values in the order named by the tag, and a relative tolerance.
type Spec struct {
	Pair Pair
	X    float64
	Y    float64
	Tol  float64
}

// Tolerance returns the requested tolerance, or DefaultTol when unset.
func (s Spec) Tolerance() float64 {
	if s.Tol > 0 {
		return s.Tol
	}
	return DefaultTol
}
