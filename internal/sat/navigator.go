// Package sat navigates the saturation dome of a pure substance: the
// Psat(T) relation and its inverse, vapor quality, and direct construction
// of two-phase states from (T, x) or (P, x).
package sat

import (
	"github.com/san-kum/purefluid/internal/fluid"
	"github.com/san-kum/purefluid/internal/rootfind"
)

// Pressure returns the saturation pressure at t. Valid between the
// substance's minimum temperature and the critical temperature.
func Pressure(o fluid.Oracle, t float64) (float64, error) {
	return o.SatPressure(t)
}

// Temperature inverts Psat(T) by a monotone root search. The admissible
// pressure window is [Psat(Tmin), Psat(Tc-)); anything outside fails with a
// domain error.
func Temperature(o fluid.Oracle, p float64) (float64, error) {
	return TemperatureTol(o, p, fluid.DefaultTol)
}

// TemperatureTol is Temperature with an explicit relative tolerance.
func TemperatureTol(o fluid.Oracle, p, tol float64) (float64, error) {
	tc, pc, _ := o.Critical()
	tMin, _, _, _ := o.Bounds()
	op := "sat: Tsat(P)"

	pMin, err := o.SatPressure(tMin)
	if err != nil {
		return 0, err
	}
	tHi := tc * (1 - 1e-6)
	pMax, err := o.SatPressure(tHi)
	if err != nil {
		return 0, err
	}
	if p < pMin || p > pMax || p >= pc {
		return 0, &fluid.DomainError{Op: op, Value: p, Msg: "pressure outside the saturation range"}
	}

	return rootfind.Solve(func(t float64) (float64, error) {
		psat, err := o.SatPressure(t)
		if err != nil {
			return 0, err
		}
		return psat - p, nil
	}, tMin, tHi, rootfind.Options{XTol: tol, FTol: tol * p, Op: op})
}

// VaporFraction computes the quality of a state known to lie on or inside
// the dome at t, from the overall molar density:
//
//	x = (1/rho - 1/rhoLiq) / (1/rhoVap - 1/rhoLiq)
func VaporFraction(o fluid.Oracle, t, rho float64) (float64, error) {
	rhoLiq, rhoVap, err := o.SatDensities(t)
	if err != nil {
		return 0, err
	}
	if rho < rhoVap || rho > rhoLiq {
		return 0, &fluid.DomainError{Op: "sat: vapor fraction", Value: rho, Msg: "density outside the dome at this temperature"}
	}
	return (1/rho - 1/rhoLiq) / (1/rhoVap - 1/rhoLiq), nil
}

// FromTemperature builds a two-phase state at (t, quality x) in closed
// form: both state axes are already known, so no resolver search is needed.
func FromTemperature(o fluid.Oracle, t, x float64) (fluid.State, error) {
	if x < 0 || x > 1 {
		return fluid.State{}, &fluid.DomainError{Op: "sat: from T,x", Value: x, Msg: "quality must be in [0, 1]"}
	}
	rhoLiq, rhoVap, err := o.SatDensities(t)
	if err != nil {
		return fluid.State{}, err
	}
	vol := x/rhoVap + (1-x)/rhoLiq
	return fluid.State{
		T: t, Rho: 1 / vol, TwoPhase: true,
		RhoLiq: rhoLiq, RhoVap: rhoVap, X: x,
	}, nil
}

// FromPressure builds a two-phase state at (p, quality x) by first
// inverting the saturation curve for the temperature.
func FromPressure(o fluid.Oracle, p, x float64) (fluid.State, error) {
	t, err := Temperature(o, p)
	if err != nil {
		return fluid.State{}, err
	}
	return FromTemperature(o, t, x)
}
