package resolver

import (
	"github.com/san-kum/purefluid/internal/fluid"
)

// prop names the scalar property a search is matching.
type prop int

const (
	propP prop = iota // pressure
	propU             // molar internal energy
	propS             // molar entropy
	propH             // molar enthalpy
)

func (p prop) String() string {
	switch p {
	case propP:
		return "pressure"
	case propU:
		return "energy"
	case propS:
		return "entropy"
	case propH:
		return "enthalpy"
	}
	return "property"
}

// single evaluates one property at a single-phase (T, rho) point.
func single(o fluid.Oracle, k prop, t, rho float64) (float64, error) {
	switch k {
	case propP:
		return o.Pressure(t, rho)
	case propU:
		return o.InternalEnergy(t, rho)
	case propS:
		return o.Entropy(t, rho)
	case propH:
		u, err := o.InternalEnergy(t, rho)
		if err != nil {
			return 0, err
		}
		p, err := o.Pressure(t, rho)
		if err != nil {
			return 0, err
		}
		return u + p/rho, nil
	}
	return 0, fluid.ErrUnknownPair
}

// dome holds the saturation boundary of one isotherm.
type dome struct {
	rhoLiq, rhoVap float64
}

// domeAt returns the saturation densities at t, or ok=false when t is at or
// above critical. Oracle failures inside the narrow near-critical window
// where the saturation construction degenerates are treated as "no dome".
func domeAt(o fluid.Oracle, t float64) (dome, bool) {
	tc, _, _ := o.Critical()
	if t >= tc {
		return dome{}, false
	}
	rhoLiq, rhoVap, err := o.SatDensities(t)
	if err != nil {
		return dome{}, false
	}
	return dome{rhoLiq: rhoLiq, rhoVap: rhoVap}, true
}

func (d dome) contains(rho float64) bool {
	return rho > d.rhoVap && rho < d.rhoLiq
}

// quality returns the vapor fraction for an overall density inside the dome.
func (d dome) quality(rho float64) float64 {
	return (1/rho - 1/d.rhoLiq) / (1/d.rhoVap - 1/d.rhoLiq)
}

// densityAt inverts quality: the overall density whose vapor fraction is x.
func (d dome) densityAt(x float64) float64 {
	return 1.0 / (x/d.rhoVap + (1-x)/d.rhoLiq)
}

// mixture evaluates one property with the lever rule
// value = x*vapor + (1-x)*liquid on the dome at t.
func mixture(o fluid.Oracle, k prop, t float64, d dome, x float64) (float64, error) {
	if k == propP {
		// Pressure is not extensive: on the dome it is the saturation
		// pressure, identical in both phases.
		return o.Pressure(t, d.rhoVap)
	}
	liq, err := single(o, k, t, d.rhoLiq)
	if err != nil {
		return 0, err
	}
	vap, err := single(o, k, t, d.rhoVap)
	if err != nil {
		return 0, err
	}
	return x*vap + (1-x)*liq, nil
}

// value evaluates one property of an overall (t, rho) point, switching to
// the mixture rule when the point falls inside the dome.
func value(o fluid.Oracle, k prop, t, rho float64) (float64, error) {
	if d, ok := domeAt(o, t); ok && d.contains(rho) {
		return mixture(o, k, t, d, d.quality(rho))
	}
	return single(o, k, t, rho)
}

// stateValue evaluates one property of a resolved state.
func stateValue(o fluid.Oracle, k prop, st fluid.State) (float64, error) {
	if st.TwoPhase {
		d := dome{rhoLiq: st.RhoLiq, rhoVap: st.RhoVap}
		return mixture(o, k, st.T, d, st.X)
	}
	return single(o, k, st.T, st.Rho)
}

// stateAt classifies an overall (t, rho) point into a resolved state.
func stateAt(o fluid.Oracle, t, rho float64) (fluid.State, error) {
	if d, ok := domeAt(o, t); ok && d.contains(rho) {
		return fluid.State{
			T: t, Rho: rho, TwoPhase: true,
			RhoLiq: d.rhoLiq, RhoVap: d.rhoVap, X: d.quality(rho),
		}, nil
	}
	tMin, tMax, rhoMin, rhoMax := o.Bounds()
	if t < tMin || t > tMax {
		return fluid.State{}, &fluid.DomainError{Op: "resolver", Value: t, Msg: "temperature outside valid range"}
	}
	if rho < rhoMin || rho > rhoMax {
		return fluid.State{}, &fluid.DomainError{Op: "resolver", Value: rho, Msg: "density outside valid range"}
	}
	return fluid.State{T: t, Rho: rho}, nil
}
