package phase

import (
	"fmt"
	"math"

	"github.com/san-kum/purefluid/internal/fluid"
)

// evalFn evaluates one molar property at a single-phase (T, rho) point.
type evalFn func(t, rho float64) (float64, error)

// mixed evaluates a property of the cached state, applying the lever rule
// when the state is two-phase.
func (p *Phase) mixed(f evalFn) (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	st := p.state
	if !st.TwoPhase {
		return f(st.T, st.Rho)
	}
	liq, err := f(st.T, st.RhoLiq)
	if err != nil {
		return 0, err
	}
	vap, err := f(st.T, st.RhoVap)
	if err != nil {
		return 0, err
	}
	return st.X*vap + (1-st.X)*liq, nil
}

// Temperature returns the cached temperature in K.
func (p *Phase) Temperature() (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	return p.state.T, nil
}

// MolarDensity returns the overall molar density in mol/m^3.
func (p *Phase) MolarDensity() (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	return p.state.Rho, nil
}

// MassDensity returns the overall density in kg/m^3.
func (p *Phase) MassDensity() (float64, error) {
	rho, err := p.MolarDensity()
	if err != nil {
		return 0, err
	}
	return rho * p.oracle.MolarMass(), nil
}

// MolarVolume returns 1/rho in m^3/mol.
func (p *Phase) MolarVolume() (float64, error) {
	rho, err := p.MolarDensity()
	if err != nil {
		return 0, err
	}
	return 1 / rho, nil
}

// Pressure returns the pressure of the cached state; for a two-phase state
// this is the saturation pressure.
func (p *Phase) Pressure() (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	st := p.state
	if st.TwoPhase {
		return p.oracle.Pressure(st.T, st.RhoVap)
	}
	return p.oracle.Pressure(st.T, st.Rho)
}

// MolarInternalEnergy returns u in J/mol.
func (p *Phase) MolarInternalEnergy() (float64, error) {
	return p.mixed(p.oracle.InternalEnergy)
}

// MolarEntropy returns s in J/(mol*K).
func (p *Phase) MolarEntropy() (float64, error) {
	return p.mixed(p.oracle.Entropy)
}

// MolarEnthalpy returns h = u + p*v in J/mol.
func (p *Phase) MolarEnthalpy() (float64, error) {
	return p.mixed(p.enthalpyAt)
}

func (p *Phase) enthalpyAt(t, rho float64) (float64, error) {
	u, err := p.oracle.InternalEnergy(t, rho)
	if err != nil {
		return 0, err
	}
	pr, err := p.oracle.Pressure(t, rho)
	if err != nil {
		return 0, err
	}
	return u + pr/rho, nil
}

// MolarGibbs returns g = h - T*s in J/mol.
func (p *Phase) MolarGibbs() (float64, error) {
	h, err := p.MolarEnthalpy()
	if err != nil {
		return 0, err
	}
	s, err := p.MolarEntropy()
	if err != nil {
		return 0, err
	}
	return h - p.state.T*s, nil
}

// ChemPotential returns the chemical potential; for a pure substance this
// is the molar Gibbs energy.
func (p *Phase) ChemPotential() (float64, error) { return p.MolarGibbs() }

// VaporFraction returns the quality of the cached state. Single-phase
// states report 0 on the liquid-like side of the critical density and 1 on
// the vapor-like side.
func (p *Phase) VaporFraction() (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	st := p.state
	if st.TwoPhase {
		return st.X, nil
	}
	_, _, rhoc := p.oracle.Critical()
	if st.Rho >= rhoc {
		return 0, nil
	}
	return 1, nil
}

// Cv returns the molar heat capacity at constant volume, via a central
// difference of the internal energy. Two-phase states use the lever rule of
// the saturated-phase values.
func (p *Phase) Cv() (float64, error) {
	return p.mixed(p.cvAt)
}

func (p *Phase) cvAt(t, rho float64) (float64, error) {
	h := 1e-6 * t
	u1, err := p.oracle.InternalEnergy(t-h, rho)
	if err != nil {
		return 0, err
	}
	u2, err := p.oracle.InternalEnergy(t+h, rho)
	if err != nil {
		return 0, err
	}
	return (u2 - u1) / (2 * h), nil
}

// Cp returns the molar heat capacity at constant pressure:
//
//	cp = cv + T*(dp/dT)^2 / (rho^2 * dp/drho)
func (p *Phase) Cp() (float64, error) {
	return p.mixed(p.cpAt)
}

func (p *Phase) cpAt(t, rho float64) (float64, error) {
	cv, err := p.cvAt(t, rho)
	if err != nil {
		return 0, err
	}
	dpdT, err := p.dpdT(t, rho)
	if err != nil {
		return 0, err
	}
	dpdRho, err := p.dpdRho(t, rho)
	if err != nil {
		return 0, err
	}
	return cv + t*dpdT*dpdT/(rho*rho*dpdRho), nil
}

// IsothermalCompressibility returns -(1/v)(dv/dp) at constant T in 1/Pa.
// Inside the dome pressure does not vary with volume, so the value
// diverges.
func (p *Phase) IsothermalCompressibility() (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	st := p.state
	if st.TwoPhase {
		return math.Inf(1), nil
	}
	dpdRho, err := p.dpdRho(st.T, st.Rho)
	if err != nil {
		return 0, err
	}
	return 1 / (st.Rho * dpdRho), nil
}

// ThermalExpansion returns (1/v)(dv/dT) at constant pressure in 1/K.
// Diverges inside the dome, like the compressibility.
func (p *Phase) ThermalExpansion() (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	st := p.state
	if st.TwoPhase {
		return math.Inf(1), nil
	}
	dpdT, err := p.dpdT(st.T, st.Rho)
	if err != nil {
		return 0, err
	}
	dpdRho, err := p.dpdRho(st.T, st.Rho)
	if err != nil {
		return 0, err
	}
	return dpdT / (st.Rho * dpdRho), nil
}

func (p *Phase) dpdT(t, rho float64) (float64, error) {
	if dp, ok := p.oracle.(fluid.DerivativeProvider); ok {
		return dp.DPressureDT(t, rho)
	}
	h := 1e-6 * t
	p1, err := p.oracle.Pressure(t-h, rho)
	if err != nil {
		return 0, err
	}
	p2, err := p.oracle.Pressure(t+h, rho)
	if err != nil {
		return 0, err
	}
	return (p2 - p1) / (2 * h), nil
}

func (p *Phase) dpdRho(t, rho float64) (float64, error) {
	if dp, ok := p.oracle.(fluid.DerivativeProvider); ok {
		return dp.DPressureDRho(t, rho)
	}
	h := 1e-6 * rho
	p1, err := p.oracle.Pressure(t, rho-h)
	if err != nil {
		return 0, err
	}
	p2, err := p.oracle.Pressure(t, rho+h)
	if err != nil {
		return 0, err
	}
	return (p2 - p1) / (2 * h), nil
}

// Activity returns the activity of the fluid. The standard state of a pure
// fluid is the fluid itself at the current T and p, so the activity is
// identically one.
func (p *Phase) Activity() (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	return 1, nil
}

// StandardConcentration returns the molar density, the concentration
// normalizer for the pure-fluid standard state.
func (p *Phase) StandardConcentration() (float64, error) {
	return p.MolarDensity()
}

// EnthalpyRT returns h/(R*T) for the cached state.
func (p *Phase) EnthalpyRT() (float64, error) {
	h, err := p.MolarEnthalpy()
	if err != nil {
		return 0, err
	}
	return h / (fluid.GasConstant * p.state.T), nil
}

// EntropyR returns s/R for the cached state.
func (p *Phase) EntropyR() (float64, error) {
	s, err := p.MolarEntropy()
	if err != nil {
		return 0, err
	}
	return s / fluid.GasConstant, nil
}

// GibbsRT returns g/(R*T) for the cached state.
func (p *Phase) GibbsRT() (float64, error) {
	g, err := p.MolarGibbs()
	if err != nil {
		return 0, err
	}
	return g / (fluid.GasConstant * p.state.T), nil
}

// reference returns the ideal-gas reference provider or an error when the
// oracle has none.
func (p *Phase) reference() (fluid.ReferenceProvider, error) {
	if rp, ok := p.oracle.(fluid.ReferenceProvider); ok {
		return rp, nil
	}
	return nil, fmt.Errorf("phase %s: oracle has no ideal-gas reference state", p.name)
}

// EnthalpyRTRef returns h_ref/(R*T): the ideal-gas enthalpy at the cached
// temperature, nondimensionalized.
func (p *Phase) EnthalpyRTRef() (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	rp, err := p.reference()
	if err != nil {
		return 0, err
	}
	t := p.state.T
	return rp.IdealEnthalpy(t) / (fluid.GasConstant * t), nil
}

// EntropyRRef returns s_ref/R at the cached temperature and the reference
// pressure.
func (p *Phase) EntropyRRef(pRef float64) (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	rp, err := p.reference()
	if err != nil {
		return 0, err
	}
	return rp.IdealEntropy(p.state.T, pRef) / fluid.GasConstant, nil
}

// GibbsRTRef returns g_ref/(R*T) at the cached temperature and the
// reference pressure.
func (p *Phase) GibbsRTRef(pRef float64) (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	rp, err := p.reference()
	if err != nil {
		return 0, err
	}
	t := p.state.T
	g := rp.IdealEnthalpy(t) - t*rp.IdealEntropy(t, pRef)
	return g / (fluid.GasConstant * t), nil
}
