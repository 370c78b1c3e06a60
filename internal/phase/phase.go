// Package phase implements the public surface of a single-component fluid
// phase: set-state operations for every supported property pair, saturation
// construction, and derived-property accessors reading a cached state.
//
// A Phase owns exactly one oracle, bound at construction and never
// reassigned. Each successful set call replaces the cached state
// atomically; on failure the previous state is untouched. Instances are not
// safe for concurrent use.
package phase

import (
	"github.com/san-kum/purefluid/internal/fluid"
	"github.com/san-kum/purefluid/internal/resolver"
	"github.com/san-kum/purefluid/internal/sat"
)

// Phase is a pure-substance phase object with a cached resolved state.
type Phase struct {
	name   string
	oracle fluid.Oracle
	state  fluid.State
	ok     bool
}

// New binds a phase to its oracle.
func New(name string, o fluid.Oracle) *Phase {
	return &Phase{name: name, oracle: o}
}

// Name returns the substance name the phase was constructed with.
func (p *Phase) Name() string { return p.name }

// Resolved reports whether a state has been set.
func (p *Phase) Resolved() bool { return p.ok }

// State returns a copy of the cached state.
func (p *Phase) State() (fluid.State, error) {
	if !p.ok {
		return fluid.State{}, fluid.ErrNoState
	}
	return p.state, nil
}

func (p *Phase) prev() *fluid.State {
	if !p.ok {
		return nil
	}
	s := p.state
	return &s
}

func (p *Phase) set(pair fluid.Pair, x, y float64, tol []float64) error {
	spec := fluid.Spec{Pair: pair, X: x, Y: y}
	if len(tol) > 0 {
		spec.Tol = tol[0]
	}
	st, err := resolver.Resolve(p.oracle, spec, p.prev())
	if err != nil {
		return err
	}
	p.state = st
	p.ok = true
	return nil
}

// SetHP fixes molar enthalpy (J/mol) and pressure (Pa).
func (p *Phase) SetHP(h, pr float64, tol ...float64) error { return p.set(fluid.HP, h, pr, tol) }

// SetUV fixes molar internal energy (J/mol) and molar volume (m^3/mol).
func (p *Phase) SetUV(u, v float64, tol ...float64) error { return p.set(fluid.UV, u, v, tol) }

// SetSV fixes molar entropy (J/(mol*K)) and molar volume.
func (p *Phase) SetSV(s, v float64, tol ...float64) error { return p.set(fluid.SV, s, v, tol) }

// SetSP fixes molar entropy and pressure.
func (p *Phase) SetSP(s, pr float64, tol ...float64) error { return p.set(fluid.SP, s, pr, tol) }

// SetST fixes molar entropy and temperature (K).
func (p *Phase) SetST(s, t float64, tol ...float64) error { return p.set(fluid.ST, s, t, tol) }

// SetTV fixes temperature and molar volume.
func (p *Phase) SetTV(t, v float64, tol ...float64) error { return p.set(fluid.TV, t, v, tol) }

// SetPV fixes pressure and molar volume.
func (p *Phase) SetPV(pr, v float64, tol ...float64) error { return p.set(fluid.PV, pr, v, tol) }

// SetUP fixes molar internal energy and pressure.
func (p *Phase) SetUP(u, pr float64, tol ...float64) error { return p.set(fluid.UP, u, pr, tol) }

// SetVH fixes molar volume and molar enthalpy.
func (p *Phase) SetVH(v, h float64, tol ...float64) error { return p.set(fluid.VH, v, h, tol) }

// SetTH fixes temperature and molar enthalpy.
func (p *Phase) SetTH(t, h float64, tol ...float64) error { return p.set(fluid.TH, t, h, tol) }

// SetSH fixes molar entropy and molar enthalpy.
func (p *Phase) SetSH(s, h float64, tol ...float64) error { return p.set(fluid.SH, s, h, tol) }

// SetTX constructs a saturated state from temperature and quality,
// bypassing the resolver.
func (p *Phase) SetTX(t, x float64) error {
	st, err := sat.FromTemperature(p.oracle, t, x)
	if err != nil {
		return err
	}
	p.state = st
	p.ok = true
	return nil
}

// SetPX constructs a saturated state from pressure and quality.
func (p *Phase) SetPX(pr, x float64) error {
	st, err := sat.FromPressure(p.oracle, pr, x)
	if err != nil {
		return err
	}
	p.state = st
	p.ok = true
	return nil
}

// SatTemperature returns the saturation temperature at pr.
func (p *Phase) SatTemperature(pr float64) (float64, error) {
	return sat.Temperature(p.oracle, pr)
}

// SatPressure returns the saturation pressure at the cached temperature.
func (p *Phase) SatPressure() (float64, error) {
	if !p.ok {
		return 0, fluid.ErrNoState
	}
	return sat.Pressure(p.oracle, p.state.T)
}

// SatPressureAt returns the saturation pressure at an explicit temperature.
func (p *Phase) SatPressureAt(t float64) (float64, error) {
	return sat.Pressure(p.oracle, t)
}

// CritTemperature returns the oracle-reported critical temperature.
func (p *Phase) CritTemperature() float64 {
	tc, _, _ := p.oracle.Critical()
	return tc
}

// CritPressure returns the oracle-reported critical pressure.
func (p *Phase) CritPressure() float64 {
	_, pc, _ := p.oracle.Critical()
	return pc
}

// CritDensity returns the critical molar density.
func (p *Phase) CritDensity() float64 {
	_, _, rhoc := p.oracle.Critical()
	return rhoc
}

// MinTemp returns the lowest valid temperature.
func (p *Phase) MinTemp() float64 {
	tMin, _, _, _ := p.oracle.Bounds()
	return tMin
}

// MaxTemp returns the highest valid temperature.
func (p *Phase) MaxTemp() float64 {
	_, tMax, _, _ := p.oracle.Bounds()
	return tMax
}

// MolarMass returns the substance molar mass in kg/mol.
func (p *Phase) MolarMass() float64 { return p.oracle.MolarMass() }
