package eos

import (
	"math"

	"github.com/san-kum/purefluid/internal/fluid"
	"github.com/san-kum/purefluid/internal/rootfind"
)

const (
	r    = fluid.GasConstant
	tRef = 298.15 // K, energy/entropy reference temperature
	pRef = 1.0e5  // Pa, ideal-gas reference pressure
)

// VanDerWaals is a cubic equation-of-state oracle for one substance.
type VanDerWaals struct {
	sub  Substance
	a    float64 // Pa*(m^3/mol)^2
	b    float64 // m^3/mol
	vRef float64 // ideal-gas molar volume at (tRef, pRef)
}

// NewVanDerWaals builds an oracle from a substance's critical constants:
// a = 27 R^2 Tc^2 / (64 Pc), b = R Tc / (8 Pc).
func NewVanDerWaals(sub Substance) *VanDerWaals {
	return &VanDerWaals{
		sub:  sub,
		a:    27 * r * r * sub.Tc * sub.Tc / (64 * sub.Pc),
		b:    r * sub.Tc / (8 * sub.Pc),
		vRef: r * tRef / pRef,
	}
}

func (w *VanDerWaals) Name() string { return w.sub.Name }

func (w *VanDerWaals) MolarMass() float64 { return w.sub.MolarMass }

func (w *VanDerWaals) Critical() (tc, pc, rhoc float64) {
	return w.sub.Tc, w.sub.Pc, 1.0 / (3.0 * w.b)
}

func (w *VanDerWaals) Bounds() (tMin, tMax, rhoMin, rhoMax float64) {
	return w.sub.TMin, 4 * w.sub.Tc, 1e-6, 1.0 / (1.05 * w.b)
}

func (w *VanDerWaals) check(t, rho float64) error {
	tMin, tMax, rhoMin, rhoMax := w.Bounds()
	if t < tMin || t > tMax {
		return &fluid.DomainError{Op: "eos: " + w.sub.Name, Value: t, Msg: "temperature outside valid range"}
	}
	if rho < rhoMin || rho > rhoMax {
		return &fluid.DomainError{Op: "eos: " + w.sub.Name, Value: rho, Msg: "density outside valid range"}
	}
	return nil
}

// pOf is the raw isotherm, valid for v > b.
func (w *VanDerWaals) pOf(t, v float64) float64 {
	return r*t/(v-w.b) - w.a/(v*v)
}

func (w *VanDerWaals) dpdv(t, v float64) float64 {
	d := v - w.b
	return -r*t/(d*d) + 2*w.a/(v*v*v)
}

func (w *VanDerWaals) Pressure(t, rho float64) (float64, error) {
	if err := w.check(t, rho); err != nil {
		return 0, err
	}
	return w.pOf(t, 1.0/rho), nil
}

func (w *VanDerWaals) InternalEnergy(t, rho float64) (float64, error) {
	if err := w.check(t, rho); err != nil {
		return 0, err
	}
	return w.sub.Cv0*(t-tRef) - w.a*rho, nil
}

func (w *VanDerWaals) Entropy(t, rho float64) (float64, error) {
	if err := w.check(t, rho); err != nil {
		return 0, err
	}
	v := 1.0 / rho
	return w.sub.Cv0*math.Log(t/tRef) + r*math.Log((v-w.b)/(w.vRef-w.b)), nil
}

func (w *VanDerWaals) DPressureDT(t, rho float64) (float64, error) {
	if err := w.check(t, rho); err != nil {
		return 0, err
	}
	return r / (1.0/rho - w.b), nil
}

func (w *VanDerWaals) DPressureDRho(t, rho float64) (float64, error) {
	if err := w.check(t, rho); err != nil {
		return 0, err
	}
	v := 1.0 / rho
	// dp/drho = -v^2 * dp/dv
	return -v * v * w.dpdv(t, v), nil
}

// IdealEnthalpy is the ideal-gas molar enthalpy relative to tRef.
func (w *VanDerWaals) IdealEnthalpy(t float64) float64 {
	return (w.sub.Cv0 + r) * (t - tRef)
}

// IdealEntropy is the ideal-gas molar entropy at (t, p) relative to
// (tRef, pRef).
func (w *VanDerWaals) IdealEntropy(t, p float64) float64 {
	return (w.sub.Cv0+r)*math.Log(t/tRef) - r*math.Log(p/pRef)
}

// spinodals returns the molar volumes where dp/dv = 0 on a subcritical
// isotherm: the liquid spinodal in (b, vc) and the vapor spinodal in
// (vc, 2a/RT).
func (w *VanDerWaals) spinodals(t float64) (vLiq, vVap float64, err error) {
	vc := 3 * w.b
	opts := rootfind.Options{XTol: 1e-13, MaxIter: 200, Op: "eos: spinodal"}
	f := func(v float64) (float64, error) { return w.dpdv(t, v), nil }

	vLiq, err = rootfind.Solve(f, 1.05*w.b, vc*(1-1e-9), opts)
	if err != nil {
		return 0, 0, err
	}
	vVap, err = rootfind.Solve(f, vc*(1+1e-9), 4*w.a/(r*t), opts)
	if err != nil {
		return 0, 0, err
	}
	return vLiq, vVap, nil
}

// volumeAtP inverts the isotherm on a monotone branch [lo, hi].
func (w *VanDerWaals) volumeAtP(t, p, lo, hi float64) (float64, error) {
	return rootfind.Solve(func(v float64) (float64, error) {
		return w.pOf(t, v) - p, nil
	}, lo, hi, rootfind.Options{XTol: 1e-13, MaxIter: 200, Op: "eos: isotherm"})
}

// satSolve performs the Maxwell construction on the isotherm at t: the
// saturation pressure is the root of g_vap(p) - g_liq(p), bracketed by the
// spinodal pressures.
func (w *VanDerWaals) satSolve(t float64) (psat, vLiq, vVap float64, err error) {
	if t < w.sub.TMin || t >= w.sub.Tc {
		return 0, 0, 0, &fluid.DomainError{
			Op: "eos: " + w.sub.Name, Value: t,
			Msg: "saturation query outside [min temperature, critical temperature)",
		}
	}

	vLs, vVs, err := w.spinodals(t)
	if err != nil {
		return 0, 0, 0, err
	}
	pLow := math.Max(w.pOf(t, vLs), 1e-8*w.sub.Pc)
	pHigh := w.pOf(t, vVs)
	if pHigh <= pLow {
		return 0, 0, 0, &fluid.DomainError{
			Op: "eos: " + w.sub.Name, Value: t,
			Msg: "isotherm too close to critical for the Maxwell construction",
		}
	}

	branches := func(p float64) (vl, vv float64, err error) {
		vl, err = w.volumeAtP(t, p, 1.05*w.b, vLs)
		if err != nil {
			return 0, 0, err
		}
		vv, err = w.volumeAtP(t, p, vVs, 2*r*t/p)
		if err != nil {
			return 0, 0, err
		}
		return vl, vv, nil
	}

	// g_vap - g_liq = p(vV - vL) - integral of p dv between the two roots.
	residual := func(p float64) (float64, error) {
		vl, vv, err := branches(p)
		if err != nil {
			return 0, err
		}
		area := r*t*math.Log((vv-w.b)/(vl-w.b)) + w.a*(1/vv-1/vl)
		return p*(vv-vl) - area, nil
	}

	psat, err = rootfind.Solve(residual, pLow, pHigh,
		rootfind.Options{XTol: 1e-12, MaxIter: 200, Op: "eos: maxwell"})
	if err != nil {
		return 0, 0, 0, err
	}
	vLiq, vVap, err = branches(psat)
	if err != nil {
		return 0, 0, 0, err
	}
	return psat, vLiq, vVap, nil
}

func (w *VanDerWaals) SatPressure(t float64) (float64, error) {
	psat, _, _, err := w.satSolve(t)
	return psat, err
}

func (w *VanDerWaals) SatDensities(t float64) (rhoLiq, rhoVap float64, err error) {
	_, vLiq, vVap, err := w.satSolve(t)
	if err != nil {
		return 0, 0, err
	}
	return 1 / vLiq, 1 / vVap, nil
}

func (w *VanDerWaals) IsTwoPhase(t, rho float64) (bool, error) {
	if err := w.check(t, rho); err != nil {
		return false, err
	}
	if t >= w.sub.Tc {
		return false, nil
	}
	rhoLiq, rhoVap, err := w.SatDensities(t)
	if err != nil {
		return false, err
	}
	return rho > rhoVap && rho < rhoLiq, nil
}
