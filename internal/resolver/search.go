package resolver

import (
	"errors"
	"math"

	"github.com/san-kum/purefluid/internal/fluid"
	"github.com/san-kum/purefluid/internal/rootfind"
	"github.com/san-kum/purefluid/internal/sat"
)

// scanPoints is the resolution of the bracket scans used when a search
// window is not known to be monotone.
const scanPoints = 48

func ftol(target, tol float64) float64 {
	return tol * math.Max(1, math.Abs(target))
}

// chooseRoot applies the continuity preference: with several admissible
// roots, pick the one nearest the previous state; with none previous, the
// ambiguity is unresolvable. A root landing exactly on a scan point makes
// two adjacent intervals converge to it, so near-identical roots collapse
// to one before counting.
func chooseRoot(roots []fluid.State, prev *fluid.State, op string, tol float64) (fluid.State, error) {
	uniq := roots[:0]
	for _, r := range roots {
		dup := false
		for _, u := range uniq {
			if math.Abs(r.T-u.T) <= 10*tol*math.Max(1, u.T) &&
				math.Abs(r.Rho-u.Rho) <= 10*tol*math.Max(1, u.Rho) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, r)
		}
	}
	roots = uniq

	switch len(roots) {
	case 0:
		return fluid.State{}, &fluid.DomainError{Op: op, Msg: "target outside achievable range"}
	case 1:
		return roots[0], nil
	}
	if prev == nil || !prev.Valid() {
		return fluid.State{}, fluid.ErrAmbiguous
	}
	best := roots[0]
	bestScore := math.Inf(1)
	for _, r := range roots {
		score := math.Abs(math.Log(r.Rho/prev.Rho)) + math.Abs(r.T-prev.T)/prev.T
		if score < bestScore {
			best, bestScore = r, score
		}
	}
	return best, nil
}

// solveFixedT resolves a (property, T) pair by searching density on the
// isotherm. Subcritical isotherms are handled in three pieces: the dome
// (lever rule, closed form) and the liquid and vapor single-phase branches.
func solveFixedT(o fluid.Oracle, k prop, t, target, tol float64, prev *fluid.State) (fluid.State, error) {
	tMin, tMax, rhoMin, rhoMax := o.Bounds()
	op := "resolver: " + k.String() + "/T"
	if t < tMin || t > tMax {
		return fluid.State{}, &fluid.DomainError{Op: op, Value: t, Msg: "temperature outside valid range"}
	}

	type branch struct{ lo, hi float64 }
	var branches []branch

	if d, ok := domeAt(o, t); ok {
		liq, err := single(o, k, t, d.rhoLiq)
		if err != nil {
			return fluid.State{}, err
		}
		vap, err := single(o, k, t, d.rhoVap)
		if err != nil {
			return fluid.State{}, err
		}
		if inClosed(target, liq, vap) {
			x := (target - liq) / (vap - liq)
			return fluid.State{
				T: t, Rho: d.densityAt(x), TwoPhase: true,
				RhoLiq: d.rhoLiq, RhoVap: d.rhoVap, X: x,
			}, nil
		}
		branches = []branch{{rhoMin, d.rhoVap}, {d.rhoLiq, rhoMax}}
	} else {
		branches = []branch{{rhoMin, rhoMax}}
	}

	f := func(rho float64) (float64, error) {
		v, err := single(o, k, t, rho)
		if err != nil {
			return 0, err
		}
		return v - target, nil
	}
	opts := rootfind.Options{XTol: tol, FTol: ftol(target, tol), Op: op}

	var roots []fluid.State
	for _, br := range branches {
		for _, iv := range rootfind.BracketAll(f, br.lo, br.hi, scanPoints) {
			rho, err := rootfind.Solve(f, iv.Lo, iv.Hi, opts)
			if err != nil {
				return fluid.State{}, err
			}
			roots = append(roots, fluid.State{T: t, Rho: rho})
		}
	}
	return chooseRoot(roots, prev, op, tol)
}

// solveFixedV resolves a (property, v) pair by searching temperature at the
// fixed overall molar volume. Trial points inside the dome evaluate through
// the mixture rule, so the search crosses the dome transparently.
func solveFixedV(o fluid.Oracle, k prop, vol, target, tol float64, prev *fluid.State) (fluid.State, error) {
	tMin, tMax, rhoMin, rhoMax := o.Bounds()
	op := "resolver: " + k.String() + "/V"
	if vol <= 0 {
		return fluid.State{}, &fluid.DomainError{Op: op, Value: vol, Msg: "molar volume must be positive"}
	}
	rho := 1.0 / vol
	if rho < rhoMin || rho > rhoMax {
		return fluid.State{}, &fluid.DomainError{Op: op, Value: rho, Msg: "density outside valid range"}
	}

	f := func(t float64) (float64, error) {
		v, err := value(o, k, t, rho)
		if err != nil {
			return 0, err
		}
		return v - target, nil
	}
	opts := rootfind.Options{XTol: tol, FTol: ftol(target, tol), Op: op}

	var roots []fluid.State
	for _, iv := range rootfind.BracketAll(f, tMin, tMax, scanPoints) {
		t, err := rootfind.Solve(f, iv.Lo, iv.Hi, opts)
		if err != nil {
			return fluid.State{}, err
		}
		st, err := stateAt(o, t, rho)
		if err != nil {
			return fluid.State{}, err
		}
		roots = append(roots, st)
	}
	return chooseRoot(roots, prev, op, tol)
}

// densityAtTP inverts pressure on an isotherm, picking the branch by
// comparing p against the saturation pressure at t.
func densityAtTP(o fluid.Oracle, t, p, tol float64) (float64, error) {
	_, _, rhoMin, rhoMax := o.Bounds()
	op := "resolver: density(T,P)"

	lo, hi := rhoMin, rhoMax
	if d, ok := domeAt(o, t); ok {
		psat, err := o.Pressure(t, d.rhoVap)
		if err != nil {
			return 0, err
		}
		if p > psat {
			lo = d.rhoLiq
		} else {
			hi = d.rhoVap
		}
	}

	f := func(rho float64) (float64, error) {
		pv, err := o.Pressure(t, rho)
		if err != nil {
			return 0, err
		}
		return pv - p, nil
	}
	return rootfind.Solve(f, lo, hi, rootfind.Options{XTol: tol, FTol: ftol(p, tol), Op: op})
}

// solveFixedP resolves a (property, P) pair: a saturation test at the given
// pressure first, then an outer temperature search whose inner step inverts
// the isotherm for density (the nested two-variable case).
func solveFixedP(o fluid.Oracle, k prop, p, target, tol float64, prev *fluid.State) (fluid.State, error) {
	tMin, tMax, _, _ := o.Bounds()
	_, pc, _ := o.Critical()
	op := "resolver: " + k.String() + "/P"
	if p <= 0 {
		return fluid.State{}, &fluid.DomainError{Op: op, Value: p, Msg: "pressure must be positive"}
	}

	outerLo, outerHi := tMin, tMax
	if p < pc {
		tsat, err := sat.TemperatureTol(o, p, tol)
		if err != nil && !errors.Is(err, fluid.ErrDomain) {
			return fluid.State{}, err
		}
		if err == nil {
			d, ok := domeAt(o, tsat)
			if ok {
				liq, err := single(o, k, tsat, d.rhoLiq)
				if err != nil {
					return fluid.State{}, err
				}
				vap, err := single(o, k, tsat, d.rhoVap)
				if err != nil {
					return fluid.State{}, err
				}
				if inClosed(target, liq, vap) {
					x := (target - liq) / (vap - liq)
					return fluid.State{
						T: tsat, Rho: d.densityAt(x), TwoPhase: true,
						RhoLiq: d.rhoLiq, RhoVap: d.rhoVap, X: x,
					}, nil
				}
				// Entropy, energy and enthalpy all increase along an
				// isobar, so the target picks the side of the dome.
				if (target-vap)*(vap-liq) > 0 {
					outerLo = tsat
				} else {
					outerHi = tsat
				}
			}
		}
		// A domain error from the saturation inversion means the isobar
		// never touches the dome inside the valid range; the full
		// temperature window is single-phase.
	}

	f := func(t float64) (float64, error) {
		rho, err := densityAtTP(o, t, p, tol)
		if err != nil {
			return 0, err
		}
		v, err := single(o, k, t, rho)
		if err != nil {
			return 0, err
		}
		return v - target, nil
	}
	opts := rootfind.Options{XTol: tol, FTol: ftol(target, tol), Op: op}

	var roots []fluid.State
	for _, iv := range rootfind.BracketAll(f, outerLo, outerHi, scanPoints) {
		t, err := rootfind.Solve(f, iv.Lo, iv.Hi, opts)
		if err != nil {
			return fluid.State{}, err
		}
		rho, err := densityAtTP(o, t, p, tol)
		if err != nil {
			return fluid.State{}, err
		}
		roots = append(roots, fluid.State{T: t, Rho: rho})
	}
	return chooseRoot(roots, prev, op, tol)
}

// solveSH resolves the entropy/enthalpy pair: an outer temperature search
// whose inner step is a full fixed-T entropy resolution, with the residual
// taken on enthalpy.
func solveSH(o fluid.Oracle, s, h, tol float64, prev *fluid.State) (fluid.State, error) {
	tMin, tMax, _, _ := o.Bounds()
	op := "resolver: SH"

	f := func(t float64) (float64, error) {
		st, err := solveFixedT(o, propS, t, s, tol, prev)
		if err != nil {
			return 0, err
		}
		hv, err := stateValue(o, propH, st)
		if err != nil {
			return 0, err
		}
		return hv - h, nil
	}
	opts := rootfind.Options{XTol: tol, FTol: ftol(h, tol), Op: op}

	var roots []fluid.State
	for _, iv := range rootfind.BracketAll(f, tMin, tMax, scanPoints) {
		t, err := rootfind.Solve(f, iv.Lo, iv.Hi, opts)
		if err != nil {
			return fluid.State{}, err
		}
		st, err := solveFixedT(o, propS, t, s, tol, prev)
		if err != nil {
			return fluid.State{}, err
		}
		roots = append(roots, st)
	}
	return chooseRoot(roots, prev, op, tol)
}

// inClosed reports whether x lies in the closed interval spanned by a and b.
func inClosed(x, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return x >= a && x <= b
}
