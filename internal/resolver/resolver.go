// Package resolver maps a pair of target thermodynamic properties to the
// unique (temperature, density, quality) state that reproduces them,
// driving bracketed root searches against an equation-of-state oracle.
//
// Resolution is pure: a failed search returns an error and leaves no trace,
// so callers can keep their previous state on failure. The previous state,
// when supplied, breaks phase-root ties by continuity (the admissible root
// nearest the old state wins).
package resolver

import (
	"github.com/san-kum/purefluid/internal/fluid"
)

// Resolve finds the state fixed by spec against the oracle. prev, when
// non-nil, is the previously resolved state used for the continuity
// preference near the critical point; it is never modified.
func Resolve(o fluid.Oracle, spec fluid.Spec, prev *fluid.State) (fluid.State, error) {
	tol := spec.Tolerance()
	x, y := spec.X, spec.Y

	switch spec.Pair {
	case fluid.TV:
		return direct(o, x, y)
	case fluid.ST:
		return solveFixedT(o, propS, y, x, tol, prev)
	case fluid.TH:
		return solveFixedT(o, propH, x, y, tol, prev)
	case fluid.UV:
		return solveFixedV(o, propU, y, x, tol, prev)
	case fluid.SV:
		return solveFixedV(o, propS, y, x, tol, prev)
	case fluid.VH:
		return solveFixedV(o, propH, x, y, tol, prev)
	case fluid.PV:
		return solveFixedV(o, propP, y, x, tol, prev)
	case fluid.HP:
		return solveFixedP(o, propH, y, x, tol, prev)
	case fluid.UP:
		return solveFixedP(o, propU, y, x, tol, prev)
	case fluid.SP:
		return solveFixedP(o, propS, y, x, tol, prev)
	case fluid.SH:
		return solveSH(o, x, y, tol, prev)
	}
	return fluid.State{}, fluid.ErrUnknownPair
}

// direct handles the degenerate TV pair: both state axes are given, only
// classification against the dome remains.
func direct(o fluid.Oracle, t, vol float64) (fluid.State, error) {
	if vol <= 0 {
		return fluid.State{}, &fluid.DomainError{Op: "resolver: TV", Value: vol, Msg: "molar volume must be positive"}
	}
	return stateAt(o, t, 1.0/vol)
}
