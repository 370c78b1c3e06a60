// Package rootfind provides the bracketed scalar root searches used by the
// state resolver: bisection with secant acceleration, bounded iteration
// counts and relative tolerances.
package rootfind

import (
	"math"

	"github.com/san-kum/purefluid/internal/fluid"
)

// Func is a scalar residual. An error return marks the point as invalid
// (e.g. an oracle domain failure) and aborts the search.
type Func func(x float64) (float64, error)

// Options controls a Solve call.
type Options struct {
	// XTol is the relative tolerance on the bracket width.
	XTol float64
	// FTol is the absolute tolerance on the residual.
	FTol float64
	// MaxIter bounds the iteration count.
	MaxIter int
	// Op names the search in error reports.
	Op string
}

func (o Options) withDefaults() Options {
	if o.XTol <= 0 {
		o.XTol = fluid.DefaultTol
	}
	if o.FTol < 0 {
		o.FTol = 0
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 100
	}
	if o.Op == "" {
		o.Op = "rootfind"
	}
	return o
}

// Solve finds x in [lo, hi] with f(x) = 0. The bracket must contain a sign
// change; a secant step is tried each iteration and rejected in favor of
// bisection when it leaves the bracket or fails to shrink it. Returns a
// DomainError when no sign change exists and a ConvergenceError when the
// iteration bound is exhausted.
func Solve(f Func, lo, hi float64, opt Options) (float64, error) {
	opt = opt.withDefaults()

	fa, err := f(lo)
	if err != nil {
		return 0, err
	}
	if fa == 0 {
		return lo, nil
	}
	fb, err := f(hi)
	if err != nil {
		return 0, err
	}
	if fb == 0 {
		return hi, nil
	}
	if fa*fb > 0 {
		return 0, &fluid.DomainError{Op: opt.Op, Value: hi, Msg: "no sign change in bracket"}
	}

	a, b := lo, hi
	for i := 0; i < opt.MaxIter; i++ {
		mid := 0.5 * (a + b)
		x := mid
		// Secant proposal from the bracket endpoints, rejected when it
		// falls outside or hugs an endpoint (stagnation guard).
		if i%3 != 2 && fb != fa {
			s := b - fb*(b-a)/(fb-fa)
			margin := 0.01 * (b - a)
			if s > a+margin && s < b-margin {
				x = s
			}
		}

		fx, err := f(x)
		if err != nil {
			return 0, err
		}
		if fx == 0 || math.Abs(fx) <= opt.FTol {
			return x, nil
		}
		if fa*fx < 0 {
			b, fb = x, fx
		} else {
			a, fa = x, fx
		}
		if b-a <= opt.XTol*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) {
			return 0.5 * (a + b), nil
		}
	}

	best := 0.5 * (a + b)
	res := math.Min(math.Abs(fa), math.Abs(fb))
	return best, &fluid.ConvergenceError{Op: opt.Op, Best: best, Residual: res, Iters: opt.MaxIter}
}
