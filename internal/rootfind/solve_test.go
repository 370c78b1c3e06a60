package rootfind

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/purefluid/internal/fluid"
)

func TestSolveCubic(t *testing.T) {
	f := func(x float64) (float64, error) { return x*x*x - 2, nil }

	x, err := Solve(f, 0, 2, Options{XTol: 1e-12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Cbrt(2)
	if math.Abs(x-want) > 1e-9 {
		t.Errorf("root error too large: got %.12f, expected %.12f", x, want)
	}
}

func TestSolveTranscendental(t *testing.T) {
	f := func(x float64) (float64, error) { return math.Cos(x) - x, nil }

	x, err := Solve(f, 0, 1, Options{XTol: 1e-12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := math.Cos(x) - x; math.Abs(r) > 1e-9 {
		t.Errorf("residual too large: %.3g at x=%.12f", r, x)
	}
}

func TestSolveNoSignChange(t *testing.T) {
	f := func(x float64) (float64, error) { return x*x + 1, nil }

	_, err := Solve(f, -1, 1, Options{})
	if !errors.Is(err, fluid.ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestSolveEndpointRoot(t *testing.T) {
	f := func(x float64) (float64, error) { return x - 1, nil }

	x, err := Solve(f, 1, 2, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x != 1 {
		t.Errorf("expected endpoint root 1, got %f", x)
	}
}

func TestSolvePropagatesEvalError(t *testing.T) {
	boom := errors.New("oracle failure")
	f := func(x float64) (float64, error) {
		if x > 0.6 && x < 0.9 {
			return 0, boom
		}
		return x - 0.75, nil
	}

	_, err := Solve(f, 0, 2, Options{})
	if !errors.Is(err, boom) {
		t.Errorf("expected eval error to propagate, got %v", err)
	}
}

func TestSolveIterationBound(t *testing.T) {
	// A step residual keeps the secant honest; with a two-iteration budget
	// the search cannot meet a 1e-15 width tolerance.
	f := func(x float64) (float64, error) { return math.Tanh(50 * (x - 0.3)), nil }

	_, err := Solve(f, 0, 1, Options{XTol: 1e-15, MaxIter: 2})
	if !errors.Is(err, fluid.ErrConvergence) {
		t.Fatalf("expected ErrConvergence, got %v", err)
	}
	var ce *fluid.ConvergenceError
	if !errors.As(err, &ce) {
		t.Fatal("expected a *fluid.ConvergenceError")
	}
	if ce.Iters != 2 {
		t.Errorf("expected 2 iterations reported, got %d", ce.Iters)
	}
}

func TestBracketAll(t *testing.T) {
	f := func(x float64) (float64, error) { return math.Sin(x), nil }

	ivs := BracketAll(f, 0.1, 2*math.Pi+0.1, 64)
	if len(ivs) != 2 {
		t.Fatalf("expected 2 sign changes, got %d", len(ivs))
	}
	if !(ivs[0].Lo < math.Pi && math.Pi < ivs[0].Hi) {
		t.Errorf("first interval [%f, %f] does not straddle pi", ivs[0].Lo, ivs[0].Hi)
	}
}

func TestBracketSkipsInvalidPoints(t *testing.T) {
	bad := errors.New("out of range")
	f := func(x float64) (float64, error) {
		if x > 0.4 && x < 0.6 {
			return 0, bad
		}
		return x - 0.77, nil
	}

	iv, ok := Bracket(f, 0, 1, 20)
	if !ok {
		t.Fatal("expected a bracket")
	}
	if !(iv.Lo < 0.77 && 0.77 < iv.Hi) {
		t.Errorf("bracket [%f, %f] does not straddle the root", iv.Lo, iv.Hi)
	}
}
