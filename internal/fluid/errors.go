package fluid

import (
	"errors"
	"fmt"
)

// Error kinds for state resolution.
var (
	// ErrDomain indicates a target or iterate outside the substance's
	// physically valid range.
	ErrDomain = errors.New("fluid: value outside valid domain")

	// ErrConvergence indicates an iteration exhausted its bound without
	// meeting tolerance.
	ErrConvergence = errors.New("fluid: iteration failed to converge")

	// ErrAmbiguous indicates a phase-root ambiguity that the continuity
	// preference could not break.
	ErrAmbiguous = errors.New("fluid: ambiguous phase root")

	// ErrUnknownPair indicates an unsupported property-pair tag.
	ErrUnknownPair = errors.New("fluid: unknown property pair")

	// ErrNoState indicates a property read before any state was resolved.
	ErrNoState = errors.New("fluid: no state has been resolved")
)

// ConvergenceError reports an exhausted iteration together with its best
// iterate, so callers can inspect how close the search got.
type ConvergenceError struct {
	Op       string
	Best     float64
	Residual float64
	Iters    int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: no convergence after %d iterations (best %.6g, residual %.3g)",
		e.Op, e.Iters, e.Best, e.Residual)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// DomainError reports an out-of-range value with the operation that
// rejected it.
type DomainError struct {
	Op    string
	Value float64
	Msg   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (got %.6g)", e.Op, e.Msg, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrDomain }
