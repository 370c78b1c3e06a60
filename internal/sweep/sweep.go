// Package sweep samples property tables against an oracle, fanning the
// sample points out across goroutines. Oracles are stateless, so the
// samples are independent.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/purefluid/internal/fluid"
)

// SatPoint is one sample of the saturation curve.
type SatPoint struct {
	T      float64
	Psat   float64
	RhoLiq float64
	RhoVap float64
}

// Saturation evaluates the saturation curve of o at n evenly spaced
// temperatures in [from, to]. Any sample failure aborts the whole sweep.
func Saturation(ctx context.Context, o fluid.Oracle, from, to float64, n int) ([]SatPoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep: need at least 2 samples, got %d", n)
	}
	if from >= to {
		return nil, fmt.Errorf("sweep: empty temperature window [%g, %g]", from, to)
	}

	points := make([]SatPoint, n)
	errs := make([]error, n)
	step := (to - from) / float64(n-1)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			t := from + float64(idx)*step
			p, err := o.SatPressure(t)
			if err != nil {
				errs[idx] = fmt.Errorf("sweep: at T=%.2f: %w", t, err)
				return
			}
			rhoLiq, rhoVap, err := o.SatDensities(t)
			if err != nil {
				errs[idx] = fmt.Errorf("sweep: at T=%.2f: %w", t, err)
				return
			}
			points[idx] = SatPoint{T: t, Psat: p, RhoLiq: rhoLiq, RhoVap: rhoVap}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
