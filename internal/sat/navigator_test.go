package sat

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/purefluid/internal/eos"
	"github.com/san-kum/purefluid/internal/fluid"
)

func water() fluid.Oracle { return eos.NewVanDerWaals(eos.Substances["water"]) }

func TestTemperatureInvertsPressure(t *testing.T) {
	o := water()

	for _, temp := range []float64{320, 420, 520, 620} {
		p, err := Pressure(o, temp)
		if err != nil {
			t.Fatalf("Pressure(%f): %v", temp, err)
		}
		back, err := Temperature(o, p)
		if err != nil {
			t.Fatalf("Temperature(%g): %v", p, err)
		}
		if math.Abs(back-temp)/temp > 1e-6 {
			t.Errorf("Tsat(Psat(%f)) = %f", temp, back)
		}
	}
}

func TestTemperatureOutsideRange(t *testing.T) {
	o := water()
	_, pc, _ := o.Critical()

	if _, err := Temperature(o, pc*1.5); !errors.Is(err, fluid.ErrDomain) {
		t.Errorf("expected ErrDomain above critical pressure, got %v", err)
	}
	if _, err := Temperature(o, 1e-3); !errors.Is(err, fluid.ErrDomain) {
		t.Errorf("expected ErrDomain below the floor pressure, got %v", err)
	}
}

func TestVaporFraction(t *testing.T) {
	o := water()
	temp := 450.0

	rhoLiq, rhoVap, err := o.SatDensities(temp)
	if err != nil {
		t.Fatalf("SatDensities: %v", err)
	}

	// Overall density from a known quality must invert back to it.
	x := 0.3
	vol := x/rhoVap + (1-x)/rhoLiq
	got, err := VaporFraction(o, temp, 1/vol)
	if err != nil {
		t.Fatalf("VaporFraction: %v", err)
	}
	if math.Abs(got-x) > 1e-9 {
		t.Errorf("expected quality %f, got %f", x, got)
	}

	if _, err := VaporFraction(o, temp, rhoVap*0.5); !errors.Is(err, fluid.ErrDomain) {
		t.Errorf("expected ErrDomain outside the dome, got %v", err)
	}
}

func TestFromTemperature(t *testing.T) {
	o := water()
	temp, x := 500.0, 0.25

	st, err := FromTemperature(o, temp, x)
	if err != nil {
		t.Fatalf("FromTemperature: %v", err)
	}
	if !st.TwoPhase {
		t.Fatal("expected a two-phase state")
	}
	if st.X != x {
		t.Errorf("expected quality %f, got %f", x, st.X)
	}
	if !(st.RhoVap < st.Rho && st.Rho < st.RhoLiq) {
		t.Errorf("overall density %g not inside [%g, %g]", st.Rho, st.RhoVap, st.RhoLiq)
	}
}

func TestFromTemperatureBoundaryQualities(t *testing.T) {
	o := water()
	temp := 400.0

	rhoLiq, rhoVap, err := o.SatDensities(temp)
	if err != nil {
		t.Fatalf("SatDensities: %v", err)
	}

	liq, err := FromTemperature(o, temp, 0)
	if err != nil {
		t.Fatalf("FromTemperature(x=0): %v", err)
	}
	if math.Abs(liq.Rho-rhoLiq)/rhoLiq > 1e-12 {
		t.Errorf("x=0 density %g, expected saturated liquid %g", liq.Rho, rhoLiq)
	}

	vap, err := FromTemperature(o, temp, 1)
	if err != nil {
		t.Fatalf("FromTemperature(x=1): %v", err)
	}
	if math.Abs(vap.Rho-rhoVap)/rhoVap > 1e-12 {
		t.Errorf("x=1 density %g, expected saturated vapor %g", vap.Rho, rhoVap)
	}
}

func TestFromTemperatureRejectsBadQuality(t *testing.T) {
	o := water()
	for _, x := range []float64{-0.1, 1.1} {
		if _, err := FromTemperature(o, 450, x); !errors.Is(err, fluid.ErrDomain) {
			t.Errorf("x=%f: expected ErrDomain, got %v", x, err)
		}
	}
}

func TestFromPressure(t *testing.T) {
	o := water()
	temp := 480.0

	p, err := Pressure(o, temp)
	if err != nil {
		t.Fatalf("Pressure: %v", err)
	}

	st, err := FromPressure(o, p, 0.6)
	if err != nil {
		t.Fatalf("FromPressure: %v", err)
	}
	if math.Abs(st.T-temp)/temp > 1e-6 {
		t.Errorf("expected T near %f, got %f", temp, st.T)
	}
	if math.Abs(st.X-0.6) > 1e-12 {
		t.Errorf("expected quality 0.6, got %f", st.X)
	}
}
