package phase

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Report renders a human-readable property summary of the cached state.
func (p *Phase) Report() (string, error) {
	st, err := p.State()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "substance:\t%s\t\n", p.name)
	if st.TwoPhase {
		fmt.Fprintf(w, "phase:\tliquid/vapor\t\n")
		fmt.Fprintf(w, "quality:\t%.6f\t\n", st.X)
	} else if st.T >= p.CritTemperature() {
		fmt.Fprintf(w, "phase:\tsupercritical\t\n")
	} else if st.Rho >= p.CritDensity() {
		fmt.Fprintf(w, "phase:\tliquid\t\n")
	} else {
		fmt.Fprintf(w, "phase:\tvapor\t\n")
	}

	row := func(label, unit string, fn func() (float64, error)) {
		v, err := fn()
		if err != nil {
			fmt.Fprintf(w, "%s:\t-\t%s\n", label, unit)
			return
		}
		fmt.Fprintf(w, "%s:\t%.6g\t%s\n", label, v, unit)
	}

	row("temperature", "K", p.Temperature)
	row("pressure", "Pa", p.Pressure)
	row("density", "kg/m^3", p.MassDensity)
	row("molar density", "mol/m^3", p.MolarDensity)
	row("molar enthalpy", "J/mol", p.MolarEnthalpy)
	row("molar internal energy", "J/mol", p.MolarInternalEnergy)
	row("molar entropy", "J/(mol K)", p.MolarEntropy)
	row("molar Gibbs energy", "J/mol", p.MolarGibbs)
	row("cp", "J/(mol K)", p.Cp)
	row("cv", "J/(mol K)", p.Cv)
	if !st.TwoPhase {
		row("isothermal compressibility", "1/Pa", p.IsothermalCompressibility)
		row("thermal expansion", "1/K", p.ThermalExpansion)
	}

	if err := w.Flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
