package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/purefluid/internal/config"
	"github.com/san-kum/purefluid/internal/export"
	"github.com/san-kum/purefluid/internal/phase"
	"github.com/san-kum/purefluid/internal/registry"
	"github.com/san-kum/purefluid/internal/sat"
	"github.com/san-kum/purefluid/internal/storage"
	"github.com/san-kum/purefluid/internal/sweep"
	"github.com/san-kum/purefluid/internal/tui"
)

var (
	dataDir    string
	pairName   string
	xTarget    float64
	yTarget    float64
	tolerance  float64
	configFile string
	preset     string
	save       bool

	satTemp    float64
	satFrom    float64
	satTo      float64
	satSamples int
	satPlot    bool
	satSVG     string
)

// main registers the purefluid commands; with no subcommand it launches the
// interactive explorer. Exits with status 1 on command failure.
func main() {
	rootCmd := &cobra.Command{
		Use:   "purefluid",
		Short: "pure-fluid thermodynamic state calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".purefluid", "data directory")

	stateCmd := &cobra.Command{
		Use:   "state [substance]",
		Short: "resolve a state from a property pair",
		Args:  cobra.ExactArgs(1),
		RunE:  resolveState,
	}
	stateCmd.Flags().StringVar(&pairName, "pair", "TV", "property pair (HP, UV, SV, SP, ST, TV, PV, UP, VH, TH, SH)")
	stateCmd.Flags().Float64Var(&xTarget, "x", 0, "first target value (order per pair tag, molar SI units)")
	stateCmd.Flags().Float64Var(&yTarget, "y", 0, "second target value")
	stateCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "relative convergence tolerance")
	stateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	stateCmd.Flags().StringVar(&preset, "preset", "", "use preset state")
	stateCmd.Flags().BoolVar(&save, "save", false, "save the resolved state")

	satCmd := &cobra.Command{
		Use:   "sat [substance]",
		Short: "saturation point or curve",
		Args:  cobra.ExactArgs(1),
		RunE:  saturation,
	}
	satCmd.Flags().Float64Var(&satTemp, "temp", 0, "single saturation temperature (K)")
	satCmd.Flags().Float64Var(&satFrom, "from", 0, "sweep start temperature (K)")
	satCmd.Flags().Float64Var(&satTo, "to", 0, "sweep end temperature (K)")
	satCmd.Flags().IntVar(&satSamples, "samples", 40, "sweep sample count")
	satCmd.Flags().BoolVar(&satPlot, "plot", false, "plot the saturation curve")
	satCmd.Flags().StringVar(&satSVG, "svg", "", "write the saturation curve to an SVG file")
	satCmd.Flags().BoolVar(&save, "save", false, "save the sweep")

	critCmd := &cobra.Command{
		Use:   "crit [substance]",
		Short: "critical point and valid range",
		Args:  cobra.ExactArgs(1),
		RunE:  critical,
	}

	substancesCmd := &cobra.Command{
		Use:   "substances",
		Short: "list available substances",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range registry.New().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [substance]",
		Short: "list available presets for a substance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for substance: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive state explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved entries",
		RunE:  listEntries,
	}

	exportCmd := &cobra.Command{
		Use:   "export [id]",
		Short: "export entry metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportEntry,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [id]",
		Short: "print entry data as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(stateCmd, satCmd, critCmd, substancesCmd, presetsCmd, exploreCmd, listCmd, exportCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveState(cmd *cobra.Command, args []string) error {
	substance := args[0]

	if preset != "" {
		cfg := config.GetPreset(substance, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(substance))
		}
		pairName = cfg.Pair
		xTarget = cfg.X
		yTarget = cfg.Y
		if cfg.Tolerance > 0 {
			tolerance = cfg.Tolerance
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		substance = cfg.Substance
		if !cmd.Flags().Changed("pair") {
			pairName = cfg.Pair
		}
		if !cmd.Flags().Changed("x") {
			xTarget = cfg.X
		}
		if !cmd.Flags().Changed("y") {
			yTarget = cfg.Y
		}
		if !cmd.Flags().Changed("tol") && cfg.Tolerance > 0 {
			tolerance = cfg.Tolerance
		}
	}

	ph, err := registry.New().Phase(substance)
	if err != nil {
		return err
	}

	if err := setPair(ph, pairName, xTarget, yTarget, tolerance); err != nil {
		return err
	}

	report, err := ph.Report()
	if err != nil {
		return err
	}
	fmt.Print(report)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.SaveState(substance, pairName, tolerance, propertyMap(ph))
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved: %s\n", id)
	}
	return nil
}

func setPair(ph *phase.Phase, pair string, x, y, tol float64) error {
	switch pair {
	case "HP", "hp":
		return ph.SetHP(x, y, tol)
	case "UV", "uv":
		return ph.SetUV(x, y, tol)
	case "SV", "sv":
		return ph.SetSV(x, y, tol)
	case "SP", "sp":
		return ph.SetSP(x, y, tol)
	case "ST", "st":
		return ph.SetST(x, y, tol)
	case "TV", "tv":
		return ph.SetTV(x, y, tol)
	case "PV", "pv":
		return ph.SetPV(x, y, tol)
	case "UP", "up":
		return ph.SetUP(x, y, tol)
	case "VH", "vh":
		return ph.SetVH(x, y, tol)
	case "TH", "th":
		return ph.SetTH(x, y, tol)
	case "SH", "sh":
		return ph.SetSH(x, y, tol)
	case "TX", "tx":
		return ph.SetTX(x, y)
	case "PX", "px":
		return ph.SetPX(x, y)
	}
	return fmt.Errorf("unknown property pair: %s", pair)
}

func propertyMap(ph *phase.Phase) map[string]float64 {
	props := make(map[string]float64)
	add := func(name string, fn func() (float64, error)) {
		if v, err := fn(); err == nil {
			props[name] = v
		}
	}
	add("temperature", ph.Temperature)
	add("pressure", ph.Pressure)
	add("molar_density", ph.MolarDensity)
	add("mass_density", ph.MassDensity)
	add("enthalpy", ph.MolarEnthalpy)
	add("internal_energy", ph.MolarInternalEnergy)
	add("entropy", ph.MolarEntropy)
	add("gibbs", ph.MolarGibbs)
	add("cp", ph.Cp)
	add("cv", ph.Cv)
	add("vapor_fraction", ph.VaporFraction)
	return props
}

func saturation(cmd *cobra.Command, args []string) error {
	substance := args[0]
	reg := registry.New()
	oracle, err := reg.Oracle(substance)
	if err != nil {
		return err
	}

	if satTemp > 0 {
		p, err := sat.Pressure(oracle, satTemp)
		if err != nil {
			return err
		}
		rhoLiq, rhoVap, err := oracle.SatDensities(satTemp)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "temperature:\t%.4f\tK\n", satTemp)
		fmt.Fprintf(w, "pressure:\t%.6g\tPa\n", p)
		fmt.Fprintf(w, "liquid density:\t%.6g\tmol/m^3\n", rhoLiq)
		fmt.Fprintf(w, "vapor density:\t%.6g\tmol/m^3\n", rhoVap)
		return w.Flush()
	}

	tc, _, _ := oracle.Critical()
	tMin, _, _, _ := oracle.Bounds()
	from, to := satFrom, satTo
	if from <= 0 {
		from = tMin
	}
	if to <= 0 {
		to = tc * 0.995
	}
	if from >= to || satSamples < 2 {
		return fmt.Errorf("invalid sweep window [%.2f, %.2f] with %d samples", from, to, satSamples)
	}

	points, err := sweep.Saturation(cmd.Context(), oracle, from, to, satSamples)
	if err != nil {
		return err
	}

	if satSVG != "" {
		curve := make([]export.XY, len(points))
		for i, pt := range points {
			curve[i] = export.XY{X: pt.T, Y: pt.Psat / 1e6}
		}
		title := fmt.Sprintf("%s saturation pressure (MPa) vs T (K)", substance)
		doc := export.CurveSVG(curve, 720, 480, "#00ff00", title)
		if err := os.WriteFile(satSVG, []byte(doc), 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote: %s\n", satSVG)
	}

	if satPlot {
		mpa := make([]float64, len(points))
		for i, pt := range points {
			mpa[i] = pt.Psat / 1e6
		}
		graph := asciigraph.Plot(mpa,
			asciigraph.Height(12),
			asciigraph.Width(72),
			asciigraph.Caption(fmt.Sprintf("%s saturation pressure (MPa), T in [%.0f, %.0f] K", substance, from, to)),
		)
		fmt.Println(graph)
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "T (K)\tPsat (Pa)\trho_liq (mol/m^3)\trho_vap (mol/m^3)")
		for _, pt := range points {
			fmt.Fprintf(w, "%.2f\t%.6g\t%.6g\t%.6g\n", pt.T, pt.Psat, pt.RhoLiq, pt.RhoVap)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if save {
		temps := make([]float64, len(points))
		pressures := make([]float64, len(points))
		rhoLiqs := make([]float64, len(points))
		rhoVaps := make([]float64, len(points))
		for i, pt := range points {
			temps[i] = pt.T
			pressures[i] = pt.Psat
			rhoLiqs[i] = pt.RhoLiq
			rhoVaps[i] = pt.RhoVap
		}
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.SaveSweep(substance, temps, pressures, rhoLiqs, rhoVaps)
		if err != nil {
			return err
		}
		fmt.Printf("saved: %s\n", id)
	}
	return nil
}

func critical(cmd *cobra.Command, args []string) error {
	oracle, err := registry.New().Oracle(args[0])
	if err != nil {
		return err
	}
	tc, pc, rhoc := oracle.Critical()
	tMin, tMax, rhoMin, rhoMax := oracle.Bounds()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "critical temperature:\t%.4f\tK\n", tc)
	fmt.Fprintf(w, "critical pressure:\t%.6g\tPa\n", pc)
	fmt.Fprintf(w, "critical density:\t%.6g\tmol/m^3\n", rhoc)
	fmt.Fprintf(w, "temperature range:\t%.2f - %.2f\tK\n", tMin, tMax)
	fmt.Fprintf(w, "density range:\t%.3g - %.6g\tmol/m^3\n", rhoMin, rhoMax)
	return w.Flush()
}

func listEntries(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	entries, err := st.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no saved entries")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSUBSTANCE\tPAIR\tTIME")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Kind, e.Substance, e.Pair, e.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func exportEntry(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	header, rows, err := storage.New(dataDir).LoadTable(args[0])
	if err != nil {
		return err
	}
	for i, name := range header {
		if i > 0 {
			fmt.Print(",")
		}
		fmt.Print(name)
	}
	fmt.Println()
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				fmt.Print(",")
			}
			fmt.Printf("%g", v)
		}
		fmt.Println()
	}
	return nil
}
