package phase_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/purefluid/internal/eos"
	"github.com/san-kum/purefluid/internal/fluid"
	"github.com/san-kum/purefluid/internal/phase"
)

func newWater() *phase.Phase {
	return phase.New("water", eos.NewVanDerWaals(eos.Substances["water"]))
}

var _ = Describe("Phase", func() {
	var ph *phase.Phase

	BeforeEach(func() {
		ph = newWater()
	})

	Describe("before any state is set", func() {
		It("reports no state", func() {
			Expect(ph.Resolved()).To(BeFalse())

			_, err := ph.Temperature()
			Expect(err).To(MatchError(fluid.ErrNoState))
			_, err = ph.MolarEnthalpy()
			Expect(err).To(MatchError(fluid.ErrNoState))
			_, err = ph.Report()
			Expect(err).To(MatchError(fluid.ErrNoState))
		})
	})

	Describe("a superheated vapor state", func() {
		const temp, vol = 500.0, 0.02

		BeforeEach(func() {
			Expect(ph.SetTV(temp, vol)).To(Succeed())
		})

		It("caches the set coordinates", func() {
			Expect(ph.Temperature()).To(BeNumerically("~", temp, 1e-9))
			Expect(ph.MolarDensity()).To(BeNumerically("~", 1/vol, 1e-9))
			Expect(ph.MolarVolume()).To(BeNumerically("~", vol, 1e-12))
		})

		It("classifies as vapor", func() {
			Expect(ph.VaporFraction()).To(BeNumerically("==", 1))
		})

		It("keeps enthalpy, energy and pressure consistent", func() {
			u, err := ph.MolarInternalEnergy()
			Expect(err).NotTo(HaveOccurred())
			pr, err := ph.Pressure()
			Expect(err).NotTo(HaveOccurred())
			h, err := ph.MolarEnthalpy()
			Expect(err).NotTo(HaveOccurred())
			Expect(h).To(BeNumerically("~", u+pr*vol, math.Abs(h)*1e-12))
		})

		It("keeps Gibbs energy consistent with h - T*s", func() {
			h, _ := ph.MolarEnthalpy()
			s, _ := ph.MolarEntropy()
			Expect(ph.MolarGibbs()).To(BeNumerically("~", h-temp*s, 1e-6))
			Expect(ph.ChemPotential()).To(BeNumerically("~", h-temp*s, 1e-6))
		})

		It("scales the mass density by the molar mass", func() {
			rho, _ := ph.MolarDensity()
			Expect(ph.MassDensity()).To(BeNumerically("~", rho*ph.MolarMass(), 1e-9))
		})

		It("has unit activity and density as standard concentration", func() {
			Expect(ph.Activity()).To(BeNumerically("==", 1))
			Expect(ph.StandardConcentration()).To(BeNumerically("~", 1/vol, 1e-9))
		})

		It("relates the nondimensional properties", func() {
			hRT, err := ph.EnthalpyRT()
			Expect(err).NotTo(HaveOccurred())
			sR, err := ph.EntropyR()
			Expect(err).NotTo(HaveOccurred())
			Expect(ph.GibbsRT()).To(BeNumerically("~", hRT-sR, 1e-9))
		})

		It("relates the reference-state properties the same way", func() {
			const pRef = 1e5
			hRT, err := ph.EnthalpyRTRef()
			Expect(err).NotTo(HaveOccurred())
			sR, err := ph.EntropyRRef(pRef)
			Expect(err).NotTo(HaveOccurred())
			Expect(ph.GibbsRTRef(pRef)).To(BeNumerically("~", hRT-sR, 1e-9))
		})

		It("renders a report naming the substance", func() {
			out, err := ph.Report()
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("water"))
			Expect(out).To(ContainSubstring("vapor"))
			Expect(out).To(ContainSubstring("temperature"))
		})
	})

	Describe("dilute-gas heat capacities", func() {
		BeforeEach(func() {
			// Large molar volume: van der Waals corrections are negligible.
			Expect(ph.SetTV(600, 100)).To(Succeed())
		})

		It("recovers cv0", func() {
			Expect(ph.Cv()).To(BeNumerically("~", 25.3, 1e-3))
		})

		It("recovers cp = cv + R", func() {
			cv, _ := ph.Cv()
			Expect(ph.Cp()).To(BeNumerically("~", cv+fluid.GasConstant, 1e-2))
		})
	})

	Describe("a saturated state from (T, x)", func() {
		const temp, x = 450.0, 0.4

		BeforeEach(func() {
			Expect(ph.SetTX(temp, x)).To(Succeed())
		})

		It("reports the set quality", func() {
			Expect(ph.VaporFraction()).To(BeNumerically("==", x))
		})

		It("reports the saturation pressure", func() {
			psat, err := ph.SatPressure()
			Expect(err).NotTo(HaveOccurred())
			Expect(ph.Pressure()).To(BeNumerically("~", psat, psat*1e-6))
		})

		It("places the density between the saturated bounds", func() {
			st, err := ph.State()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.TwoPhase).To(BeTrue())
			rho, _ := ph.MolarDensity()
			Expect(rho).To(BeNumerically(">", st.RhoVap))
			Expect(rho).To(BeNumerically("<", st.RhoLiq))
		})

		It("lever-rules the enthalpy between the phase values", func() {
			st, _ := ph.State()
			liq := newWater()
			vap := newWater()
			Expect(liq.SetTV(temp, 1/st.RhoLiq)).To(Succeed())
			Expect(vap.SetTV(temp, 1/st.RhoVap)).To(Succeed())
			hLiq, _ := liq.MolarEnthalpy()
			hVap, _ := vap.MolarEnthalpy()
			Expect(ph.MolarEnthalpy()).To(BeNumerically("~", x*hVap+(1-x)*hLiq, 1e-6))
		})

		It("diverges the mechanical response functions", func() {
			Expect(ph.IsothermalCompressibility()).To(BeNumerically("==", math.Inf(1)))
			Expect(ph.ThermalExpansion()).To(BeNumerically("==", math.Inf(1)))
		})

		It("reports quality in the rendered summary", func() {
			out, err := ph.Report()
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("liquid/vapor"))
			Expect(out).To(ContainSubstring("quality"))
		})
	})

	Describe("boundary qualities", func() {
		It("matches the saturated liquid at x = 0", func() {
			Expect(ph.SetTX(450, 0)).To(Succeed())
			st, _ := ph.State()
			rho, _ := ph.MolarDensity()
			Expect(rho).To(BeNumerically("~", st.RhoLiq, st.RhoLiq*1e-12))
			Expect(ph.VaporFraction()).To(BeNumerically("==", 0))
		})

		It("matches the saturated vapor at x = 1", func() {
			Expect(ph.SetTX(450, 1)).To(Succeed())
			st, _ := ph.State()
			rho, _ := ph.MolarDensity()
			Expect(rho).To(BeNumerically("~", st.RhoVap, st.RhoVap*1e-12))
		})
	})

	Describe("construction from (P, x)", func() {
		It("round-trips through the saturation temperature", func() {
			Expect(ph.SetTX(480, 0.5)).To(Succeed())
			psat, err := ph.SatPressure()
			Expect(err).NotTo(HaveOccurred())

			other := newWater()
			Expect(other.SetPX(psat, 0.5)).To(Succeed())
			Expect(other.Temperature()).To(BeNumerically("~", 480, 480*1e-6))
		})
	})

	Describe("setting by enthalpy and pressure", func() {
		It("resolves back to the originating state", func() {
			Expect(ph.SetTV(500, 0.02)).To(Succeed())
			h, _ := ph.MolarEnthalpy()
			pr, _ := ph.Pressure()

			other := newWater()
			Expect(other.SetHP(h, pr)).To(Succeed())
			Expect(other.Temperature()).To(BeNumerically("~", 500, 500*1e-6))
			Expect(other.MolarDensity()).To(BeNumerically("~", 50, 50*1e-6))
		})
	})

	Describe("failure behavior", func() {
		It("keeps the previous state when a set fails", func() {
			Expect(ph.SetTV(500, 0.02)).To(Succeed())
			Expect(ph.SetTV(500, -1)).NotTo(Succeed())

			Expect(ph.Resolved()).To(BeTrue())
			Expect(ph.Temperature()).To(BeNumerically("~", 500, 1e-9))
			Expect(ph.MolarDensity()).To(BeNumerically("~", 50, 1e-9))
		})

		It("rejects qualities outside the unit interval", func() {
			Expect(ph.SetTX(450, 1.5)).To(MatchError(fluid.ErrDomain))
		})
	})

	Describe("critical and bound queries", func() {
		It("exposes the substance constants", func() {
			Expect(ph.Name()).To(Equal("water"))
			Expect(ph.CritTemperature()).To(BeNumerically("~", 647.096, 1e-9))
			Expect(ph.CritPressure()).To(BeNumerically("~", 22.064e6, 1e-3))
			Expect(ph.CritDensity()).To(BeNumerically(">", 0))
			Expect(ph.MinTemp()).To(BeNumerically("<", ph.MaxTemp()))
			Expect(ph.MolarMass()).To(BeNumerically("~", 0.0180153, 1e-12))
		})
	})
})
