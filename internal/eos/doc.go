// Package eos provides equation-of-state oracles for pure substances.
//
// The only implementation is a van der Waals fluid with a constant
// ideal-gas heat capacity:
//
//	p = RT/(v-b) - a/v^2
//
// The cubic gives an analytic critical point; saturation properties come
// from the Maxwell equal-area construction, solved by a bracketed search on
// pressure between the spinodal pressures of the isotherm. Each oracle
// implements [fluid.Oracle] plus the optional derivative and
// reference-state extensions.
package eos
