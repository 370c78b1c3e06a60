// Package fluid provides the core types for single-component fluid
// thermodynamics.
//
// The package defines the fundamental interfaces and types shared by the
// state resolver and the phase object:
//
//   - [Oracle]: low-level equation-of-state evaluator for one substance
//   - [State]: a resolved (T, density) point, possibly inside the dome
//   - [Pair]: tag naming which two intensive properties are held fixed
//   - [Spec]: a pair tag plus its two target values and tolerance
//
// All quantities are SI on a molar basis: K, Pa, mol/m^3, J/mol and
// J/(mol*K). Conversion to a mass basis happens at the phase API boundary.
//
// # Thread Safety
//
// Phase objects are NOT thread-safe: resolving a state mutates the cached
// state in place. Use one phase instance per goroutine; an Oracle with no
// per-call mutable state may be shared.
package fluid
