// Package profile computes analytical steady-state gas profiles around a
// softened point mass (a black hole) under two equilibrium closures:
//
//   - [Isothermal]: hydrostatic equilibrium at fixed sound speed
//   - [Polytropic]: adiabatic equilibrium P = K*rho^gamma anchored at a
//     virial reference state
//
// Both implement [Closure]; [Evaluate] runs a closure over a [RadiusGrid]
// and returns parallel field slices together with a per-sample validity
// mask. All quantities are CGS.
package profile
