// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical reference solutions
package ana

// IdealGas handles the ideal gas law P = R・T/v
type IdealGas struct {
	R float64 // universal gas constant [J/(mol・K)]
	M float64 // molar mass [kg/mol]
}

// Init initialises data
func (o *IdealGas) Init(R, M float64) {
	o.R = R // [J/(mol・K)]
	o.M = M // [kg/mol]
}

// Pressure computes P(T, v) with v in [m³/mol]
func (o IdealGas) Pressure(T, v float64) float64 {
	return o.R * T / v
}

// PressureRho computes P(T, ρ) with ρ the mass density in [kg/m³]
func (o IdealGas) PressureRho(T, rho float64) float64 {
	return rho / o.M * o.R * T
}

// Z computes the compressibility factor P・v/(R・T) of a real gas with pressure p at (T, v)
func (o IdealGas) Z(p, T, v float64) float64 {
	return p / o.Pressure(T, v)
}
