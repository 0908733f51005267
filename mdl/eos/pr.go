// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Peng-Robinson constants
const (
	PrOmegaA = 0.45724 // Ωa
	PrOmegaB = 0.07780 // Ωb
)

// PengRobinson implements the Peng-Robinson equation of state [1]
//
//           R・T          a(T)
//   P = ─────── − ───────────────────
//         v − b    v(v + b) + b(v − b)
//
//   a(T) = Ωa・R²・Tc²/Pc・α(T)     α(T) = (1 + κ(1 − √(T/Tc)))²
//   b    = Ωb・R・Tc/Pc              κ    = 0.37464 + 1.54226ω − 0.26992ω²
//
//  Note: the κ(ω) correlation is valid for ω < 0.49; this is not enforced
type PengRobinson struct {

	// parameters
	Tc    float64 // critical temperature [K]
	Pc    float64 // critical pressure [Pa]
	Omega float64 // acentric factor ω
	R     float64 // gas constant [J/(mol・K)]

	// derived
	kappa float64 // κ(ω)
	ac    float64 // Ωa・R²・Tc²/Pc
	b     float64 // co-volume
}

// add model to factory
func init() {
	allocators["pr"] = func() Model { return new(PengRobinson) }
}

// Init initialises model
func (o *PengRobinson) Init(prms dbf.Params) (err error) {
	o.R = 8.314
	for _, p := range prms {
		switch p.N {
		case "Tc":
			o.Tc = p.V
		case "Pc":
			o.Pc = p.V
		case "omega":
			o.Omega = p.V
		case "R":
			o.R = p.V
		default:
			return chk.Err("pr: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Tc <= 0 {
		return chk.Err("pr: critical temperature must be positive. Tc = %g is invalid\n", o.Tc)
	}
	if o.Pc <= 0 {
		return chk.Err("pr: critical pressure must be positive. Pc = %g is invalid\n", o.Pc)
	}
	if o.R <= 0 {
		return chk.Err("pr: gas constant must be positive. R = %g is invalid\n", o.R)
	}
	o.kappa = 0.37464 + 1.54226*o.Omega - 0.26992*o.Omega*o.Omega
	o.ac = PrOmegaA * o.R * o.R * o.Tc * o.Tc / o.Pc
	o.b = PrOmegaB * o.R * o.Tc / o.Pc
	return
}

// GetPrms gets (an example) of parameters
//  Note: example corresponds to carbon dioxide
func (o PengRobinson) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Tc", V: 304.13},   // [K]
			&dbf.P{N: "Pc", V: 7.3773e6}, // [Pa]
			&dbf.P{N: "omega", V: 0.22394},
			&dbf.P{N: "R", V: 8.314}, // [J/(mol・K)]
		}
	}
	return dbf.Params{
		&dbf.P{N: "Tc", V: o.Tc},
		&dbf.P{N: "Pc", V: o.Pc},
		&dbf.P{N: "omega", V: o.Omega},
		&dbf.P{N: "R", V: o.R},
	}
}

// Kappa returns κ(ω)
func (o PengRobinson) Kappa() float64 {
	return o.kappa
}

// B returns the co-volume b; it does not depend on temperature
func (o PengRobinson) B() float64 {
	return o.b
}

// Alpha computes α(T)
func (o PengRobinson) Alpha(T float64) float64 {
	c := 1.0 + o.kappa*(1.0-math.Sqrt(T/o.Tc))
	return c * c
}

// A computes a(T)
func (o PengRobinson) A(T float64) float64 {
	return o.ac * o.Alpha(T)
}

// Params computes the temperature dependent parameters
func (o PengRobinson) Params(T float64) (par Params, err error) {
	if T < 0 {
		return par, chk.Err("pr: temperature must be non-negative. T = %g is invalid\n", T)
	}
	par.T = T
	par.R = o.R
	par.Kappa = o.kappa
	par.Alpha = o.Alpha(T)
	par.A = o.ac * par.Alpha
	par.B = o.b
	return
}

// Pressure computes P(T, v). v must be greater than b
func (o PengRobinson) Pressure(T, v float64) float64 {
	b := o.b
	return o.R*T/(v-b) - o.A(T)/(v*(v+b)+b*(v-b))
}

// PressureWith computes P(v) using precomputed parameters. v must be greater than b
func (o PengRobinson) PressureWith(par Params, v float64) float64 {
	b := par.B
	return par.R*par.T/(v-b) - par.A/(v*(v+b)+b*(v-b))
}

// DpDv computes ∂P/∂v at constant temperature
func (o PengRobinson) DpDv(par Params, v float64) float64 {
	b := par.B
	d := v*(v+b) + b*(v-b)
	return -par.R*par.T/((v-b)*(v-b)) + par.A*2.0*(v+b)/(d*d)
}

// Z computes the compressibility factor Z = P・v/(R・T)
func (o PengRobinson) Z(par Params, v float64) float64 {
	return o.PressureWith(par, v) * v / (par.R * par.T)
}
