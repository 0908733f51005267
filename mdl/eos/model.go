// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements cubic equations of state for pure substances
//  References:
//   [1] Peng DY and Robinson DB (1976) A new two-constant equation of state.
//       Industrial & Engineering Chemistry Fundamentals, 15(1), 59-64,
//       http://dx.doi.org/10.1021/i160057a011
package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines equations of state P(T, v)
type Model interface {
	Init(prms dbf.Params) error                 // initialises model
	GetPrms(example bool) dbf.Params            // gets (an example) of parameters
	B() float64                                 // co-volume b
	Params(T float64) (Params, error)           // computes the temperature dependent parameters
	PressureWith(par Params, v float64) float64 // computes P with precomputed parameters
	DpDv(par Params, v float64) float64         // computes ∂P/∂v at constant T
	Z(par Params, v float64) float64            // computes the compressibility factor P・v/(R・T)
}

// Params holds the parameters of the equation of state at one temperature
type Params struct {
	T     float64 // temperature [K]
	R     float64 // gas constant [J/(mol・K)]
	Kappa float64 // κ = κ(ω)
	Alpha float64 // α(T)
	A     float64 // attraction parameter a(T) [Pa・m⁶/mol²]
	B     float64 // co-volume b [m³/mol]
}

// New returns a new equation of state model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
