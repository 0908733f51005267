// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

import (
	"math"

	"github.com/cpmech/goeos/mdl/eos"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Curve holds pressures along one isotherm
type Curve struct {
	T    float64    // temperature [K]
	Par  eos.Params // parameters of equation of state at T
	Grid *Grid      // density stations
	P    []float64  // pressures [Pa]; len(P) == Grid.Size()
}

// Isotherm computes P at all stations of grid with temperature T
func Isotherm(mdl eos.Model, T float64, grid *Grid) (o *Curve, err error) {
	par, err := mdl.Params(T)
	if err != nil {
		return
	}
	if grid.B < par.B {
		return nil, chk.Err("isotherm: grid was built with b = %g, smaller than model co-volume %g", grid.B, par.B)
	}
	o = &Curve{T: T, Par: par, Grid: grid}
	o.P = make([]float64, grid.Size())
	for i, v := range grid.V {
		o.P[i] = mdl.PressureWith(par, v)
	}
	if floats.HasNaN(o.P) {
		return nil, chk.Err("isotherm: NaN pressure found at T = %g", T)
	}
	for i, p := range o.P {
		if math.IsInf(p, 0) {
			return nil, chk.Err("isotherm: infinite pressure found at T = %g, v = %g", T, grid.V[i])
		}
	}
	return
}

// Isotherms computes one curve per temperature. The order of temps is kept
func Isotherms(mdl eos.Model, temps []float64, grid *Grid) (res []*Curve, err error) {
	res = make([]*Curve, len(temps))
	for i, T := range temps {
		res[i], err = Isotherm(mdl, T, grid)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Prange returns the minimum and maximum pressures
func (o Curve) Prange() (pmin, pmax float64) {
	return floats.Min(o.P), floats.Max(o.P)
}

// Scaled returns a copy of the pressures multiplied by s; e.g. s = 1e-6 gives MPa
func (o Curve) Scaled(s float64) (res []float64) {
	res = make([]float64, len(o.P))
	copy(res, o.P)
	floats.Scale(s, res)
	return
}

// Z computes the compressibility factor at each station
func (o Curve) Z(mdl eos.Model) (res []float64) {
	res = make([]float64, len(o.Grid.V))
	for i, v := range o.Grid.V {
		res[i] = mdl.Z(o.Par, v)
	}
	return
}

// Unstable returns the number of stations where ∂P/∂v > 0 (van der Waals loop)
func (o Curve) Unstable(mdl eos.Model) (n int) {
	for _, v := range o.Grid.V {
		if mdl.DpDv(o.Par, v) > 0 {
			n++
		}
	}
	return
}
