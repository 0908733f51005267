// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/diff/fd"
)

// checkDpDv compares the analytical ∂P/∂v with central differences along [v0, vf]
//  tol -- tolerance relative to the magnitude of the repulsive term R・T/(v−b)²
func checkDpDv(tst *testing.T, mdl Model, T, v0, vf float64, npts int, tol float64, verbose bool) {

	// parameters at T
	par, err := mdl.Params(T)
	if err != nil {
		tst.Errorf("Params failed: %v\n", err)
		return
	}

	// for all v stations
	for _, v := range utl.LinSpace(v0, vf, npts) {
		ana := mdl.DpDv(par, v)
		num := fd.Derivative(func(x float64) float64 {
			return mdl.PressureWith(par, x)
		}, v, &fd.Settings{Formula: fd.Central, Step: 1e-6 * v})
		scale := par.R * par.T / ((v - par.B) * (v - par.B))
		diff := math.Abs(ana-num) / scale
		if verbose {
			io.Pf("T=%g v=%12.6e dPdv: ana=%23.15e num=%23.15e reldiff=%g\n", T, v, ana, num, diff)
		}
		if diff > tol {
			tst.Errorf("dPdv @ T=%g, v=%g: relative difference %g is greater than %g\n", T, v, diff, tol)
			return
		}
	}
}
