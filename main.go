// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/goeos/ana"
	"github.com/cpmech/goeos/curves"
	"github.com/cpmech/goeos/inp"
	"github.com/cpmech/goeos/mdl/eos"
	"github.com/cpmech/goeos/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	show := io.ArgToBool(0, true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGoeos -- Peng-Robinson isotherms of CO2\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"show figure on screen", "show", show,
			"show messages", "verbose", verbose,
		))
	}

	// run
	sweep := inp.Default()
	chart, fn, err := run(sweep, verbose)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	io.Pf("Plot saved as %s\n", fn)

	// show figure
	if show {
		chart.Show()
	}
}

// run computes the isotherms and saves the chart
func run(sweep *inp.Sweep, verbose bool) (chart *out.Chart, fn string, err error) {

	// configuration
	err = sweep.Check()
	if err != nil {
		return
	}
	if verbose {
		io.Pf("\n%v\n", sweep)
	}

	// substance
	sdb, err := inp.ReadSubstances()
	if err != nil {
		return
	}
	sub, err := sdb.Get(sweep.Substance)
	if err != nil {
		return
	}

	// model
	mdl, err := eos.New(sweep.Model)
	if err != nil {
		return
	}
	err = mdl.Init(sub.Prms())
	if err != nil {
		return
	}

	// grid and isotherms
	grid, err := curves.NewGrid(sweep.RhoMin, sweep.RhoMax, sub.M, mdl.B(), sweep.Npts)
	if err != nil {
		return
	}
	isotherms, err := curves.Isotherms(mdl, sweep.Temps, grid)
	if err != nil {
		return
	}
	if verbose {
		summary(mdl, sub, isotherms)
	}

	// chart
	chart = out.FromCurves(isotherms, sub.Name, 1e-6)
	fn, err = chart.Save(sweep.DirOut, sweep.FnKey)
	return
}

// summary prints the parameters and pressure range of each isotherm
//  Z0 is the compressibility factor and Pid0 the ideal gas pressure at the lowest density;
//  nu is the number of stations with ∂P/∂v > 0
func summary(mdl eos.Model, sub *inp.Substance, isotherms []*curves.Curve) {
	var gas ana.IdealGas
	gas.Init(sub.R, sub.M)
	io.Pforan("%8s%12s%12s%14s%14s%12s%12s%10s%12s%6s\n", "T [K]", "κ", "α", "a", "b", "Pmin [MPa]", "Pmax [MPa]", "Z0", "Pid0 [MPa]", "nu")
	for _, c := range isotherms {
		pmin, pmax := c.Prange()
		z0 := mdl.Z(c.Par, c.Grid.V[0])
		pid := gas.PressureRho(c.T, c.Grid.Rho[0])
		io.Pf("%8g%12.6f%12.6f%14.6e%14.6e%12.4f%12.4f%10.6f%12.4f%6d\n", c.T, c.Par.Kappa, c.Par.Alpha, c.Par.A, c.Par.B, pmin/1e6, pmax/1e6, z0, pid/1e6, c.Unstable(mdl))
	}
}
