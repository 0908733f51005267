// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Sweep holds the configuration of one run
type Sweep struct {
	Substance string    // name of substance in database
	Model     string    // name of equation of state model
	Temps     []float64 // temperatures of isotherms [K]. The order is kept in the legend
	RhoMin    float64   // minimum mass density [kg/m³]
	RhoMax    float64   // maximum mass density [kg/m³]
	Npts      int       // number of density stations
	DirOut    string    // output directory
	FnKey     string    // filename key of figure (without extension)
}

// Default returns the configuration for the CO2 isotherms
func Default() *Sweep {
	return &Sweep{
		Substance: "CO2",
		Model:     "pr",
		Temps:     []float64{295, 325, 345, 375},
		RhoMin:    50,
		RhoMax:    1000,
		Npts:      400,
		DirOut:    ".",
		FnKey:     "co2_eos_plot",
	}
}

// Check checks the configuration
func (o Sweep) Check() error {
	if len(o.Temps) == 0 {
		return chk.Err("at least one temperature must be given")
	}
	for _, T := range o.Temps {
		if T <= 0 {
			return chk.Err("temperatures must be positive. T = %g is invalid", T)
		}
	}
	if o.RhoMin <= 0 || o.RhoMax <= o.RhoMin {
		return chk.Err("density range is invalid: [%g, %g]", o.RhoMin, o.RhoMax)
	}
	if o.Npts < 2 {
		return chk.Err("number of density stations must be at least 2. Npts = %d is invalid", o.Npts)
	}
	if o.FnKey == "" {
		return chk.Err("filename key must not be empty")
	}
	return nil
}

// Fname returns the name of the figure file
func (o Sweep) Fname() string {
	return io.Sf("%s.png", o.FnKey)
}

// String returns a table with the configuration
func (o Sweep) String() string {
	return io.ArgsTable("SWEEP",
		"substance", "Substance", o.Substance,
		"equation of state", "Model", o.Model,
		"temperatures [K]", "Temps", io.Sf("%v", o.Temps),
		"min density [kg/m³]", "RhoMin", o.RhoMin,
		"max density [kg/m³]", "RhoMax", o.RhoMax,
		"number of stations", "Npts", o.Npts,
		"output directory", "DirOut", o.DirOut,
		"figure file", "FnKey", o.Fname(),
	)
}
