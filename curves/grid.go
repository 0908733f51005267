// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package curves implements density grids and isotherms P(ρ)
package curves

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// VolumeMargin is the smallest allowed relative distance between v and the co-volume b
const VolumeMargin = 1e-3

// Grid holds density stations and corresponding molar volumes
//  Note: all molar volumes are greater than b・(1 + VolumeMargin)
type Grid struct {
	M    float64   // molar mass [kg/mol]
	B    float64   // co-volume used to check the stations [m³/mol]
	Rho  []float64 // mass densities [kg/m³]
	Rhom []float64 // molar densities [mol/m³]
	V    []float64 // molar volumes [m³/mol]
}

// NewGrid returns a grid with npts mass densities linearly spaced in [rhoMin, rhoMax]
//  M -- molar mass [kg/mol]
//  b -- co-volume [m³/mol]
func NewGrid(rhoMin, rhoMax, M, b float64, npts int) (o *Grid, err error) {
	if npts < 2 {
		return nil, chk.Err("grid: number of stations must be at least 2. npts = %d is invalid", npts)
	}
	if rhoMin <= 0 || rhoMax <= rhoMin {
		return nil, chk.Err("grid: density range [%g, %g] is invalid", rhoMin, rhoMax)
	}
	if M <= 0 {
		return nil, chk.Err("grid: molar mass must be positive. M = %g is invalid", M)
	}
	if b <= 0 {
		return nil, chk.Err("grid: co-volume must be positive. b = %g is invalid", b)
	}
	o = &Grid{M: M, B: b}
	o.Rho = utl.LinSpace(rhoMin, rhoMax, npts)
	o.Rhom = make([]float64, npts)
	o.V = make([]float64, npts)
	vmin := b * (1.0 + VolumeMargin)
	for i, rho := range o.Rho {
		o.Rhom[i] = rho / M
		o.V[i] = ToVolume(o.Rhom[i])
		if o.V[i] <= vmin {
			return nil, chk.Err("grid: density ρ = %g kg/m³ gives v = %g m³/mol which is not greater than b(1+%g) = %g", rho, o.V[i], VolumeMargin, vmin)
		}
	}
	return
}

// Size returns the number of stations
func (o Grid) Size() int {
	return len(o.V)
}

// MaxDensity returns the largest mass density allowed by the co-volume
func MaxDensity(M, b float64) float64 {
	return M * ToDensity(b*(1.0+VolumeMargin))
}

// ToVolume converts molar density [mol/m³] to molar volume [m³/mol]
func ToVolume(rhom float64) float64 {
	return 1.0 / rhom
}

// ToDensity converts molar volume [m³/mol] to molar density [mol/m³]
func ToDensity(v float64) float64 {
	return 1.0 / v
}
