// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

var co2temps = []float64{295, 325, 345, 375}

func newCO2(tst *testing.T) *PengRobinson {
	mdl, err := New("pr")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return nil
	}
	return mdl.(*PengRobinson)
}

func Test_pr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr01. parameters of CO2")

	m := newCO2(tst)
	if m == nil {
		return
	}

	chk.Float64(tst, "κ", 1e-15, m.Kappa(), 0.7064774529578879)
	chk.Float64(tst, "b", 1e-17, m.B(), 2.666560457023572e-05)

	// reference values: α(T) and a(T)
	alps := []float64{1.0214842688195906, 0.9528926920584601, 0.9101664766758494, 0.8500711992565366}
	as := []float64{0.40477811026266897, 0.37759769283598527, 0.36066680388432837, 0.33685316957588224}
	for i, T := range co2temps {
		par, err := m.Params(T)
		if err != nil {
			tst.Errorf("Params failed: %v\n", err)
			return
		}
		io.Pforan("T = %g  α = %v  a = %v  b = %v\n", T, par.Alpha, par.A, par.B)
		chk.Float64(tst, io.Sf("α(%g)", T), 1e-14, par.Alpha, alps[i])
		chk.Float64(tst, io.Sf("a(%g)", T), 1e-14, par.A, as[i])
		chk.Float64(tst, io.Sf("a(%g)", T), 1e-14, m.A(T), as[i])
		if par.A <= 0 || par.B <= 0 {
			tst.Errorf("a and b must be positive. a=%g, b=%g\n", par.A, par.B)
			return
		}
		if par.B != m.B() {
			tst.Errorf("b must not depend on temperature. b(%g)=%g != %g\n", T, par.B, m.B())
			return
		}
	}

	// α(Tc) = 1
	chk.Float64(tst, "α(Tc)", 1e-15, m.Alpha(m.Tc), 1)
}

func Test_pr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr02. reference pressure")

	m := newCO2(tst)
	if m == nil {
		return
	}

	// independent evaluation
	Tc, Pc, ω, R := 304.13, 7.3773e6, 0.22394, 8.314
	T, v := 295.0, 0.001
	κ := 0.37464 + 1.54226*ω - 0.26992*ω*ω
	α := math.Pow(1+κ*(1-math.Sqrt(T/Tc)), 2)
	a := 0.45724 * R * R * Tc * Tc / Pc * α
	b := 0.07780 * R * Tc / Pc
	pRef := R*T/(v-b) - a/(v*v+2*b*v-b*b)

	p := m.Pressure(T, v)
	io.Pforan("P(T=%g, v=%g) = %v  (ref = %v)\n", T, v, p, pRef)
	chk.Float64(tst, "P/Pref", 1e-12, p/pRef, 1)
	chk.Float64(tst, "P/2.1352792146e6", 1e-9, p/2.1352792146e6, 1)

	par, err := m.Params(T)
	if err != nil {
		tst.Errorf("Params failed: %v\n", err)
		return
	}
	chk.Float64(tst, "PressureWith/Pressure", 1e-15, m.PressureWith(par, v)/p, 1)
}

func Test_pr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr03. dilute gas branch")

	m := newCO2(tst)
	if m == nil {
		return
	}

	V := utl.LinSpace(2e-3, 1e-1, 201)
	for _, T := range co2temps {
		par, err := m.Params(T)
		if err != nil {
			tst.Errorf("Params failed: %v\n", err)
			return
		}
		pOld := m.PressureWith(par, V[0])
		for i := 1; i < len(V); i++ {
			p := m.PressureWith(par, V[i])
			if p >= pOld {
				tst.Errorf("P must decrease with v. T=%g: P(%g)=%g >= P(%g)=%g\n", T, V[i], p, V[i-1], pOld)
				return
			}
			if m.DpDv(par, V[i]) >= 0 {
				tst.Errorf("dP/dv must be negative. T=%g, v=%g\n", T, V[i])
				return
			}
			pOld = p
		}

		// ideal gas limit
		chk.Float64(tst, io.Sf("Z(T=%g, v=10)", T), 1e-4, m.Z(par, 10), 1)
	}
}

func Test_pr04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr04. near co-volume")

	m := newCO2(tst)
	if m == nil {
		return
	}

	// P ≈ R・T/(b・ε) as v = b(1+ε) → b
	for _, T := range co2temps {
		pOld := 0.0
		for i, eps := range []float64{1e-1, 1e-2, 1e-3, 1e-6} {
			v := m.B() * (1 + eps)
			p := m.Pressure(T, v)
			pRep := m.R * T / (m.B() * eps)
			io.Pforan("T=%g v=b(1+%g) P=%g R・T/(b・ε)=%g\n", T, eps, p, pRep)
			if math.IsNaN(p) || math.IsInf(p, 0) {
				tst.Errorf("P must be finite. T=%g, v=%g, P=%g\n", T, v, p)
				return
			}
			if p < 0.5*pRep {
				tst.Errorf("P must be large and positive near b. T=%g, v=%g, P=%g\n", T, v, p)
				return
			}
			if i > 0 && p <= pOld {
				tst.Errorf("P must increase as v approaches b. T=%g, v=%g, P=%g\n", T, v, p)
				return
			}
			pOld = p
		}
	}
}

func Test_pr05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr05. derivatives")

	m := newCO2(tst)
	if m == nil {
		return
	}

	for _, T := range co2temps {
		checkDpDv(tst, m, T, 4e-5, 1e-3, 21, 1e-6, chk.Verbose)
	}

	if chk.Verbose {
		V := utl.LinSpace(4.4e-5, 1e-3, 201)
		P := make([]float64, len(V))
		plt.Reset(false, nil)
		for _, T := range co2temps {
			for i, v := range V {
				P[i] = m.Pressure(T, v) / 1e6
			}
			plt.Plot(V, P, &plt.A{L: io.Sf("%g K", T)})
		}
		plt.Gll("$v\\;[m^3/mol]$", "$P\\;[MPa]$", nil)
		plt.Save("/tmp/goeos", "fig_pr05")
	}
}

func Test_pr06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr06. errors")

	_, err := New("vdw")
	if err == nil {
		tst.Errorf("New should have failed with unknown model\n")
		return
	}
	io.Pforan("%v\n", err)

	var m PengRobinson
	err = m.Init(dbf.Params{&dbf.P{N: "Tc", V: 304.13}, &dbf.P{N: "Pc", V: 7.3773e6}, &dbf.P{N: "w", V: 0.2}})
	if err == nil {
		tst.Errorf("Init should have failed with wrong parameter name\n")
		return
	}
	io.Pforan("%v\n", err)

	err = m.Init(dbf.Params{&dbf.P{N: "Tc", V: 0}, &dbf.P{N: "Pc", V: 7.3773e6}})
	if err == nil {
		tst.Errorf("Init should have failed with Tc=0\n")
		return
	}

	err = m.Init(dbf.Params{&dbf.P{N: "Tc", V: 304.13}, &dbf.P{N: "Pc", V: -1}})
	if err == nil {
		tst.Errorf("Init should have failed with Pc<0\n")
		return
	}

	err = m.Init(m.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	_, err = m.Params(-1)
	if err == nil {
		tst.Errorf("Params should have failed with T<0\n")
		return
	}

	// current parameters
	prms := m.GetPrms(false)
	chk.Int(tst, "number of parameters", len(prms), 4)
	chk.Float64(tst, "omega", 1e-15, prms.Find("omega").V, 0.22394)
}
