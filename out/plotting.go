// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of isotherms as charts
package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/goeos/curves"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"gonum.org/v1/gonum/floats"
)

// Series stores the data of one line in a chart (X vs Y)
type Series struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Style plt.A     // style; Style.L is the legend label
}

// Chart stores all data of one figure
type Chart struct {
	Title  string    // title of figure
	Xlbl   string    // x-axis label (formatted; e.g. "$\\rho$")
	Ylbl   string    // y-axis label (formatted; e.g. "$P$")
	LegLoc string    // location of legend; e.g. "upper left"
	Ymin   float64   // lower limit of y-axis
	Series []*Series // lines

	// figure
	Dpi     int     // resolution of saved figure
	Prop    float64 // proportion: height = width * Prop
	WidthPt float64 // width in points
}

// NewChart returns a new chart with no lines. The figure is 10 in wide (720 pt), 7 in tall, at 300 dpi
func NewChart(title, xlbl, ylbl string) *Chart {
	return &Chart{Title: title, Xlbl: xlbl, Ylbl: ylbl, LegLoc: "upper left", Dpi: 300, Prop: 0.7, WidthPt: 720}
}

// Add adds a line to chart
func (o *Chart) Add(x, y []float64, style plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	o.Series = append(o.Series, &Series{X: x, Y: y, Style: style})
}

// Labels returns the legend labels in the order lines were added
func (o Chart) Labels() (res []string) {
	res = make([]string, len(o.Series))
	for i, s := range o.Series {
		res[i] = s.Style.L
	}
	return
}

// Ymax returns the largest y-value of all lines
func (o Chart) Ymax() (ymax float64) {
	first := true
	for _, s := range o.Series {
		if len(s.Y) == 0 {
			continue
		}
		m := floats.Max(s.Y)
		if first || m > ymax {
			ymax, first = m, false
		}
	}
	return
}

// FromCurves returns the pressure versus density chart with one line per isotherm
//  pscale -- multiplier for pressures; e.g. 1e-6 to plot MPa
func FromCurves(isotherms []*curves.Curve, substance string, pscale float64) (o *Chart) {
	o = NewChart(io.Sf("%s Pressure vs. Density (Peng-Robinson EOS)", substance),
		GetTexLabel("rho", "[kg/m^3]"),
		GetTexLabel("P", unitLabel(pscale)),
	)
	styles := GetDefaultStyles(isotherms)
	for i, c := range isotherms {
		o.Add(c.Grid.Rho, c.Scaled(pscale), styles[i])
	}
	return
}

// Draw issues the plotting commands
func (o *Chart) Draw() {
	plt.Reset(true, &plt.A{Dpi: o.Dpi, Prop: o.Prop, WidthPt: o.WidthPt})
	if o.Title != "" {
		plt.Title(o.Title, nil)
	}
	for _, s := range o.Series {
		sty := s.Style
		plt.Plot(s.X, s.Y, &sty)
	}
	plt.Gll(o.Xlbl, o.Ylbl, &plt.A{LegLoc: o.LegLoc})
	if len(o.Series) > 0 {
		ymax := o.Ymax()
		plt.AxisYrange(o.Ymin, ymax+0.05*(ymax-o.Ymin))
	}
}

// Save draws and saves figure to <dirout>/<fnkey>.png; an existing file is overwritten
func (o *Chart) Save(dirout, fnkey string) (fn string, err error) {
	if fnkey == "" {
		return "", chk.Err("filename key must not be empty")
	}
	if dirout == "" {
		dirout = "."
	}
	fn = filepath.Join(dirout, fnkey+".png")
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return fn, chk.Err("cannot create directory for figure %q:\n%v", fn, err)
	}

	if !HasBackend() {
		return fn, chk.Err("cannot save figure %q: %s cannot import matplotlib", fn, Python())
	}

	// the plotting backend panics on failure
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot save figure %q:\n%v", fn, r)
		}
	}()
	o.Draw()
	plt.Save(dirout, fnkey)

	// check file
	info, err := os.Stat(fn)
	if err != nil {
		return fn, chk.Err("figure %q was not written:\n%v", fn, err)
	}
	if info.Size() == 0 {
		return fn, chk.Err("figure %q is empty", fn)
	}
	return
}

// Show shows figure on screen. Returns false if there is no display
func (o *Chart) Show() (shown bool) {
	if !HasDisplay() || !HasBackend() {
		io.PfYel("no display available; figure not shown\n")
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			io.PfYel("cannot show figure:\n%v\n", r)
			shown = false
		}
	}()
	o.Draw()
	plt.Show()
	return true
}

// unitLabel returns the pressure unit corresponding to pscale
func unitLabel(pscale float64) string {
	switch pscale {
	case 1:
		return "[Pa]"
	case 1e-3:
		return "[kPa]"
	case 1e-6:
		return "[MPa]"
	}
	return io.Sf("[%g\\,Pa]", pscale)
}
