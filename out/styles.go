// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/goeos/curves"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// colours and markers of isotherms; cycled if there are more isotherms
var (
	colors  = []string{"b", "r", "g", "m", "c", "k"}
	markers = []string{"o", "s", "^", "d", "v", "*"}
)

// Styles
type Styles []plt.A

// GetDefaultStyles returns one style per isotherm labelled by its temperature
func GetDefaultStyles(isotherms []*curves.Curve) Styles {
	sty := make([]plt.A, len(isotherms))
	for i, c := range isotherms {
		sty[i].C = colors[i%len(colors)]
		sty[i].M = markers[i%len(markers)]
		sty[i].Ls = "-"
		sty[i].Ms = 3
		sty[i].L = io.Sf("%g K", c.T)
	}
	return sty
}

// GetTexLabel returns the TeX label of an axis; e.g. $\rho\;[kg/m^3]$ for "rho". Other keys are written as given
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "rho":
		l += "\\rho"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
