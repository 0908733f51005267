// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data: substance constants and sweep configuration
package inp

import (
	_ "embed"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

//go:embed substances.json
var substancesJSON []byte

// Substance holds the constants of a pure substance
type Substance struct {
	Name  string  `json:"name"`  // name of substance; e.g. "CO2"
	Extra string  `json:"extra"` // extra information
	Tc    float64 `json:"Tc"`    // critical temperature [K]
	Pc    float64 `json:"Pc"`    // critical pressure [Pa]
	Omega float64 `json:"omega"` // acentric factor [-]
	R     float64 `json:"R"`     // universal gas constant [J/(mol・K)]
	M     float64 `json:"M"`     // molar mass [kg/mol]
}

// SubstanceDb implements a database of substances
type SubstanceDb struct {
	Substances []*Substance `json:"substances"`
}

// ReadSubstances decodes the embedded database of substances
func ReadSubstances() (sdb *SubstanceDb, err error) {
	return decodeSubstances(substancesJSON)
}

// decodeSubstances decodes and checks a JSON database of substances
func decodeSubstances(b []byte) (sdb *SubstanceDb, err error) {
	sdb = new(SubstanceDb)
	err = json.Unmarshal(b, sdb)
	if err != nil {
		return nil, chk.Err("cannot decode database of substances:\n%v", err)
	}
	for _, s := range sdb.Substances {
		err = s.Check()
		if err != nil {
			return nil, err
		}
	}
	return
}

// Get returns substance by name
func (o *SubstanceDb) Get(name string) (s *Substance, err error) {
	for _, s = range o.Substances {
		if s.Name == name {
			return
		}
	}
	return nil, chk.Err("substance %q is not available in database", name)
}

// Check checks the physical constants
func (o Substance) Check() error {
	if o.Tc <= 0 {
		return chk.Err("%s: critical temperature must be positive. Tc = %g is invalid", o.Name, o.Tc)
	}
	if o.Pc <= 0 {
		return chk.Err("%s: critical pressure must be positive. Pc = %g is invalid", o.Name, o.Pc)
	}
	if o.R <= 0 {
		return chk.Err("%s: gas constant must be positive. R = %g is invalid", o.Name, o.R)
	}
	if o.M <= 0 {
		return chk.Err("%s: molar mass must be positive. M = %g is invalid", o.Name, o.M)
	}
	return nil
}

// Prms returns the constants as model parameters
func (o Substance) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Tc", V: o.Tc},
		&dbf.P{N: "Pc", V: o.Pc},
		&dbf.P{N: "omega", V: o.Omega},
		&dbf.P{N: "R", V: o.R},
	}
}
