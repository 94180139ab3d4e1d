// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/mcacace/lynx/mdl/mixture"
)

// Thermal implements densities as linear functions of temperature
//
//	 ρf = ρf0 ・ (1 - βf ・ (T - Tref))
//	 ρs = ρs0 ・ (1 - βs ・ (T - Tref))
//	 ρb = φ ・ ρf + (1 - φ) ・ ρs
//
//	where ρf0, ρs0, βf and βs are averaged over all phases with the composition fractions
type Thermal struct {
	phases
	BetaF   []float64 // [ncomp] fluid thermal expansion coefficients
	BetaS   []float64 // [ncomp] solid thermal expansion coefficients
	TempRef float64   // constant reference temperature
	Tref    RefTemp   // reference temperature; constant or function
}

// add model to factory
func init() {
	allocators["thermal"] = func() Model { return new(Thermal) }
}

// Init initialises this structure
func (o *Thermal) Init(ncomp int, prms dbf.Params, tfcn dbf.T) (err error) {
	err = o.phases.init(ncomp, prms)
	if err != nil {
		return
	}
	o.BetaF, err = mixture.Vector(prms, "beta_f", ncomp)
	if err != nil {
		return
	}
	o.BetaS, err = mixture.Vector(prms, "beta_s", ncomp)
	if err != nil {
		return
	}
	o.TempRef = 0
	if p := prms.Find("temp_ref"); p != nil {
		o.TempRef = p.V
	}
	o.Tref = NewRefTemp(o.TempRef, tfcn)
	return
}

// GetPrms gets (an example) of parameters
func (o *Thermal) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rho_f", V: 1000},   // [kg/m³]
			&dbf.P{N: "rho_s", V: 3300},   // [kg/m³]
			&dbf.P{N: "beta_f", V: 2e-4},  // [1/K]
			&dbf.P{N: "beta_s", V: 3e-5},  // [1/K]
			&dbf.P{N: "temp_ref", V: 273}, // [K]
			&dbf.P{N: "gz", V: -9.81},     // [m/s²]
		}
	}
	prms := o.phases.params()
	for i := 0; i < o.Ncomp; i++ {
		prms = append(prms, &dbf.P{N: indexed("beta_f", i), V: o.BetaF[i]})
	}
	for i := 0; i < o.Ncomp; i++ {
		prms = append(prms, &dbf.P{N: indexed("beta_s", i), V: o.BetaS[i]})
	}
	return append(prms, &dbf.P{N: "temp_ref", V: o.TempRef})
}

// Calc computes densities and derivatives @ integration point
func (o *Thermal) Calc(props *Props, pt *Point) {

	// averaged properties
	w := o.weights(pt)
	ρf0 := mixture.Average(w, o.RhoF)
	ρs0 := mixture.Average(w, o.RhoS)
	βf := mixture.Average(w, o.BetaF)
	βs := mixture.Average(w, o.BetaS)

	// densities
	ΔT := pt.Temp - o.Tref.Value(pt.T, pt.X)
	φ := pt.Phi
	props.RhoF = ρf0 * (1.0 - βf*ΔT)
	props.RhoS = ρs0 * (1.0 - βs*ΔT)
	props.RhoB = φ*props.RhoF + (1.0-φ)*props.RhoS
	props.RefRhoB = props.RhoB

	// derivatives
	dρfdT := -βf * ρf0
	dρsdT := -βs * ρs0
	props.DrhoDtemp = φ*dρfdT + (1.0-φ)*dρsdT
	props.DinvrhoDtemp = invDeriv(props.RhoB, props.DrhoDtemp)
	o.setGravity(props)
}

// invDeriv returns ∂(1/ρ)/∂T = -(∂ρ/∂T) / ρ²; zero if ρ is not positive
func invDeriv(ρ, dρdT float64) float64 {
	if ρ > 0 {
		return -dρdT / (ρ * ρ)
	}
	return 0
}

// indexed returns key followed by index; e.g. "rho_f0"
func indexed(key string, i int) string {
	return io.Sf("%s%d", key, i)
}
