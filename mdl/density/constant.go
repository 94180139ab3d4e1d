// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mcacace/lynx/mdl/mixture"
)

// Constant implements densities independent of temperature
//
//	ρb = φ ・ ρf0 + (1 - φ) ・ ρs0
type Constant struct {
	phases
}

// add model to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
}

// Init initialises this structure. tfcn is not used
func (o *Constant) Init(ncomp int, prms dbf.Params, tfcn dbf.T) (err error) {
	return o.phases.init(ncomp, prms)
}

// GetPrms gets (an example) of parameters
func (o *Constant) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rho_f", V: 1000}, // [kg/m³]
			&dbf.P{N: "rho_s", V: 3300}, // [kg/m³]
			&dbf.P{N: "gz", V: -9.81},   // [m/s²]
		}
	}
	return o.phases.params()
}

// Calc computes densities @ integration point; derivatives are zero
func (o *Constant) Calc(props *Props, pt *Point) {
	w := o.weights(pt)
	props.RhoF = mixture.Average(w, o.RhoF)
	props.RhoS = mixture.Average(w, o.RhoS)
	props.RhoB = pt.Phi*props.RhoF + (1.0-pt.Phi)*props.RhoS
	props.RefRhoB = props.RhoB
	props.DrhoDtemp = 0
	props.DinvrhoDtemp = 0
	o.setGravity(props)
}
