// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mcacace/lynx/mdl/mixture"
)

// phases holds per-phase reference densities and gravity shared by all density models
type phases struct {
	Ncomp int       // number of phases
	RhoF  []float64 // [ncomp] fluid reference densities
	RhoS  []float64 // [ncomp] solid reference densities
	Grav  []float64 // [3] gravity vector
}

// init reads reference densities and gravity
func (o *phases) init(ncomp int, prms dbf.Params) (err error) {
	o.Ncomp = ncomp
	o.RhoF, err = mixture.Vector(prms, "rho_f", ncomp)
	if err != nil {
		return
	}
	o.RhoS, err = mixture.Vector(prms, "rho_s", ncomp)
	if err != nil {
		return
	}
	o.Grav = make([]float64, 3)
	readGravity(o.Grav, prms)
	return
}

// weights returns the averaging weights @ integration point
func (o *phases) weights(pt *Point) []float64 {
	return mixture.Weights(pt.Comp, o.Ncomp)
}

// setGravity copies the gravity vector into props
func (o *phases) setGravity(props *Props) {
	if len(props.Grav) != 3 {
		props.Grav = make([]float64, 3)
	}
	copy(props.Grav, o.Grav)
}

// params returns the current parameters of all phases
func (o *phases) params() (prms dbf.Params) {
	for i := 0; i < o.Ncomp; i++ {
		prms = append(prms, &dbf.P{N: indexed("rho_f", i), V: o.RhoF[i]})
	}
	for i := 0; i < o.Ncomp; i++ {
		prms = append(prms, &dbf.P{N: indexed("rho_s", i), V: o.RhoS[i]})
	}
	for i, key := range []string{"gx", "gy", "gz"} {
		prms = append(prms, &dbf.P{N: key, V: o.Grav[i]})
	}
	return
}
