// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mcacace/lynx/mdl/density"
)

// keys of density properties @ integration points
const (
	KeyRhoF         = "rho_f"
	KeyRhoS         = "rho_s"
	KeyRhoB         = "rho_b"
	KeyRefRhoB      = "reference_rho_b"
	KeyDrhoDtemp    = "drho_dtemp"
	KeyDinvrhoDtemp = "dinvrho_dtemp"
)

// gravity keys
var keysGrav = []string{"gx", "gy", "gz"}

// DensityMat computes densities @ integration points from coupled temperature,
// porosity and composition fields
type DensityMat struct {
	Mdl  density.Model // density model
	Temp string        // key of temperature field
	Phi  string        // key of porosity field; porosity is zero if empty
	Comp []string      // [ncomp] keys of composition fields; may be empty for one phase
	Ndim int           // space dimension (number of gravity components to output)
}

// NewDensityMat returns a new density material
func NewDensityMat(mdl density.Model, ndim int, temp, phi string, comp []string) (o *DensityMat, err error) {
	if mdl == nil {
		return nil, chk.Err("density model must not be nil")
	}
	if temp == "" {
		return nil, chk.Err("the temperature variable is required by the density material")
	}
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("space dimension must be 2 or 3. ndim = %d is invalid", ndim)
	}
	return &DensityMat{Mdl: mdl, Temp: temp, Phi: phi, Comp: comp, Ndim: ndim}, nil
}

// Keys returns the keys of properties
func (o *DensityMat) Keys() []string {
	keys := []string{KeyRhoF, KeyRhoS, KeyRhoB, KeyRefRhoB, KeyDrhoDtemp, KeyDinvrhoDtemp}
	return append(keys, keysGrav[:o.Ndim]...)
}

// ComputeProps computes densities @ ip
func (o *DensityMat) ComputeProps(M *IpsMap, p *Point) {

	// state @ ip
	pt := density.Point{T: p.T, X: p.X, Temp: p.Get(o.Temp)}
	if o.Phi != "" {
		pt.Phi = p.Get(o.Phi)
	}
	if len(o.Comp) > 0 {
		pt.Comp = make([]float64, len(o.Comp))
		for i, key := range o.Comp {
			pt.Comp[i] = p.Get(key)
		}
	}

	// compute and store
	props := density.NewProps()
	o.Mdl.Calc(props, &pt)
	M.Set(KeyRhoF, p.Ip, p.Nip, props.RhoF)
	M.Set(KeyRhoS, p.Ip, p.Nip, props.RhoS)
	M.Set(KeyRhoB, p.Ip, p.Nip, props.RhoB)
	M.Set(KeyRefRhoB, p.Ip, p.Nip, props.RefRhoB)
	M.Set(KeyDrhoDtemp, p.Ip, p.Nip, props.DrhoDtemp)
	M.Set(KeyDinvrhoDtemp, p.Ip, p.Nip, props.DinvrhoDtemp)
	for i := 0; i < o.Ndim; i++ {
		M.Set(keysGrav[i], p.Ip, p.Nip, props.Grav[i])
	}
}

// CoupledKeys returns the keys of required fields
func (o *DensityMat) CoupledKeys() (keys []string) {
	keys = append(keys, o.Temp)
	if o.Phi != "" {
		keys = append(keys, o.Phi)
	}
	return append(keys, o.Comp...)
}
