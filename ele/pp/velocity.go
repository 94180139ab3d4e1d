// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mcacace/lynx/ele"
	"github.com/mcacace/lynx/inp"
)

// VelocityRMS computes the root mean square of the velocity vector
//
//	 vrms = sqrt( ∫ v・v dΩ )
//
//	Note: components beyond the number of velocity fields are zero
type VelocityRMS struct {
	ElemIntegral
	PpName string   // name of postprocessor
	Keys   []string // [nvel] keys of velocity fields; nvel == ndim
}

// register postprocessor
func init() {
	ele.SetPostAllocator("velocity_rms", func(ndim int, pdat *inp.PostData) (ele.Postprocessor, error) {
		return NewVelocityRMS(pdat.Name, ndim, pdat.Velocities)
	})
}

// NewVelocityRMS returns a new postprocessor for the velocity given by fields named keys
//
//	Note: the number of velocity fields must be equal to the space dimension
func NewVelocityRMS(name string, ndim int, keys []string) (o *VelocityRMS, err error) {
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("mesh dimension must be 1, 2 or 3. ndim = %d is invalid", ndim)
	}
	if len(keys) != ndim {
		return nil, chk.Err("the number of variables supplied in 'velocities' must match the mesh dimension. %d != %d", len(keys), ndim)
	}
	o = &VelocityRMS{PpName: name, Keys: keys}
	o.Fcn = o
	return
}

// Name returns the name of this postprocessor
func (o *VelocityRMS) Name() string { return o.PpName }

// ComputeQpIntegral returns v・v @ ip
func (o *VelocityRMS) ComputeQpIntegral(p *ele.Point) float64 {
	var v [3]float64
	for i, key := range o.Keys {
		v[i] = p.Get(key)
	}
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Threadjoin joins partial results
func (o *VelocityRMS) Threadjoin(other ele.Postprocessor) {
	o.join(&other.(*VelocityRMS).ElemIntegral)
}

// Clone returns a new postprocessor with the same setup
func (o *VelocityRMS) Clone() ele.Postprocessor {
	p := &VelocityRMS{PpName: o.PpName, Keys: o.Keys}
	p.Fcn = p
	return p
}

// Value returns the square root of the accumulated integral
func (o *VelocityRMS) Value() float64 {
	return math.Sqrt(o.Sum)
}

// CoupledKeys returns the keys of required fields
func (o *VelocityRMS) CoupledKeys() []string { return o.Keys }
