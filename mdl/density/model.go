// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package density implements models for fluid, solid and bulk densities of porous
// mixtures made of several phases (compositions)
package density

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Point holds the state at one integration point required to compute densities
type Point struct {
	T    float64   // current time
	X    []float64 // coordinates of integration point
	Temp float64   // temperature
	Phi  float64   // porosity
	Comp []float64 // [ncomp] composition fractions. may be nil if ncomp == 1
}

// Props holds densities and derivatives computed at one integration point
type Props struct {
	RhoF         float64   // fluid density
	RhoS         float64   // solid density
	RhoB         float64   // bulk density
	RefRhoB      float64   // reference bulk density
	DrhoDtemp    float64   // ∂ρb/∂T
	DinvrhoDtemp float64   // ∂(1/ρb)/∂T
	Grav         []float64 // [3] gravity vector
}

// Model defines the interface for density models
type Model interface {
	Init(ncomp int, prms dbf.Params, tfcn dbf.T) error // initialises model; tfcn is the optional reference temperature function
	GetPrms(example bool) dbf.Params                   // gets (an example) of parameters
	Calc(props *Props, pt *Point)                      // computes densities and derivatives @ integration point
}

// New returns a new density model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'density' database", name)
	}
	return allocator(), nil
}

// NewProps allocates props
func NewProps() *Props {
	return &Props{Grav: make([]float64, 3)}
}

// allocators holds all available models
var allocators = map[string]func() Model{}
