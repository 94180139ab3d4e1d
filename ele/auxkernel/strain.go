// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package auxkernel implements auxiliary kernels projecting tensors computed by material
// models onto scalars @ integration points
package auxkernel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mcacace/lynx/ele"
	"github.com/mcacace/lynx/inp"
	"github.com/mcacace/lynx/mdl/strain"
	"gonum.org/v1/gonum/mat"
)

// component labels
var labels = []string{"x", "y", "z"}

// Component holds the indices of a tensor component
type Component struct {
	I, J int // row and column indices
}

// NewComponent returns a new component after checking the indices
func NewComponent(i, j int) (c Component, err error) {
	if i < 0 || i > 2 || j < 0 || j > 2 {
		return c, chk.Err("indices of tensor component must be in [0, 2]. (i,j) = (%d,%d) is invalid", i, j)
	}
	return Component{i, j}, nil
}

// Of returns the component of tensor
func (o Component) Of(tensor mat.Matrix) float64 {
	return tensor.At(o.I, o.J)
}

// Label returns the component label; e.g. "xy"
func (o Component) Label() string {
	return labels[o.I] + labels[o.J]
}

// Strain returns one component of the elastic strain tensor
type Strain struct {
	Component
	Src    strain.Source // provider of elastic strains
	OutKey string        // key of output
}

// StrainRate returns one component of the strain rate tensor
type StrainRate struct {
	Component
	Src    strain.Source // provider of strain rates
	OutKey string        // key of output
}

// register kernels
func init() {
	ele.SetAuxAllocator("strain", func(edat *inp.AuxData, src strain.Source) (ele.AuxKernel, error) {
		return NewStrain(src, edat.I, edat.J, edat.Key)
	})
	ele.SetAuxAllocator("strain_rate", func(edat *inp.AuxData, src strain.Source) (ele.AuxKernel, error) {
		return NewStrainRate(src, edat.I, edat.J, edat.Key)
	})
}

// NewStrain returns a new kernel for the (i,j) component of the elastic strain
//
//	Note: key may be empty; in this case it is set to "eps_" followed by the component label
func NewStrain(src strain.Source, i, j int, key string) (o *Strain, err error) {
	c, err := newComponent(src, i, j)
	if err != nil {
		return
	}
	if key == "" {
		key = io.Sf("eps_%s", c.Label())
	}
	return &Strain{c, src, key}, nil
}

// NewStrainRate returns a new kernel for the (i,j) component of the strain rate
//
//	Note: key may be empty; in this case it is set to "deps_" followed by the component label
func NewStrainRate(src strain.Source, i, j int, key string) (o *StrainRate, err error) {
	c, err := newComponent(src, i, j)
	if err != nil {
		return
	}
	if key == "" {
		key = io.Sf("deps_%s", c.Label())
	}
	return &StrainRate{c, src, key}, nil
}

// Key returns the key of output
func (o *Strain) Key() string { return o.OutKey }

// ComputeValue returns ε[i][j] @ ip
func (o *Strain) ComputeValue(p *ele.Point) float64 {
	return o.Of(o.Src.ElasticStrain(p.Cid, p.Ip))
}

// Key returns the key of output
func (o *StrainRate) Key() string { return o.OutKey }

// ComputeValue returns dε/dt[i][j] @ ip
func (o *StrainRate) ComputeValue(p *ele.Point) float64 {
	return o.Of(o.Src.StrainRate(p.Cid, p.Ip, p.Dt))
}

// newComponent checks source and indices
func newComponent(src strain.Source, i, j int) (c Component, err error) {
	if src == nil {
		return c, chk.Err("strain kernels require a source of strain tensors")
	}
	return NewComponent(i, j)
}
