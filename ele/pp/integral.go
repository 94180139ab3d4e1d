// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pp implements postprocessors reducing values @ integration points over a domain
package pp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mcacace/lynx/ele"
	"github.com/mcacace/lynx/inp"
)

// Integrand defines the function integrated over the domain
type Integrand interface {
	ComputeQpIntegral(p *ele.Point) float64 // integrand @ ip
}

// ElemIntegral accumulates the integral of an integrand over all cells
//
//	I = Σ_cells Σ_ips f(x_ip) ・ w_ip ・ det(J)
type ElemIntegral struct {
	Fcn Integrand // integrand
	Sum float64   // accumulated integral
}

// Initialize clears the accumulated integral
func (o *ElemIntegral) Initialize() {
	o.Sum = 0
}

// Execute adds the contribution of one integration point
func (o *ElemIntegral) Execute(p *ele.Point) {
	o.Sum += p.W * o.Fcn.ComputeQpIntegral(p)
}

// join adds the integral accumulated by other
func (o *ElemIntegral) join(other *ElemIntegral) {
	o.Sum += other.Sum
}

// Field integrates one field over the domain
type Field struct {
	ElemIntegral
	PpName string // name of postprocessor
	Key    string // key of field
}

// register postprocessor
func init() {
	ele.SetPostAllocator("integral", func(ndim int, pdat *inp.PostData) (ele.Postprocessor, error) {
		return NewField(pdat.Name, pdat.Field)
	})
}

// NewField returns a new postprocessor integrating the field named key
func NewField(name, key string) (o *Field, err error) {
	if key == "" {
		return nil, chk.Err("the name of the field to be integrated by %q must be given", name)
	}
	o = &Field{PpName: name, Key: key}
	o.Fcn = o
	return
}

// Name returns the name of this postprocessor
func (o *Field) Name() string { return o.PpName }

// ComputeQpIntegral returns the field @ ip
func (o *Field) ComputeQpIntegral(p *ele.Point) float64 {
	return p.Get(o.Key)
}

// Threadjoin joins partial results
func (o *Field) Threadjoin(other ele.Postprocessor) {
	o.join(&other.(*Field).ElemIntegral)
}

// Clone returns a new postprocessor with the same setup
func (o *Field) Clone() ele.Postprocessor {
	p, _ := NewField(o.PpName, o.Key)
	return p
}

// Value returns the integral
func (o *Field) Value() float64 {
	return o.Sum
}

// CoupledKeys returns the keys of required fields
func (o *Field) CoupledKeys() []string { return []string{o.Key} }
