// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements evaluators of properties and diagnostics at integration points
package ele

// Material defines evaluators computing several properties @ each integration point
type Material interface {
	Keys() []string                   // keys of properties; e.g. "rho_b", "drho_dtemp"
	ComputeProps(M *IpsMap, p *Point) // computes properties @ ip and stores them in M
}

// AuxKernel defines evaluators computing one auxiliary scalar @ each integration point
type AuxKernel interface {
	Key() string                   // key of auxiliary value; e.g. "eps_xy"
	ComputeValue(p *Point) float64 // computes value @ ip
}

// Postprocessor defines evaluators reducing values @ integration points into one scalar
//
//	Note: the same postprocessor is cloned for each partition of cells; after all partitions
//	      have been executed, the partial results are joined into the first one
type Postprocessor interface {
	Name() string                   // name of postprocessor; e.g. "vrms"
	Initialize()                    // clears accumulated values
	Execute(p *Point)               // accumulates value @ ip
	Threadjoin(other Postprocessor) // joins partial results computed by other
	Clone() Postprocessor           // returns a new (initialised) postprocessor with the same setup
	Value() float64                 // returns the final value
}

// Coupler defines evaluators depending upon fields @ integration points
type Coupler interface {
	CoupledKeys() []string // keys of required fields
}
