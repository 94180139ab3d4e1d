// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import "github.com/cpmech/gosl/fun/dbf"

// RefTemp returns the reference temperature of the thermal expansion law
type RefTemp interface {
	Value(t float64, x []float64) float64
}

// ConstRefTemp is a constant reference temperature
type ConstRefTemp float64

// Value returns the constant
func (o ConstRefTemp) Value(t float64, x []float64) float64 {
	return float64(o)
}

// FuncRefTemp is a reference temperature given by a function of time and space
type FuncRefTemp struct {
	Fcn dbf.T
}

// Value evaluates Fcn @ (t,x)
func (o FuncRefTemp) Value(t float64, x []float64) float64 {
	return o.Fcn.F(t, x)
}

// NewRefTemp returns the reference temperature strategy. The function, if not nil,
// takes precedence over the constant value
func NewRefTemp(tref float64, fcn dbf.T) RefTemp {
	if fcn != nil {
		return FuncRefTemp{fcn}
	}
	return ConstRefTemp(tref)
}
