// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package strain implements the storage of elastic strains at integration points and
// the computation of strain tensors and strain rate tensors from the stored values
package strain

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/tsr"
	"gonum.org/v1/gonum/mat"
)

// State holds the elastic strain at one integration point
//
//	Note: strains are stored with Mandel's representation; e.g. in 3D:
//	      [εxx, εyy, εzz, √2・εxy, √2・εyz, √2・εzx]
type State struct {
	EpsE    []float64 // [nsig] current elastic strain
	EpsEold []float64 // [nsig] elastic strain at the previous (converged) time
}

// NewState allocates a state for 2D (nsig=4) or 3D (nsig=6) analyses
func NewState(ndim int) *State {
	nsig := 2 * ndim
	return &State{
		EpsE:    make([]float64, nsig),
		EpsEold: make([]float64, nsig),
	}
}

// Set copies states
//
//	Note: this and other states must have been pre-allocated with the same sizes
func (o *State) Set(other *State) {
	copy(o.EpsE, other.EpsE)
	copy(o.EpsEold, other.EpsEold)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.EpsE) / 2)
	other.Set(o)
	return other
}

// Backup saves the current strain as the old one
func (o *State) Backup() {
	copy(o.EpsEold, o.EpsE)
}

// Tensor computes the 3×3 elastic strain tensor
func (o *State) Tensor() *mat.Dense {
	return mandelToTensor(o.EpsE)
}

// RateTensor computes the 3×3 strain rate tensor (ε - εold) / Δt
//
//	Note: the rate is zero if Δt is not positive (e.g. before the first time step)
func (o *State) RateTensor(Δt float64) *mat.Dense {
	R := mat.NewDense(3, 3, nil)
	if Δt <= 0 {
		return R
	}
	R.Sub(mandelToTensor(o.EpsE), mandelToTensor(o.EpsEold))
	R.Scale(1.0/Δt, R)
	return R
}

// mandelToTensor converts a Mandel vector into a 3×3 tensor
func mandelToTensor(m []float64) *mat.Dense {
	if len(m) != 4 && len(m) != 6 {
		chk.Panic("Mandel vector must have 4 or 6 components. %d is invalid", len(m))
	}
	if len(m) == 4 {
		m = []float64{m[0], m[1], m[2], m[3], 0, 0}
	}
	T := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T.Set(i, j, tsr.M2T(m, i, j))
		}
	}
	return T
}
