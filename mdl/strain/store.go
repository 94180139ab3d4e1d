// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strain

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Source defines providers of strain tensors at integration points
type Source interface {
	ElasticStrain(cid, ip int) mat.Matrix          // elastic strain tensor @ ip of cell
	StrainRate(cid, ip int, Δt float64) mat.Matrix // strain rate tensor @ ip of cell
}

// Store holds the states of all integration points of all cells
type Store struct {
	Ndim   int        // space dimension
	States [][]*State // [ncells][nip] states
}

// NewStore allocates states for ncells with nip integration points each
func NewStore(ndim int, nips []int) *Store {
	o := &Store{Ndim: ndim, States: make([][]*State, len(nips))}
	for cid, nip := range nips {
		o.States[cid] = make([]*State, nip)
		for ip := 0; ip < nip; ip++ {
			o.States[cid][ip] = NewState(ndim)
		}
	}
	return o
}

// SetTensor sets the current elastic strain @ ip of cell from tensor components
//
//	Note: only the symmetric part of ε is stored
func (o *Store) SetTensor(cid, ip int, ε [][]float64) {
	s := o.States[cid][ip]
	s.EpsE[0] = ε[0][0]
	s.EpsE[1] = ε[1][1]
	s.EpsE[2] = ε[2][2]
	s.EpsE[3] = (ε[0][1] + ε[1][0]) / math.Sqrt2
	if len(s.EpsE) > 4 {
		s.EpsE[4] = (ε[1][2] + ε[2][1]) / math.Sqrt2
		s.EpsE[5] = (ε[2][0] + ε[0][2]) / math.Sqrt2
	}
}

// Backup saves current strains of all states as old strains
func (o *Store) Backup() {
	for _, states := range o.States {
		for _, s := range states {
			s.Backup()
		}
	}
}

// ElasticStrain returns the elastic strain tensor @ ip of cell
func (o *Store) ElasticStrain(cid, ip int) mat.Matrix {
	return o.get(cid, ip).Tensor()
}

// StrainRate returns the strain rate tensor @ ip of cell
func (o *Store) StrainRate(cid, ip int, Δt float64) mat.Matrix {
	return o.get(cid, ip).RateTensor(Δt)
}

// get returns state @ ip of cell
func (o *Store) get(cid, ip int) *State {
	if cid < 0 || cid >= len(o.States) || ip < 0 || ip >= len(o.States[cid]) {
		chk.Panic("cannot find strain state of integration point %d of cell %d", ip, cid)
	}
	return o.States[cid][ip]
}
