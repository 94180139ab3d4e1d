// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mcacace/lynx/inp"
	"gonum.org/v1/gonum/integrate/quad"
)

// Ipoint holds an integration point in real coordinates
type Ipoint struct {
	X []float64 // [ndim] real coordinates
	W float64   // weight multiplied by the determinant of the Jacobian
}

// Cell holds a quadrilateral (2D) or hexahedral (3D) cell of a structured grid
type Cell struct {
	Id   int       // cell id
	Xmin []float64 // [ndim] min coordinates
	Xmax []float64 // [ndim] max coordinates
	Ips  []*Ipoint // [nip] integration points
}

// NewGrid generates the cells of a structured grid with Gauss-Legendre integration points
//
//	Note: cells are numbered with x running fastest, then y, then z
func NewGrid(dat *inp.GridData, ndim int) (cells []*Cell, err error) {
	if len(dat.Xmin) != ndim || len(dat.Xmax) != ndim || len(dat.Ndiv) != ndim {
		return nil, chk.Err("grid data must have %d components", ndim)
	}
	if dat.Nip < 1 {
		return nil, chk.Err("number of integration points along each direction must be positive. nip = %d is invalid", dat.Nip)
	}

	// number of cells
	ncells := 1
	for i := 0; i < ndim; i++ {
		if dat.Ndiv[i] < 1 {
			return nil, chk.Err("number of divisions must be positive. ndiv[%d] = %d is invalid", i, dat.Ndiv[i])
		}
		ncells *= dat.Ndiv[i]
	}

	// cells
	cells = make([]*Cell, ncells)
	idx := make([]int, ndim)
	for cid := 0; cid < ncells; cid++ {
		c := &Cell{Id: cid, Xmin: make([]float64, ndim), Xmax: make([]float64, ndim)}
		rem := cid
		for i := 0; i < ndim; i++ {
			idx[i] = rem % dat.Ndiv[i]
			rem /= dat.Ndiv[i]
			h := (dat.Xmax[i] - dat.Xmin[i]) / float64(dat.Ndiv[i])
			c.Xmin[i] = dat.Xmin[i] + float64(idx[i])*h
			c.Xmax[i] = c.Xmin[i] + h
		}
		c.Ips = gaussPoints(c.Xmin, c.Xmax, dat.Nip)
		cells[cid] = c
	}
	return
}

// gaussPoints computes the tensor product of n Gauss-Legendre points along each direction
func gaussPoints(xmin, xmax []float64, n int) (ips []*Ipoint) {
	ndim := len(xmin)
	xs := make([][]float64, ndim)
	ws := make([][]float64, ndim)
	for i := 0; i < ndim; i++ {
		xs[i] = make([]float64, n)
		ws[i] = make([]float64, n)
		quad.Legendre{}.FixedLocations(xs[i], ws[i], xmin[i], xmax[i])
	}
	nip := 1
	for i := 0; i < ndim; i++ {
		nip *= n
	}
	ips = make([]*Ipoint, nip)
	for k := 0; k < nip; k++ {
		ip := &Ipoint{X: make([]float64, ndim), W: 1}
		rem := k
		for i := 0; i < ndim; i++ {
			j := rem % n
			rem /= n
			ip.X[i] = xs[i][j]
			ip.W *= ws[i][j]
		}
		ips[k] = ip
	}
	return
}
