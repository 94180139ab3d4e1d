// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/mcacace/lynx/ele"
	"github.com/mcacace/lynx/inp"
	"github.com/mcacace/lynx/mdl/strain"

	// register auxiliary kernels and postprocessors
	_ "github.com/mcacace/lynx/ele/auxkernel"
	_ "github.com/mcacace/lynx/ele/pp"
)

// Domain holds the cells of a structured grid, the fields sampled @ integration points
// and all evaluators (materials, auxiliary kernels and postprocessors)
type Domain struct {

	// init: auxiliary variables
	Sim     *inp.Simulation // input data
	Ndim    int             // space dimension
	Nparts  int             // number of partitions of cells evaluated concurrently
	ShowMsg bool            // show messages

	// cells and fields
	Cells  []*Cell          // all cells
	Fields map[string]dbf.T // field name => function of (t,x)
	Strain *strain.Store    // elastic strains @ all integration points
	EpsFcn map[[2]int]dbf.T // (i,j) => function giving the elastic strain component

	// evaluators
	Mat  ele.Material        // [optional] material computing properties @ ips
	Auxs []ele.AuxKernel     // auxiliary kernels
	Pps  []ele.Postprocessor // postprocessors

	// results
	T    float64       // current time
	Dt   float64       // current time increment
	Outs []*ele.IpsMap // [ncells] values @ integration points of each cell
	Vals []float64     // [npps] values of postprocessors
}

// NewDomain returns a new domain
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// new domain
	o = new(Domain)
	o.Sim = sim
	o.Ndim = sim.Ndim
	o.Nparts = max(sim.Data.Nparts, 1)
	o.ShowMsg = verbose

	// cells
	o.Cells, err = NewGrid(&sim.Grid, o.Ndim)
	if err != nil {
		return nil, err
	}
	nips := make([]int, len(o.Cells))
	for i, c := range o.Cells {
		nips[i] = len(c.Ips)
	}

	// fields
	o.Fields = make(map[string]dbf.T)
	for _, f := range sim.Fields {
		o.Fields[f.Name], err = sim.Functions.Get(f.Fcn)
		if err != nil {
			return nil, chk.Err("cannot get function of field %q:\n%v", f.Name, err)
		}
	}

	// strains
	o.Strain = strain.NewStore(o.Ndim, nips)
	o.EpsFcn = make(map[[2]int]dbf.T)
	for key, fname := range sim.Strain {
		o.EpsFcn[inp.StrainKeys[key]], err = sim.Functions.Get(fname)
		if err != nil {
			return nil, chk.Err("cannot get function of strain component %q:\n%v", key, err)
		}
	}

	// material
	if sim.Density != nil {
		m := sim.Mdb.Get(sim.Density.Mat)
		if m == nil {
			return nil, chk.Err("cannot find material named %q", sim.Density.Mat)
		}
		o.Mat, err = ele.NewDensityMat(m.Density, o.Ndim, sim.Density.Temp, sim.Density.Phi, sim.Density.Comp)
		if err != nil {
			return nil, err
		}
		err = o.checkCoupling(o.Mat, "density material")
		if err != nil {
			return nil, err
		}
	}

	// auxiliary kernels
	for _, edat := range sim.AuxKernels {
		kernel, err := ele.NewAuxKernel(edat, o.Strain)
		if err != nil {
			return nil, err
		}
		o.Auxs = append(o.Auxs, kernel)
	}

	// postprocessors
	for _, pdat := range sim.Postprocessors {
		pp, err := ele.NewPostprocessor(o.Ndim, pdat)
		if err != nil {
			return nil, chk.Err("cannot allocate postprocessor %q:\n%v", pdat.Name, err)
		}
		err = o.checkCoupling(pp, io.Sf("postprocessor %q", pdat.Name))
		if err != nil {
			return nil, err
		}
		o.Pps = append(o.Pps, pp)
	}

	// results
	o.Outs = make([]*ele.IpsMap, len(o.Cells))
	o.Vals = make([]float64, len(o.Pps))

	// message
	if o.ShowMsg {
		io.Pf("> Domain with %d cells, %d fields and %d postprocessors allocated\n", len(o.Cells), len(o.Fields), len(o.Pps))
	}
	return
}

// SetTime sets the current time and updates the elastic strains
//
//	Note: the strains at the previous time are saved as old strains
func (o *Domain) SetTime(t float64, first bool) {
	o.Dt = 0
	if !first {
		o.Dt = t - o.T
		o.Strain.Backup()
	}
	o.T = t
	ε := utl.Alloc(3, 3)
	for cid, c := range o.Cells {
		for ip, p := range c.Ips {
			for ij, fcn := range o.EpsFcn {
				ε[ij[0]][ij[1]] = fcn.F(t, p.X)
				ε[ij[1]][ij[0]] = ε[ij[0]][ij[1]]
			}
			o.Strain.SetTensor(cid, ip, ε)
		}
	}
}

// Sweep runs all evaluators @ all integration points and computes the postprocessors
//
//	Note: cells are split into Nparts partitions evaluated concurrently; each partition
//	      writes only to its own cells and accumulates its own postprocessors
func (o *Domain) Sweep() {

	// postprocessors of each partition
	nparts := min(o.Nparts, len(o.Cells))
	partial := make([][]ele.Postprocessor, nparts)
	for k := 0; k < nparts; k++ {
		partial[k] = make([]ele.Postprocessor, len(o.Pps))
		for i, pp := range o.Pps {
			partial[k][i] = pp.Clone()
			partial[k][i].Initialize()
		}
	}

	// run partitions
	var wg sync.WaitGroup
	ncells := len(o.Cells)
	for k := 0; k < nparts; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			start, end := k*ncells/nparts, (k+1)*ncells/nparts
			for cid := start; cid < end; cid++ {
				o.sweepCell(o.Cells[cid], partial[k])
			}
		}(k)
	}
	wg.Wait()

	// join partial results
	for i, pp := range o.Pps {
		pp.Initialize()
		for k := 0; k < nparts; k++ {
			pp.Threadjoin(partial[k][i])
		}
		o.Vals[i] = pp.Value()
	}
}

// sweepCell runs all evaluators @ all integration points of one cell
func (o *Domain) sweepCell(c *Cell, pps []ele.Postprocessor) {
	M := ele.NewIpsMap()
	nip := len(c.Ips)
	for ip, ipt := range c.Ips {
		p := &ele.Point{Cid: c.Id, Ip: ip, Nip: nip, X: ipt.X, W: ipt.W, T: o.T, Dt: o.Dt}
		p.Vals = make(map[string]float64, len(o.Fields))
		for key, fcn := range o.Fields {
			p.Vals[key] = fcn.F(o.T, ipt.X)
		}
		if o.Mat != nil {
			o.Mat.ComputeProps(M, p)
		}
		for _, kernel := range o.Auxs {
			M.Set(kernel.Key(), ip, nip, kernel.ComputeValue(p))
		}
		for _, pp := range pps {
			pp.Execute(p)
		}
	}
	o.Outs[c.Id] = M
}

// PpValue returns the value of a postprocessor by name
func (o *Domain) PpValue(name string) (val float64, err error) {
	for i, pp := range o.Pps {
		if pp.Name() == name {
			return o.Vals[i], nil
		}
	}
	return 0, chk.Err("cannot find postprocessor named %q", name)
}

// FieldKeys returns the names of all fields in alphabetical order
func (o *Domain) FieldKeys() (keys []string) {
	for key := range o.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

// checkCoupling checks that all fields required by an evaluator are available
func (o *Domain) checkCoupling(evaluator interface{}, desc string) error {
	c, ok := evaluator.(ele.Coupler)
	if !ok {
		return nil
	}
	for _, key := range c.CoupledKeys() {
		if _, ok := o.Fields[key]; !ok {
			return chk.Err("field %q required by %s is not defined", key, desc)
		}
	}
	return nil
}
