// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Ndim    int    `json:"ndim"`    // space dimension: 2 or 3
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/lynx
	Nparts  int    `json:"nparts"`  // number of partitions of cells evaluated concurrently; 0 => 1
	Verbose bool   `json:"verbose"` // show messages
}

// GridData holds data of a structured grid of quadrilaterals (2D) or hexahedra (3D)
type GridData struct {
	Xmin []float64 `json:"xmin"` // [ndim] min coordinates
	Xmax []float64 `json:"xmax"` // [ndim] max coordinates
	Ndiv []int     `json:"ndiv"` // [ndim] number of divisions along each direction
	Nip  int       `json:"nip"`  // number of integration points along each direction; 0 => 2
}

// FieldData holds the definition of a scalar field given by a function of time and space
type FieldData struct {
	Name string `json:"name"` // name of field; e.g. "temp", "vx"
	Fcn  string `json:"fcn"`  // name of function
}

// DensityData holds the coupling of a density material to fields
type DensityData struct {
	Mat  string   `json:"mat"`  // name of material
	Temp string   `json:"temp"` // name of temperature field
	Phi  string   `json:"phi"`  // [optional] name of porosity field
	Comp []string `json:"comp"` // [optional] names of composition fields
}

// AuxData holds data of auxiliary kernels
type AuxData struct {
	Type string `json:"type"` // type of kernel; e.g. "strain", "strain_rate"
	Key  string `json:"key"`  // [optional] key of output; default is computed from type and indices
	I    int    `json:"i"`    // row index of tensor component
	J    int    `json:"j"`    // column index of tensor component
}

// PostData holds data of postprocessors
type PostData struct {
	Type       string   `json:"type"`       // type of postprocessor; e.g. "velocity_rms", "integral"
	Name       string   `json:"name"`       // name of postprocessor
	Velocities []string `json:"velocities"` // names of velocity fields (velocity_rms)
	Field      string   `json:"field"`      // name of field (integral)
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data           Data              `json:"data"`           // global data
	Grid           GridData          `json:"grid"`           // structured grid
	Functions      FuncsData         `json:"functions"`      // functions
	Materials      MatsData          `json:"materials"`      // materials
	Fields         []*FieldData      `json:"fields"`         // scalar fields
	Strain         map[string]string `json:"strain"`         // elastic strain components => function names; e.g. "xx" => "exx"
	Density        *DensityData      `json:"density"`        // [optional] density material coupling
	AuxKernels     []*AuxData        `json:"auxkernels"`     // auxiliary kernels
	Postprocessors []*PostData       `json:"postprocessors"` // postprocessors
	Times          []float64         `json:"times"`          // evaluation times

	// derived
	Ndim   int    // space dimension
	Key    string // simulation key; e.g. mysim01.sim => mysim01
	DirOut string // directory to save results
	Mdb    *MatDb // materials database
}

// StrainKeys holds the keys of tensor components accepted in the "strain" section
var StrainKeys = map[string][2]int{
	"xx": {0, 0}, "yy": {1, 1}, "zz": {2, 2},
	"xy": {0, 1}, "yz": {1, 2}, "zx": {2, 0},
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q", simfilepath)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(simfilepath))
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/lynx/" + o.Key
	}

	// check and set defaults
	err = o.PostProcess()
	return
}

// PostProcess checks data, sets default values and initialises the materials database
func (o *Simulation) PostProcess() (err error) {

	// space dimension
	o.Ndim = o.Data.Ndim
	if o.Ndim != 2 && o.Ndim != 3 {
		return chk.Err("space dimension must be 2 or 3. ndim = %d is invalid", o.Ndim)
	}
	if o.Data.Nparts < 1 {
		o.Data.Nparts = 1
	}

	// grid
	if len(o.Grid.Xmin) != o.Ndim || len(o.Grid.Xmax) != o.Ndim || len(o.Grid.Ndiv) != o.Ndim {
		return chk.Err("grid: xmin, xmax and ndiv must have %d components", o.Ndim)
	}
	for i := 0; i < o.Ndim; i++ {
		if o.Grid.Xmax[i] <= o.Grid.Xmin[i] {
			return chk.Err("grid: xmax[%d] = %g must be greater than xmin[%d] = %g", i, o.Grid.Xmax[i], i, o.Grid.Xmin[i])
		}
		if o.Grid.Ndiv[i] < 1 {
			return chk.Err("grid: ndiv[%d] = %d must be at least 1", i, o.Grid.Ndiv[i])
		}
	}
	if o.Grid.Nip == 0 {
		o.Grid.Nip = 2
	}
	if o.Grid.Nip < 1 || o.Grid.Nip > 5 {
		return chk.Err("grid: number of integration points along each direction must be in [1, 5]. nip = %d is invalid", o.Grid.Nip)
	}

	// fields
	names := make(map[string]bool)
	for _, f := range o.Fields {
		if names[f.Name] {
			return chk.Err("field %q is defined more than once", f.Name)
		}
		names[f.Name] = true
	}

	// strain components
	for key := range o.Strain {
		if _, ok := StrainKeys[key]; !ok {
			return chk.Err("strain component %q is invalid; options are xx, yy, zz, xy, yz, zx", key)
		}
	}

	// times
	if len(o.Times) == 0 {
		o.Times = []float64{0}
	}
	for i := 1; i < len(o.Times); i++ {
		if o.Times[i] <= o.Times[i-1] {
			return chk.Err("times must be strictly increasing. times[%d] = %g is invalid", i, o.Times[i])
		}
	}

	// materials
	o.Mdb = &MatDb{Functions: o.Functions, Materials: o.Materials}
	err = o.Mdb.Init()
	if err != nil {
		return
	}

	// density coupling
	if o.Density != nil {
		m := o.Mdb.Get(o.Density.Mat)
		if m == nil {
			return chk.Err("cannot find material named %q", o.Density.Mat)
		}
		if len(o.Density.Comp) > 0 && len(o.Density.Comp) != m.Ncomp {
			return chk.Err("number of composition fields (%d) must be equal to the number of phases of material %q (%d)", len(o.Density.Comp), m.Name, m.Ncomp)
		}
		if len(o.Density.Comp) == 0 && m.Ncomp > 1 {
			return chk.Err("composition fields are required by material %q with %d phases", m.Name, m.Ncomp)
		}
	}
	return
}
