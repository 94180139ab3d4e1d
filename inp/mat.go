// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/mcacace/lynx/mdl/density"
)

// Material holds material data
type Material struct {

	// input
	Name       string     `json:"name"`       // name of material
	Type       string     `json:"type"`       // type of material; e.g. "density"
	Model      string     `json:"model"`      // name of model; e.g. "thermal", "constant"
	Ncomp      int        `json:"ncomp"`      // number of phases (compositions); 0 => 1
	RefTempFcn string     `json:"reftempfcn"` // [optional] name of reference temperature function
	Prms       dbf.Params `json:"prms"`       // prms holds all model parameters for this material

	// derived
	Density density.Model `json:"-"` // pointer to actual density model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions"` // all functions
	Materials MatsData  `json:"materials"` // all materials

	// derived
	Densities map[string]*Material `json:"-"` // subset with materials/models: densities
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}

	// initialise models
	err = mdb.Init()
	return
}

// Init allocates and initialises all models
func (o *MatDb) Init() (err error) {
	o.Densities = make(map[string]*Material)
	for _, m := range o.Materials {
		if _, ok := o.Densities[m.Name]; ok {
			return chk.Err("material named %q is defined more than once", m.Name)
		}
		switch m.Type {
		case "density":
			o.Densities[m.Name] = m
		default:
			return chk.Err("material type %q is incorrect; options are \"density\"", m.Type)
		}
	}

	// alloc/init: densities
	for _, m := range o.Densities {
		if m.Ncomp < 1 {
			m.Ncomp = 1
		}
		var tfcn dbf.T
		if m.RefTempFcn != "" {
			tfcn, err = o.Functions.Get(m.RefTempFcn)
			if err != nil {
				return chk.Err("cannot get reference temperature function of material %q:\n%v", m.Name, err)
			}
		}
		m.Density, err = density.New(m.Model)
		if err != nil {
			return
		}
		err = m.Density.Init(m.Ncomp, m.Prms, tfcn)
		if err != nil {
			return chk.Err("cannot initialise model %q of material %q:\n%v", m.Model, m.Name, err)
		}
	}
	return
}

// Get returns material by name
//
//	Note: returns nil if not found
func (o *MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}
