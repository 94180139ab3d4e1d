// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Vector reads a per-phase property vector from a database of parameters
//
//	Input:
//	 prms  -- parameters
//	 key   -- name of property; e.g. "beta_f"
//	 ncomp -- number of phases (composition entries)
//	Output:
//	 v -- [ncomp] values. One of the following is accepted:
//	       1) all indexed parameters key0, key1, ... key{ncomp-1} are given
//	       2) key is given; its value is used for all phases
//	       3) nothing is given; v is filled with zeros
func Vector(prms dbf.Params, key string, ncomp int) (v []float64, err error) {
	if ncomp < 1 {
		return nil, chk.Err("number of phases must be at least 1. ncomp = %d is invalid", ncomp)
	}
	v = make([]float64, ncomp)
	keys := make([]string, ncomp)
	for i := 0; i < ncomp; i++ {
		keys[i] = io.Sf("%s%d", key, i)
	}
	values, found := prms.GetValues(keys)
	if utl.AllTrue(found) {
		copy(v, values)
		return
	}
	if anyTrue(found) {
		return nil, chk.Err("either %q or all of %v must be given in database of material parameters", key, keys)
	}
	if p := prms.Find(key); p != nil {
		for i := 0; i < ncomp; i++ {
			v[i] = p.V
		}
	}
	return
}

// anyTrue returns true if at least one value is true
func anyTrue(values []bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}
