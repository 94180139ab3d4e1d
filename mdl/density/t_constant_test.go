// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_constant01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constant01")

	mdl, err := New("constant")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(2, dbf.Params{
		&dbf.P{N: "rho_f", V: 1000},
		&dbf.P{N: "rho_s0", V: 2700},
		&dbf.P{N: "rho_s1", V: 3300},
		&dbf.P{N: "gy", V: -9.81},
	}, nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	props := NewProps()
	for _, T := range []float64{0, 300, 1500} {
		mdl.Calc(props, &Point{Temp: T, Phi: 0.2, Comp: []float64{0.5, 0.5}})
		chk.Float64(tst, "ρf", 1e-9, props.RhoF, 1000)
		chk.Float64(tst, "ρs", 1e-9, props.RhoS, 3000)
		chk.Float64(tst, "ρb", 1e-9, props.RhoB, 0.2*1000+0.8*3000)
		chk.Float64(tst, "ρb(ref)", 1e-12, props.RefRhoB, props.RhoB)
		chk.Float64(tst, "dρdT", 1e-15, props.DrhoDtemp, 0)
		chk.Float64(tst, "d(1/ρ)dT", 1e-15, props.DinvrhoDtemp, 0)
		chk.Vector(tst, "grav", 1e-15, props.Grav, []float64{0, -9.81, 0})
	}
}
