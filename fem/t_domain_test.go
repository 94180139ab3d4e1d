// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mcacace/lynx/ele"
	"github.com/mcacace/lynx/inp"
	"github.com/stretchr/testify/require"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. structured grid with Gauss points")

	dat := &inp.GridData{Xmin: []float64{0, 0}, Xmax: []float64{2, 1}, Ndiv: []int{2, 1}, Nip: 2}
	cells, err := NewGrid(dat, 2)
	require.NoError(tst, err)
	require.Len(tst, cells, 2)

	chk.Vector(tst, "xmin1", 1e-15, cells[1].Xmin, []float64{1, 0})
	chk.Vector(tst, "xmax1", 1e-15, cells[1].Xmax, []float64{2, 1})

	area := 0.0
	for _, c := range cells {
		require.Len(tst, c.Ips, 4)
		for _, ip := range c.Ips {
			area += ip.W
			for i := 0; i < 2; i++ {
				require.True(tst, ip.X[i] > c.Xmin[i] && ip.X[i] < c.Xmax[i])
			}
		}
	}
	chk.Float64(tst, "area", 1e-14, area, 2)

	// two-point rule integrates cubics exactly: ∫∫ x³ dy dx over [0,2]x[0,1] = 4
	sum := 0.0
	for _, c := range cells {
		for _, ip := range c.Ips {
			sum += ip.W * math.Pow(ip.X[0], 3)
		}
	}
	chk.Float64(tst, "∫x³", 1e-13, sum, 4)

	_, err = NewGrid(&inp.GridData{Xmin: []float64{0}, Xmax: []float64{1}, Ndiv: []int{1}, Nip: 2}, 2)
	require.Error(tst, err)
	_, err = NewGrid(&inp.GridData{Xmin: []float64{0, 0}, Xmax: []float64{1, 1}, Ndiv: []int{1, 0}, Nip: 2}, 2)
	require.Error(tst, err)
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. 3D volume")

	dat := &inp.GridData{Xmin: []float64{0, 0, 0}, Xmax: []float64{1, 2, 3}, Ndiv: []int{1, 2, 3}, Nip: 3}
	cells, err := NewGrid(dat, 3)
	require.NoError(tst, err)
	require.Len(tst, cells, 6)

	vol := 0.0
	for _, c := range cells {
		require.Len(tst, c.Ips, 27)
		for _, ip := range c.Ips {
			vol += ip.W
		}
	}
	chk.Float64(tst, "volume", 1e-13, vol, 6)
}

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01. thermal density, strains and reductions")

	sim, err := inp.ReadSim("../inp/data/column.sim")
	require.NoError(tst, err)

	dom, err := NewDomain(sim, chk.Verbose)
	require.NoError(tst, err)
	require.Len(tst, dom.Cells, 4)
	require.Equal(tst, 2, dom.Nparts)
	require.Equal(tst, []string{"c0", "c1", "phi", "temp", "vx", "vy"}, dom.FieldKeys())

	// expected densities: ΔT = 573 - 273
	ρf := 1000 * (1 - 2e-4*300)
	ρs := 3000 * (1 - 3e-5*300)
	ρb := 0.2*ρf + 0.8*ρs
	dρdT := 0.2*(-2e-4*1000) + 0.8*(-3e-5*3000)

	for tidx, t := range sim.Times {
		dom.SetTime(t, tidx == 0)
		dom.Sweep()

		// postprocessors
		vrms, err := dom.PpValue("vrms")
		require.NoError(tst, err)
		chk.Float64(tst, "vrms", 1e-13, vrms, 5)
		area, err := dom.PpValue("area")
		require.NoError(tst, err)
		chk.Float64(tst, "∫c0", 1e-14, area, 0.5)

		// values @ ips
		rate := 0.01
		if tidx == 0 {
			rate = 0
		}
		for cid, M := range dom.Outs {
			require.NotNil(tst, M, "cell %d", cid)
			for ip := range dom.Cells[cid].Ips {
				chk.Float64(tst, "ρf", 1e-9, M.Get(ele.KeyRhoF, ip), ρf)
				chk.Float64(tst, "ρs", 1e-9, M.Get(ele.KeyRhoS, ip), ρs)
				chk.Float64(tst, "ρb", 1e-9, M.Get(ele.KeyRhoB, ip), ρb)
				chk.Float64(tst, "ρb(ref)", 1e-9, M.Get(ele.KeyRefRhoB, ip), ρb)
				chk.Float64(tst, "dρ/dT", 1e-12, M.Get(ele.KeyDrhoDtemp, ip), dρdT)
				chk.Float64(tst, "d(1/ρ)/dT", 1e-15, M.Get(ele.KeyDinvrhoDtemp, ip), -dρdT/(ρb*ρb))
				chk.Float64(tst, "gy", 1e-15, M.Get("gy", ip), -9.81)
				chk.Float64(tst, "eps_xy", 1e-14, M.Get("eps_xy", ip), 0.01*t)
				chk.Float64(tst, "deps_yx", 1e-13, M.Get("deps_yx", ip), rate)
				chk.Float64(tst, "ezz", 1e-15, M.Get("ezz", ip), 0)
			}
		}
	}

	_, err = dom.PpValue("unknown")
	require.Error(tst, err)
}

func Test_domain02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain02. serial and concurrent sweeps give the same reductions")

	sim, err := inp.ReadSim("../inp/data/column.sim")
	require.NoError(tst, err)
	sim.Grid.Ndiv = []int{5, 7}

	var vals [][]float64
	for _, nparts := range []int{1, 3, 35, 100} {
		sim.Data.Nparts = nparts
		dom, err := NewDomain(sim, false)
		require.NoError(tst, err)
		dom.SetTime(0, true)
		dom.Sweep()
		vals = append(vals, append([]float64{}, dom.Vals...))
	}
	for i := 1; i < len(vals); i++ {
		chk.Vector(tst, io.Sf("vals%d", i), 1e-12, vals[i], vals[0])
	}
}

func Test_domain03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain03. configuration errors")

	// number of velocities does not match the space dimension
	sim, err := inp.ReadSim("../inp/data/badvel.sim")
	require.NoError(tst, err)
	_, err = NewDomain(sim, false)
	require.Error(tst, err)
	require.Contains(tst, err.Error(), "must match the mesh dimension")

	// missing coupled field
	sim, err = inp.ReadSim("../inp/data/column.sim")
	require.NoError(tst, err)
	sim.Fields = sim.Fields[1:] // remove temp
	_, err = NewDomain(sim, false)
	require.Error(tst, err)
	require.Contains(tst, err.Error(), "temp")
}

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. time loop and summary")

	analysis, err := NewMain("../inp/data/column.sim", chk.Verbose)
	require.NoError(tst, err)

	ncalls := 0
	analysis.Output = func(d *Domain, tidx int) error {
		ncalls++
		return nil
	}
	require.NoError(tst, analysis.Run())
	require.Equal(tst, 3, ncalls)

	sum := NewSummary()
	require.NoError(tst, sum.Read(analysis.Sim.DirOut, analysis.Sim.Key))
	chk.Vector(tst, "times", 1e-15, sum.OutTimes, []float64{0, 1, 2})
	chk.Vector(tst, "vrms", 1e-13, sum.Values["vrms"], []float64{5, 5, 5})
	chk.Vector(tst, "area", 1e-14, sum.Values["area"], []float64{0.5, 0.5, 0.5})

	_, err = NewMain("../inp/data/badvel.sim", false)
	require.Error(tst, err)
}
