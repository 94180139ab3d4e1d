// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_average01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("average01")

	v := []float64{2.7, 3.3, 1.0}

	// one-hot weights
	chk.Float64(tst, "one-hot 0", 1e-15, Average([]float64{1, 0, 0}, v), 2.7)
	chk.Float64(tst, "one-hot 1", 1e-15, Average([]float64{0, 1, 0}, v), 3.3)
	chk.Float64(tst, "one-hot 2", 1e-15, Average([]float64{0, 0, 1}, v), 1.0)

	// fractions summing up to one
	w := []float64{0.2, 0.5, 0.3}
	chk.Float64(tst, "fractions", 1e-15, Average(w, v), 0.2*2.7+0.5*3.3+0.3*1.0)

	// no normalisation
	chk.Float64(tst, "unnormalised", 1e-15, Average([]float64{2, 2, 2}, v), 2*(2.7+3.3+1.0))

	// single phase
	chk.Float64(tst, "single", 1e-15, Average(Weights(nil, 1), []float64{4.2}), 4.2)
}

func Test_average02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("average02")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("Average should have panicked on length mismatch\n")
		}
	}()
	Average([]float64{0.5, 0.5}, []float64{1, 2, 3})
}

func Test_vector01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector01")

	prms := dbf.Params{
		&dbf.P{N: "rho_f", V: 1.0},
		&dbf.P{N: "beta_s0", V: 1e-5},
		&dbf.P{N: "beta_s1", V: 2e-5},
		&dbf.P{N: "beta_s2", V: 3e-5},
		&dbf.P{N: "beta_f0", V: 1e-4},
	}

	// broadcast
	v, err := Vector(prms, "rho_f", 3)
	if err != nil {
		tst.Errorf("Vector failed: %v\n", err)
		return
	}
	chk.Vector(tst, "rho_f", 1e-15, v, []float64{1, 1, 1})

	// indexed
	v, err = Vector(prms, "beta_s", 3)
	if err != nil {
		tst.Errorf("Vector failed: %v\n", err)
		return
	}
	chk.Vector(tst, "beta_s", 1e-15, v, []float64{1e-5, 2e-5, 3e-5})

	// zero-filled
	v, err = Vector(prms, "rho_s", 3)
	if err != nil {
		tst.Errorf("Vector failed: %v\n", err)
		return
	}
	chk.Vector(tst, "rho_s", 1e-15, v, []float64{0, 0, 0})

	// partial indexed set
	_, err = Vector(prms, "beta_f", 3)
	if err == nil {
		tst.Errorf("Vector should have failed with partial set of beta_f\n")
		return
	}
	io.Pforan("%v\n", err)

	// invalid number of phases
	_, err = Vector(prms, "rho_f", 0)
	if err == nil {
		tst.Errorf("Vector should have failed with ncomp = 0\n")
	}
}
