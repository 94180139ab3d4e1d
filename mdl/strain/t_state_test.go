// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strain

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// dense converts a matrix into a nested slice
func dense(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	res := make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			res[i][j] = m.At(i, j)
		}
	}
	return res
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. 3D")

	ε := [][]float64{
		{1, 4, 6},
		{4, 2, 5},
		{6, 5, 3},
	}
	store := NewStore(3, []int{1})
	store.SetTensor(0, 0, ε)
	s := store.States[0][0]
	chk.Vector(tst, "mandel", 1e-14, s.EpsE, []float64{1, 2, 3, 4 * math.Sqrt2, 5 * math.Sqrt2, 6 * math.Sqrt2})
	chk.Matrix(tst, "ε", 1e-14, dense(store.ElasticStrain(0, 0)), ε)

	// rate
	store.Backup()
	chk.Vector(tst, "old", 1e-15, s.EpsEold, s.EpsE)
	store.SetTensor(0, 0, [][]float64{
		{2, 4, 8},
		{4, 2, 5},
		{8, 5, 6},
	})
	chk.Matrix(tst, "dεdt", 1e-14, dense(store.StrainRate(0, 0, 0.5)), [][]float64{
		{2, 0, 4},
		{0, 0, 0},
		{4, 0, 6},
	})

	// rate with zero time increment
	chk.Matrix(tst, "dεdt(Δt=0)", 1e-15, dense(store.StrainRate(0, 0, 0)), [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. 2D")

	store := NewStore(2, []int{2, 3})
	if len(store.States[1]) != 3 {
		tst.Errorf("cell 1 must have 3 states\n")
		return
	}
	s := store.States[1][2]
	chk.IntAssert(len(s.EpsE), 4)

	store.SetTensor(1, 2, [][]float64{
		{1, 3, 0},
		{3, 2, 0},
		{0, 0, -1},
	})
	chk.Matrix(tst, "ε", 1e-14, dense(store.ElasticStrain(1, 2)), [][]float64{
		{1, 3, 0},
		{3, 2, 0},
		{0, 0, -1},
	})

	// copy
	c := s.GetCopy()
	chk.Vector(tst, "copy", 1e-15, c.EpsE, s.EpsE)
	c.EpsE[0] = 123
	chk.Float64(tst, "original", 1e-15, s.EpsE[0], 1)

	// out-of-range
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("ElasticStrain should have panicked with invalid cell id\n")
		}
	}()
	store.ElasticStrain(2, 0)
}
