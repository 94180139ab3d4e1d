// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Point holds data available @ one integration point during an evaluation sweep
type Point struct {

	// location
	Cid int       // id of cell
	Ip  int       // index of integration point in cell
	Nip int       // number of integration points in cell
	X   []float64 // [ndim] real coordinates of ip
	W   float64   // integration weight multiplied by the determinant of the Jacobian

	// time
	T  float64 // current time
	Dt float64 // current time increment

	// coupled fields
	Vals map[string]float64 // field values @ ip; e.g. "temp" => 300
}

// Get returns the value of a field @ ip
func (o *Point) Get(key string) float64 {
	v, ok := o.Vals[key]
	if !ok {
		chk.Panic("field %q is not available @ integration point %d of cell %d", key, o.Ip, o.Cid)
	}
	return v
}

// Has tells whether the field exists @ ip
func (o *Point) Has(key string) bool {
	_, ok := o.Vals[key]
	return ok
}
