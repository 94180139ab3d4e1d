// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mixture implements averaging of per-phase properties by composition fractions
package mixture

import "gonum.org/v1/gonum/floats"

// Average returns the weighted sum of per-phase values
//
//	 avg = Σ w[i] ・ v[i]
//
//	Note: weights are not normalised; they are either phase fractions summing up to one
//	      or a single unit weight. Panics if len(w) != len(v)
func Average(w, v []float64) float64 {
	return floats.Dot(w, v)
}

// SinglePhase returns the composition vector of a material with one phase
func SinglePhase() []float64 {
	return []float64{1}
}

// Weights returns comp if it is consistent with ncomp; otherwise, for ncomp == 1,
// the single-phase weights are returned
func Weights(comp []float64, ncomp int) []float64 {
	if len(comp) == 0 && ncomp == 1 {
		return SinglePhase()
	}
	return comp
}
