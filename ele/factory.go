// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mcacace/lynx/inp"
	"github.com/mcacace/lynx/mdl/strain"
)

// AuxAllocatorType defines a function that allocates an auxiliary kernel
type AuxAllocatorType func(edat *inp.AuxData, src strain.Source) (AuxKernel, error)

// PostAllocatorType defines a function that allocates a postprocessor
type PostAllocatorType func(ndim int, pdat *inp.PostData) (Postprocessor, error)

// NewAuxKernel returns a new auxiliary kernel from factory
func NewAuxKernel(edat *inp.AuxData, src strain.Source) (kernel AuxKernel, err error) {
	fcn, ok := auxallocators[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get allocator for auxiliary kernel {type=%q}", edat.Type)
	}
	return fcn(edat, src)
}

// NewPostprocessor returns a new postprocessor from factory
func NewPostprocessor(ndim int, pdat *inp.PostData) (pp Postprocessor, err error) {
	fcn, ok := postallocators[pdat.Type]
	if !ok {
		return nil, chk.Err("cannot get allocator for postprocessor {type=%q, name=%q}", pdat.Type, pdat.Name)
	}
	return fcn(ndim, pdat)
}

// SetAuxAllocator sets a new callback function to allocate an auxiliary kernel
func SetAuxAllocator(kernelName string, fcn AuxAllocatorType) {
	if _, ok := auxallocators[kernelName]; ok {
		chk.Panic("cannot set allocator function for %q because kernel name exists already", kernelName)
	}
	auxallocators[kernelName] = fcn
}

// SetPostAllocator sets a new callback function to allocate a postprocessor
func SetPostAllocator(ppName string, fcn PostAllocatorType) {
	if _, ok := postallocators[ppName]; ok {
		chk.Panic("cannot set allocator function for %q because postprocessor name exists already", ppName)
	}
	postallocators[ppName] = fcn
}

// auxallocators holds all auxiliary kernel allocators
var auxallocators = make(map[string]AuxAllocatorType)

// postallocators holds all postprocessor allocators
var postallocators = make(map[string]PostAllocatorType)
