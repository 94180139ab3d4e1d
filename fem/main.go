// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements a miniature host driving the evaluators over a structured grid
package fem

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mcacace/lynx/inp"
)

// OutputFcn is called after each evaluation sweep
type OutputFcn func(d *Domain, tidx int) error

// Main holds all data for a simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure
	Domain  *Domain         // domain
	Output  OutputFcn       // [optional] callback called after each sweep
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//
//	Input:
//	 simfilepath -- simulation (.sim) filename including full path
//	 verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}
	o.ShowMsg = verbose || o.Sim.Data.Verbose

	// message
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// allocate domain
	o.Domain, err = NewDomain(o.Sim, o.ShowMsg)
	if err != nil {
		return nil, err
	}
	o.Summary = NewSummary()
	return
}

// Run runs the evaluation sweep for each output time
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running evaluators\n")
	}

	// time loop
	for tidx, t := range o.Sim.Times {
		o.Domain.SetTime(t, tidx == 0)
		o.Domain.Sweep()
		o.Summary.Record(o.Domain)
		if o.ShowMsg {
			io.Pfyel("> t = %g\n", t)
			for i, pp := range o.Domain.Pps {
				io.Pf("    %s = %g\n", pp.Name(), o.Domain.Vals[i])
			}
		}
		if o.Output != nil {
			err = o.Output(o.Domain, tidx)
			if err != nil {
				return
			}
		}
	}
	return
}

// onexit prints final message with cpu time and saves summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// skip if previous error is not nil
	if prevErr != nil {
		return prevErr
	}

	// save summary
	return o.Summary.Save(o.Sim.DirOut, o.Sim.Key)
}
