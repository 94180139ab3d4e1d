// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/mcacace/lynx/fem"
	"github.com/mcacace/lynx/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveIps := io.ArgToBool(2, true)
	doprof := io.ArgToInt(3, 0)

	// message
	if verbose {
		io.PfWhite("\nLynx -- constitutive and diagnostic evaluators\n")
		io.Pf("Copyright 2017 The Lynx Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save values @ ips", "saveIps", saveIps,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	// analysis data
	analysis, err := fem.NewMain(fnamepath, verbose)
	if err != nil {
		chk.Panic("cannot allocate analysis:\n%v", err)
	}
	if saveIps {
		analysis.Output = func(d *fem.Domain, tidx int) error {
			out.SaveIps(d, analysis.Sim.DirOut, analysis.Sim.Key, tidx)
			return nil
		}
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	if verbose {
		io.Pf("\n%s", out.PpTable(analysis.Summary))
	}
}
