// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/felixpfreundtner/FEMAcoustics/fem"
	"github.com/felixpfreundtner/FEMAcoustics/inp"
	"github.com/felixpfreundtner/FEMAcoustics/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "data/tube", ".sim", true)
	verbose := io.ArgToBool(1, true)
	parallel := io.ArgToBool(2, false)
	doplot := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nFEMAcoustics -- 1D FEM acoustic waveguide solver\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"parallel sweep", "parallel", parallel,
			"plot results", "doplot", doplot,
		))
	}

	// read simulation and build domain
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	dom, err := fem.NewDomain(sim)
	if err != nil {
		chk.Panic("cannot build domain:\n%v", err)
	}
	if verbose {
		io.Pf("> mesh: Ne=%d, Nn=%d, h=%g\n", dom.Msh.Ne, dom.Msh.Nn, dom.Msh.H)
	}

	// run frequency sweep
	var res *fem.Results
	if parallel {
		res, err = dom.RunParallel(0)
	} else {
		res, err = dom.Run(verbose)
	}
	if err != nil {
		chk.Panic("sweep failed:\n%v", err)
	}

	// report
	if verbose {
		out.Table(res)
	}
	dirout := sim.Data.DirOut
	if dirout == "" {
		dirout = "/tmp/femacoustics"
	}
	fn, err := out.SaveJSON(dirout, fnkey, res)
	if err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}
	io.Pf("> results written to %s\n", fn)
	if doplot {
		out.Plot(dirout, fnkey, res, nil, nil)
	}
	if !res.AllSolved() {
		io.PfRed("> %d samples failed\n", res.Nfailed())
	}
}
