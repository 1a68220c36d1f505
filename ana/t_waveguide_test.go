// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_rigidtube01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rigidtube01. standing-wave resonances")

	tube := RigidTube{L: 1, C0: 340}
	chk.Array(tst, "resonances", 1e-12, tube.Resonances(1000), []float64{170, 340, 510, 680, 850})
	chk.Float64(tst, "nearest(180)", 1e-12, tube.Nearest(180), 170)
	chk.Float64(tst, "nearest(260)", 1e-12, tube.Nearest(260), 340)
	chk.Float64(tst, "nearest(10)", 1e-12, tube.Nearest(10), 170)

	chk.Float64(tst, "quarter wave n=1", 1e-12, QuarterWave(1, 1, 340), 85)
	chk.Float64(tst, "quarter wave n=3", 1e-12, QuarterWave(3, 1, 340), 425)
}

func Test_piston01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("piston01. rigid termination against cos/sin closed form")

	tube := PistonTube{L: 1, Rho0: 1.2, C0: 340, U: 1e-6, ZL: cmplx.Inf()}

	// p(x) = ρ0・c0・ω・U・cos(k(L-x))/sin(kL) for the rigid wall
	for _, f := range []float64{50, 123, 300, 777} {
		omega := 2.0 * math.Pi * f
		k := omega / tube.C0
		for _, x := range []float64{0, 0.25, 0.61, 1} {
			pref := tube.Rho0 * tube.C0 * omega * tube.U * math.Cos(k*(tube.L-x)) / math.Sin(k*tube.L)
			p := tube.P(x, f)
			chk.AnaNum(tst, io.Sf("|p(%g,%g)|", x, f), 1e-8*math.Abs(pref), math.Abs(pref), cmplx.Abs(p), chk.Verbose)
		}
	}
}

func Test_piston02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("piston02. matched termination is anechoic")

	tube := PistonTube{L: 1, Rho0: 1.2, C0: 340, U: 1e-6}
	tube.ZL = complex(tube.Rho0*tube.C0, 0) // Z_L = Z0 => R = 0

	// no reflection: |p| is uniform along the tube and equals Z0・ω・U
	f := 250.0
	omega := 2.0 * math.Pi * f
	pamp := tube.Rho0 * tube.C0 * omega * tube.U
	for _, x := range []float64{0, 0.33, 0.5, 0.99} {
		chk.Float64(tst, io.Sf("|p(%g)|", x), 1e-12*pamp, cmplx.Abs(tube.P(x, f)), pamp)
	}

	// SPL of the travelling wave: Lp = 20・log10(pamp/√2/2e-5)
	X := []float64{0, 0.25, 0.5, 0.75, 1}
	lp := 20.0 * math.Log10(pamp/math.Sqrt2/2e-5)
	chk.Float64(tst, "SPLmean", 1e-10, tube.SPLmean(X, f), lp)

	if chk.Verbose {
		tube.Plot("/tmp/femacoustics", "ana_piston02", []float64{50, 150, 250, 350, 450}, 21)
	}
}
