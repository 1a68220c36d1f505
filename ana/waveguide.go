// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for piston-driven waveguides
package ana

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// RigidTube holds a lossless tube closed (rigid) at both ends
type RigidTube struct {
	L  float64 // tube length
	C0 float64 // speed of sound
}

// Resonances returns the standing-wave frequencies f_n = n・c0/(2L) up to
// fmax, n ≥ 1
func (o RigidTube) Resonances(fmax float64) (F []float64) {
	for n := 1; ; n++ {
		f := float64(n) * o.C0 / (2.0 * o.L)
		if f > fmax {
			return
		}
		F = append(F, f)
	}
}

// Nearest returns the resonance closest to f
func (o RigidTube) Nearest(f float64) float64 {
	df := o.C0 / (2.0 * o.L)
	n := math.Round(f / df)
	if n < 1 {
		n = 1
	}
	return n * df
}

// QuarterWave returns the n-th odd-quarter-wavelength resonance of a tube
// closed at the driven end and pressure-released at the other:
//  f_n = (2n-1)・c0/(4L)
func QuarterWave(n int, L, c0 float64) float64 {
	return float64(2*n-1) * c0 / (4.0 * L)
}

// PistonTube holds a tube driven by a piston at x=0 and terminated by the
// impedance ZL at x=L. The exact pressure field is the plane-wave sum
//  p(x) = Z0・V・(e^(-ikx) + R・e^(ikx))/(1 - R),   R = (ZL-Z0)/(ZL+Z0)・e^(-2ikL)
// with the piston velocity V = iω・U.
type PistonTube struct {
	L    float64    // tube length
	Rho0 float64    // fluid density
	C0   float64    // speed of sound
	U    float64    // piston particle displacement amplitude
	ZL   complex128 // termination impedance; cmplx.Inf() for a rigid wall
}

// reflection returns the complex reflection factor referred to x=0
func (o PistonTube) reflection(k float64) complex128 {
	e := cmplx.Exp(complex(0, -2.0*k*o.L))
	if cmplx.IsInf(o.ZL) {
		return e
	}
	Z0 := complex(o.Rho0*o.C0, 0)
	return (o.ZL - Z0) / (o.ZL + Z0) * e
}

// P returns the complex pressure at position x and frequency f
func (o PistonTube) P(x, f float64) complex128 {
	omega := 2.0 * math.Pi * f
	k := omega / o.C0
	V := complex(0, omega*o.U)
	R := o.reflection(k)
	Z0 := complex(o.Rho0*o.C0, 0)
	return Z0 * V * (cmplx.Exp(complex(0, -k*x)) + R*cmplx.Exp(complex(0, k*x))) / (1.0 - R)
}

// SPLmean returns the level of the mean RMS pressure sampled at the
// positions X, matching the nodal reduction of the FEM sweep
func (o PistonTube) SPLmean(X []float64, f float64) float64 {
	sum := 0.0
	for _, x := range X {
		sum += cmplx.Abs(o.P(x, f)) / math.Sqrt2
	}
	return 20.0 * math.Log10(sum/float64(len(X))/2e-5)
}

// Plot plots the analytical SPL curve over the frequency range F
func (o PistonTube) Plot(dirout, fnkey string, F []float64, np int) {
	X := utl.LinSpace(0, o.L, np)
	L := make([]float64, len(F))
	for i, f := range F {
		L[i] = o.SPLmean(X, f)
	}
	plt.Reset(true, nil)
	plt.Plot(F, L, &plt.A{C: "b", L: "ana"})
	plt.Gll("$f$ [Hz]", "$L_p$ [dB]", nil)
	plt.Save(dirout, fnkey)
}
