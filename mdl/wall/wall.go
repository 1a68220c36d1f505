// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wall implements boundary impedance models for waveguide
// terminations: direct complex impedance, rigid wall, and equivalent
// impedance from an absorption coefficient
package wall

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
)

// BetaMax is the admittance assigned to a vanishing impedance. A zero
// impedance would otherwise inject an infinite admittance and destroy the
// conditioning of the system matrix.
const BetaMax = 1e6

// Model holds a wall boundary model. Beta is the admittance injected at the
// diagonal of the global boundary matrix; it is frequency independent.
type Model struct {
	Z    complex128 // complex impedance
	Beta complex128 // admittance β = 1/Z (clamped for Z=0; zero for rigid)
	Z0   float64    // characteristic impedance ρ0·c0 of the fluid
}

// FromImpedance returns a model for a directly specified impedance Z.
// Z=0 is clamped to the BetaMax admittance sentinel.
func FromImpedance(Z complex128, Z0 float64) (o *Model) {
	o = &Model{Z: Z, Z0: Z0}
	if Z == 0 {
		o.Beta = complex(BetaMax, 0)
		return
	}
	o.Beta = 1.0 / Z
	return
}

// Rigid returns a model of a fully reflective wall: β = 0
func Rigid(Z0 float64) (o *Model) {
	return &Model{Z: cmplx.Inf(), Beta: 0, Z0: Z0}
}

// FromAbsorption returns a model equivalent to the absorption coefficient
// 0 < α < 1, converted after Mommertz (1996) assuming zero phase shift
// between pressure and normal velocity.
func FromAbsorption(alpha, Z0 float64) (o *Model, err error) {
	Z, err := Impedance(alpha, Z0)
	if err != nil {
		return
	}
	return FromImpedance(Z, Z0), nil
}

// Impedance converts an absorption coefficient into the equivalent
// zero-phase impedance (Mommertz 1996):
//  r = √(1-α)   real-valued reflection factor
//  Z = Z0・(1+r)/(1-r)
func Impedance(alpha, Z0 float64) (Z complex128, err error) {
	if alpha <= 0 || alpha >= 1 {
		err = chk.Err("absorption coefficient must be within (0,1). α=%g is invalid", alpha)
		return
	}
	r := math.Sqrt(1.0 - alpha)
	Z = complex(Z0*(1.0+r)/(1.0-r), 0)
	return
}

// Absorption is the inverse conversion: the absorption coefficient of an
// impedance Z under normal incidence,
//  R = (Z-Z0)/(Z+Z0),  α = 1-|R|²
// For impedances produced by Impedance the round trip is exact.
func Absorption(Z complex128, Z0 float64) float64 {
	R := (Z - complex(Z0, 0)) / (Z + complex(Z0, 0))
	return 1.0 - math.Pow(cmplx.Abs(R), 2)
}
