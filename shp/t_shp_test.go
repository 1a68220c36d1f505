// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/integrate/quad"
)

func verbose() {
	chk.Verbose = true
}

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. partition of unity and endpoint values")

	for _, order := range []int{1, 2} {
		for _, r := range []float64{-1, -0.5, 0, 0.25, 1} {
			S, dSdr, err := Shape(order, r)
			if err != nil {
				tst.Errorf("Shape failed: %v\n", err)
				return
			}
			sum, dsum := 0.0, 0.0
			for i := range S {
				sum += S[i]
				dsum += dSdr[i]
			}
			chk.Float64(tst, io.Sf("order%d: ΣS(%g)", order, r), 1e-15, sum, 1.0)
			chk.Float64(tst, io.Sf("order%d: ΣdSdr(%g)", order, r), 1e-15, dsum, 0.0)
		}
	}

	// Kronecker property at nodes
	S, _, _ := Shape(2, -1)
	chk.Array(tst, "lin3: S(-1)", 1e-15, S, []float64{1, 0, 0})
	S, _, _ = Shape(2, 0)
	chk.Array(tst, "lin3: S(0)", 1e-15, S, []float64{0, 1, 0})
	S, _, _ = Shape(2, 1)
	chk.Array(tst, "lin3: S(1)", 1e-15, S, []float64{0, 0, 1})

	_, _, err := Shape(3, 0)
	if err == nil {
		tst.Errorf("Shape(3) should have failed\n")
	}
}

func Test_elemmats01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elemmats01. closed-form matrices vs Gauss-Legendre integrals")

	h := 0.123
	c0 := 343.0
	for _, order := range []int{1, 2} {

		Ke, Me, err := ElemMats(order, h, c0)
		if err != nil {
			tst.Errorf("ElemMats failed: %v\n", err)
			return
		}
		nv := Nverts(order)

		// numerical Galerkin integrals over the reference element:
		//  Kij = (2/h)・∫ dSdr_i・dSdr_j dr
		//  Mij = (h/2)・∫ S_i・S_j dr / c0²
		for i := 0; i < nv; i++ {
			for j := 0; j < nv; j++ {
				kij := quad.Fixed(func(r float64) float64 {
					_, dSdr, _ := Shape(order, r)
					return dSdr[i] * dSdr[j]
				}, -1, 1, 3, quad.Legendre{}, 0) * 2.0 / h
				mij := quad.Fixed(func(r float64) float64 {
					S, _, _ := Shape(order, r)
					return S[i] * S[j]
				}, -1, 1, 3, quad.Legendre{}, 0) * h / (2.0 * c0 * c0)
				chk.AnaNum(tst, io.Sf("order%d: K%d%d", order, i, j), 1e-14, kij, Ke[i][j], chk.Verbose)
				chk.AnaNum(tst, io.Sf("order%d: M%d%d", order, i, j), 1e-21, mij, Me[i][j], chk.Verbose)
			}
		}

		// stiffness row sums vanish (constant field has zero gradient energy)
		for i := 0; i < nv; i++ {
			sum := 0.0
			for j := 0; j < nv; j++ {
				sum += Ke[i][j]
			}
			chk.Float64(tst, io.Sf("order%d: ΣK row %d", order, i), 1e-14, sum, 0.0)
		}

		// total mass equals h/c0²
		sum := 0.0
		for i := 0; i < nv; i++ {
			for j := 0; j < nv; j++ {
				sum += Me[i][j]
			}
		}
		chk.Float64(tst, io.Sf("order%d: ΣM", order), 1e-20, sum, h/(c0*c0))
	}
}

func Test_elemmats02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elemmats02. invalid input")

	if _, _, err := ElemMats(3, 1, 343); err == nil {
		tst.Errorf("order=3 should have failed\n")
	}
	if _, _, err := ElemMats(1, 0, 343); err == nil {
		tst.Errorf("h=0 should have failed\n")
	}
}
