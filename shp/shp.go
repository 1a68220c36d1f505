// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements 1D Lagrangean shape functions and the corresponding
// closed-form acoustic element matrices
package shp

import (
	"github.com/cpmech/gosl/chk"
)

// Shape computes the shape functions S and their natural derivatives dSdr at
// the natural coordinate -1 ≤ r ≤ 1.
//  order=1 (lin2): S = [left, right]
//  order=2 (lin3): S = [left, mid, right]; the mid node sits at r=0
func Shape(order int, r float64) (S, dSdr []float64, err error) {
	switch order {
	case 1:
		S = []float64{
			(1.0 - r) / 2.0,
			(1.0 + r) / 2.0,
		}
		dSdr = []float64{-0.5, 0.5}
	case 2:
		S = []float64{
			r * (r - 1.0) / 2.0,
			1.0 - r*r,
			r * (r + 1.0) / 2.0,
		}
		dSdr = []float64{r - 0.5, -2.0 * r, r + 0.5}
	default:
		err = chk.Err("shape order %d is not available; must be 1 (lin2) or 2 (lin3)", order)
	}
	return
}

// Lin2 returns the stiffness (Ke) and mass (Me) matrices of a 2-node linear
// element of length h. Me carries the 1/c0² factor of the Galerkin form of
// the Helmholtz equation.
func Lin2(h, c0 float64) (Ke, Me [][]float64) {
	cf := h / (6.0 * c0 * c0)
	Ke = [][]float64{
		{1.0 / h, -1.0 / h},
		{-1.0 / h, 1.0 / h},
	}
	Me = [][]float64{
		{2.0 * cf, 1.0 * cf},
		{1.0 * cf, 2.0 * cf},
	}
	return
}

// Lin3 returns the stiffness (Ke) and mass (Me) matrices of a 3-node
// quadratic element of length h, node order [left, mid, right].
func Lin3(h, c0 float64) (Ke, Me [][]float64) {
	ck := 1.0 / (3.0 * h)
	cm := h / (30.0 * c0 * c0)
	Ke = [][]float64{
		{7.0 * ck, -8.0 * ck, 1.0 * ck},
		{-8.0 * ck, 16.0 * ck, -8.0 * ck},
		{1.0 * ck, -8.0 * ck, 7.0 * ck},
	}
	Me = [][]float64{
		{4.0 * cm, 2.0 * cm, -1.0 * cm},
		{2.0 * cm, 16.0 * cm, 2.0 * cm},
		{-1.0 * cm, 2.0 * cm, 4.0 * cm},
	}
	return
}

// ElemMats returns the element matrix pair for the given shape order.
// The coefficients are the exact Galerkin integrals of the polynomial basis
// over an element of length h; they are fixed tables, not quadrature output.
func ElemMats(order int, h, c0 float64) (Ke, Me [][]float64, err error) {
	if h <= 0 {
		err = chk.Err("element length must be positive. h=%g is invalid", h)
		return
	}
	switch order {
	case 1:
		Ke, Me = Lin2(h, c0)
	case 2:
		Ke, Me = Lin3(h, c0)
	default:
		err = chk.Err("shape order %d is not available; must be 1 (lin2) or 2 (lin3)", order)
	}
	return
}

// Nverts returns the number of element vertices for the given shape order
func Nverts(order int) int {
	return order + 1
}
