// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements 1D waveguide meshes sized to wavelength and the
// import of externally generated 2D meshes
package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Cell holds one element and the global ids of its vertices, ordered from
// the left end of the element to the right end
type Cell struct {
	Id    int   // cell id
	Verts []int // global vertex ids; len = order+1
}

// Mesh holds a uniform 1D mesh covering a waveguide of length L
type Mesh struct {
	L     float64   // tube length
	Order int       // shape order: 1 (lin2) or 2 (lin3)
	Ne    int       // number of elements
	Nn    int       // number of nodes
	H     float64   // element length
	X     []float64 // [Nn] node coordinates, monotone from 0 to L
	Cells []*Cell   // [Ne] cells
}

// Gen generates a uniform mesh resolving the smallest excitation wavelength
// lamMin with at least nePerLambda elements. One mesh serves a whole
// frequency sweep since it is sized by the highest frequency.
func Gen(L, lamMin float64, nePerLambda, order int) (o *Mesh, err error) {

	// check
	if L <= 0 {
		err = chk.Err("tube length must be positive. L=%g is invalid", L)
		return
	}
	if lamMin <= 0 {
		err = chk.Err("smallest wavelength must be positive. lamMin=%g is invalid", lamMin)
		return
	}
	if nePerLambda < 1 {
		err = chk.Err("minimum number of elements per wavelength must be at least 1. nePerLambda=%d is invalid", nePerLambda)
		return
	}
	if order != 1 && order != 2 {
		err = chk.Err("shape order %d is not available; must be 1 (lin2) or 2 (lin3)", order)
		return
	}

	// sizes
	o = new(Mesh)
	o.L = L
	o.Order = order
	o.Ne = int(math.Ceil(float64(nePerLambda) * L / lamMin))
	o.Nn = order*o.Ne + 1
	o.H = L / float64(o.Ne)

	// nodes: spacing H/order so that lin3 mid nodes sit at element midpoints
	dx := o.H / float64(order)
	o.X = make([]float64, o.Nn)
	for i := 0; i < o.Nn; i++ {
		o.X[i] = float64(i) * dx
	}
	o.X[o.Nn-1] = L

	// cells: order+1 consecutive nodes each; adjacent cells share endpoints
	o.Cells = make([]*Cell, o.Ne)
	for e := 0; e < o.Ne; e++ {
		verts := make([]int, order+1)
		for j := 0; j <= order; j++ {
			verts[j] = order*e + j
		}
		o.Cells[e] = &Cell{Id: e, Verts: verts}
	}
	return
}

// NearestNode returns the id of the node closest to x. Requested locations
// (piston, walls) rarely coincide exactly with a node, so resolution is
// always by minimum distance, never by equality.
func (o *Mesh) NearestNode(x float64) int {
	dist := make([]float64, o.Nn)
	for i, xi := range o.X {
		dist[i] = math.Abs(xi - x)
	}
	return floats.MinIdx(dist)
}
