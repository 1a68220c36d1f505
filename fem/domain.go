// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the acoustic FEM solver: global assembly of the
// waveguide matrices and the per-frequency Helmholtz solve
package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/felixpfreundtner/FEMAcoustics/inp"
	"github.com/felixpfreundtner/FEMAcoustics/mdl/wall"
	"github.com/felixpfreundtner/FEMAcoustics/msh"
	"github.com/felixpfreundtner/FEMAcoustics/shp"
)

// coo holds a real square matrix in coordinate (triplet) form. Duplicate
// (i,j) pairs are additive, matching the scatter-add of FEM assembly.
type coo struct {
	N int       // matrix dimension
	I []int     // row indices
	J []int     // column indices
	V []float64 // values
}

func (o *coo) put(i, j int, v float64) {
	o.I = append(o.I, i)
	o.J = append(o.J, j)
	o.V = append(o.V, v)
}

// ToDense returns the summed dense form (small systems and tests only)
func (o *coo) ToDense() (a [][]float64) {
	a = make([][]float64, o.N)
	for i := range a {
		a[i] = make([]float64, o.N)
	}
	for k, v := range o.V {
		a[o.I[k]][o.J[k]] += v
	}
	return
}

// SysMat holds the complex system matrix Matrix(ω) in coordinate form
type SysMat struct {
	N int          // matrix dimension
	I []int        // row indices
	J []int        // column indices
	V []complex128 // values
}

// Domain holds the discretised waveguide: mesh, element matrices and the
// assembled global matrices. It is built once per simulation and shared
// read-only by all frequency samples.
type Domain struct {

	// input
	Sim *inp.Simulation // input data
	Msh *msh.Mesh       // 1D mesh sized by the highest sweep frequency

	// element matrices
	Ke [][]float64 // local stiffness matrix
	Me [][]float64 // local mass matrix (with 1/c0²)

	// global matrices
	K     coo          // global stiffness
	M     coo          // global mass
	Adiag []complex128 // [Nn] boundary admittance diagonal; nonzero at wall nodes only

	// resolved node indices
	PistNodes []int // piston node per piston source
	WallNodes []int // wall node per wall boundary
}

// NewDomain builds the domain for a simulation: generates the mesh, computes
// the element matrices and assembles K, M and the admittance diagonal A.
// Configuration errors abort here, before any solve.
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {

	// validate input
	sim.SetDefaults()
	err = sim.Validate()
	if err != nil {
		return
	}

	// mesh sized to the smallest wavelength of the sweep
	o = &Domain{Sim: sim}
	o.Msh, err = msh.Gen(sim.Data.L, sim.LamMin(), sim.Data.NePerLam, sim.Data.Order)
	if err != nil {
		return nil, err
	}

	// element matrices: constant over the uniform mesh
	o.Ke, o.Me, err = shp.ElemMats(sim.Data.Order, o.Msh.H, sim.Data.C0)
	if err != nil {
		return nil, err
	}

	// global K and M by index-based scatter-add; shared nodes between
	// adjacent cells accumulate both contributions
	nn := o.Msh.Nn
	nv := shp.Nverts(sim.Data.Order)
	nz := o.Msh.Ne * nv * nv
	o.K = coo{N: nn, I: make([]int, 0, nz), J: make([]int, 0, nz), V: make([]float64, 0, nz)}
	o.M = coo{N: nn, I: make([]int, 0, nz), J: make([]int, 0, nz), V: make([]float64, 0, nz)}
	for _, c := range o.Msh.Cells {
		for i, I := range c.Verts {
			for j, J := range c.Verts {
				o.K.put(I, J, o.Ke[i][j])
				o.M.put(I, J, o.Me[i][j])
			}
		}
	}

	// boundary admittance diagonal
	o.Adiag = make([]complex128, nn)
	Z0 := sim.Data.Rho0 * sim.Data.C0
	for _, w := range sim.Walls {
		var m *wall.Model
		switch {
		case w.Rigid:
			m = wall.Rigid(Z0)
		case w.Alpha != 0:
			m, err = wall.FromAbsorption(w.Alpha, Z0)
			if err != nil {
				return nil, err
			}
		default:
			m = wall.FromImpedance(complex(w.Impedance[0], w.Impedance[1]), Z0)
		}
		node := o.Msh.NearestNode(w.X)
		o.Adiag[node] += m.Beta
		o.WallNodes = append(o.WallNodes, node)
	}

	// piston nodes
	for _, p := range sim.Pistons {
		o.PistNodes = append(o.PistNodes, o.Msh.NearestNode(p.X))
	}
	return
}

// SystemMat assembles the complex system matrix for one angular frequency:
//  Matrix(ω) = K - ω²・M/(1+i・η) + i・ω・A
func (o *Domain) SystemMat(omega float64) (A *SysMat) {
	nz := len(o.K.V) + len(o.M.V) + len(o.WallNodes)
	A = &SysMat{N: o.Msh.Nn, I: make([]int, 0, nz), J: make([]int, 0, nz), V: make([]complex128, 0, nz)}
	for k, v := range o.K.V {
		A.I = append(A.I, o.K.I[k])
		A.J = append(A.J, o.K.J[k])
		A.V = append(A.V, complex(v, 0))
	}
	mfac := -complex(omega*omega, 0) / complex(1, o.Sim.Data.Damping)
	for k, v := range o.M.V {
		A.I = append(A.I, o.M.I[k])
		A.J = append(A.J, o.M.J[k])
		A.V = append(A.V, mfac*complex(v, 0))
	}
	iw := complex(0, omega)
	for i, beta := range o.Adiag {
		if beta != 0 {
			A.I = append(A.I, i)
			A.J = append(A.J, i)
			A.V = append(A.V, iw*beta)
		}
	}
	return
}

// ForceVec builds the piston force vector at frequency f: zero everywhere
// except F[piston] = ω²・ρ0・u(f)
func (o *Domain) ForceVec(f float64) (F la.VectorC) {
	F = la.NewVectorC(o.Msh.Nn)
	omega := 2.0 * math.Pi * f
	for i, p := range o.Sim.Pistons {
		F[o.PistNodes[i]] += complex(omega*omega*o.Sim.Data.Rho0*p.UnAt(f), 0)
	}
	return
}

// sanity check used by tests
func (o *Domain) checkSizes() {
	chk.IntAssert(len(o.Adiag), o.Msh.Nn)
	chk.IntAssert(len(o.PistNodes), len(o.Sim.Pistons))
	chk.IntAssert(len(o.WallNodes), len(o.Sim.Walls))
}
