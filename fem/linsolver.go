// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/vladimir-ch/iterative"

	"github.com/felixpfreundtner/FEMAcoustics/inp"
)

// LinSolver solves one complex linear system Matrix(ω)・P = F. The system is
// generally non-symmetric once damping and impedance terms are present, so
// implementations must be general solvers.
type LinSolver interface {
	Solve(A *SysMat, b la.VectorC) (x la.VectorC, err error)
}

// allocators holds all available linear solvers
var allocators = make(map[string]func(cfg *inp.LinSolData) LinSolver)

func init() {
	allocators["umfpack"] = func(cfg *inp.LinSolData) LinSolver {
		return new(SpDirect)
	}
	allocators["gmres"] = func(cfg *inp.LinSolData) LinSolver {
		return &Gmres{Tol: cfg.Tol, MaxIt: cfg.MaxIt}
	}
}

// NewLinSolver returns a linear solver by name
func NewLinSolver(cfg *inp.LinSolData) (LinSolver, error) {
	alloc, ok := allocators[cfg.Name]
	if !ok {
		return nil, chk.Err("cannot find linear solver named %q", cfg.Name)
	}
	return alloc(cfg), nil
}

// SpDirect is the direct sparse solver (UMFPACK, complex)
type SpDirect struct{}

// Solve solves A・x = b with the complex UMFPACK factorisation. A singular
// or badly conditioned matrix (undamped resonance) surfaces as an error on
// this sample, never as a silent NaN field.
func (o *SpDirect) Solve(A *SysMat, b la.VectorC) (x la.VectorC, err error) {
	defer func() {
		if r := recover(); r != nil {
			x = nil
			err = chk.Err("direct sparse solver failed: %v", r)
		}
	}()
	T := la.NewTripletC(A.N, A.N, len(A.V))
	for k := range A.V {
		T.Put(A.I[k], A.J[k], A.V[k])
	}
	x = la.SpSolveC(T, b)
	if hasBad(x) {
		return nil, chk.Err("direct sparse solver produced NaN/Inf values (singular system)")
	}
	return
}

// Gmres is the iterative alternative for larger meshes. The complex N×N
// system is embedded as the real 2N×2N system
//  [ Re(A) -Im(A) ] [ Re(x) ]   [ Re(b) ]
//  [ Im(A)  Re(A) ] [ Im(x) ] = [ Im(b) ]
// and solved matrix-free from the assembled coordinate entries.
type Gmres struct {
	Tol   float64 // residual tolerance
	MaxIt int     // maximum number of iterations; 0 => solver default
}

// Solve solves A・x = b with restarted GMRES
func (o *Gmres) Solve(A *SysMat, b la.VectorC) (x la.VectorC, err error) {
	n := A.N
	br := make([]float64, 2*n)
	for i, v := range b {
		br[i] = real(v)
		br[n+i] = imag(v)
	}
	ops := iterative.MatrixOps{
		MatVec: func(dst, src []float64) {
			for i := range dst {
				dst[i] = 0
			}
			for k, v := range A.V {
				i, j := A.I[k], A.J[k]
				re, im := real(v), imag(v)
				dst[i] += re*src[j] - im*src[n+j]
				dst[n+i] += im*src[j] + re*src[n+j]
			}
		},
	}
	settings := iterative.Settings{Tolerance: o.Tol, MaxIterations: o.MaxIt}
	res, err := iterative.LinearSolve(ops, br, &iterative.GMRES{}, settings)
	if err != nil {
		return nil, chk.Err("gmres solver failed: %v", err)
	}
	x = la.NewVectorC(n)
	for i := 0; i < n; i++ {
		x[i] = complex(res.X[i], res.X[n+i])
	}
	if hasBad(x) {
		return nil, chk.Err("gmres solver produced NaN/Inf values (singular system)")
	}
	return
}

// hasBad tells whether the solution contains NaN or Inf entries
func hasBad(x la.VectorC) bool {
	for _, v := range x {
		re, im := real(v), imag(v)
		if math.IsNaN(re) || math.IsNaN(im) || math.IsInf(re, 0) || math.IsInf(im, 0) {
			return true
		}
	}
	return false
}
