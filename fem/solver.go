// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"runtime"
	"sync"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Pref is the reference sound pressure of the dB scale [Pa]
const Pref = 2e-5

// Lp converts an RMS pressure into a sound pressure level [dB]
func Lp(prms float64) float64 {
	return 20.0 * math.Log10(prms/Pref)
}

// SolveFreq runs one frequency sample: assembles Matrix(ω) and the force
// vector, solves for the nodal pressure and reduces it to the scalar
// metrics. A numerical failure is recorded in the sample, not propagated;
// the sweep continues with the next frequency.
func (o *Domain) SolveFreq(sol LinSolver, f float64) (smp *Sample) {
	smp = &Sample{F: f}
	omega := 2.0 * math.Pi * f
	P, err := sol.Solve(o.SystemMat(omega), o.ForceVec(f))
	if err != nil {
		smp.Err = err.Error()
		return
	}
	smp.SPL, smp.Pq = o.reduce(P)
	return
}

// reduce computes the scalar metrics of a nodal pressure field:
//  spl -- level of the mean RMS pressure across nodes, 20・log10(mean(|P|/√2)/Pref)
//  pq  -- space-averaged quadratic pressure c0²・Re(Pᴴ・M・P)/(2L), accumulated
//         from the element mass blocks
func (o *Domain) reduce(P la.VectorC) (spl, pq float64) {
	sum := 0.0
	for _, p := range P {
		re, im := real(p), imag(p)
		sum += math.Sqrt(re*re+im*im) / math.Sqrt2
	}
	spl = Lp(sum / float64(len(P)))

	for _, c := range o.Msh.Cells {
		for i, I := range c.Verts {
			for j, J := range c.Verts {
				pi, pj := P[I], P[J]
				pq += o.Me[i][j] * (real(pi)*real(pj) + imag(pi)*imag(pj))
			}
		}
	}
	c0 := o.Sim.Data.C0
	pq *= c0 * c0 / (2.0 * o.Sim.Data.L)
	return
}

// Run runs the frequency sweep serially
func (o *Domain) Run(verbose bool) (res *Results, err error) {
	sol, err := NewLinSolver(&o.Sim.LinSol)
	if err != nil {
		return
	}
	F := o.Sim.Sweep.Freqs()
	res = &Results{Samples: make([]*Sample, len(F))}
	for i, f := range F {
		res.Samples[i] = o.SolveFreq(sol, f)
		if verbose {
			s := res.Samples[i]
			if s.Failed() {
				io.Pforan("f = %8.2f Hz  FAILED: %v\n", s.F, s.Err)
			} else {
				io.Pf("f = %8.2f Hz  Lp = %8.3f dB\n", s.F, s.SPL)
			}
		}
	}
	return
}

// RunParallel runs the frequency sweep with nw workers (nw ≤ 0 means
// NumCPU). Samples are independent: workers share the read-only K, M, A
// and allocate their own Matrix(ω), F and P, so no locking is needed.
// The result is identical to Run.
func (o *Domain) RunParallel(nw int) (res *Results, err error) {
	if nw <= 0 {
		nw = runtime.NumCPU()
	}

	// each worker gets its own solver instance
	sols := make([]LinSolver, nw)
	for i := 0; i < nw; i++ {
		sols[i], err = NewLinSolver(&o.Sim.LinSol)
		if err != nil {
			return
		}
	}

	F := o.Sim.Sweep.Freqs()
	res = &Results{Samples: make([]*Sample, len(F))}
	jobs := make(chan int, len(F))
	for i := range F {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		go func(sol LinSolver) {
			defer wg.Done()
			for i := range jobs {
				res.Samples[i] = o.SolveFreq(sol, F[i])
			}
		}(sols[w])
	}
	wg.Wait()
	return
}
