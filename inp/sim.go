// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Data holds global simulation data
type Data struct {
	Desc     string  `json:"desc"`     // description of simulation
	DirOut   string  `json:"dirout"`   // directory for output; e.g. /tmp/femacoustics
	Rho0     float64 `json:"rho0"`     // fluid density [kg/m³]; 0 => 1.2
	C0       float64 `json:"c0"`       // speed of sound [m/s]; 0 => 343
	Damping  float64 `json:"damping"`  // air damping coefficient η in 1/(1+i·η)
	L        float64 `json:"length"`   // tube length [m]
	Order    int     `json:"order"`    // shape order: 1 (lin2) or 2 (lin3); 0 => 2
	NePerLam int     `json:"neperlam"` // minimum elements per wavelength; 0 => 6
}

// Piston holds a piston source specification. The displacement amplitude is
// either the constant U or the piecewise-linear table Table=[[f,u],...]
type Piston struct {
	X     float64     `json:"x"`     // position [m]
	U     float64     `json:"u"`     // constant particle displacement amplitude [m]
	Table [][]float64 `json:"table"` // frequency-dependent amplitude; overrides U
}

// UnAt returns the particle displacement amplitude at frequency f. Table
// entries are interpolated linearly; frequencies outside the table range
// are clamped to the first/last entry.
func (o *Piston) UnAt(f float64) float64 {
	if len(o.Table) == 0 {
		return o.U
	}
	if f <= o.Table[0][0] {
		return o.Table[0][1]
	}
	n := len(o.Table)
	if f >= o.Table[n-1][0] {
		return o.Table[n-1][1]
	}
	i := sort.Search(n, func(i int) bool { return o.Table[i][0] >= f })
	f0, u0 := o.Table[i-1][0], o.Table[i-1][1]
	f1, u1 := o.Table[i][0], o.Table[i][1]
	return u0 + (u1-u0)*(f-f0)/(f1-f0)
}

// Wall holds one wall boundary specification: exactly one of Rigid, Alpha
// or Impedance must be set
type Wall struct {
	X         float64   `json:"x"`         // position [m]
	Rigid     bool      `json:"rigid"`     // fully reflective wall (β=0)
	Alpha     float64   `json:"alpha"`     // absorption coefficient ∈ (0,1)
	Impedance []float64 `json:"impedance"` // complex impedance [re, im]
}

// SweepData holds the frequency sweep range
type SweepData struct {
	Fmin float64 `json:"fmin"` // first frequency [Hz]
	Fmax float64 `json:"fmax"` // last frequency [Hz]
	Df   float64 `json:"df"`   // frequency step [Hz]
}

// Freqs expands the sweep into the list of frequency samples
func (o *SweepData) Freqs() (F []float64) {
	for f := o.Fmin; f <= o.Fmax+1e-9*o.Df; f += o.Df {
		F = append(F, f)
	}
	return
}

// LinSolData holds data for the per-frequency linear solver
type LinSolData struct {
	Name  string  `json:"name"`  // "umfpack" (direct sparse) or "gmres"; "" => umfpack
	Tol   float64 `json:"tol"`   // gmres: residual tolerance; 0 => 1e-10
	MaxIt int     `json:"maxit"` // gmres: maximum iterations; 0 => solver default
}

// Simulation holds all simulation input data
type Simulation struct {
	Data    Data       `json:"data"`    // global data
	Pistons []*Piston  `json:"pistons"` // piston sources
	Walls   []*Wall    `json:"walls"`   // wall boundaries; may be empty (rigid tube)
	Sweep   SweepData  `json:"sweep"`   // frequency sweep
	LinSol  LinSolData `json:"linsol"`  // linear solver options
}

// ReadSim reads, completes and validates a simulation from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	o.SetDefaults()
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// SetDefaults fills in unset values
func (o *Simulation) SetDefaults() {
	if o.Data.Rho0 == 0 {
		o.Data.Rho0 = 1.2
	}
	if o.Data.C0 == 0 {
		o.Data.C0 = 343
	}
	if o.Data.Order == 0 {
		o.Data.Order = 2
	}
	if o.Data.NePerLam == 0 {
		o.Data.NePerLam = 6
	}
	if o.LinSol.Name == "" {
		o.LinSol.Name = "umfpack"
	}
	if o.LinSol.Tol == 0 {
		o.LinSol.Tol = 1e-10
	}
}

// Validate checks all configuration values. Any error here aborts the run
// before mesh generation.
func (o *Simulation) Validate() (err error) {
	d := &o.Data
	if d.L <= 0 {
		return chk.Err("tube length must be positive. length=%g is invalid", d.L)
	}
	if d.Order != 1 && d.Order != 2 {
		return chk.Err("shape order %d is not available; must be 1 (lin2) or 2 (lin3)", d.Order)
	}
	if d.Rho0 <= 0 || d.C0 <= 0 {
		return chk.Err("fluid constants must be positive. rho0=%g, c0=%g", d.Rho0, d.C0)
	}
	if d.Damping < 0 {
		return chk.Err("damping coefficient must be non-negative. damping=%g", d.Damping)
	}
	if d.NePerLam < 1 {
		return chk.Err("minimum elements per wavelength must be at least 1. neperlam=%d", d.NePerLam)
	}
	if len(o.Pistons) == 0 {
		return chk.Err("at least one piston source is required")
	}
	for i, p := range o.Pistons {
		if p.X < 0 || p.X > d.L {
			return chk.Err("piston %d position x=%g is outside the tube [0,%g]", i, p.X, d.L)
		}
		for j, row := range p.Table {
			if len(row) != 2 {
				return chk.Err("piston %d table row %d must have 2 entries [f,u]", i, j)
			}
			if j > 0 && row[0] <= p.Table[j-1][0] {
				return chk.Err("piston %d table frequencies must be strictly increasing", i)
			}
		}
	}
	for i, w := range o.Walls {
		if w.X < 0 || w.X > d.L {
			return chk.Err("wall %d position x=%g is outside the tube [0,%g]", i, w.X, d.L)
		}
		nspec := 0
		if w.Rigid {
			nspec++
		}
		if w.Alpha != 0 {
			nspec++
			if w.Alpha <= 0 || w.Alpha >= 1 {
				return chk.Err("wall %d absorption coefficient must be within (0,1). alpha=%g", i, w.Alpha)
			}
		}
		if len(w.Impedance) > 0 {
			nspec++
			if len(w.Impedance) != 2 {
				return chk.Err("wall %d impedance must have 2 entries [re, im]", i)
			}
		}
		if nspec != 1 {
			return chk.Err("wall %d must set exactly one of rigid, alpha or impedance", i)
		}
	}
	s := &o.Sweep
	if s.Fmin <= 0 || s.Fmax < s.Fmin || s.Df <= 0 {
		return chk.Err("invalid sweep: fmin=%g, fmax=%g, df=%g", s.Fmin, s.Fmax, s.Df)
	}
	switch o.LinSol.Name {
	case "umfpack", "gmres":
	default:
		return chk.Err("linear solver %q is not available; must be \"umfpack\" or \"gmres\"", o.LinSol.Name)
	}
	return
}

// LamMin returns the smallest excitation wavelength of the sweep
func (o *Simulation) LamMin() float64 {
	return o.Data.C0 / o.Sweep.Fmax
}

// GetInfo returns a JSON dump of the simulation data
func (o *Simulation) GetInfo() string {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		chk.Panic("cannot marshal simulation data:\n%v", err)
	}
	return string(b)
}
