// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting of frequency-sweep results: tables,
// plots and files consumed by external plotting tools
package out

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"gonum.org/v1/gonum/integrate"

	"github.com/felixpfreundtner/FEMAcoustics/fem"
)

// Table prints the sweep results, flagging failed samples
func Table(res *fem.Results) {
	io.Pf("%10s%14s%16s\n", "f [Hz]", "Lp [dB]", "Pq [Pa²]")
	for _, s := range res.Samples {
		if s.Failed() {
			io.Pforan("%10.2f  solve failed: %v\n", s.F, s.Err)
			continue
		}
		io.Pf("%10.2f%14.4f%16.6e\n", s.F, s.SPL, s.Pq)
	}
	if !res.AllSolved() {
		io.PfRed("%d of %d samples failed\n", res.Nfailed(), len(res.Samples))
	}
}

// Plot plots the SPL sweep, optionally overlaid with an analytical curve
// (pass nil to skip the overlay)
func Plot(dirout, fnkey string, res *fem.Results, anaF, anaL []float64) {
	F, SPL := res.Curve()
	plt.Reset(true, nil)
	plt.Plot(F, SPL, &plt.A{C: "r", L: "fem"})
	if len(anaF) > 0 {
		plt.Plot(anaF, anaL, &plt.A{C: "b", Ls: "--", L: "ana"})
	}
	plt.Gll("$f$ [Hz]", "$L_p$ [dB]", nil)
	plt.Save(dirout, fnkey)
}

// SaveJSON writes the sweep results to dirout/fnkey.json
func SaveJSON(dirout, fnkey string, res *fem.Results) (fn string, err error) {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", chk.Err("cannot marshal results:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0755)
	if err != nil {
		return "", chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}
	fn = filepath.Join(dirout, fnkey+".json")
	err = os.WriteFile(fn, b, 0644)
	if err != nil {
		return "", chk.Err("cannot write results file %q:\n%v", fn, err)
	}
	return
}

// MeanSquare returns the spatial average of the sampled field Y over the
// coordinates X by trapezoidal integration. Used to cross-check the
// element-mass quadratic-form average of the solver.
func MeanSquare(X, Y []float64) float64 {
	return integrate.Trapezoidal(X, Y) / (X[len(X)-1] - X[0])
}

// Peaks returns the indices of strict interior local maxima of Y
func Peaks(Y []float64) (idx []int) {
	for i := 1; i < len(Y)-1; i++ {
		if Y[i] > Y[i-1] && Y[i] > Y[i+1] {
			idx = append(idx, i)
		}
	}
	return
}
