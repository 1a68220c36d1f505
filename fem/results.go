// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// Sample holds the reduced output of one frequency sample
type Sample struct {
	F   float64 `json:"f"`             // frequency [Hz]
	SPL float64 `json:"spl"`           // mean RMS pressure level [dB re 2e-5 Pa]
	Pq  float64 `json:"pq"`            // space-averaged quadratic pressure [Pa²]
	Err string  `json:"err,omitempty"` // per-sample numerical failure; empty on success
}

// Failed tells whether this sample failed numerically
func (o *Sample) Failed() bool {
	return o.Err != ""
}

// Results holds the output of a frequency sweep
type Results struct {
	Samples []*Sample `json:"samples"`
}

// Nfailed returns the number of failed samples
func (o *Results) Nfailed() (n int) {
	for _, s := range o.Samples {
		if s.Failed() {
			n++
		}
	}
	return
}

// AllSolved distinguishes a fully solved sweep from one with singular
// samples
func (o *Results) AllSolved() bool {
	return o.Nfailed() == 0
}

// Curve returns the (frequency, SPL) pairs of the successful samples
func (o *Results) Curve() (F, SPL []float64) {
	for _, s := range o.Samples {
		if !s.Failed() {
			F = append(F, s.F)
			SPL = append(SPL, s.SPL)
		}
	}
	return
}

// PqCurve returns the (frequency, quadratic pressure) pairs of the
// successful samples
func (o *Results) PqCurve() (F, Pq []float64) {
	for _, s := range o.Samples {
		if !s.Failed() {
			F = append(F, s.F)
			Pq = append(Pq, s.Pq)
		}
	}
	return
}
