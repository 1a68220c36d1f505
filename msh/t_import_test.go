// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// square domain with a nested inner square; outer edges tagged -10,
// inner (casing) edges tagged -11
var mesh2Dtest = `{
  "verts": [
    {"id":0, "c":[0.0, 0.0]},
    {"id":1, "c":[4.0, 0.0]},
    {"id":2, "c":[4.0, 4.0]},
    {"id":3, "c":[0.0, 4.0]},
    {"id":4, "c":[1.5, 1.5]},
    {"id":5, "c":[2.5, 1.5]},
    {"id":6, "c":[2.5, 2.5]},
    {"id":7, "c":[1.5, 2.5]}
  ],
  "cells": [
    {"id":0, "tag":1, "verts":[0,1,4]},
    {"id":1, "tag":1, "verts":[1,5,4]},
    {"id":2, "tag":1, "verts":[1,2,5]},
    {"id":3, "tag":1, "verts":[2,3,6]},
    {"id":4, "tag":1, "verts":[3,7,6]},
    {"id":5, "tag":1, "verts":[3,0,7]},
    {"id":6, "tag":1, "verts":[0,4,7]},
    {"id":7, "tag":1, "verts":[2,6,5]}
  ],
  "edges": [
    {"tag":-10, "verts":[0,1]},
    {"tag":-10, "verts":[1,2]},
    {"tag":-10, "verts":[2,3]},
    {"tag":-10, "verts":[3,0]},
    {"tag":-11, "verts":[4,5]},
    {"tag":-11, "verts":[5,6]},
    {"tag":-11, "verts":[6,7]},
    {"tag":-11, "verts":[7,4]}
  ]
}`

func Test_import01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("import01. 2D mesh import and boundary-edge filtering")

	fn := filepath.Join(tst.TempDir(), "square.msh")
	err := os.WriteFile(fn, []byte(mesh2Dtest), 0644)
	if err != nil {
		tst.Errorf("cannot write test mesh: %v\n", err)
		return
	}

	m, err := Read2D(fn)
	if err != nil {
		tst.Errorf("Read2D failed: %v\n", err)
		return
	}
	chk.Int(tst, "nverts", len(m.Verts), 8)
	chk.Int(tst, "ncells", len(m.Cells), 8)
	chk.Int(tst, "nedges", len(m.Edges), 8)

	// exclude the nested casing boundary by rectangle membership
	inner := m.InsideRect(1.0, 1.0, 3.0, 3.0)
	active := m.FilterEdges(Not(inner))
	chk.Int(tst, "active edges", len(active), 4)
	for _, e := range active {
		chk.Int(tst, "active tag", e.Tag, -10)
	}

	chk.Ints(tst, "boundary nodes", BoundaryNodes(active), []int{0, 1, 2, 3})
	chk.Ints(tst, "excluded nodes", BoundaryNodes(m.FilterEdges(inner)), []int{4, 5, 6, 7})
}

func Test_import02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("import02. invalid 2D mesh files")

	if _, err := Read2D(filepath.Join(tst.TempDir(), "missing.msh")); err == nil {
		tst.Errorf("missing file should have failed\n")
	}

	fn := filepath.Join(tst.TempDir(), "bad.msh")
	os.WriteFile(fn, []byte(`{"verts": [{"id":0, "c":[0.0]}]}`), 0644)
	if _, err := Read2D(fn); err == nil {
		tst.Errorf("1-coordinate vertex should have failed\n")
	}

	fn2 := filepath.Join(tst.TempDir(), "badedge.msh")
	os.WriteFile(fn2, []byte(`{"verts": [{"id":0,"c":[0,0]}], "edges": [{"tag":-1,"verts":[0,9]}]}`), 0644)
	if _, err := Read2D(fn2); err == nil {
		tst.Errorf("out-of-range edge vertex should have failed\n")
	}
}
