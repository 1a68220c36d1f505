// Copyright 2017 The FEMAcoustics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Vert2 holds one vertex of an imported 2D mesh
type Vert2 struct {
	Id int       `json:"id"` // vertex id
	C  []float64 `json:"c"`  // coordinates [x, y]
}

// Tri holds one triangular cell of an imported 2D mesh
type Tri struct {
	Id    int   `json:"id"`    // cell id
	Tag   int   `json:"tag"`   // material/domain tag
	Verts []int `json:"verts"` // 3 vertex ids
}

// Edge holds one boundary edge of an imported 2D mesh
type Edge struct {
	Tag   int   `json:"tag"`   // boundary tag
	Verts []int `json:"verts"` // 2 vertex ids
}

// Mesh2D holds an externally generated 2D mesh. It is a pre-processing
// collaborator only: the solver consumes plain node/element/boundary-node
// arrays, never this structure.
type Mesh2D struct {
	Verts []*Vert2 `json:"verts"` // vertices
	Cells []*Tri   `json:"cells"` // triangles
	Edges []*Edge  `json:"edges"` // boundary edges
}

// Read2D reads a 2D mesh from a JSON file
func Read2D(fn string) (o *Mesh2D, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read 2D mesh file %q:\n%v", fn, err)
	}
	o = new(Mesh2D)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse 2D mesh file %q:\n%v", fn, err)
	}
	for _, v := range o.Verts {
		if len(v.C) < 2 {
			return nil, chk.Err("vertex %d has %d coordinates; 2 are required", v.Id, len(v.C))
		}
	}
	for _, e := range o.Edges {
		for _, id := range e.Verts {
			if id < 0 || id >= len(o.Verts) {
				return nil, chk.Err("edge refers to invalid vertex id %d", id)
			}
		}
	}
	return
}

// FilterEdges returns the edges for which keep returns true, preserving
// order. The active boundary set of a simulation is built by filtering out
// nested internal boundaries (e.g. a component casing) with a predicate.
func (o *Mesh2D) FilterEdges(keep func(*Edge) bool) (edges []*Edge) {
	for _, e := range o.Edges {
		if keep(e) {
			edges = append(edges, e)
		}
	}
	return
}

// InsideRect returns a predicate that is true when all vertices of an edge
// lie inside the closed rectangle [xmin,xmax]×[ymin,ymax]
func (o *Mesh2D) InsideRect(xmin, ymin, xmax, ymax float64) func(*Edge) bool {
	return func(e *Edge) bool {
		for _, id := range e.Verts {
			c := o.Verts[id].C
			if c[0] < xmin || c[0] > xmax || c[1] < ymin || c[1] > ymax {
				return false
			}
		}
		return true
	}
}

// Not negates an edge predicate
func Not(pred func(*Edge) bool) func(*Edge) bool {
	return func(e *Edge) bool { return !pred(e) }
}

// BoundaryNodes returns the sorted unique vertex ids touched by edges
func BoundaryNodes(edges []*Edge) (nodes []int) {
	seen := make(map[int]bool)
	for _, e := range edges {
		for _, id := range e.Verts {
			if !seen[id] {
				seen[id] = true
				nodes = append(nodes, id)
			}
		}
	}
	sort.Ints(nodes)
	return
}
