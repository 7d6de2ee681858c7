// seehuhn.de/go/svgmesh - tessellate SVG drawings into triangle meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package casemesh tessellates the shared test cases.
package casemesh

import (
	"fmt"

	"seehuhn.de/go/svgmesh"
	"seehuhn.de/go/svgmesh/svgdoc"
	"seehuhn.de/go/svgmesh/testcases"
)

// Build returns the mesh for a single test case, using the default
// tolerance.  All vertices are black and opaque.
func Build(tc testcases.TestCase) (*svgmesh.Mesh, error) {
	arena := svgmesh.NewArena()
	t := svgmesh.NewTessellator()
	ctor := svgmesh.NewVertexCtor(svgdoc.FallbackColor, 1)

	var err error
	switch op := tc.Op.(type) {
	case testcases.Fill:
		opts := svgmesh.DefaultFillOptions()
		if op.Rule == testcases.EvenOdd {
			opts.Rule = svgmesh.EvenOdd
		}
		_, err = t.Fill(tc.Path, opts, ctor, arena)
	case testcases.Stroke:
		_, err = t.Stroke(tc.Path, StrokeOptions(op), ctor, arena)
	default:
		return nil, fmt.Errorf("%s: unknown operation %T", tc.Name, tc.Op)
	}
	if err != nil {
		return nil, err
	}
	return arena.Seal(), nil
}

// StrokeOptions converts the stroke parameters of a test case.
func StrokeOptions(op testcases.Stroke) svgmesh.StrokeOptions {
	return svgmesh.StrokeOptions{
		Tolerance:  svgmesh.DefaultTolerance,
		Width:      op.Width,
		Cap:        op.Cap,
		Join:       op.Join,
		MiterLimit: op.MiterLimit,
		Dash:       op.Dash,
		DashPhase:  op.DashPhase,
	}
}
