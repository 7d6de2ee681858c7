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

// Command export writes the tessellated test cases to
// testdata/meshes.json, for inspection and for comparison with other
// tessellators.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/svgmesh"
	"seehuhn.de/go/svgmesh/testcases"
	"seehuhn.de/go/svgmesh/testcases/casemesh"
)

func main() {
	var out struct {
		Meshes []jsonMesh `json:"meshes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			mesh, err := casemesh.Build(tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				continue
			}
			out.Meshes = append(out.Meshes, toJSON(name, tc, mesh))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/meshes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonMesh struct {
	Name         string       `json:"name"`
	Op           string       `json:"op"`
	FillRule     string       `json:"fill_rule,omitempty"`
	LineWidth    float64      `json:"line_width,omitempty"`
	LineCap      string       `json:"line_cap,omitempty"`
	LineJoin     string       `json:"line_join,omitempty"`
	Dash         []float64    `json:"dash,omitempty"`
	Area         float64      `json:"area"`
	ExpectedArea float64      `json:"expected_area,omitempty"`
	Vertices     [][2]float32 `json:"vertices"`
	Triangles    [][3]uint32  `json:"triangles"`
}

func toJSON(name string, tc testcases.TestCase, mesh *svgmesh.Mesh) jsonMesh {
	jm := jsonMesh{
		Name:         name,
		Area:         mesh.Area(),
		ExpectedArea: tc.Area,
		Vertices:     make([][2]float32, len(mesh.Vertices)),
		Triangles:    make([][3]uint32, 0, mesh.TriangleCount()),
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jm.Op = "fill"
		jm.FillRule = op.Rule.String()
	case testcases.Stroke:
		jm.Op = "stroke"
		jm.LineWidth = op.Width
		jm.LineCap = op.Cap.String()
		jm.LineJoin = op.Join.String()
		jm.Dash = op.Dash
	}

	for i, v := range mesh.Vertices {
		jm.Vertices[i] = v.Position
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		jm.Triangles = append(jm.Triangles, [3]uint32{mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]})
	}
	return jm
}
