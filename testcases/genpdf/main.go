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

// Command genpdf draws the tessellated test cases as PDF files, one page
// per case, with the triangle edges outlined.  The files are written to
// testdata/meshes.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/svgmesh"
	"seehuhn.de/go/svgmesh/testcases"
	"seehuhn.de/go/svgmesh/testcases/casemesh"
)

const outDir = "testdata/meshes"

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Width == 0 || tc.Height == 0 {
				continue
			}
			name := category + "_" + tc.Name
			mesh, err := casemesh.Build(tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				continue
			}
			if err := writePDF(tc, mesh, filepath.Join(outDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// scale is the number of PDF points per test case pixel.
const scale = 8

func writePDF(tc testcases.TestCase, mesh *svgmesh.Mesh, fname string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width * scale),
		URy: float64(tc.Height * scale),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases use top-left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, float64(tc.Height * scale)})

	addTriangles := func() {
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			a := mesh.Vertices[mesh.Indices[i]].Position
			b := mesh.Vertices[mesh.Indices[i+1]].Position
			c := mesh.Vertices[mesh.Indices[i+2]].Position
			page.MoveTo(float64(a[0]), float64(a[1]))
			page.LineTo(float64(b[0]), float64(b[1]))
			page.LineTo(float64(c[0]), float64(c[1]))
			page.ClosePath()
		}
	}

	page.SetFillColor(color.DeviceGray(0.8))
	addTriangles()
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5 / scale)
	addTriangles()
	page.Stroke()

	return page.Close()
}
