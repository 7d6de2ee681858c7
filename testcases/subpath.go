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

package testcases

import (
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles().Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   2 * 0.5 * 24 * 20,
	},
	{
		Name:   "ring_same_nonzero",
		Path:   ring(false).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   1600,
	},
	{
		Name:   "ring_same_evenodd",
		Path:   ring(false).Iter(),
		Op:     Fill{Rule: EvenOdd},
		Width:  64,
		Height: 64,
		Area:   1200,
	},
	{
		Name:   "ring_opposite_nonzero",
		Path:   ring(true).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   1200,
	},
	{
		Name:   "overlap_nonzero",
		Path:   overlappingSquares().Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   2*900 - 225,
	},
	{
		Name:   "overlap_evenodd",
		Path:   overlappingSquares().Iter(),
		Op:     Fill{Rule: EvenOdd},
		Width:  64,
		Height: 64,
		Area:   2*900 - 2*225,
	},
	{
		Name:   "nested_evenodd",
		Path:   nestedSquares().Iter(),
		Op:     Fill{Rule: EvenOdd},
		Width:  64,
		Height: 64,
		Area:   48*48 - 32*32 + 16*16,
	},
	{
		Name:   "open_subpath",
		Path:   polyline(pt(10, 50), pt(32, 10), pt(54, 50)).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   880,
	},
	{
		Name:   "grid",
		Path:   grid(4, 4, 6, 14).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   16 * 36,
	},
	{
		Name:   "two_strokes",
		Path:   twoLines().Iter(),
		Op:     Stroke{Width: 4, MiterLimit: 10},
		Width:  64,
		Height: 64,
		Area:   2 * 40 * 4,
	},
}

func twoTriangles() *path.Data {
	d := &path.Data{}
	addPolygon(d, pt(6, 40), pt(18, 20), pt(30, 40))
	addPolygon(d, pt(34, 40), pt(46, 20), pt(58, 40))
	return d
}

// ring returns a square with a square hole.  If reverse is set, the hole
// is traced in the opposite direction.
func ring(reverse bool) *path.Data {
	d := rect(12, 12, 52, 52)
	inner := []vec.Vec2{pt(22, 22), pt(42, 22), pt(42, 42), pt(22, 42)}
	if reverse {
		slices.Reverse(inner)
	}
	addPolygon(d, inner...)
	return d
}

func overlappingSquares() *path.Data {
	d := rect(10, 10, 40, 40)
	addPolygon(d, pt(25, 25), pt(55, 25), pt(55, 55), pt(25, 55))
	return d
}

func nestedSquares() *path.Data {
	d := &path.Data{}
	for _, a := range []float64{8, 16, 24} {
		b := 64 - a
		addPolygon(d, pt(a, a), pt(b, a), pt(b, b), pt(a, b))
	}
	return d
}

// grid returns rows x cols squares of the given size, with their top-left
// corners step units apart.
func grid(rows, cols int, size, step float64) *path.Data {
	d := &path.Data{}
	for i := range rows {
		for j := range cols {
			x, y := 4+float64(j)*step, 4+float64(i)*step
			addPolygon(d, pt(x, y), pt(x+size, y), pt(x+size, y+size), pt(x, y+size))
		}
	}
	return d
}

func twoLines() *path.Data {
	d := &path.Data{}
	d.MoveTo(pt(12, 20))
	d.LineTo(pt(52, 20))
	d.MoveTo(pt(12, 44))
	d.LineTo(pt(52, 44))
	return d
}
