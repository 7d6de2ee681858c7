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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   880,
	},
	{
		Name:   "triangle_evenodd",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)).Iter(),
		Op:     Fill{Rule: EvenOdd},
		Width:  64,
		Height: 64,
		Area:   880,
	},
	{
		Name:   "square",
		Path:   rect(10, 10, 44, 44).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   34 * 34,
	},
	{
		Name:   "square_counterclockwise",
		Path:   polygon(pt(10, 10), pt(10, 44), pt(44, 44), pt(44, 10)).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   34 * 34,
	},
	{
		Name:   "l_shape",
		Path:   polygon(pt(8, 8), pt(24, 8), pt(24, 40), pt(56, 40), pt(56, 56), pt(8, 56)).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   16*48 + 32*16,
	},
	{
		Name:   "bowtie",
		Path:   polygon(pt(12, 12), pt(52, 52), pt(52, 12), pt(12, 52)).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   800,
	},
	{
		Name:   "star_nonzero",
		Path:   star(32, 34, 25),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   starArea(25),
	},
	{
		Name:   "star_evenodd",
		Path:   star(32, 34, 25),
		Op:     Fill{Rule: EvenOdd},
		Width:  64,
		Height: 64,
		Area:   starArea(25) - StarPentagonArea(25),
	},
	{
		Name:   "comb",
		Path:   comb(4, 60, 8, 56, 7),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   7*(56.0/13)*40 + 56*8,
	},
}

// star returns a five-pointed star with outer radius r, drawn as one
// self-intersecting polygon.  The inner pentagon has winding number 2.
func star(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var pts [5]vec.Vec2
		for i := range pts {
			phi := 2*math.Pi*float64(i)/5 - math.Pi/2
			pts[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[0]}) {
			return
		}
		for _, i := range []int{2, 4, 1, 3} {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// StarPentagonArea returns the area of the pentagon in the middle of a
// five-pointed star with outer radius r.
func StarPentagonArea(r float64) float64 {
	inner := r * math.Cos(2*math.Pi/5) / math.Cos(math.Pi/5)
	return 2.5 * inner * inner * math.Sin(2*math.Pi/5)
}

// starArea returns the area enclosed by the outline of a five-pointed
// star with outer radius r.
func starArea(r float64) float64 {
	inner := r * math.Cos(2*math.Pi/5) / math.Cos(math.Pi/5)
	// ten triangles between the centre, a tip and a neighbouring notch
	return 10 * 0.5 * r * inner * math.Sin(math.Pi/5)
}

// comb returns a polygon with n teeth pointing downwards between x0 and
// x1.  The back of the comb is 8 units high.  The many local extrema exercise the sweep.
func comb(x0, x1, y0, y1 float64, n int) path.Path {
	d := &path.Data{}
	w := (x1 - x0) / float64(2*n-1)
	d.MoveTo(pt(x0, y0))
	d.LineTo(pt(x1, y0))
	for i := n - 1; i >= 0; i-- {
		left := x0 + float64(2*i)*w
		d.LineTo(pt(left+w, y1))
		d.LineTo(pt(left, y1))
		if i > 0 {
			d.LineTo(pt(left, y0+8))
			d.LineTo(pt(left-w, y0+8))
		}
	}
	d.Close()
	return d.Iter()
}
