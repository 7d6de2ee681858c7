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
	"seehuhn.de/go/pdf/graphics"
)

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 20).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   400 * math.Pi,
	},
	{
		Name:   "circle_small",
		Path:   circle(8.5, 8.5, 1.5).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  16,
		Height: 16,
		Area:   2.25 * math.Pi,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 25, 15).Iter(),
		Op:     Fill{Rule: EvenOdd},
		Width:  64,
		Height: 64,
		Area:   375 * math.Pi,
	},
	{
		Name:   "parabolic_segment",
		Path:   quadSegment(10, 50, 32, 0, 54, 50).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   2.0 / 3 * 1100,
	},
	{
		Name:   "cubic_lens",
		Path:   cubicLens().Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_outline",
		Path:   circle(32, 32, 20).Iter(),
		Op:     Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound, MiterLimit: 10},
		Width:  64,
		Height: 64,
		Area:   2 * math.Pi * 20 * 4,
	},
	{
		Name:   "s_curve_stroke",
		Path:   sCurve().Iter(),
		Op:     Stroke{Width: 5, Cap: graphics.LineCapRound, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quarter_arc_stroke",
		Path:   quarterArc(12, 52, 40).Iter(),
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Width:  64,
		Height: 64,
		Area:   math.Pi / 2 * 40 * 6,
	},
}

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498307936

func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx, ky := kappa*rx, kappa*ry
	d := &path.Data{}
	d.MoveTo(pt(cx+rx, cy))
	d.CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry))
	d.CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy))
	d.CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry))
	d.CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy))
	d.Close()
	return d
}

func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// quadSegment returns the region between a quadratic curve and its chord.
func quadSegment(x0, y0, cx, cy, x1, y1 float64) *path.Data {
	d := &path.Data{}
	d.MoveTo(pt(x0, y0))
	d.QuadTo(pt(cx, cy), pt(x1, y1))
	d.Close()
	return d
}

// cubicLens returns a region bounded by two cubic curves.
func cubicLens() *path.Data {
	d := &path.Data{}
	d.MoveTo(pt(8, 32))
	d.CubeTo(pt(20, 4), pt(44, 4), pt(56, 32))
	d.CubeTo(pt(44, 60), pt(20, 60), pt(8, 32))
	d.Close()
	return d
}

func sCurve() *path.Data {
	d := &path.Data{}
	d.MoveTo(pt(8, 52))
	d.CubeTo(pt(60, 52), pt(4, 12), pt(56, 12))
	return d
}

// quarterArc returns a quarter circle of radius r around (cx, cy),
// from the top of the circle to its right.
func quarterArc(cx, cy, r float64) *path.Data {
	d := &path.Data{}
	d.MoveTo(pt(cx, cy-r))
	d.CubeTo(pt(cx+kappa*r, cy-r), pt(cx+r, cy-kappa*r), pt(cx+r, cy))
	return d
}
