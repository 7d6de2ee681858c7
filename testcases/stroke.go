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

	"seehuhn.de/go/pdf/graphics"
)

func stroke(width float64, lineCap graphics.LineCapStyle, join graphics.LineJoinStyle) Stroke {
	return Stroke{Width: width, Cap: lineCap, Join: join, MiterLimit: 10}
}

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   polyline(pt(10, 32), pt(54, 32)).Iter(),
		Op:     stroke(8, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
		Area:   44 * 8,
	},
	{
		Name:   "line_square",
		Path:   polyline(pt(10, 32), pt(54, 32)).Iter(),
		Op:     stroke(8, graphics.LineCapSquare, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
		Area:   52 * 8,
	},
	{
		Name:   "line_round",
		Path:   polyline(pt(10, 32), pt(54, 32)).Iter(),
		Op:     stroke(8, graphics.LineCapRound, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
		Area:   44*8 + 16*math.Pi,
	},
	{
		Name:   "line_diagonal",
		Path:   polyline(pt(10, 10), pt(50, 40)).Iter(),
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
		Area:   50 * 6,
	},
	{
		Name:   "line_hairline",
		Path:   polyline(pt(10, 32.25), pt(54, 32.25)).Iter(),
		Op:     stroke(0.5, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
		Area:   22,
	},
	{
		Name:   "right_angle_miter",
		Path:   polyline(pt(10, 50), pt(10, 10), pt(50, 10)).Iter(),
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
		Area:   480,
	},
	{
		Name:   "right_angle_bevel",
		Path:   polyline(pt(10, 50), pt(10, 10), pt(50, 10)).Iter(),
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinBevel),
		Width:  64,
		Height: 64,
		Area:   475.5,
	},
	{
		Name:   "right_angle_round",
		Path:   polyline(pt(10, 50), pt(10, 10), pt(50, 10)).Iter(),
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinRound),
		Width:  64,
		Height: 64,
		Area:   471 + 9*math.Pi/4,
	},
	{
		Name:   "sharp_corner_miter",
		Path:   polyline(pt(10, 54), pt(32, 10), pt(54, 54)).Iter(),
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "sharp_corner_limited",
		Path:   polyline(pt(10, 54), pt(32, 10), pt(54, 54)).Iter(),
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 1.5},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "closed_square",
		Path:   rect(12, 12, 52, 52).Iter(),
		Op:     stroke(4, graphics.LineCapButt, graphics.LineJoinMiter),
		Width:  64,
		Height: 64,
		Area:   4 * 40 * 4,
	},
	{
		Name:   "closed_triangle_round",
		Path:   polygon(pt(12, 52), pt(32, 12), pt(52, 52)).Iter(),
		Op:     stroke(5, graphics.LineCapButt, graphics.LineJoinRound),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag_bevel",
		Path:   polyline(pt(6, 40), pt(18, 20), pt(30, 40), pt(42, 20), pt(54, 40)).Iter(),
		Op:     stroke(4, graphics.LineCapRound, graphics.LineJoinBevel),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "reversal",
		Path:   polyline(pt(12, 32), pt(52, 32), pt(24, 32)).Iter(),
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinRound),
		Width:  64,
		Height: 64,
	},
}
