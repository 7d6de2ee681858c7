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

func dashed(width float64, lineCap graphics.LineCapStyle, phase float64, dash ...float64) Stroke {
	return Stroke{
		Width:      width,
		Cap:        lineCap,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
		Dash:       dash,
		DashPhase:  phase,
	}
}

var dashCases = []TestCase{
	{
		Name:   "even",
		Path:   polyline(pt(7, 32), pt(57, 32)).Iter(),
		Op:     dashed(4, graphics.LineCapButt, 0, 10),
		Width:  64,
		Height: 64,
		Area:   3 * 10 * 4,
	},
	{
		Name:   "phase",
		Path:   polyline(pt(10, 32), pt(54, 32)).Iter(),
		Op:     dashed(6, graphics.LineCapButt, 3, 10, 5),
		Width:  64,
		Height: 64,
		Area:   (7 + 10 + 10 + 2) * 6,
	},
	{
		Name:   "square_caps",
		Path:   polyline(pt(10, 32), pt(50, 32)).Iter(),
		Op:     dashed(4, graphics.LineCapSquare, 0, 8, 8),
		Width:  64,
		Height: 64,
		Area:   3 * (8 + 4) * 4,
	},
	{
		Name:   "dots",
		Path:   polyline(pt(12, 32), pt(56, 32)).Iter(),
		Op:     dashed(8, graphics.LineCapRound, 0, 0, 20),
		Width:  64,
		Height: 64,
		Area:   3 * 16 * math.Pi,
	},
	{
		Name:   "closed_square",
		Path:   rect(17, 17, 47, 47).Iter(),
		Op:     dashed(4, graphics.LineCapButt, 0, 15, 15),
		Width:  64,
		Height: 64,
		Area:   4 * 15 * 4,
	},
	{
		Name:   "around_corner",
		Path:   polyline(pt(12, 52), pt(12, 12), pt(52, 12)).Iter(),
		Op:     dashed(4, graphics.LineCapButt, 0, 50, 10),
		Width:  64,
		Height: 64,
		Area:   50*4 + 20*4,
	},
	{
		Name:   "merged_at_start",
		Path:   rect(12, 12, 52, 52).Iter(),
		Op:     dashed(4, graphics.LineCapButt, 30, 40, 20),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "invalid_pattern",
		Path:   polyline(pt(10, 32), pt(54, 32)).Iter(),
		Op:     dashed(4, graphics.LineCapButt, 0, 0, 0),
		Width:  64,
		Height: 64,
		Area:   44 * 4,
	},
}
