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

import "math"

var precisionCases = []TestCase{
	{
		Name:   "thin_sliver",
		Path:   rect(10, 10, 54, 10.1).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   44 * 0.1,
	},
	{
		Name:   "almost_horizontal",
		Path:   polygon(pt(10, 30), pt(54, 30.0001), pt(54, 40), pt(10, 40)).Iter(),
		Op:     Fill{Rule: NonZero},
		Width:  64,
		Height: 64,
		Area:   440 - 0.5*44*0.0001,
	},
	{
		Name:   "fractional_corners",
		Path:   rect(10.3, 10.7, 53.9, 41.2).Iter(),
		Op:     Fill{Rule: EvenOdd},
		Width:  64,
		Height: 64,
		Area:   (53.9 - 10.3) * (41.2 - 10.7),
	},
	{
		Name: "large_offset",
		Path: rect(1e6, 1e6, 1e6+10, 1e6+10).Iter(),
		Op:   Fill{Rule: NonZero},
		Area: 100,
	},
	{
		Name: "tiny_triangle",
		Path: polygon(pt(1, 1), pt(1.1, 1), pt(1, 1.1)).Iter(),
		Op:   Fill{Rule: NonZero},
		Area: 0.005,
	},
	{
		Name: "far_circle",
		Path: circle(1e5, 1e5, 10).Iter(),
		Op:   Fill{Rule: NonZero},
		Area: 100 * math.Pi,
	},
}
