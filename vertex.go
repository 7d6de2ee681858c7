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

package svgmesh

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgmesh/svgdoc"
)

// Vertex is one mesh vertex, in the layout consumed by the device.
type Vertex struct {
	// Position is in document units.
	Position [2]float32

	// Color holds red, green, blue in [0, 1] and the paint opacity as alpha.
	Color [4]float32
}

// VertexCtor builds the vertices for one fill or stroke pass.
// The color is fixed when the constructor is created.
type VertexCtor struct {
	color [4]float32
}

// NewVertexCtor returns a constructor for vertices of the given color.
// The opacity is clamped to [0, 1]; NaN is treated as 0.
func NewVertexCtor(c svgdoc.Color, opacity float64) VertexCtor {
	if !(opacity > 0) {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return VertexCtor{
		color: [4]float32{
			float32(c.R) / 255,
			float32(c.G) / 255,
			float32(c.B) / 255,
			float32(opacity),
		},
	}
}

// Vertex returns the vertex at position p.
func (c VertexCtor) Vertex(p vec.Vec2) Vertex {
	return Vertex{
		Position: [2]float32{float32(p.X), float32(p.Y)},
		Color:    c.color,
	}
}

// Color returns the RGBA color attached to all vertices.
func (c VertexCtor) Color() [4]float32 {
	return c.color
}

// finite reports whether p can be stored in a vertex.
// The comparisons are false for NaN.
func finite(p vec.Vec2) bool {
	return math.Abs(p.X) <= math.MaxFloat32 && math.Abs(p.Y) <= math.MaxFloat32
}
