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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Span describes the contiguous part of an arena written by one
// tessellation call.
type Span struct {
	FirstVertex, NumVertices uint32
	FirstIndex, NumIndices   uint32
}

// IsEmpty reports whether the span contains no triangles.
func (s Span) IsEmpty() bool {
	return s.NumIndices == 0
}

// Arena collects vertices and indices while a mesh is being built.
// Data is only ever appended; the zero value is ready to use.
type Arena struct {
	vertices []Vertex
	indices  []uint32
	sealed   bool

	// maxVertices is the vertex capacity, zero means math.MaxUint32.
	maxVertices int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the current number of vertices and indices.
func (a *Arena) Len() (vertices, indices int) {
	return len(a.vertices), len(a.indices)
}

// Seal ends the build phase and returns the finished mesh.
// The arena must not be used for appending afterwards.
func (a *Arena) Seal() *Mesh {
	a.sealed = true
	return &Mesh{
		Vertices: a.vertices,
		Indices:  a.indices,
	}
}

// mark returns a span which records the current end of the arena.
func (a *Arena) mark() Span {
	return Span{
		FirstVertex: uint32(len(a.vertices)),
		FirstIndex:  uint32(len(a.indices)),
	}
}

// since returns the span covering everything appended after m was taken.
func (a *Arena) since(m Span) Span {
	m.NumVertices = uint32(len(a.vertices)) - m.FirstVertex
	m.NumIndices = uint32(len(a.indices)) - m.FirstIndex
	return m
}

// truncate removes everything appended after m was taken.
func (a *Arena) truncate(m Span) {
	a.vertices = a.vertices[:m.FirstVertex]
	a.indices = a.indices[:m.FirstIndex]
}

func (a *Arena) addVertex(v Vertex) (uint32, error) {
	if a.sealed {
		panic("svgmesh: append to sealed arena")
	}
	limit := a.maxVertices
	if limit == 0 {
		limit = math.MaxUint32
	}
	if len(a.vertices) >= limit {
		return 0, ErrMeshFull
	}
	idx := uint32(len(a.vertices))
	a.vertices = append(a.vertices, v)
	return idx, nil
}

func (a *Arena) addTriangle(i, j, k uint32) {
	if a.sealed {
		panic("svgmesh: append to sealed arena")
	}
	a.indices = append(a.indices, i, j, k)
}

// Mesh is an immutable triangle mesh.
// Every three consecutive indices form one triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Validate checks that the index list describes whole triangles and that
// every index refers to an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("svgmesh: %d indices do not form whole triangles", len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("svgmesh: index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Bounds returns the bounding box of all vertices referenced by triangles.
// The result is the zero rectangle for an empty mesh.
func (m *Mesh) Bounds() rect.Rect {
	var r rect.Rect
	first := true
	for _, idx := range m.Indices {
		p := m.Vertices[idx].Position
		x, y := float64(p[0]), float64(p[1])
		if first {
			r = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			first = false
			continue
		}
		r.LLx = min(r.LLx, x)
		r.LLy = min(r.LLy, y)
		r.URx = max(r.URx, x)
		r.URy = max(r.URy, y)
	}
	return r
}

// Area returns the sum of the (unsigned) triangle areas.
func (m *Mesh) Area() float64 {
	return m.SpanArea(Span{NumIndices: uint32(len(m.Indices))})
}

// SpanArea returns the sum of the (unsigned) triangle areas within s.
func (m *Mesh) SpanArea(s Span) float64 {
	area := 0.0
	idx := m.Indices[s.FirstIndex : s.FirstIndex+s.NumIndices]
	for i := 0; i+2 < len(idx); i += 3 {
		a := m.Vertices[idx[i]].Position
		b := m.Vertices[idx[i+1]].Position
		c := m.Vertices[idx[i+2]].Position
		ax, ay := float64(a[0]), float64(a[1])
		cross := (float64(b[0])-ax)*(float64(c[1])-ay) - (float64(b[1])-ay)*(float64(c[0])-ax)
		area += math.Abs(cross) / 2
	}
	return area
}
