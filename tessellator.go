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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment, oriented so that y0 < y1.
type edge struct {
	x0, y0 float64 // upper end point
	x1, y1 float64 // lower end point
	dir    int     // +1 if the path runs towards larger y, -1 otherwise
}

// xAt returns the x coordinate of the edge at height y.
// The end points are returned exactly, so that neighbouring trapezoids
// share their corner vertices.
func (e *edge) xAt(y float64) float64 {
	switch y {
	case e.y0:
		return e.x0
	case e.y1:
		return e.x1
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + t*(e.x1-e.x0)
}

// Tessellator converts paths into triangles.
// The caller creates one instance and reuses it for all paths of a
// document.  Internal buffers grow as needed but never shrink.
// A Tessellator must not be used concurrently.
type Tessellator struct {
	tolerance float64

	// per-call output state
	arena       *Arena
	ctor        VertexCtor
	vertexIndex map[vec.Vec2]uint32

	// sweep buffers
	edges  []edge     // edge list for the current path
	ys     []float64  // distinct edge end point heights
	active []int      // indices of edges overlapping the current band
	band   []bandEdge // active edges, sorted by x within one band

	// stroke state
	strokeOpts       StrokeOptions
	outline          []vec.Vec2      // stroke outline vertices (all polygons contiguous)
	outlineOffsets   []int           // start index of each polygon in outline
	segs             []strokeSegment // all segments from all subpaths, contiguous
	segsOffsets      []int           // start index of each subpath in segs
	subpathClosed    []bool          // whether each subpath is closed
	degeneratePoints []vec.Vec2      // degenerate subpaths (no orientation)

	// dash pattern output buffers
	dashedSegs []strokeSegment // all dashed segments, contiguous
	dashes     []dashRange     // location of each dash in dashedSegs
}

// NewTessellator returns a new tessellator.
func NewTessellator() *Tessellator {
	return &Tessellator{
		vertexIndex: make(map[vec.Vec2]uint32),
	}
}

// Fill appends the triangulation of the interior of p to the arena.
// All subpaths are implicitly closed.  Each vertex gets its color from
// ctor.  On success the returned span describes the appended data; on
// failure the arena is left unchanged and the error is a
// [*TessellationError].
func (t *Tessellator) Fill(p path.Path, opts FillOptions, ctor VertexCtor, a *Arena) (Span, error) {
	if !validTolerance(opts.Tolerance) {
		return Span{}, tessError("fill", ErrInvalidOptions)
	}
	t.tolerance = opts.Tolerance

	if err := t.collectPathEdges(p); err != nil {
		return Span{}, tessError("fill", err)
	}

	span, err := t.emit(a, ctor, opts.Rule)
	if err != nil {
		return Span{}, tessError("fill", err)
	}
	return span, nil
}

// emit runs the sweep over t.edges and appends the resulting triangles.
func (t *Tessellator) emit(a *Arena, ctor VertexCtor, rule FillRule) (Span, error) {
	start := a.mark()
	if len(t.edges) == 0 {
		return start, nil
	}

	t.arena = a
	t.ctor = ctor
	if t.vertexIndex == nil {
		t.vertexIndex = make(map[vec.Vec2]uint32)
	}
	clear(t.vertexIndex)

	err := t.sweep(rule)

	t.arena = nil
	if err != nil {
		a.truncate(start)
		return Span{}, err
	}
	return a.since(start), nil
}

// vertex returns the arena index of the vertex at p, adding it if needed.
// Vertices are shared within one tessellation call.
func (t *Tessellator) vertex(p vec.Vec2) (uint32, error) {
	if idx, ok := t.vertexIndex[p]; ok {
		return idx, nil
	}
	idx, err := t.arena.addVertex(t.ctor.Vertex(p))
	if err != nil {
		return 0, err
	}
	t.vertexIndex[p] = idx
	return idx, nil
}

// triangle appends the triangle a, b, c.
func (t *Tessellator) triangle(a, b, c vec.Vec2) error {
	i, err := t.vertex(a)
	if err != nil {
		return err
	}
	j, err := t.vertex(b)
	if err != nil {
		return err
	}
	k, err := t.vertex(c)
	if err != nil {
		return err
	}
	t.arena.addTriangle(i, j, k)
	return nil
}

// collectPathEdges walks the path, flattens curves and builds the edge list.
// Open subpaths are closed with a straight line.
func (t *Tessellator) collectPathEdges(p path.Path) error {
	t.edges = t.edges[:0]

	var current vec.Vec2 // current point
	var subpath vec.Vec2 // subpath start
	for cmd, pts := range p {
		for _, pt := range pts {
			if !finite(pt) {
				return ErrInvalidGeometry
			}
		}

		switch cmd {
		case path.CmdMoveTo:
			t.addEdge(current, subpath)
			current = pts[0]
			subpath = current

		case path.CmdLineTo:
			t.addEdge(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			t.flattenQuadratic(current, pts[0], pts[1], t.addEdge)
			current = pts[1]

		case path.CmdCubeTo:
			t.flattenCubic(current, pts[0], pts[1], pts[2], t.addEdge)
			current = pts[2]

		case path.CmdClose:
			t.addEdge(current, subpath)
			current = subpath
		}
	}
	t.addEdge(current, subpath)

	return nil
}

// addEdge adds the line segment from p0 to p1 to the edge list.
// Horizontal segments do not change winding numbers and are skipped.
func (t *Tessellator) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	if dy > 0 {
		t.edges = append(t.edges, edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: 1})
	} else {
		t.edges = append(t.edges, edge{x0: p1.X, y0: p1.Y, x1: p0.X, y1: p0.Y, dir: -1})
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func (t *Tessellator) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// Compute error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	// Compute segment count
	n := 1
	if errLen := e.Length(); errLen > t.tolerance {
		n = segmentCount(math.Sqrt(errLen / t.tolerance))
	}

	// Evaluate curve at n+1 points and emit segments
	prev := p0
	for i := 1; i <= n; i++ {
		s := float64(i) / float64(n)
		// B(s) = (1-s)²P0 + 2(1-s)sP1 + s²P2
		oms := 1 - s
		pt := p0.Mul(oms * oms).Add(p1.Mul(2 * oms * s)).Add(p2.Mul(s * s))
		if i == n {
			pt = p2
		}
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func (t *Tessellator) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	// Compute deviation vectors
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Compute segment count using Wang's formula
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * t.tolerance))
		if nFloat > 1 {
			n = segmentCount(nFloat)
		}
	}

	// Evaluate curve at n+1 points and emit segments
	prev := p0
	for i := 1; i <= n; i++ {
		s := float64(i) / float64(n)
		// B(s) = (1-s)³P0 + 3(1-s)²sP1 + 3(1-s)s²P2 + s³P3
		oms := 1 - s
		oms2 := oms * oms
		s2 := s * s
		pt := p0.Mul(oms2 * oms).Add(p1.Mul(3 * oms2 * s)).Add(p2.Mul(3 * oms * s2)).Add(p3.Mul(s2 * s))
		if i == n {
			pt = p3
		}
		emit(prev, pt)
		prev = pt
	}
}

// segmentCount rounds a segment count up to an integer, limited to
// maxCurveSegments.
func segmentCount(n float64) int {
	if n >= maxCurveSegments {
		return maxCurveSegments
	}
	return int(math.Ceil(n))
}
