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
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is one flattened line segment of a stroked path.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

func (s *strokeSegment) length() float64 {
	return s.B.Sub(s.A).Length()
}

// Stroke appends the triangulation of the stroke outline of p to the arena.
// The outline is built from opts (width, caps, joins, miter limit, dash
// pattern) and filled with the nonzero rule, so that overlapping parts of
// the stroke are covered once.  On failure the arena is left unchanged and
// the error is a [*TessellationError].
func (t *Tessellator) Stroke(p path.Path, opts StrokeOptions, ctor VertexCtor, a *Arena) (Span, error) {
	if !validTolerance(opts.Tolerance) ||
		!(opts.Width > 0) || math.IsInf(opts.Width, 0) ||
		math.IsNaN(opts.MiterLimit) ||
		math.IsNaN(opts.DashPhase) || math.IsInf(opts.DashPhase, 0) {
		return Span{}, tessError("stroke", ErrInvalidOptions)
	}
	if opts.MiterLimit < 1 {
		opts.MiterLimit = 1
	}
	t.tolerance = opts.Tolerance
	t.strokeOpts = opts

	// Flatten path into subpaths (results stored in t.segs, etc.)
	if err := t.flattenPath(p); err != nil {
		return Span{}, tessError("stroke", err)
	}

	// All outline polygons go into one buffer and are filled together,
	// so that overlapping dashes and subpaths are composited correctly.
	t.outline = t.outline[:0]
	t.outlineOffsets = t.outlineOffsets[:0]

	// Degenerate subpaths have no orientation.  Round caps give a circle,
	// square caps a square aligned with the coordinate axes.
	d := opts.Width / 2
	for _, pt := range t.degeneratePoints {
		startOffset := len(t.outline)
		switch opts.Cap {
		case graphics.LineCapRound:
			t.addArc(pt, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			t.addSquare(pt, vec.Vec2{X: 1, Y: 0}, d)
		default:
			continue
		}
		t.outlineOffsets = append(t.outlineOffsets, startOffset)
	}

	if !opts.dashActive() || !t.applyDashPattern() {
		t.strokeAllSubpaths()
	} else {
		t.strokeDashedSubpaths()
	}

	t.collectOutlineEdges()
	span, err := t.emit(a, ctor, NonZero)
	if err != nil {
		return Span{}, tessError("stroke", err)
	}
	return span, nil
}

// strokeAllSubpaths strokes all flattened subpaths (non-dashed case).
func (t *Tessellator) strokeAllSubpaths() {
	for i, closed := range t.subpathClosed {
		t.addOutline(t.subpathSegments(i), closed)
	}
}

// addOutline builds the outline polygon for segs and keeps it if it is
// not degenerate.
func (t *Tessellator) addOutline(segs []strokeSegment, closed bool) {
	startOffset := len(t.outline)
	t.strokeSubpath(segs, closed)
	if len(t.outline)-startOffset >= 3 {
		t.outlineOffsets = append(t.outlineOffsets, startOffset)
	} else {
		t.outline = t.outline[:startOffset]
	}
}

// subpathSegments returns the segments for subpath i as a slice into segs.
func (t *Tessellator) subpathSegments(i int) []strokeSegment {
	start := t.segsOffsets[i]
	end := len(t.segs)
	if i+1 < len(t.segsOffsets) {
		end = t.segsOffsets[i+1]
	}
	return t.segs[start:end]
}

// flattenPath walks the path, flattens curves, and fills the segment
// buffers:
//   - t.segs: all segments from all subpaths, contiguous
//   - t.segsOffsets: start index of each subpath in segs
//   - t.subpathClosed: whether each subpath is closed
//   - t.degeneratePoints: degenerate subpaths (no orientation)
func (t *Tessellator) flattenPath(p path.Path) error {
	t.segs = t.segs[:0]
	t.segsOffsets = t.segsOffsets[:0]
	t.subpathClosed = t.subpathClosed[:0]
	t.degeneratePoints = t.degeneratePoints[:0]

	var currentPt vec.Vec2
	var subpathStartPt vec.Vec2
	subpathStartIdx := 0 // index into segs where current subpath starts
	inSubpath := false
	sawDrawingCmd := false // a drawing command was seen in the current subpath

	// endSubpath records the subpath which has been built so far.
	endSubpath := func(closed bool) {
		if len(t.segs) == subpathStartIdx {
			t.degeneratePoints = append(t.degeneratePoints, subpathStartPt)
		} else {
			t.segsOffsets = append(t.segsOffsets, subpathStartIdx)
			t.subpathClosed = append(t.subpathClosed, closed)
		}
	}

	for cmd, pts := range p {
		for _, pt := range pts {
			if !finite(pt) {
				return ErrInvalidGeometry
			}
		}

		switch cmd {
		case path.CmdMoveTo:
			if inSubpath && (len(t.segs) > subpathStartIdx || sawDrawingCmd) {
				endSubpath(false)
			}
			currentPt = pts[0]
			subpathStartPt = currentPt
			subpathStartIdx = len(t.segs)
			inSubpath = true
			sawDrawingCmd = false

		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			if !inSubpath {
				// drawing after ClosePath starts a new subpath at the
				// current point
				subpathStartPt = currentPt
				subpathStartIdx = len(t.segs)
				inSubpath = true
			}
			sawDrawingCmd = true
			switch cmd {
			case path.CmdLineTo:
				t.addStrokeSegment(currentPt, pts[0])
			case path.CmdQuadTo:
				t.flattenQuadratic(currentPt, pts[0], pts[1], t.addStrokeSegment)
			case path.CmdCubeTo:
				t.flattenCubic(currentPt, pts[0], pts[1], pts[2], t.addStrokeSegment)
			}
			currentPt = pts[len(pts)-1]

		case path.CmdClose:
			if inSubpath {
				if currentPt != subpathStartPt {
					t.addStrokeSegment(currentPt, subpathStartPt)
				}
				endSubpath(true)
				currentPt = subpathStartPt
				subpathStartIdx = len(t.segs)
				inSubpath = false
				sawDrawingCmd = false
			}
		}
	}

	if inSubpath && (len(t.segs) > subpathStartIdx || sawDrawingCmd) {
		endSubpath(false)
	}
	return nil
}

// addStrokeSegment adds a line segment to the flattening buffer.
func (t *Tessellator) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	tangent := d.Mul(1 / length)
	normal := vec.Vec2{X: -tangent.Y, Y: tangent.X}
	t.segs = append(t.segs, strokeSegment{A: a, B: b, T: tangent, N: normal})
}

// strokeSubpath builds the outline for a single subpath into t.outline.
// The outline is one closed polygon: forward pass on the +N side, then
// backward pass on the -N side.  Join geometry is added on the outer side
// of each corner, which depends on the turn direction.
func (t *Tessellator) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}

	d := t.strokeOpts.Width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]

	if closed {
		// No caps.  The closing corner connects the two sides.
		sinThetaClose := cross(last.T, first.T)

		// Forward pass: +N side
		t.outline = append(t.outline, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			seg := &segs[i]
			next := first
			if i < len(segs)-1 {
				next = &segs[i+1]
			}
			sinTheta := cross(seg.T, next.T)
			switch {
			case straight(seg.T, next.T):
				t.outline = append(t.outline, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
			case sinTheta > 0:
				// +N is the inner side
				t.addInnerCorner(seg.B, seg, next, d, true)
			default:
				// +N is the outer side
				t.outline = append(t.outline, seg.B.Add(seg.N.Mul(d)))
				t.addJoin(seg.B, seg.T, next.T, d, true)
				t.outline = append(t.outline, next.A.Add(next.N.Mul(d)))
			}
		}

		// Backward pass: -N side, closing corner first
		switch {
		case straight(last.T, first.T):
			t.outline = append(t.outline, first.A.Sub(first.N.Mul(d)), last.B.Sub(last.N.Mul(d)))
		case sinThetaClose > 0:
			t.outline = append(t.outline, first.A.Sub(first.N.Mul(d)))
			t.addJoin(first.A, last.T, first.T, d, false)
			t.outline = append(t.outline, last.B.Sub(last.N.Mul(d)))
		default:
			t.addInnerCorner(first.A, last, first, d, false)
		}
		for i := len(segs) - 1; i > 0; i-- {
			seg := &segs[i]
			prev := &segs[i-1]
			sinTheta := cross(prev.T, seg.T)
			switch {
			case straight(prev.T, seg.T):
				t.outline = append(t.outline, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
			case sinTheta > 0:
				// -N is the outer side
				t.outline = append(t.outline, seg.A.Sub(seg.N.Mul(d)))
				t.addJoin(seg.A, prev.T, seg.T, d, false)
				t.outline = append(t.outline, prev.B.Sub(prev.N.Mul(d)))
			default:
				t.addInnerCorner(seg.A, prev, seg, d, false)
			}
		}
		t.outline = append(t.outline, first.A.Sub(first.N.Mul(d)))
		return
	}

	// Open path: caps at the ends, joins in between.
	t.addCap(first.A, first.T.Mul(-1), d)

	// Forward pass: +N side
	skipNextA := false
	for i := range segs {
		seg := &segs[i]
		if !skipNextA {
			t.outline = append(t.outline, seg.A.Add(seg.N.Mul(d)))
		}
		skipNextA = false
		if i == len(segs)-1 {
			t.outline = append(t.outline, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sinTheta := cross(seg.T, next.T)
		switch {
		case straight(seg.T, next.T):
			t.outline = append(t.outline, seg.B.Add(seg.N.Mul(d)))
		case sinTheta > 0:
			t.addInnerCorner(seg.B, seg, next, d, true)
			skipNextA = true
		default:
			t.outline = append(t.outline, seg.B.Add(seg.N.Mul(d)))
			t.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	t.addCap(last.B, last.T, d)

	// Backward pass: -N side
	skipNextB := false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skipNextB {
			t.outline = append(t.outline, seg.B.Sub(seg.N.Mul(d)))
		}
		skipNextB = false
		if i == 0 {
			t.outline = append(t.outline, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sinTheta := cross(prev.T, seg.T)
		switch {
		case straight(prev.T, seg.T):
			t.outline = append(t.outline, seg.A.Sub(seg.N.Mul(d)))
		case sinTheta > 0:
			t.outline = append(t.outline, seg.A.Sub(seg.N.Mul(d)))
			t.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			t.addInnerCorner(seg.A, prev, seg, d, false)
			skipNextB = true
		}
	}
}

// straight reports whether the direction T2 continues T1 without a turn.
// A reversal is not straight.
func straight(T1, T2 vec.Vec2) bool {
	return math.Abs(cross(T1, T2)) < collinearityThreshold && T1.Dot(T2) > 0
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// addCap adds a line cap to the outline at point P.
// T is the outward tangent direction, d is half the stroke width.
func (t *Tessellator) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch t.strokeOpts.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		t.outline = append(t.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	case graphics.LineCapRound:
		// semicircle from +N through T to -N
		t.addArc(P, d, N, -math.Pi, true)
	}
	// butt caps need no extra points
}

// computeInnerIntersection returns the intersection point of the two inner
// offset lines at a corner.  The intersection lies d·tan(θ/2) along each
// tangent from P.  If this reaches past the middle of either adjacent
// segment, where it could overtake the point of the next corner, or if the
// segments are nearly collinear, ok is false.
func computeInnerIntersection(P, T1, T2 vec.Vec2, d, len1, len2 float64, isPositiveNormalSide bool) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}

	// cos(θ/2) = sqrt((1 + cos θ) / 2)
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	if halfAngle < 1e-9 {
		return vec.Vec2{}, false
	}

	reach := d * math.Sqrt(max(0, 1-cosTheta)/(1+cosTheta))
	if !(reach <= min(len1, len2)/2) {
		return vec.Vec2{}, false
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	innerDir := N1.Add(N2)
	if !isPositiveNormalSide {
		innerDir = innerDir.Mul(-1)
	}
	innerDirLen := innerDir.Length()
	if innerDirLen < 1e-9 {
		return vec.Vec2{}, false
	}
	innerDir = innerDir.Mul(1 / innerDirLen)

	return P.Add(innerDir.Mul(d / halfAngle)), true
}

// addInnerCorner handles the inner side of the corner at P between the
// segments s1 and s2.  If the inner offset lines meet within both segments,
// only the intersection point is added.  Otherwise the outline pivots
// through P between the two offset points.  In both cases the last point
// added is the offset point of the segment which the outline continues
// with.
func (t *Tessellator) addInnerCorner(P vec.Vec2, s1, s2 *strokeSegment, d float64, isPositiveNormalSide bool) {
	if innerPt, ok := computeInnerIntersection(P, s1.T, s2.T, d, s1.length(), s2.length(), isPositiveNormalSide); ok {
		t.outline = append(t.outline, innerPt)
		return
	}
	if isPositiveNormalSide {
		t.outline = append(t.outline, P.Add(s1.N.Mul(d)), P, P.Add(s2.N.Mul(d)))
	} else {
		t.outline = append(t.outline, P.Sub(s2.N.Mul(d)), P, P.Sub(s1.N.Mul(d)))
	}
}

// addJoin adds a line join at point P where the tangent changes from T1
// to T2.  d is half the stroke width, isPositiveNormalSide indicates which
// side of the stroke is being built.
func (t *Tessellator) addJoin(P, T1, T2 vec.Vec2, d float64, isPositiveNormalSide bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)

	// A cusp gets two caps instead of a join.
	if cosTheta < cuspCosineThreshold {
		t.addCap(P, T1, d)
		t.addCap(P, T2.Mul(-1), d)
		return
	}

	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold {
		return
	}

	switch t.strokeOpts.Join {
	case graphics.LineJoinMiter:
		// The miter length ratio is 1/sin(φ/2), where φ = π - θ is the
		// interior angle at the corner and sin(φ/2) = cos(θ/2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= t.strokeOpts.MiterLimit+miterEpsilon {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2)
			if !isPositiveNormalSide {
				bisector = bisector.Mul(-1)
			}
			if bisectorLen := bisector.Length(); bisectorLen > zeroLengthThreshold {
				bisector = bisector.Mul(1 / bisectorLen)
				t.outline = append(t.outline, P.Add(bisector.Mul(d/sinHalf)))
			}
			return
		}
		// miter limit exceeded: bevel

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if isPositiveNormalSide {
			// arc from +N of T1 to +N of T2
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				t.addArc(P, d, N1, angle, false)
			} else {
				t.addArc(P, d, N1, -angle, false)
			}
		} else {
			// arc from -N of T2 back to -N of T1
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				t.addArc(P, d, N2, -angle, false)
			} else {
				t.addArc(P, d, N2, angle, false)
			}
		}
	}
	// bevel joins need no extra points
}

// addArc adds arc vertices to the outline.
// startDir is the unit vector from center to the arc start, sweep is the
// sweep angle in radians (positive = CCW).  If includeStart is false, the
// caller has already added the start point.
func (t *Tessellator) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	rotate := func(angle float64) vec.Vec2 {
		cos, sin := math.Cos(angle), math.Sin(angle)
		return vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
	}

	n := 1
	if radius >= t.tolerance {
		// A chord subtending angle θ deviates from the arc by the sagitta
		// r(1 - cos(θ/2)).  Setting this equal to the tolerance ε gives
		// θ = 2 acos(1 - ε/r).
		angleStep := 2 * math.Acos(1-t.tolerance/radius)
		if angleStep <= 0 || math.IsNaN(angleStep) {
			angleStep = math.Pi / 4
		}
		n = max(segmentCount(math.Abs(sweep)/angleStep), 1)
	} else if math.Abs(sweep) > math.Pi {
		// keep full circles from collapsing to a line
		n = 3
	}

	startI := 0
	if !includeStart {
		startI = 1
	}
	dt := sweep / float64(n)
	for i := startI; i <= n; i++ {
		t.outline = append(t.outline, center.Add(rotate(float64(i)*dt).Mul(radius)))
	}
}

// addSquare adds a square centered at the given point with side length 2d,
// oriented by the tangent T.
func (t *Tessellator) addSquare(center vec.Vec2, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	t.outline = append(t.outline,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// collectOutlineEdges builds the edge list from the outline polygons.
func (t *Tessellator) collectOutlineEdges() {
	t.edges = t.edges[:0]
	for i, start := range t.outlineOffsets {
		end := len(t.outline)
		if i+1 < len(t.outlineOffsets) {
			end = t.outlineOffsets[i+1]
		}
		poly := t.outline[start:end]
		if len(poly) < 2 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			t.addEdge(poly[j-1], poly[j])
		}
		t.addEdge(poly[len(poly)-1], poly[0])
	}
}
