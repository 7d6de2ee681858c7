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

// Package svgmesh converts vector paths into triangle meshes.
//
// Paths are flattened into line segments within a numeric tolerance.
// Fills are triangulated by a horizontal sweep which honours the nonzero
// and even-odd fill rules, strokes are first turned into outline polygons
// (with caps, joins and dashes) and then filled the same way.
// All triangles of a document are appended to one [Arena], which is
// sealed into an immutable [Mesh] once the document is complete.
package svgmesh

import (
	"math"

	"seehuhn.de/go/pdf/graphics"
)

//go:generate go run ./testcases/export

// DefaultTolerance is the curve flattening tolerance, in document units,
// used when no other value is given.
const DefaultTolerance = 0.01

// FillRule selects which points are inside a path.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}

// inside reports whether a point with winding number w is inside.
func (r FillRule) inside(w int) bool {
	if r == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// FillOptions controls the tessellation of a filled path.
type FillOptions struct {
	// Tolerance is the maximal distance between a curve and the line
	// segments which replace it.  Must be > 0.
	Tolerance float64

	// Rule is the fill rule.
	Rule FillRule
}

// DefaultFillOptions returns fill options with the default tolerance and
// the nonzero fill rule.
func DefaultFillOptions() FillOptions {
	return FillOptions{Tolerance: DefaultTolerance, Rule: NonZero}
}

// WithTolerance returns a copy of o with the tolerance set to tol.
func (o FillOptions) WithTolerance(tol float64) FillOptions {
	o.Tolerance = tol
	return o
}

// StrokeOptions controls the tessellation of a stroked path.
// All lengths are in document units.
type StrokeOptions struct {
	// Tolerance is the maximal distance between a curve (including round
	// joins and caps) and the line segments which replace it.  Must be > 0.
	Tolerance float64

	// Width is the stroke line width.  Must be > 0.
	Width float64

	// Cap is the line cap style for open subpath ends.
	Cap graphics.LineCapStyle

	// Join is the line join style for corners.
	Join graphics.LineJoinStyle

	// MiterLimit is the miter limit for miter joins.
	// Values below 1 are treated as 1.
	MiterLimit float64

	// Dash is the dash pattern.  Nil means a solid line.
	// Odd-length patterns are repeated to make them even.
	// Patterns with negative entries or a zero sum are ignored.
	Dash []float64

	// DashPhase is the offset into the dash pattern.
	DashPhase float64
}

// DefaultStrokeOptions returns the SVG default stroke parameters:
// width 1, butt caps, miter joins with limit 4, no dashes.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Tolerance:  DefaultTolerance,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// WithTolerance returns a copy of o with the tolerance set to tol.
func (o StrokeOptions) WithTolerance(tol float64) StrokeOptions {
	o.Tolerance = tol
	return o
}

// dashActive reports whether the dash pattern should be applied.
func (o *StrokeOptions) dashActive() bool {
	if len(o.Dash) == 0 {
		return false
	}
	sum := 0.0
	for _, d := range o.Dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return false
		}
		sum += d
	}
	return sum > 0
}

func validTolerance(tol float64) bool {
	return tol > 0 && !math.IsInf(tol, 0)
}

// Default values for tessellation parameters.
const (
	// defaultMiterLimit is the SVG default miter limit.
	defaultMiterLimit = 4.0

	// maxDashCount limits the number of dashes generated for one path.
	// Patterns which would produce more dashes are drawn solid.
	maxDashCount = 1 << 20

	// maxCurveSegments limits the number of line segments used for one
	// curve or arc.
	maxCurveSegments = 1 << 16
)

// Numerical tolerances for the tessellator.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to take part in the sweep.  Edges with |y1 - y0| below this threshold
	// are skipped as horizontal.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length for a stroke segment.
	// Segments shorter than this are skipped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cosine threshold for detecting cusps
	// (path doubling back on itself).  cos(179.19°) ≈ -0.9999
	cuspCosineThreshold = -0.9999

	// sameXEpsilon is the relative distance below which two edges are
	// considered to meet.
	sameXEpsilon = 1e-12

	// crossingEpsilon is the relative height below which an edge crossing
	// is attributed to the top of the current band.
	crossingEpsilon = 1e-12
)
