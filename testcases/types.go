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

// Package testcases provides named geometry for testing the tessellator.
//
// Every case is a path together with a fill or stroke operation.  Where
// the covered area is known in closed form, it is given in Area; the
// tessellated mesh must match it up to the flattening error.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single tessellation test.
type TestCase struct {
	Name string    // lowercase a-z, 0-9 and _ only
	Path path.Path // the geometry, in pixel units
	Op   Operation // fill or stroke

	// Width and Height give the size of the canvas which contains the
	// shape.  If both are zero, the shape is not suitable for comparison
	// against a rasterized reference.
	Width, Height int

	// Area is the exact area covered by the operation, or 0 if unknown.
	Area float64
}

// Operation is the operation applied to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64 // nil for solid
	DashPhase  float64
}

func (Stroke) isOperation() {}

// All contains the test cases, grouped by category.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"stroke":    strokeCases,
	"curve":     curveCases,
	"dash":      dashCases,
	"subpath":   subpathCases,
	"precision": precisionCases,
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon returns the closed polygon through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	d := &path.Data{}
	addPolygon(d, pts...)
	return d
}

func addPolygon(d *path.Data, pts ...vec.Vec2) {
	d.MoveTo(pts[0])
	for _, p := range pts[1:] {
		d.LineTo(p)
	}
	d.Close()
}

// rect returns the rectangle with corners (x0, y0) and (x1, y1), traced
// clockwise on screen.
func rect(x0, y0, x1, y1 float64) *path.Data {
	return polygon(pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1))
}

// polyline returns the open path through the given points.
func polyline(pts ...vec.Vec2) *path.Data {
	d := &path.Data{}
	d.MoveTo(pts[0])
	for _, p := range pts[1:] {
		d.LineTo(p)
	}
	return d
}
