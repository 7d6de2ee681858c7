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

// Package svgdoc reads SVG files into a flat list of shapes.
//
// Only the parts of SVG which can be drawn with solid colors are
// supported: paths and basic shapes, grouped with transforms and
// inherited presentation attributes.  Gradients, patterns, clipping,
// masks, text and images are not rendered; paint which refers to them is
// replaced by [FallbackColor].
package svgdoc

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// Document is a loaded SVG file.
type Document struct {
	ViewBox ViewBox

	// Shapes lists the drawable elements in document order.
	Shapes []*Shape

	// Warnings lists problems which did not prevent loading, for example
	// malformed path data or transforms.
	Warnings []error
}

// ViewBox is the user coordinate rectangle of the document.
type ViewBox struct {
	X, Y          float64
	Width, Height float64
}

// FirstTranslation returns the translation part of the first shape
// transform in document order.  If no shape carries a transform, the
// result is (0, 0).
func (d *Document) FirstTranslation() (tx, ty float64) {
	for _, s := range d.Shapes {
		if s.HasTransform {
			return s.Transform[4], s.Transform[5]
		}
	}
	return 0, 0
}

// Shape is one drawable element.  Shapes are not modified after loading.
type Shape struct {
	// ID is the value of the id attribute, if any.
	ID string

	// Path is the outline in the element's own coordinate system.
	Path *path.Data

	// Fill is nil if the shape is not filled.
	Fill *Fill

	// Stroke is nil if the shape is not stroked.
	Stroke *Stroke

	// Transform maps the element's coordinates to document coordinates.
	// It is the composition of the transform attributes of the element
	// and all its ancestors.
	Transform matrix.Matrix

	// HasTransform is true if the element or one of its ancestors has a
	// transform attribute.
	HasTransform bool
}

// FillRule selects which points are inside a path.
type FillRule int

// These are the SVG fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill describes how the interior of a shape is painted.
type Fill struct {
	Paint Paint

	// Opacity is fill-opacity multiplied by the alpha of the fill color
	// and by the opacity of the element and its ancestors.
	Opacity float64

	Rule FillRule
}

// LineCap is the shape at the ends of open stroked subpaths.
type LineCap int

// These are the SVG line caps.
const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the shape at the corners of stroked paths.
type LineJoin int

// These are the SVG line joins.  The SVG 2 values miter-clip and arcs are
// read as JoinMiter.
const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Stroke describes how the outline of a shape is painted.
type Stroke struct {
	Paint Paint

	// Opacity is stroke-opacity multiplied by the alpha of the stroke
	// color and by the opacity of the element and its ancestors.
	Opacity float64

	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64

	// Dash is the dash array, nil for a solid line.
	Dash       []float64
	DashOffset float64
}

var (
	// ErrNotSVG is returned if the root element is not <svg>.
	ErrNotSVG = errors.New("not an SVG document")

	// ErrNoSize is returned if neither a viewBox nor a positive width and
	// height are given.
	ErrNoSize = errors.New("missing document size")

	// ErrPathData is returned for malformed path data.
	ErrPathData = errors.New("malformed path data")
)

// LoadError is returned by [Load] and [Read].
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("svgdoc: %v", e.Err)
	}
	return fmt.Sprintf("svgdoc: %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
