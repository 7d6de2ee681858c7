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
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry indicates a path with NaN or infinite coordinates.
	ErrInvalidGeometry = errors.New("invalid path geometry")

	// ErrInvalidOptions indicates a non-positive tolerance or stroke width,
	// or another option value which cannot be used.
	ErrInvalidOptions = errors.New("invalid tessellation options")

	// ErrDegenerate indicates that the sweep could not make progress.
	ErrDegenerate = errors.New("degenerate geometry")

	// ErrMeshFull indicates that the vertex count would exceed the range
	// of 32-bit indices.
	ErrMeshFull = errors.New("mesh vertex limit reached")
)

// TessellationError is returned when a fill or stroke pass fails.
// The arena is left unchanged in this case.
type TessellationError struct {
	// Shape is the index of the shape in the document, or -1 if the
	// tessellator was called directly.
	Shape int

	// ID is the id attribute of the shape, if any.
	ID string

	// Op is either "fill" or "stroke".
	Op string

	Err error
}

func (e *TessellationError) Error() string {
	switch {
	case e.Shape < 0:
		return fmt.Sprintf("svgmesh: %s: %v", e.Op, e.Err)
	case e.ID != "":
		return fmt.Sprintf("svgmesh: %s shape %d (%q): %v", e.Op, e.Shape, e.ID, e.Err)
	default:
		return fmt.Sprintf("svgmesh: %s shape %d: %v", e.Op, e.Shape, e.Err)
	}
}

func (e *TessellationError) Unwrap() error {
	return e.Err
}

func tessError(op string, err error) error {
	return &TessellationError{Shape: -1, Op: op, Err: err}
}
