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
	"log/slog"

	"seehuhn.de/go/svgmesh/svgdoc"
)

// BuildOptions controls how a document is turned into a mesh.
type BuildOptions struct {
	// Tolerance is the curve flattening tolerance in document units.
	// Zero means DefaultTolerance.
	Tolerance float64
}

// ShapeSpans records the mesh data generated for one shape.
type ShapeSpans struct {
	Index  int
	ID     string
	Fill   Span
	Stroke Span
}

// BuildReport describes the outcome of [BuildMesh].
type BuildReport struct {
	// Shapes has one entry per shape of the document, in document order.
	Shapes []ShapeSpans

	// Skipped lists the fill and stroke passes which failed.
	Skipped []*TessellationError
}

// BuildMesh tessellates all shapes of doc into one mesh.
//
// Shapes are visited in document order; for each shape the fill is
// tessellated before the stroke.  A pass which fails is logged, recorded
// in the report and skipped; the remaining shapes are still processed.
func BuildMesh(doc *svgdoc.Document, opts BuildOptions) (*Mesh, *BuildReport) {
	tol := opts.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	log := Logger()
	arena := NewArena()
	t := NewTessellator()
	report := &BuildReport{
		Shapes: make([]ShapeSpans, 0, len(doc.Shapes)),
	}

	for i, shape := range doc.Shapes {
		spans := ShapeSpans{Index: i, ID: shape.ID}
		p := ConvertPath(shape.Path)

		if shape.Fill != nil {
			color, fillOpts := ConvertFill(shape.Fill)
			ctor := NewVertexCtor(color, shape.Fill.Opacity)
			span, err := t.Fill(p, fillOpts.WithTolerance(tol), ctor, arena)
			if err != nil {
				report.skip(log, i, shape.ID, err)
			}
			spans.Fill = span
		}

		if shape.Stroke != nil {
			color, strokeOpts := ConvertStroke(shape.Stroke)
			ctor := NewVertexCtor(color, shape.Stroke.Opacity)
			span, err := t.Stroke(p, strokeOpts.WithTolerance(tol), ctor, arena)
			if err != nil {
				report.skip(log, i, shape.ID, err)
			}
			spans.Stroke = span
		}

		report.Shapes = append(report.Shapes, spans)
	}

	mesh := arena.Seal()
	log.Info("mesh built",
		slog.Int("shapes", len(doc.Shapes)),
		slog.Int("vertices", mesh.VertexCount()),
		slog.Int("indices", len(mesh.Indices)),
		slog.Int("skipped", len(report.Skipped)))
	return mesh, report
}

func (r *BuildReport) skip(log *slog.Logger, idx int, id string, err error) {
	var tErr *TessellationError
	if !errors.As(err, &tErr) {
		tErr = &TessellationError{Op: "tessellate", Err: err}
	}
	tErr.Shape = idx
	tErr.ID = id
	r.Skipped = append(r.Skipped, tErr)
	log.Warn("skipping shape",
		slog.Int("shape", idx),
		slog.String("id", id),
		slog.String("op", tErr.Op),
		slog.Any("error", tErr.Err))
}
