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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgmesh/svgdoc"
)

// ConvertPath returns an iterator over the commands of d.
// Line segments of zero length, and curves whose control points all
// coincide with the current point, are left out.
// The iterator only reads d and can be used any number of times.
func ConvertPath(d *path.Data) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if d == nil {
			return
		}

		var buf [3]vec.Vec2
		var current, start vec.Vec2
		coordIdx := 0
		for _, cmd := range d.Cmds {
			var n int
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if coordIdx+n > len(d.Coords) {
				return
			}
			pts := buf[:n]
			copy(pts, d.Coords[coordIdx:coordIdx+n])
			coordIdx += n

			switch cmd {
			case path.CmdMoveTo:
				start = pts[0]
			case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
				if allEqual(current, pts) {
					continue
				}
			case path.CmdClose:
				pts = nil
			}
			if !yield(cmd, pts) {
				return
			}

			if cmd == path.CmdClose {
				current = start
			} else {
				current = pts[n-1]
			}
		}
	}
}

func allEqual(p vec.Vec2, pts []vec.Vec2) bool {
	return !slices.ContainsFunc(pts, func(q vec.Vec2) bool { return q != p })
}

// ConvertFill returns the fill color and tessellation options for f.
func ConvertFill(f *svgdoc.Fill) (svgdoc.Color, FillOptions) {
	opts := DefaultFillOptions()
	if f.Rule == svgdoc.EvenOdd {
		opts.Rule = EvenOdd
	}
	return f.Paint.Resolve(), opts
}

// ConvertStroke returns the stroke color and tessellation options for s.
// An invalid dash array (negative entries or a zero sum) gives a solid
// line.
func ConvertStroke(s *svgdoc.Stroke) (svgdoc.Color, StrokeOptions) {
	opts := DefaultStrokeOptions()
	opts.Width = s.Width
	opts.MiterLimit = s.MiterLimit

	switch s.Cap {
	case svgdoc.CapRound:
		opts.Cap = graphics.LineCapRound
	case svgdoc.CapSquare:
		opts.Cap = graphics.LineCapSquare
	default:
		opts.Cap = graphics.LineCapButt
	}

	switch s.Join {
	case svgdoc.JoinRound:
		opts.Join = graphics.LineJoinRound
	case svgdoc.JoinBevel:
		opts.Join = graphics.LineJoinBevel
	default:
		opts.Join = graphics.LineJoinMiter
	}

	if len(s.Dash) > 0 {
		opts.Dash = slices.Clone(s.Dash)
		opts.DashPhase = s.DashOffset
		if !opts.dashActive() {
			opts.Dash = nil
			opts.DashPhase = 0
		}
	}

	return s.Paint.Resolve(), opts
}
