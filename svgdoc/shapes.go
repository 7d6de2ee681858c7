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

package svgdoc

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

// elementPath returns the outline of a drawable element, or nil if the
// element is not drawable or has zero size.
func elementPath(name string, attrs map[string]string) (*path.Data, error) {
	num := func(key string) float64 {
		v, _ := parseLength(attrs[key])
		return v
	}

	switch name {
	case "path":
		return ParsePathData(attrs["d"])

	case "rect":
		rx, hasRx := parseLength(attrs["rx"])
		ry, hasRy := parseLength(attrs["ry"])
		if !hasRx {
			rx = ry
		}
		if !hasRy {
			ry = rx
		}
		return rectPath(num("x"), num("y"), num("width"), num("height"), rx, ry), nil

	case "circle":
		r := num("r")
		return ellipsePath(num("cx"), num("cy"), r, r), nil

	case "ellipse":
		rx, hasRx := parseLength(attrs["rx"])
		ry, hasRy := parseLength(attrs["ry"])
		if !hasRx {
			rx = ry
		}
		if !hasRy {
			ry = rx
		}
		return ellipsePath(num("cx"), num("cy"), rx, ry), nil

	case "line":
		d := &path.Data{}
		d.MoveTo(vec.Vec2{X: num("x1"), Y: num("y1")})
		d.LineTo(vec.Vec2{X: num("x2"), Y: num("y2")})
		return d, nil

	case "polyline", "polygon":
		sc := scanner{s: attrs["points"]}
		v, err := sc.numbers()
		if len(v)%2 == 1 {
			v = v[:len(v)-1]
		}
		if len(v) < 2 {
			return nil, err
		}
		d := &path.Data{}
		d.MoveTo(vec.Vec2{X: v[0], Y: v[1]})
		for i := 2; i+1 < len(v); i += 2 {
			d.LineTo(vec.Vec2{X: v[i], Y: v[i+1]})
		}
		if name == "polygon" {
			d.Close()
		}
		return d, err
	}
	return nil, nil
}

// rectPath returns the outline of a rectangle with optional rounded
// corners.  The corner radii are limited to half the side lengths.
func rectPath(x, y, w, h, rx, ry float64) *path.Data {
	if !(w > 0 && h > 0) {
		return nil
	}
	rx = max(0, min(rx, w/2))
	ry = max(0, min(ry, h/2))

	d := &path.Data{}
	if rx == 0 || ry == 0 {
		d.MoveTo(vec.Vec2{X: x, Y: y})
		d.LineTo(vec.Vec2{X: x + w, Y: y})
		d.LineTo(vec.Vec2{X: x + w, Y: y + h})
		d.LineTo(vec.Vec2{X: x, Y: y + h})
		d.Close()
		return d
	}

	kx, ky := rx*kappa, ry*kappa
	d.MoveTo(vec.Vec2{X: x + rx, Y: y})
	d.LineTo(vec.Vec2{X: x + w - rx, Y: y})
	d.CubeTo(vec.Vec2{X: x + w - rx + kx, Y: y}, vec.Vec2{X: x + w, Y: y + ry - ky}, vec.Vec2{X: x + w, Y: y + ry})
	d.LineTo(vec.Vec2{X: x + w, Y: y + h - ry})
	d.CubeTo(vec.Vec2{X: x + w, Y: y + h - ry + ky}, vec.Vec2{X: x + w - rx + kx, Y: y + h}, vec.Vec2{X: x + w - rx, Y: y + h})
	d.LineTo(vec.Vec2{X: x + rx, Y: y + h})
	d.CubeTo(vec.Vec2{X: x + rx - kx, Y: y + h}, vec.Vec2{X: x, Y: y + h - ry + ky}, vec.Vec2{X: x, Y: y + h - ry})
	d.LineTo(vec.Vec2{X: x, Y: y + ry})
	d.CubeTo(vec.Vec2{X: x, Y: y + ry - ky}, vec.Vec2{X: x + rx - kx, Y: y}, vec.Vec2{X: x + rx, Y: y})
	d.Close()
	return d
}

// ellipsePath returns the outline of an axis-aligned ellipse, drawn
// clockwise on screen starting at the rightmost point.
func ellipsePath(cx, cy, rx, ry float64) *path.Data {
	if !(rx > 0 && ry > 0) {
		return nil
	}
	kx, ky := rx*kappa, ry*kappa

	d := &path.Data{}
	d.MoveTo(vec.Vec2{X: cx + rx, Y: cy})
	d.CubeTo(vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry})
	d.CubeTo(vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - rx, Y: cy})
	d.CubeTo(vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry})
	d.CubeTo(vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + rx, Y: cy})
	d.Close()
	return d
}
