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

// Package scene holds the 2D camera used to display a mesh.
//
// The camera consists of a zoom factor, a pan offset in document units and
// an orthographic projection.  A vertex p of the mesh is mapped to clip
// space as projection * ((p + pan) * zoom), with the y axis flipped so that
// the y-down document coordinates appear upright on screen.
package scene

import (
	"log/slog"

	"github.com/chewxy/math32"
)

// Scene is the camera state.  The zero value is not usable; use [New].
type Scene struct {
	zoom       float32
	pan        [2]float32
	projection Mat4
}

// New returns the camera which shows a view box of the given size centred
// in a window of winW x winH pixels.  The larger view box dimension is
// mapped to the clip space extent 2.  The translation (tx, ty) is added to
// the initial pan offset.
func New(viewBoxWidth, viewBoxHeight, tx, ty float32, winW, winH int) *Scene {
	zoom := float32(1)
	if size := math32.Max(viewBoxWidth, viewBoxHeight); size > 0 && !math32.IsInf(size, 1) {
		zoom = 2 / size
	}
	return &Scene{
		zoom:       zoom,
		pan:        [2]float32{-viewBoxWidth/2 + tx, -viewBoxHeight/2 + ty},
		projection: OrthoForSize(winW, winH),
	}
}

// OrthoForSize returns the projection for a window of w x h pixels.  The
// smaller window dimension covers the range [-1, 1].  Empty windows are
// treated as square.
func OrthoForSize(w, h int) Mat4 {
	if w <= 0 || h <= 0 {
		return Ortho(-1, 1, -1, 1, -1, 1)
	}
	aspect := float32(w) / float32(h)
	if aspect >= 1 {
		return Ortho(-aspect, aspect, -1, 1, -1, 1)
	}
	return Ortho(-1, 1, -1/aspect, 1/aspect, -1, 1)
}

// Zoom returns the current zoom factor.  The result is always positive.
func (s *Scene) Zoom() float32 {
	return s.zoom
}

// Pan returns the current pan offset in document units.
func (s *Scene) Pan() [2]float32 {
	return s.pan
}

// Projection returns the current projection matrix.
func (s *Scene) Projection() Mat4 {
	return s.projection
}

// ZoomBy multiplies the zoom factor by f.  Factors which are not positive
// and finite are ignored, as are products which would overflow or
// underflow to zero.
func (s *Scene) ZoomBy(f float32) {
	if !(f > 0) || math32.IsInf(f, 1) {
		return
	}
	z := s.zoom * f
	if !(z > 0) || math32.IsInf(z, 1) {
		return
	}
	s.zoom = z
}

// PanBy moves the camera by (dx, dy) screen units.  The offset is divided
// by the zoom factor, so that a given step looks the same at every zoom
// level.
func (s *Scene) PanBy(dx, dy float32) {
	s.pan[0] += dx / s.zoom
	s.pan[1] += dy / s.zoom
}

// UpdateProjection replaces the projection matrix.
func (s *Scene) UpdateProjection(m Mat4) {
	s.projection = m
}

// Uniform returns the values passed to the vertex stage for the current
// frame.
func (s *Scene) Uniform() Uniform {
	return Uniform{
		Zoom:       s.zoom,
		Pan:        s.pan,
		Projection: s.projection,
	}
}

// LogValue implements [slog.LogValuer].
func (s *Scene) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("zoom", float64(s.zoom)),
		slog.Any("pan", s.pan),
	)
}

// Uniform is the per-frame camera data of the vertex stage.
type Uniform struct {
	Zoom       float32
	Pan        [2]float32
	Projection Mat4
}

// Project maps a point in document coordinates to clip space.
func (u Uniform) Project(p [2]float32) (x, y float32) {
	v := [4]float32{
		(p[0] + u.Pan[0]) * u.Zoom,
		-(p[1] + u.Pan[1]) * u.Zoom,
		0,
		1,
	}
	c := u.Projection.Apply(v)
	return c[0], c[1]
}
