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

// Package softgpu is a software implementation of the drawing device used
// by the viewer.
//
// Triangles are rasterized with anti-aliasing into an RGBA image, which is
// handed to a [Sink] by Present.  Consecutive triangles of the same color
// are accumulated into a single coverage mask, so that the edges shared by
// neighbouring triangles do not show up as seams.
package softgpu

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/svgmesh"
	"seehuhn.de/go/svgmesh/scene"
)

// Sink receives the finished frames.
type Sink interface {
	Show(img *image.RGBA) error
}

var (
	errNoTarget = errors.New("softgpu: no render target")
	errNoMesh   = errors.New("softgpu: no mesh uploaded")
	errReleased = errors.New("softgpu: device released")
)

// Device draws into an in-memory image.
type Device struct {
	sink Sink

	mesh    *svgmesh.Mesh
	uniform scene.Uniform

	img *image.RGBA
	ras *vector.Rasterizer

	draws    int
	released bool
}

// New returns a device which passes its frames to sink.
// If sink is nil, Present only counts the frames.
func New(sink Sink) *Device {
	return &Device{sink: sink}
}

// Upload stores the mesh drawn by Draw.  The mesh is validated, but not
// copied; it must not be modified afterwards.
func (d *Device) Upload(m *svgmesh.Mesh) error {
	if d.released {
		return errReleased
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("softgpu: upload: %w", err)
	}
	d.mesh = m
	return nil
}

// Resize allocates a new render target of the given size.
func (d *Device) Resize(width, height int) error {
	if d.released {
		return errReleased
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("softgpu: invalid target size %dx%d", width, height)
	}
	if d.img != nil && d.img.Rect.Dx() == width && d.img.Rect.Dy() == height {
		return nil
	}
	d.img = image.NewRGBA(image.Rect(0, 0, width, height))
	d.ras = vector.NewRasterizer(width, height)
	d.ras.DrawOp = draw.Over
	svgmesh.Logger().Debug("render target allocated", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// Clear fills the render target with an RGBA color.
func (d *Device) Clear(rgba [4]float32) {
	if d.img == nil {
		return
	}
	draw.Draw(d.img, d.img.Bounds(), image.NewUniform(toNRGBA(rgba)), image.Point{}, draw.Src)
}

// SetUniform sets the camera used by Draw.
func (d *Device) SetUniform(u scene.Uniform) {
	d.uniform = u
}

// Draw renders all triangles of the uploaded mesh.
func (d *Device) Draw() error {
	switch {
	case d.released:
		return errReleased
	case d.img == nil:
		return errNoTarget
	case d.mesh == nil:
		return errNoMesh
	}
	d.draws++

	w, h := d.img.Rect.Dx(), d.img.Rect.Dy()
	toPixel := func(p [2]float32) (float32, float32) {
		x, y := d.uniform.Project(p)
		return (x + 1) * float32(w) / 2, (1 - y) * float32(h) / 2
	}

	vv := d.mesh.Vertices
	idx := d.mesh.Indices
	var current [4]float32
	pending := false
	flush := func() {
		if pending {
			d.ras.Draw(d.img, d.img.Bounds(), image.NewUniform(toNRGBA(current)), image.Point{})
			d.ras.Reset(w, h)
			d.ras.DrawOp = draw.Over
			pending = false
		}
	}

	d.ras.Reset(w, h)
	d.ras.DrawOp = draw.Over
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := vv[idx[i]], vv[idx[i+1]], vv[idx[i+2]]
		if a.Color != current {
			flush()
			current = a.Color
		}
		if a.Color[3] == 0 {
			continue
		}

		ax, ay := toPixel(a.Position)
		bx, by := toPixel(b.Position)
		cx, cy := toPixel(c.Position)

		// All triangles are added with the same orientation, so that
		// the coverage of adjacent triangles adds up.
		area := (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
		if area == 0 {
			continue
		} else if area < 0 {
			bx, by, cx, cy = cx, cy, bx, by
		}
		d.ras.MoveTo(ax, ay)
		d.ras.LineTo(bx, by)
		d.ras.LineTo(cx, cy)
		d.ras.ClosePath()
		pending = true
	}
	flush()
	return nil
}

// Present passes the render target to the sink.
func (d *Device) Present() error {
	if d.released {
		return errReleased
	}
	if d.img == nil {
		return errNoTarget
	}
	if d.sink == nil {
		return nil
	}
	return d.sink.Show(d.img)
}

// Release drops the render target and the mesh.  Afterwards all methods
// return errors.
func (d *Device) Release() {
	d.released = true
	d.mesh = nil
	d.img = nil
	d.ras = nil
}

// Draws returns the number of successful calls to Draw.
func (d *Device) Draws() int {
	return d.draws
}

// Image returns the render target, or nil before the first Resize.
func (d *Device) Image() *image.RGBA {
	return d.img
}

func toNRGBA(rgba [4]float32) color.NRGBA {
	conv := func(x float32) uint8 {
		x = max(0, min(1, x))
		return uint8(x*255 + 0.5)
	}
	return color.NRGBA{R: conv(rgba[0]), G: conv(rgba[1]), B: conv(rgba[2]), A: conv(rgba[3])}
}
