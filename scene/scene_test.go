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

package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromViewBox(t *testing.T) {
	s := New(100, 50, 0, 0, 800, 800)
	assert.InDelta(t, 0.02, s.Zoom(), 1e-7)
	assert.Equal(t, [2]float32{-50, -25}, s.Pan())

	s = New(100, 50, 3, -4, 800, 800)
	assert.Equal(t, [2]float32{-47, -29}, s.Pan())
}

func TestNewCentresViewBox(t *testing.T) {
	s := New(100, 50, 0, 0, 600, 600)
	u := s.Uniform()

	x, y := u.Project([2]float32{50, 25})
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)

	// the larger dimension fills the clip space
	x, _ = u.Project([2]float32{0, 25})
	assert.InDelta(t, -1, x, 1e-6)
	x, _ = u.Project([2]float32{100, 25})
	assert.InDelta(t, 1, x, 1e-6)

	// document y points down, clip space y points up
	_, y = u.Project([2]float32{50, 0})
	assert.InDelta(t, 0.5, y, 1e-6)
}

func TestZoomBy(t *testing.T) {
	s := New(100, 50, 0, 0, 800, 600)
	pan := s.Pan()
	proj := s.Projection()
	z0 := s.Zoom()

	for range 3 {
		s.ZoomBy(0.8)
	}
	assert.InDelta(t, 0.512, s.Zoom()/z0, 1e-6)
	assert.Equal(t, pan, s.Pan())
	assert.Equal(t, proj, s.Projection())
}

func TestZoomStaysPositive(t *testing.T) {
	s := New(10, 10, 0, 0, 100, 100)
	z := s.Zoom()
	for _, f := range []float32{0, -1, math32.Inf(1), math32.NaN()} {
		s.ZoomBy(f)
		assert.Equal(t, z, s.Zoom(), "factor %v", f)
	}

	for range 10000 {
		s.ZoomBy(0.5)
	}
	assert.Greater(t, s.Zoom(), float32(0))
}

func TestPanByScalesWithZoom(t *testing.T) {
	a := New(2, 2, 0, 0, 100, 100) // zoom 1
	b := New(1, 1, 0, 0, 100, 100) // zoom 2
	require.Equal(t, float32(1), a.Zoom())
	require.Equal(t, float32(2), b.Zoom())

	pa, pb := a.Pan(), b.Pan()
	a.PanBy(0.2, 0)
	b.PanBy(0.2, 0)
	da := a.Pan()[0] - pa[0]
	db := b.Pan()[0] - pb[0]
	assert.InDelta(t, da/2, db, 1e-7)
	assert.Equal(t, pa[1], a.Pan()[1])
}

func TestOrthoForSize(t *testing.T) {
	cases := []struct {
		w, h                     int
		left, right, bottom, top float32
	}{
		{800, 800, -1, 1, -1, 1},
		{800, 400, -2, 2, -1, 1},
		{400, 800, -1, 1, -2, 2},
		{300, 200, -1.5, 1.5, -1, 1},
		{0, 100, -1, 1, -1, 1},
	}
	for _, c := range cases {
		l, r, b, top := OrthoForSize(c.w, c.h).Extents()
		assert.InDelta(t, c.left, l, 1e-6, "%dx%d", c.w, c.h)
		assert.InDelta(t, c.right, r, 1e-6, "%dx%d", c.w, c.h)
		assert.InDelta(t, c.bottom, b, 1e-6, "%dx%d", c.w, c.h)
		assert.InDelta(t, c.top, top, 1e-6, "%dx%d", c.w, c.h)
	}
}

func TestUpdateProjection(t *testing.T) {
	s := New(100, 100, 0, 0, 800, 800)
	s.UpdateProjection(OrthoForSize(1000, 500))
	assert.Equal(t, OrthoForSize(1000, 500), s.Uniform().Projection)
}

func TestMat4(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, -1, 1)
	assert.Equal(t, m, m.Mul(Identity4))
	assert.Equal(t, m, Identity4.Mul(m))

	v := m.Apply([4]float32{2, -1, 0, 1})
	assert.Equal(t, [4]float32{1, -1, 0, 1}, v)

	// translation followed by scaling
	tr := Identity4
	tr[12], tr[13] = 1, 2
	sc := Identity4
	sc[0], sc[5] = 3, 4
	v = sc.Mul(tr).Apply([4]float32{1, 1, 0, 1})
	assert.Equal(t, [4]float32{6, 12, 0, 1}, v)
}
