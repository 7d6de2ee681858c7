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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

func read(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestReadSize(t *testing.T) {
	doc := read(t, `<svg viewBox="10 20 200 100" width="5" height="5"/>`)
	assert.Equal(t, ViewBox{X: 10, Y: 20, Width: 200, Height: 100}, doc.ViewBox)

	doc = read(t, `<svg width="3in" height="50px"></svg>`)
	assert.Equal(t, ViewBox{Width: 288, Height: 50}, doc.ViewBox)

	// an unusable viewBox falls back to width and height
	doc = read(t, `<svg viewBox="0 0 0 10" width="30" height="40"/>`)
	assert.Equal(t, ViewBox{Width: 30, Height: 40}, doc.ViewBox)
}

func TestReadErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want error
	}{
		{"no size", `<svg><rect width="1" height="1"/></svg>`, ErrNoSize},
		{"not svg", `<html><body/></html>`, ErrNotSVG},
		{"empty", ``, ErrNotSVG},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			var loadErr *LoadError
			assert.True(t, errors.As(err, &loadErr))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.svg")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "testdata/does-not-exist.svg", loadErr.Path)
	assert.Contains(t, err.Error(), "does-not-exist.svg")
}

func TestDefaultPaint(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 10 10"><rect width="4" height="4"/></svg>`)
	require.Len(t, doc.Shapes, 1)
	s := doc.Shapes[0]
	require.NotNil(t, s.Fill)
	assert.Equal(t, Color{}, s.Fill.Paint.Resolve())
	assert.Equal(t, 1.0, s.Fill.Opacity)
	assert.Equal(t, NonZero, s.Fill.Rule)
	assert.Nil(t, s.Stroke)
	assert.False(t, s.HasTransform)
	assert.Equal(t, matrix.Identity, s.Transform)
}

func TestInheritance(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 100 100">
  <g transform="translate(5,7)" fill="red" opacity="0.5" stroke="#00f" stroke-width="3">
    <rect id="r" width="10" height="10" fill-opacity="0.5" fill-rule="evenodd"/>
    <g transform="scale(2)" stroke="none">
      <circle cx="1" cy="1" r="1"/>
    </g>
  </g>
</svg>`)
	require.Len(t, doc.Shapes, 2)

	r := doc.Shapes[0]
	assert.Equal(t, "r", r.ID)
	assert.True(t, r.HasTransform)
	assert.Equal(t, matrix.Matrix{1, 0, 0, 1, 5, 7}, r.Transform)
	require.NotNil(t, r.Fill)
	assert.Equal(t, Color{R: 255}, r.Fill.Paint.Color)
	assert.InDelta(t, 0.25, r.Fill.Opacity, 1e-12)
	assert.Equal(t, EvenOdd, r.Fill.Rule)
	require.NotNil(t, r.Stroke)
	assert.Equal(t, Color{B: 255}, r.Stroke.Paint.Color)
	assert.Equal(t, 3.0, r.Stroke.Width)
	assert.InDelta(t, 0.5, r.Stroke.Opacity, 1e-12)

	c := doc.Shapes[1]
	assert.Nil(t, c.Stroke)
	assert.Equal(t, matrix.Matrix{2, 0, 0, 2, 5, 7}, c.Transform)

	tx, ty := doc.FirstTranslation()
	assert.Equal(t, 5.0, tx)
	assert.Equal(t, 7.0, ty)
}

func TestFirstTranslationWithoutTransform(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 10 10"><rect width="1" height="1"/></svg>`)
	tx, ty := doc.FirstTranslation()
	assert.Zero(t, tx)
	assert.Zero(t, ty)
}

func TestStylePrecedence(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 10 10">
  <rect width="1" height="1" fill="red" style="fill: #0000ff !important; stroke:lime"/>
</svg>`)
	require.Len(t, doc.Shapes, 1)
	s := doc.Shapes[0]
	assert.Equal(t, Color{B: 255}, s.Fill.Paint.Color)
	require.NotNil(t, s.Stroke)
	assert.Equal(t, Color{G: 255}, s.Stroke.Paint.Color)
}

func TestPaintValues(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 10 10">
  <rect width="1" height="1" fill="none"/>
  <rect width="1" height="1" fill="transparent"/>
  <rect width="1" height="1" fill="url(#grad) red"/>
  <g color="#123456"><rect width="1" height="1" fill="currentColor"/></g>
  <rect width="1" height="1" fill="rgb(100%, 50%, 0)"/>
</svg>`)
	require.Len(t, doc.Shapes, 5)
	assert.Nil(t, doc.Shapes[0].Fill)
	assert.Nil(t, doc.Shapes[1].Fill)
	assert.Equal(t, PaintUnsupported, doc.Shapes[2].Fill.Paint.Kind)
	assert.Equal(t, FallbackColor, doc.Shapes[2].Fill.Paint.Resolve())
	assert.Equal(t, Color{0x12, 0x34, 0x56}, doc.Shapes[3].Fill.Paint.Resolve())
	assert.Equal(t, Color{255, 128, 0}, doc.Shapes[4].Fill.Paint.Resolve())
}

func TestColorAlpha(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 10 10">
  <rect width="1" height="1" fill="rgba(255, 0, 0, 0.5)" fill-opacity="0.5"/>
  <rect width="1" height="1" fill="none" stroke="#0000ff80"/>
  <g color="rgb(0 0 255 / 40%)" opacity="0.5"><rect width="1" height="1" fill="currentColor"/></g>
  <rect width="1" height="1" fill="#f008"/>
</svg>`)
	require.Len(t, doc.Shapes, 4)

	assert.Equal(t, Color{R: 255}, doc.Shapes[0].Fill.Paint.Color)
	assert.InDelta(t, 0.25, doc.Shapes[0].Fill.Opacity, 1e-12)

	require.NotNil(t, doc.Shapes[1].Stroke)
	assert.Equal(t, Color{B: 255}, doc.Shapes[1].Stroke.Paint.Color)
	assert.InDelta(t, 128.0/255, doc.Shapes[1].Stroke.Opacity, 1e-12)

	assert.Equal(t, Color{B: 255}, doc.Shapes[2].Fill.Paint.Color)
	assert.InDelta(t, 0.2, doc.Shapes[2].Fill.Opacity, 1e-12)

	assert.InDelta(t, 0x88/255.0, doc.Shapes[3].Fill.Opacity, 1e-12)
}

func TestStrokeProperties(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 10 10">
  <line x1="0" y1="0" x2="10" y2="0" stroke="black" stroke-width="2"
    stroke-linecap="round" stroke-linejoin="bevel" stroke-miterlimit="7"
    stroke-dasharray="4, 2" stroke-dashoffset="1"/>
  <polyline points="0,0 5,5 10,0" stroke="black" stroke-dasharray="4 -1"/>
  <path d="M0 0 L1 1" stroke="black" stroke-width="0"/>
</svg>`)
	require.Len(t, doc.Shapes, 3)

	line := doc.Shapes[0]
	assert.Nil(t, line.Fill)
	require.NotNil(t, line.Stroke)
	assert.Equal(t, 2.0, line.Stroke.Width)
	assert.Equal(t, CapRound, line.Stroke.Cap)
	assert.Equal(t, JoinBevel, line.Stroke.Join)
	assert.Equal(t, 7.0, line.Stroke.MiterLimit)
	assert.Equal(t, []float64{4, 2}, line.Stroke.Dash)
	assert.Equal(t, 1.0, line.Stroke.DashOffset)

	poly := doc.Shapes[1]
	require.NotNil(t, poly.Stroke)
	assert.Nil(t, poly.Stroke.Dash)
	assert.Equal(t, 4.0, poly.Stroke.MiterLimit)
	require.NotNil(t, poly.Fill)

	assert.Nil(t, doc.Shapes[2].Stroke)
}

func TestSkippedElements(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 10 10">
  <defs><rect id="in-defs" width="1" height="1"/></defs>
  <g display="none"><rect id="not-displayed" width="1" height="1"/></g>
  <g visibility="hidden">
    <rect id="hidden" width="1" height="1"/>
    <rect id="visible" width="1" height="1" visibility="visible"/>
  </g>
  <text>hello</text>
  <circle id="zero" r="0"/>
  <rect id="kept" width="1" height="1"/>
</svg>
<rect id="after-root" width="1" height="1"/>`)
	var ids []string
	for _, s := range doc.Shapes {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"visible", "kept"}, ids)
}

func TestMalformedPathWarning(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 10 10">
  <path d="M0 0 L10 0 L10 x"/>
  <rect width="1" height="1" transform="wobble(3)"/>
</svg>`)
	require.Len(t, doc.Shapes, 2)
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo}, doc.Shapes[0].Path.Cmds)
	assert.False(t, doc.Shapes[1].HasTransform)
	require.Len(t, doc.Warnings, 2)
	assert.ErrorIs(t, doc.Warnings[0], ErrPathData)
	assert.Contains(t, doc.Warnings[1].Error(), "<rect>")
}

func TestBasicShapes(t *testing.T) {
	doc := read(t, `<svg viewBox="0 0 100 100">
  <rect x="1" y="2" width="3" height="4"/>
  <rect width="10" height="10" rx="2"/>
  <ellipse cx="5" cy="5" rx="3" ry="2"/>
  <polygon points="0 0 10 0 10 10 5"/>
</svg>`)
	require.Len(t, doc.Shapes, 4)

	r := doc.Shapes[0].Path
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, r.Cmds)
	assert.Equal(t, 1.0, r.Coords[0].X)
	assert.Equal(t, 6.0, r.Coords[2].Y)

	assert.Contains(t, doc.Shapes[1].Path.Cmds, path.CmdCubeTo)

	e := doc.Shapes[2].Path
	assert.Len(t, e.Cmds, 6)
	assert.Equal(t, 8.0, e.Coords[0].X)

	p := doc.Shapes[3].Path
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, p.Cmds)
}
