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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestParsePathData(t *testing.T) {
	for _, tc := range []struct {
		d      string
		cmds   []path.Command
		coords []vec.Vec2
	}{
		{
			d:      "M10 20 L30 40 H50 V60 Z",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose},
			coords: []vec.Vec2{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 40}, {X: 50, Y: 60}},
		},
		{
			d:      "m10 10 5 0 l0 5 -5,0 z",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose},
			coords: []vec.Vec2{{X: 10, Y: 10}, {X: 15, Y: 10}, {X: 15, Y: 15}, {X: 10, Y: 15}},
		},
		{
			d:      "M0.5.5L10-5",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo},
			coords: []vec.Vec2{{X: 0.5, Y: 0.5}, {X: 10, Y: -5}},
		},
		{
			d:      "M0 0 Q10 0 10 10 T20 20",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdQuadTo, path.CmdQuadTo},
			coords: []vec.Vec2{{}, {X: 10}, {X: 10, Y: 10}, {X: 10, Y: 20}, {X: 20, Y: 20}},
		},
		{
			d:      "M0 0 C0 10 10 10 10 0 S20 -10 20 0",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo},
			coords: []vec.Vec2{{}, {Y: 10}, {X: 10, Y: 10}, {X: 10}, {X: 10, Y: -10}, {X: 20, Y: -10}, {X: 20}},
		},
		{
			d:      "M1e1 2E-1 l 1e+1,0",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo},
			coords: []vec.Vec2{{X: 10, Y: 0.2}, {X: 20, Y: 0.2}},
		},
		{
			d:      "",
			cmds:   nil,
			coords: nil,
		},
	} {
		t.Run(tc.d, func(t *testing.T) {
			d, err := ParsePathData(tc.d)
			require.NoError(t, err)
			assert.Equal(t, tc.cmds, d.Cmds)
			require.Len(t, d.Coords, len(tc.coords))
			for i, want := range tc.coords {
				assert.InDelta(t, want.X, d.Coords[i].X, 1e-12)
				assert.InDelta(t, want.Y, d.Coords[i].Y, 1e-12)
			}
		})
	}
}

func TestParsePathDataErrors(t *testing.T) {
	for _, d := range []string{
		"L10 10",
		"M0 0 L10",
		"M0 0 Z 5 5",
		"M0 0 A10 10 0 2 0 5 5",
		"M0 0 X",
	} {
		t.Run(d, func(t *testing.T) {
			p, err := ParsePathData(d)
			assert.ErrorIs(t, err, ErrPathData)
			assert.NotNil(t, p)
		})
	}
}

func TestArc(t *testing.T) {
	// half circle from (0, 0) to (20, 0) through (10, -10)
	d, err := ParsePathData("M0 0 A10 10 0 0 1 20 0")
	require.NoError(t, err)
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo}, d.Cmds)
	require.Len(t, d.Coords, 7)
	assert.InDelta(t, 10, d.Coords[3].X, 1e-9)
	assert.InDelta(t, -10, d.Coords[3].Y, 1e-9)
	assert.Equal(t, vec.Vec2{X: 20, Y: 0}, d.Coords[6])

	// compact flags, radii too small, which are scaled up
	d, err = ParsePathData("M0 0a1 1 0 0110 0")
	require.NoError(t, err)
	require.Len(t, d.Coords, 7)
	assert.InDelta(t, 5, d.Coords[3].X, 1e-9)
	assert.InDelta(t, -5, d.Coords[3].Y, 1e-9)

	// a zero radius gives a straight line
	d, err = ParsePathData("M0 0 A0 5 0 0 0 3 4")
	require.NoError(t, err)
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo}, d.Cmds)

	// identical end points give nothing
	d, err = ParsePathData("M1 1 A5 5 0 0 0 1 1")
	require.NoError(t, err)
	assert.Equal(t, []path.Command{path.CmdMoveTo}, d.Cmds)
}

func TestParseTransform(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want matrix.Matrix
	}{
		{"", matrix.Identity},
		{"translate(10 20)", matrix.Matrix{1, 0, 0, 1, 10, 20}},
		{"translate(10)", matrix.Matrix{1, 0, 0, 1, 10, 0}},
		{"scale(2, 3)", matrix.Matrix{2, 0, 0, 3, 0, 0}},
		{"translate(10) scale(2)", matrix.Matrix{2, 0, 0, 2, 10, 0}},
		{"scale(2),translate(10)", matrix.Matrix{2, 0, 0, 2, 20, 0}},
		{"matrix(1 2 3 4 5 6)", matrix.Matrix{1, 2, 3, 4, 5, 6}},
		{"rotate(90)", matrix.Matrix{0, 1, -1, 0, 0, 0}},
		{"rotate(180 5 5)", matrix.Matrix{-1, 0, 0, -1, 10, 10}},
		{"skewX(45)", matrix.Matrix{1, 0, 1, 1, 0, 0}},
	} {
		t.Run(tc.in, func(t *testing.T) {
			m, err := ParseTransform(tc.in)
			require.NoError(t, err)
			for i := range m {
				assert.InDelta(t, tc.want[i], m[i], 1e-12, "entry %d", i)
			}
		})
	}

	for _, bad := range []string{"wobble(1)", "translate(1", "scale()", "rotate(1, 2)"} {
		_, err := ParseTransform(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#f80", Color{0xff, 0x88, 0x00}, true},
		{"#12345678", Color{0x12, 0x34, 0x56}, true},
		{"rgb(1, 2, 3)", Color{1, 2, 3}, true},
		{"RGBA(300 0 0 / 0.5)", Color{255, 0, 0}, true},
		{"CornflowerBlue", Color{100, 149, 237}, true},
		{"#12", Color{}, false},
		{"#ggg", Color{}, false},
		{"rgb(1,2)", Color{}, false},
		{"no-such-color", Color{}, false},
		{"", Color{}, false},
	} {
		c, ok := ParseColor(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, c, tc.in)
		}
	}
	assert.Equal(t, "#6495ed", Color{100, 149, 237}.Hex())
}

func TestParseColorAlpha(t *testing.T) {
	for _, tc := range []struct {
		in    string
		want  Color
		alpha float64
	}{
		{"red", Color{R: 255}, 1},
		{"#0f08", Color{G: 255}, 8.0 / 15},
		{"#00ff0080", Color{G: 255}, 128.0 / 255},
		{"rgba(0, 0, 255, 0.25)", Color{B: 255}, 0.25},
		{"rgb(0 0 255 / 50%)", Color{B: 255}, 0.5},
		{"rgba(0, 0, 255, 3)", Color{B: 255}, 1},
	} {
		c, a, ok := ParseColorAlpha(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.want, c, tc.in)
		assert.InDelta(t, tc.alpha, a, 1e-12, tc.in)
	}

	_, _, ok := ParseColorAlpha("rgba(0, 0, 255, x)")
	assert.False(t, ok)
}

func TestParseLength(t *testing.T) {
	v, ok := parseLength("72pt")
	assert.True(t, ok)
	assert.InDelta(t, 96, v, 1e-12)

	v, ok = parseLength(" 2.54cm ")
	assert.True(t, ok)
	assert.InDelta(t, 96, v, 1e-12)

	_, ok = parseLength("50%")
	assert.False(t, ok)

	v, ok = parseOpacity("40%")
	assert.True(t, ok)
	assert.InDelta(t, 0.4, v, 1e-12)

	v, _ = parseOpacity("7")
	assert.Equal(t, 1.0, v)

}
