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
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgmesh/svgdoc"
)

func square(x, y, size float64) *path.Data {
	d := &path.Data{}
	d.MoveTo(vec.Vec2{X: x, Y: y})
	d.LineTo(vec.Vec2{X: x + size, Y: y})
	d.LineTo(vec.Vec2{X: x + size, Y: y + size})
	d.LineTo(vec.Vec2{X: x, Y: y + size})
	d.Close()
	return d
}

func solid(c svgdoc.Color) svgdoc.Paint {
	return svgdoc.Paint{Kind: svgdoc.PaintColor, Color: c}
}

func TestBuildMeshSkipsFailingShape(t *testing.T) {
	bad := &path.Data{}
	bad.MoveTo(vec.Vec2{X: 0, Y: 0})
	bad.LineTo(vec.Vec2{X: math.Inf(1), Y: 0})
	bad.LineTo(vec.Vec2{X: 5, Y: 5})

	red := svgdoc.Color{R: 255}
	doc := &svgdoc.Document{
		ViewBox: svgdoc.ViewBox{Width: 100, Height: 100},
		Shapes: []*svgdoc.Shape{
			{ID: "a", Path: square(0, 0, 10), Fill: &svgdoc.Fill{Paint: solid(red), Opacity: 1}},
			{ID: "bad", Path: bad, Fill: &svgdoc.Fill{Paint: solid(red), Opacity: 1}},
			{ID: "invisible", Path: square(20, 20, 10)},
			{ID: "b", Path: square(40, 40, 10), Stroke: &svgdoc.Stroke{
				Paint: solid(svgdoc.Color{B: 255}), Opacity: 0.5, Width: 2, MiterLimit: 4,
			}},
		},
	}

	mesh, report := BuildMesh(doc, BuildOptions{})
	if err := mesh.Validate(); err != nil {
		t.Fatal(err)
	}

	if len(report.Skipped) != 1 {
		t.Fatalf("%d passes skipped, expected 1", len(report.Skipped))
	}
	skipped := report.Skipped[0]
	if skipped.Shape != 1 || skipped.ID != "bad" || skipped.Op != "fill" || !errors.Is(skipped, ErrInvalidGeometry) {
		t.Errorf("unexpected error %v", skipped)
	}

	if len(report.Shapes) != 4 {
		t.Fatalf("%d shapes in report", len(report.Shapes))
	}
	a, inv, b := report.Shapes[0], report.Shapes[2], report.Shapes[3]
	if got := mesh.SpanArea(a.Fill); got != 100 {
		t.Errorf("fill area %g, expected 100", got)
	}
	if !inv.Fill.IsEmpty() || !inv.Stroke.IsEmpty() || inv.Fill.NumVertices+inv.Stroke.NumVertices != 0 {
		t.Errorf("shape without paint contributed %+v", inv)
	}
	if got, want := mesh.SpanArea(b.Stroke), 4*10*2.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("stroke area %g, expected %g", got, want)
	}

	for _, v := range mesh.Vertices[a.Fill.FirstVertex : a.Fill.FirstVertex+a.Fill.NumVertices] {
		if v.Color != [4]float32{1, 0, 0, 1} {
			t.Fatalf("fill vertex color %v", v.Color)
		}
	}
	for _, v := range mesh.Vertices[b.Stroke.FirstVertex : b.Stroke.FirstVertex+b.Stroke.NumVertices] {
		if v.Color != [4]float32{0, 0, 1, 0.5} {
			t.Fatalf("stroke vertex color %v", v.Color)
		}
	}
}

func TestBuildMeshFromSVG(t *testing.T) {
	const src = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50">
  <rect width="100" height="50" fill="#00ff00"/>
  <path d="M10 10 h 20 v 20 h -20 z" fill="none"/>
</svg>`
	doc, err := svgdoc.Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	mesh, report := BuildMesh(doc, BuildOptions{Tolerance: 0.1})
	if len(report.Skipped) != 0 {
		t.Fatalf("unexpected errors %v", report.Skipped)
	}
	if got := mesh.Area(); got != 5000 {
		t.Errorf("area %g, expected 5000", got)
	}
	if got := report.Shapes[1]; !got.Fill.IsEmpty() || !got.Stroke.IsEmpty() {
		t.Errorf("unfilled path contributed %+v", got)
	}
	b := mesh.Bounds()
	if b.LLx != 0 || b.LLy != 0 || b.URx != 100 || b.URy != 50 {
		t.Errorf("bounds %v", b)
	}
}

func TestConvertPath(t *testing.T) {
	d := &path.Data{}
	d.MoveTo(vec.Vec2{X: 0, Y: 0})
	d.LineTo(vec.Vec2{X: 0, Y: 0})
	d.LineTo(vec.Vec2{X: 10, Y: 0})
	d.QuadTo(vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 0})
	d.CubeTo(vec.Vec2{X: 10, Y: 5}, vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 0, Y: 10})
	d.Close()

	collect := func() ([]path.Command, []vec.Vec2) {
		var cmds []path.Command
		var pts []vec.Vec2
		for cmd, p := range ConvertPath(d) {
			cmds = append(cmds, cmd)
			pts = append(pts, p...)
		}
		return cmds, pts
	}

	cmds, pts := collect()
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdCubeTo, path.CmdClose}
	if !slices.Equal(cmds, wantCmds) {
		t.Errorf("commands %v, expected %v", cmds, wantCmds)
	}
	if len(pts) != 5 {
		t.Errorf("%d points, expected 5", len(pts))
	}

	// the iterator can be restarted
	cmds2, pts2 := collect()
	if !slices.Equal(cmds, cmds2) || !slices.Equal(pts, pts2) {
		t.Error("second iteration differs")
	}

	for range ConvertPath(nil) {
		t.Fatal("nil path gave commands")
	}
}

func TestConvertStroke(t *testing.T) {
	s := &svgdoc.Stroke{
		Paint:      svgdoc.Paint{Kind: svgdoc.PaintUnsupported},
		Width:      3,
		Cap:        svgdoc.CapSquare,
		Join:       svgdoc.JoinBevel,
		MiterLimit: 2,
		Dash:       []float64{4, 2},
		DashOffset: 1,
	}
	c, opts := ConvertStroke(s)
	if c != svgdoc.FallbackColor {
		t.Errorf("color %v, expected fallback", c)
	}
	if opts.Width != 3 || opts.Cap != graphics.LineCapSquare || opts.Join != graphics.LineJoinBevel ||
		opts.MiterLimit != 2 || opts.DashPhase != 1 {
		t.Errorf("unexpected options %+v", opts)
	}
	s.Dash[0] = 100
	if opts.Dash[0] != 4 {
		t.Error("dash array not copied")
	}

	s.Dash = []float64{0, 0}
	_, opts = ConvertStroke(s)
	if opts.Dash != nil {
		t.Errorf("zero dash pattern kept: %v", opts.Dash)
	}
}

func TestConvertFill(t *testing.T) {
	c, opts := ConvertFill(&svgdoc.Fill{Paint: solid(svgdoc.Color{R: 1, G: 2, B: 3}), Rule: svgdoc.EvenOdd})
	if c != (svgdoc.Color{R: 1, G: 2, B: 3}) || opts.Rule != EvenOdd || opts.Tolerance != DefaultTolerance {
		t.Errorf("got %v %+v", c, opts)
	}
}

func TestVertexCtor(t *testing.T) {
	c := svgdoc.Color{R: 255, G: 0, B: 51}
	for _, tc := range []struct {
		opacity float64
		alpha   float32
	}{
		{1, 1},
		{0.25, 0.25},
		{2, 1},
		{-1, 0},
		{math.NaN(), 0},
	} {
		v := NewVertexCtor(c, tc.opacity).Vertex(vec.Vec2{X: 1.5, Y: -2})
		want := Vertex{Position: [2]float32{1.5, -2}, Color: [4]float32{1, 0, 0.2, tc.alpha}}
		if v != want {
			t.Errorf("opacity %g: got %v, expected %v", tc.opacity, v, want)
		}
	}
}

func TestMeshValidate(t *testing.T) {
	m := &Mesh{Vertices: make([]Vertex, 3), Indices: []uint32{0, 1, 2}}
	if err := m.Validate(); err != nil {
		t.Error(err)
	}
	m.Indices = []uint32{0, 1, 3}
	if m.Validate() == nil {
		t.Error("index out of range not detected")
	}
	m.Indices = []uint32{0, 1}
	if m.Validate() == nil {
		t.Error("partial triangle not detected")
	}
}
