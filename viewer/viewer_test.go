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

package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/svgmesh"
	"seehuhn.de/go/svgmesh/scene"
)

type fakeWindow struct {
	batches [][]Event
	w, h    int
}

func (w *fakeWindow) PollEvents() []Event {
	if len(w.batches) == 0 {
		return nil
	}
	ev := w.batches[0]
	w.batches = w.batches[1:]
	return ev
}

func (w *fakeWindow) Size() (int, int) {
	return w.w, w.h
}

type fakeDevice struct {
	calls    []string
	uniforms []scene.Uniform
	sizes    [][2]int
	uploaded *svgmesh.Mesh

	uploadErr error
	drawErr   error
}

func (d *fakeDevice) Upload(m *svgmesh.Mesh) error {
	d.calls = append(d.calls, "upload")
	d.uploaded = m
	return d.uploadErr
}

func (d *fakeDevice) Resize(w, h int) error {
	d.calls = append(d.calls, "resize")
	d.sizes = append(d.sizes, [2]int{w, h})
	return nil
}

func (d *fakeDevice) Clear([4]float32) {
	d.calls = append(d.calls, "clear")
}

func (d *fakeDevice) SetUniform(u scene.Uniform) {
	d.calls = append(d.calls, "uniform")
	d.uniforms = append(d.uniforms, u)
}

func (d *fakeDevice) Draw() error {
	d.calls = append(d.calls, "draw")
	return d.drawErr
}

func (d *fakeDevice) Present() error {
	d.calls = append(d.calls, "present")
	return nil
}

func (d *fakeDevice) Release() {
	d.calls = append(d.calls, "release")
}

func (d *fakeDevice) count(name string) int {
	n := 0
	for _, c := range d.calls {
		if c == name {
			n++
		}
	}
	return n
}

func testMesh() *svgmesh.Mesh {
	return &svgmesh.Mesh{
		Vertices: []svgmesh.Vertex{
			{Position: [2]float32{0, 0}},
			{Position: [2]float32{10, 0}},
			{Position: [2]float32{0, 10}},
		},
		Indices: []uint32{0, 1, 2},
	}
}

func newTestController(t *testing.T, win *fakeWindow, dev *fakeDevice) *Controller {
	t.Helper()
	sc := scene.New(100, 50, 0, 0, win.w, win.h)
	c, err := New(DefaultConfig(), win, dev, testMesh(), sc)
	require.NoError(t, err)
	return c
}

func TestFrameSequence(t *testing.T) {
	win := &fakeWindow{w: 80, h: 60}
	dev := &fakeDevice{}
	c := newTestController(t, win, dev)
	assert.Equal(t, []string{"resize", "upload"}, dev.calls)

	dev.calls = nil
	state, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, Running, state)
	assert.Equal(t, []string{"clear", "uniform", "draw", "present"}, dev.calls)
	assert.Equal(t, 1, c.Frames())
}

func TestZoomOutThreeTimes(t *testing.T) {
	win := &fakeWindow{w: 80, h: 80}
	dev := &fakeDevice{}
	c := newTestController(t, win, dev)
	before := c.Scene().Uniform()

	win.batches = [][]Event{{
		KeyEvent(KeyLeftBracket),
		KeyEvent(KeyLeftBracket),
		KeyEvent(KeyLeftBracket),
	}}
	_, err := c.Step()
	require.NoError(t, err)

	after := dev.uniforms[len(dev.uniforms)-1]
	assert.InDelta(t, 0.512, after.Zoom/before.Zoom, 1e-6)
	assert.Equal(t, before.Pan, after.Pan)
	assert.Equal(t, before.Projection, after.Projection)
}

func TestArrowKeys(t *testing.T) {
	win := &fakeWindow{w: 80, h: 80}
	dev := &fakeDevice{}
	c := newTestController(t, win, dev)
	zoom := c.Scene().Zoom()
	pan := c.Scene().Pan()

	win.batches = [][]Event{{KeyEvent(KeyRight), KeyEvent(KeyDown), KeyEvent(KeyDown)}}
	_, err := c.Step()
	require.NoError(t, err)
	got := c.Scene().Pan()
	assert.InDelta(t, pan[0]+0.2/zoom, got[0], 1e-4)
	assert.InDelta(t, pan[1]+0.4/zoom, got[1], 1e-4)

	win.batches = [][]Event{{KeyEvent(KeyLeft), KeyEvent(KeyUp), KeyEvent(KeyUp)}}
	_, err = c.Step()
	require.NoError(t, err)
	got = c.Scene().Pan()
	assert.InDelta(t, pan[0], got[0], 1e-4)
	assert.InDelta(t, pan[1], got[1], 1e-4)
}

func TestUnknownKeyIgnored(t *testing.T) {
	win := &fakeWindow{w: 80, h: 80}
	dev := &fakeDevice{}
	c := newTestController(t, win, dev)
	before := c.Scene().Uniform()

	win.batches = [][]Event{{KeyEvent(KeyUnknown), KeyEvent(Key(99))}}
	state, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, Running, state)
	assert.Equal(t, before, c.Scene().Uniform())
}

func TestResize(t *testing.T) {
	win := &fakeWindow{w: 80, h: 80}
	dev := &fakeDevice{}
	c := newTestController(t, win, dev)

	win.w, win.h = 200, 100
	win.batches = [][]Event{{ResizeEvent(200, 100)}}
	_, err := c.Step()
	require.NoError(t, err)

	l, r, b, top := c.Scene().Projection().Extents()
	assert.InDelta(t, -2, l, 1e-6)
	assert.InDelta(t, 2, r, 1e-6)
	assert.InDelta(t, -1, b, 1e-6)
	assert.InDelta(t, 1, top, 1e-6)
	assert.Equal(t, [][2]int{{80, 80}, {200, 100}}, dev.sizes)

	// no further resize while the size is unchanged
	_, err = c.Step()
	require.NoError(t, err)
	assert.Len(t, dev.sizes, 2)
}

func TestCloseStopsDrawing(t *testing.T) {
	for _, ev := range []Event{CloseEvent(), KeyEvent(KeyEscape)} {
		win := &fakeWindow{w: 80, h: 80}
		dev := &fakeDevice{}
		c := newTestController(t, win, dev)

		_, err := c.Step()
		require.NoError(t, err)
		require.Equal(t, 1, dev.count("draw"))

		win.batches = [][]Event{{KeyEvent(KeyRightBracket), ev, KeyEvent(KeyRightBracket)}}
		state, err := c.Step()
		require.NoError(t, err)
		assert.Equal(t, Closing, state, ev.Kind.String())

		for range 3 {
			state, err = c.Step()
			require.NoError(t, err)
			assert.Equal(t, Closing, state)
		}
		assert.Equal(t, 1, dev.count("draw"), ev.Kind.String())
		assert.Equal(t, 1, c.Frames())
	}
}

func TestRunReleasesDevice(t *testing.T) {
	win := &fakeWindow{w: 80, h: 80}
	dev := &fakeDevice{}
	c := newTestController(t, win, dev)
	win.batches = [][]Event{nil, nil, {CloseEvent()}}

	require.NoError(t, c.Run())
	assert.Equal(t, 2, dev.count("draw"))
	assert.Equal(t, 1, dev.count("release"))
	assert.Equal(t, "release", dev.calls[len(dev.calls)-1])
}

func TestRunDrawError(t *testing.T) {
	win := &fakeWindow{w: 80, h: 80}
	dev := &fakeDevice{}
	c := newTestController(t, win, dev)
	errBroken := errors.New("device lost")
	dev.drawErr = errBroken

	err := c.Run()
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, 1, dev.count("release"))
}

func TestUploadError(t *testing.T) {
	errBroken := errors.New("out of memory")
	win := &fakeWindow{w: 80, h: 80}
	dev := &fakeDevice{uploadErr: errBroken}
	_, err := New(DefaultConfig(), win, dev, testMesh(), scene.New(1, 1, 0, 0, 80, 80))

	var setupErr *SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, "upload", setupErr.Op)
	assert.ErrorIs(t, err, errBroken)
}

func TestCustomConfig(t *testing.T) {
	cfg := DefaultConfig().WithZoomStep(0.5, 2).WithPanStep(1)
	keys := DefaultKeyTable(cfg)
	assert.Equal(t, float32(0.5), keys[KeyLeftBracket].Zoom)
	assert.Equal(t, float32(2), keys[KeyRightBracket].Zoom)
	assert.Equal(t, float32(-1), keys[KeyUp].PanY)

	win := &fakeWindow{w: 80, h: 80}
	dev := &fakeDevice{}
	sc := scene.New(2, 2, 0, 0, 80, 80)
	c, err := New(cfg.WithKeys(KeyTable{KeyUp: {Zoom: 3}}), win, dev, testMesh(), sc)
	require.NoError(t, err)

	win.batches = [][]Event{{KeyEvent(KeyUp), KeyEvent(KeyEscape)}}
	state, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, Running, state)
	assert.Equal(t, float32(3), sc.Zoom())
}
