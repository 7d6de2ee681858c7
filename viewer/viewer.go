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

// Package viewer runs the interactive render loop for a tessellated mesh.
//
// A [Controller] owns the camera, the mesh and the loop.  Each call to
// [Controller.Step] drains the pending input events, updates the camera and
// draws one frame.  The mesh is uploaded to the [Device] once; afterwards
// only the camera uniform changes from frame to frame.
package viewer

import (
	"fmt"
	"log/slog"

	"seehuhn.de/go/svgmesh"
	"seehuhn.de/go/svgmesh/scene"
)

// Window delivers input events and reports the drawable size.
type Window interface {
	// PollEvents returns the events which arrived since the last call.
	// It does not block.
	PollEvents() []Event

	// Size returns the current drawable size in pixels.
	Size() (width, height int)
}

// Device submits drawing commands.
type Device interface {
	// Upload stores the vertex and index data which is drawn by Draw.
	Upload(m *svgmesh.Mesh) error

	// Resize changes the size of the render target.
	Resize(width, height int) error

	// Clear fills the render target with an RGBA color.
	Clear(rgba [4]float32)

	// SetUniform sets the camera used by the following Draw calls.
	SetUniform(u scene.Uniform)

	// Draw renders all triangles of the uploaded mesh.
	Draw() error

	// Present shows the render target.  Present may block until the next
	// frame is due.
	Present() error

	// Release frees all resources held by the device.
	Release()
}

// State is the state of the render loop.
type State int

// These are the states of the render loop.  Closing is final.
const (
	Running State = iota
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SetupError is returned if the device cannot be prepared for drawing.
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("viewer: %s: %v", e.Op, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// Controller is the render loop.  All methods must be called from the same
// goroutine.
type Controller struct {
	cfg   Config
	keys  KeyTable
	win   Window
	dev   Device
	mesh  *svgmesh.Mesh
	scene *scene.Scene

	state    State
	frames   int
	width    int
	height   int
	released bool
}

// New prepares the device for drawing mesh under the camera sc.
// The mesh must not be modified afterwards.
func New(cfg Config, win Window, dev Device, mesh *svgmesh.Mesh, sc *scene.Scene) (*Controller, error) {
	c := &Controller{
		cfg:   cfg,
		keys:  cfg.keyTable(),
		win:   win,
		dev:   dev,
		mesh:  mesh,
		scene: sc,
		state: Running,
	}

	c.width, c.height = win.Size()
	if err := dev.Resize(c.width, c.height); err != nil {
		return nil, &SetupError{Op: "resize", Err: err}
	}
	if err := dev.Upload(mesh); err != nil {
		return nil, &SetupError{Op: "upload", Err: err}
	}

	svgmesh.Logger().Debug("device ready",
		slog.Int("width", c.width),
		slog.Int("height", c.height),
		slog.Int("vertices", mesh.VertexCount()),
		slog.Int("indices", len(mesh.Indices)))
	return c, nil
}

// State returns the current state of the loop.
func (c *Controller) State() State {
	return c.state
}

// Frames returns the number of frames drawn so far.
func (c *Controller) Frames() int {
	return c.frames
}

// Scene returns the camera.
func (c *Controller) Scene() *scene.Scene {
	return c.scene
}

// Step runs one iteration of the loop: the pending events are applied in
// order and, unless the loop is closing, one frame is drawn.
func (c *Controller) Step() (State, error) {
	if c.state == Closing {
		return c.state, nil
	}

	for _, ev := range c.win.PollEvents() {
		c.handle(ev)
		if c.state == Closing {
			break
		}
	}
	if c.state == Closing {
		svgmesh.Logger().Info("closing", slog.Int("frames", c.frames))
		return c.state, nil
	}

	if w, h := c.win.Size(); w != c.width || h != c.height {
		if err := c.dev.Resize(w, h); err != nil {
			return c.state, fmt.Errorf("resize to %dx%d: %w", w, h, err)
		}
		c.width, c.height = w, h
		svgmesh.Logger().Debug("render target resized", slog.Int("width", w), slog.Int("height", h))
	}

	c.dev.Clear(c.cfg.ClearColor)
	c.dev.SetUniform(c.scene.Uniform())
	if err := c.dev.Draw(); err != nil {
		return c.state, fmt.Errorf("draw: %w", err)
	}
	if err := c.dev.Present(); err != nil {
		return c.state, fmt.Errorf("present: %w", err)
	}
	c.frames++
	return c.state, nil
}

func (c *Controller) handle(ev Event) {
	log := svgmesh.Logger()
	switch ev.Kind {
	case EventClose:
		c.state = Closing

	case EventResize:
		c.scene.UpdateProjection(scene.OrthoForSize(ev.Width, ev.Height))
		log.Debug("projection updated", slog.Int("width", ev.Width), slog.Int("height", ev.Height))

	case EventKey:
		action, ok := c.keys[ev.Key]
		if !ok {
			return
		}
		log.Debug("preparing to update", slog.String("key", ev.Key.String()), slog.Any("scene", c.scene))
		if action.apply(c.scene) {
			c.state = Closing
		}
		log.Debug("updated", slog.Any("scene", c.scene))
	}
}

// Run calls Step until the loop is closing or an error occurs.  The
// device is released before Run returns.
func (c *Controller) Run() error {
	defer c.release()
	for {
		state, err := c.Step()
		if err != nil {
			return err
		}
		if state == Closing {
			return nil
		}
	}
}

func (c *Controller) release() {
	if c.released {
		return
	}
	c.released = true
	c.dev.Release()
}
