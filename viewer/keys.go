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

import "seehuhn.de/go/svgmesh/scene"

// Action is the effect of a key press on the viewer.
type Action struct {
	// Close requests the end of the render loop.
	Close bool

	// Zoom, if non-zero, is passed to [scene.Scene.ZoomBy].
	Zoom float32

	// PanX and PanY are passed to [scene.Scene.PanBy], in screen units.
	PanX, PanY float32
}

// apply performs the action on sc and reports whether the viewer should
// close.
func (a Action) apply(sc *scene.Scene) bool {
	if a.Zoom != 0 {
		sc.ZoomBy(a.Zoom)
	}
	if a.PanX != 0 || a.PanY != 0 {
		sc.PanBy(a.PanX, a.PanY)
	}
	return a.Close
}

// KeyTable maps keys to actions.  Keys which are not in the table are
// ignored.
type KeyTable map[Key]Action

// DefaultKeyTable returns the key bindings of the viewer: escape closes
// the window, the square brackets zoom out and in, and the arrow keys pan.
func DefaultKeyTable(cfg Config) KeyTable {
	return KeyTable{
		KeyEscape:       {Close: true},
		KeyLeftBracket:  {Zoom: cfg.ZoomOut},
		KeyRightBracket: {Zoom: cfg.ZoomIn},
		KeyLeft:         {PanX: -cfg.PanStep},
		KeyRight:        {PanX: cfg.PanStep},
		KeyUp:           {PanY: -cfg.PanStep},
		KeyDown:         {PanY: cfg.PanStep},
	}
}

// Help is a one-line description of the default key bindings.
const Help = "Use arrow keys to pan, square brackets to zoom, escape to quit."
