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

// Config holds the settings of the render loop.
type Config struct {
	// ZoomOut and ZoomIn are the zoom factors of the two zoom keys.
	// Default: 0.8 and 1.2
	ZoomOut, ZoomIn float32

	// PanStep is the distance moved by one press of an arrow key, in
	// screen units.  The visible area has size 2 in its smaller dimension.
	// Default: 0.2
	PanStep float32

	// ClearColor is the RGBA background color.
	// Default: opaque white
	ClearColor [4]float32

	// Keys overrides the key bindings.  If nil, DefaultKeyTable is used.
	Keys KeyTable
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		ZoomOut:    0.8,
		ZoomIn:     1.2,
		PanStep:    0.2,
		ClearColor: [4]float32{1, 1, 1, 1},
	}
}

// WithZoomStep returns a copy of c with the given zoom factors.
func (c Config) WithZoomStep(out, in float32) Config {
	c.ZoomOut, c.ZoomIn = out, in
	return c
}

// WithPanStep returns a copy of c with the given pan distance.
func (c Config) WithPanStep(step float32) Config {
	c.PanStep = step
	return c
}

// WithClearColor returns a copy of c with the given background color.
func (c Config) WithClearColor(rgba [4]float32) Config {
	c.ClearColor = rgba
	return c
}

// WithKeys returns a copy of c with the given key bindings.
func (c Config) WithKeys(keys KeyTable) Config {
	c.Keys = keys
	return c
}

func (c Config) keyTable() KeyTable {
	if c.Keys != nil {
		return c.Keys
	}
	return DefaultKeyTable(c)
}
