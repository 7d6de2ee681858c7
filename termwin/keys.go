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

package termwin

import "seehuhn.de/go/svgmesh/viewer"

// decodeKeys translates the bytes read from a terminal in raw mode into
// input events.  It returns the events and the number of bytes consumed.
// An incomplete escape sequence at the end of buf is left unconsumed,
// unless final is set, in which case a lone escape byte is reported as
// the escape key.
func decodeKeys(buf []byte, final bool) ([]viewer.Event, int) {
	var events []viewer.Event
	pos := 0
	for pos < len(buf) {
		c := buf[pos]
		switch c {
		case 0x1b:
			key, n := decodeEscape(buf[pos:], final)
			if n == 0 {
				return events, pos
			}
			events = append(events, viewer.KeyEvent(key))
			pos += n
			continue

		case 0x03, 0x04: // Ctrl-C, Ctrl-D
			events = append(events, viewer.CloseEvent())
		case '[':
			events = append(events, viewer.KeyEvent(viewer.KeyLeftBracket))
		case ']':
			events = append(events, viewer.KeyEvent(viewer.KeyRightBracket))
		case 'q':
			events = append(events, viewer.KeyEvent(viewer.KeyEscape))
		default:
			events = append(events, viewer.KeyEvent(viewer.KeyUnknown))
		}
		pos++
	}
	return events, pos
}

// decodeEscape decodes the escape sequence at the start of buf.  If more
// input is needed, n is 0.
func decodeEscape(buf []byte, final bool) (key viewer.Key, n int) {
	if len(buf) < 2 {
		if final {
			return viewer.KeyEscape, 1
		}
		return viewer.KeyUnknown, 0
	}
	if buf[1] != '[' && buf[1] != 'O' {
		return viewer.KeyEscape, 1
	}
	if len(buf) < 3 {
		if final {
			return viewer.KeyEscape, 1
		}
		return viewer.KeyUnknown, 0
	}

	switch buf[2] {
	case 'A':
		return viewer.KeyUp, 3
	case 'B':
		return viewer.KeyDown, 3
	case 'C':
		return viewer.KeyRight, 3
	case 'D':
		return viewer.KeyLeft, 3
	}

	// skip other control sequences up to the final byte
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return viewer.KeyUnknown, i + 1
		}
	}
	if final {
		return viewer.KeyUnknown, len(buf)
	}
	return viewer.KeyUnknown, 0
}
