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

// EventKind identifies the type of an [Event].
type EventKind int

// These are the event kinds delivered by a [Window].
const (
	// EventClose is a request to close the window.
	EventClose EventKind = iota + 1

	// EventResize reports a new window size in Width and Height.
	EventResize

	// EventKey reports a key press in Key.
	EventKey
)

func (k EventKind) String() string {
	switch k {
	case EventClose:
		return "close"
	case EventResize:
		return "resize"
	case EventKey:
		return "key"
	default:
		return "unknown"
	}
}

// Key is a virtual key code.  Only the keys used by the viewer are
// distinguished, all other keys are reported as KeyUnknown.
type Key int

// These are the recognised keys.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeyLeftBracket
	KeyRightBracket
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

var keyNames = [...]string{
	KeyUnknown:      "unknown",
	KeyEscape:       "escape",
	KeyLeftBracket:  "[",
	KeyRightBracket: "]",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyUp:           "up",
	KeyDown:         "down",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// Event is an input event.
type Event struct {
	Kind EventKind

	// Key is set for EventKey.
	Key Key

	// Width and Height are set for EventResize.
	Width, Height int
}

// CloseEvent returns a close request.
func CloseEvent() Event {
	return Event{Kind: EventClose}
}

// ResizeEvent returns a resize event for the given window size.
func ResizeEvent(w, h int) Event {
	return Event{Kind: EventResize, Width: w, Height: h}
}

// KeyEvent returns a key press event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}
