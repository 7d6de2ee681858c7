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
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FallbackColor replaces all paint which is not a solid color.
var FallbackColor = Color{0, 0, 0}

// PaintKind distinguishes solid colors from unsupported paint.
type PaintKind int

// These are the paint kinds.
const (
	PaintColor PaintKind = iota
	PaintUnsupported
)

// Paint is the value of a fill or stroke property.
// Color is only meaningful for PaintColor.
type Paint struct {
	Kind  PaintKind
	Color Color
}

// Resolve returns the color to draw with.
func (p Paint) Resolve() Color {
	if p.Kind == PaintColor {
		return p.Color
	}
	return FallbackColor
}

// parsePaint parses a fill or stroke property value.  The result none is
// true for the value "none".  currentColor is resolved using current and
// currentAlpha.  The alpha of the color is returned separately; it
// multiplies into the fill or stroke opacity.
func parsePaint(s string, current *Paint, currentAlpha float64) (p Paint, alpha float64, none bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == "none" || s == "transparent":
		return Paint{}, 0, true
	case s == "currentColor":
		if current != nil {
			return *current, currentAlpha, false
		}
		return Paint{Kind: PaintUnsupported}, 1, false
	case strings.HasPrefix(s, "url("):
		// gradients and patterns, including any fallback given after
		// the reference
		return Paint{Kind: PaintUnsupported}, 1, false
	}

	if c, a, ok := ParseColorAlpha(s); ok {
		return Paint{Kind: PaintColor, Color: c}, a, false
	}
	return Paint{Kind: PaintUnsupported}, 1, false
}

// ParseColor parses a CSS color: #rgb, #rrggbb, rgb(...), rgba(...) or a
// color keyword.  Any alpha channel is ignored.
func ParseColor(s string) (Color, bool) {
	c, _, ok := ParseColorAlpha(s)
	return c, ok
}

// ParseColorAlpha is like [ParseColor], but also returns the alpha channel
// in [0, 1].  The alpha is given by #rgba, #rrggbbaa or the fourth
// component of rgb()/rgba(); otherwise it is 1.
func ParseColorAlpha(s string) (Color, float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, 0, false
	}

	if s[0] == '#' {
		return parseHexColor(s[1:])
	}

	low := strings.ToLower(s)
	if strings.HasPrefix(low, "rgb(") || strings.HasPrefix(low, "rgba(") {
		return parseRGBFunc(low)
	}

	if c, ok := colornames.Map[low]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, 1, true
	}
	return Color{}, 0, false
}

func parseHexColor(hex string) (Color, float64, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, 0, false
	}
	switch len(hex) {
	case 3:
		v = v<<4 | 0xf
		fallthrough
	case 4:
		r := uint8(v>>12) & 0xf
		g := uint8(v>>8) & 0xf
		b := uint8(v>>4) & 0xf
		a := uint8(v) & 0xf
		return Color{R: r * 17, G: g * 17, B: b * 17}, float64(a) / 15, true
	case 6:
		v = v<<8 | 0xff
		fallthrough
	case 8:
		c := Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8)}
		return c, float64(uint8(v)) / 255, true
	}
	return Color{}, 0, false
}

// parseRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a), with integer or
// percentage components.  The CSS 4 form rgb(r g b / a) is accepted too.
func parseRGBFunc(s string) (Color, float64, bool) {
	open := strings.IndexByte(s, '(')
	closing := strings.LastIndexByte(s, ')')
	if open < 0 || closing < open {
		return Color{}, 0, false
	}
	fields := strings.FieldsFunc(s[open+1:closing], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '/'
	})
	if len(fields) < 3 {
		return Color{}, 0, false
	}

	var rgb [3]uint8
	for i := range 3 {
		f, percent := strings.CutSuffix(fields[i], "%")
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Color{}, 0, false
		}
		if percent {
			v = v * 255 / 100
		}
		v = math.Round(v)
		rgb[i] = uint8(max(0, min(255, v)))
	}

	alpha := 1.0
	if len(fields) > 3 {
		a, ok := parseOpacity(fields[3])
		if !ok {
			return Color{}, 0, false
		}
		alpha = a
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, alpha, true
}
