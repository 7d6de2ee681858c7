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
	"encoding/xml"
	"slices"
	"strconv"
	"strings"
)

// style holds the computed presentation properties of an element.
type style struct {
	fill        Paint
	fillAlpha   float64 // alpha channel of the fill color
	fillNone    bool
	fillOpacity float64
	fillRule    FillRule

	stroke        Paint
	strokeAlpha   float64
	strokeNone    bool
	strokeOpacity float64
	strokeWidth   float64
	cap           LineCap
	join          LineJoin
	miterLimit    float64
	dash          []float64
	dashOffset    float64

	color      Paint // value of the color property, used by currentColor
	colorAlpha float64

	// alpha is the product of the opacity properties of the element and
	// all its ancestors.  Unlike the other fields it is not inherited
	// directly.
	alpha float64

	hidden  bool // visibility: hidden or collapse
	display bool // false for display: none
}

// initialStyle returns the SVG initial values of all properties.
func initialStyle() style {
	return style{
		fill:          Paint{Kind: PaintColor, Color: Color{0, 0, 0}},
		fillAlpha:     1,
		fillOpacity:   1,
		strokeAlpha:   1,
		strokeNone:    true,
		strokeOpacity: 1,
		strokeWidth:   1,
		miterLimit:    4,
		color:         Paint{Kind: PaintColor, Color: Color{0, 0, 0}},
		colorAlpha:    1,
		alpha:         1,
		display:       true,
	}
}

// child returns the style inherited by a child element.
func (s style) child() style {
	c := s
	c.dash = slices.Clone(s.dash)
	c.display = true
	return c
}

// applyAttrs applies the presentation attributes of an element, followed
// by the declarations of its style attribute, which take precedence.
func (s *style) applyAttrs(attrs []xml.Attr) {
	styleAttr := ""
	for _, a := range attrs {
		if a.Name.Local == "style" {
			styleAttr = a.Value
			continue
		}
		s.apply(a.Name.Local, a.Value)
	}

	for decl := range strings.SplitSeq(styleAttr, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		s.apply(strings.TrimSpace(name), value)
	}
}

// apply sets one property.  Unknown properties and invalid values are
// ignored.
func (s *style) apply(name, value string) {
	value = strings.TrimSpace(value)
	if value == "inherit" || value == "" {
		return
	}

	switch name {
	case "color":
		if c, a, ok := ParseColorAlpha(value); ok {
			s.color = Paint{Kind: PaintColor, Color: c}
			s.colorAlpha = a
		}

	case "fill":
		s.fill, s.fillAlpha, s.fillNone = parsePaint(value, &s.color, s.colorAlpha)
	case "fill-opacity":
		if v, ok := parseOpacity(value); ok {
			s.fillOpacity = v
		}
	case "fill-rule":
		switch value {
		case "nonzero":
			s.fillRule = NonZero
		case "evenodd":
			s.fillRule = EvenOdd
		}

	case "stroke":
		s.stroke, s.strokeAlpha, s.strokeNone = parsePaint(value, &s.color, s.colorAlpha)
	case "stroke-opacity":
		if v, ok := parseOpacity(value); ok {
			s.strokeOpacity = v
		}
	case "stroke-width":
		if v, ok := parseLength(value); ok && v >= 0 {
			s.strokeWidth = v
		}
	case "stroke-linecap":
		switch value {
		case "butt":
			s.cap = CapButt
		case "round":
			s.cap = CapRound
		case "square":
			s.cap = CapSquare
		}
	case "stroke-linejoin":
		switch value {
		case "miter", "miter-clip", "arcs":
			s.join = JoinMiter
		case "round":
			s.join = JoinRound
		case "bevel":
			s.join = JoinBevel
		}
	case "stroke-miterlimit":
		if v, err := strconv.ParseFloat(value, 64); err == nil && v >= 1 {
			s.miterLimit = v
		}
	case "stroke-dasharray":
		s.dash = parseDashArray(value)
	case "stroke-dashoffset":
		if v, ok := parseLength(value); ok {
			s.dashOffset = v
		}

	case "opacity":
		if v, ok := parseOpacity(value); ok {
			s.alpha *= v
		}
	case "visibility":
		switch value {
		case "visible":
			s.hidden = false
		case "hidden", "collapse":
			s.hidden = true
		}
	case "display":
		s.display = value != "none"
	}
}

// fillSpec returns the fill of a shape with this style, or nil.
func (s *style) fillSpec() *Fill {
	if s.fillNone {
		return nil
	}
	return &Fill{
		Paint:   s.fill,
		Opacity: s.fillAlpha * s.fillOpacity * s.alpha,
		Rule:    s.fillRule,
	}
}

// strokeSpec returns the stroke of a shape with this style, or nil.
func (s *style) strokeSpec() *Stroke {
	if s.strokeNone || !(s.strokeWidth > 0) {
		return nil
	}
	return &Stroke{
		Paint:      s.stroke,
		Opacity:    s.strokeAlpha * s.strokeOpacity * s.alpha,
		Width:      s.strokeWidth,
		Cap:        s.cap,
		Join:       s.join,
		MiterLimit: s.miterLimit,
		Dash:       slices.Clone(s.dash),
		DashOffset: s.dashOffset,
	}
}

// parseOpacity parses a number or percentage and clamps it to [0, 1].
func parseOpacity(value string) (float64, bool) {
	scale := 1.0
	if strings.HasSuffix(value, "%") {
		value = value[:len(value)-1]
		scale = 0.01
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return max(0, min(1, v*scale)), true
}

// parseLength parses a length in user units.  Absolute units are converted
// at 96 dpi; percentages and font-relative units are not supported.
func parseLength(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	scale := 1.0
	for _, u := range lengthUnits {
		if strings.HasSuffix(value, u.suffix) {
			value = strings.TrimSpace(value[:len(value)-len(u.suffix)])
			scale = u.scale
			break
		}
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return v * scale, true
}

var lengthUnits = []struct {
	suffix string
	scale  float64
}{
	{"px", 1},
	{"pt", 96.0 / 72},
	{"pc", 16},
	{"mm", 96 / 25.4},
	{"cm", 96 / 2.54},
	{"in", 96},
}

// parseDashArray parses stroke-dasharray.  The result is nil for "none"
// and for invalid arrays, both of which give a solid line.
func parseDashArray(value string) []float64 {
	if value == "none" {
		return nil
	}
	var dash []float64
	for f := range strings.FieldsFuncSeq(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		v, ok := parseLength(f)
		if !ok || v < 0 {
			return nil
		}
		dash = append(dash, v)
	}
	return dash
}
