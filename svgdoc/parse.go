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
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"
	"seehuhn.de/go/geom/matrix"
)

// Load reads the SVG file with the given name.
func Load(fname string) (*Document, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, &LoadError{Path: fname, Err: err}
	}
	defer fd.Close()

	doc, err := Read(bufio.NewReader(fd))
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = fname
		}
		return nil, err
	}
	return doc, nil
}

// Read reads an SVG document.  Errors are of type [*LoadError].
func Read(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	b := &builder{}
	if err := b.run(decoder); err != nil {
		return nil, &LoadError{Err: err}
	}
	return b.doc, nil
}

// frame is the state of one open element.
type frame struct {
	style        style
	ctm          matrix.Matrix
	hasTransform bool
	skip         bool // the element and its content are not rendered
}

type builder struct {
	doc   *Document
	stack []frame
}

// skipElements are not rendered directly.  Their content is either
// referenced from elsewhere (which is not supported) or is not geometry.
var skipElements = map[string]bool{
	"defs":           true,
	"clipPath":       true,
	"mask":           true,
	"pattern":        true,
	"marker":         true,
	"symbol":         true,
	"linearGradient": true,
	"radialGradient": true,
	"filter":         true,
	"style":          true,
	"script":         true,
	"metadata":       true,
	"title":          true,
	"desc":           true,
	"text":           true,
	"image":          true,
	"use":            true,
	"foreignObject":  true,
	"switch":         true,
}

func (b *builder) run(decoder *xml.Decoder) error {
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			if b.doc == nil {
				return ErrNotSVG
			}
			return nil
		} else if err != nil {
			return err
		}

		switch se := tok.(type) {
		case xml.StartElement:
			if b.doc == nil {
				if err := b.root(se); err != nil {
					return err
				}
				continue
			}
			b.start(se)

		case xml.EndElement:
			if len(b.stack) > 0 {
				b.stack = b.stack[:len(b.stack)-1]
			}
			if len(b.stack) == 0 && b.doc != nil {
				// content after the root element is ignored
				return nil
			}
		}
	}
}

// root handles the outermost element.
func (b *builder) root(se xml.StartElement) error {
	if se.Name.Local != "svg" {
		return ErrNotSVG
	}

	var width, height float64
	var vb *ViewBox
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "viewBox":
			sc := scanner{s: a.Value}
			v, err := sc.numbers()
			if err == nil && len(v) == 4 && v[2] > 0 && v[3] > 0 {
				vb = &ViewBox{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
			}
		case "width":
			width, _ = parseLength(a.Value)
		case "height":
			height, _ = parseLength(a.Value)
		}
	}
	if vb == nil {
		if !(width > 0 && height > 0) {
			return ErrNoSize
		}
		vb = &ViewBox{Width: width, Height: height}
	}
	b.doc = &Document{ViewBox: *vb}

	st := initialStyle()
	st.applyAttrs(se.Attr)
	b.stack = append(b.stack[:0], frame{
		style: st,
		ctm:   matrix.Identity,
		skip:  !st.display,
	})
	return nil
}

// start handles an element inside the root.
func (b *builder) start(se xml.StartElement) {
	parent := &b.stack[len(b.stack)-1]
	if parent.skip || skipElements[se.Name.Local] {
		b.stack = append(b.stack, frame{skip: true})
		return
	}

	f := frame{
		style:        parent.style.child(),
		ctm:          parent.ctm,
		hasTransform: parent.hasTransform,
	}
	f.style.applyAttrs(se.Attr)
	f.skip = !f.style.display
	for _, a := range se.Attr {
		if a.Name.Local != "transform" {
			continue
		}
		m, err := ParseTransform(a.Value)
		if err != nil {
			b.warn(se, err)
			continue
		}
		f.ctm = then(m, f.ctm)
		f.hasTransform = true
	}
	b.stack = append(b.stack, f)

	if f.skip || f.style.hidden {
		return
	}
	b.shape(se, &f)
}

// shape adds the shape for a drawable element.
func (b *builder) shape(se xml.StartElement, f *frame) {
	attrs := make(map[string]string, len(se.Attr))
	for _, a := range se.Attr {
		attrs[a.Name.Local] = a.Value
	}

	p, err := elementPath(se.Name.Local, attrs)
	if err != nil {
		b.warn(se, err)
	}
	if p == nil || len(p.Cmds) == 0 {
		return
	}

	shape := &Shape{
		ID:           attrs["id"],
		Path:         p,
		Fill:         f.style.fillSpec(),
		Stroke:       f.style.strokeSpec(),
		Transform:    f.ctm,
		HasTransform: f.hasTransform,
	}
	if se.Name.Local == "line" {
		// a line encloses no area
		shape.Fill = nil
	}
	b.doc.Shapes = append(b.doc.Shapes, shape)
}

func (b *builder) warn(se xml.StartElement, err error) {
	b.doc.Warnings = append(b.doc.Warnings, fmt.Errorf("<%s>: %w", se.Name.Local, err))
}
