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
	"errors"
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ParsePathData parses the d attribute of a path element.
//
// Elliptical arcs are converted to cubic Bézier curves.  On malformed
// input the path up to the error is returned together with an error
// wrapping [ErrPathData], matching the SVG error handling rules.
func ParsePathData(s string) (*path.Data, error) {
	p := &pathParser{sc: scanner{s: s}, d: &path.Data{}}
	err := p.parse()
	return p.d, err
}

type pathParser struct {
	sc scanner
	d  *path.Data

	current, start vec.Vec2
	lastCtrl       vec.Vec2 // reflected by S/s and T/t
	lastCmd        byte
	hasCurrent     bool
}

func (p *pathParser) parse() error {
	var cmd byte
	for {
		p.sc.skipSpace()
		if p.sc.done() {
			return nil
		}

		c := p.sc.peek()
		if isCommand(c) {
			cmd = c
			p.sc.pos++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return p.errorf("expected command")
		} else if cmd == 'M' {
			// coordinate pairs after a moveto are implicit linetos
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}

		if !p.hasCurrent && cmd != 'M' && cmd != 'm' {
			return p.errorf("path must start with a moveto")
		}
		if err := p.command(cmd); err != nil {
			return err
		}
		p.lastCmd = cmd
	}
}

func (p *pathParser) command(cmd byte) error {
	rel := cmd >= 'a'
	var base vec.Vec2
	if rel {
		base = p.current
	}

	switch cmd {
	case 'M', 'm':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.d.MoveTo(pt)
		p.current, p.start = pt, pt
		p.hasCurrent = true

	case 'L', 'l':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.d.LineTo(pt)
		p.current = pt

	case 'H', 'h':
		x, err := p.sc.number()
		if err != nil {
			return p.wrap(err)
		}
		pt := vec.Vec2{X: base.X + x, Y: p.current.Y}
		p.d.LineTo(pt)
		p.current = pt

	case 'V', 'v':
		y, err := p.sc.number()
		if err != nil {
			return p.wrap(err)
		}
		pt := vec.Vec2{X: p.current.X, Y: base.Y + y}
		p.d.LineTo(pt)
		p.current = pt

	case 'C', 'c':
		pts, err := p.points(base, 3)
		if err != nil {
			return err
		}
		p.d.CubeTo(pts[0], pts[1], pts[2])
		p.lastCtrl = pts[1]
		p.current = pts[2]

	case 'S', 's':
		pts, err := p.points(base, 2)
		if err != nil {
			return err
		}
		c1 := p.current
		switch p.lastCmd {
		case 'C', 'c', 'S', 's':
			c1 = p.current.Mul(2).Sub(p.lastCtrl)
		}
		p.d.CubeTo(c1, pts[0], pts[1])
		p.lastCtrl = pts[0]
		p.current = pts[1]

	case 'Q', 'q':
		pts, err := p.points(base, 2)
		if err != nil {
			return err
		}
		p.d.QuadTo(pts[0], pts[1])
		p.lastCtrl = pts[0]
		p.current = pts[1]

	case 'T', 't':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		c := p.current
		switch p.lastCmd {
		case 'Q', 'q', 'T', 't':
			c = p.current.Mul(2).Sub(p.lastCtrl)
		}
		p.d.QuadTo(c, pt)
		p.lastCtrl = c
		p.current = pt

	case 'A', 'a':
		var v [3]float64
		for i := range v {
			x, err := p.sc.number()
			if err != nil {
				return p.wrap(err)
			}
			v[i] = x
		}
		large, err := p.sc.flag()
		if err != nil {
			return p.wrap(err)
		}
		sweep, err := p.sc.flag()
		if err != nil {
			return p.wrap(err)
		}
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		arcToCubics(p.d, p.current, pt, v[0], v[1], v[2], large, sweep)
		p.current = pt

	case 'Z', 'z':
		p.d.Close()
		p.current = p.start
	}
	return nil
}

func (p *pathParser) point(base vec.Vec2) (vec.Vec2, error) {
	x, err := p.sc.number()
	if err != nil {
		return vec.Vec2{}, p.wrap(err)
	}
	y, err := p.sc.number()
	if err != nil {
		return vec.Vec2{}, p.wrap(err)
	}
	return vec.Vec2{X: base.X + x, Y: base.Y + y}, nil
}

func (p *pathParser) points(base vec.Vec2, n int) ([]vec.Vec2, error) {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		pt, err := p.point(base)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}

func (p *pathParser) errorf(msg string) error {
	return fmt.Errorf("%w: %s at offset %d", ErrPathData, msg, p.sc.pos)
}

func (p *pathParser) wrap(err error) error {
	return fmt.Errorf("%w: %v at offset %d", ErrPathData, err, p.sc.pos)
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c',
		'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// arcToCubics appends an SVG elliptical arc from p0 to p1, approximated by
// cubic Béziers with at most 90° each.
// The conversion follows the SVG implementation notes, section B.2.4.
func arcToCubics(d *path.Data, p0, p1 vec.Vec2, rx, ry, phiDeg float64, large, sweep bool) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		d.LineTo(p1)
		return
	}

	phi := phiDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// step 1: compute (x1', y1')
	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// scale up radii which are too small
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// step 2: compute (cx', cy')
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// step 3: compute (cx, cy)
	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	// step 4: compute the start angle and the sweep
	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dTheta)/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	step := dTheta / float64(n)
	k := 4.0 / 3 * math.Tan(step/4)

	// ellipse point and derivative for parameter angle t
	at := func(t float64) (pt, deriv vec.Vec2) {
		sinT, cosT := math.Sincos(t)
		ex, ey := rx*cosT, ry*sinT
		dx, dy := -rx*sinT, ry*cosT
		pt = vec.Vec2{X: cx + cosPhi*ex - sinPhi*ey, Y: cy + sinPhi*ex + cosPhi*ey}
		deriv = vec.Vec2{X: cosPhi*dx - sinPhi*dy, Y: sinPhi*dx + cosPhi*dy}
		return pt, deriv
	}

	from, dFrom := at(theta1)
	from = p0
	for i := 1; i <= n; i++ {
		to, dTo := at(theta1 + float64(i)*step)
		if i == n {
			to = p1
		}
		d.CubeTo(from.Add(dFrom.Mul(k)), to.Sub(dTo.Mul(k)), to)
		from, dFrom = to, dTo
	}
}

// scanner splits attribute values into numbers, following the SVG
// grammar: separators are white space and at most one comma, and numbers
// may follow each other without separator ("10-5", "0.5.5").
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) done() bool {
	return sc.pos >= len(sc.s)
}

func (sc *scanner) peek() byte {
	return sc.s[sc.pos]
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f':
			sc.pos++
		default:
			return
		}
	}
}

// skipSeparator skips white space and at most one comma.
func (sc *scanner) skipSeparator() {
	sc.skipSpace()
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ',' {
		sc.pos++
		sc.skipSpace()
	}
}

func (sc *scanner) number() (float64, error) {
	sc.skipSeparator()
	start := sc.pos
	i := sc.pos
	if i < len(sc.s) && (sc.s[i] == '+' || sc.s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(sc.s) && isDigit(sc.s[i]) {
		i++
		digits++
	}
	if i < len(sc.s) && sc.s[i] == '.' {
		i++
		for i < len(sc.s) && isDigit(sc.s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, errNumber
	}
	if i < len(sc.s) && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < len(sc.s) && (sc.s[j] == '+' || sc.s[j] == '-') {
			j++
		}
		if j < len(sc.s) && isDigit(sc.s[j]) {
			for j < len(sc.s) && isDigit(sc.s[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(sc.s[start:i], 64)
	if err != nil {
		return 0, errNumber
	}
	sc.pos = i
	return v, nil
}

// flag reads an arc flag, which is a single 0 or 1.
func (sc *scanner) flag() (bool, error) {
	sc.skipSeparator()
	if sc.pos >= len(sc.s) {
		return false, errNumber
	}
	switch sc.s[sc.pos] {
	case '0':
		sc.pos++
		return false, nil
	case '1':
		sc.pos++
		return true, nil
	}
	return false, errNumber
}

// numbers reads all remaining numbers.
func (sc *scanner) numbers() ([]float64, error) {
	var res []float64
	for {
		sc.skipSeparator()
		if sc.done() {
			return res, nil
		}
		v, err := sc.number()
		if err != nil {
			return res, err
		}
		res = append(res, v)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

var errNumber = errors.New("expected number")
