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
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// ParseTransform parses the value of a transform attribute.
// The functions in the list are applied right to left, so that
// "translate(10) scale(2)" first scales and then translates.
func ParseTransform(s string) (matrix.Matrix, error) {
	m := matrix.Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		closing := strings.IndexByte(rest, ')')
		if open < 0 || closing < open {
			return matrix.Identity, fmt.Errorf("invalid transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		sc := scanner{s: rest[open+1 : closing]}
		args, err := sc.numbers()
		if err != nil {
			return matrix.Identity, fmt.Errorf("invalid transform %q: %w", s, err)
		}

		t, err := transformFunc(name, args)
		if err != nil {
			return matrix.Identity, fmt.Errorf("invalid transform %q: %w", s, err)
		}
		m = then(t, m)

		rest = strings.TrimLeft(rest[closing+1:], " \t\r\n,")
	}
	return m, nil
}

func transformFunc(name string, args []float64) (matrix.Matrix, error) {
	n := len(args)
	switch {
	case name == "matrix" && n == 6:
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil

	case name == "translate" && (n == 1 || n == 2):
		ty := 0.0
		if n == 2 {
			ty = args[1]
		}
		return matrix.Matrix{1, 0, 0, 1, args[0], ty}, nil

	case name == "scale" && (n == 1 || n == 2):
		sy := args[0]
		if n == 2 {
			sy = args[1]
		}
		return matrix.Scale(args[0], sy), nil

	case name == "rotate" && (n == 1 || n == 3):
		sin, cos := math.Sincos(args[0] * math.Pi / 180)
		r := matrix.Matrix{cos, sin, -sin, cos, 0, 0}
		if n == 3 {
			cx, cy := args[1], args[2]
			r = then(then(matrix.Matrix{1, 0, 0, 1, -cx, -cy}, r), matrix.Matrix{1, 0, 0, 1, cx, cy})
		}
		return r, nil

	case name == "skewX" && n == 1:
		return matrix.Matrix{1, 0, math.Tan(args[0] * math.Pi / 180), 1, 0, 0}, nil

	case name == "skewY" && n == 1:
		return matrix.Matrix{1, math.Tan(args[0] * math.Pi / 180), 0, 1, 0, 0}, nil
	}
	return matrix.Identity, fmt.Errorf("unsupported function %s with %d arguments", name, n)
}

// then returns the transformation which first applies m and then n.
func then(m, n matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}
