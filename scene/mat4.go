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

package scene

// Mat4 is a 4x4 matrix of float32 values in column-major order, the
// layout expected by GPU uniform buffers.  The entry in row r and column c
// is stored at index 4*c+r.
type Mat4 [16]float32

// Identity4 is the 4x4 identity matrix.
var Identity4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Ortho returns the orthographic projection which maps the box
// [left, right] x [bottom, top] x [-near, -far] to the cube [-1, 1]^3.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

// Mul returns the matrix product m*n.  Applying the result to a vector
// first applies n and then m.
func (m Mat4) Mul(n Mat4) Mat4 {
	var res Mat4
	for c := range 4 {
		for r := range 4 {
			var sum float32
			for k := range 4 {
				sum += m[4*k+r] * n[4*c+k]
			}
			res[4*c+r] = sum
		}
	}
	return res
}

// Apply returns m*v.
func (m Mat4) Apply(v [4]float32) [4]float32 {
	var res [4]float32
	for r := range 4 {
		res[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return res
}

// Extents recovers the horizontal and vertical extents of an orthographic
// projection created by [Ortho].
func (m Mat4) Extents() (left, right, bottom, top float32) {
	width := 2 / m[0]
	sumX := -m[12] * width
	height := 2 / m[5]
	sumY := -m[13] * height
	return (sumX - width) / 2, (sumX + width) / 2, (sumY - height) / 2, (sumY + height) / 2
}
