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

package svgmesh

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeDashedSubpaths strokes the dashes computed by applyDashPattern.
func (t *Tessellator) strokeDashedSubpaths() {
	d := t.strokeOpts.Width / 2
	for _, r := range t.dashes {
		if r.removed {
			continue
		}
		segs := t.dashedSegs[r.start:r.end]

		// Zero-length dashes keep the orientation of the underlying path.
		if len(segs) == 1 && segs[0].A == segs[0].B {
			seg := &segs[0]
			startOffset := len(t.outline)
			switch t.strokeOpts.Cap {
			case graphics.LineCapRound:
				t.addArc(seg.A, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
			case graphics.LineCapSquare:
				t.addSquare(seg.A, seg.T, d)
			default:
				continue
			}
			t.outlineOffsets = append(t.outlineOffsets, startOffset)
			continue
		}

		// dashes are never closed
		t.addOutline(segs, false)
	}
}

// dashRange is the range of one dash in dashedSegs.
type dashRange struct {
	start, end int
	removed    bool // merged into the last dash of a closed subpath
}

// addDash records the dash which consists of dashedSegs[start:].
func (t *Tessellator) addDash(start int) {
	t.dashes = append(t.dashes, dashRange{start: start, end: len(t.dashedSegs)})
}

// applyDashPattern splits the flattened subpaths into dashes.
// Results are stored in t.dashedSegs and t.dashes.
// The result is false if the pattern would generate too many dashes,
// in which case the path is stroked solid.
func (t *Tessellator) applyDashPattern() bool {
	t.dashedSegs = t.dashedSegs[:0]
	t.dashes = t.dashes[:0]

	dash := t.strokeOpts.Dash
	dashLen := len(dash)

	// Total pattern length, doubled for odd-length patterns
	patternLen := 0.0
	for _, d := range dash {
		patternLen += d
	}
	if dashLen%2 == 1 {
		patternLen *= 2
	}

	totalLen := 0.0
	for _, seg := range t.segs {
		totalLen += seg.B.Sub(seg.A).Length()
	}
	if totalLen/patternLen*float64(dashLen) > maxDashCount {
		return false
	}

	// Normalize phase to [0, patternLen)
	phase := math.Mod(t.strokeOpts.DashPhase, patternLen)
	if phase < 0 {
		phase += patternLen
	}

	for spIdx, closed := range t.subpathClosed {
		segments := t.subpathSegments(spIdx)
		if len(segments) == 0 {
			continue
		}

		// Find the starting dash and the distance remaining in it.  Zero
		// length entries are skipped, unless the phase ends exactly at
		// one of them.
		dashIdx := 0
		dist := phase
		for {
			d := dash[dashIdx%dashLen]
			if dist < d || dist == 0 {
				break
			}
			dist -= d
			dashIdx++
		}
		remaining := dash[dashIdx%dashLen] - dist
		isOn := dashIdx%2 == 0 // even indices are "on"

		// A zero-length dash at the very start becomes a dot.
		if isOn && remaining == 0 {
			seg := segments[0]
			t.dashedSegs = append(t.dashedSegs, strokeSegment{A: seg.A, B: seg.A, T: seg.T, N: seg.N})
			t.addDash(len(t.dashedSegs) - 1)
			dashIdx++
			remaining = dash[dashIdx%dashLen]
			isOn = dashIdx%2 == 0
		}

		// For closed subpaths, the first and last dash are joined when the
		// path starts and ends "on".
		startedOn := isOn
		firstDash := -1 // index into t.dashes

		dashStartIdx := len(t.dashedSegs)
		segIdx := 0
		segDist := 0.0 // distance along current segment

		for segIdx < len(segments) {
			seg := segments[segIdx]
			segLen := seg.B.Sub(seg.A).Length()
			segRemaining := segLen - segDist

			if remaining >= segRemaining {
				// The dash continues past this segment.
				if isOn {
					if segDist > 0 {
						startPt := seg.A.Add(seg.B.Sub(seg.A).Mul(segDist / segLen))
						t.dashedSegs = append(t.dashedSegs, strokeSegment{
							A: startPt, B: seg.B,
							T: seg.T, N: seg.N,
						})
					} else {
						t.dashedSegs = append(t.dashedSegs, seg)
					}
				}
				remaining -= segRemaining
				segIdx++
				segDist = 0
				continue
			}

			// The dash ends within this segment.
			endDist := segDist + remaining
			splitPt := seg.A.Add(seg.B.Sub(seg.A).Mul(endDist / segLen))

			if isOn {
				startPt := seg.A.Add(seg.B.Sub(seg.A).Mul(segDist / segLen))
				if splitPt.Sub(startPt).Length() > zeroLengthThreshold {
					t.dashedSegs = append(t.dashedSegs, strokeSegment{
						A: startPt, B: splitPt,
						T: seg.T, N: seg.N,
					})
				} else if len(t.dashedSegs) == dashStartIdx {
					// zero-length dash, drawn with the caps of the
					// underlying segment
					t.dashedSegs = append(t.dashedSegs, strokeSegment{
						A: startPt, B: startPt,
						T: seg.T, N: seg.N,
					})
				}

				if len(t.dashedSegs) > dashStartIdx {
					if firstDash < 0 {
						firstDash = len(t.dashes)
					}
					t.addDash(dashStartIdx)
					dashStartIdx = len(t.dashedSegs)
				}
			}

			segDist = endDist
			dashIdx++
			remaining = dash[dashIdx%dashLen]
			isOn = dashIdx%2 == 0
		}

		if len(t.dashedSegs) > dashStartIdx {
			if closed && startedOn && isOn && firstDash >= 0 {
				// Move the first dash to the end of the last one.
				first := &t.dashes[firstDash]
				t.dashedSegs = append(t.dashedSegs, t.dashedSegs[first.start:first.end]...)
				first.removed = true
			}
			t.addDash(dashStartIdx)
		}
	}
	return true
}

