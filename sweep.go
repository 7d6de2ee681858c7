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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Sweep model:
//
// The distinct y coordinates of all edge end points cut the plane into
// horizontal bands.  No edge starts or ends strictly inside a band, so
// within a band every active edge runs from the top to the bottom.  If two
// active edges cross inside a band, the band is split at the first
// crossing.  After this, the left-to-right order of the edges is the same
// at the top and at the bottom of the band.
//
// Walking a band from left to right, the winding number changes by the
// direction of every edge passed.  Each maximal run of inside regions is
// bounded by two edges and forms a trapezoid, which is emitted as one or
// two triangles.

// bandEdge is an active edge, clipped to the current band.
type bandEdge struct {
	e      *edge
	xt, xb float64 // x at the top and at the bottom of the band
}

// sweep triangulates the region enclosed by t.edges.
func (t *Tessellator) sweep(rule FillRule) error {
	t.ys = t.ys[:0]
	for i := range t.edges {
		t.ys = append(t.ys, t.edges[i].y0, t.edges[i].y1)
	}
	slices.Sort(t.ys)
	t.ys = slices.Compact(t.ys)

	slices.SortFunc(t.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	t.active = t.active[:0]
	next := 0
	for i := 0; i+1 < len(t.ys); i++ {
		top, bottom := t.ys[i], t.ys[i+1]

		// Remove edges which end at or above the top of the band.
		k := 0
		for _, idx := range t.active {
			if t.edges[idx].y1 > top {
				t.active[k] = idx
				k++
			}
		}
		t.active = t.active[:k]

		// Add edges which start at the top of the band.
		for next < len(t.edges) && t.edges[next].y0 <= top {
			t.active = append(t.active, next)
			next++
		}

		if len(t.active) < 2 {
			continue
		}
		if err := t.sweepBand(top, bottom, rule); err != nil {
			return err
		}
	}
	return nil
}

// sweepBand emits the triangles for the band between top and bottom,
// splitting the band at edge crossings.
func (t *Tessellator) sweepBand(top, bottom float64, rule FillRule) error {
	n := len(t.active)

	// Every pair of edges crosses at most once, so the band is split at
	// most n(n-1)/2 times.
	limit := n*(n-1)/2 + 1
	for range limit {
		t.band = t.band[:0]
		for _, idx := range t.active {
			e := &t.edges[idx]
			t.band = append(t.band, bandEdge{e: e, xt: e.xAt(top), xb: e.xAt(bottom)})
		}
		slices.SortFunc(t.band, compareBandEdges)

		split := bottom
		for j := 0; j+1 < len(t.band); j++ {
			l, r := &t.band[j], &t.band[j+1]
			if l.xb <= r.xb+sameX(l.xb, r.xb) {
				continue
			}

			// The edges swap order between top and bottom.  Both are linear
			// in y, so the crossing is at fraction s of the band height.
			denom := (l.xb - l.xt) - (r.xb - r.xt)
			if denom <= 0 {
				continue
			}
			s := (r.xt - l.xt) / denom
			yc := top + s*(bottom-top)
			if yc-top <= crossingEpsilon*(1+math.Abs(top)) || yc >= split {
				continue
			}
			split = yc
		}

		if split < bottom {
			for j := range t.band {
				t.band[j].xb = t.band[j].e.xAt(split)
			}
		}
		if err := t.emitBand(top, split, rule); err != nil {
			return err
		}
		if split == bottom {
			return nil
		}
		top = split
	}
	return ErrDegenerate
}

// emitBand emits the trapezoids of the current band which are inside
// according to the fill rule.  The band edges must be sorted by x.
func (t *Tessellator) emitBand(top, bottom float64, rule FillRule) error {
	w := 0
	var left *bandEdge
	for j := range t.band {
		be := &t.band[j]
		wasInside := rule.inside(w)
		w += be.e.dir
		isInside := rule.inside(w)

		switch {
		case !wasInside && isInside:
			left = be
		case wasInside && !isInside:
			if err := t.trapezoid(top, bottom, left, be); err != nil {
				return err
			}
			left = nil
		}
	}
	return nil
}

// trapezoid emits the region between the edges l and r.
// Both triangles are oriented the same way, (tl, tr, br) and (tl, br, bl).
func (t *Tessellator) trapezoid(top, bottom float64, l, r *bandEdge) error {
	if l == nil {
		return nil
	}
	tl := vec.Vec2{X: l.xt, Y: top}
	tr := vec.Vec2{X: r.xt, Y: top}
	br := vec.Vec2{X: r.xb, Y: bottom}
	bl := vec.Vec2{X: l.xb, Y: bottom}

	if r.xt > l.xt {
		if err := t.triangle(tl, tr, br); err != nil {
			return err
		}
	}
	if r.xb > l.xb {
		if err := t.triangle(tl, br, bl); err != nil {
			return err
		}
	}
	return nil
}

// compareBandEdges orders edges by their x coordinate at the top of the
// band.  Edges which meet at the top are ordered by their x coordinate at
// the bottom.
func compareBandEdges(a, b bandEdge) int {
	if math.Abs(a.xt-b.xt) > sameX(a.xt, b.xt) {
		return cmp.Compare(a.xt, b.xt)
	}
	return cmp.Compare(a.xb, b.xb)
}

// sameX returns the distance below which the x coordinates a and b are
// considered equal.
func sameX(a, b float64) float64 {
	return sameXEpsilon * (1 + max(math.Abs(a), math.Abs(b)))
}
