// seehuhn.de/go/arc - antialiased circular arcs
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

package arc

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Angles used by the quadrant decomposition.
const (
	quarterTurn = math.Pi / 2
	fullTurn    = 2 * math.Pi
)

// maxSpans is the largest number of quadrant spans an arc can produce:
// a partial start quadrant, three full quadrants and a partial end
// quadrant which wraps back into the start quadrant.
const maxSpans = 5

// quadrantSpan is the part of an arc which lies inside a single quadrant.
// The angles are local to the quadrant, 0 <= aMin <= aMax <= π/2.
//
// If joined is set, the span continues the span of the preceding
// quadrant.  The pixels on the shared axis are then drawn by the
// preceding quadrant only.
type quadrantSpan struct {
	q          int
	aMin, aMax float64
	joined     bool
}

// NormalizeAngle returns the angle in [0, 2π) which is equivalent to a.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		// a tiny negative input rounds up to 2π
		a = 0
	}
	return a
}

// splitArc decomposes the arc from minAngle to maxAngle into quadrant
// spans and appends these to buf.
//
// A sweep of at least 2π gives the full circle.  Otherwise both angles are
// normalised and the arc runs from minAngle to maxAngle, wrapping through 0
// if needed.  Equal angles give an empty arc.
func splitArc(buf []quadrantSpan, minAngle, maxAngle float64) []quadrantSpan {
	if math.IsNaN(minAngle) || math.IsNaN(maxAngle) {
		return buf
	}
	if maxAngle-minAngle >= fullTurn {
		for q := range 4 {
			buf = append(buf, quadrantSpan{q: q, aMin: 0, aMax: quarterTurn, joined: true})
		}
		return buf
	}

	lo := NormalizeAngle(minAngle)
	hi := NormalizeAngle(maxAngle)
	if hi == lo {
		return buf
	}
	if hi < lo {
		hi += fullTurn
	}

	// Rounding can move lo/quarterTurn onto a quadrant boundary, the
	// clamps keep both indices consistent with lo < hi.
	startQ := min(int(lo/quarterTurn), 3)
	endQ := max(int(math.Ceil(hi/quarterTurn))-1, startQ)
	aLo := lo - float64(startQ)*quarterTurn
	aHi := hi - float64(endQ)*quarterTurn

	if startQ == endQ {
		return append(buf, quadrantSpan{q: startQ % 4, aMin: aLo, aMax: aHi})
	}

	buf = append(buf, quadrantSpan{q: startQ % 4, aMin: aLo, aMax: quarterTurn})
	for q := startQ + 1; q < endQ; q++ {
		buf = append(buf, quadrantSpan{q: q % 4, aMin: 0, aMax: quarterTurn, joined: true})
	}
	return append(buf, quadrantSpan{q: endQ % 4, aMin: 0, aMax: aHi, joined: true})
}

// DrawArc draws the part of the circle with the given center and radius
// which lies between minAngle and maxAngle.
//
// Angles are in radians.  Angle 0 points up (towards smaller y) and
// angles increase clockwise on screen.  The arc runs from minAngle to
// maxAngle; if the normalised maxAngle is smaller than minAngle, the arc
// wraps through angle 0.  A sweep of 2π or more draws the full circle.
//
// Alpha scales the opacity of every pixel write and is clamped to [0, 1].
// Pixels outside dst.Rect are never touched.
func DrawArc(dst *image.NRGBA, center vec.Vec2, r, minAngle, maxAngle float64,
	col color.NRGBA, alpha float64, mode Mode, aa bool) {
	p := Pen{Color: col, Alpha: alpha, Mode: mode, Antialias: aa}
	p.Arc(dst, center, r, minAngle, maxAngle)
}

// DrawCircle draws the full circle with the given center and radius.
// This is the same as calling DrawArc with the angles 0 and 2π.
func DrawCircle(dst *image.NRGBA, center vec.Vec2, r float64,
	col color.NRGBA, alpha float64, mode Mode, aa bool) {
	DrawArc(dst, center, r, 0, fullTurn, col, alpha, mode, aa)
}
