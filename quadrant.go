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
	"context"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// quadrants maps quadrant-local coordinates to screen offsets from the
// circle center.  The linear part of each map is a signed permutation, so
// that the scan in local space always runs in the (+,+) quadrant.
// Quadrant 0 is the top right quadrant in screen space, the remaining
// quadrants follow in clockwise order.
var quadrants = [4]matrix.Matrix{
	{1, 0, 0, -1, 0, 0},
	{0, 1, 1, 0, 0, 0},
	{-1, 0, 0, 1, 0, 0},
	{0, -1, -1, 0, 0, 0},
}

// acceptMargin is the distance (in pixels) the local bounding box of a
// quadrant must keep from the destination edges for the unchecked pixel
// writers to be used.  The scan touches pixels up to two units outside
// the box, and rounding to pixel coordinates adds one more.
const acceptMargin = 3

// localToScreen maps the local point (x, y) to the screen pixel containing it.
func localToScreen(m matrix.Matrix, x, y float64) (int, int) {
	sx := m[0]*x + m[2]*y + m[4]
	sy := m[1]*x + m[3]*y + m[5]
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// screenToLocal maps the screen point (sx, sy) to local coordinates.
// Since the linear part of m is a signed permutation, its inverse is
// the transpose.
func screenToLocal(m matrix.Matrix, sx, sy float64) (x, y float64) {
	dx := sx - m[4]
	dy := sy - m[5]
	return m[0]*dx + m[1]*dy, m[2]*dx + m[3]*dy
}

// localClip returns the destination's pixel rectangle in the local
// coordinates of m.  The bounds are inclusive pixel coordinates.
func (p *plotter) localClip(m matrix.Matrix) rect.Rect {
	b := p.dst.Rect
	x0, y0 := screenToLocal(m, float64(b.Min.X), float64(b.Min.Y))
	x1, y1 := screenToLocal(m, float64(b.Max.X-1), float64(b.Max.Y-1))
	return rect.Rect{
		LLx: min(x0, x1),
		LLy: min(y0, y1),
		URx: max(x0, x1),
		URy: max(y0, y1),
	}
}

// quadrant draws the part of the circle described by s.  Local angle 0
// corresponds to the local point (0, r).
func (p *plotter) quadrant(s quadrantSpan, center vec.Vec2, r float64) {
	q, aMin, aMax := s.q, s.aMin, s.aMax
	m := quadrants[q]
	m[4], m[5] = center.X, center.Y

	clip := p.localClip(m)

	// Bounding box of the arc in local space.
	xLo, xHi, yLo, yHi := 0.0, r, 0.0, r
	if aMin > 0 {
		xLo = r * math.Sin(aMin)
		yHi = r * math.Cos(aMin)
	}
	if aMax < quarterTurn {
		xHi = r * math.Sin(aMax)
		yLo = r * math.Cos(aMax)
	}

	if xLo > clip.URx || xHi < clip.LLx || yLo > clip.URy || yHi < clip.LLy {
		logQuadrant("arc: quadrant outside destination", q, r)
		return
	}

	r2 := r * r
	var plot plotFunc
	if xLo > clip.LLx+acceptMargin && xHi < clip.URx-acceptMargin &&
		yLo > clip.LLy+acceptMargin && yHi < clip.URy-acceptMargin {
		plot = p.writer(false)
	} else {
		// Move each box edge onto the clip boundary, following the
		// circle for the adjacent edge.
		if xLo < clip.LLx {
			xLo = clip.LLx
			yHi = math.Sqrt(r2 - xLo*xLo)
		}
		if xHi > clip.URx {
			xHi = clip.URx
			yLo = math.Sqrt(r2 - xHi*xHi)
		}
		if yLo < clip.LLy {
			yLo = clip.LLy
			xHi = math.Sqrt(r2 - yLo*yLo)
		}
		if yHi > clip.URy {
			yHi = clip.URy
			xLo = math.Sqrt(r2 - yHi*yHi)
		}
		if xLo > xHi || yLo > yHi {
			logQuadrant("arc: quadrant clipped away", q, r)
			return
		}
		plot = p.writer(true)
	}

	oct := r / math.Sqrt2

	// The column x = 0 lies on the axis shared with the preceding
	// quadrant, whose pass B has already drawn it.
	skipAxis := s.joined && xLo == 0

	// Pass A: the steep part, one step per column.  The weight w is the
	// distance from the circle to the next pixel boundary above it.  When
	// w drops, the circle has crossed a pixel boundary and the row moves
	// down by one.  Both passes count integer steps, since for huge radii
	// adding 1 to a local coordinate may leave it unchanged.
	var wPrev float64
	xMid := min(xHi-1, oct)
	y := yHi
	for i := 0; float64(i) <= xMid-xLo; i++ {
		x := xLo + float64(i)
		z := math.Sqrt(r2 - x*x)
		w := math.Ceil(z) - z
		if w < wPrev {
			y--
		}
		wPrev = w
		if i == 0 && skipAxis {
			continue
		}
		x1, y1 := localToScreen(m, x, y)
		x2, y2 := localToScreen(m, x, y-1)
		plot(x1, y1, x2, y2, w)
	}

	// Pass B: the flat part, one step per row.
	wPrev = 0
	yMid := min(yHi-1, oct)
	x := xHi
	for i := 0; float64(i) <= yMid-yLo; i++ {
		y := yLo + float64(i)
		z := math.Sqrt(r2 - y*y)
		w := math.Ceil(z) - z
		if w < wPrev {
			x--
		}
		wPrev = w
		x1, y1 := localToScreen(m, x, y)
		x2, y2 := localToScreen(m, x-1, y)
		plot(x1, y1, x2, y2, w)
	}
}

func logQuadrant(msg string, q int, r float64) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(msg, "quadrant", q, "radius", r)
}
