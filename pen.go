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

// Pen holds the paint settings for drawing arcs.
// The zero value draws nothing, since its Alpha is 0.
type Pen struct {
	// Color is the non-premultiplied color of the arc.
	Color color.NRGBA

	// Alpha scales the opacity of all pixel writes.
	// Values are clamped to [0, 1].
	Alpha float64

	// Mode selects how the color is combined with existing pixels.
	Mode Mode

	// Antialias enables splitting the intensity between the two pixels
	// nearest to the circle.  If false, only the nearer pixel is written,
	// at full intensity.
	Antialias bool
}

// NewPen returns a Pen which draws opaque, antialiased arcs in the
// given color, using ModeCopy.
func NewPen(c color.NRGBA) *Pen {
	return &Pen{
		Color:     c,
		Alpha:     1,
		Mode:      ModeCopy,
		Antialias: true,
	}
}

// Arc draws the part of the circle between minAngle and maxAngle.
// See [DrawArc] for the angle conventions.
func (p *Pen) Arc(dst *image.NRGBA, center vec.Vec2, r, minAngle, maxAngle float64) {
	if dst == nil || dst.Rect.Empty() {
		return
	}
	if !(r > 0) || math.IsInf(r, 1) || !isFinite(center.X) || !isFinite(center.Y) {
		return
	}
	alpha := p.Alpha
	if !(alpha > 0) {
		return
	}
	alpha = min(alpha, 1)

	var buf [maxSpans]quadrantSpan
	spans := splitArc(buf[:0], minAngle, maxAngle)
	if len(spans) == 0 {
		return
	}

	pl := plotter{
		dst:     dst,
		color:   p.Color,
		alpha:   alpha,
		flat:    effectiveAlpha(alpha),
		aa:      p.Antialias,
		compose: p.Mode.Compositor(),
	}
	for _, s := range spans {
		pl.quadrant(s, center, r)
	}
}

// Circle draws the full circle.
func (p *Pen) Circle(dst *image.NRGBA, center vec.Vec2, r float64) {
	p.Arc(dst, center, r, 0, fullTurn)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
