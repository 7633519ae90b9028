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
)

// plotter writes the pixels of one draw call.
// The destination, the color and the compositor are fixed for the
// duration of the call.
type plotter struct {
	dst     *image.NRGBA
	color   color.NRGBA
	alpha   float64 // in (0, 1]
	flat    uint8   // effective alpha of a full-weight write
	aa      bool
	compose Compositor
}

// plotFunc writes the pixel pair (x1, y1), (x2, y2) in screen coordinates.
// The first pixel receives weight 1-w, the second one weight w.
type plotFunc func(x1, y1, x2, y2 int, w float64)

// writer selects the pixel writer for one quadrant.  Checked writers
// skip pixels outside the destination, unchecked writers must only be
// used when all pixels are known to lie inside.
func (p *plotter) writer(checked bool) plotFunc {
	switch {
	case checked && p.aa:
		return p.pairChecked
	case checked:
		return p.singleChecked
	case p.aa:
		return p.pair
	default:
		return p.single
	}
}

func (p *plotter) pair(x1, y1, x2, y2 int, w float64) {
	a1, a2 := splitAlpha(p.alpha, w)
	p.put(x1, y1, a1)
	p.put(x2, y2, a2)
}

func (p *plotter) single(x1, y1, _, _ int, _ float64) {
	p.put(x1, y1, p.flat)
}

func (p *plotter) pairChecked(x1, y1, x2, y2 int, w float64) {
	a1, a2 := splitAlpha(p.alpha, w)
	r := p.dst.Rect
	if (image.Point{X: x1, Y: y1}).In(r) {
		p.put(x1, y1, a1)
	}
	if (image.Point{X: x2, Y: y2}).In(r) {
		p.put(x2, y2, a2)
	}
}

func (p *plotter) singleChecked(x1, y1, _, _ int, _ float64) {
	if (image.Point{X: x1, Y: y1}).In(p.dst.Rect) {
		p.put(x1, y1, p.flat)
	}
}

func (p *plotter) put(x, y int, a uint8) {
	if a == 0 {
		return
	}
	i := p.dst.PixOffset(x, y)
	p.compose(p.dst.Pix[i:], p.color, a)
}

// splitAlpha divides the opacity alpha between a pixel pair with
// boundary weight w, 0 <= w < 1.  The two results add up to
// 255*alpha, up to rounding.
func splitAlpha(alpha, w float64) (a1, a2 uint8) {
	return effectiveAlpha(alpha * (1 - w)), effectiveAlpha(alpha * w)
}

// effectiveAlpha converts an opacity in [0, 1] to the 0-255 range.
func effectiveAlpha(a float64) uint8 {
	return uint8(a*255 + 0.5)
}
