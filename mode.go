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
	"fmt"
	"image/color"
)

// Mode selects how the arc color is combined with the existing pixels.
type Mode uint8

// These are the supported compositing modes.
// All colors are non-premultiplied.
const (
	// ModeCopy moves the pixel towards the arc color by the effective
	// alpha.  At full alpha the pixel is replaced, including its alpha
	// channel.
	ModeCopy Mode = iota

	// ModeBlend composites the arc color over the pixel, using the alpha
	// channel of the arc color scaled by the effective alpha.
	ModeBlend

	// ModeAdd adds the arc color to the pixel, saturating at 255.
	ModeAdd

	// ModeDodge brightens the pixel by the arc color (color dodge).
	ModeDodge

	// ModeMultiply multiplies the pixel by the arc color.
	ModeMultiply

	// ModeOverlay combines the pixel and the arc color using the overlay
	// formula: multiply for dark pixels, screen for bright ones.
	ModeOverlay
)

func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "copy"
	case ModeBlend:
		return "blend"
	case ModeAdd:
		return "add"
	case ModeDodge:
		return "dodge"
	case ModeMultiply:
		return "multiply"
	case ModeOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// A Compositor combines the color c with the pixel p.
// The slice p holds at least the four bytes R, G, B, A of one pixel in
// [image.NRGBA] layout.  The effective alpha ranges from 0 (p is left
// unchanged) to 255.
type Compositor func(p []uint8, c color.NRGBA, alpha uint8)

var compositors = [...]Compositor{
	ModeCopy:     compositeCopy,
	ModeBlend:    compositeBlend,
	ModeAdd:      compositeAdd,
	ModeDodge:    compositeDodge,
	ModeMultiply: compositeMultiply,
	ModeOverlay:  compositeOverlay,
}

// Compositor returns the pixel combine function for the mode.
// Unknown modes use ModeCopy.
func (m Mode) Compositor() Compositor {
	if int(m) < len(compositors) {
		return compositors[m]
	}
	return compositeCopy
}

func compositeCopy(p []uint8, c color.NRGBA, alpha uint8) {
	p = p[:4:4]
	if alpha == 255 {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		return
	}
	a := int(alpha)
	p[0] = lerp(p[0], c.R, a)
	p[1] = lerp(p[1], c.G, a)
	p[2] = lerp(p[2], c.B, a)
	p[3] = lerp(p[3], c.A, a)
}

func compositeBlend(p []uint8, c color.NRGBA, alpha uint8) {
	p = p[:4:4]
	sa := div255(int(c.A) * int(alpha))
	if sa == 0 {
		return
	}
	dw := div255(int(p[3]) * (255 - sa)) // remaining weight of the destination
	outA := sa + dw

	p[0] = uint8((int(c.R)*sa + int(p[0])*dw + outA/2) / outA)
	p[1] = uint8((int(c.G)*sa + int(p[1])*dw + outA/2) / outA)
	p[2] = uint8((int(c.B)*sa + int(p[2])*dw + outA/2) / outA)
	p[3] = uint8(outA)
}

func compositeAdd(p []uint8, c color.NRGBA, alpha uint8) {
	compositeSeparable(p, c, alpha, func(d, s int) int {
		return min(d+s, 255)
	})
}

func compositeDodge(p []uint8, c color.NRGBA, alpha uint8) {
	compositeSeparable(p, c, alpha, func(d, s int) int {
		if s == 255 {
			if d == 0 {
				return 0
			}
			return 255
		}
		return min(d*255/(255-s), 255)
	})
}

func compositeMultiply(p []uint8, c color.NRGBA, alpha uint8) {
	compositeSeparable(p, c, alpha, func(d, s int) int {
		return div255(d * s)
	})
}

func compositeOverlay(p []uint8, c color.NRGBA, alpha uint8) {
	compositeSeparable(p, c, alpha, func(d, s int) int {
		if d < 128 {
			return div255(2 * d * s)
		}
		return 255 - div255(2*(255-d)*(255-s))
	})
}

// compositeSeparable applies the per-channel blend function f to the color
// channels and moves the pixel towards the result.  The weight is the
// effective alpha times the alpha of c.  The alpha channel of the pixel
// is composited as in source-over.
func compositeSeparable(p []uint8, c color.NRGBA, alpha uint8, f func(d, s int) int) {
	p = p[:4:4]
	a := div255(int(c.A) * int(alpha))
	if a == 0 {
		return
	}
	p[0] = lerp(p[0], uint8(f(int(p[0]), int(c.R))), a)
	p[1] = lerp(p[1], uint8(f(int(p[1]), int(c.G))), a)
	p[2] = lerp(p[2], uint8(f(int(p[2]), int(c.B))), a)
	p[3] = uint8(int(p[3]) + div255((255-int(p[3]))*a))
}

// lerp returns d + (s-d)*a/255, rounded.
func lerp(d, s uint8, a int) uint8 {
	return uint8(div255(int(d)*(255-a) + int(s)*a))
}

// div255 returns x/255, rounded to the nearest integer.
// The argument must be in the range 0 <= x <= 255*255.
func div255(x int) int {
	x += 128
	return (x + x>>8) >> 8
}
