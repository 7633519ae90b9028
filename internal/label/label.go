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

// Package label draws short text labels into NRGBA images.
package label

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var font = &freemono.Bold9pt7b

// Height is the distance in pixels between the baselines of two lines
// of text.
const Height = 14

// Canvas adapts an image to the display interface used by tinyfont.
// Pixel coordinates are relative to the top-left corner of the image.
type Canvas struct {
	Img *image.NRGBA
}

var _ drivers.Displayer = Canvas{}

// Size returns the size of the image, clamped to the int16 range.
func (c Canvas) Size() (x, y int16) {
	b := c.Img.Rect
	return int16(min(b.Dx(), 1<<15-1)), int16(min(b.Dy(), 1<<15-1))
}

// SetPixel sets one pixel.  Pixels outside the image are ignored.
func (c Canvas) SetPixel(x, y int16, col color.RGBA) {
	p := image.Point{X: int(x), Y: int(y)}.Add(c.Img.Rect.Min)
	if !p.In(c.Img.Rect) {
		return
	}
	i := c.Img.PixOffset(p.X, p.Y)
	pix := c.Img.Pix[i : i+4 : i+4]
	pix[0], pix[1], pix[2], pix[3] = col.R, col.G, col.B, col.A
}

// Display is a no-op; the image is updated in place.
func (c Canvas) Display() error {
	return nil
}

// Draw writes s into img, with the left end of the baseline at (x, y).
func Draw(img *image.NRGBA, x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(Canvas{Img: img}, font, int16(x), int16(y), s, col)
}

// Width returns the width of s in pixels.
func Width(s string) int {
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}
