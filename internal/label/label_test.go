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

package label

import (
	"image"
	"image/color"
	"testing"
)

func TestCanvas(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 30, 25))
	c := Canvas{Img: img}

	if w, h := c.Size(); w != 20 || h != 5 {
		t.Errorf("Size() = %d, %d, want 20, 5", w, h)
	}

	red := color.RGBA{R: 255, A: 255}
	c.SetPixel(0, 0, red)
	if got := img.NRGBAAt(10, 20); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel (10, 20) = %v", got)
	}

	// outside the image
	for _, p := range [][2]int16{{-1, 0}, {0, -1}, {20, 0}, {0, 5}} {
		c.SetPixel(p[0], p[1], red)
	}
	n := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	if n != 1 {
		t.Errorf("%d pixels set, want 1", n)
	}

	if err := c.Display(); err != nil {
		t.Error(err)
	}
}

func TestDraw(t *testing.T) {
	const s = "arc_quarter"
	w := Width(s)
	if w <= 0 {
		t.Fatalf("Width(%q) = %d", s, w)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w+10, 2*Height))
	Draw(img, 5, Height, s, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	set := 0
	for y := range img.Rect.Dy() {
		for x := range img.Rect.Dx() {
			if img.NRGBAAt(x, y).A != 0 {
				set++
			}
		}
	}
	if set == 0 {
		t.Error("no pixels drawn")
	}
}
