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

// Command sheet renders all arc test cases into one labelled PNG image.
// Each case is drawn with this module's rasteriser and enlarged with
// nearest-neighbour scaling so that individual pixels stay visible.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"maps"
	"os"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/arc"
	"seehuhn.de/go/arc/internal/label"
	"seehuhn.de/go/arc/testcases"
)

var (
	background = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	foreground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	textColor  = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

const padding = 8

func main() {
	var (
		output   = flag.String("o", "sheet.png", "output file")
		cellSize = flag.Int("cell", 256, "size of one cell in pixels")
		columns  = flag.Int("cols", 4, "number of columns")
	)
	flag.Parse()

	if *cellSize < 16 || *columns < 1 {
		log.Fatalf("invalid sheet geometry: cell=%d cols=%d", *cellSize, *columns)
	}

	sheet := render(*cellSize, *columns)
	if err := writePNG(*output, sheet); err != nil {
		log.Fatal(err)
	}
	log.Printf("sheet saved to %s (%dx%d)", *output, sheet.Rect.Dx(), sheet.Rect.Dy())
}

type namedCase struct {
	name string
	tc   testcases.TestCase
}

func render(cellSize, columns int) *image.NRGBA {
	var cases []namedCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			cases = append(cases, namedCase{name: category + "_" + tc.Name, tc: tc})
		}
	}

	cellW := cellSize + 2*padding
	cellH := cellSize + 2*padding + label.Height
	rows := (len(cases) + columns - 1) / columns
	sheet := image.NewNRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	draw.Draw(sheet, sheet.Rect, image.NewUniform(color.Black), image.Point{}, draw.Src)

	for i, c := range cases {
		x0 := (i % columns) * cellW
		y0 := (i / columns) * cellH

		img := renderCase(c.tc)
		scale := max(cellSize/max(c.tc.Width, c.tc.Height), 1)
		dr := image.Rect(0, 0, c.tc.Width*scale, c.tc.Height*scale).
			Add(image.Pt(x0+padding, y0+padding))
		draw.NearestNeighbor.Scale(sheet, dr, img, img.Rect, draw.Src, nil)

		label.Draw(sheet, x0+padding, y0+cellH-padding, c.name, textColor)
	}
	return sheet
}

func renderCase(tc testcases.TestCase) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	draw.Draw(img, img.Rect, image.NewUniform(background), image.Point{}, draw.Src)
	arc.DrawArc(img, tc.Center, tc.Radius, tc.MinAngle, tc.MaxAngle,
		foreground, 1, arc.ModeBlend, tc.Antialias)
	return img
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("sheet: encode %s: %w", fname, err)
	}
	return nil
}
