// Package arc draws antialiased circular arcs into software pixel buffers.
//
// An arc is split into at most five pieces, each inside one quadrant of
// the circle.  Every piece is scanned in a quadrant-local coordinate
// system in two passes, one step per column up to the 45° point and one
// step per row after it.  At each step the intensity is divided between
// the two pixels nearest to the circle.
package arc

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"
	"image/color"

	"seehuhn.de/go/arc/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The arc is drawn in white, in ModeCopy, onto a black background.
// The buffer is in row-major order; each byte represents intensity
// from 0 (untouched) to 255 (fully covered).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	DrawArc(img, tc.Center, tc.Radius, tc.MinAngle, tc.MaxAngle,
		white, 1, ModeCopy, tc.Antialias)

	for y := range height {
		row := buf[y*stride:]
		src := img.Pix[y*img.Stride:]
		for x := range width {
			row[x] = src[4*x+1]
		}
	}
}
