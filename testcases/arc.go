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

package testcases

import "math"

var arcCases = []TestCase{
	{
		Name:      "quarter",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MinAngle:  0,
		MaxAngle:  math.Pi / 2,
		Antialias: true,
	},
	{
		Name:      "quarter_aliased",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MinAngle:  0,
		MaxAngle:  math.Pi / 2,
		Antialias: false,
	},
	{
		Name:      "half",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MinAngle:  math.Pi / 2,
		MaxAngle:  3 * math.Pi / 2,
		Antialias: true,
	},
	{
		Name:      "three_quarters",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MinAngle:  0,
		MaxAngle:  3 * math.Pi / 2,
		Antialias: true,
	},
	{
		Name:      "within_quadrant",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    24,
		MinAngle:  0.3,
		MaxAngle:  0.9,
		Antialias: true,
	},
	{
		Name:      "across_quadrants",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    24,
		MinAngle:  1.2,
		MaxAngle:  2.1,
		Antialias: true,
	},
	{
		Name:      "negative_angles",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    24,
		MinAngle:  -math.Pi / 4,
		MaxAngle:  math.Pi / 4,
		Antialias: true,
	},
	{
		Name:      "large_angles",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    24,
		MinAngle:  10*math.Pi + 0.5,
		MaxAngle:  10*math.Pi + 2.5,
		Antialias: true,
	},
}

var wrapCases = []TestCase{
	{
		Name:      "through_zero",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MinAngle:  3*math.Pi/2 + 0.3,
		MaxAngle:  0.5,
		Antialias: true,
	},
	{
		Name:      "same_quadrant",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MinAngle:  0.6,
		MaxAngle:  0.4,
		Antialias: true,
	},
	{
		Name:      "reversed",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MinAngle:  math.Pi,
		MaxAngle:  math.Pi / 2,
		Antialias: true,
	},
}
