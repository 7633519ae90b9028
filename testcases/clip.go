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

var clipCases = []TestCase{
	{
		Name:      "left_edge",
		Width:     64,
		Height:    64,
		Center:    pt(4, 32),
		Radius:    20,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "all_edges",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    40,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "corner",
		Width:     64,
		Height:    64,
		Center:    pt(0, 0),
		Radius:    30,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "center_outside",
		Width:     64,
		Height:    64,
		Center:    pt(80, 32),
		Radius:    30,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "huge_radius",
		Width:     64,
		Height:    64,
		Center:    pt(32, 1000),
		Radius:    990,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "huge_radius_aliased",
		Width:     64,
		Height:    64,
		Center:    pt(32, 1000),
		Radius:    990,
		MaxAngle:  fullCircle,
		Antialias: false,
	},
	{
		Name:      "arc_across_edge",
		Width:     64,
		Height:    64,
		Center:    pt(56, 32),
		Radius:    20,
		MinAngle:  math.Pi / 4,
		MaxAngle:  3 * math.Pi / 4,
		Antialias: true,
	},
	{
		Name:      "buffer_inside_circle",
		Width:     16,
		Height:    16,
		Center:    pt(8, 8),
		Radius:    100,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
}

var degenerateCases = []TestCase{
	{
		Name:      "zero_radius",
		Width:     16,
		Height:    16,
		Center:    pt(8, 8),
		Radius:    0,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "empty_arc",
		Width:     16,
		Height:    16,
		Center:    pt(8, 8),
		Radius:    5,
		MinAngle:  1,
		MaxAngle:  1,
		Antialias: true,
	},
	{
		Name:      "off_canvas",
		Width:     16,
		Height:    16,
		Center:    pt(-40, -40),
		Radius:    10,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
}
