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

const fullCircle = 2 * math.Pi

var circleCases = []TestCase{
	{
		Name:      "small",
		Width:     16,
		Height:    16,
		Center:    pt(8, 8),
		Radius:    5,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "medium",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "medium_aliased",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MaxAngle:  fullCircle,
		Antialias: false,
	},
	{
		Name:      "fractional_radius",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20.5,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "fractional_center",
		Width:     64,
		Height:    64,
		Center:    pt(31.3, 30.7),
		Radius:    17.2,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "large",
		Width:     128,
		Height:    128,
		Center:    pt(64, 64),
		Radius:    60,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "tiny",
		Width:     16,
		Height:    16,
		Center:    pt(8, 8),
		Radius:    1.5,
		MaxAngle:  fullCircle,
		Antialias: true,
	},
	{
		Name:      "shifted_angles",
		Width:     64,
		Height:    64,
		Center:    pt(32, 32),
		Radius:    20,
		MinAngle:  -math.Pi,
		MaxAngle:  math.Pi,
		Antialias: true,
	},
}
