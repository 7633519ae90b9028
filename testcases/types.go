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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single arc rendering test.
//
// Angles are in radians.  Angle 0 points up (towards smaller y) and
// angles increase clockwise on screen.  A sweep of 2π or more is a full
// circle.
type TestCase struct {
	Name      string   // lowercase a-z and _ only
	Width     int      // canvas width in pixels
	Height    int      // canvas height in pixels
	Center    vec.Vec2 // circle center in pixel coordinates
	Radius    float64  // circle radius in pixels
	MinAngle  float64  // start of the arc
	MaxAngle  float64  // end of the arc
	Antialias bool     // split intensity between neighbouring pixels
}

// Sweep returns the normalised start angle of the arc and the angle it
// covers, which is in [0, 2π].
func (tc TestCase) Sweep() (start, sweep float64) {
	if tc.MaxAngle-tc.MinAngle >= 2*math.Pi {
		return 0, 2 * math.Pi
	}
	start = normalize(tc.MinAngle)
	end := normalize(tc.MaxAngle)
	if end < start {
		end += 2 * math.Pi
	}
	return start, end - start
}

// Path returns the arc as a sequence of cubic Bézier segments, each
// spanning at most a quarter turn.  Full circles are closed.
// Degenerate arcs give an empty path.
func (tc TestCase) Path() *path.Data {
	p := &path.Data{}
	start, sweep := tc.Sweep()
	if !(tc.Radius > 0) || sweep <= 0 {
		return p
	}

	n := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * tc.Radius // control point distance

	a := start
	p = p.MoveTo(tc.point(a))
	for range n {
		b := a + step
		p0, p3 := tc.point(a), tc.point(b)
		p = p.CubeTo(p0.Add(tangent(a).Mul(k)), p3.Sub(tangent(b).Mul(k)), p3)
		a = b
	}
	if sweep >= 2*math.Pi {
		p = p.Close()
	}
	return p
}

// point returns the point on the circle at angle a.
func (tc TestCase) point(a float64) vec.Vec2 {
	return vec.Vec2{
		X: tc.Center.X + tc.Radius*math.Sin(a),
		Y: tc.Center.Y - tc.Radius*math.Cos(a),
	}
}

// tangent returns the unit tangent of the circle at angle a, pointing in
// the direction of increasing angle.
func tangent(a float64) vec.Vec2 {
	return vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// normalize must stay in sync with arc.NormalizeAngle, which cannot be
// imported here.
func normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
