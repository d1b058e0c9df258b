// seehuhn.de/go/dib - a bitmap drawing library
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

package dib

import (
	"fmt"
	"image"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkOutlinerO fills an "O" shape with the even-odd rule.
func BenchmarkOutlinerO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			o := NewOutliner()
			dst, err := New(size, -size, 32)
			if err != nil {
				b.Fatal(err)
			}

			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30

			// Create the "O" path: outer circle CCW, inner circle CW
			oPath := makeOPath(center, center, outerR, innerR)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if err := o.Fill(dst, oPath, EvenOdd, White); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFloodFill fills the inside of a circle outline.
func BenchmarkFloodFill(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst, err := New(size, -size, 24)
			if err != nil {
				b.Fatal(err)
			}
			c := size / 2
			if err := NewOutliner().Stroke(dst, makeOPath(float64(c), float64(c), float64(size)*0.45, 1), 0xFF0000); err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			b.ReportAllocs()

			fill := Color(0x00FF00)
			for b.Loop() {
				if err := dst.FloodFill(c, c-size/4, 0xFF0000, fill); err != nil {
					b.Fatal(err)
				}
				fill ^= 0x0000FF
			}
		})
	}
}

// BenchmarkVectorO draws the same "O" shape as BenchmarkOutlinerO with
// x/image/vector, compositing into a Surface through its draw.Image
// methods.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst, err := New(size, -size, 32)
			if err != nil {
				b.Fatal(err)
			}
			src := image.NewUniform(White)

			c := float64(size) / 2
			center := vec.Vec2{X: c, Y: c}
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, outerR, false)
				addCircleToVector(r, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// makeOPath creates an "O" shape path for the Outliner.
// Outer circle is counter-clockwise, inner circle is clockwise.
func makeOPath(cx, cy, outerR, innerR float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// Outer circle (counter-clockwise)
		addCircleToPath(yield, cx, cy, outerR, false)
		// Inner circle (clockwise)
		addCircleToPath(yield, cx, cy, innerR, true)
	}
}

// addCircleToPath adds a circle to a path using cubic Bézier curves.
// Uses a stack-allocated buffer to avoid heap allocations.
func addCircleToPath(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	var buf [3]vec.Vec2 // stack-allocated, reused for each yield

	if clockwise {
		// Start at top, go clockwise
		buf[0] = vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
	} else {
		// Start at top, go counter-clockwise
		buf[0] = vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
	}
	yield(path.CmdClose, nil)
}

// circleQuadrants lists the end points of the four quarter arcs of a unit
// circle, counter-clockwise in device space starting at the top.
var circleQuadrants = [5]vec.Vec2{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}

// addCircleToVector appends a closed circle to r, one cubic per quarter.
func addCircleToVector(r *vector.Rasterizer, center vec.Vec2, radius float64, clockwise bool) {
	const k = 0.5522847498
	at := func(v vec.Vec2) (float32, float32) {
		p := center.Add(v.Mul(radius))
		return float32(p.X), float32(p.Y)
	}

	q := circleQuadrants
	if clockwise {
		slices.Reverse(q[:])
	}
	r.MoveTo(at(q[0]))
	for i := range 4 {
		p0, p1 := q[i], q[i+1]
		c0x, c0y := at(p0.Add(p1.Mul(k)))
		c1x, c1y := at(p1.Add(p0.Mul(k)))
		p1x, p1y := at(p1)
		r.CubeTo(c0x, c0y, c1x, c1y, p1x, p1y)
	}
	r.ClosePath()
}
