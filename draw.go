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
	"math"

	"seehuhn.de/go/geom/vec"
)

// SetPixel sets the pixel at (x, y) to c.
// Coordinates outside the image leave the surface unchanged and return
// [ErrOutOfBounds].
func (s *Surface) SetPixel(x, y int, c Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if !s.inside(x, y) {
		return s.outOfBounds("SetPixel", x, y)
	}
	s.format.put(s.pix[s.offset(x, y):], c)
	return nil
}

// Pixel returns the colour of the pixel at (x, y).
func (s *Surface) Pixel(x, y int) (Color, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	if !s.inside(x, y) {
		return 0, s.outOfBounds("Pixel", x, y)
	}
	return s.format.get(s.pix[s.offset(x, y):]), nil
}

// Fill sets every pixel of the image to c.
// The padding bytes at the end of each row are left as zero.
func (s *Surface) Fill(c Color) error {
	if err := s.check(); err != nil {
		return err
	}

	// Set the first row, then replicate it.
	bpp := s.format.bytesPerPixel()
	first := s.pix[:s.stride]
	for i := 0; i < s.w*bpp; i += bpp {
		s.format.put(first[i:], c)
	}
	for y := 1; y < s.h; y++ {
		copy(s.pix[y*s.stride:(y+1)*s.stride], first)
	}
	return nil
}

// Line draws a one pixel wide line from (x1, y1) to (x2, y2), including
// both endpoints. Both endpoints must lie inside the image; otherwise
// nothing is drawn and [ErrOutOfBounds] is returned.
func (s *Surface) Line(x1, y1, x2, y2 int, c Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if !s.inside(x1, y1) {
		return s.outOfBounds("Line", x1, y1)
	}
	if !s.inside(x2, y2) {
		return s.outOfBounds("Line", x2, y2)
	}

	walkLine(x1, y1, x2, y2, func(x, y int) {
		s.format.put(s.pix[s.offset(x, y):], c)
	})
	return nil
}

// walkLine calls plot for every pixel of the line from (x1, y1) to
// (x2, y2), starting at the first point and ending at the second.
//
// This is Bresenham's algorithm for all octants: err accumulates the
// deviation from the ideal line and an axis is advanced whenever doing so
// keeps the next pixel within half a pixel of the line.
func walkLine(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x2 < x1 {
		sx = -1
	}
	if y2 < y1 {
		sy = -1
	}

	err := dx + dy
	for {
		plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// Rect draws the outline of the rectangle with corners (x1, y1) and
// (x2, y2) using four calls to [Surface.Line]. It fails if any of the
// four lines fails.
func (s *Surface) Rect(x1, y1, x2, y2 int, c Color) error {
	if err := s.Line(x1, y1, x2, y1, c); err != nil {
		return err
	}
	if err := s.Line(x2, y1, x2, y2, c); err != nil {
		return err
	}
	if err := s.Line(x2, y2, x1, y2, c); err != nil {
		return err
	}
	return s.Line(x1, y2, x1, y1, c)
}

// FillRect fills the rectangle with corners (x1, y1) and (x2, y2),
// both corners included.
//
// Unlike the other primitives, FillRect does not reject coordinates
// outside the image. Each corner coordinate is clamped into the image
// independently.
func (s *Surface) FillRect(x1, y1, x2, y2 int, c Color) error {
	if err := s.check(); err != nil {
		return err
	}

	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	x1 = clamp(x1, 0, s.w-1)
	x2 = clamp(x2, 0, s.w-1)
	y1 = clamp(y1, 0, s.h-1)
	y2 = clamp(y2, 0, s.h-1)

	fw := x2 - x1
	fh := y2 - y1
	if fw < 0 || fh < 0 {
		Logger().Debug("dib.FillRect: empty rectangle",
			"x1", x1, "y1", y1, "x2", x2, "y2", y2)
		return fmt.Errorf("%w: fill rectangle (%d,%d)-(%d,%d)", ErrOutOfBounds, x1, y1, x2, y2)
	}

	// Draw the first row pixel by pixel, then copy it to the rows below.
	bpp := s.format.bytesPerPixel()
	n := (fw + 1) * bpp
	start := s.offset(x1, y1)
	first := s.pix[start : start+n]
	for i := 0; i < n; i += bpp {
		s.format.put(first[i:], c)
	}
	for y := y1 + 1; y <= y2; y++ {
		pos := s.offset(x1, y)
		copy(s.pix[pos:pos+n], first)
	}
	return nil
}

// Arc draws the part of the circle with centre (x, y) and the given
// radius between the angles start and end, measured in radians.
//
// The arc is drawn as a sequence of individual points, about one per pixel
// of circumference. Points outside the image are skipped. Angles are
// measured from the positive x-axis towards the positive y-axis. If start
// is larger than end, the two are swapped.
func (s *Surface) Arc(x, y, radius int, start, end float64, c Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if radius < 0 {
		Logger().Debug("dib.Arc: negative radius", "radius", radius)
		return fmt.Errorf("%w: radius %d", ErrInvalidArgument, radius)
	}
	if start == end {
		return nil
	}
	if start > end {
		start, end = end, start
	}

	// Points for a full turn, and the share needed for this arc.
	res := int(float64(radius)*fullTurn + 1)
	n := res
	if sweep := end - start; sweep < fullTurn {
		n = int(sweep * float64(res) / fullTurn)
	}

	r := float64(radius)
	step := fullTurn / float64(res)
	for i := range n {
		angle := start + float64(i)*step
		d := vec.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(r)
		px := x + int(d.X)
		py := y + int(d.Y)
		if s.inside(px, py) {
			s.format.put(s.pix[s.offset(px, py):], c)
		}
	}
	return nil
}

// Circle draws the circle with centre (x, y) and the given radius.
func (s *Surface) Circle(x, y, radius int, c Color) error {
	return s.Arc(x, y, radius, 0, fullTurn, c)
}

const fullTurn = 2 * math.Pi

func (s *Surface) outOfBounds(op string, x, y int) error {
	Logger().Debug("dib."+op+": point out of range",
		"x", x, "y", y, "width", s.w, "height", s.h)
	return fmt.Errorf("%w: point (%d,%d) outside %dx%d image", ErrOutOfBounds, x, y, s.w, s.h)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
