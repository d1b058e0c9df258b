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
	"bytes"
	"errors"
	"testing"
)

const (
	red   Color = 0xFF0000
	green Color = 0x00FF00
	blue  Color = 0x0000FF
)

func TestFloodFillBox(t *testing.T) {
	for _, bpp := range []int{24, 32} {
		s := newTestSurface(t, 10, 10, bpp)
		if err := s.Rect(2, 2, 7, 7, red); err != nil {
			t.Fatal(err)
		}
		if err := s.FloodFill(4, 4, red, green); err != nil {
			t.Fatal(err)
		}

		// interior is 4x4
		if n := len(painted(t, s, green)); n != 16 {
			t.Errorf("%d bit: %d pixels filled, want 16", bpp, n)
		}
		if n := len(painted(t, s, red)); n != 20 {
			t.Errorf("%d bit: boundary has %d pixels, want 20", bpp, n)
		}
		if c, _ := s.Pixel(0, 0); c != Black {
			t.Errorf("%d bit: outside pixel changed to %v", bpp, c)
		}
	}
}

func TestFloodFillKeepsOutside(t *testing.T) {
	const background Color = 0x606060
	for _, bpp := range []int{24, 32} {
		s := newTestSurface(t, 12, -9, bpp)
		if err := s.Fill(background); err != nil {
			t.Fatal(err)
		}
		if err := s.Rect(3, 2, 9, 6, red); err != nil {
			t.Fatal(err)
		}
		if err := s.FloodFill(6, 4, red, green); err != nil {
			t.Fatal(err)
		}

		for y := range 9 {
			for x := range 12 {
				c, _ := s.Pixel(x, y)
				onEdge := (x == 3 || x == 9) && y >= 2 && y <= 6 ||
					(y == 2 || y == 6) && x >= 3 && x <= 9
				inside := x > 3 && x < 9 && y > 2 && y < 6
				var want Color
				switch {
				case onEdge:
					want = red
				case inside:
					want = green
				default:
					want = background
				}
				if c != want {
					t.Errorf("%d bit: pixel (%d,%d) = %v, want %v", bpp, x, y, c, want)
				}
			}
		}

		// a second fill with the same colour finds nothing to paint
		before := bytes.Clone(s.Pix())
		if err := s.FloodFill(6, 4, red, green); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(before, s.Pix()) {
			t.Errorf("%d bit: second fill changed the image", bpp)
		}
	}
}

func TestFloodFillWholeImage(t *testing.T) {
	s := newTestSurface(t, 7, -5, 24)
	if err := s.FloodFill(3, 2, red, blue); err != nil {
		t.Fatal(err)
	}
	if n := len(painted(t, s, blue)); n != 35 {
		t.Errorf("%d pixels filled, want 35", n)
	}
}

func TestFloodFillDiagonalGap(t *testing.T) {
	// A diagonal line separates the image for a 4-connected fill.
	s := newTestSurface(t, 6, 6, 24)
	if err := s.Line(0, 0, 5, 5, red); err != nil {
		t.Fatal(err)
	}
	if err := s.FloodFill(4, 1, red, green); err != nil {
		t.Fatal(err)
	}
	got := painted(t, s, green)
	if len(got) != 15 {
		t.Errorf("%d pixels filled, want 15", len(got))
	}
	for p := range got {
		if p[0] <= p[1] {
			t.Errorf("pixel %v on the wrong side of the line", p)
		}
	}
}

func TestFloodFillSeedOnBoundary(t *testing.T) {
	s := newTestSurface(t, 5, 5, 24)
	if err := s.SetPixel(2, 2, red); err != nil {
		t.Fatal(err)
	}
	if err := s.FloodFill(2, 2, red, green); err != nil {
		t.Errorf("got %v", err)
	}
	if n := len(painted(t, s, green)); n != 0 {
		t.Errorf("%d pixels filled", n)
	}
}

func TestFloodFillStopsAtFillColour(t *testing.T) {
	s := newTestSurface(t, 9, 3, 24)
	// a column in the fill colour splits the image
	for y := range 3 {
		if err := s.SetPixel(4, y, green); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.FloodFill(0, 0, red, green); err != nil {
		t.Fatal(err)
	}
	for y := range 3 {
		for x := 5; x < 9; x++ {
			if c, _ := s.Pixel(x, y); c != Black {
				t.Fatalf("pixel (%d,%d) reached through the fill-coloured column", x, y)
			}
		}
	}
	if n := len(painted(t, s, green)); n != 15 {
		t.Errorf("%d green pixels, want 15", n)
	}
}

func TestFloodFill24BitNormalisesColours(t *testing.T) {
	// The top byte cannot be stored in a 24-bit pixel, so 0xFF00FF00 must
	// still be recognised as the fill colour once painted.
	s := newTestSurface(t, 4, 4, 24)
	if err := s.FloodFill(0, 0, 0xAAFF0000, 0xFF00FF00); err != nil {
		t.Fatal(err)
	}
	if n := len(painted(t, s, green)); n != 16 {
		t.Errorf("%d pixels filled, want 16", n)
	}
}

func TestFloodFillLarge(t *testing.T) {
	// a long serpentine corridor stresses the explicit stack
	const size = 301
	s := newTestSurface(t, size, size, 32)
	for x := 1; x < size-1; x += 2 {
		if x%4 == 1 {
			if err := s.Line(x, 0, x, size-2, red); err != nil {
				t.Fatal(err)
			}
		} else {
			if err := s.Line(x, 1, x, size-1, red); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := s.FloodFill(0, 0, red, blue); err != nil {
		t.Fatal(err)
	}
	if c, _ := s.Pixel(size-1, size-1); c != blue {
		t.Errorf("end of corridor not reached: %v", c)
	}
}

func TestFloodFillOutOfBounds(t *testing.T) {
	s := newTestSurface(t, 5, 5, 24)
	if err := s.FloodFill(5, 0, red, green); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v", err)
	}
}
