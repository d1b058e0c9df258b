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

package chart

import (
	"errors"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dib"
	"seehuhn.de/go/dib/font"
	"seehuhn.de/go/dib/scale"
)

const background dib.Color = 0x606060

var demoColors = Colors{Axis: 0x202020, Data: 0x400000}

func setupTest(t *testing.T) (*dib.Surface, *font.Font) {
	t.Helper()
	s, err := dib.New(640, -480, 24)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Fill(background); err != nil {
		t.Fatal(err)
	}
	f, err := font.Load(font.Medium, 0)
	if err != nil {
		t.Fatal(err)
	}
	return s, f
}

// checkInside verifies that nothing outside area, grown by margin pixels,
// was painted, and returns the number of pixels with colour c.
func checkInside(t *testing.T, s *dib.Surface, area rect.Rect, margin int, c dib.Color) int {
	t.Helper()
	n := 0
	for y := range 480 {
		for x := range 640 {
			got, err := s.Pixel(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got == c {
				n++
			}
			if got == background {
				continue
			}
			if x < int(area.LLx)-margin || x > int(area.URx)+margin ||
				y < int(area.LLy)-margin || y > int(area.URy)+margin {
				t.Fatalf("pixel (%d,%d) outside the plot area", x, y)
			}
		}
	}
	return n
}

func TestBarGraph(t *testing.T) {
	s, f := setupTest(t)
	area := rect.Rect{LLx: 40, LLy: 300, URx: 600, URy: 440}
	data := scale.Int32s{11, 54, 23, 87, 34, 54, 75, 44}
	if err := BarGraph(s, f, area, data, demoColors); err != nil {
		t.Fatal(err)
	}
	if n := checkInside(t, s, area, 0, demoColors.Data); n == 0 {
		t.Error("no bars drawn")
	}

	// the horizontal axis runs along the bottom edge of the area
	if c, _ := s.Pixel(599, 440); c != demoColors.Axis {
		t.Errorf("axis pixel has colour %v", c)
	}
}

func TestBarGraphHeights(t *testing.T) {
	s, f := setupTest(t)
	area := rect.Rect{LLx: 0, LLy: 100, URx: 400, URy: 300}
	data := scale.Float64s{1, 2}
	if err := BarGraph(s, f, area, data, demoColors); err != nil {
		t.Fatal(err)
	}

	// measure the filled height of each bar along its central column
	var heights []int
	for x := range 400 {
		h := 0
		for y := 100; y < 300; y++ {
			if c, _ := s.Pixel(x, y); c == demoColors.Data {
				h++
			}
		}
		if h > 0 && (len(heights) == 0 || heights[len(heights)-1] != h) {
			heights = append(heights, h)
		}
	}
	if len(heights) != 2 || heights[1] <= heights[0] {
		t.Errorf("bar heights %v", heights)
	}
}

func TestLineGraph(t *testing.T) {
	s, f := setupTest(t)
	area := rect.Rect{LLx: 40, LLy: 20, URx: 600, URy: 200}
	data := scale.Uint8s{5, 200, 17, 99, 140}
	if err := LineGraph(s, f, area, data, demoColors); err != nil {
		t.Fatal(err)
	}
	if n := checkInside(t, s, area, 3, demoColors.Data); n < 500 {
		t.Errorf("only %d line pixels", n)
	}
}

func TestLineGraphConstant(t *testing.T) {
	s, f := setupTest(t)
	area := rect.Rect{LLx: 10, LLy: 10, URx: 300, URy: 100}
	if err := LineGraph(s, f, area, scale.Int8s{3}, demoColors); err != nil {
		t.Fatal(err)
	}
	if err := LineGraph(s, f, area, scale.Int8s{3, 3, 3}, demoColors); err != nil {
		t.Fatal(err)
	}
	checkInside(t, s, area, 3, demoColors.Data)
}

func TestGraphErrors(t *testing.T) {
	s, f := setupTest(t)
	area := rect.Rect{LLx: 40, LLy: 300, URx: 600, URy: 440}
	data := scale.Int32s{1, 2, 3}

	if err := BarGraph(s, nil, area, data, demoColors); !errors.Is(err, font.ErrInvalidFont) {
		t.Errorf("nil font: %v", err)
	}
	if err := BarGraph(s, f, area, scale.Int32s{}, demoColors); !errors.Is(err, dib.ErrInvalidArgument) {
		t.Errorf("no data: %v", err)
	}
	if err := LineGraph(s, f, area, nil, demoColors); !errors.Is(err, dib.ErrInvalidArgument) {
		t.Errorf("nil data: %v", err)
	}
	flipped := rect.Rect{LLx: 600, LLy: 300, URx: 40, URy: 440}
	if err := BarGraph(s, f, flipped, data, demoColors); !errors.Is(err, dib.ErrInvalidArgument) {
		t.Errorf("flipped area: %v", err)
	}
	many := make(scale.Uint16s, 40)
	if err := BarGraph(s, f, area, many, demoColors); !errors.Is(err, dib.ErrInvalidArgument) {
		t.Errorf("too many bars: %v", err)
	}
	outside := rect.Rect{LLx: 40, LLy: 300, URx: 700, URy: 440}
	if err := BarGraph(s, f, outside, data, demoColors); !errors.Is(err, dib.ErrOutOfBounds) {
		t.Errorf("area outside the surface: %v", err)
	}
}
