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
	"image"
	"image/color"
)

// The methods in this file let a Surface act as a draw.Image.
// Unlike the drawing primitives, they use image coordinates: y=0 is the
// top row of the displayed image, whatever the row order in memory.

// ColorModel implements the [image.Image] interface.
func (s *Surface) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements the [image.Image] interface.
func (s *Surface) Bounds() image.Rectangle {
	if !s.valid() {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, s.w, s.h)
}

// At implements the [image.Image] interface.
func (s *Surface) At(x, y int) color.Color {
	if !s.valid() || !s.inside(x, y) {
		return Black
	}
	return s.format.get(s.pix[s.offset(x, s.memoryRow(y)):])
}

// Set implements the [draw.Image] interface.
// Points outside the image are ignored.
func (s *Surface) Set(x, y int, c color.Color) {
	if !s.valid() || !s.inside(x, y) {
		return
	}
	s.format.put(s.pix[s.offset(x, s.memoryRow(y)):], ColorModel.Convert(c).(Color))
}

// memoryRow converts an image row to the row index used in the pixel
// buffer.
func (s *Surface) memoryRow(y int) int {
	if s.height < 0 {
		return y
	}
	return s.h - 1 - y
}
