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

import "encoding/binary"

// pixelFormat reads and writes single pixels of one colour depth.
// A Surface selects its format once, in New; all drawing code goes
// through it.
type pixelFormat interface {
	bitsPerPixel() int
	bytesPerPixel() int

	// put stores c at the start of b.
	put(b []byte, c Color)

	// get loads the pixel at the start of b.
	get(b []byte) Color

	// normalize maps c to the value get would return after put.
	normalize(c Color) Color
}

// rgb24 stores the three low bytes of a colour, low byte first.
type rgb24 struct{}

func (rgb24) bitsPerPixel() int  { return 24 }
func (rgb24) bytesPerPixel() int { return 3 }

func (rgb24) put(b []byte, c Color) {
	_ = b[2]
	b[0] = byte(c)
	b[1] = byte(c >> 8)
	b[2] = byte(c >> 16)
}

func (rgb24) get(b []byte) Color {
	_ = b[2]
	return Color(b[0]) | Color(b[1])<<8 | Color(b[2])<<16
}

func (rgb24) normalize(c Color) Color { return c & 0xFFFFFF }

// xrgb32 stores the full 32-bit value in little-endian order.
type xrgb32 struct{}

func (xrgb32) bitsPerPixel() int  { return 32 }
func (xrgb32) bytesPerPixel() int { return 4 }

func (xrgb32) put(b []byte, c Color) {
	binary.LittleEndian.PutUint32(b, uint32(c))
}

func (xrgb32) get(b []byte) Color {
	return Color(binary.LittleEndian.Uint32(b))
}

func (xrgb32) normalize(c Color) Color { return c }

// formatFor returns the pixel format for the given depth.
func formatFor(bpp int) (pixelFormat, bool) {
	switch bpp {
	case 24:
		return rgb24{}, true
	case 32:
		return xrgb32{}, true
	default:
		return nil, false
	}
}
