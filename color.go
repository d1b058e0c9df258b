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
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed pixel value.
//
// The lowest byte is stored first in a pixel, followed by bits 8-15 and
// bits 16-23. Since BMP files store the blue channel first, the value reads
// as 0xRRGGBB. On 32-bit surfaces the whole value, including the top byte,
// is stored verbatim in little-endian order.
type Color uint32

// Some frequently used colours.
const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// RGB packs the three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements the [color.Color] interface.
// Pixels are always opaque; the top byte of 32-bit pixels is ignored.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// String formats the colour as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c&0xFFFFFF))
}

// ColorModel converts arbitrary colours to [Color].
// Colours which are not fully opaque are composed over black.
var ColorModel = color.ModelFunc(toColor)

func toColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ParseColor parses "#rrggbb", "0xrrggbb" or a decimal integer.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	var v uint64
	var err error
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return 0, fmt.Errorf("%w: colour %q", ErrInvalidArgument, s)
		}
		v, err = strconv.ParseUint(s[1:], 16, 32)
	default:
		v, err = strconv.ParseUint(s, 0, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: colour %q", ErrInvalidArgument, s)
	}
	return Color(v), nil
}
