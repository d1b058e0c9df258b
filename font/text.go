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

package font

import (
	"seehuhn.de/go/dib"
)

// glyphGap is the number of blank columns between two glyphs.
const glyphGap = 2

// Measure returns the size of the box needed to draw text.
//
// A carriage return starts a new segment on the same line, a line feed
// starts a new line. The width of a line is the width of its widest
// segment, the height of a line is the height of its tallest glyph. The
// result is the width of the widest line and the sum of the line heights.
// Text ends at the first NUL byte.
func (f *Font) Measure(text string) (w, h int) {
	if f == nil || len(f.glyphs) == 0 {
		return 0, 0
	}
	segW, lineW, lineH := 0, 0, 0
	n := 0 // glyphs in the current segment
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == 0 {
			break
		}
		switch ch {
		case '\r':
			lineW = max(lineW, segW)
			segW, n = 0, 0
		case '\n':
			lineW = max(lineW, segW)
			w = max(w, lineW)
			h += lineH
			segW, n, lineW, lineH = 0, 0, 0, 0
		default:
			g := f.Glyph(ch)
			if n > 0 {
				segW += glyphGap
			}
			segW += g.Width
			n++
			lineH = max(lineH, g.Height)
		}
	}
	lineW = max(lineW, segW)
	w = max(w, lineW)
	h += lineH
	return w, h
}

// Draw renders text onto s, with the top left corner of the first glyph
// at (x, y).
//
// Glyph rows are drawn towards increasing y on top-down surfaces and
// towards decreasing y on bottom-up surfaces, so that text is upright when
// the image is displayed. The [Invert] flag reverses this. A carriage return
// moves back to x, a line feed also advances to the next line. Glyphs which
// do not fit completely inside the surface are skipped; the cursor still
// advances past them.
func (f *Font) Draw(s *dib.Surface, text string, x, y int, c dib.Color) error {
	if f == nil || len(f.glyphs) == 0 {
		return ErrInvalidFont
	}
	if s.BPP() == 0 {
		return dib.ErrInvalidSurface
	}

	w := abs(s.Width())
	h := abs(s.Height())
	dir := 1
	if !s.TopDown() != (f.flags&Invert != 0) {
		dir = -1
	}

	lx := x
	lineH := 0
	skipped := 0
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == 0 {
			break
		}
		switch ch {
		case '\r':
			lx = x
		case '\n':
			lx = x
			y += dir * (1 + lineH)
			lineH = 0
		default:
			g := f.Glyph(ch)
			if fits(g, lx, y, dir, w, h) {
				if err := drawGlyph(s, g, lx, y, dir, c); err != nil {
					return err
				}
			} else if g.Width > 0 && g.Height > 0 {
				skipped++
			}
			lx += g.Width + glyphGap
			lineH = max(lineH, g.Height)
		}
	}
	if skipped > 0 {
		dib.Logger().Debug("font.Draw: glyphs outside the image",
			"skipped", skipped, "x", x, "y", y)
	}
	return nil
}

// fits reports whether every pixel of g, drawn with its top left corner at
// (x, y) and rows advancing in direction dir, lies inside a w×h image.
// Empty glyphs never fit.
func fits(g Glyph, x, y, dir, w, h int) bool {
	if g.Width <= 0 || g.Height <= 0 {
		return false
	}
	if x < 0 || x+g.Width > w {
		return false
	}
	last := y + dir*(g.Height-1)
	return min(y, last) >= 0 && max(y, last) < h
}

func drawGlyph(s *dib.Surface, g Glyph, x, y, dir int, c dib.Color) error {
	k := 0
	for row := range g.Height {
		py := y + dir*row
		for col := range g.Width {
			if g.Bits[k>>3]&(0x80>>(k&7)) != 0 {
				if err := s.SetPixel(x+col, py, c); err != nil {
					return err
				}
			}
			k++
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
