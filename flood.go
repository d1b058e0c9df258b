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

// direction is one of the four neighbours of a pixel, in the order in which
// the flood fill tries them.
type direction uint8

const (
	dirUp    direction = iota // y+1
	dirRight                  // x+1
	dirDown                   // y-1
	dirLeft                   // x-1
	dirDone                   // all neighbours tried
)

var neighbour = [4]struct{ dx, dy int }{
	dirUp:    {0, 1},
	dirRight: {1, 0},
	dirDown:  {0, -1},
	dirLeft:  {-1, 0},
}

// fillFrame is one pixel on the path from the seed to the current pixel.
type fillFrame struct {
	x, y int
	next direction // the neighbour to try next
}

// FloodFill paints the 4-connected region around (x, y) with the colour
// fill. The region is bounded by pixels of colour boundary and by pixels
// which already have the fill colour.
//
// The fill is a depth-first walk which tries the neighbours of every pixel
// in the order up, right, down, left. The path from the seed is kept on an
// explicit stack, so the call depth does not depend on the image size.
// If the seed pixel has the boundary colour, nothing is painted.
func (s *Surface) FloodFill(x, y int, boundary, fill Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if !s.inside(x, y) {
		return s.outOfBounds("FloodFill", x, y)
	}

	f := s.format
	boundary = f.normalize(boundary)
	fill = f.normalize(fill)

	pos := s.offset(x, y)
	if f.get(s.pix[pos:]) == boundary {
		return nil
	}
	f.put(s.pix[pos:], fill)

	stack := []fillFrame{{x: x, y: y}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == dirDone {
			// All directions exhausted: back up to the pixel we came from.
			stack = stack[:len(stack)-1]
			continue
		}

		d := neighbour[top.next]
		top.next++
		nx, ny := top.x+d.dx, top.y+d.dy
		if !s.inside(nx, ny) {
			continue
		}
		pos := s.offset(nx, ny)
		if c := f.get(s.pix[pos:]); c == boundary || c == fill {
			continue
		}

		f.put(s.pix[pos:], fill)
		stack = append(stack, fillFrame{x: nx, y: ny})
	}
	return nil
}
