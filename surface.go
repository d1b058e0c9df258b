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
)

// maxImageSize bounds the pixel data so that all BMP header fields,
// including the total file size, fit into 31 bits.
const maxImageSize = math.MaxInt32 - fileHeaderSize - infoHeaderSize

// Surface is a device independent bitmap held in memory.
//
// The pixel buffer uses the BMP layout: each row occupies Stride bytes,
// padded to a multiple of 4, and rows follow each other without gaps.
// Geometry and colour depth are fixed at creation.
type Surface struct {
	width, height int // as given to New, signed
	w, h          int // absolute values
	stride        int
	format        pixelFormat
	pix           []byte
}

// New allocates a zero-initialised surface.
//
// The sign of width is ignored. A negative height stores rows top-down,
// a positive height stores them bottom-up. The depth bpp must be 24 or 32.
func New(width, height, bpp int) (*Surface, error) {
	if width == 0 || height == 0 {
		Logger().Debug("dib.New: zero dimension", "width", width, "height", height)
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidArgument, width, height)
	}
	format, ok := formatFor(bpp)
	if !ok {
		Logger().Debug("dib.New: unsupported depth", "bpp", bpp)
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedDepth, bpp)
	}

	w, h := abs(width), abs(height)
	if w > maxImageSize/format.bytesPerPixel()-3 {
		return nil, fmt.Errorf("%w: image width %d too large", ErrInvalidArgument, width)
	}
	stride := scanWidth(w, format.bytesPerPixel())
	if h > maxImageSize/stride {
		return nil, fmt.Errorf("%w: image size %dx%d too large", ErrInvalidArgument, width, height)
	}

	return &Surface{
		width:  width,
		height: height,
		w:      w,
		h:      h,
		stride: stride,
		format: format,
		pix:    make([]byte, stride*h),
	}, nil
}

// scanWidth returns the number of bytes in one row, aligned to 4 bytes.
func scanWidth(w, bytesPerPixel int) int {
	return (w*bytesPerPixel + 3) &^ 3
}

// Release drops the pixel buffer. Afterwards all operations on s fail
// with [ErrInvalidSurface].
func (s *Surface) Release() {
	if s == nil {
		return
	}
	*s = Surface{}
}

// valid reports whether s was created by New and not released.
func (s *Surface) valid() bool {
	return s != nil && s.format != nil && len(s.pix) == s.stride*s.h
}

func (s *Surface) check() error {
	if !s.valid() {
		return ErrInvalidSurface
	}
	return nil
}

// Width returns the width as passed to [New], or 0 for an invalid surface.
func (s *Surface) Width() int {
	if !s.valid() {
		return 0
	}
	return s.width
}

// Height returns the signed height as passed to [New], or 0 for an invalid
// surface.
func (s *Surface) Height() int {
	if !s.valid() {
		return 0
	}
	return s.height
}

// BPP returns the number of bits per pixel, or 0 for an invalid surface.
func (s *Surface) BPP() int {
	if !s.valid() {
		return 0
	}
	return s.format.bitsPerPixel()
}

// Stride returns the number of bytes per row.
func (s *Surface) Stride() int {
	if !s.valid() {
		return 0
	}
	return s.stride
}

// ImageSize returns the size of the pixel data in bytes.
func (s *Surface) ImageSize() int {
	if !s.valid() {
		return 0
	}
	return len(s.pix)
}

// Pix returns the pixel buffer. The slice aliases the surface memory.
func (s *Surface) Pix() []byte {
	if !s.valid() {
		return nil
	}
	return s.pix
}

// TopDown reports whether row 0 is the top row of the displayed image.
func (s *Surface) TopDown() bool {
	return s.valid() && s.height < 0
}

func (s *Surface) inside(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

func (s *Surface) offset(x, y int) int {
	return y*s.stride + x*s.format.bytesPerPixel()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
