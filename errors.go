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

import "errors"

var (
	// ErrInvalidSurface is returned for a nil, released or zero-value
	// Surface.
	ErrInvalidSurface = errors.New("dib: invalid surface")

	// ErrInvalidArgument is returned for zero image dimensions, negative
	// radii and similar malformed arguments.
	ErrInvalidArgument = errors.New("dib: invalid argument")

	// ErrOutOfBounds is returned when a single-point operation or a line
	// endpoint lies outside the image.
	ErrOutOfBounds = errors.New("dib: coordinates out of bounds")

	// ErrUnsupportedDepth is returned for colour depths other than 24 and
	// 32 bits per pixel.
	ErrUnsupportedDepth = errors.New("dib: unsupported colour depth")

	// errHeaderLayout signals that the encoded BMP headers do not have the
	// sizes required by the file format.
	errHeaderLayout = errors.New("dib: unexpected BMP header size")
)
