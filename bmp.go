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
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Sizes of the two BMP headers, in bytes.
const (
	fileHeaderSize = 14
	infoHeaderSize = 40
)

// biRGB marks uncompressed pixel data.
const biRGB = 0

// fileHeader is the BITMAPFILEHEADER structure.
type fileHeader struct {
	Magic     [2]byte // "BM"
	Size      uint32  // total file size
	Reserved1 uint16
	Reserved2 uint16
	Offset    uint32 // start of the pixel data
}

// infoHeader is the BITMAPINFOHEADER structure.
type infoHeader struct {
	Size          uint32
	Width         int32
	Height        int32 // negative for top-down images
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// header returns the encoded file and info headers of s.
func (s *Surface) header() ([]byte, error) {
	if binary.Size(fileHeader{}) != fileHeaderSize || binary.Size(infoHeader{}) != infoHeaderSize {
		return nil, errHeaderLayout
	}

	fh := fileHeader{
		Magic:  [2]byte{'B', 'M'},
		Size:   uint32(fileHeaderSize + infoHeaderSize + len(s.pix)),
		Offset: fileHeaderSize + infoHeaderSize,
	}
	ih := infoHeader{
		Size:        infoHeaderSize,
		Width:       int32(s.w), // always positive; only the height carries a sign
		Height:      int32(s.height),
		Planes:      1,
		BitCount:    uint16(s.format.bitsPerPixel()),
		Compression: biRGB,
		SizeImage:   uint32(len(s.pix)),
	}

	buf := bytes.NewBuffer(make([]byte, 0, fileHeaderSize+infoHeaderSize))
	if err := binary.Write(buf, binary.LittleEndian, &fh); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, &ih); err != nil {
		return nil, err
	}
	if buf.Len() != fileHeaderSize+infoHeaderSize {
		return nil, errHeaderLayout
	}
	return buf.Bytes(), nil
}

// WriteTo writes s to w as an uncompressed BMP file.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	hdr, err := s.header()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(hdr)
	total := int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(s.pix)
	total += int64(n)
	return total, err
}

// Save writes s to the named file as an uncompressed BMP image.
func (s *Surface) Save(name string) (err error) {
	if err := s.check(); err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return w.Flush()
}

// Decode reads a BMP image and returns it as a new top-down surface with
// the given colour depth. Any BMP variant understood by
// golang.org/x/image/bmp is accepted.
func Decode(r io.Reader, bpp int) (*Surface, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	s, err := New(b.Dx(), -b.Dy(), bpp)
	if err != nil {
		return nil, err
	}
	draw.Copy(s, image.Point{}, img, b, draw.Src, nil)
	return s, nil
}

// Load reads the named BMP file, see [Decode].
func Load(name string, bpp int) (s *Surface, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	s, err = Decode(bufio.NewReader(f), bpp)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return s, nil
}
