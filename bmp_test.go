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
	"encoding/binary"
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestHeader(t *testing.T) {
	s := newTestSurface(t, 3, -2, 24)
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if n != int64(len(data)) || len(data) != 14+40+24 {
		t.Fatalf("wrote %d bytes (reported %d), want %d", len(data), n, 14+40+24)
	}

	le := binary.LittleEndian
	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"file size", le.Uint32(data[2:]), 78},
		{"data offset", le.Uint32(data[10:]), 54},
		{"info size", le.Uint32(data[14:]), 40},
		{"width", le.Uint32(data[18:]), 3},
		{"height", le.Uint32(data[22:]), uint32(0xFFFFFFFE)},
		{"planes", uint32(le.Uint16(data[26:])), 1},
		{"bit count", uint32(le.Uint16(data[28:])), 24},
		{"compression", le.Uint32(data[30:]), 0},
		{"image size", le.Uint32(data[34:]), 24},
	}
	if string(data[:2]) != "BM" {
		t.Errorf("magic %q", data[:2])
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, c.got, c.want)
		}
	}
	for i, b := range data[38:54] {
		if b != 0 {
			t.Errorf("byte %d of the info header is %d", 24+i, b)
		}
	}
}

func TestWriteInvalid(t *testing.T) {
	var s Surface
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); !errors.Is(err, ErrInvalidSurface) {
		t.Errorf("got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes", buf.Len())
	}
}

// TestRoundTrip writes surfaces in both row orders and both depths, and
// reads them back with an independent decoder.
func TestRoundTrip(t *testing.T) {
	for _, bpp := range []int{24, 32} {
		for _, h := range []int{5, -5} {
			s := newTestSurface(t, 7, h, bpp)
			if err := s.Fill(0x606060); err != nil {
				t.Fatal(err)
			}
			// row 0 of the memory layout
			if err := s.Line(0, 0, 6, 0, 0x123456); err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			if _, err := s.WriteTo(&buf); err != nil {
				t.Fatal(err)
			}
			img, err := bmp.Decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("%d bit, height %d: %v", bpp, h, err)
			}
			if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
				t.Fatalf("decoded size %v", b)
			}

			lineRow := 4 // bottom-up: row 0 is the bottom row
			if h < 0 {
				lineRow = 0
			}
			for y := range 5 {
				want := color.RGBA{0x60, 0x60, 0x60, 0xff}
				if y == lineRow {
					want = color.RGBA{0x12, 0x34, 0x56, 0xff}
				}
				got := color.RGBAModel.Convert(img.At(3, y)).(color.RGBA)
				if got.R != want.R || got.G != want.G || got.B != want.B {
					t.Errorf("%d bit, height %d, row %d: got %v, want %v", bpp, h, y, got, want)
				}
			}

			// The Surface must agree with the decoder about what is on
			// screen.
			if c := ColorModel.Convert(s.At(3, lineRow)).(Color); c != 0x123456 {
				t.Errorf("%d bit, height %d: At gives %v", bpp, h, c)
			}
		}
	}
}

// New ignores the sign of the width, so the file must carry the positive
// width.
func TestRoundTripNegativeWidth(t *testing.T) {
	s := newTestSurface(t, -4, -3, 24)
	for y := range 3 {
		for x := range 4 {
			if err := s.SetPixel(x, y, RGB(uint8(40*x), uint8(60*y), 0x80)); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if w := int32(binary.LittleEndian.Uint32(buf.Bytes()[18:])); w != 4 {
		t.Errorf("biWidth = %d, want 4", w)
	}

	back, err := Decode(bytes.NewReader(buf.Bytes()), 24)
	if err != nil {
		t.Fatal(err)
	}
	if back.Width() != 4 || back.Height() != -3 {
		t.Fatalf("decoded size %dx%d", back.Width(), back.Height())
	}
	for y := range 3 {
		for x := range 4 {
			want, _ := s.Pixel(x, y)
			if got, _ := back.Pixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSaveLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.bmp")

	s := newTestSurface(t, 9, 4, 24)
	if err := s.Fill(White); err != nil {
		t.Fatal(err)
	}
	if err := s.FillRect(2, 1, 4, 2, 0x102030); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(name); err != nil {
		t.Fatal(err)
	}

	for _, bpp := range []int{24, 32} {
		r, err := Load(name, bpp)
		if err != nil {
			t.Fatal(err)
		}
		if r.Width() != 9 || r.Height() != -4 || r.BPP() != bpp {
			t.Fatalf("loaded %dx%d@%d", r.Width(), r.Height(), r.BPP())
		}
		// s is bottom-up, r is top-down: memory row y of s is row 3-y of r
		for y := range 4 {
			for x := range 9 {
				want, _ := s.Pixel(x, y)
				got, _ := r.Pixel(x, 3-y)
				if got&0xFFFFFF != want {
					t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
				}
			}
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.bmp"), 24); err == nil {
		t.Error("loading a missing file succeeded")
	}
}

func TestImageSet(t *testing.T) {
	s := newTestSurface(t, 4, 3, 32)
	s.Set(1, 0, color.RGBA{0x11, 0x22, 0x33, 0xff})
	s.Set(-1, 0, color.White) // ignored

	// image row 0 is the top row, stored last in a bottom-up surface
	c, err := s.Pixel(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if c != 0x112233 {
		t.Errorf("got %v", c)
	}
	if s.Bounds().Dx() != 4 || s.Bounds().Dy() != 3 {
		t.Errorf("bounds %v", s.Bounds())
	}
}
