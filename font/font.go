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

// Package font implements compact bitmap fonts for drawing text onto a
// [dib.Surface].
//
// A font table is a sequence of glyph records, terminated by a zero byte.
// Each record consists of the character code, the glyph width and the glyph
// height, each one byte, followed by the glyph bitmap. The bitmap holds
// width*height bits, row by row, most significant bit first, without any
// padding between rows; the final byte is padded with zero bits.
//
// The first record of a table is used for all characters which have no
// record of their own.
package font

import (
	"errors"
	"fmt"

	"seehuhn.de/go/dib"
)

var (
	// ErrInvalidFont is returned when a nil font or an unset Source is used.
	ErrInvalidFont = errors.New("font: invalid font")

	// ErrEmptyTable is returned for a font table without glyphs.
	ErrEmptyTable = errors.New("font: empty font table")

	// ErrTruncated is returned when a glyph record extends past the end of
	// the table.
	ErrTruncated = errors.New("font: truncated glyph record")

	// ErrUnsupportedFont is returned for built-in fonts which are not
	// available.
	ErrUnsupportedFont = errors.New("font: unsupported font")
)

// Flags modify how a font is drawn.
type Flags uint

const (
	// Invert flips the direction in which glyph rows are drawn.
	Invert Flags = 1 << iota
)

type builtin uint8

const (
	noFont builtin = iota
	customFont
	smallFont
	mediumFont
	largeFont
)

// Source selects the glyph table for [Load].
type Source struct {
	kind  builtin
	table []byte
}

// The built-in fonts.
var (
	Small  = Source{kind: smallFont}  // 6 pixels high
	Medium = Source{kind: mediumFont} // 10 pixels high
	Large  = Source{kind: largeFont}  // reserved; not available
)

// Custom returns a Source for a caller supplied font table.
func Custom(table []byte) Source {
	return Source{kind: customFont, table: table}
}

func (s Source) String() string {
	switch s.kind {
	case customFont:
		return "custom"
	case smallFont:
		return "small"
	case mediumFont:
		return "medium"
	case largeFont:
		return "large"
	default:
		return "none"
	}
}

// ByName returns the built-in font with the given name ("small", "medium"
// or "large").
func ByName(name string) (Source, error) {
	switch name {
	case "small":
		return Small, nil
	case "medium":
		return Medium, nil
	case "large":
		return Large, nil
	}
	return Source{}, fmt.Errorf("%w: %q", ErrUnsupportedFont, name)
}

// Glyph is a single character of a bitmap font.
type Glyph struct {
	Char          byte
	Width, Height int

	// Bits holds the Width*Height pixels of the glyph, row by row, most
	// significant bit first.
	Bits []byte
}

// At reports whether the pixel in column x and row y of the glyph is set.
func (g Glyph) At(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}
	k := y*g.Width + x
	return g.Bits[k>>3]&(0x80>>(k&7)) != 0
}

// recordSize returns the number of bytes in a record for a glyph of the
// given size.
func recordSize(w, h byte) int {
	return 3 + (int(w)*int(h)+7)/8
}

// ParseGlyph decodes the glyph record at the start of rec.
// The returned glyph shares its bitmap with rec.
func ParseGlyph(rec []byte) (Glyph, error) {
	if len(rec) < 3 {
		return Glyph{}, ErrTruncated
	}
	if rec[0] == 0 {
		return Glyph{}, fmt.Errorf("%w: zero character code", ErrInvalidFont)
	}
	n := recordSize(rec[1], rec[2])
	if n > len(rec) {
		return Glyph{}, fmt.Errorf("%w: glyph %q needs %d bytes, %d available",
			ErrTruncated, rec[0], n, len(rec))
	}
	return Glyph{
		Char:   rec[0],
		Width:  int(rec[1]),
		Height: int(rec[2]),
		Bits:   rec[3:n:n],
	}, nil
}

// NextGlyph returns the part of a font table following the glyph record at
// the start of rec. The result is nil if rec is empty, starts with the
// terminating zero byte, or holds an incomplete record.
func NextGlyph(rec []byte) []byte {
	if len(rec) < 3 || rec[0] == 0 {
		return nil
	}
	n := recordSize(rec[1], rec[2])
	if n > len(rec) {
		return nil
	}
	return rec[n:]
}

// TableSize returns the number of bytes in a font table, up to but not
// including the terminating zero byte. A table without a terminator ends
// at the end of the slice.
func TableSize(table []byte) (int, error) {
	pos := 0
	for pos < len(table) && table[pos] != 0 {
		if pos+3 > len(table) {
			return 0, fmt.Errorf("%w: record header at offset %d", ErrTruncated, pos)
		}
		n := recordSize(table[pos+1], table[pos+2])
		if pos+n > len(table) {
			return 0, fmt.Errorf("%w: glyph %q at offset %d", ErrTruncated, table[pos], pos)
		}
		pos += n
	}
	if pos == 0 {
		return 0, ErrEmptyTable
	}
	return pos, nil
}

// Font is a loaded bitmap font.
type Font struct {
	flags  Flags
	table  []byte
	glyphs []Glyph
	index  [256]int // into glyphs
}

// Load indexes a font table.
// Custom tables are copied, so the caller may reuse the slice afterwards.
func Load(src Source, flags Flags) (*Font, error) {
	var table []byte
	switch src.kind {
	case smallFont:
		table = smallTable
	case mediumFont:
		table = mediumTable
	case largeFont:
		dib.Logger().Debug("font.Load: large font requested")
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFont, src)
	case customFont:
		table = src.table
	default:
		return nil, ErrInvalidFont
	}

	size, err := TableSize(table)
	if err != nil {
		dib.Logger().Debug("font.Load: bad table", "font", src.String(), "error", err)
		return nil, err
	}

	f := &Font{
		flags: flags,
		table: append([]byte(nil), table[:size]...),
	}

	// Every character defaults to the first glyph (index 0), so the zero
	// value of f.index is already correct.
	for rec := f.table; len(rec) > 0; rec = NextGlyph(rec) {
		g, err := ParseGlyph(rec)
		if err != nil {
			return nil, err
		}
		f.index[g.Char] = len(f.glyphs)
		f.glyphs = append(f.glyphs, g)
	}
	return f, nil
}

// Flags returns the flags given to [Load].
func (f *Font) Flags() Flags {
	return f.flags
}

// Glyph returns the glyph for ch. Characters without a glyph of their own
// use the first glyph of the table.
//
// A nil or zero Font has no glyphs and returns the zero Glyph.
func (f *Font) Glyph(ch byte) Glyph {
	if f == nil || len(f.glyphs) == 0 {
		return Glyph{}
	}
	return f.glyphs[f.index[ch]]
}

// Glyphs returns all glyphs of the font, in table order.
func (f *Font) Glyphs() []Glyph {
	return f.glyphs
}

// Table returns the font table. The slice must not be modified.
func (f *Font) Table() []byte {
	return f.table
}
