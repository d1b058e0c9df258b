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

// smallTable is a proportional font with glyphs 6 pixels high.
// The first record is the fallback glyph for characters not in the
// table.
var smallTable = []byte{
	'.', 1, 6, 0x08,

	'\t', 8, 0,
	' ', 3, 0,

	'!', 1, 6, 0xea,
	'+', 3, 6, 0x0b, 0xa0, 0x00,
	'-', 3, 6, 0x03, 0x80, 0x00,
	'/', 3, 6, 0x25, 0x48, 0x00,
	'*', 3, 6, 0xab, 0xaa, 0x00,
	'@', 4, 6, 0x69, 0xbb, 0x87,
	':', 1, 6, 0x52,
	'=', 3, 6, 0x1c, 0x70, 0x00,
	'?', 4, 6, 0x69, 0x24, 0x04,
	'%', 3, 6, 0x85, 0x28, 0x40,
	'^', 3, 6, 0x54, 0x00, 0x00,
	'#', 5, 6, 0x57, 0xd5, 0xf5, 0x00,
	'$', 5, 6, 0x23, 0xe8, 0xe2, 0xf8,
	'~', 4, 6, 0x05, 0xa0, 0x00,
	'0', 3, 6, 0x56, 0xd4, 0x31,
	'1', 2, 6, 0xd5, 0x42,
	'2', 4, 6, 0xe1, 0x68, 0xf0,
	'3', 4, 6, 0xe1, 0x61, 0xe0,
	'4', 4, 6, 0x89, 0xf1, 0x10,
	'5', 4, 6, 0xf8, 0xe1, 0xe0,
	'6', 4, 6, 0x78, 0xe9, 0x60,
	'7', 4, 6, 0xf1, 0x24, 0x40,
	'8', 4, 6, 0x69, 0x69, 0x60,
	'9', 4, 6, 0x69, 0x71, 0x60,
	'A', 4, 6, 0x69, 0xf9, 0x90,
	'B', 4, 6, 0xe9, 0xe9, 0xe0,
	'C', 4, 6, 0x78, 0x88, 0x70,
	'D', 4, 6, 0xe9, 0x99, 0xe0,
	'E', 4, 6, 0xf8, 0xe8, 0xf0,
	'F', 4, 6, 0xf8, 0xe8, 0x80,
	'G', 4, 6, 0x78, 0xb9, 0x70,
	'H', 4, 6, 0x99, 0xf9, 0x90,
	'I', 3, 6, 0xe9, 0x2e, 0x00,
	'J', 4, 6, 0xf2, 0x2a, 0x40,
	'K', 4, 6, 0x9a, 0xca, 0x90,
	'L', 3, 6, 0x92, 0x4e, 0x00,
	'M', 5, 6, 0x8e, 0xeb, 0x18, 0x80,
	'N', 4, 6, 0x9d, 0xb9, 0x90,
	'O', 4, 6, 0x69, 0x99, 0x60,
	'P', 4, 6, 0xe9, 0xe8, 0x80,
	'Q', 4, 6, 0x69, 0x9b, 0x70,
	'R', 4, 6, 0xe9, 0xea, 0x90,
	'S', 4, 6, 0x78, 0x61, 0xe0,
	'T', 3, 6, 0xe9, 0x24, 0x00,
	'U', 4, 6, 0x99, 0x99, 0x60,
	'V', 4, 6, 0x99, 0x96, 0x60,
	'W', 5, 6, 0x8c, 0x6b, 0x55, 0x00,
	'X', 4, 6, 0x99, 0x69, 0x90,
	'Y', 3, 6, 0xb5, 0x24, 0x00,
	'Z', 4, 6, 0xf2, 0x48, 0xf0,
	'a', 4, 6, 0x69, 0xf9, 0x90,
	'b', 4, 6, 0xe9, 0xe9, 0xe0,
	'c', 4, 6, 0x78, 0x88, 0x70,
	'd', 4, 6, 0xe9, 0x99, 0xe0,
	'e', 4, 6, 0xf8, 0xe8, 0xf0,
	'f', 4, 6, 0xf8, 0xe8, 0x80,
	'g', 4, 6, 0x78, 0xb9, 0x70,
	'h', 4, 6, 0x99, 0xf9, 0x90,
	'i', 3, 6, 0xe9, 0x2e, 0x00,
	'j', 4, 6, 0xf2, 0x2a, 0x40,
	'k', 4, 6, 0x9a, 0xca, 0x90,
	'l', 3, 6, 0x92, 0x4e, 0x00,
	'm', 5, 6, 0x8e, 0xeb, 0x18, 0x80,
	'n', 4, 6, 0x9d, 0xb9, 0x90,
	'o', 4, 6, 0x69, 0x99, 0x60,
	'p', 4, 6, 0xe9, 0xe8, 0x80,
	'q', 4, 6, 0x69, 0x9b, 0x70,
	'r', 4, 6, 0xe9, 0xea, 0x90,
	's', 4, 6, 0x78, 0x61, 0xe0,
	't', 3, 6, 0xe9, 0x24, 0x00,
	'u', 4, 6, 0x99, 0x99, 0x60,
	'v', 4, 6, 0x99, 0x96, 0x60,
	'w', 5, 6, 0x8c, 0x6b, 0x55, 0x00,
	'x', 4, 6, 0x99, 0x69, 0x90,
	'y', 3, 6, 0xb5, 0x24, 0x00,
	'z', 4, 6, 0xf2, 0x48, 0xf0,

	0,
}

// mediumTable is a proportional font with glyphs 10 pixels high.
// The first record is the fallback glyph for characters not in the
// table.
var mediumTable = []byte{
	'.', 2, 10, 0x00, 0x3c, 0x00,

	'\t', 10, 0,
	' ', 2, 0,

	'!', 1, 10, 0xf6, 0x00,
	'(', 3, 10, 0x2a, 0x48, 0x88, 0x00,
	')', 3, 10, 0x88, 0x92, 0xa0, 0x00,
	',', 2, 10, 0x00, 0x16, 0x00,
	'-', 3, 10, 0x00, 0x70, 0x00, 0x00,
	'/', 3, 10, 0x25, 0x25, 0x20, 0x00,
	'@', 6, 10, 0x7a, 0x19, 0x6b, 0x9a, 0x07, 0x80, 0x00, 0x00,
	'$', 5, 10, 0x23, 0xab, 0x47, 0x16, 0xae, 0x20, 0x00,
	'#', 6, 10, 0x49, 0x2f, 0xd2, 0xfd, 0x24, 0x80, 0x00, 0x00,
	'%', 7, 10, 0x43, 0x49, 0x20, 0x82, 0x49, 0x61, 0x00, 0x00, 0x00,
	':', 2, 10, 0x3c, 0xf0, 0x00,
	'^', 3, 10, 0x54, 0x00, 0x00, 0x00,
	'~', 5, 10, 0x00, 0x11, 0x51, 0x00, 0x00, 0x00, 0x00,
	'0', 5, 10, 0x74, 0x73, 0x59, 0xc5, 0xc0, 0x00, 0x00,
	'1', 3, 10, 0xc9, 0x24, 0xb8, 0x00,
	'2', 5, 10, 0x74, 0x42, 0xe8, 0x43, 0xe0, 0x00, 0x00,
	'3', 5, 10, 0x74, 0x42, 0xe0, 0xc5, 0xc0, 0x00, 0x00,
	'4', 5, 10, 0x11, 0x95, 0x2f, 0x88, 0x40, 0x00, 0x00,
	'5', 5, 10, 0xfc, 0x3c, 0x10, 0xc5, 0xc0, 0x00, 0x00,
	'6', 5, 10, 0x74, 0x61, 0xe8, 0xc5, 0xc0, 0x00, 0x00,
	'7', 5, 10, 0xfc, 0x44, 0x42, 0x10, 0x80, 0x00, 0x00,
	'8', 5, 10, 0x74, 0x62, 0xe8, 0xc5, 0xc0, 0x00, 0x00,
	'9', 5, 10, 0x74, 0x62, 0xf0, 0xc5, 0xc0, 0x00, 0x00,
	'A', 6, 10, 0x31, 0x28, 0x7f, 0x86, 0x18, 0x40, 0x00, 0x00,
	'B', 6, 10, 0xfa, 0x18, 0x7e, 0x86, 0x1f, 0x80, 0x00, 0x00,
	'C', 6, 10, 0x7a, 0x18, 0x20, 0x82, 0x17, 0x80, 0x00, 0x00,
	'D', 6, 10, 0xfa, 0x18, 0x61, 0x86, 0x1f, 0x80, 0x00, 0x00,
	'E', 6, 10, 0xfe, 0x08, 0x3c, 0x82, 0x0f, 0xc0, 0x00, 0x00,
	'F', 6, 10, 0xfe, 0x08, 0x3c, 0x82, 0x08, 0x00, 0x00, 0x00,
	'G', 6, 10, 0x7a, 0x18, 0x27, 0x86, 0x17, 0xc0, 0x00, 0x00,
	'H', 6, 10, 0x86, 0x18, 0x7f, 0x86, 0x18, 0x40, 0x00, 0x00,
	'I', 3, 10, 0xe9, 0x24, 0xb8, 0x00,
	'J', 6, 10, 0xfc, 0x41, 0x04, 0x12, 0x46, 0x00, 0x00, 0x00,
	'K', 5, 10, 0x8c, 0xa9, 0x8a, 0x4a, 0x20, 0x00, 0x00,
	'L', 4, 10, 0x88, 0x88, 0x88, 0xf0, 0x00,
	'M', 6, 10, 0x87, 0x3b, 0x61, 0x86, 0x18, 0x40, 0x00, 0x00,
	'N', 5, 10, 0x8e, 0x6b, 0x38, 0xc6, 0x20, 0x00, 0x00,
	'O', 6, 10, 0x7a, 0x18, 0x61, 0x86, 0x17, 0x80, 0x00, 0x00,
	'P', 5, 10, 0xf4, 0x63, 0xe8, 0x42, 0x00, 0x00, 0x00,
	'Q', 6, 10, 0x7a, 0x18, 0x61, 0x86, 0x57, 0x81, 0x00, 0x00,
	'R', 5, 10, 0xf4, 0x63, 0xe8, 0xc6, 0x20, 0x00, 0x00,
	'S', 6, 10, 0x7a, 0x18, 0x1e, 0x06, 0x17, 0x80, 0x00, 0x00,
	'T', 3, 10, 0xe9, 0x24, 0x90, 0x00,
	'U', 6, 10, 0x86, 0x18, 0x61, 0x86, 0x17, 0x80, 0x00, 0x00,
	'V', 6, 10, 0x86, 0x18, 0x61, 0x85, 0x23, 0x00, 0x00, 0x00,
	'W', 7, 10, 0x83, 0x06, 0x4c, 0x99, 0x35, 0x51, 0x00, 0x00, 0x00,
	'X', 5, 10, 0x8c, 0x54, 0x45, 0x46, 0x20, 0x00, 0x00,
	'Y', 5, 10, 0x8c, 0x54, 0x42, 0x10, 0x80, 0x00, 0x00,
	'Z', 6, 10, 0xfc, 0x10, 0x84, 0x21, 0x0f, 0xc0, 0x00, 0x00,
	'a', 4, 10, 0x00, 0x61, 0x79, 0x70, 0x00,
	'b', 4, 10, 0x88, 0xe9, 0x99, 0xe0, 0x00,
	'c', 4, 10, 0x00, 0x78, 0x88, 0x70, 0x00,
	'd', 4, 10, 0x11, 0x79, 0x99, 0x70, 0x00,
	'e', 4, 10, 0x00, 0x69, 0xf8, 0x60, 0x00,
	'f', 4, 10, 0x25, 0x4e, 0x44, 0x40, 0x00,
	'g', 4, 10, 0x00, 0x79, 0x99, 0x71, 0x60,
	'h', 4, 10, 0x88, 0xe9, 0x99, 0x90, 0x00,
	'i', 1, 10, 0xbe, 0x00,
	'j', 2, 10, 0x04, 0x55, 0x80,
	'k', 4, 10, 0x89, 0xac, 0xca, 0x90, 0x00,
	'l', 3, 10, 0xc9, 0x24, 0x98, 0x00,
	'm', 5, 10, 0x00, 0x15, 0x5a, 0xd6, 0x20, 0x00, 0x00,
	'n', 4, 10, 0x00, 0xe9, 0x99, 0x90, 0x00,
	'o', 4, 10, 0x00, 0x69, 0x99, 0x60, 0x00,
	'p', 4, 10, 0x00, 0xe9, 0x99, 0xe8, 0x80,
	'q', 4, 10, 0x00, 0x79, 0x97, 0x11, 0x10,
	'r', 3, 10, 0x02, 0xe9, 0x20, 0x00,
	's', 4, 10, 0x00, 0x78, 0x61, 0xe0, 0x00,
	't', 3, 10, 0x4b, 0xa4, 0x88, 0x00,
	'u', 4, 10, 0x00, 0x99, 0x99, 0x70, 0x00,
	'v', 4, 10, 0x00, 0x99, 0x99, 0x60, 0x00,
	'w', 5, 10, 0x00, 0x23, 0x1a, 0xd5, 0x40, 0x00, 0x00,
	'x', 5, 10, 0x00, 0x22, 0xa2, 0x2a, 0x20, 0x00, 0x00,
	'y', 4, 10, 0x00, 0x99, 0x99, 0x71, 0x60,
	'z', 4, 10, 0x00, 0xf1, 0x24, 0xf0, 0x00,

	0,
}
