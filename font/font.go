// go-oled
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-oled.
//
// go-oled is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-oled is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-oled; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Package font provides fixed 8x8 monochrome glyph tables indexed by raw byte
// value.
package font

// Glyph dimensions in pixels.
const (
	Width  = 8
	Height = 8
)

// Glyph is an 8x8 bitmap. Byte r holds row r from the top; bit b of a row is
// column b counted from the left, so bit 0 is the leftmost pixel.
type Glyph [Height]byte

// Set reports whether the pixel at column x, row y is lit. Coordinates
// outside the cell are never lit.
func (g Glyph) Set(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g[y]&(1<<uint(x)) != 0
}

// Blank reports whether the glyph has no lit pixels.
func (g Glyph) Blank() bool {
	for _, row := range g {
		if row != 0 {
			return false
		}
	}
	return true
}

// Table maps every byte value to a glyph. Indexing with a byte can never go
// out of range, so high-bit bytes are always looked up as 0x80..0xFF.
type Table [256]Glyph

// Lookup returns the glyph for b.
func (t *Table) Lookup(b byte) Glyph {
	return t[b]
}

// Placeholder is drawn for bytes that have no glyph in Basic.
var Placeholder = Glyph{0x7E, 0x42, 0x42, 0x42, 0x42, 0x42, 0x7E, 0x00}

// Basic is the font8x8 basic Latin set for 0x00..0x7F with Placeholder for
// every byte from 0x80 up.
var Basic = func() Table {
	var t Table
	copy(t[:], basicLatin[:])
	for i := len(basicLatin); i < len(t); i++ {
		t[i] = Placeholder
	}
	return t
}()
