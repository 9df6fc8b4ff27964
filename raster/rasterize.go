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

package raster

import (
	"fmt"

	"github.com/ZaparooProject/go-oled/font"
)

// Rasterize clears c and draws text onto it one byte per glyph cell.
//
// Text is processed byte-wise. Before each byte the cursor wraps to the next
// line once it has passed the last whole cell; if that pushes it below the
// canvas the rest of the text is dropped. A '\n' moves to the next line,
// except when the cursor already sits at column 0 and the previous byte was
// not also '\n': that newline is swallowed so a line that ends exactly at the
// right edge followed by '\n' does not leave an empty line behind.
// Consecutive "\n\n" still produces a blank line. A NUL byte ends the text.
// Glyph pixels that fall outside the canvas are clipped.
func Rasterize(c *Canvas, text string, glyphs *font.Table) {
	c.Reset()

	lineEnd := (c.width / font.Width) * font.Width
	x, y := 0, 0

	for i := 0; i < len(text); i++ {
		if x >= lineEnd {
			x = 0
			y += font.Height
			if y >= c.height {
				return
			}
		}

		ch := text[i]
		if ch == 0 {
			return
		}
		if ch == '\n' {
			// TODO: decide whether a leading '\n' should be honoured; the
			// column-0 rule drops it along with the post-wrap newline.
			if x == 0 && (i == 0 || text[i-1] != '\n') {
				continue
			}
			x = 0
			y += font.Height
			continue
		}

		drawGlyph(c, glyphs.Lookup(ch), x, y)
		x += font.Width
	}
}

func drawGlyph(c *Canvas, g font.Glyph, x0, y0 int) {
	for gy := 0; gy < font.Height; gy++ {
		row := g[gy]
		if row == 0 {
			continue
		}
		for gx := 0; gx < font.Width; gx++ {
			if row&(1<<uint(gx)) != 0 {
				c.Set(x0+gx, y0+gy)
			}
		}
	}
}

// Format expands a printf-style format and truncates the result to at most
// limit bytes. A non-positive limit disables truncation.
func Format(limit int, format string, args ...any) string {
	s := fmt.Sprintf(format, args...)
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
