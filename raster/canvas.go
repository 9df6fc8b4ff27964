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

// Package raster turns byte strings into packed monochrome framebuffers laid
// out for page-addressed OLED controllers such as the SSD1306.
//
// Rendering happens in two stages. Rasterize draws 8x8 glyphs onto a logical
// Canvas, then Pack converts the canvas into the controller's native layout,
// where every byte holds 8 vertically stacked pixels of one column:
//
//	byte index = (y / 8) * width + x
//	bit index  = y % 8
//
// Optional horizontal and vertical flips are applied while packing so that a
// panel mounted upside down still shows upright text.
package raster

import (
	"errors"
	"fmt"

	"github.com/ZaparooProject/go-oled/font"
)

// ErrInvalidGeometry is returned for canvas sizes the packed layout cannot
// represent.
var ErrInvalidGeometry = errors.New("invalid canvas geometry")

// Geometry is the pixel size of a panel.
type Geometry struct {
	Width  int
	Height int
}

// Validate checks that both dimensions are positive and the height covers
// whole 8-pixel pages.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.Height%8 != 0 {
		return fmt.Errorf("%w: height %d is not a multiple of 8", ErrInvalidGeometry, g.Height)
	}
	return nil
}

// CharsPerLine is the number of whole glyph cells that fit on one text line.
func (g Geometry) CharsPerLine() int {
	return g.Width / font.Width
}

// FrameSize is the length in bytes of a packed framebuffer.
func (g Geometry) FrameSize() int {
	return g.Width * g.Height / 8
}

// Canvas is a logical pixel grid stored as one flat slice indexed y*width+x.
type Canvas struct {
	pix    []bool
	width  int
	height int
}

// NewCanvas allocates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		pix:    make([]bool, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Set lights the pixel at (x, y). Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = true
}

// At reports whether the pixel at (x, y) is lit.
func (c *Canvas) At(x, y int) bool {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return false
	}
	return c.pix[y*c.width+x]
}

// Reset clears every pixel.
func (c *Canvas) Reset() {
	clear(c.pix)
}

// Count returns the number of lit pixels.
func (c *Canvas) Count() int {
	n := 0
	for _, on := range c.pix {
		if on {
			n++
		}
	}
	return n
}
