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

import "fmt"

// Transform mirrors logical coordinates before they are packed.
type Transform struct {
	FlipX bool
	FlipY bool
}

func (t Transform) apply(x, y, width, height int) (dx, dy int) {
	dx, dy = x, y
	if t.FlipX {
		dx = width - 1 - x
	}
	if t.FlipY {
		dy = height - 1 - y
	}
	return dx, dy
}

// Pack converts c into the page-addressed layout. The canvas height must be a
// multiple of 8; rows past the last whole page are not packed.
func Pack(c *Canvas, t Transform) []byte {
	height := c.height - c.height%8
	buf := make([]byte, c.width*height/8)

	for y := 0; y < height; y++ {
		for x := 0; x < c.width; x++ {
			if !c.pix[y*c.width+x] {
				continue
			}
			dx, dy := t.apply(x, y, c.width, height)
			buf[(dy/8)*c.width+dx] |= 1 << uint(dy%8)
		}
	}
	return buf
}

// Unpack is the inverse of Pack: it rebuilds the logical canvas that produced
// frame under the same transform.
func Unpack(frame []byte, g Geometry, t Transform) (*Canvas, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(frame) != g.FrameSize() {
		return nil, fmt.Errorf("frame is %d bytes, want %d", len(frame), g.FrameSize())
	}

	c := NewCanvas(g.Width, g.Height)
	for dy := 0; dy < g.Height; dy++ {
		for dx := 0; dx < g.Width; dx++ {
			if frame[(dy/8)*g.Width+dx]&(1<<uint(dy%8)) == 0 {
				continue
			}
			// Flips are their own inverse.
			x, y := t.apply(dx, dy, g.Width, g.Height)
			c.Set(x, y)
		}
	}
	return c, nil
}
