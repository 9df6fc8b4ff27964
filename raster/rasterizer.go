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

import "github.com/ZaparooProject/go-oled/font"

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithTransform sets the flips applied while packing.
func WithTransform(t Transform) Option {
	return func(r *Rasterizer) {
		r.transform = t
	}
}

// WithGlyphs replaces the glyph table. A nil table is ignored.
func WithGlyphs(glyphs *font.Table) Option {
	return func(r *Rasterizer) {
		if glyphs != nil {
			r.glyphs = glyphs
		}
	}
}

// Rasterizer renders text into packed frames for one panel geometry.
// It keeps no per-render state, so a Rasterizer may be reused freely.
type Rasterizer struct {
	glyphs    *font.Table
	geometry  Geometry
	transform Transform
}

// New creates a Rasterizer using font.Basic and no flips by default.
func New(g Geometry, opts ...Option) (*Rasterizer, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	r := &Rasterizer{
		geometry: g,
		glyphs:   &font.Basic,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Geometry returns the panel geometry.
func (r *Rasterizer) Geometry() Geometry {
	return r.geometry
}

// Transform returns the packing transform.
func (r *Rasterizer) Transform() Transform {
	return r.transform
}

// Canvas rasterizes text onto a fresh canvas without packing it.
func (r *Rasterizer) Canvas(text string) *Canvas {
	c := NewCanvas(r.geometry.Width, r.geometry.Height)
	Rasterize(c, text, r.glyphs)
	return c
}

// Render rasterizes text and packs it into a new frame of
// Geometry().FrameSize() bytes.
func (r *Rasterizer) Render(text string) []byte {
	return Pack(r.Canvas(text), r.transform)
}
