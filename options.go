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

package oled

import (
	"fmt"
	"log/slog"

	"github.com/ZaparooProject/go-oled/font"
)

// Option is a functional option for configuring a Display
type Option func(*Display) error

// WithGeometry sets the panel size in pixels
func WithGeometry(width, height int) Option {
	return func(d *Display) error {
		d.config.Width = width
		d.config.Height = height
		return nil
	}
}

// WithFlip mirrors the rendered frame horizontally and/or vertically
func WithFlip(flipX, flipY bool) Option {
	return func(d *Display) error {
		d.config.FlipX = flipX
		d.config.FlipY = flipY
		return nil
	}
}

// WithGlyphs replaces the glyph table used for rendering
func WithGlyphs(glyphs *font.Table) Option {
	return func(d *Display) error {
		if glyphs == nil {
			return fmt.Errorf("%w: nil glyph table", ErrInvalidParameter)
		}
		d.config.Glyphs = glyphs
		return nil
	}
}

// WithFormatCap sets the maximum length in bytes of text produced by ShowTextf
func WithFormatCap(limit int) Option {
	return func(d *Display) error {
		if limit <= 0 {
			return fmt.Errorf("%w: format cap %d", ErrInvalidParameter, limit)
		}
		d.config.FormatCap = limit
		return nil
	}
}

// WithLogger sets the logger for warnings and render failures
func WithLogger(logger *slog.Logger) Option {
	return func(d *Display) error {
		if logger != nil {
			d.logger = logger
		}
		return nil
	}
}
