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

// Package snapshot provides a panel that saves every frame as a BMP file
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/ZaparooProject/go-oled/preview"
	"github.com/ZaparooProject/go-oled/raster"
)

// DefaultScale is the default upscale factor of saved frames
const DefaultScale = 4

// Config holds the snapshot settings. Transform must match the display's
// flips so saved images show the logical canvas.
type Config struct {
	Dir       string
	Geometry  raster.Geometry
	Transform raster.Transform
	Scale     int
}

// Panel implements oled.Panel by writing frame-NNNN.bmp files to a directory
type Panel struct {
	cfg    Config
	frames int
	open   bool
}

// New validates cfg and returns a snapshot panel
func New(cfg Config) (*Panel, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("%w: empty snapshot directory", oled.ErrInvalidParameter)
	}
	if err := cfg.Geometry.Validate(); err != nil {
		return nil, err
	}
	if cfg.Scale < 1 {
		cfg.Scale = DefaultScale
	}
	return &Panel{cfg: cfg}, nil
}

// Init creates the output directory
func (p *Panel) Init() error {
	if err := os.MkdirAll(p.cfg.Dir, 0o750); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	p.open = true
	return nil
}

// DrawBitmap saves a full frame as the next numbered BMP
func (p *Panel) DrawBitmap(x0, y0, x1, y1 int, data []byte) error {
	if !p.open {
		return oled.ErrPanelClosed
	}
	g := p.cfg.Geometry
	if x0 != 0 || y0 != 0 || x1 != g.Width || y1 != g.Height {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", oled.ErrPartialDraw, x0, y0, x1, y1)
	}

	path := p.Path(p.frames)
	f, err := os.Create(path) //nolint:gosec // path is built from the configured directory
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := preview.EncodeBMP(f, data, g, p.cfg.Transform, p.cfg.Scale); err != nil {
		return errors.Join(err, f.Close(), os.Remove(path))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	p.frames++
	return nil
}

// Path returns the file name used for frame n
func (p *Panel) Path(n int) string {
	return filepath.Join(p.cfg.Dir, fmt.Sprintf("frame-%04d.bmp", n))
}

// Frames returns the number of frames saved so far
func (p *Panel) Frames() int {
	return p.frames
}

// Close stops accepting frames
func (p *Panel) Close() error {
	p.open = false
	return nil
}

// Type returns the panel type
func (*Panel) Type() oled.PanelType {
	return oled.PanelSnapshot
}

var _ oled.Panel = (*Panel)(nil)
