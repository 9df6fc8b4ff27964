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
	"github.com/ZaparooProject/go-oled/raster"
)

// Panel geometry of the reference SSD1306 module.
const (
	DefaultWidth  = 128
	DefaultHeight = 64

	// DefaultFormatCap bounds the text produced by ShowTextf: a 256-byte
	// buffer less its terminator.
	DefaultFormatCap = 255
)

// Config contains configuration options for the Display
type Config struct {
	// Glyphs is the 256-entry font table
	Glyphs *font.Table
	// Width and Height are the panel size in pixels
	Width  int
	Height int
	// FormatCap is the maximum length in bytes of formatted text
	FormatCap int
	// FlipX and FlipY mirror the frame before it is sent to the panel
	FlipX bool
	FlipY bool
}

// DefaultConfig returns the configuration of the reference device: a 128x64
// panel mounted rotated by 180 degrees.
func DefaultConfig() *Config {
	return &Config{
		Glyphs:    &font.Basic,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FormatCap: DefaultFormatCap,
		FlipX:     true,
		FlipY:     true,
	}
}

// Geometry returns the panel size as a raster geometry
func (c *Config) Geometry() raster.Geometry {
	return raster.Geometry{Width: c.Width, Height: c.Height}
}

// Display renders text on a monochrome panel.
//
// Every call blocks until the panel has accepted the frame. Display is NOT
// thread-safe; serialize calls externally if several goroutines share it.
type Display struct {
	panel       Panel
	config      *Config
	logger      *slog.Logger
	rasterizer  *raster.Rasterizer
	initialized bool
}

// New creates a Display drawing on panel. The panel is not touched until Init.
func New(panel Panel, opts ...Option) (*Display, error) {
	if panel == nil {
		return nil, fmt.Errorf("%w: nil panel", ErrInvalidParameter)
	}

	d := &Display{
		panel:  panel,
		config: DefaultConfig(),
		logger: DefaultLogger(),
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	r, err := raster.New(d.config.Geometry(),
		raster.WithTransform(raster.Transform{FlipX: d.config.FlipX, FlipY: d.config.FlipY}),
		raster.WithGlyphs(d.config.Glyphs))
	if err != nil {
		return nil, fmt.Errorf("failed to create rasterizer: %w", err)
	}
	d.rasterizer = r
	d.logger = d.logger.With("panel", string(panel.Type()))

	return d, nil
}

// Init initializes the panel. It must succeed before anything is drawn;
// calling it again on an initialized display is a no-op.
func (d *Display) Init() error {
	if d.initialized {
		return nil
	}

	d.logger.Info("initializing panel", "width", d.config.Width, "height", d.config.Height)
	if err := d.panel.Init(); err != nil {
		d.logger.Error("panel initialization failed", "error", err)
		return NewPanelError("Init", d.panel.Type(), err)
	}

	d.initialized = true
	return nil
}

// Initialized reports whether Init has succeeded.
func (d *Display) Initialized() bool {
	return d.initialized
}

// Config returns a copy of the display configuration
func (d *Display) Config() Config {
	return *d.config
}

// Panel returns the underlying panel
func (d *Display) Panel() Panel {
	return d.panel
}

// Clear blanks the whole panel.
func (d *Display) Clear() error {
	if !d.checkInitialized("Clear") {
		return ErrNotInitialized
	}
	return d.draw("Clear", make([]byte, d.config.Geometry().FrameSize()))
}

// ShowText replaces the panel content with text. Lines wrap at the panel
// width and text that does not fit below the last line is dropped.
func (d *Display) ShowText(text string) error {
	if !d.checkInitialized("ShowText") {
		return ErrNotInitialized
	}

	frame := d.rasterizer.Render(text)
	return d.draw("ShowText", frame)
}

// ShowTextf formats according to a format specifier, truncates the result to
// the configured format cap and shows it.
func (d *Display) ShowTextf(format string, args ...any) error {
	if !d.checkInitialized("ShowTextf") {
		return ErrNotInitialized
	}

	text := raster.Format(d.config.FormatCap, format, args...)
	return d.ShowText(text)
}

// Close closes the panel. The display must be initialized again before reuse.
func (d *Display) Close() error {
	d.initialized = false
	if err := d.panel.Close(); err != nil {
		return fmt.Errorf("failed to close panel: %w", err)
	}
	return nil
}

func (d *Display) checkInitialized(op string) bool {
	if d.initialized {
		return true
	}
	d.logger.Error("panel not initialized", "op", op)
	return false
}

// draw sends one full frame to the panel. Nothing reaches the panel unless
// the frame has exactly the size of the canvas.
func (d *Display) draw(op string, frame []byte) error {
	geom := d.config.Geometry()
	if len(frame) != geom.FrameSize() {
		d.logger.Error("render aborted", "op", op, "frame", len(frame), "want", geom.FrameSize())
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(frame), geom.FrameSize())
	}

	if err := d.panel.DrawBitmap(0, 0, geom.Width, geom.Height, frame); err != nil {
		d.logger.Error("panel write failed", "op", op, "error", err)
		return NewPanelError(op, d.panel.Type(), err)
	}

	d.logger.Debug("frame written", "op", op, "bytes", len(frame))
	return nil
}
