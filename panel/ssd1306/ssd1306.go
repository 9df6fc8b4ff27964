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

// Package ssd1306 provides an oled.Panel for SSD1306 modules on an I2C bus
package ssd1306

import (
	"errors"
	"fmt"
	"time"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

const (
	// Max clock frequency (400 kHz).
	maxClockFreq = 400 * physic.KiloHertz

	// DefaultResetPulse is how long the reset line is held low.
	DefaultResetPulse = 10 * time.Millisecond
)

// Config holds the bus and module settings
type Config struct {
	// Bus is the periph.io I2C bus name; empty selects the first bus.
	Bus string
	// ResetChip is the GPIO character device of the reset line, e.g. "gpiochip0".
	// Empty disables the hardware reset.
	ResetChip  string
	Width      int
	Height     int
	ResetLine  int
	ResetPulse time.Duration
}

// DefaultConfig returns the settings of a 128x64 module on the first bus
// without a reset line
func DefaultConfig() Config {
	return Config{
		Width:      oled.DefaultWidth,
		Height:     oled.DefaultHeight,
		ResetPulse: DefaultResetPulse,
	}
}

// frameWriter is the part of ssd1306.Dev used by the panel
type frameWriter interface {
	Write(pixels []byte) (int, error)
	Halt() error
}

// Panel implements oled.Panel for an SSD1306 module
type Panel struct {
	bus   i2c.BusCloser
	dev   frameWriter
	reset *gpiocdev.Line
	cfg   Config
}

// New validates cfg and returns an uninitialized panel
func New(cfg Config) (*Panel, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Height%8 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", oled.ErrInvalidGeometry, cfg.Width, cfg.Height)
	}
	if cfg.ResetChip != "" && cfg.ResetLine < 0 {
		return nil, fmt.Errorf("%w: reset line %d", oled.ErrInvalidParameter, cfg.ResetLine)
	}
	if cfg.ResetPulse <= 0 {
		cfg.ResetPulse = DefaultResetPulse
	}
	return &Panel{cfg: cfg}, nil
}

// Init opens the bus, pulses the reset line and switches the module on
func (p *Panel) Init() error {
	if p.dev != nil {
		return nil
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph host: %w", err)
	}

	bus, err := i2creg.Open(p.cfg.Bus)
	if err != nil {
		return fmt.Errorf("failed to open I2C bus %s: %w", p.cfg.Bus, err)
	}
	_ = bus.SetSpeed(maxClockFreq) // Ignore error, continue with default speed

	if p.cfg.ResetChip != "" {
		if err := p.pulseReset(); err != nil {
			_ = bus.Close()
			return err
		}
	}

	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{W: p.cfg.Width, H: p.cfg.Height})
	if err != nil {
		_ = bus.Close()
		return errors.Join(fmt.Errorf("failed to start ssd1306: %w", err), p.releaseReset())
	}

	p.bus = bus
	p.dev = dev
	return nil
}

// pulseReset drives the reset line low for ResetPulse and leaves it high
func (p *Panel) pulseReset() error {
	line, err := gpiocdev.RequestLine(p.cfg.ResetChip, p.cfg.ResetLine, gpiocdev.AsOutput(1))
	if err != nil {
		return fmt.Errorf("failed to request reset line %s:%d: %w", p.cfg.ResetChip, p.cfg.ResetLine, err)
	}
	p.reset = line

	if err := line.SetValue(0); err != nil {
		return errors.Join(fmt.Errorf("failed to assert reset: %w", err), p.releaseReset())
	}
	time.Sleep(p.cfg.ResetPulse)
	if err := line.SetValue(1); err != nil {
		return errors.Join(fmt.Errorf("failed to release reset: %w", err), p.releaseReset())
	}
	time.Sleep(p.cfg.ResetPulse)
	return nil
}

func (p *Panel) releaseReset() error {
	if p.reset == nil {
		return nil
	}
	err := p.reset.Close()
	p.reset = nil
	return err
}

// DrawBitmap writes a full frame. The controller is addressed in full-frame
// mode only, so any other rectangle is rejected.
func (p *Panel) DrawBitmap(x0, y0, x1, y1 int, data []byte) error {
	if x0 != 0 || y0 != 0 || x1 != p.cfg.Width || y1 != p.cfg.Height {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", oled.ErrPartialDraw, x0, y0, x1, y1)
	}
	if len(data) != p.cfg.Width*p.cfg.Height/8 {
		return fmt.Errorf("%w: got %d bytes", oled.ErrFrameSize, len(data))
	}
	if p.dev == nil {
		return oled.ErrPanelClosed
	}

	if _, err := p.dev.Write(data); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Close switches the module off and releases the bus and reset line
func (p *Panel) Close() error {
	var err error
	if p.dev != nil {
		err = p.dev.Halt()
		p.dev = nil
	}
	if p.bus != nil {
		err = errors.Join(err, p.bus.Close())
		p.bus = nil
	}
	return errors.Join(err, p.releaseReset())
}

// Type returns the panel type
func (*Panel) Type() oled.PanelType {
	return oled.PanelSSD1306
}

var _ oled.Panel = (*Panel)(nil)
