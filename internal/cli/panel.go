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

package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/ZaparooProject/go-oled/detection"
	// Import all detectors to register them
	_ "github.com/ZaparooProject/go-oled/detection/i2c"
	_ "github.com/ZaparooProject/go-oled/detection/serial"
	"github.com/ZaparooProject/go-oled/panel/serial"
	"github.com/ZaparooProject/go-oled/panel/snapshot"
	"github.com/ZaparooProject/go-oled/panel/ssd1306"
	"github.com/ZaparooProject/go-oled/panel/term"
	"github.com/ZaparooProject/go-oled/raster"
)

// PanelAuto selects the first panel found by detection
const PanelAuto = "auto"

// PanelFlags are the panel settings shared by the commands
type PanelFlags struct {
	Panel     string
	Device    string
	ResetChip string
	Width     int
	Height    int
	ResetLine int
	Scale     int
	FlipX     bool
	FlipY     bool
}

// Register adds the panel flags to fs. Defaults come from the OLED_*
// environment variables.
func (p *PanelFlags) Register(fs *flag.FlagSet, defaultPanel string) {
	def := oled.DefaultConfig()
	fs.StringVar(&p.Panel, "panel", EnvString("OLED_PANEL", defaultPanel),
		"Panel type: auto, ssd1306, serial, terminal or snapshot")
	fs.StringVar(&p.Device, "device", EnvString("OLED_DEVICE", ""),
		"I2C bus name, serial port or snapshot directory, depending on -panel")
	fs.IntVar(&p.Width, "width", EnvInt("OLED_WIDTH", def.Width), "Panel width in pixels")
	fs.IntVar(&p.Height, "height", EnvInt("OLED_HEIGHT", def.Height), "Panel height in pixels (multiple of 8)")
	fs.BoolVar(&p.FlipX, "flip-x", EnvBool("OLED_FLIP_X", def.FlipX), "Mirror the panel horizontally")
	fs.BoolVar(&p.FlipY, "flip-y", EnvBool("OLED_FLIP_Y", def.FlipY), "Mirror the panel vertically")
	fs.StringVar(&p.ResetChip, "reset-chip", EnvString("OLED_RESET_CHIP", ""),
		"GPIO chip of the ssd1306 reset line, e.g. gpiochip0 (empty: no reset)")
	fs.IntVar(&p.ResetLine, "reset-line", EnvInt("OLED_RESET_LINE", 0), "GPIO line offset of the ssd1306 reset line")
	fs.IntVar(&p.Scale, "scale", EnvInt("OLED_SCALE", snapshot.DefaultScale), "Snapshot upscale factor")
}

// Geometry returns the configured panel size
func (p *PanelFlags) Geometry() raster.Geometry {
	return raster.Geometry{Width: p.Width, Height: p.Height}
}

// Transform returns the configured flips
func (p *PanelFlags) Transform() raster.Transform {
	return raster.Transform{FlipX: p.FlipX, FlipY: p.FlipY}
}

// DisplayOptions returns the display options matching the flags
func (p *PanelFlags) DisplayOptions() []oled.Option {
	return []oled.Option{
		oled.WithGeometry(p.Width, p.Height),
		oled.WithFlip(p.FlipX, p.FlipY),
	}
}

// NewPanel creates the panel selected by the flags
func (p *PanelFlags) NewPanel(ctx context.Context) (oled.Panel, error) {
	switch strings.ToLower(p.Panel) {
	case PanelAuto:
		return p.detectPanel(ctx)
	case string(oled.PanelSSD1306), "i2c":
		return p.newSSD1306(p.Device)
	case string(oled.PanelSerial), "uart":
		if p.Device == "" {
			return nil, fmt.Errorf("%w: -device must name a serial port", oled.ErrInvalidParameter)
		}
		return serial.New(serial.DefaultConfig(p.Device))
	case string(oled.PanelTerminal), "term":
		return term.New(p.Geometry(), p.Transform())
	case string(oled.PanelSnapshot):
		dir := p.Device
		if dir == "" {
			dir = "frames"
		}
		return snapshot.New(snapshot.Config{
			Dir:       dir,
			Geometry:  p.Geometry(),
			Transform: p.Transform(),
			Scale:     p.Scale,
		})
	default:
		return nil, fmt.Errorf("%w: unknown panel type %q", oled.ErrInvalidParameter, p.Panel)
	}
}

func (p *PanelFlags) newSSD1306(bus string) (oled.Panel, error) {
	cfg := ssd1306.DefaultConfig()
	cfg.Bus = bus
	cfg.Width = p.Width
	cfg.Height = p.Height
	cfg.ResetChip = p.ResetChip
	cfg.ResetLine = p.ResetLine
	return ssd1306.New(cfg)
}

func (p *PanelFlags) detectPanel(ctx context.Context) (oled.Panel, error) {
	opts := detection.DefaultOptions()
	devices, err := detection.DetectAll(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("panel detection failed: %w", err)
	}
	return p.panelForDevice(devices[0])
}

// panelForDevice creates the panel for a detected device
func (p *PanelFlags) panelForDevice(dev detection.DeviceInfo) (oled.Panel, error) {
	switch oled.PanelType(dev.Panel) {
	case oled.PanelSSD1306:
		return p.newSSD1306(dev.Metadata["bus_name"])
	case oled.PanelSerial:
		return serial.New(serial.DefaultConfig(dev.Path))
	default:
		return nil, fmt.Errorf("%w: no panel for detected device %s", oled.ErrInvalidParameter, dev.Path)
	}
}
