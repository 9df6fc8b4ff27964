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

// Package i2c detects SSD1306 panels on I2C buses
package i2c

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/ZaparooProject/go-oled/detection"
)

const (
	// DefaultSSD1306Address is the address with the SA0 pin low
	DefaultSSD1306Address = 0x3C
	// AltSSD1306Address is the address with the SA0 pin high
	AltSSD1306Address = 0x3D
)

// Addresses lists the addresses an SSD1306 can answer on
var Addresses = []uint8{DefaultSSD1306Address, AltSSD1306Address}

type busInfo struct {
	Path   string // Device path, e.g. "/dev/i2c-1"
	Name   string // periph.io bus name, e.g. "1"
	Number int
}

type detector struct{}

// New returns the I2C panel detector
func New() detection.Detector {
	return &detector{}
}

func init() {
	detection.RegisterDetector(New())
}

// Panel returns the panel type found by this detector
func (*detector) Panel() string {
	return string(oled.PanelSSD1306)
}

// Detect lists SSD1306 candidates on every accessible bus
func (*detector) Detect(ctx context.Context, opts *detection.Options) ([]detection.DeviceInfo, error) {
	if runtime.GOOS != "linux" {
		return nil, detection.ErrUnsupportedPlatform
	}
	return detectLinux(ctx, opts)
}

// parseBus extracts the bus number from a /dev/i2c-N path
func parseBus(path string) (busInfo, bool) {
	var n int
	if _, err := fmt.Sscanf(filepath.Base(path), "i2c-%d", &n); err != nil {
		return busInfo{}, false
	}
	return busInfo{Path: path, Name: fmt.Sprint(n), Number: n}, true
}

// devicePath is the path reported for addr on bus
func devicePath(bus busInfo, addr uint8) string {
	return fmt.Sprintf("%s:0x%02X", bus.Path, addr)
}

func deviceInfo(bus busInfo, addr uint8, confidence detection.Confidence) detection.DeviceInfo {
	return detection.DeviceInfo{
		Panel:      string(oled.PanelSSD1306),
		Path:       devicePath(bus, addr),
		Name:       fmt.Sprintf("SSD1306 on %s address 0x%02X", bus.Path, addr),
		Confidence: confidence,
		Metadata: map[string]string{
			"bus":      bus.Path,
			"bus_name": bus.Name,
			"address":  fmt.Sprintf("0x%02X", addr),
		},
	}
}
