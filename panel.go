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

// Panel is the output device a Display draws on. Implementations exist for
// SSD1306 modules on I2C, serial panel bridges, terminals and image files.
type Panel interface {
	// Init brings the panel up: bus setup, controller reset and display on.
	Init() error

	// DrawBitmap writes a packed page-layout bitmap to the rectangle
	// [x0, x1) x [y0, y1). The call blocks until the panel has accepted it.
	DrawBitmap(x0, y0, x1, y1 int, data []byte) error

	// Close releases the panel and its bus.
	Close() error

	// Type returns the panel type
	Type() PanelType
}

// PanelType represents the type of panel
type PanelType string

const (
	// PanelSSD1306 is an SSD1306-class OLED module on an I2C bus.
	PanelSSD1306 PanelType = "ssd1306"
	// PanelSerial is a remote panel bridge reached over UART.
	PanelSerial PanelType = "serial"
	// PanelTerminal draws frames in a terminal.
	PanelTerminal PanelType = "terminal"
	// PanelSnapshot writes frames to image files.
	PanelSnapshot PanelType = "snapshot"
	// PanelMock represents a mock panel for testing
	PanelMock PanelType = "mock"
)
