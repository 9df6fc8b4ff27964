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

/*
Package oled renders status text on small monochrome OLED panels such as the
SSD1306 found on many NFC reader boards.

Text is drawn with a fixed 8x8 font, wrapped at the panel width and packed
into the controller's page layout (8 vertical pixels per byte) before being
written to the panel in a single call. The panel itself is abstracted behind
the Panel interface so the same Display works with real hardware, a serial
panel bridge, a terminal or image snapshots.

Basic Usage:

	import (
	    "github.com/ZaparooProject/go-oled"
	    "github.com/ZaparooProject/go-oled/panel/ssd1306"
	)

	panel := ssd1306.New(ssd1306.DefaultConfig())

	display, err := oled.New(panel)
	if err != nil {
	    log.Fatal(err)
	}
	defer display.Close()

	if err := display.Init(); err != nil {
	    log.Fatal(err)
	}

	_ = display.ShowText("[+] starting nfc...")
	_ = display.ShowTextf("UID: %02X %02X %02X %02X", uid[0], uid[1], uid[2], uid[3])

Layout:

A 128x64 panel holds 8 lines of 16 characters. Long lines wrap; lines that
would start below the panel are dropped. A newline that directly follows a
line filling the full width is absorbed by the wrap.

Panel Orientation:

The default configuration flips both axes, matching modules mounted upside
down. Use WithFlip to change it:

	display, err := oled.New(panel, oled.WithFlip(false, false))

Error Handling:

Drawing before Init, or after Close, is logged and returns ErrNotInitialized
without touching the panel. Panel failures are returned as *PanelError:

	if errors.Is(err, oled.ErrNotInitialized) {
	    // Init has not succeeded yet
	}

Thread Safety:

Display is not thread-safe. If you need concurrent access, implement
appropriate synchronization in your application.
*/
package oled
