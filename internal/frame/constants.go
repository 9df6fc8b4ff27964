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

// Package frame builds the framed messages exchanged with a serial panel bridge.
//
// Frames follow the PN532 information frame layout. Bitmaps are larger than
// 255 bytes, so draws use the extended form:
//
//	00 00 FF FF FF LENM LENL LCS TFI PD0..PDn DCS 00
//
// where LEN counts TFI and payload, LENM+LENL+LCS and TFI+PD+DCS are both
// zero modulo 256. The bridge answers every valid frame with an ACK frame.
package frame

// Frame direction constants - these indicate the direction of data flow
const (
	HostToBridge = 0xD4 // Commands from host to bridge
	BridgeToHost = 0xD5 // Responses from bridge to host
)

// Frame markers and control bytes
const (
	Preamble   = 0x00 // Frame preamble byte
	StartCode1 = 0x00 // Start code byte 1
	StartCode2 = 0xFF // Start code byte 2
	Postamble  = 0x00 // Frame postamble byte
	ExtendedID = 0xFF // Fills the normal LEN and LCS bytes of an extended frame
)

// Frame size limits
const (
	MaxExtendedDataLength = 0xFFFF // Maximum TFI + payload length
	ExtendedOverhead      = 10     // Preamble..LCS, DCS and postamble
)

// Bridge commands
const (
	CmdDrawBitmap = 0x40 // x0, y0, x1, y1 as big-endian uint16 followed by the bitmap
	CmdInit       = 0x41 // Reset the panel and switch it on
	CmdPowerOff   = 0x42 // Switch the panel off
)

// ACK and NACK frames - these are used for flow control
var (
	AckFrame  = []byte{0x00, 0x00, 0xFF, 0x00, 0xFF, 0x00}
	NackFrame = []byte{0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00}
)
