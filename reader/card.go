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

// Package reader turns a polled NFC scanner into "card state changed" events.
package reader

import (
	"encoding/hex"
	"strings"
)

// State is the state of a PICC as seen by the reader. Monitor moves only
// between StateIdle and StateActive.
type State int

const (
	StateIdle State = iota
	StateReady
	StateActive
	StateHalt
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateActive:
		return "active"
	case StateHalt:
		return "halt"
	default:
		return "unknown"
	}
}

// Type is the PICC type derived from the SAK byte.
type Type int

const (
	TypeUnknown Type = iota
	TypeUIDNotComplete
	TypeISO14443Part4
	TypeISO18092
	TypeMifareMini
	TypeMifare1K
	TypeMifare4K
	TypeMifareUltralight
	TypeMifarePlus
	TypeTNP3XXX
)

// String returns the name shown on the status screen.
func (t Type) String() string {
	switch t {
	case TypeUIDNotComplete:
		return "UID not complete"
	case TypeISO14443Part4:
		return "ISO/IEC 14443-4"
	case TypeISO18092:
		return "ISO/IEC 18092 (NFC)"
	case TypeMifareMini:
		return "MIFARE Mini"
	case TypeMifare1K:
		return "MIFARE 1KB"
	case TypeMifare4K:
		return "MIFARE 4KB"
	case TypeMifareUltralight:
		return "MIFARE Ultralight"
	case TypeMifarePlus:
		return "MIFARE Plus"
	case TypeTNP3XXX:
		return "MIFARE TNP3XXX"
	default:
		return "Unknown"
	}
}

// IsClassicCompatible reports whether the card speaks the MIFARE Classic
// command set.
func (t Type) IsClassicCompatible() bool {
	return t == TypeMifareMini || t == TypeMifare1K || t == TypeMifare4K
}

// TypeFromSAK maps a Select Acknowledge byte to a PICC type. Bit 7 is
// reserved and ignored.
func TypeFromSAK(sak byte) Type {
	switch sak & 0x7F {
	case 0x04:
		return TypeUIDNotComplete
	case 0x09:
		return TypeMifareMini
	case 0x08:
		return TypeMifare1K
	case 0x18:
		return TypeMifare4K
	case 0x00:
		return TypeMifareUltralight
	case 0x10, 0x11:
		return TypeMifarePlus
	case 0x01:
		return TypeTNP3XXX
	case 0x20:
		return TypeISO14443Part4
	case 0x40:
		return TypeISO18092
	default:
		return TypeUnknown
	}
}

// Card is a PICC found by a Scanner.
type Card struct {
	UID  []byte
	SAK  byte
	Type Type
}

// UIDString returns the UID as upper-case hex without separators.
func (c *Card) UIDString() string {
	return strings.ToUpper(hex.EncodeToString(c.UID))
}

// UIDByte returns byte i of the UID, or 0 when the UID is shorter.
func (c *Card) UIDByte(i int) byte {
	if i < 0 || i >= len(c.UID) {
		return 0
	}
	return c.UID[i]
}

// Event reports a card state change. Card is the card the event refers to;
// on removal it is the card that left the field.
type Event struct {
	Card     *Card
	Previous State
	State    State
}
