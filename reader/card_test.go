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

package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeFromSAK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sak     byte
		want    Type
		classic bool
	}{
		{name: "mifare 1k", sak: 0x08, want: TypeMifare1K, classic: true},
		{name: "mifare 4k", sak: 0x18, want: TypeMifare4K, classic: true},
		{name: "mifare mini", sak: 0x09, want: TypeMifareMini, classic: true},
		{name: "ultralight", sak: 0x00, want: TypeMifareUltralight},
		{name: "plus 2k", sak: 0x10, want: TypeMifarePlus},
		{name: "plus 4k", sak: 0x11, want: TypeMifarePlus},
		{name: "tnp3xxx", sak: 0x01, want: TypeTNP3XXX},
		{name: "iso14443-4", sak: 0x20, want: TypeISO14443Part4},
		{name: "iso18092", sak: 0x40, want: TypeISO18092},
		{name: "cascade bit", sak: 0x04, want: TypeUIDNotComplete},
		{name: "reserved bit ignored", sak: 0x88, want: TypeMifare1K, classic: true},
		{name: "unknown", sak: 0x3A, want: TypeUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TypeFromSAK(tt.sak)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.classic, got.IsClassicCompatible())
		})
	}
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MIFARE 1KB", TypeMifare1K.String())
	assert.Equal(t, "ISO/IEC 14443-4", TypeISO14443Part4.String())
	assert.Equal(t, "Unknown", TypeUnknown.String())
	assert.Equal(t, "Unknown", Type(99).String())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "halt", StateHalt.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, 2, int(StateActive))
}

func TestCardUID(t *testing.T) {
	t.Parallel()

	card := &Card{UID: []byte{0x04, 0xa1, 0x2b, 0xff}}
	assert.Equal(t, "04A12BFF", card.UIDString())
	assert.Equal(t, byte(0xff), card.UIDByte(3))
	assert.Equal(t, byte(0), card.UIDByte(4))
	assert.Equal(t, byte(0), card.UIDByte(-1))
}
