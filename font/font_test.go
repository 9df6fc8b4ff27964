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

package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphSet(t *testing.T) {
	t.Parallel()

	g := Basic.Lookup('A')

	// Top row of 'A' is 0x0C: columns 2 and 3.
	assert.False(t, g.Set(0, 0))
	assert.False(t, g.Set(1, 0))
	assert.True(t, g.Set(2, 0))
	assert.True(t, g.Set(3, 0))
	assert.False(t, g.Set(4, 0))

	// Bottom row is empty.
	for x := 0; x < Width; x++ {
		assert.False(t, g.Set(x, 7), "column %d", x)
	}

	assert.False(t, g.Set(-1, 0))
	assert.False(t, g.Set(0, Height))
}

func TestBasicLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		b     byte
		blank bool
	}{
		{name: "NUL", b: 0x00, blank: true},
		{name: "newline", b: '\n', blank: true},
		{name: "space", b: ' ', blank: true},
		{name: "exclamation", b: '!', blank: false},
		{name: "tilde", b: '~', blank: false},
		{name: "DEL", b: 0x7F, blank: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.blank, Basic.Lookup(tt.b).Blank())
		})
	}
}

func TestBasicHighBytesUsePlaceholder(t *testing.T) {
	t.Parallel()

	for b := 0x80; b <= 0xFF; b++ {
		assert.Equal(t, Placeholder, Basic.Lookup(byte(b)), "byte 0x%02X", b)
	}
	assert.False(t, Placeholder.Blank())
}

func TestBasicDigitsAndLettersDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[Glyph]byte)
	for b := byte('0'); b <= 'z'; b++ {
		g := Basic.Lookup(b)
		if prev, ok := seen[g]; ok {
			t.Errorf("glyph for %q duplicates %q", b, prev)
		}
		seen[g] = b
	}
}
