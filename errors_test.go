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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelError_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		pe   *PanelError
		want string
	}{
		{
			name: "with panel",
			pe:   NewPanelError("DrawBitmap", PanelSerial, ErrNoACK),
			want: "serial DrawBitmap: panel did not acknowledge",
		},
		{
			name: "without panel",
			pe:   NewPanelError("Init", "", errors.New("bus busy")),
			want: "Init: bus busy",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.pe.Error())
		})
	}
}

func TestPanelError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("i2c nack")
	pe := NewPanelError("DrawBitmap", PanelSSD1306, cause)

	require.ErrorIs(t, pe, cause)
	assert.Equal(t, cause, pe.Unwrap())
}

func TestIsPanelError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "sentinel", err: ErrPanelClosed, want: false},
		{name: "panel error", err: NewPanelError("Close", PanelMock, ErrPanelClosed), want: true},
		{
			name: "wrapped panel error",
			err:  fmt.Errorf("show status: %w", NewPanelError("DrawBitmap", PanelTerminal, ErrFrameSize)),
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsPanelError(tt.err))
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotInitialized, ErrInvalidGeometry, ErrInvalidParameter, ErrFrameSize,
		ErrPanelClosed, ErrPartialDraw, ErrNoACK, ErrNACK,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
