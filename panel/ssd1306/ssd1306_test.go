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

package ssd1306

import (
	"errors"
	"testing"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDev struct {
	writeErr error
	frames   [][]byte
	halted   bool
}

func (f *fakeDev) Write(pixels []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.frames = append(f.frames, append([]byte(nil), pixels...))
	return len(pixels), nil
}

func (f *fakeDev) Halt() error {
	f.halted = true
	return nil
}

func newTestPanel(t *testing.T, dev *fakeDev) *Panel {
	t.Helper()
	p, err := New(DefaultConfig())
	require.NoError(t, err)
	p.dev = dev
	return p
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantErr error
		modify  func(*Config)
		name    string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "128x32", modify: func(c *Config) { c.Height = 32 }},
		{name: "zero width", modify: func(c *Config) { c.Width = 0 }, wantErr: oled.ErrInvalidGeometry},
		{name: "height not page aligned", modify: func(c *Config) { c.Height = 60 }, wantErr: oled.ErrInvalidGeometry},
		{
			name:    "negative reset line",
			modify:  func(c *Config) { c.ResetChip = "gpiochip0"; c.ResetLine = -1 },
			wantErr: oled.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(&cfg)
			p, err := New(cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, oled.PanelSSD1306, p.Type())
		})
	}
}

func TestNewDefaultsResetPulse(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ResetPulse = 0
	p, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultResetPulse, p.cfg.ResetPulse)
}

func TestDrawBitmapFullFrame(t *testing.T) {
	t.Parallel()

	dev := &fakeDev{}
	p := newTestPanel(t, dev)

	frame := make([]byte, 1024)
	frame[7] = 0xAA
	require.NoError(t, p.DrawBitmap(0, 0, 128, 64, frame))
	require.Len(t, dev.frames, 1)
	assert.Equal(t, frame, dev.frames[0])
}

func TestDrawBitmapRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantErr error
		name    string
		rect    [4]int
		size    int
	}{
		{name: "partial rectangle", rect: [4]int{0, 0, 64, 64}, size: 512, wantErr: oled.ErrPartialDraw},
		{name: "offset origin", rect: [4]int{8, 0, 128, 64}, size: 1024, wantErr: oled.ErrPartialDraw},
		{name: "short frame", rect: [4]int{0, 0, 128, 64}, size: 1000, wantErr: oled.ErrFrameSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dev := &fakeDev{}
			p := newTestPanel(t, dev)
			err := p.DrawBitmap(tt.rect[0], tt.rect[1], tt.rect[2], tt.rect[3], make([]byte, tt.size))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, dev.frames)
		})
	}
}

func TestDrawBitmapWriteError(t *testing.T) {
	t.Parallel()

	busErr := errors.New("i2c nack")
	p := newTestPanel(t, &fakeDev{writeErr: busErr})
	err := p.DrawBitmap(0, 0, 128, 64, make([]byte, 1024))
	require.ErrorIs(t, err, busErr)
}

func TestDrawBeforeInit(t *testing.T) {
	t.Parallel()

	p, err := New(DefaultConfig())
	require.NoError(t, err)
	err = p.DrawBitmap(0, 0, 128, 64, make([]byte, 1024))
	require.ErrorIs(t, err, oled.ErrPanelClosed)
}

func TestCloseHaltsDevice(t *testing.T) {
	t.Parallel()

	dev := &fakeDev{}
	p := newTestPanel(t, dev)
	require.NoError(t, p.Close())
	assert.True(t, dev.halted)

	err := p.DrawBitmap(0, 0, 128, 64, make([]byte, 1024))
	require.ErrorIs(t, err, oled.ErrPanelClosed)
	require.NoError(t, p.Close())
}
