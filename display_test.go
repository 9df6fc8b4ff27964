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
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/ZaparooProject/go-oled/font"
	"github.com/ZaparooProject/go-oled/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createInitializedDisplay(t *testing.T, opts ...Option) (*Display, *MockPanel) {
	t.Helper()
	panel := NewMockPanel()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	display, err := New(panel, opts...)
	require.NoError(t, err)
	require.NoError(t, display.Init())
	return display, panel
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	display, err := New(NewMockPanel())
	require.NoError(t, err)

	cfg := display.Config()
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
	assert.True(t, cfg.FlipX)
	assert.True(t, cfg.FlipY)
	assert.Equal(t, 255, cfg.FormatCap)
	assert.Equal(t, &font.Basic, cfg.Glyphs)
	assert.False(t, display.Initialized())
}

func TestNew_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantErr error
		name    string
		opts    []Option
	}{
		{name: "partial page height", opts: []Option{WithGeometry(128, 60)}, wantErr: ErrInvalidGeometry},
		{name: "zero width", opts: []Option{WithGeometry(0, 64)}, wantErr: ErrInvalidGeometry},
		{name: "nil glyphs", opts: []Option{WithGlyphs(nil)}, wantErr: ErrInvalidParameter},
		{name: "zero format cap", opts: []Option{WithFormatCap(0)}, wantErr: ErrInvalidParameter},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(NewMockPanel(), tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_NilPanel(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDisplay_NotInitialized(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	panel := NewMockPanel()
	display, err := New(panel, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, err)

	require.ErrorIs(t, display.ShowText("hello"), ErrNotInitialized)
	require.ErrorIs(t, display.ShowTextf("%d", 1), ErrNotInitialized)
	require.ErrorIs(t, display.Clear(), ErrNotInitialized)

	assert.Empty(t, panel.Draws(), "no draw may reach an uninitialized panel")
	assert.Contains(t, logs.String(), "panel not initialized")
}

func TestDisplay_InitFailure(t *testing.T) {
	t.Parallel()

	panel := NewMockPanel()
	panel.InitErr = errors.New("no ACK from 0x3C")
	display, err := New(panel, WithLogger(quietLogger()))
	require.NoError(t, err)

	err = display.Init()
	require.Error(t, err)
	assert.True(t, IsPanelError(err))
	assert.False(t, display.Initialized())
	require.ErrorIs(t, display.ShowText("x"), ErrNotInitialized)
}

func TestDisplay_InitIsIdempotent(t *testing.T) {
	t.Parallel()

	display, panel := createInitializedDisplay(t)
	require.NoError(t, display.Init())
	assert.Equal(t, 1, panel.InitCount())
}

func TestDisplay_ShowTextWritesFullFrame(t *testing.T) {
	t.Parallel()

	display, panel := createInitializedDisplay(t)
	require.NoError(t, display.ShowText("[*] nfc ready"))

	draws := panel.Draws()
	require.Len(t, draws, 1, "one blocking write per render")
	d := draws[0]
	assert.Equal(t, 0, d.X0)
	assert.Equal(t, 0, d.Y0)
	assert.Equal(t, 128, d.X1)
	assert.Equal(t, 64, d.Y1)
	assert.Len(t, d.Data, 1024)

	r, err := raster.New(raster.Geometry{Width: 128, Height: 64},
		raster.WithTransform(raster.Transform{FlipX: true, FlipY: true}))
	require.NoError(t, err)
	assert.Equal(t, r.Render("[*] nfc ready"), d.Data)
}

func TestDisplay_ShowEmptyTextIsBlank(t *testing.T) {
	t.Parallel()

	display, panel := createInitializedDisplay(t)
	require.NoError(t, display.ShowText("previous"))
	require.NoError(t, display.ShowText(""))

	assert.Equal(t, make([]byte, 1024), panel.LastFrame())
}

func TestDisplay_Clear(t *testing.T) {
	t.Parallel()

	display, panel := createInitializedDisplay(t, WithGeometry(128, 32))
	require.NoError(t, display.Clear())

	assert.Equal(t, make([]byte, 512), panel.LastFrame())
}

func TestDisplay_ShowTextfDefaultCap(t *testing.T) {
	t.Parallel()

	// One text line of 300 cells, so every kept byte is visible.
	geom := raster.Geometry{Width: 300 * 8, Height: 8}
	display, panel := createInitializedDisplay(t, WithGeometry(geom.Width, geom.Height), WithFlip(false, false))
	require.NoError(t, display.ShowTextf("%s", strings.Repeat("x", 300)))

	r, err := raster.New(geom)
	require.NoError(t, err)
	assert.Equal(t, r.Render(strings.Repeat("x", DefaultFormatCap)), panel.LastFrame())
	assert.NotEqual(t, r.Render(strings.Repeat("x", 256)), panel.LastFrame())
}

func TestDisplay_ShowTextfTruncates(t *testing.T) {
	t.Parallel()

	display, panel := createInitializedDisplay(t, WithFormatCap(4), WithFlip(false, false))
	require.NoError(t, display.ShowTextf("%s", "ABCDEFGH"))

	back, err := raster.Unpack(panel.LastFrame(), raster.Geometry{Width: 128, Height: 64}, raster.Transform{})
	require.NoError(t, err)

	r, err := raster.New(raster.Geometry{Width: 128, Height: 64})
	require.NoError(t, err)
	want := r.Canvas("ABCD")
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			require.Equal(t, want.At(x, y), back.At(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestDisplay_ShowTextfFormatsStatus(t *testing.T) {
	t.Parallel()

	display, panel := createInitializedDisplay(t)
	require.NoError(t, display.ShowTextf("UID: %02X %02X", 0x04, 0xA1))

	r, err := raster.New(raster.Geometry{Width: 128, Height: 64},
		raster.WithTransform(raster.Transform{FlipX: true, FlipY: true}))
	require.NoError(t, err)
	assert.Equal(t, r.Render("UID: 04 A1"), panel.LastFrame())
}

func TestDisplay_PanelWriteFailure(t *testing.T) {
	t.Parallel()

	display, panel := createInitializedDisplay(t)
	panel.SetDrawError(errors.New("bus error"))

	err := display.ShowText("x")
	require.Error(t, err)
	assert.True(t, IsPanelError(err))
	assert.Contains(t, err.Error(), "mock ShowText")
	assert.Empty(t, panel.Draws())
}

func TestDisplay_CustomGlyphs(t *testing.T) {
	t.Parallel()

	var table font.Table
	table['#'] = font.Glyph{0x01}

	display, panel := createInitializedDisplay(t, WithGlyphs(&table), WithFlip(false, false))
	require.NoError(t, display.ShowText("#"))

	frame := panel.LastFrame()
	assert.Equal(t, byte(0x01), frame[0])
	assert.Equal(t, len(frame)-1, bytes.Count(frame, []byte{0}))
}

func TestDisplay_Close(t *testing.T) {
	t.Parallel()

	display, panel := createInitializedDisplay(t)
	require.NoError(t, display.Close())
	assert.False(t, display.Initialized())
	require.ErrorIs(t, display.ShowText("x"), ErrNotInitialized)
	assert.Empty(t, panel.Draws())
}
