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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFileArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "default", args: []string{"-panel", "terminal"}, want: ".env"},
		{name: "separate value", args: []string{"-env", "board.env"}, want: "board.env"},
		{name: "equals form", args: []string{"--env=board.env"}, want: "board.env"},
		{name: "dangling flag", args: []string{"-env"}, want: ".env"},
		{name: "value not a flag", args: []string{"env", "x"}, want: ".env"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, envFileArg(tt.args, ".env"))
		})
	}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"-panel", "snapshot", "-reader", "none", "-height", "32"})
	require.NoError(t, err)
	assert.Equal(t, "snapshot", cfg.panel.Panel)
	assert.Equal(t, readerNone, cfg.reader)
	assert.Equal(t, 32, cfg.panel.Height)
	assert.Equal(t, "GPIO25", cfg.resetPin)
	assert.Positive(t, int64(cfg.pollInterval))
}

func TestNewScannerUnknown(t *testing.T) {
	t.Parallel()

	_, err := newScanner(&config{reader: "pn532"})
	require.ErrorIs(t, err, oled.ErrInvalidParameter)

	scanner, err := newScanner(&config{reader: readerNone})
	require.NoError(t, err)
	assert.Nil(t, scanner)
}

func TestRunShowsStartupScreens(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := parseFlags([]string{"-panel", "snapshot", "-device", dir, "-reader", "none"})
	require.NoError(t, err)

	logger, closeLog, err := newLogger(cfg)
	require.NoError(t, err)
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx, cfg, logger))

	for _, name := range []string{"frame-0000.bmp", "frame-0001.bmp"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(dir, "frame-0002.bmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunUnknownReader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := parseFlags([]string{"-panel", "snapshot", "-device", dir, "-reader", "pn532"})
	require.NoError(t, err)

	err = run(context.Background(), cfg, oled.DefaultLogger())
	require.ErrorIs(t, err, oled.ErrInvalidParameter)

	// starting, then failed
	_, err = os.Stat(filepath.Join(dir, "frame-0001.bmp"))
	require.NoError(t, err)
}
