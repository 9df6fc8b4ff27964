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
	"io"
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// SetDebugEnabled turns debug output of the default logger on or off.
// Loggers passed through WithLogger keep their own level.
func SetDebugEnabled(enabled bool) {
	if enabled {
		logLevel.Set(slog.LevelDebug)
		return
	}
	logLevel.Set(slog.LevelInfo)
}

// DefaultLogger returns the logger used when none is configured. It writes
// text records to stderr at the level chosen by SetDebugEnabled.
func DefaultLogger() *slog.Logger {
	return NewLogger(os.Stderr)
}

// NewLogger returns a text logger writing to w at the level chosen by
// SetDebugEnabled.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}
