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

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CLI_TEST_STRING", "serial")
	t.Setenv("CLI_TEST_INT", "32")
	t.Setenv("CLI_TEST_BAD_INT", "thirty")
	t.Setenv("CLI_TEST_BOOL", "false")
	t.Setenv("CLI_TEST_EMPTY", "")

	assert.Equal(t, "serial", EnvString("CLI_TEST_STRING", "ssd1306"))
	assert.Equal(t, "ssd1306", EnvString("CLI_TEST_EMPTY", "ssd1306"))
	assert.Equal(t, "ssd1306", EnvString("CLI_TEST_UNSET", "ssd1306"))

	assert.Equal(t, 32, EnvInt("CLI_TEST_INT", 64))
	assert.Equal(t, 64, EnvInt("CLI_TEST_BAD_INT", 64))
	assert.Equal(t, 64, EnvInt("CLI_TEST_UNSET", 64))

	assert.False(t, EnvBool("CLI_TEST_BOOL", true))
	assert.True(t, EnvBool("CLI_TEST_STRING", true))
	assert.True(t, EnvBool("CLI_TEST_UNSET", true))
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CLI_TEST_LOADED=terminal\nCLI_TEST_KEPT=file\n"), 0o600))
	t.Setenv("CLI_TEST_KEPT", "process")
	t.Cleanup(func() { _ = os.Unsetenv("CLI_TEST_LOADED") })

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "terminal", os.Getenv("CLI_TEST_LOADED"))
	assert.Equal(t, "process", os.Getenv("CLI_TEST_KEPT"))

	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, LoadEnv(""))
}
