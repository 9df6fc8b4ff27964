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
	"sync"
)

// Draw is one DrawBitmap call recorded by MockPanel.
type Draw struct {
	Data   []byte
	X0, Y0 int
	X1, Y1 int
}

// MockPanel is a Panel that records every draw. It is safe for concurrent use
// so tests can inspect it while another goroutine renders.
type MockPanel struct {
	InitErr  error
	DrawErr  error
	CloseErr error
	draws    []Draw
	inits    int
	mu       sync.Mutex
	closed   bool
}

// NewMockPanel creates a new mock panel
func NewMockPanel() *MockPanel {
	return &MockPanel{}
}

// Init records the call and returns InitErr
func (m *MockPanel) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inits++
	m.closed = false
	return m.InitErr
}

// DrawBitmap copies data and records the call unless DrawErr is set
func (m *MockPanel) DrawBitmap(x0, y0, x1, y1 int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrPanelClosed
	}
	if m.DrawErr != nil {
		return m.DrawErr
	}
	m.draws = append(m.draws, Draw{
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		Data: append([]byte(nil), data...),
	})
	return nil
}

// Close marks the panel closed
func (m *MockPanel) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return m.CloseErr
}

// Type returns PanelMock
func (*MockPanel) Type() PanelType {
	return PanelMock
}

// SetDrawError configures the error returned by subsequent draws
func (m *MockPanel) SetDrawError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DrawErr = err
}

// Draws returns a copy of the recorded draws
func (m *MockPanel) Draws() []Draw {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Draw(nil), m.draws...)
}

// LastFrame returns the data of the most recent draw, or nil
func (m *MockPanel) LastFrame() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.draws) == 0 {
		return nil
	}
	return m.draws[len(m.draws)-1].Data
}

// InitCount returns how many times Init was called
func (m *MockPanel) InitCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inits
}
