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

	"github.com/ZaparooProject/go-oled/raster"
)

// Display errors
var (
	ErrNotInitialized   = errors.New("display not initialized")
	ErrInvalidGeometry  = raster.ErrInvalidGeometry
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrFrameSize        = errors.New("frame size does not match panel geometry")
	ErrPanelClosed      = errors.New("panel closed")
	ErrPartialDraw      = errors.New("panel only supports full-frame draws")
	ErrNoACK            = errors.New("panel did not acknowledge")
	ErrNACK             = errors.New("panel rejected frame")
)

// PanelError wraps a failure reported by a panel with the operation that
// triggered it.
type PanelError struct {
	Err   error
	Op    string
	Panel PanelType
}

// NewPanelError creates a PanelError.
func NewPanelError(op string, panel PanelType, err error) *PanelError {
	return &PanelError{Op: op, Panel: panel, Err: err}
}

func (e *PanelError) Error() string {
	if e.Panel == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Panel, e.Op, e.Err)
}

func (e *PanelError) Unwrap() error {
	return e.Err
}

// IsPanelError reports whether err came from a panel operation.
func IsPanelError(err error) bool {
	var pe *PanelError
	return errors.As(err, &pe)
}
