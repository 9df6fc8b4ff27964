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
	"context"
	"errors"
)

// ErrNoCard indicates the field was empty during a scan. It is not a failure.
var ErrNoCard = errors.New("no card in field")

// Scanner detects a single card in the reader's field.
type Scanner interface {
	// Scan blocks until a card is selected, the scanner's own timeout
	// expires or ctx is done. An empty field is reported as ErrNoCard.
	Scan(ctx context.Context) (*Card, error)

	// Close releases the reader hardware.
	Close() error
}
