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

// Package status shows NFC card state changes on a display.
package status

import (
	"log/slog"

	"github.com/ZaparooProject/go-oled"
	"github.com/ZaparooProject/go-oled/reader"
)

// Screen formats used for card events.
const (
	FormatState       = "[PICC STATE]\n???\n\n%d"
	FormatUnsupported = "UNSUPPORTED\nTYPE\n\n%s"
	FormatConnected   = "[%s]\n\nCONNECTED %d\nUID: %02X %02X %02X %02X\nSAK: %02X"
)

// Screen returns the format and arguments of the screen for ev. ok is false
// when the event does not change what is shown, which is the case for a card
// leaving the field. reader.Monitor only reports idle and active; the
// FormatState screen covers ready and halt events from sources that track
// the full PICC state machine.
func Screen(ev reader.Event) (format string, args []any, ok bool) {
	if ev.State != reader.StateActive {
		if ev.State == reader.StateIdle {
			return "", nil, false
		}
		return FormatState, []any{int(ev.State)}, true
	}

	card := ev.Card
	if card == nil {
		return FormatState, []any{int(ev.State)}, true
	}

	if !card.Type.IsClassicCompatible() {
		return FormatUnsupported, []any{card.Type.String()}, true
	}

	return FormatConnected, []any{
		card.Type.String(),
		int(ev.State),
		card.UIDByte(0),
		card.UIDByte(1),
		card.UIDByte(2),
		card.UIDByte(3),
		card.SAK,
	}, true
}

// Presenter shows a screen for every card event it handles
type Presenter struct {
	display *oled.Display
	logger  *slog.Logger
}

// NewPresenter creates a presenter drawing on display
func NewPresenter(display *oled.Display, logger *slog.Logger) *Presenter {
	if logger == nil {
		logger = oled.DefaultLogger()
	}
	return &Presenter{display: display, logger: logger}
}

// Handle logs ev and shows its screen. Display failures are logged by the
// display itself and otherwise ignored.
func (p *Presenter) Handle(ev reader.Event) {
	switch {
	case ev.State == reader.StateIdle:
		p.logger.Info("card removed", "uid", uidOf(ev.Card))
	case ev.State != reader.StateActive || ev.Card == nil:
		p.logger.Warn("card is not active", "state", ev.State.String())
	case !ev.Card.Type.IsClassicCompatible():
		p.logger.Warn("card is not supported", "type", ev.Card.Type.String(), "uid", ev.Card.UIDString())
	default:
		p.logger.Info("card connected", "type", ev.Card.Type.String(),
			"uid", ev.Card.UIDString(), "sak", ev.Card.SAK)
	}

	format, args, ok := Screen(ev)
	if !ok {
		return
	}
	_ = p.display.ShowTextf(format, args...)
}

func uidOf(card *reader.Card) string {
	if card == nil {
		return ""
	}
	return card.UIDString()
}
