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
	"bytes"
	"time"
)

// CardState tracks the card currently in the field
type CardState struct {
	LastSeenTime time.Time
	Card         *Card
	State        State
}

// Present returns true while a card is active
func (cs CardState) Present() bool {
	return cs.State == StateActive
}

// SameCard reports whether card has the UID of the tracked card
func (cs CardState) SameCard(card *Card) bool {
	return cs.Card != nil && card != nil && bytes.Equal(cs.Card.UID, card.UID)
}

// TransitionToActive records card as present and refreshes the last seen time
func (cs *CardState) TransitionToActive(card *Card, now time.Time) {
	cs.State = StateActive
	cs.Card = card
	cs.LastSeenTime = now
}

// Touch refreshes the last seen time of the tracked card
func (cs *CardState) Touch(now time.Time) {
	cs.LastSeenTime = now
}

// Expired returns true when an active card has not been seen for longer than timeout
func (cs CardState) Expired(now time.Time, timeout time.Duration) bool {
	return cs.State == StateActive && now.Sub(cs.LastSeenTime) > timeout
}

// TransitionToIdle resets to idle state
func (cs *CardState) TransitionToIdle() {
	cs.State = StateIdle
	cs.Card = nil
	cs.LastSeenTime = time.Time{}
}
