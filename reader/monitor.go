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
	"fmt"
	"time"
)

// Config configures card monitoring
type Config struct {
	// PollInterval is the pause between two scans
	PollInterval time.Duration
	// CardRemovalTimeout is how long an active card may go unseen before it
	// is reported as removed
	CardRemovalTimeout time.Duration
}

// DefaultConfig returns the default monitoring configuration
func DefaultConfig() *Config {
	return &Config{
		PollInterval:       100 * time.Millisecond,
		CardRemovalTimeout: 600 * time.Millisecond,
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative: %v", c.PollInterval)
	}
	if c.CardRemovalTimeout <= 0 {
		return fmt.Errorf("card removal timeout must be positive: %v", c.CardRemovalTimeout)
	}
	return nil
}

// Monitor polls a Scanner and reports card state changes.
//
// Callbacks run on the goroutine that called Start, one at a time, so a
// handler may drive a display without extra locking.
type Monitor struct {
	scanner        Scanner
	config         *Config
	now            func() time.Time
	OnStateChanged func(Event)
	OnError        func(error)
	state          CardState
}

// NewMonitor creates a new card monitor
func NewMonitor(scanner Scanner, config *Config) (*Monitor, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Monitor{
		scanner: scanner,
		config:  config,
		now:     time.Now,
	}, nil
}

// Start polls until ctx is done and returns ctx.Err()
func (m *Monitor) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		m.poll(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.config.PollInterval):
		}
	}
}

// GetState returns the current card state
func (m *Monitor) GetState() CardState {
	return m.state
}

// Close stops tracking the current card and closes the scanner
func (m *Monitor) Close() error {
	m.state.TransitionToIdle()
	if err := m.scanner.Close(); err != nil {
		return fmt.Errorf("failed to close scanner: %w", err)
	}
	return nil
}

// poll performs one scan and applies its result
func (m *Monitor) poll(ctx context.Context) {
	card, err := m.scanner.Scan(ctx)
	switch {
	case err == nil:
		m.handleCard(card)
	case errors.Is(err, ErrNoCard):
		m.checkRemoval()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Shutdown in progress
	default:
		m.handlePollingError(err)
	}
}

// handleCard applies a detection, reporting new and swapped cards
func (m *Monitor) handleCard(card *Card) {
	now := m.now()

	if m.state.Present() && m.state.SameCard(card) {
		m.state.Touch(now)
		return
	}

	previous := m.state.State
	m.state.TransitionToActive(card, now)
	m.emit(Event{Card: card, Previous: previous, State: StateActive})
}

// checkRemoval reports the active card as removed once it has timed out
func (m *Monitor) checkRemoval() {
	if m.state.Expired(m.now(), m.config.CardRemovalTimeout) {
		m.handleCardRemoval()
	}
}

// handlePollingError treats a failing scanner like an empty field: the
// current card, if any, is reported as removed straight away
func (m *Monitor) handlePollingError(err error) {
	if m.OnError != nil {
		m.OnError(err)
	}
	m.handleCardRemoval()
}

func (m *Monitor) handleCardRemoval() {
	if !m.state.Present() {
		return
	}
	card := m.state.Card
	m.state.TransitionToIdle()
	m.emit(Event{Card: card, Previous: StateActive, State: StateIdle})
}

func (m *Monitor) emit(ev Event) {
	if m.OnStateChanged != nil {
		m.OnStateChanged(ev)
	}
}
