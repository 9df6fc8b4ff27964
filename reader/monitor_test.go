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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanResult struct {
	card *Card
	err  error
}

// mockScanner replays scripted results and reports an empty field afterwards.
type mockScanner struct {
	results []scanResult
	mu      sync.Mutex
	scans   int
	closed  bool
}

func (s *mockScanner) Scan(ctx context.Context) (*Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.scans++
	if len(s.results) == 0 {
		return nil, ErrNoCard
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r.card, r.err
}

func (s *mockScanner) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func createTestMonitor(t *testing.T, results ...scanResult) (*Monitor, *fakeClock, *[]Event) {
	t.Helper()
	monitor, err := NewMonitor(&mockScanner{results: results}, &Config{
		PollInterval:       time.Millisecond,
		CardRemovalTimeout: 500 * time.Millisecond,
	})
	require.NoError(t, err)

	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	monitor.now = clock.Now

	events := &[]Event{}
	monitor.OnStateChanged = func(ev Event) {
		*events = append(*events, ev)
	}
	return monitor, clock, events
}

var (
	cardA = &Card{UID: []byte{0x01, 0x02, 0x03, 0x04}, SAK: 0x08, Type: TypeMifare1K}
	cardB = &Card{UID: []byte{0x0A, 0x0B, 0x0C, 0x0D}, SAK: 0x00, Type: TypeMifareUltralight}
)

func TestMonitor_CardArrival(t *testing.T) {
	t.Parallel()

	monitor, _, events := createTestMonitor(t, scanResult{card: cardA})
	monitor.poll(context.Background())

	require.Len(t, *events, 1)
	ev := (*events)[0]
	assert.Equal(t, StateIdle, ev.Previous)
	assert.Equal(t, StateActive, ev.State)
	assert.Equal(t, cardA, ev.Card)
	assert.True(t, monitor.GetState().Present())
}

func TestMonitor_SameCardReportedOnce(t *testing.T) {
	t.Parallel()

	monitor, clock, events := createTestMonitor(t,
		scanResult{card: cardA},
		scanResult{card: cardA},
		scanResult{card: cardA},
	)
	for i := 0; i < 3; i++ {
		monitor.poll(context.Background())
		clock.Advance(100 * time.Millisecond)
	}

	assert.Len(t, *events, 1)
}

func TestMonitor_CardSwap(t *testing.T) {
	t.Parallel()

	monitor, _, events := createTestMonitor(t, scanResult{card: cardA}, scanResult{card: cardB})
	monitor.poll(context.Background())
	monitor.poll(context.Background())

	require.Len(t, *events, 2)
	assert.Equal(t, StateActive, (*events)[1].Previous)
	assert.Equal(t, StateActive, (*events)[1].State)
	assert.Equal(t, cardB, (*events)[1].Card)
}

func TestMonitor_RemovalAfterTimeout(t *testing.T) {
	t.Parallel()

	monitor, clock, events := createTestMonitor(t, scanResult{card: cardA})
	monitor.poll(context.Background())

	// Empty field within the timeout keeps the card.
	clock.Advance(400 * time.Millisecond)
	monitor.poll(context.Background())
	require.Len(t, *events, 1)

	clock.Advance(200 * time.Millisecond)
	monitor.poll(context.Background())

	require.Len(t, *events, 2)
	ev := (*events)[1]
	assert.Equal(t, StateActive, ev.Previous)
	assert.Equal(t, StateIdle, ev.State)
	assert.Equal(t, cardA, ev.Card)
	assert.False(t, monitor.GetState().Present())
}

func TestMonitor_ScannerErrorRemovesCard(t *testing.T) {
	t.Parallel()

	scanErr := errors.New("spi transfer failed")
	monitor, _, events := createTestMonitor(t, scanResult{card: cardA}, scanResult{err: scanErr})

	var reported []error
	monitor.OnError = func(err error) { reported = append(reported, err) }

	monitor.poll(context.Background())
	monitor.poll(context.Background())

	require.Len(t, *events, 2)
	assert.Equal(t, StateIdle, (*events)[1].State)
	require.Len(t, reported, 1)
	require.ErrorIs(t, reported[0], scanErr)
}

func TestMonitor_ReportsOnlyIdleAndActive(t *testing.T) {
	t.Parallel()

	monitor, clock, events := createTestMonitor(t,
		scanResult{card: cardA},
		scanResult{card: cardB},
		scanResult{err: errors.New("bus fault")},
		scanResult{card: cardA},
	)
	for i := 0; i < 4; i++ {
		monitor.poll(context.Background())
		clock.Advance(100 * time.Millisecond)
	}
	clock.Advance(time.Second)
	monitor.poll(context.Background())

	require.NotEmpty(t, *events)
	for _, ev := range *events {
		assert.Contains(t, []State{StateIdle, StateActive}, ev.State)
		assert.Contains(t, []State{StateIdle, StateActive}, ev.Previous)
	}
}

func TestMonitor_ErrorWithoutCardIsQuiet(t *testing.T) {
	t.Parallel()

	monitor, _, events := createTestMonitor(t, scanResult{err: errors.New("boom")})
	monitor.poll(context.Background())

	assert.Empty(t, *events)
}

func TestMonitor_StartStopsOnCancel(t *testing.T) {
	t.Parallel()

	scanner := &mockScanner{results: []scanResult{{card: cardA}}}
	monitor, err := NewMonitor(scanner, &Config{
		PollInterval:       time.Millisecond,
		CardRemovalTimeout: time.Hour,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	seen := make(chan Event, 1)
	monitor.OnStateChanged = func(ev Event) {
		seen <- ev
		cancel()
	}

	err = monitor.Start(ctx)
	require.ErrorIs(t, err, context.Canceled)

	select {
	case ev := <-seen:
		assert.Equal(t, StateActive, ev.State)
	default:
		t.Fatal("expected an arrival event")
	}
}

func TestMonitor_Close(t *testing.T) {
	t.Parallel()

	scanner := &mockScanner{}
	monitor, err := NewMonitor(scanner, nil)
	require.NoError(t, err)

	require.NoError(t, monitor.Close())
	assert.True(t, scanner.closed)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())
	require.Error(t, (&Config{PollInterval: -1, CardRemovalTimeout: time.Second}).Validate())
	require.Error(t, (&Config{CardRemovalTimeout: 0}).Validate())

	_, err := NewMonitor(&mockScanner{}, &Config{})
	require.Error(t, err)
}
