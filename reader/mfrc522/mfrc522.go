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

// Package mfrc522 provides a reader.Scanner for RC522 modules on SPI
package mfrc522

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ZaparooProject/go-oled/reader"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/mfrc522"
	"periph.io/x/host/v3"
)

const (
	// MIFARE Classic authentication with key A.
	authKeyA = 0x60

	// Offsets in the manufacturer block (sector 0, block 0).
	block0UIDLen = 4
	block0SAK    = 5
	block0Len    = 16

	minScanTimeout = 10 * time.Millisecond

	// The driver has no sentinel for an empty field; this is the message of
	// its IRQ wait timeout.
	irqTimeoutMsg = "timeout waiting for IRQ edge"
)

// rc522 is the part of mfrc522.Dev used by the scanner
type rc522 interface {
	ReadCard(timeout time.Duration, auth byte, sector, block int, key mfrc522.Key) ([]byte, error)
	ReadUID(timeout time.Duration) ([]byte, error)
	Halt() error
	String() string
}

// Config selects the SPI port and control pins of the module
type Config struct {
	// SPIPort is the periph SPI port name; empty selects the first port
	SPIPort string
	// ResetPin and IRQPin are periph GPIO names
	ResetPin string
	IRQPin   string
	// ScanTimeout bounds a single card read
	ScanTimeout time.Duration
	// AntennaGain is the receiver gain level 0-7; negative keeps the chip default
	AntennaGain int
}

// DefaultConfig returns the wiring used on a Raspberry Pi header
func DefaultConfig() *Config {
	return &Config{
		SPIPort:     "",
		ResetPin:    "GPIO25",
		IRQPin:      "GPIO24",
		ScanTimeout: 200 * time.Millisecond,
		AntennaGain: -1,
	}
}

// Scanner reads cards through an RC522.
//
// A card is first read as MIFARE Classic: its manufacturer block carries
// the UID and SAK. Cards that refuse that read are selected once more to get
// their UID and reported with reader.TypeUnknown.
type Scanner struct {
	dev     rc522
	port    spi.PortCloser
	key     mfrc522.Key
	timeout time.Duration
}

// New opens the SPI port and initializes the RC522
func New(cfg *Config) (*Scanner, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	port, err := spireg.Open(cfg.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %q: %w", cfg.SPIPort, err)
	}

	resetPin := gpioreg.ByName(cfg.ResetPin)
	if resetPin == nil {
		_ = port.Close()
		return nil, fmt.Errorf("reset pin %q not found", cfg.ResetPin)
	}
	irqPin := gpioreg.ByName(cfg.IRQPin)
	if irqPin == nil {
		_ = port.Close()
		return nil, fmt.Errorf("IRQ pin %q not found", cfg.IRQPin)
	}

	dev, err := mfrc522.NewSPI(port, resetPin, irqPin)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to initialize RC522: %w", err)
	}

	if cfg.AntennaGain >= 0 {
		if err := dev.SetAntennaGain(cfg.AntennaGain); err != nil {
			_ = dev.Halt()
			_ = port.Close()
			return nil, fmt.Errorf("failed to set antenna gain: %w", err)
		}
	}

	return &Scanner{
		dev:     dev,
		port:    port,
		key:     mfrc522.DefaultKey,
		timeout: cfg.ScanTimeout,
	}, nil
}

// Scan waits for a card for at most the configured timeout or until ctx ends
func (s *Scanner) Scan(ctx context.Context) (*reader.Card, error) {
	timeout, err := scanTimeout(ctx, s.timeout, time.Now())
	if err != nil {
		return nil, err
	}

	data, err := s.dev.ReadCard(timeout, authKeyA, 0, 0, s.key)
	if err == nil {
		return cardFromBlock0(data)
	}

	uid, uidErr := s.dev.ReadUID(timeout)
	if uidErr != nil {
		if isEmptyField(uidErr) {
			return nil, fmt.Errorf("%w: %v", reader.ErrNoCard, uidErr)
		}
		return nil, fmt.Errorf("failed to read card UID: %w", uidErr)
	}

	return &reader.Card{
		UID:  uid,
		Type: reader.TypeUnknown,
	}, nil
}

// Close powers the RC522 down and releases the SPI port
func (s *Scanner) Close() error {
	haltErr := s.dev.Halt()
	var closeErr error
	if s.port != nil {
		closeErr = s.port.Close()
	}
	if err := errors.Join(haltErr, closeErr); err != nil {
		return fmt.Errorf("failed to close RC522: %w", err)
	}
	return nil
}

// String returns the device description
func (s *Scanner) String() string {
	return s.dev.String()
}

// isEmptyField reports whether err is the driver's IRQ wait timeout, which is
// how it signals that no card entered the field
func isEmptyField(err error) bool {
	return strings.Contains(err.Error(), irqTimeoutMsg)
}

// scanTimeout fits limit into the time left on ctx
func scanTimeout(ctx context.Context, limit time.Duration, now time.Time) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		left := deadline.Sub(now)
		if left < minScanTimeout {
			return 0, context.DeadlineExceeded
		}
		if left < limit {
			return left, nil
		}
	}
	return limit, nil
}

// cardFromBlock0 decodes the MIFARE Classic manufacturer block
func cardFromBlock0(data []byte) (*reader.Card, error) {
	if len(data) < block0Len {
		return nil, fmt.Errorf("manufacturer block too short: %d bytes", len(data))
	}

	uid := append([]byte(nil), data[:block0UIDLen]...)
	var bcc byte
	for _, b := range uid {
		bcc ^= b
	}
	if bcc != data[block0UIDLen] {
		return nil, fmt.Errorf("manufacturer block BCC mismatch: got %02X, want %02X", data[block0UIDLen], bcc)
	}

	sak := data[block0SAK]
	return &reader.Card{
		UID:  uid,
		SAK:  sak,
		Type: reader.TypeFromSAK(sak),
	}, nil
}

var _ reader.Scanner = (*Scanner)(nil)
