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

// Package serial drives a remote panel bridge over a UART.
//
// Every command is sent as an extended information frame and the bridge
// acknowledges it with an ACK frame once the panel has accepted the data.
package serial

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/ZaparooProject/go-oled/internal/frame"
	"go.bug.st/serial"
)

const (
	// DefaultBaudRate matches the bridge firmware.
	DefaultBaudRate = 115200
	// DefaultAckTimeout bounds the wait for a bridge ACK. A full 128x64 frame
	// takes about 90ms on the wire at 115200 baud.
	DefaultAckTimeout = 500 * time.Millisecond

	readTimeout = 10 * time.Millisecond
)

// Port is the subset of serial.Port used by the panel
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
	ResetInputBuffer() error
}

// Config holds the bridge connection settings
type Config struct {
	PortName   string
	BaudRate   int
	AckTimeout time.Duration
}

// DefaultConfig returns the default settings for portName
func DefaultConfig(portName string) Config {
	return Config{
		PortName:   portName,
		BaudRate:   DefaultBaudRate,
		AckTimeout: DefaultAckTimeout,
	}
}

// Panel implements oled.Panel for a UART panel bridge
type Panel struct {
	port       Port
	portName   string
	ackTimeout time.Duration
	open       func() (Port, error)
}

// New returns a panel for cfg. The port is opened by Init.
func New(cfg Config) (*Panel, error) {
	if cfg.PortName == "" {
		return nil, fmt.Errorf("%w: empty port name", oled.ErrInvalidParameter)
	}
	if cfg.BaudRate <= 0 {
		cfg.BaudRate = DefaultBaudRate
	}
	if cfg.AckTimeout <= 0 {
		cfg.AckTimeout = DefaultAckTimeout
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	return &Panel{
		portName:   cfg.PortName,
		ackTimeout: cfg.AckTimeout,
		open: func() (Port, error) {
			port, err := serial.Open(cfg.PortName, mode)
			if err != nil {
				return nil, err
			}
			return port, nil
		},
	}, nil
}

// NewWithPort returns a panel talking over an already open port
func NewWithPort(port Port, name string, ackTimeout time.Duration) *Panel {
	if ackTimeout <= 0 {
		ackTimeout = DefaultAckTimeout
	}
	return &Panel{
		portName:   name,
		ackTimeout: ackTimeout,
		open: func() (Port, error) {
			return port, nil
		},
	}
}

// Init opens the port and asks the bridge to bring the panel up
func (p *Panel) Init() error {
	if p.port == nil {
		port, err := p.open()
		if err != nil {
			return fmt.Errorf("failed to open serial port %s: %w", p.portName, err)
		}
		if err := port.SetReadTimeout(readTimeout); err != nil {
			_ = port.Close()
			return fmt.Errorf("failed to set read timeout on %s: %w", p.portName, err)
		}
		p.port = port
	}

	_ = p.port.ResetInputBuffer()
	return p.command(frame.CmdInit, nil)
}

// DrawBitmap sends the bitmap for [x0, x1) x [y0, y1) to the bridge
func (p *Panel) DrawBitmap(x0, y0, x1, y1 int, data []byte) error {
	if p.port == nil {
		return oled.ErrPanelClosed
	}
	if x0 < 0 || y0 < 0 || x1 <= x0 || y1 <= y0 || x1 > 0xFFFF || y1 > 0xFFFF {
		return fmt.Errorf("%w: rectangle (%d,%d)-(%d,%d)", oled.ErrInvalidParameter, x0, y0, x1, y1)
	}

	args := make([]byte, 8, 8+len(data))
	binary.BigEndian.PutUint16(args[0:], uint16(x0))
	binary.BigEndian.PutUint16(args[2:], uint16(y0))
	binary.BigEndian.PutUint16(args[4:], uint16(x1))
	binary.BigEndian.PutUint16(args[6:], uint16(y1))
	args = append(args, data...)

	return p.command(frame.CmdDrawBitmap, args)
}

// Close switches the panel off and closes the port
func (p *Panel) Close() error {
	if p.port == nil {
		return nil
	}
	err := p.command(frame.CmdPowerOff, nil)
	err = errors.Join(err, p.port.Close())
	p.port = nil
	return err
}

// Type returns the panel type
func (*Panel) Type() oled.PanelType {
	return oled.PanelSerial
}

// command sends one command frame and waits for its ACK
func (p *Panel) command(cmd byte, args []byte) error {
	payload := make([]byte, 0, 1+len(args))
	payload = append(payload, cmd)
	payload = append(payload, args...)

	frm, err := frame.BuildExtended(frame.HostToBridge, payload)
	if err != nil {
		return err
	}

	if _, err := p.port.Write(frm); err != nil {
		return fmt.Errorf("failed to write frame to %s: %w", p.portName, err)
	}

	return p.waitAck()
}

// waitAck reads until an ACK or NACK frame arrives or the timeout passes
func (p *Panel) waitAck() error {
	deadline := time.Now().Add(p.ackTimeout)
	var acc []byte
	buf := make([]byte, 32)

	for time.Now().Before(deadline) {
		n, err := p.port.Read(buf)
		if err != nil {
			return fmt.Errorf("failed to read ACK from %s: %w", p.portName, err)
		}
		acc = append(acc, buf[:n]...)

		if bytes.Contains(acc, frame.AckFrame) {
			return nil
		}
		if bytes.Contains(acc, frame.NackFrame) {
			return oled.ErrNACK
		}
	}

	return oled.ErrNoACK
}

var _ oled.Panel = (*Panel)(nil)
