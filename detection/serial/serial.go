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

// Package serial detects panel bridges on USB serial ports
package serial

import (
	"context"
	"fmt"
	"strings"
	"time"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/ZaparooProject/go-oled/detection"
	"github.com/ZaparooProject/go-oled/internal/frame"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// KnownBridges maps the VID:PID of USB serial chips used on panel bridges to
// a description
var KnownBridges = map[string]string{
	"1A86:7523": "CH340",
	"10C4:EA60": "CP210x",
	"0403:6001": "FT232R",
	"2E8A:000A": "Raspberry Pi Pico",
}

const probeTimeout = 300 * time.Millisecond

type detector struct {
	list func() ([]*enumerator.PortDetails, error)
}

// New returns the serial panel bridge detector
func New() detection.Detector {
	return &detector{list: enumerator.GetDetailedPortsList}
}

func init() {
	detection.RegisterDetector(New())
}

// Panel returns the panel type found by this detector
func (*detector) Panel() string {
	return string(oled.PanelSerial)
}

// Detect lists USB serial ports that may host a panel bridge. Only Full mode
// opens ports, since opening a port resets some boards.
func (d *detector) Detect(ctx context.Context, opts *detection.Options) ([]detection.DeviceInfo, error) {
	ports, err := d.list()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	blocklist := detection.DefaultBlocklist()
	var devices []detection.DeviceInfo
	for _, port := range ports {
		select {
		case <-ctx.Done():
			return devices, detection.ErrDetectionTimeout
		default:
		}

		dev, ok := classify(port, opts, blocklist)
		if !ok {
			continue
		}
		if opts.Mode == detection.Full && probe(port.Name) {
			dev.Confidence = detection.High
		}
		devices = append(devices, dev)
	}

	if len(devices) == 0 {
		return nil, detection.ErrNoDevicesFound
	}
	return devices, nil
}

// classify turns an enumerated port into a candidate. Non-USB, ignored and
// blocked ports are skipped.
func classify(port *enumerator.PortDetails, opts *detection.Options, blocklist []string) (detection.DeviceInfo, bool) {
	if !port.IsUSB || detection.IsPathIgnored(port.Name, opts.IgnorePaths) {
		return detection.DeviceInfo{}, false
	}

	vidpid := strings.ToUpper(port.VID + ":" + port.PID)
	if detection.IsBlocked(vidpid, blocklist) {
		return detection.DeviceInfo{}, false
	}

	dev := detection.DeviceInfo{
		Panel:      string(oled.PanelSerial),
		Path:       port.Name,
		Name:       port.Product,
		Confidence: detection.Low,
		Metadata: map[string]string{
			"vidpid":        vidpid,
			"serial_number": port.SerialNumber,
		},
	}
	if chip, ok := KnownBridges[vidpid]; ok {
		dev.Confidence = detection.Medium
		dev.Metadata["chip"] = chip
	}
	if dev.Name == "" {
		dev.Name = port.Name
	}
	return dev, true
}

// probe sends an init command and reports whether the bridge acknowledged it
func probe(name string) bool {
	port, err := serial.Open(name, &serial.Mode{BaudRate: 115200})
	if err != nil {
		return false
	}
	defer func() { _ = port.Close() }()

	if err := port.SetReadTimeout(probeTimeout); err != nil {
		return false
	}

	frm, err := frame.BuildExtended(frame.HostToBridge, []byte{frame.CmdInit})
	if err != nil {
		return false
	}
	if _, err := port.Write(frm); err != nil {
		return false
	}

	buf := make([]byte, len(frame.AckFrame))
	n, err := port.Read(buf)
	return err == nil && frame.IsAck(buf[:n])
}
