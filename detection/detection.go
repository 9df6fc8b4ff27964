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

// Package detection finds panels attached to the host.
//
// Detectors for each panel type register themselves from their package's
// init function; importing detection/i2c or detection/serial for side
// effects enables them.
package detection

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Detection errors
var (
	ErrNoDevicesFound      = errors.New("no panels found")
	ErrUnsupportedPlatform = errors.New("detection not supported on this platform")
	ErrDetectionTimeout    = errors.New("detection timed out")
)

// Mode controls how intrusive detection is allowed to be
type Mode int

const (
	// Passive only lists devices and never talks to them
	Passive Mode = iota
	// Safe sends read-only probes
	Safe
	// Full may send commands that change panel state, such as switching it on
	Full
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Passive:
		return "passive"
	case Safe:
		return "safe"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Confidence is how sure a detector is that a device is a panel
type Confidence int

const (
	Low Confidence = iota
	Medium
	High
)

// String returns the confidence name
func (c Confidence) String() string {
	switch c {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("confidence(%d)", int(c))
	}
}

// DeviceInfo describes a detected panel
type DeviceInfo struct {
	Metadata   map[string]string
	Panel      string // oled.PanelType of the device
	Path       string // Path accepted by the matching panel package
	Name       string
	Confidence Confidence
}

// Options controls detection
type Options struct {
	// IgnorePaths lists device paths that must not be probed
	IgnorePaths []string
	Timeout     time.Duration
	Mode        Mode
}

// DefaultOptions returns safe detection with a 5 second timeout
func DefaultOptions() Options {
	return Options{
		Timeout: 5 * time.Second,
		Mode:    Safe,
	}
}

// Detector finds devices of one panel type
type Detector interface {
	// Panel returns the oled.PanelType name this detector finds
	Panel() string
	Detect(ctx context.Context, opts *Options) ([]DeviceInfo, error)
}

var (
	detectors   = make(map[string]Detector)
	detectorsMu sync.RWMutex
)

// RegisterDetector adds d to the registry, replacing any detector for the
// same panel type
func RegisterDetector(d Detector) {
	detectorsMu.Lock()
	defer detectorsMu.Unlock()
	detectors[d.Panel()] = d
}

// Detectors returns the registered detectors sorted by panel type
func Detectors() []Detector {
	detectorsMu.RLock()
	defer detectorsMu.RUnlock()

	list := make([]Detector, 0, len(detectors))
	for _, d := range detectors {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Panel() < list[j].Panel() })
	return list
}

// DetectAll runs every registered detector and returns the devices found,
// highest confidence first
func DetectAll(ctx context.Context, opts *Options) ([]DeviceInfo, error) {
	if opts == nil {
		def := DefaultOptions()
		opts = &def
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var devices []DeviceInfo
	for _, d := range Detectors() {
		found, err := d.Detect(ctx, opts)
		if err != nil {
			if ctx.Err() != nil {
				return sortDevices(devices), ErrDetectionTimeout
			}
			continue
		}
		for _, dev := range found {
			if !IsPathIgnored(dev.Path, opts.IgnorePaths) {
				devices = append(devices, dev)
			}
		}
	}

	if len(devices) == 0 {
		return nil, ErrNoDevicesFound
	}
	return sortDevices(devices), nil
}

func sortDevices(devices []DeviceInfo) []DeviceInfo {
	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].Confidence > devices[j].Confidence
	})
	return devices
}
