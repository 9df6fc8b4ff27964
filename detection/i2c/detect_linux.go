//go:build linux

package i2c

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ZaparooProject/go-oled/detection"
	"golang.org/x/sys/unix"
)

const (
	// I2CSlave is the ioctl command to set slave address
	I2CSlave = 0x0703

	// I2CFuncs is the ioctl command to get adapter functionality
	I2CFuncs = 0x0705

	// I2CFuncI2C indicates plain I2C support
	I2CFuncI2C = 0x00000001
)

func detectLinux(ctx context.Context, opts *detection.Options) ([]detection.DeviceInfo, error) {
	buses, err := findBuses()
	if err != nil {
		return nil, err
	}
	if len(buses) == 0 {
		return nil, detection.ErrNoDevicesFound
	}

	var devices []detection.DeviceInfo
	for _, bus := range buses {
		select {
		case <-ctx.Done():
			return devices, detection.ErrDetectionTimeout
		default:
		}
		devices = append(devices, detectBus(bus, opts)...)
	}

	if len(devices) == 0 {
		return nil, detection.ErrNoDevicesFound
	}
	return devices, nil
}

func detectBus(bus busInfo, opts *detection.Options) []detection.DeviceInfo {
	var devices []detection.DeviceInfo
	for _, addr := range Addresses {
		if detection.IsPathIgnored(devicePath(bus, addr), opts.IgnorePaths) {
			continue
		}

		// Passive mode never touches the bus, so only the default address is
		// reported and only as a guess.
		if opts.Mode == detection.Passive {
			if addr == DefaultSSD1306Address {
				devices = append(devices, deviceInfo(bus, addr, detection.Low))
			}
			continue
		}

		status, ok := probe(bus.Path, addr)
		if !ok {
			continue
		}
		confidence := detection.Medium
		if opts.Mode == detection.Full {
			confidence = detection.High
		}
		dev := deviceInfo(bus, addr, confidence)
		dev.Metadata["status"] = fmt.Sprintf("0x%02X", status)
		devices = append(devices, dev)
	}
	return devices
}

// probe reads the controller status byte at addr
func probe(busPath string, addr uint8) (status byte, ok bool) {
	fd, err := unix.Open(busPath, unix.O_RDWR, 0)
	if err != nil {
		return 0, false
	}
	defer func() { _ = unix.Close(fd) }()

	if err := unix.IoctlSetInt(fd, I2CSlave, int(addr)); err != nil {
		return 0, false
	}

	buf := make([]byte, 1)
	if n, err := unix.Read(fd, buf); err != nil || n != 1 {
		return 0, false
	}
	return buf[0], true
}

func findBuses() ([]busInfo, error) {
	matches, err := filepath.Glob("/dev/i2c-*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan for I2C buses: %w", err)
	}

	buses := make([]busInfo, 0, len(matches))
	for _, path := range matches {
		bus, ok := parseBus(path)
		if !ok || !supportsI2C(path) {
			continue
		}
		buses = append(buses, bus)
	}
	return buses, nil
}

// supportsI2C reports whether the adapter at path can do plain I2C transfers
func supportsI2C(path string) bool {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer func() { _ = unix.Close(fd) }()

	funcs, err := unix.IoctlGetUint32(fd, I2CFuncs)
	if err != nil {
		return false
	}
	return funcs&I2CFuncI2C != 0
}
