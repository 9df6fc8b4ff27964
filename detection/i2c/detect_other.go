//go:build !linux

package i2c

import (
	"context"

	"github.com/ZaparooProject/go-oled/detection"
)

func detectLinux(context.Context, *detection.Options) ([]detection.DeviceInfo, error) {
	return nil, detection.ErrUnsupportedPlatform
}
