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

package frame

import (
	"bytes"
	"errors"
	"fmt"
)

// Frame errors
var (
	ErrDataTooLarge    = errors.New("frame data too large")
	ErrFrameCorrupted  = errors.New("frame corrupted")
	ErrChecksumInvalid = errors.New("frame checksum mismatch")
)

// BuildExtended returns an extended information frame carrying tfi and payload
func BuildExtended(tfi byte, payload []byte) ([]byte, error) {
	dataLen := 1 + len(payload)
	if dataLen > MaxExtendedDataLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, dataLen)
	}
	length := uint16(dataLen)

	frm := make([]byte, 0, ExtendedOverhead+dataLen)
	frm = append(frm,
		Preamble, StartCode1, StartCode2,
		ExtendedID, ExtendedID,
		byte(length>>8), byte(length),
		CalculateExtendedLengthChecksum(length),
		tfi)
	frm = append(frm, payload...)
	frm = append(frm, CalculateDataChecksum(tfi, payload), Postamble)
	return frm, nil
}

// ParseExtended validates an extended frame and returns its TFI and payload.
// Leading bytes before the start code are skipped.
func ParseExtended(frm []byte) (tfi byte, payload []byte, err error) {
	start := bytes.Index(frm, []byte{StartCode1, StartCode2, ExtendedID, ExtendedID})
	if start < 0 {
		return 0, nil, fmt.Errorf("%w: no extended start code", ErrFrameCorrupted)
	}
	hdr := frm[start+4:]
	if len(hdr) < 3 {
		return 0, nil, fmt.Errorf("%w: truncated length", ErrFrameCorrupted)
	}

	if ValidateChecksum(hdr[:3]) {
		return 0, nil, fmt.Errorf("%w: length", ErrChecksumInvalid)
	}
	length := int(hdr[0])<<8 | int(hdr[1])
	if length == 0 {
		return 0, nil, fmt.Errorf("%w: empty frame", ErrFrameCorrupted)
	}

	body := hdr[3:]
	if len(body) < length+1 {
		return 0, nil, fmt.Errorf("%w: have %d data bytes, want %d", ErrFrameCorrupted, len(body), length+1)
	}
	if ValidateChecksum(body[:length+1]) {
		return 0, nil, fmt.Errorf("%w: data", ErrChecksumInvalid)
	}

	return body[0], body[1:length], nil
}

// IsAck reports whether buf is an ACK frame
func IsAck(buf []byte) bool {
	return bytes.Equal(buf, AckFrame)
}

// IsNack reports whether buf is a NACK frame
func IsNack(buf []byte) bool {
	return bytes.Equal(buf, NackFrame)
}
