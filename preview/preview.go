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

// Package preview turns packed panel frames back into images.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/ZaparooProject/go-oled/raster"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Ink colors of a preview image
var (
	On  = color.Gray{Y: 0xFF}
	Off = color.Gray{Y: 0x00}
)

// Image decodes a packed frame into a grayscale image of the logical canvas.
// t must be the transform the frame was packed with.
func Image(frame []byte, g raster.Geometry, t raster.Transform) (*image.Gray, error) {
	c, err := raster.Unpack(frame, g, t)
	if err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c.At(x, y) {
				img.SetGray(x, y, On)
			}
		}
	}
	return img, nil
}

// Scale returns src enlarged by factor with nearest-neighbour sampling, so
// pixels stay square and sharp.
func Scale(src image.Image, factor int) *image.Gray {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// EncodeBMP writes frame as a BMP scaled by factor
func EncodeBMP(w io.Writer, frame []byte, g raster.Geometry, t raster.Transform, factor int) error {
	img, err := Image(frame, g, t)
	if err != nil {
		return err
	}
	if err := bmp.Encode(w, Scale(img, factor)); err != nil {
		return fmt.Errorf("failed to encode bmp: %w", err)
	}
	return nil
}
