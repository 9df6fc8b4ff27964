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

// Package term provides a panel that draws frames in a terminal.
//
// Each terminal cell shows two pixel rows using half-block characters, so a
// 128x64 panel needs a 128x32 terminal.
package term

import (
	"fmt"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/ZaparooProject/go-oled/raster"
	"github.com/gdamore/tcell/v2"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
)

// Panel implements oled.Panel on a tcell screen
type Panel struct {
	screen    tcell.Screen
	newScreen func() (tcell.Screen, error)
	style     tcell.Style
	geometry  raster.Geometry
	transform raster.Transform
	ready     bool
}

// New returns a panel drawing on the controlling terminal. t must match the
// display's flips so the canvas reads the right way up.
func New(g raster.Geometry, t raster.Transform) (*Panel, error) {
	return newPanel(g, t, tcell.NewScreen)
}

// NewWithScreen returns a panel drawing on screen, which Init initializes
func NewWithScreen(screen tcell.Screen, g raster.Geometry, t raster.Transform) (*Panel, error) {
	return newPanel(g, t, func() (tcell.Screen, error) { return screen, nil })
}

func newPanel(g raster.Geometry, t raster.Transform, newScreen func() (tcell.Screen, error)) (*Panel, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Panel{
		newScreen: newScreen,
		geometry:  g,
		transform: t,
		style:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}, nil
}

// Init takes over the terminal
func (p *Panel) Init() error {
	if p.ready {
		return nil
	}
	screen, err := p.newScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	screen.SetStyle(p.style)
	screen.HideCursor()
	screen.Clear()
	screen.Show()

	p.screen = screen
	p.ready = true
	return nil
}

// DrawBitmap draws a full frame
func (p *Panel) DrawBitmap(x0, y0, x1, y1 int, data []byte) error {
	if !p.ready {
		return oled.ErrPanelClosed
	}
	g := p.geometry
	if x0 != 0 || y0 != 0 || x1 != g.Width || y1 != g.Height {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", oled.ErrPartialDraw, x0, y0, x1, y1)
	}

	c, err := raster.Unpack(data, g, p.transform)
	if err != nil {
		return err
	}

	for y := 0; y < g.Height; y += 2 {
		for x := 0; x < g.Width; x++ {
			p.screen.SetContent(x, y/2, cell(c.At(x, y), c.At(x, y+1)), nil, p.style)
		}
	}
	p.screen.Show()
	return nil
}

func cell(top, bottom bool) rune {
	switch {
	case top && bottom:
		return fullBlock
	case top:
		return upperHalf
	case bottom:
		return lowerHalf
	default:
		return ' '
	}
}

// WaitKey blocks until a key is pressed or the screen is finalized
func (p *Panel) WaitKey() {
	if !p.ready {
		return
	}
	for {
		switch p.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

// Close restores the terminal
func (p *Panel) Close() error {
	if !p.ready {
		return nil
	}
	p.screen.Fini()
	p.ready = false
	return nil
}

// Type returns the panel type
func (*Panel) Type() oled.PanelType {
	return oled.PanelTerminal
}

var _ oled.Panel = (*Panel)(nil)
