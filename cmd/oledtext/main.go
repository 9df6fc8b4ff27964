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

// Command oledtext renders text on a panel, for trying layouts without the
// card reader.
//
// Text comes from the arguments, joined by spaces, or from stdin when there
// are none. Escaped newlines ("\n") in arguments are expanded.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/ZaparooProject/go-oled/internal/cli"
	"github.com/ZaparooProject/go-oled/panel/snapshot"
	"github.com/ZaparooProject/go-oled/panel/term"
)

type config struct {
	panel cli.PanelFlags
	text  string
	debug bool
}

func parseFlags(args []string, stdin io.Reader) (*config, error) {
	if err := cli.LoadEnv(".env"); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("oledtext", flag.ContinueOnError)
	cfg := &config{}
	cfg.panel.Register(fs, string(oled.PanelTerminal))
	fs.BoolVar(&cfg.debug, "debug", false, "Enable debug output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	text, err := readText(fs.Args(), stdin)
	if err != nil {
		return nil, err
	}
	cfg.text = text

	if cfg.debug {
		oled.SetDebugEnabled(true)
	}
	return cfg, nil
}

// readText joins args or reads stdin when there are none
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.ReplaceAll(strings.Join(args, " "), `\n`, "\n"), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func run(ctx context.Context, cfg *config, out io.Writer) error {
	panel, err := cfg.panel.NewPanel(ctx)
	if err != nil {
		return fmt.Errorf("failed to create panel: %w", err)
	}

	display, err := oled.New(panel, cfg.panel.DisplayOptions()...)
	if err != nil {
		return err
	}
	if err := display.Init(); err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	defer func() { _ = display.Close() }()

	if err := display.ShowText(cfg.text); err != nil {
		return err
	}

	switch p := panel.(type) {
	case *term.Panel:
		p.WaitKey()
	case *snapshot.Panel:
		_, _ = fmt.Fprintf(out, "Saved %s\n", p.Path(p.Frames()-1))
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stdin)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
