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

// Command cardpanel shows the state of NFC cards held to an RC522 reader on
// an OLED panel.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	oled "github.com/ZaparooProject/go-oled"
	"github.com/ZaparooProject/go-oled/internal/cli"
	"github.com/ZaparooProject/go-oled/reader"
	"github.com/ZaparooProject/go-oled/reader/mfrc522"
	"github.com/ZaparooProject/go-oled/status"
)

// Startup screens
const (
	msgStarting = "[+] starting nfc..."
	msgReady    = "[*] nfc ready"
	msgFailed   = "[!] nfc failed"
)

const (
	readerMFRC522 = "mfrc522"
	readerNone    = "none"
)

type config struct {
	panel        cli.PanelFlags
	reader       string
	spiPort      string
	resetPin     string
	irqPin       string
	logFile      string
	pollInterval time.Duration
	removal      time.Duration
	debug        bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("cardpanel", flag.ContinueOnError)
	fs.String("env", ".env", "Environment file with OLED_* and NFC_* defaults")

	// The env file must be loaded before the flags read their defaults.
	if err := cli.LoadEnv(envFileArg(args, ".env")); err != nil {
		return nil, err
	}

	readerDefaults := mfrc522.DefaultConfig()
	monitorDefaults := reader.DefaultConfig()

	cfg := &config{}
	cfg.panel.Register(fs, string(oled.PanelSSD1306))
	fs.StringVar(&cfg.reader, "reader", cli.EnvString("NFC_READER", readerMFRC522), "Card reader: mfrc522 or none")
	fs.StringVar(&cfg.spiPort, "spi", cli.EnvString("NFC_SPI", readerDefaults.SPIPort), "RC522 SPI port (empty: first port)")
	fs.StringVar(&cfg.resetPin, "rst", cli.EnvString("NFC_RST", readerDefaults.ResetPin), "RC522 reset GPIO")
	fs.StringVar(&cfg.irqPin, "irq", cli.EnvString("NFC_IRQ", readerDefaults.IRQPin), "RC522 IRQ GPIO")
	fs.DurationVar(&cfg.pollInterval, "poll-interval", monitorDefaults.PollInterval, "Card polling interval")
	fs.DurationVar(&cfg.removal, "removal-timeout", monitorDefaults.CardRemovalTimeout,
		"Time without detection before a card counts as removed")
	fs.StringVar(&cfg.logFile, "log", cli.EnvString("OLED_LOG", ""), "Log file (default: stderr)")
	fs.BoolVar(&cfg.debug, "debug", cli.EnvBool("OLED_DEBUG", false), "Enable debug output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.debug {
		oled.SetDebugEnabled(true)
	}
	return cfg, nil
}

// envFileArg finds the -env value in args before flag parsing
func envFileArg(args []string, def string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "env" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return def
}

// newLogger returns the logger for cfg. A terminal panel owns the screen, so
// logs are dropped unless a log file is given.
func newLogger(cfg *config) (*slog.Logger, func(), error) {
	if cfg.logFile != "" {
		f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return oled.NewLogger(f), func() { _ = f.Close() }, nil
	}
	if strings.EqualFold(cfg.panel.Panel, string(oled.PanelTerminal)) {
		return oled.NewLogger(io.Discard), func() {}, nil
	}
	return oled.DefaultLogger(), func() {}, nil
}

func newScanner(cfg *config) (reader.Scanner, error) {
	switch strings.ToLower(cfg.reader) {
	case readerMFRC522:
		rc := mfrc522.DefaultConfig()
		rc.SPIPort = cfg.spiPort
		rc.ResetPin = cfg.resetPin
		rc.IRQPin = cfg.irqPin
		scanner, err := mfrc522.New(rc)
		if err != nil {
			return nil, err
		}
		return scanner, nil
	case readerNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown reader %q", oled.ErrInvalidParameter, cfg.reader)
	}
}

func run(ctx context.Context, cfg *config, logger *slog.Logger) error {
	panel, err := cfg.panel.NewPanel(ctx)
	if err != nil {
		return fmt.Errorf("failed to create panel: %w", err)
	}

	opts := append(cfg.panel.DisplayOptions(), oled.WithLogger(logger))
	display, err := oled.New(panel, opts...)
	if err != nil {
		return err
	}
	if err := display.Init(); err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	defer func() { _ = display.Close() }()

	_ = display.ShowText(msgStarting)

	scanner, err := newScanner(cfg)
	if err != nil {
		_ = display.ShowText(msgFailed)
		return fmt.Errorf("failed to initialize reader: %w", err)
	}

	_ = display.ShowText(msgReady)
	logger.Info("nfc ready", "reader", cfg.reader, "panel", string(panel.Type()))

	if scanner == nil {
		<-ctx.Done()
		return nil
	}

	monitorConfig := reader.DefaultConfig()
	monitorConfig.PollInterval = cfg.pollInterval
	monitorConfig.CardRemovalTimeout = cfg.removal

	monitor, err := reader.NewMonitor(scanner, monitorConfig)
	if err != nil {
		_ = scanner.Close()
		return err
	}
	defer func() { _ = monitor.Close() }()

	presenter := status.NewPresenter(display, logger)
	monitor.OnStateChanged = presenter.Handle
	monitor.OnError = func(err error) {
		logger.Warn("card read failed", "error", err)
	}

	if err := monitor.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("card monitor stopped: %w", err)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("cardpanel failed", "error", err)
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		stop()
		closeLog()
		os.Exit(1)
	}
}
