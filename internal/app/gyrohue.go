// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/relabs-tech/gyro_hue/internal/config"
	"github.com/relabs-tech/gyro_hue/internal/display"
	"github.com/relabs-tech/gyro_hue/internal/event"
	"github.com/relabs-tech/gyro_hue/internal/logging"
	"github.com/relabs-tech/gyro_hue/internal/loop"
	"github.com/relabs-tech/gyro_hue/internal/orientation"
	"github.com/relabs-tech/gyro_hue/internal/sdlhost"
	"github.com/relabs-tech/gyro_hue/internal/sensors"
)

// RunGyroHue opens the configured input and outputs and runs the colour
// loop until quit. config.InitGlobal must have been called.
func RunGyroHue() error {
	cfg := config.Get()
	if cfg == nil {
		return fmt.Errorf("app: configuration not initialized")
	}

	log, closeLog, err := logging.New(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Infof("starting gyro hue (input=%s, window=%t)", cfg.InputBackend, cfg.WindowEnabled)

	var (
		sources    []event.Source
		presenters []display.Presenter
		closers    []func()
	)
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	// --- SDL: window and/or gamepad ---
	var host *sdlhost.Host
	if cfg.WindowEnabled || cfg.InputBackend == config.InputGamepad {
		host, err = sdlhost.Init(log, cfg.WindowEnabled)
		if err != nil {
			return err
		}
		closers = append(closers, host.Close)
		sources = append(sources, host)
	}

	if cfg.WindowEnabled {
		if err := host.OpenWindow(cfg.WindowTitle, int32(cfg.WindowWidth), int32(cfg.WindowHeight), cfg.WindowVSync); err != nil {
			return err
		}
		presenters = append(presenters, host)
	}

	// --- Input backend ---
	switch cfg.InputBackend {
	case config.InputGamepad:
		if _, err := host.OpenGamepad(); err != nil {
			return err
		}
	case config.InputIMU:
		src, err := sensors.NewIMU(cfg.IMUSPIDevice, cfg.IMUCSPin, cfg.IMUGyroRange, log)
		if err != nil {
			return err
		}
		log.Infof("using MPU9250 on %s for gyro input", cfg.IMUSPIDevice)
		sources = append(sources, event.FromSamples(src, log))
	case config.InputMock:
		log.Infof("using mock gyro input")
		sources = append(sources, event.FromSamples(orientation.NewMockSource(), log))
	default:
		return fmt.Errorf("app: unknown input backend %q", cfg.InputBackend)
	}

	if cfg.ResetButtonPin != "" {
		btn, err := sensors.NewButton(cfg.ResetButtonPin)
		if err != nil {
			return err
		}
		log.Infof("reset button on %s", cfg.ResetButtonPin)
		sources = append(sources, btn)
	}

	signals := event.NewSignalSource(os.Interrupt, syscall.SIGTERM)
	closers = append(closers, signals.Stop)
	sources = append(sources, signals)

	// --- Extra outputs ---
	if cfg.PanelEnabled {
		panel, closePanel, err := openPanel(cfg.PanelI2CBus, log)
		if err != nil {
			return err
		}
		closers = append(closers, closePanel)
		presenters = append(presenters, display.NewStatusPanel(panel, time.Duration(cfg.PanelUpdateInterval)*time.Millisecond))
	}

	if cfg.StripEnabled {
		strip, closeStrip, err := openStrip(cfg.StripSPIDevice, cfg.StripNumPixels, log)
		if err != nil {
			return err
		}
		closers = append(closers, closeStrip)
		presenters = append(presenters, display.NewLEDStrip(strip, cfg.StripNumPixels))
	}

	if cfg.ConsoleLogInterval > 0 {
		presenters = append(presenters, display.NewConsole(log, time.Duration(cfg.ConsoleLogInterval)*time.Millisecond))
	}

	acc := orientation.NewAccumulator(orientation.DefaultScale)
	l := loop.New(
		event.Merge(sources...),
		display.Multi(presenters...),
		acc,
		log,
		loop.Options{FrameRateCap: cfg.FrameRateCap},
	)

	log.Infof("starting render loop")
	return l.Run()
}
