// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/gyro_hue/internal/display"
	"github.com/relabs-tech/gyro_hue/internal/logging"
)

// openPanel opens the SSD1306 on the given I²C bus ("" picks the first)
// and shows the splash screen.
func openPanel(busName string, log logging.Logger) (display.PanelDevice, func(), error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("display: periph host init: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, nil, fmt.Errorf("display: open I2C bus %q: %w", busName, err)
	}

	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, nil, fmt.Errorf("display: panel init: %w", err)
	}
	log.Infof("display: status panel initialized on %s", bus)

	if err := display.ShowSplash(dev); err != nil {
		log.Warnf("display: error showing splash: %v", err)
	}

	closePanel := func() {
		if err := dev.Halt(); err != nil {
			log.Warnf("display: panel halt: %v", err)
		}
		bus.Close()
	}
	return dev, closePanel, nil
}

// openStrip opens a WS2812 strip driven from the SPI MOSI line.
func openStrip(spiDev string, pixels int, log logging.Logger) (io.Writer, func(), error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("display: periph host init: %w", err)
	}

	port, err := spireg.Open(spiDev)
	if err != nil {
		return nil, nil, fmt.Errorf("display: open SPI port %q: %w", spiDev, err)
	}

	opts := nrzled.DefaultOpts
	opts.NumPixels = pixels
	dev, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		port.Close()
		return nil, nil, fmt.Errorf("display: strip init: %w", err)
	}
	log.Infof("display: LED strip with %d pixels on %s", pixels, spiDev)

	closeStrip := func() {
		if err := dev.Halt(); err != nil {
			log.Warnf("display: strip halt: %v", err)
		}
		port.Close()
	}
	return dev, closeStrip, nil
}
