// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/gyro_hue/internal/event"
)

// Button is a normally-open push button between a GPIO pin and ground.
// Each press yields one ResetButton event.
type Button struct {
	pin     gpio.PinIn
	pressed bool
}

// NewButton opens the named GPIO pin with its pull-up enabled.
func NewButton(pinName string) (*Button, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("button: periph host init: %w", err)
	}

	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("button: pin %q not found", pinName)
	}
	return newButton(pin)
}

func newButton(pin gpio.PinIn) (*Button, error) {
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("button: configure %s: %w", pin, err)
	}
	// A button held at start-up does not count as a press.
	return &Button{pin: pin, pressed: pin.Read() == gpio.Low}, nil
}

// Drain samples the pin and reports a press on the released-to-pressed edge.
func (b *Button) Drain() []event.Event {
	down := b.pin.Read() == gpio.Low
	edge := down && !b.pressed
	b.pressed = down

	if edge {
		return []event.Event{{Kind: event.ResetButton}}
	}
	return nil
}
