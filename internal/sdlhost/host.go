// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package sdlhost is the SDL side of the program: the window the colour is
// painted into and the gamepad whose gyroscope steers it.
//
// SDL must be driven from the main OS thread; callers lock it before Init.
package sdlhost

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/relabs-tech/gyro_hue/internal/display"
	"github.com/relabs-tech/gyro_hue/internal/event"
	"github.com/relabs-tech/gyro_hue/internal/logging"
)

// ErrNoGyroGamepad is returned when no connected gamepad has a gyroscope.
var ErrNoGyroGamepad = errors.New("sdl: no gamepad with a gyroscope found")

// Device describes one connected joystick.
type Device struct {
	Index     int
	Name      string
	IsGamepad bool
	HasGyro   bool
}

// Host owns the SDL subsystems, the window and the opened gamepad.
type Host struct {
	log      logging.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	pad      *sdl.GameController
	video    bool
}

var (
	_ event.Source      = (*Host)(nil)
	_ display.Presenter = (*Host)(nil)
)

// Init starts the game controller and sensor subsystems, and video when
// a window will be opened.
func Init(log logging.Logger, window bool) (*Host, error) {
	if err := sdl.Init(initFlags(window)); err != nil {
		return nil, fmt.Errorf("sdl: init: %w", err)
	}
	return &Host{log: log, video: window}, nil
}

func initFlags(window bool) uint32 {
	flags := uint32(sdl.INIT_GAMECONTROLLER | sdl.INIT_SENSOR)
	if window {
		flags |= sdl.INIT_VIDEO
	}
	return flags
}

// OpenWindow creates a centred window of the given size and its renderer.
func (h *Host) OpenWindow(title string, width, height int32, vsync bool) error {
	if !h.video {
		return errors.New("sdl: video subsystem not initialized")
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl: create window: %w", err)
	}

	var flags uint32 = sdl.RENDERER_ACCELERATED
	if vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		window.Destroy()
		return fmt.Errorf("sdl: create renderer: %w", err)
	}

	h.window = window
	h.renderer = renderer
	h.log.Infof("sdl: window %q opened (%dx%d, vsync=%t)", title, width, height, vsync)

	return h.fill(255, 255, 255)
}

// Devices lists connected joysticks. Gamepads are opened briefly to
// probe for a gyroscope.
func (h *Host) Devices() []Device {
	n := sdl.NumJoysticks()
	devices := make([]Device, 0, n)

	for i := 0; i < n; i++ {
		d := Device{Index: i, IsGamepad: sdl.IsGameController(i)}
		if d.IsGamepad {
			d.Name = sdl.GameControllerNameForIndex(i)
			if pad := sdl.GameControllerOpen(i); pad != nil {
				d.HasGyro = pad.HasSensor(sdl.SENSOR_GYRO)
				pad.Close()
			}
		} else {
			d.Name = sdl.JoystickNameForIndex(i)
		}
		devices = append(devices, d)
	}
	return devices
}

// OpenGamepad opens the first gamepad with a gyroscope and enables its
// sensor stream.
func (h *Host) OpenGamepad() (Device, error) {
	for _, d := range h.Devices() {
		h.log.Debugf("sdl: device %d %q gamepad=%t gyro=%t", d.Index, d.Name, d.IsGamepad, d.HasGyro)
		if !d.IsGamepad || !d.HasGyro {
			continue
		}

		pad := sdl.GameControllerOpen(d.Index)
		if pad == nil {
			return Device{}, fmt.Errorf("sdl: open gamepad %d: %w", d.Index, sdl.GetError())
		}
		if err := pad.SetSensorEnabled(sdl.SENSOR_GYRO, true); err != nil {
			pad.Close()
			return Device{}, fmt.Errorf("sdl: enable gyro on %q: %w", d.Name, err)
		}

		h.pad = pad
		h.log.Infof("sdl: gamepad %q opened, gyro enabled", d.Name)
		return d, nil
	}
	return Device{}, ErrNoGyroGamepad
}

// Drain pumps the platform queue and returns the recognised events in
// arrival order.
func (h *Host) Drain() []event.Event {
	sdl.PumpEvents()

	var out []event.Event
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		if ev, ok := decode(e); ok {
			out = append(out, ev)
		}
	}
	return out
}

// Present fills the window with the frame colour.
func (h *Host) Present(f display.Frame) error {
	return h.fill(f.Color.R, f.Color.G, f.Color.B)
}

func (h *Host) fill(r, g, b uint8) error {
	if h.renderer == nil {
		return nil
	}
	if err := h.renderer.SetDrawColor(r, g, b, 255); err != nil {
		return fmt.Errorf("sdl: set draw colour: %w", err)
	}
	if err := h.renderer.Clear(); err != nil {
		return fmt.Errorf("sdl: clear: %w", err)
	}
	h.renderer.Present()
	return nil
}

// Close releases the gamepad, the window and SDL itself.
func (h *Host) Close() {
	if h.pad != nil {
		h.pad.Close()
		h.pad = nil
	}
	if h.renderer != nil {
		h.renderer.Destroy()
		h.renderer = nil
	}
	if h.window != nil {
		h.window.Destroy()
		h.window = nil
	}
	sdl.Quit()
}

// decode maps an SDL event to its semantic event. Anything else is dropped.
func decode(e sdl.Event) (event.Event, bool) {
	switch e := e.(type) {
	case *sdl.QuitEvent:
		return event.Event{Kind: event.Quit}, true

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
			return event.Event{Kind: event.CancelKey}, true
		}

	case *sdl.ControllerButtonEvent:
		if e.Type == sdl.CONTROLLERBUTTONDOWN && sdl.GameControllerButton(e.Button) == sdl.CONTROLLER_BUTTON_A {
			return event.Event{Kind: event.ResetButton}, true
		}

	case *sdl.ControllerSensorEvent:
		if sdl.SensorType(e.Sensor) == sdl.SENSOR_GYRO {
			return event.Gyro(float64(e.Data[0]), float64(e.Data[1]), float64(e.Data[2])), true
		}
	}
	return event.Event{}, false
}
