// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"image/color"
	"time"

	"github.com/relabs-tech/gyro_hue/internal/colormap"
	"github.com/relabs-tech/gyro_hue/internal/logging"
	"github.com/relabs-tech/gyro_hue/internal/orientation"
)

// Frame is everything a presenter may show for one tick. It is derived
// from the estimate and never kept between ticks.
type Frame struct {
	Estimate orientation.Estimate
	HSL      colormap.HSL
	Color    color.RGBA
}

// NewFrame maps e to its colour.
func NewFrame(e orientation.Estimate) Frame {
	hsl := colormap.FromEstimate(e)
	return Frame{Estimate: e, HSL: hsl, Color: hsl.RGBA()}
}

// Presenter shows a frame. An error means the output is broken for good.
type Presenter interface {
	Present(f Frame) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Frame) error

func (p PresenterFunc) Present(f Frame) error { return p(f) }

type multi []Presenter

// Multi presents to each presenter in order and stops at the first error.
func Multi(presenters ...Presenter) Presenter {
	return multi(presenters)
}

func (m multi) Present(f Frame) error {
	for _, p := range m {
		if err := p.Present(f); err != nil {
			return err
		}
	}
	return nil
}

// throttle lets an action through at most once per interval.
type throttle struct {
	interval time.Duration
	now      func() time.Time
	last     time.Time
}

func (t *throttle) ready() bool {
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Console logs the current frame, at most once per interval.
type Console struct {
	log logging.Logger
	throttle
}

// NewConsole returns a console presenter.
func NewConsole(log logging.Logger, interval time.Duration) *Console {
	return &Console{log: log, throttle: throttle{interval: interval, now: time.Now}}
}

func (c *Console) Present(f Frame) error {
	if !c.ready() {
		return nil
	}
	c.log.Infof(
		"YAW=%8.2f  PITCH=%6.2f  ROLL=%6.2f  H=%6.2f S=%4.2f L=%4.2f  %s",
		f.Estimate.Yaw, f.Estimate.Pitch, f.Estimate.Roll,
		f.HSL.H, f.HSL.S, f.HSL.L,
		colormap.Hex(f.Color),
	)
	return nil
}
