// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package loop

import (
	"time"

	"github.com/relabs-tech/gyro_hue/internal/display"
	"github.com/relabs-tech/gyro_hue/internal/event"
	"github.com/relabs-tech/gyro_hue/internal/logging"
	"github.com/relabs-tech/gyro_hue/internal/orientation"
)

// Options tunes the loop.
type Options struct {
	// FrameRateCap limits ticks per second; 0 runs as fast as the
	// presenters allow.
	FrameRateCap int
}

// Loop drains input, applies it to the accumulator and presents one
// frame per tick, all on the calling goroutine.
type Loop struct {
	src  event.Source
	out  display.Presenter
	acc  *orientation.Accumulator
	log  logging.Logger
	opts Options

	sleep func(time.Duration)
	now   func() time.Time
}

// New builds a loop around acc.
func New(src event.Source, out display.Presenter, acc *orientation.Accumulator, log logging.Logger, opts Options) *Loop {
	return &Loop{
		src:   src,
		out:   out,
		acc:   acc,
		log:   log,
		opts:  opts,
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// Tick processes the pending events in order, then presents the result.
// It returns false once a quit or cancel event is seen; nothing is
// presented on that tick.
func (l *Loop) Tick() (bool, error) {
	for _, ev := range l.src.Drain() {
		switch ev.Kind {
		case event.Quit, event.CancelKey:
			l.log.Infof("loop: %s received, stopping", ev.Kind)
			return false, nil
		case event.ResetButton:
			l.acc.Reset()
			l.log.Debugf("loop: orientation reset")
		case event.GyroSample:
			l.acc.Update(ev.Sample)
		}
	}

	if err := l.out.Present(display.NewFrame(l.acc.Current())); err != nil {
		return false, err
	}
	return true, nil
}

// Run ticks until a stop event or a presenter failure.
func (l *Loop) Run() error {
	var period time.Duration
	if l.opts.FrameRateCap > 0 {
		period = time.Second / time.Duration(l.opts.FrameRateCap)
	}

	frames := 0
	for {
		start := l.now()

		running, err := l.Tick()
		if err != nil {
			return err
		}
		if !running {
			l.log.Infof("loop: stopped after %d frames", frames)
			return nil
		}
		frames++

		if period > 0 {
			if rest := period - l.now().Sub(start); rest > 0 {
				l.sleep(rest)
			}
		}
	}
}
