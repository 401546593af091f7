// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"os"
	"syscall"
	"time"

	"github.com/relabs-tech/gyro_hue/internal/display"
	"github.com/relabs-tech/gyro_hue/internal/event"
	"github.com/relabs-tech/gyro_hue/internal/logging"
	"github.com/relabs-tech/gyro_hue/internal/loop"
	"github.com/relabs-tech/gyro_hue/internal/orientation"
)

// RunMockConsole drives the loop from the mock gyro and logs the colour
// every interval. It needs no window and no hardware; Ctrl+C stops it.
func RunMockConsole(log logging.Logger, interval time.Duration) error {
	signals := event.NewSignalSource(os.Interrupt, syscall.SIGTERM)
	defer signals.Stop()

	src := event.Merge(event.FromSamples(orientation.NewMockSource(), log), signals)

	l := loop.New(
		src,
		display.NewConsole(log, interval),
		orientation.NewAccumulator(orientation.DefaultScale),
		log,
		loop.Options{FrameRateCap: 100},
	)
	return l.Run()
}
