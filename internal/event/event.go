// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package event

import (
	"os"
	"os/signal"

	"github.com/relabs-tech/gyro_hue/internal/logging"
	"github.com/relabs-tech/gyro_hue/internal/orientation"
)

// Kind identifies a semantic input event.
type Kind int

const (
	Quit Kind = iota
	CancelKey
	ResetButton
	GyroSample
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case CancelKey:
		return "cancel-key"
	case ResetButton:
		return "reset-button"
	case GyroSample:
		return "gyro-sample"
	}
	return "unknown"
}

// Event is one decoded input. Sample is only meaningful for GyroSample.
type Event struct {
	Kind   Kind
	Sample orientation.Sample
}

// Gyro builds a GyroSample event.
func Gyro(pitch, yaw, roll float64) Event {
	return Event{Kind: GyroSample, Sample: orientation.Sample{Pitch: pitch, Yaw: yaw, Roll: roll}}
}

// Source yields the events that arrived since the previous call, in the
// order they were generated. Drain never blocks.
type Source interface {
	Drain() []Event
}

// SourceFunc adapts a function to Source.
type SourceFunc func() []Event

func (f SourceFunc) Drain() []Event { return f() }

type merged []Source

// Merge drains every source in turn and concatenates their events.
func Merge(sources ...Source) Source {
	return merged(sources)
}

func (m merged) Drain() []Event {
	var out []Event
	for _, s := range m {
		out = append(out, s.Drain()...)
	}
	return out
}

type sampleSource struct {
	src orientation.SampleSource
	log logging.Logger
}

// FromSamples polls src once per drain and wraps the reading as a
// GyroSample. Failed reads are skipped.
func FromSamples(src orientation.SampleSource, log logging.Logger) Source {
	return &sampleSource{src: src, log: log}
}

func (s *sampleSource) Drain() []Event {
	sample, err := s.src.Next()
	if err != nil {
		s.log.Debugf("event: sample read skipped: %v", err)
		return nil
	}
	return []Event{{Kind: GyroSample, Sample: sample}}
}

// SignalSource turns OS signals into Quit events.
type SignalSource struct {
	ch chan os.Signal
}

// NewSignalSource subscribes to sigs (interrupt when none are given).
func NewSignalSource(sigs ...os.Signal) *SignalSource {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt}
	}
	s := &SignalSource{ch: make(chan os.Signal, 1)}
	signal.Notify(s.ch, sigs...)
	return s
}

func (s *SignalSource) Drain() []Event {
	select {
	case <-s.ch:
		return []Event{{Kind: Quit}}
	default:
		return nil
	}
}

// Stop unsubscribes from signal delivery.
func (s *SignalSource) Stop() {
	signal.Stop(s.ch)
}
