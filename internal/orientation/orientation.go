// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

// Estimate is the running integral of gyroscope samples since the last reset.
// Components are unbounded; nothing wraps them at storage time.
type Estimate struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
}

// Sample is one angular-rate reading as delivered by the gyroscope,
// in the controller's axis order (pitch, yaw, roll).
type Sample struct {
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

// Scale holds the per-axis divisors applied to a Sample before it is added
// to the Estimate.
type Scale struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// DefaultScale is the calibration the colour mapping was tuned with.
var DefaultScale = Scale{Yaw: 10, Pitch: 300, Roll: 100}

// SampleSource is anything that can provide gyroscope samples over time:
// the mock source, a hardware IMU, etc.
type SampleSource interface {
	Next() (Sample, error)
}

// Accumulator owns the orientation estimate. It is not safe for concurrent
// use; the loop driver is its only caller.
type Accumulator struct {
	scale Scale
	est   Estimate
}

// NewAccumulator returns an accumulator with a zero estimate.
func NewAccumulator(scale Scale) *Accumulator {
	return &Accumulator{scale: scale}
}

// Update adds the scaled components of s to the running totals.
func (a *Accumulator) Update(s Sample) {
	a.est.Yaw += s.Yaw / a.scale.Yaw
	a.est.Pitch += s.Pitch / a.scale.Pitch
	a.est.Roll += s.Roll / a.scale.Roll
}

// Reset zeroes every component.
func (a *Accumulator) Reset() {
	a.est = Estimate{}
}

// Current returns a copy of the estimate.
func (a *Accumulator) Current() Estimate {
	return a.est
}
