// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"math"
	"time"
)

type mockSource struct {
	start time.Time
	now   func() time.Time
}

// NewMockSource creates a mock gyroscope that generates smoothly changing
// angular rates, enough to sweep the hue wheel without hardware.
func NewMockSource() SampleSource {
	return newMockSource(time.Now)
}

func newMockSource(now func() time.Time) *mockSource {
	return &mockSource{start: now(), now: now}
}

func (m *mockSource) Next() (Sample, error) {
	elapsed := m.now().Sub(m.start).Seconds()

	return Sample{
		Pitch: 3 * math.Sin(elapsed*0.5),
		Yaw:   2 + math.Cos(elapsed*0.3),
		Roll:  math.Sin(elapsed * 0.7),
	}, nil
}
