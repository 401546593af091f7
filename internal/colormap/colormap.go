// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package colormap turns an orientation estimate into a colour.
//
// Yaw selects the hue, roll the saturation and pitch the lightness:
//
//	H = yaw mod 360 (Euclidean, always in [0, 360))
//	S = cos(roll)/2 + 0.5
//	L = (cos(pitch - π/2) + 1) / 2
package colormap

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/relabs-tech/gyro_hue/internal/orientation"
)

// HSL is a colour in hue (degrees), saturation and lightness ([0, 1]).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// FromEstimate derives the HSL triple for an orientation estimate.
func FromEstimate(e orientation.Estimate) HSL {
	return HSL{
		H: euclideanMod(e.Yaw, 360),
		S: math.Cos(e.Roll)/2 + 0.5,
		L: (math.Cos(e.Pitch-math.Pi/2) + 1) / 2,
	}
}

// RGBA converts to 8-bit RGB. Channels are truncated, not rounded.
func (h HSL) RGBA() color.RGBA {
	c := colorful.Hsl(h.H, h.S, h.L)
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: 0xFF,
	}
}

// Map is FromEstimate followed by RGBA.
func Map(e orientation.Estimate) color.RGBA {
	return FromEstimate(e).RGBA()
}

// Hex formats c as #RRGGBB.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// euclideanMod returns x mod m with the sign of m.
func euclideanMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// channel scales v from [0, 1] to a byte, truncating toward zero and
// saturating out-of-range input. NaN maps to 0.
func channel(v float64) uint8 {
	v *= 255
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
