// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"fmt"
	"image/color"
	"io"
)

// LEDStrip fills every pixel of an addressable strip with the frame colour.
// The writer takes packed RGB triplets, as *nrzled.Dev does.
type LEDStrip struct {
	w      io.Writer
	buf    []byte
	last   color.RGBA
	primed bool
}

// NewLEDStrip returns a strip presenter for a strip of the given length.
func NewLEDStrip(w io.Writer, pixels int) *LEDStrip {
	return &LEDStrip{w: w, buf: make([]byte, 3*pixels)}
}

func (s *LEDStrip) Present(f Frame) error {
	if s.primed && f.Color == s.last {
		return nil
	}
	for i := 0; i < len(s.buf); i += 3 {
		s.buf[i] = f.Color.R
		s.buf[i+1] = f.Color.G
		s.buf[i+2] = f.Color.B
	}
	if _, err := s.w.Write(s.buf); err != nil {
		return fmt.Errorf("display: strip write: %w", err)
	}
	s.last = f.Color
	s.primed = true
	return nil
}
