// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"fmt"
	"image"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/relabs-tech/gyro_hue/internal/colormap"
)

// PanelDevice is the drawing surface of a monochrome OLED; *ssd1306.Dev
// satisfies it.
type PanelDevice interface {
	Bounds() image.Rectangle
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
}

// StatusPanel renders a text readout of the frame on a 128x64 OLED.
// I²C transfers are slow, so redraws are throttled.
type StatusPanel struct {
	dev PanelDevice
	throttle
}

// NewStatusPanel returns a panel presenter redrawing at most once per interval.
func NewStatusPanel(dev PanelDevice, interval time.Duration) *StatusPanel {
	return &StatusPanel{dev: dev, throttle: throttle{interval: interval, now: time.Now}}
}

func (p *StatusPanel) Present(f Frame) error {
	if !p.ready() {
		return nil
	}
	img := renderStatus(f)
	if err := p.dev.Draw(p.dev.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("display: panel draw: %w", err)
	}
	return nil
}

// ShowSplash draws the start-up screen.
func ShowSplash(dev PanelDevice) error {
	img, drawer := newCanvas()

	drawer.Dot = fixed.P(25, 26)
	drawer.DrawString("Gyro Hue")

	drawer.Dot = fixed.P(5, 43)
	drawer.DrawString("Tilt to paint")

	return dev.Draw(dev.Bounds(), img, image.Point{})
}

func renderStatus(f Frame) *image1bit.VerticalLSB {
	img, drawer := newCanvas()

	drawer.Dot = fixed.P(0, 13)
	drawer.DrawString(fmt.Sprintf("Y: %8.1f", f.Estimate.Yaw))

	drawer.Dot = fixed.P(0, 26)
	drawer.DrawString(fmt.Sprintf("P: %8.2f", f.Estimate.Pitch))

	drawer.Dot = fixed.P(0, 39)
	drawer.DrawString(fmt.Sprintf("R: %8.2f", f.Estimate.Roll))

	drawer.Dot = fixed.P(0, 52)
	drawer.DrawString(fmt.Sprintf("%s H%3.0f", colormap.Hex(f.Color), f.HSL.H))

	return img
}

func newCanvas() (*image1bit.VerticalLSB, *font.Drawer) {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}
	return img, drawer
}
