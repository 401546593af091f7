// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Input backends.
const (
	InputGamepad = "gamepad"
	InputIMU     = "imu"
	InputMock    = "mock"
)

// Config holds all application configuration values.
type Config struct {
	// Logging
	LogLevel string
	LogDir   string

	// Input
	InputBackend   string // "gamepad", "imu" or "mock"
	ResetButtonPin string // GPIO name of an extra reset button, empty disables

	// Window
	WindowEnabled bool
	WindowTitle   string
	WindowWidth   int
	WindowHeight  int
	WindowVSync   bool

	// Timing
	FrameRateCap       int // frames per second, 0 = free-running
	ConsoleLogInterval int // milliseconds, 0 = console output off

	// IMU Hardware
	IMUSPIDevice string
	IMUCSPin     string
	// Gyroscope: 0=±250°/s, 1=±500°/s, 2=±1000°/s, 3=±2000°/s
	IMUGyroRange byte

	// OLED status panel
	PanelEnabled        bool
	PanelI2CBus         string
	PanelUpdateInterval int // milliseconds

	// LED strip
	StripEnabled   bool
	StripSPIDevice string
	StripNumPixels int
}

// Package-level state for the singleton: InitGlobal sets it once,
// Get reads it under the read lock.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:            "info",
		InputBackend:        InputGamepad,
		WindowEnabled:       true,
		WindowTitle:         "gyro hue",
		WindowWidth:         800,
		WindowHeight:        600,
		WindowVSync:         true,
		IMUSPIDevice:        "/dev/spidev0.0",
		IMUCSPin:            "8",
		PanelUpdateInterval: 250,
		StripSPIDevice:      "/dev/spidev0.1",
		StripNumPixels:      30,
	}
}

// Load reads the configuration file on top of Default. An empty path
// yields the defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		cfg := Default()
		return cfg, cfg.validate()
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads KEY=VALUE lines from r on top of Default.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	var err error

	switch key {
	// Logging
	case "LOG_LEVEL":
		c.LogLevel = value
	case "LOG_DIR":
		c.LogDir = value

	// Input
	case "INPUT_BACKEND":
		switch value {
		case InputGamepad, InputIMU, InputMock:
			c.InputBackend = value
		default:
			return fmt.Errorf("INPUT_BACKEND must be gamepad, imu or mock, got %q", value)
		}
	case "RESET_BUTTON_PIN":
		c.ResetButtonPin = value

	// Window
	case "WINDOW_ENABLED":
		c.WindowEnabled, err = parseBool(key, value)
	case "WINDOW_TITLE":
		c.WindowTitle = value
	case "WINDOW_WIDTH":
		c.WindowWidth, err = parseInt(key, value, 1, 16384)
	case "WINDOW_HEIGHT":
		c.WindowHeight, err = parseInt(key, value, 1, 16384)
	case "WINDOW_VSYNC":
		c.WindowVSync, err = parseBool(key, value)

	// Timing
	case "FRAME_RATE_CAP":
		c.FrameRateCap, err = parseInt(key, value, 0, 1000)
	case "CONSOLE_LOG_INTERVAL":
		c.ConsoleLogInterval, err = parseInt(key, value, 0, 3_600_000)

	// IMU Hardware
	case "IMU_SPI_DEVICE":
		c.IMUSPIDevice = value
	case "IMU_CS_PIN":
		c.IMUCSPin = value
	case "IMU_GYRO_RANGE":
		rangeVal, perr := strconv.Atoi(value)
		if perr != nil {
			return fmt.Errorf("invalid IMU_GYRO_RANGE %q: %w", value, perr)
		}
		if rangeVal < 0 || rangeVal > 3 {
			return fmt.Errorf("IMU_GYRO_RANGE must be 0-3 (0=±250°/s, 1=±500°/s, 2=±1000°/s, 3=±2000°/s), got %d", rangeVal)
		}
		c.IMUGyroRange = byte(rangeVal)

	// OLED status panel
	case "PANEL_ENABLED":
		c.PanelEnabled, err = parseBool(key, value)
	case "PANEL_I2C_BUS":
		c.PanelI2CBus = value
	case "PANEL_UPDATE_INTERVAL":
		c.PanelUpdateInterval, err = parseInt(key, value, 1, 60_000)

	// LED strip
	case "STRIP_ENABLED":
		c.StripEnabled, err = parseBool(key, value)
	case "STRIP_SPI_DEVICE":
		c.StripSPIDevice = value
	case "STRIP_NUM_PIXELS":
		c.StripNumPixels, err = parseInt(key, value, 1, 4096)

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return err
}

func parseInt(key, value string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%s must be %d-%d, got %d", key, lo, hi, n)
	}
	return n, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}

// validate checks that the combination of settings can run.
func (c *Config) validate() error {
	if !c.WindowEnabled && !c.PanelEnabled && !c.StripEnabled && c.ConsoleLogInterval == 0 {
		return fmt.Errorf("no output enabled: set WINDOW_ENABLED, PANEL_ENABLED, STRIP_ENABLED or CONSOLE_LOG_INTERVAL")
	}
	if c.InputBackend == InputIMU {
		if c.IMUSPIDevice == "" {
			return fmt.Errorf("IMU_SPI_DEVICE is required for INPUT_BACKEND=imu")
		}
		if c.IMUCSPin == "" {
			return fmt.Errorf("IMU_CS_PIN is required for INPUT_BACKEND=imu")
		}
	}
	if c.StripEnabled && c.StripSPIDevice == "" {
		return fmt.Errorf("STRIP_SPI_DEVICE is required when STRIP_ENABLED")
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Only the first call has any effect.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance, or nil before InitGlobal.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
