package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, InputGamepad, cfg.InputBackend)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 600, cfg.WindowHeight)
	assert.Equal(t, 0, cfg.FrameRateCap)
}

func TestLoadFile(t *testing.T) {
	content := `
# headless Pi with a hardware IMU
LOG_LEVEL=debug
INPUT_BACKEND = imu
IMU_SPI_DEVICE=/dev/spidev6.0
IMU_CS_PIN=18
IMU_GYRO_RANGE=2
RESET_BUTTON_PIN=GPIO17

WINDOW_ENABLED=false
PANEL_ENABLED=true
PANEL_I2C_BUS=1
PANEL_UPDATE_INTERVAL=500
STRIP_ENABLED=true
STRIP_NUM_PIXELS=60
FRAME_RATE_CAP=60
CONSOLE_LOG_INTERVAL=1000
`
	path := filepath.Join(t.TempDir(), "gyrohue_config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, InputIMU, cfg.InputBackend)
	assert.Equal(t, "/dev/spidev6.0", cfg.IMUSPIDevice)
	assert.Equal(t, "18", cfg.IMUCSPin)
	assert.Equal(t, byte(2), cfg.IMUGyroRange)
	assert.Equal(t, "GPIO17", cfg.ResetButtonPin)
	assert.False(t, cfg.WindowEnabled)
	assert.True(t, cfg.PanelEnabled)
	assert.Equal(t, "1", cfg.PanelI2CBus)
	assert.Equal(t, 500, cfg.PanelUpdateInterval)
	assert.True(t, cfg.StripEnabled)
	assert.Equal(t, 60, cfg.StripNumPixels)
	assert.Equal(t, "/dev/spidev0.1", cfg.StripSPIDevice, "unset keys keep their default")
	assert.Equal(t, 60, cfg.FrameRateCap)
	assert.Equal(t, 1000, cfg.ConsoleLogInterval)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "missing equals", content: "WINDOW_WIDTH 800", wantErr: "invalid config line 1"},
		{name: "unknown key", content: "MQTT_BROKER=tcp://localhost:1883", wantErr: "unknown config key"},
		{name: "bad backend", content: "INPUT_BACKEND=joystick", wantErr: "INPUT_BACKEND must be"},
		{name: "bad int", content: "WINDOW_WIDTH=wide", wantErr: "invalid WINDOW_WIDTH"},
		{name: "int out of range", content: "WINDOW_HEIGHT=0", wantErr: "WINDOW_HEIGHT must be 1-16384"},
		{name: "bad bool", content: "WINDOW_VSYNC=maybe", wantErr: "invalid WINDOW_VSYNC"},
		{name: "gyro range", content: "IMU_GYRO_RANGE=4", wantErr: "IMU_GYRO_RANGE must be 0-3"},
		{name: "line number", content: "# c\n\nFRAME_RATE_CAP=-1", wantErr: "config line 3"},
		{name: "no output", content: "WINDOW_ENABLED=false", wantErr: "no output enabled"},
		{name: "imu without device", content: "INPUT_BACKEND=imu\nIMU_SPI_DEVICE=", wantErr: "IMU_SPI_DEVICE is required"},
		{name: "strip without device", content: "STRIP_ENABLED=true\nSTRIP_SPI_DEVICE=", wantErr: "STRIP_SPI_DEVICE is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}

func TestHeadlessConsoleIsValid(t *testing.T) {
	cfg, err := Parse(strings.NewReader("WINDOW_ENABLED=false\nINPUT_BACKEND=mock\nCONSOLE_LOG_INTERVAL=100"))
	require.NoError(t, err)
	assert.Equal(t, InputMock, cfg.InputBackend)
}
