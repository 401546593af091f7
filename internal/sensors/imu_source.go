// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/devices/v3/mpu9250"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/gyro_hue/internal/imu"
	"github.com/relabs-tech/gyro_hue/internal/logging"
	"github.com/relabs-tech/gyro_hue/internal/orientation"
)

// gyroDevice is the part of *mpu9250.MPU9250 the source reads from.
type gyroDevice interface {
	GetRotationX() (int16, error)
	GetRotationY() (int16, error)
	GetRotationZ() (int16, error)
}

// IMU reads angular rates from an MPU9250 and serves them as
// orientation samples.
type IMU struct {
	dev       gyroDevice
	gyroRange byte
}

var (
	_ orientation.SampleSource = (*IMU)(nil)
	_ gyroDevice               = (*mpu9250.MPU9250)(nil)
)

// NewIMU initializes an MPU9250 over SPI with chip select on csPin.
func NewIMU(spiDev, csPin string, gyroRange byte, log logging.Logger) (*IMU, error) {
	fullScale, ok := imu.GyroFullScale(gyroRange)
	if !ok {
		return nil, fmt.Errorf("imu: gyro range must be 0-3, got %d", gyroRange)
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("imu: periph host init: %w", err)
	}

	cs := gpioreg.ByName(csPin)
	if cs == nil {
		return nil, fmt.Errorf("imu: CS pin %q not found", csPin)
	}

	tr, err := mpu9250.NewSpiTransport(spiDev, cs)
	if err != nil {
		return nil, fmt.Errorf("imu: SPI transport (%s): %w", spiDev, err)
	}

	dev, err := mpu9250.New(*tr)
	if err != nil {
		return nil, fmt.Errorf("imu: device creation: %w", err)
	}

	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("imu: initialization: %w", err)
	}

	if err := dev.SetGyroRange(gyroRange); err != nil {
		return nil, fmt.Errorf("imu: set gyro range: %w", err)
	}
	log.Infof("imu: gyroscope range set to %d (±%d°/s)", gyroRange, fullScale)

	// Calibration only trims bias; run without it if it fails.
	if err := dev.Calibrate(); err != nil {
		log.Warnf("imu: calibration failed: %v", err)
	} else {
		log.Infof("imu: calibration complete")
	}

	return &IMU{dev: dev, gyroRange: gyroRange}, nil
}

// ReadRaw reads the three gyroscope axes.
func (s *IMU) ReadRaw() (imu.GyroRaw, error) {
	gx, err := s.dev.GetRotationX()
	if err != nil {
		return imu.GyroRaw{}, fmt.Errorf("imu: gyro X: %w", err)
	}
	gy, err := s.dev.GetRotationY()
	if err != nil {
		return imu.GyroRaw{}, fmt.Errorf("imu: gyro Y: %w", err)
	}
	gz, err := s.dev.GetRotationZ()
	if err != nil {
		return imu.GyroRaw{}, fmt.Errorf("imu: gyro Z: %w", err)
	}
	return imu.GyroRaw{Gx: gx, Gy: gy, Gz: gz}, nil
}

// Next implements orientation.SampleSource.
func (s *IMU) Next() (orientation.Sample, error) {
	raw, err := s.ReadRaw()
	if err != nil {
		return orientation.Sample{}, err
	}
	return raw.Sample(s.gyroRange), nil
}
