package imu

import (
	"math"

	"github.com/relabs-tech/gyro_hue/internal/orientation"
)

// GyroRaw is a single raw gyroscope reading in sensor counts.
type GyroRaw struct {
	Gx int16 `json:"gx"`
	Gy int16 `json:"gy"`
	Gz int16 `json:"gz"`
}

// GyroSensitivity returns LSB per °/s for an MPU9250 full-scale range
// setting (0=±250°/s, 1=±500°/s, 2=±1000°/s, 3=±2000°/s).
func GyroSensitivity(gyroRange byte) float64 {
	switch gyroRange {
	case 1:
		return 65.5
	case 2:
		return 32.8
	case 3:
		return 16.4
	default:
		return 131.0
	}
}

// GyroFullScale returns the full-scale rate in °/s for a range setting,
// and false when the setting is not one of 0-3.
func GyroFullScale(gyroRange byte) (int, bool) {
	switch gyroRange {
	case 0:
		return 250, true
	case 1:
		return 500, true
	case 2:
		return 1000, true
	case 3:
		return 2000, true
	}
	return 0, false
}

// Sample converts the reading to rad/s in controller axis order:
// X is pitch, Y is yaw and Z is roll.
func (g GyroRaw) Sample(gyroRange byte) orientation.Sample {
	k := math.Pi / 180 / GyroSensitivity(gyroRange)
	return orientation.Sample{
		Pitch: float64(g.Gx) * k,
		Yaw:   float64(g.Gy) * k,
		Roll:  float64(g.Gz) * k,
	}
}
