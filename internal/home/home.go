// Package home holds the receivers mutated by remote commands: a thermostat
// and two on/off switches (light and fan). Every mutation prints a status line
// to the receiver's console.
package home

import (
	"io"
	"os"
	"time"

	"home_patterns/internal/models"
)

// Status is the on/off state of a switch device.
type Status string

const (
	StatusOn  Status = "ON"
	StatusOff Status = "OFF"
)

func consoleOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// Devices bundles the three receivers a remote can drive.
type Devices struct {
	Thermostat *Thermostat
	Light      *Light
	Fan        *Fan
}

// NewDevices creates a thermostat at initialC plus a light and a fan, all OFF,
// sharing one console.
func NewDevices(console io.Writer, initialC float64) *Devices {
	return &Devices{
		Thermostat: NewThermostatAt(console, initialC),
		Light:      NewLight(console),
		Fan:        NewFan(console),
	}
}

// Snapshots returns the current state of every device, stamped with now.
func (d *Devices) Snapshots(now time.Time) []models.DeviceSnapshot {
	out := []models.DeviceSnapshot{
		d.Thermostat.Snapshot(),
		d.Light.Snapshot(),
		d.Fan.Snapshot(),
	}
	for i := range out {
		out[i].UpdatedAt = now.UTC()
	}
	return out
}
