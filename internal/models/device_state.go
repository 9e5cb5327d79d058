package models

import "time"

// Device names used as snapshot keys.
const (
	DeviceThermostat = "thermostat"
	DeviceLight      = "light"
	DeviceFan        = "fan"
)

// DeviceSnapshot is the latest known state of one receiver.
type DeviceSnapshot struct {
	Device       string    `json:"device"`
	Status       string    `json:"status,omitempty"`        // ON | OFF, switch devices only
	TemperatureC *float64  `json:"temperature_c,omitempty"` // °C, thermostat only
	UpdatedAt    time.Time `json:"updated_at"`
}
