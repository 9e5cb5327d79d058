package home

import (
	"fmt"
	"io"
	"strconv"

	"home_patterns/internal/models"
)

// Thermostat holds an unbounded temperature in °C.
type Thermostat struct {
	temperature float64
	console     io.Writer
}

// NewThermostat returns a thermostat at 0°C.
func NewThermostat(console io.Writer) *Thermostat {
	return NewThermostatAt(console, 0)
}

// NewThermostatAt returns a thermostat at the given temperature.
func NewThermostatAt(console io.Writer, initialC float64) *Thermostat {
	return &Thermostat{temperature: initialC, console: consoleOrStdout(console)}
}

func (t *Thermostat) Temperature() float64 { return t.temperature }

// ChangeTemperature adds step (negative to cool) and reports the new value.
func (t *Thermostat) ChangeTemperature(step float64) {
	t.temperature += step
	fmt.Fprintf(t.console, "Thermostat temperature is at %s°C\n", FormatCelsius(t.temperature))
}

func (t *Thermostat) Snapshot() models.DeviceSnapshot {
	temp := t.temperature
	return models.DeviceSnapshot{Device: models.DeviceThermostat, TemperatureC: &temp}
}

// FormatCelsius renders a temperature in plain decimal notation, never with
// an exponent: 5, 2.5, 1000000.
func FormatCelsius(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
