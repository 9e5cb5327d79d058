package home

import (
	"fmt"
	"io"

	"home_patterns/internal/models"
)

// onOff is the shared state of Light and Fan. Transitions are idempotent but
// always reported.
type onOff struct {
	name    string
	status  Status
	console io.Writer
}

func newOnOff(name string, console io.Writer) onOff {
	return onOff{name: name, status: StatusOff, console: consoleOrStdout(console)}
}

func (s *onOff) Name() string   { return s.name }
func (s *onOff) Status() Status { return s.status }
func (s *onOff) IsOn() bool     { return s.status == StatusOn }

func (s *onOff) TurnOn() {
	if s.status == StatusOff {
		s.status = StatusOn
	}
	fmt.Fprintf(s.console, "The %s is on!\n", s.name)
}

func (s *onOff) TurnOff() {
	if s.status == StatusOn {
		s.status = StatusOff
	}
	fmt.Fprintf(s.console, "The %s is off!\n", s.name)
}

func (s *onOff) Snapshot() models.DeviceSnapshot {
	return models.DeviceSnapshot{Device: s.name, Status: string(s.status)}
}

// Light is a switchable lamp, OFF when created.
type Light struct {
	onOff
}

func NewLight(console io.Writer) *Light {
	return &Light{onOff: newOnOff(models.DeviceLight, console)}
}

// Fan is a switchable fan, OFF when created.
type Fan struct {
	onOff
}

func NewFan(console io.Writer) *Fan {
	return &Fan{onOff: newOnOff(models.DeviceFan, console)}
}
