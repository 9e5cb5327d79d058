package remote

import (
	"home_patterns/internal/home"

	"github.com/google/uuid"
)

// Command is a reversible action on one receiver.
type Command interface {
	// Execute applies the forward effect.
	Execute()
	// Undo applies the inverse effect.
	Undo()
	// ID is unique per constructed command.
	ID() string
	Kind() Kind
	Description() string
}

// Kind tags the closed set of command variants.
type Kind string

const (
	KindIncreaseTemperature Kind = "increase_temperature"
	KindDecreaseTemperature Kind = "decrease_temperature"
	KindTurnOnLight         Kind = "turn_on_light"
	KindTurnOffLight        Kind = "turn_off_light"
	KindTurnOnFan           Kind = "turn_on_fan"
	KindTurnOffFan          Kind = "turn_off_fan"
)

// temperatureCommand shifts a thermostat by sign*step.
type temperatureCommand struct {
	id       string
	kind     Kind
	receiver *home.Thermostat
	step     float64
	sign     float64
}

func newTemperatureCommand(kind Kind, t *home.Thermostat, step, sign float64) (*temperatureCommand, error) {
	if t == nil {
		return nil, &ValidationError{Field: "receiver", Err: ErrNilReceiver}
	}
	// NaN fails this comparison too.
	if !(step > 0) {
		return nil, &ValidationError{Field: "step", Value: step, Err: ErrInvalidStep}
	}
	return &temperatureCommand{
		id:       uuid.NewString(),
		kind:     kind,
		receiver: t,
		step:     step,
		sign:     sign,
	}, nil
}

// NewIncreaseTemperature raises the thermostat by step on Execute.
func NewIncreaseTemperature(t *home.Thermostat, step float64) (Command, error) {
	c, err := newTemperatureCommand(KindIncreaseTemperature, t, step, 1)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewDecreaseTemperature lowers the thermostat by step on Execute.
func NewDecreaseTemperature(t *home.Thermostat, step float64) (Command, error) {
	c, err := newTemperatureCommand(KindDecreaseTemperature, t, step, -1)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *temperatureCommand) Execute() { c.receiver.ChangeTemperature(c.sign * c.step) }

func (c *temperatureCommand) Undo() { c.receiver.ChangeTemperature(-c.sign * c.step) }

func (c *temperatureCommand) ID() string { return c.id }

func (c *temperatureCommand) Kind() Kind { return c.kind }

func (c *temperatureCommand) Description() string {
	if c.sign > 0 {
		return "increase thermostat by " + home.FormatCelsius(c.step) + "°C"
	}
	return "decrease thermostat by " + home.FormatCelsius(c.step) + "°C"
}

// switchable is satisfied by home.Light and home.Fan.
type switchable interface {
	Name() string
	TurnOn()
	TurnOff()
}

// switchCommand turns a device on or off. Undo always switches the opposite
// way, even when Execute found the device already in the target state.
type switchCommand struct {
	id       string
	kind     Kind
	receiver switchable
	on       bool
}

func newSwitchCommand(kind Kind, s switchable, on bool) *switchCommand {
	return &switchCommand{id: uuid.NewString(), kind: kind, receiver: s, on: on}
}

func (c *switchCommand) Execute() {
	if c.on {
		c.receiver.TurnOn()
		return
	}
	c.receiver.TurnOff()
}

func (c *switchCommand) Undo() {
	if c.on {
		c.receiver.TurnOff()
		return
	}
	c.receiver.TurnOn()
}

func (c *switchCommand) ID() string { return c.id }
func (c *switchCommand) Kind() Kind { return c.kind }

func (c *switchCommand) Description() string {
	if c.on {
		return "turn on " + c.receiver.Name()
	}
	return "turn off " + c.receiver.Name()
}

func nilReceiver() error {
	return &ValidationError{Field: "receiver", Err: ErrNilReceiver}
}

func NewTurnOnLight(l *home.Light) (Command, error) {
	if l == nil {
		return nil, nilReceiver()
	}
	return newSwitchCommand(KindTurnOnLight, l, true), nil
}

func NewTurnOffLight(l *home.Light) (Command, error) {
	if l == nil {
		return nil, nilReceiver()
	}
	return newSwitchCommand(KindTurnOffLight, l, false), nil
}

func NewTurnOnFan(f *home.Fan) (Command, error) {
	if f == nil {
		return nil, nilReceiver()
	}
	return newSwitchCommand(KindTurnOnFan, f, true), nil
}

func NewTurnOffFan(f *home.Fan) (Command, error) {
	if f == nil {
		return nil, nilReceiver()
	}
	return newSwitchCommand(KindTurnOffFan, f, false), nil
}
