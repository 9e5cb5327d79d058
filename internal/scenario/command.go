// Package scenario holds the scripted demo runs for each pattern. The runs
// double as acceptance checks: tests assert on their results and output.
package scenario

import (
	"context"
	"fmt"

	"home_patterns/internal/home"
	"home_patterns/internal/remote"
	"home_patterns/internal/service"
)

// CommandResult is the state left behind by a command run.
type CommandResult struct {
	TemperatureC float64     `yaml:"temperature_c"`
	Light        home.Status `yaml:"light"`
	Fan          home.Status `yaml:"fan"`
	Executed     []string    `yaml:"executed"`
	Undone       []string    `yaml:"undone"`
}

func resultOf(ctl service.Remote, d *home.Devices) CommandResult {
	return CommandResult{
		TemperatureC: d.Thermostat.Temperature(),
		Light:        d.Light.Status(),
		Fan:          d.Fan.Status(),
		Executed:     ctl.History(),
		Undone:       ctl.Undone(),
	}
}

// runner sequences remote calls and stops at the first real failure. Empty
// history on undo/redo is informational and does not stop the run.
type runner struct {
	ctx context.Context
	ctl service.Remote
	err error
}

func (r *runner) bind(cmd remote.Command) {
	if r.err == nil {
		r.ctl.SetCommand(cmd)
	}
}

func (r *runner) do(op func(context.Context) error) {
	if r.err != nil {
		return
	}
	if err := op(r.ctx); err != nil && !remote.IsEmptyHistory(err) {
		r.err = err
	}
}

func (r *runner) execute() { r.do(r.ctl.Execute) }
func (r *runner) undo()    { r.do(r.ctl.Undo) }
func (r *runner) redo()    { r.do(r.ctl.Redo) }

// RunCommand replays the home automation sequence:
// +5, +5, undo, redo, redo (nothing to redo), light on, undo, undo,
// fan on, undo, redo, fan off.
func RunCommand(ctx context.Context, ctl service.Remote, d *home.Devices) (CommandResult, error) {
	warmer, err := remote.NewIncreaseTemperature(d.Thermostat, 5)
	if err != nil {
		return CommandResult{}, err
	}
	lightOn, err := remote.NewTurnOnLight(d.Light)
	if err != nil {
		return CommandResult{}, err
	}
	fanOn, err := remote.NewTurnOnFan(d.Fan)
	if err != nil {
		return CommandResult{}, err
	}
	fanOff, err := remote.NewTurnOffFan(d.Fan)
	if err != nil {
		return CommandResult{}, err
	}

	r := &runner{ctx: ctx, ctl: ctl}

	r.bind(warmer)
	r.execute()
	r.execute()
	r.undo()
	r.redo()
	r.redo()

	r.bind(lightOn)
	r.execute()
	r.undo()
	r.undo()

	r.bind(fanOn)
	r.execute()
	r.undo()
	r.redo()

	r.bind(fanOff)
	r.execute()

	if r.err != nil {
		return resultOf(ctl, d), fmt.Errorf("command scenario: %w", r.err)
	}
	return resultOf(ctl, d), nil
}
