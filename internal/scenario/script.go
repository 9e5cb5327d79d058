package scenario

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"home_patterns/internal/home"
	"home_patterns/internal/remote"
	"home_patterns/internal/service"
)

var ErrUnknownStep = errors.New("unknown step")

// Step is one parsed remote script token.
type Step struct {
	Op    string  // "bind", "again", "undo", "redo"
	Kind  remote.Kind
	Value float64 // temperature step for thermostat binds
	Raw   string
}

// ParseSteps parses script tokens:
//
//	+N / -N          bind increase/decrease by N and execute
//	light:on|off     bind the light command and execute
//	fan:on|off       bind the fan command and execute
//	again            execute the bound command once more
//	undo, redo
func ParseSteps(tokens []string) ([]Step, error) {
	steps := make([]Step, 0, len(tokens))
	for _, tok := range tokens {
		st, err := parseStep(tok)
		if err != nil {
			return nil, err
		}
		steps = append(steps, st)
	}
	return steps, nil
}

var switchKinds = map[string]remote.Kind{
	"light:on":  remote.KindTurnOnLight,
	"light:off": remote.KindTurnOffLight,
	"fan:on":    remote.KindTurnOnFan,
	"fan:off":   remote.KindTurnOffFan,
}

func parseStep(tok string) (Step, error) {
	t := strings.ToLower(strings.TrimSpace(tok))
	switch t {
	case "undo", "redo", "again":
		return Step{Op: t, Raw: tok}, nil
	}
	if kind, ok := switchKinds[t]; ok {
		return Step{Op: "bind", Kind: kind, Raw: tok}, nil
	}
	if strings.HasPrefix(t, "+") || strings.HasPrefix(t, "-") {
		v, err := strconv.ParseFloat(t[1:], 64)
		if err != nil {
			return Step{}, fmt.Errorf("%w %q: %v", ErrUnknownStep, tok, err)
		}
		kind := remote.KindIncreaseTemperature
		if t[0] == '-' {
			kind = remote.KindDecreaseTemperature
		}
		return Step{Op: "bind", Kind: kind, Value: v, Raw: tok}, nil
	}
	return Step{}, fmt.Errorf("%w %q", ErrUnknownStep, tok)
}

// Build constructs the command a bind step names against d.
func Build(st Step, d *home.Devices) (remote.Command, error) {
	switch st.Kind {
	case remote.KindIncreaseTemperature:
		return remote.NewIncreaseTemperature(d.Thermostat, st.Value)
	case remote.KindDecreaseTemperature:
		return remote.NewDecreaseTemperature(d.Thermostat, st.Value)
	case remote.KindTurnOnLight:
		return remote.NewTurnOnLight(d.Light)
	case remote.KindTurnOffLight:
		return remote.NewTurnOffLight(d.Light)
	case remote.KindTurnOnFan:
		return remote.NewTurnOnFan(d.Fan)
	case remote.KindTurnOffFan:
		return remote.NewTurnOffFan(d.Fan)
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrUnknownStep, st.Kind)
	}
}

// RunSteps plays steps against ctl. Construction errors (such as a zero
// step) abort before anything runs.
func RunSteps(ctx context.Context, ctl service.Remote, d *home.Devices, steps []Step) (CommandResult, error) {
	cmds := make([]remote.Command, len(steps))
	for i, st := range steps {
		if st.Op != "bind" {
			continue
		}
		cmd, err := Build(st, d)
		if err != nil {
			return resultOf(ctl, d), fmt.Errorf("step %d %q: %w", i+1, st.Raw, err)
		}
		cmds[i] = cmd
	}

	r := &runner{ctx: ctx, ctl: ctl}
	for i, st := range steps {
		switch st.Op {
		case "bind":
			r.bind(cmds[i])
			r.execute()
		case "again":
			r.execute()
		case "undo":
			r.undo()
		case "redo":
			r.redo()
		}
		if r.err != nil {
			return resultOf(ctl, d), fmt.Errorf("step %d %q: %w", i+1, st.Raw, r.err)
		}
	}
	return resultOf(ctl, d), nil
}
