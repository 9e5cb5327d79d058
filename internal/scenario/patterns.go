package scenario

import (
	"context"
	"fmt"
	"io"

	"home_patterns/internal/decorator"
	"home_patterns/internal/observer"
	"home_patterns/internal/strategy"
)

// RunObserver replays the weather station demo. Extra observers stay
// attached for the whole run.
func RunObserver(w io.Writer, extra ...observer.Observer) *observer.WeatherStation {
	station := observer.NewWeatherStation()
	phone := observer.NewPhoneDisplay(w)
	laptop := observer.NewLaptopDisplay(w)

	station.Attach(phone)
	station.Attach(laptop)
	for _, o := range extra {
		station.Attach(o)
	}

	station.SetTemperature(27)
	station.SetTemperature(34)

	station.Detach(laptop)
	station.SetTemperature(13)
	return station
}

// RunStrategy evaluates one operation per strategy, swapping the
// calculator's strategy between calls.
func RunStrategy(w io.Writer) error {
	calc := strategy.NewCalculator(strategy.Addition{})
	runs := []struct {
		s    strategy.Strategy
		a, b float64
	}{
		{strategy.Addition{}, 2, 4},
		{strategy.Subtraction{}, 7, 2},
		{strategy.Multiplication{}, 3, 4},
		{strategy.Division{}, 6, 2},
	}
	for _, run := range runs {
		calc.SetStrategy(run.s)
		v, err := calc.Perform(run.a, run.b)
		if err != nil {
			return fmt.Errorf("%g %s %g: %w", run.a, run.s.Symbol(), run.b, err)
		}
		fmt.Fprintf(w, "%g %s %g = %g\n", run.a, run.s.Symbol(), run.b, v)
	}
	return nil
}

// RunDecorator prices a plain pizza, then the same pizza with pepperoni and cheese.
func RunDecorator(w io.Writer) decorator.Pizza {
	var p decorator.Pizza = decorator.RegularPizza{}
	fmt.Fprintln(w, decorator.Order(p))

	p = decorator.Pepperoni{Pizza: p}
	p = decorator.Cheese{Pizza: p}
	fmt.Fprintln(w, decorator.Order(p))
	return p
}

// Demos names the runnable demos in display order.
var Demos = []string{"command", "observer", "strategy", "decorator"}

// Env carries what the demos need beyond a writer.
type Env struct {
	Console io.Writer
	Remote  RemoteRig
	// Readings, when set, also observes the weather station.
	Readings observer.Observer
}

// RunDemo runs one demo by name, printing a header first.
func RunDemo(ctx context.Context, name string, env Env) error {
	fmt.Fprintf(env.Console, "== %s ==\n", name)
	switch name {
	case "command":
		_, err := RunCommand(ctx, env.Remote.Service, env.Remote.Devices)
		return err
	case "observer":
		var extra []observer.Observer
		if env.Readings != nil {
			extra = append(extra, env.Readings)
		}
		RunObserver(env.Console, extra...)
		return nil
	case "strategy":
		return RunStrategy(env.Console)
	case "decorator":
		RunDecorator(env.Console)
		return nil
	default:
		return fmt.Errorf("unknown demo %q", name)
	}
}

// RunAll runs every demo in order.
func RunAll(ctx context.Context, env Env) error {
	for _, name := range Demos {
		if err := RunDemo(ctx, name, env); err != nil {
			return err
		}
	}
	return nil
}
