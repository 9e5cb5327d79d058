// Package observer broadcasts weather station readings to attached displays.
package observer

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
)

// Observer receives temperature readings.
type Observer interface {
	Update(temperature float64)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(temperature float64)

func (f ObserverFunc) Update(temperature float64) { f(temperature) }

// Subject keeps observers in attach order.
type Subject struct {
	observers []Observer
}

func (s *Subject) Attach(o Observer) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

// Detach removes the first occurrence of o. Unknown observers are ignored,
// and so are observers of uncomparable types such as ObserverFunc: attach a
// pointer type when it must be detachable.
func (s *Subject) Detach(o Observer) {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return
	}
	for i, cur := range s.observers {
		if reflect.TypeOf(cur) == reflect.TypeOf(o) && cur == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Subject) Notify(temperature float64) {
	for _, o := range s.observers {
		o.Update(temperature)
	}
}

// Len returns the number of attached observers.
func (s *Subject) Len() int { return len(s.observers) }

// WeatherStation notifies observers on every temperature change.
type WeatherStation struct {
	Subject
	temperature float64
}

func NewWeatherStation() *WeatherStation {
	return &WeatherStation{}
}

func (w *WeatherStation) Temperature() float64 { return w.temperature }

// SetTemperature stores t and then notifies every observer.
func (w *WeatherStation) SetTemperature(t float64) {
	w.temperature = t
	w.Notify(t)
}

// Display prints readings under a label.
type Display struct {
	label   string
	console io.Writer
}

func newDisplay(label string, console io.Writer) *Display {
	if console == nil {
		console = os.Stdout
	}
	return &Display{label: label, console: console}
}

func NewLaptopDisplay(console io.Writer) *Display { return newDisplay("Laptop display", console) }
func NewPhoneDisplay(console io.Writer) *Display  { return newDisplay("Phone display", console) }

func (d *Display) Update(temperature float64) {
	fmt.Fprintf(d.console, "%s: The temperature is %s°C\n", d.label, strconv.FormatFloat(temperature, 'f', -1, 64))
}
