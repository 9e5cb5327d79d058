// Package decorator prices pizzas by wrapping a base pizza in toppings.
package decorator

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownTopping = errors.New("unknown topping")

// Pizza is anything with a description and a price.
type Pizza interface {
	Description() string
	Price() float64
}

// RegularPizza is the undecorated base.
type RegularPizza struct{}

func (RegularPizza) Description() string { return "Regular pizza" }
func (RegularPizza) Price() float64      { return 9.99 }

// Pepperoni adds extra pepperoni to the wrapped pizza.
type Pepperoni struct {
	Pizza Pizza
}

func (p Pepperoni) Description() string { return p.Pizza.Description() + " with extra pepperoni" }
func (p Pepperoni) Price() float64      { return p.Pizza.Price() + 2.99 }

// Cheese adds extra cheese to the wrapped pizza.
type Cheese struct {
	Pizza Pizza
}

func (c Cheese) Description() string { return c.Pizza.Description() + " with extra cheese" }
func (c Cheese) Price() float64      { return c.Pizza.Price() + 1.99 }

var toppings = map[string]func(Pizza) Pizza{
	"pepperoni": func(p Pizza) Pizza { return Pepperoni{Pizza: p} },
	"cheese":    func(p Pizza) Pizza { return Cheese{Pizza: p} },
}

// WithToppings wraps base with each named topping in order.
func WithToppings(base Pizza, names ...string) (Pizza, error) {
	p := base
	for _, name := range names {
		wrap, ok := toppings[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTopping, name)
		}
		p = wrap(p)
	}
	return p, nil
}

// Order renders "<description> costs <price>" with the price rounded to cents.
func Order(p Pizza) string {
	return fmt.Sprintf("%s costs %.2f", p.Description(), math.Round(p.Price()*100)/100)
}
