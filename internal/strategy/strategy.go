// Package strategy implements a calculator whose arithmetic operation is
// swapped at runtime.
package strategy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNoStrategy      = errors.New("no operation set")
	ErrUnknownOperator = errors.New("unknown operator")
)

// Strategy evaluates a binary operation.
type Strategy interface {
	Evaluate(a, b float64) (float64, error)
	Symbol() string
}

type Addition struct{}

func (Addition) Evaluate(a, b float64) (float64, error) { return a + b, nil }
func (Addition) Symbol() string                         { return "+" }

type Subtraction struct{}

func (Subtraction) Evaluate(a, b float64) (float64, error) { return a - b, nil }
func (Subtraction) Symbol() string                         { return "-" }

type Multiplication struct{}

func (Multiplication) Evaluate(a, b float64) (float64, error) { return a * b, nil }
func (Multiplication) Symbol() string                         { return "*" }

type Division struct{}

func (Division) Evaluate(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func (Division) Symbol() string { return "/" }

var bySymbol = map[string]Strategy{
	"+": Addition{},
	"-": Subtraction{},
	"*": Multiplication{},
	"x": Multiplication{},
	"/": Division{},
}

// Lookup returns the strategy for an operator symbol.
func Lookup(symbol string) (Strategy, error) {
	s, ok := bySymbol[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, symbol)
	}
	return s, nil
}

// Calculator delegates to its current strategy.
type Calculator struct {
	strategy Strategy
}

func NewCalculator(s Strategy) *Calculator {
	return &Calculator{strategy: s}
}

func (c *Calculator) SetStrategy(s Strategy) { c.strategy = s }

func (c *Calculator) Perform(a, b float64) (float64, error) {
	if c.strategy == nil {
		return 0, ErrNoStrategy
	}
	return c.strategy.Evaluate(a, b)
}
