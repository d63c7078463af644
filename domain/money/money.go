// Package money implements a non-negative currency amount made of whole dollars and cents.
package money

import (
	"context"
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"

// MaxCents is the largest sub-unit value before it carries into a dollar.
const MaxCents = 99

type Money struct {
	dollars int
	cents   int
}

func New(dollars, cents int) (Money, error) {
	m := Money{dollars: dollars, cents: cents}
	if err := m.Validate(context.Background()); err != nil {
		return Money{}, err
	}
	return m, nil
}

// Must is meant for package level declarations of known good amounts.
func Must(dollars, cents int) Money {
	m, err := New(dollars, cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Validate(context.Context) error {
	if m.dollars < 0 {
		return ErrInvalidArgument.F("illegal dollar amount: %d", m.dollars)
	}
	if m.cents < 0 || MaxCents < m.cents {
		return ErrInvalidArgument.F("illegal cent amount: %d", m.cents)
	}
	return nil
}

func (m Money) Dollars() int { return m.dollars }

func (m Money) Cents() int { return m.cents }

// TotalCents is the amount expressed in the sub-unit.
func (m Money) TotalCents() int { return m.dollars*100 + m.cents }

// Add returns the sum of the two amounts, cents overflowing into dollars.
func (m Money) Add(oth Money) Money {
	cents := m.cents + oth.cents
	return Money{
		dollars: m.dollars + oth.dollars + cents/100,
		cents:   cents % 100,
	}
}

func (m Money) Compare(oth Money) int {
	switch a, b := m.TotalCents(), oth.TotalCents(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (m Money) IsZero() bool { return m.dollars == 0 && m.cents == 0 }

func (m Money) Float64() float64 {
	return float64(m.dollars) + float64(m.cents)/100
}

func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.dollars, m.cents)
}
