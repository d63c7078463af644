// Package pizza holds the pizza domain: the ingredient catalogue, the shapes a pizza is baked in,
// and the pizza itself with its remaining fraction.
package pizza

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
	"go.llib.dev/frameless/pkg/errorkit"

	"pizzamanager/domain/money"
	"pizzamanager/pkg/datastruct"
	"pizzamanager/pkg/rational"
)

const (
	ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"
	ErrInvalidAmount   errorkit.Error = "ErrInvalidAmount"
	ErrNothingLeft     errorkit.Error = "ErrNothingLeft"
	ErrTooMuch         errorkit.Error = "ErrTooMuch"
)

type Pizza struct {
	ID   string
	Name string

	shape       Shape
	ingredients *datastruct.ArrayList[Ingredient]
	cost        money.Money
	calories    int
	remaining   rational.Rational
}

// EatResult describes the state of a pizza after a successful Eat.
type EatResult struct {
	Eaten     rational.Rational
	Remaining rational.Rational
	// Finished is true when nothing is left from the pizza.
	Finished bool
}

func New(shape Shape, ingredients ...Ingredient) (*Pizza, error) {
	if shape == nil {
		return nil, ErrInvalidArgument.F("pizza without a shape")
	}
	if err := shape.Validate(context.Background()); err != nil {
		return nil, err
	}
	p := &Pizza{
		ID:          uuid.NewString(),
		shape:       shape,
		ingredients: datastruct.NewArrayList[Ingredient](),
		remaining:   rational.One(),
	}
	for _, ing := range ingredients {
		if err := p.AddIngredient(ing); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Pizza) AddIngredient(ing Ingredient) error {
	if err := ing.Validate(context.Background()); err != nil {
		return err
	}
	if p.ingredients == nil {
		p.ingredients = datastruct.NewArrayList[Ingredient]()
	}
	p.ingredients.Append(ing)
	p.cost = p.cost.Add(ing.Cost)
	p.calories += ing.Calories
	return nil
}

func (p *Pizza) Shape() Shape { return p.shape }

func (p *Pizza) Cost() money.Money { return p.cost }

func (p *Pizza) Calories() int { return p.calories }

func (p *Pizza) Ingredients() iter.Seq2[int, Ingredient] { return p.ingredients.Iter() }

func (p *Pizza) Remaining() rational.Rational { return p.remaining }

// SetRemaining accepts fractions in the range of [0, 1].
func (p *Pizza) SetRemaining(r rational.Rational) error {
	if r.Sign() < 0 {
		return ErrInvalidArgument.F("remaining size can't be negative: %s", r)
	}
	if 0 < r.Compare(rational.One()) {
		return ErrInvalidArgument.F("remaining size can't be more than the whole: %s", r)
	}
	p.remaining = r.Reduce()
	return nil
}

func (p *Pizza) RemainingArea() float64 {
	return p.remaining.Float64() * p.shape.Area()
}

func (p *Pizza) Eat(amount rational.Rational) (EatResult, error) {
	if amount.Sign() < 0 {
		return EatResult{}, ErrInvalidAmount.F("can't eat a negative amount of pizza: %s", amount)
	}
	if p.remaining.IsZero() {
		return EatResult{}, ErrNothingLeft.F("pizza %s is already finished", p.Name)
	}
	if 0 < amount.Compare(p.remaining) {
		return EatResult{}, ErrTooMuch.F("can't eat %s when only %s remains", amount, p.remaining)
	}
	remaining, err := p.remaining.Sub(amount)
	if err != nil {
		return EatResult{}, err
	}
	p.remaining = remaining
	return EatResult{
		Eaten:     amount.Reduce(),
		Remaining: remaining,
		Finished:  remaining.IsZero(),
	}, nil
}

func (p *Pizza) Validate(ctx context.Context) error {
	if p == nil {
		return ErrInvalidArgument.F("nil pizza")
	}
	if p.shape == nil {
		return ErrInvalidArgument.F("pizza without a shape")
	}
	if err := p.shape.Validate(ctx); err != nil {
		return err
	}
	if p.remaining.Sign() < 0 || 0 < p.remaining.Compare(rational.One()) {
		return ErrInvalidArgument.F("remaining size is out of range: %s", p.remaining)
	}
	for _, ing := range p.ingredients.Iter() {
		if err := ing.Validate(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pizza) String() string {
	var b strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", p.Name)
	}
	fmt.Fprintf(&b, "Cost: %s\nCalories: %d\nSize: %.2f\nIngredients:\n", p.cost, p.calories, p.RemainingArea())
	for _, ing := range p.ingredients.Iter() {
		fmt.Fprintf(&b, "\t%s\n", ing)
	}
	return b.String()
}
