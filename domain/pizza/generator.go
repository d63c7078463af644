package pizza

import (
	"github.com/Pallinder/go-randomdata"
)

const (
	DefaultMaxIngredients = 20

	randomCircleRadius = 20
	randomSquareSide   = 10
)

// Random is the source of randomness for the Generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

// Generator bakes pizzas with a random shape, a random name and a random set of ingredients.
type Generator struct {
	Random         Random
	MaxIngredients int
}

func (g Generator) Generate() (*Pizza, error) {
	var shape Shape = Square{Side: randomSquareSide}
	if g.Random.IntN(2) == 0 {
		shape = Circle{Radius: randomCircleRadius}
	}
	p, err := New(shape)
	if err != nil {
		return nil, err
	}
	p.Name = randomdata.SillyName()
	count := 1 + g.Random.IntN(g.maxIngredients())
	for range count {
		ing, err := NewIngredient(kinds[g.Random.IntN(len(kinds))])
		if err != nil {
			return nil, err
		}
		if err := p.AddIngredient(ing); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (g Generator) maxIngredients() int {
	if g.MaxIngredients <= 0 {
		return DefaultMaxIngredients
	}
	return g.MaxIngredients
}
