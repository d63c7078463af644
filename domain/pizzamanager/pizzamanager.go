// Package pizzamanager implements the pizza session:
// a single collection of pizzas that can be grown, eaten from, sorted and searched.
package pizzamanager

import (
	"context"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"pizzamanager/domain/pizza"
	"pizzamanager/pkg/datastruct"
	"pizzamanager/pkg/rational"
	"pizzamanager/pkg/seqkit"
)

const ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"

type Manager struct {
	Generator pizza.Generator

	pizzas datastruct.ArrayList[*pizza.Pizza]
}

func New(g pizza.Generator) *Manager {
	return &Manager{Generator: g}
}

func (m *Manager) Len() int { return m.pizzas.Len() }

func (m *Manager) Get(index int) (*pizza.Pizza, error) { return m.pizzas.Get(index) }

func (m *Manager) Pizzas() iter.Seq2[int, *pizza.Pizza] { return m.pizzas.Iter() }

func (m *Manager) Add(ctx context.Context, p *pizza.Pizza) error {
	return m.Insert(ctx, m.pizzas.Len(), p)
}

func (m *Manager) Insert(ctx context.Context, index int, p *pizza.Pizza) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	if err := m.pizzas.Insert(index, p); err != nil {
		logger.Warn(ctx, "failed to insert pizza",
			logging.Field("index", index),
			logging.Field("length", m.pizzas.Len()),
			logging.ErrField(err))
		return err
	}
	logger.Debug(ctx, "pizza added",
		logging.Field("pizza_id", p.ID),
		logging.Field("index", index))
	return nil
}

// AddRandom bakes n pizzas with the Generator.
// A failing pizza doesn't stop the rest of the batch, the collected errors are returned together.
func (m *Manager) AddRandom(ctx context.Context, n int) (int, error) {
	var (
		added int
		errs  []error
	)
	for range n {
		p, err := m.Generator.Generate()
		if err != nil {
			logger.Warn(ctx, "failed to generate pizza", logging.ErrField(err))
			errs = append(errs, err)
			continue
		}
		if err := m.Add(ctx, p); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}
	logger.Info(ctx, "random pizzas added",
		logging.Field("requested", n),
		logging.Field("added", added))
	return added, errorkit.Merge(errs...)
}

// Eat takes the given amount from the pizza at index.
// A finished pizza is removed from the collection.
func (m *Manager) Eat(ctx context.Context, index int, amount rational.Rational) (pizza.EatResult, error) {
	p, err := m.pizzas.Get(index)
	if err != nil {
		return pizza.EatResult{}, err
	}
	res, err := p.Eat(amount)
	if err != nil {
		return pizza.EatResult{}, err
	}
	ctx = logging.ContextWith(ctx, logging.Field("pizza_id", p.ID))
	if res.Finished {
		if _, err := m.pizzas.RemoveAt(index); err != nil {
			return res, err
		}
		logger.Info(ctx, "pizza finished, removing it from the collection")
		return res, nil
	}
	logger.Debug(ctx, "pizza eaten",
		logging.Field("eaten", res.Eaten.String()),
		logging.Field("remaining", res.Remaining.String()))
	return res, nil
}

func (m *Manager) SortBy(ctx context.Context, c pizza.Criterion) error {
	fn, err := pizza.Comparator(c)
	if err != nil {
		return err
	}
	if err := seqkit.SelectionSort[*pizza.Pizza](&m.pizzas, fn); err != nil {
		return err
	}
	logger.Debug(ctx, "pizzas sorted",
		logging.Field("criterion", string(c)),
		logging.Field("sorted", seqkit.IsSorted[*pizza.Pizza](&m.pizzas, fn)))
	return nil
}

// SearchByCalories sorts the collection by calories, then looks up a pizza with the exact calorie count.
func (m *Manager) SearchByCalories(ctx context.Context, calories int) (int, bool, error) {
	if calories <= 0 {
		return seqkit.NotFound, false, ErrInvalidArgument.F("%d is an invalid number of calories", calories)
	}
	if err := m.SortBy(ctx, pizza.ByCalories); err != nil {
		return seqkit.NotFound, false, err
	}
	index, ok := seqkit.BinarySearch[*pizza.Pizza](&m.pizzas, calories, pizza.CaloriesKey)
	return index, ok, nil
}
