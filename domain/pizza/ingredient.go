package pizza

import (
	"context"
	"fmt"
	"slices"

	"pizzamanager/domain/money"
)

type Kind string

const (
	Alfredo    Kind = "alfredo"
	Marinara   Kind = "marinara"
	Goat       Kind = "goat"
	Mozzarella Kind = "mozzarella"
	Pepperoni  Kind = "pepperoni"
	Sausage    Kind = "sausage"
	Olive      Kind = "olive"
	Pepper     Kind = "pepper"
)

type Category string

const (
	Base      Category = "base"
	Cheese    Category = "cheese"
	Meat      Category = "meat"
	Vegetable Category = "vegetable"
)

// Color is only set for vegetables.
type Color string

const (
	Black Color = "black"
	Red   Color = "red"
)

type Ingredient struct {
	Kind        Kind
	Category    Category
	Cost        money.Money
	Calories    int
	Description string
	Color       Color
}

var catalogue = map[Kind]Ingredient{
	Alfredo: {
		Kind:        Alfredo,
		Category:    Base,
		Cost:        money.Must(3, 0),
		Calories:    322,
		Description: "Alfredo sauce is melted Parmesan cheese that has emulsified butter to form a smooth and rich substance.",
	},
	Marinara: {
		Kind:     Marinara,
		Category: Base,
		Cost:     money.Must(2, 50),
		Calories: 260,
		Description: "Marinara sauce is an Italian sauce that originated in Naples, usually made with tomatoes, garlic, herbs, and onions. " +
			"Its many variations can include the addition of capers, olives and spices. It is occasionally sweetened with a dash of red wine.",
	},
	Goat: {
		Kind:        Goat,
		Category:    Cheese,
		Cost:        money.Must(3, 0),
		Calories:    408,
		Description: "Goat cheese is a cheese made from goat's milk.",
	},
	Mozzarella: {
		Kind:        Mozzarella,
		Category:    Cheese,
		Cost:        money.Must(2, 25),
		Calories:    360,
		Description: "A southern Italian cheese traditionally made from Italian buffalo milk by the pasta filata method.",
	},
	Pepperoni: {
		Kind:     Pepperoni,
		Category: Meat,
		Cost:     money.Must(3, 0),
		Calories: 300,
		Description: "Pepperoni, also known as pepperoni sausage, is an American variety of salami, usually made from cured pork and beef mixed together. " +
			"Pepperoni is characteristically soft, slightly smoky, and bright red in color.",
	},
	Sausage: {
		Kind:     Sausage,
		Category: Meat,
		Cost:     money.Must(4, 50),
		Calories: 782,
		Description: "In the United States, Italian sausage most often refers to a style of pork sausage " +
			"noted for being seasoned with fennel and/or anise as the primary seasoning.",
	},
	Olive: {
		Kind:        Olive,
		Category:    Vegetable,
		Cost:        money.Must(3, 75),
		Calories:    16,
		Description: "An Olive is a small black drupe.",
		Color:       Black,
	},
	Pepper: {
		Kind:        Pepper,
		Category:    Vegetable,
		Cost:        money.Must(4, 50),
		Calories:    72,
		Description: "(Bell) Pepper is a cultivar group of the species Capsicum annuum. Each pepper is sliced into eighths and is fresh and crisp.",
		Color:       Red,
	},
}

var kinds = []Kind{Alfredo, Marinara, Goat, Mozzarella, Pepperoni, Sausage, Olive, Pepper}

// Kinds lists every known ingredient kind in catalogue order.
func Kinds() []Kind { return slices.Clone(kinds) }

func NewIngredient(kind Kind) (Ingredient, error) {
	ing, ok := catalogue[kind]
	if !ok {
		return Ingredient{}, ErrInvalidArgument.F("unknown ingredient: %q", kind)
	}
	return ing, nil
}

func (ing Ingredient) Validate(ctx context.Context) error {
	if _, ok := catalogue[ing.Kind]; !ok {
		return ErrInvalidArgument.F("unknown ingredient: %q", ing.Kind)
	}
	if err := ing.Cost.Validate(ctx); err != nil {
		return err
	}
	if ing.Cost.IsZero() {
		return ErrInvalidArgument.F("%s has no cost", ing.Kind)
	}
	if ing.Calories <= 0 {
		return ErrInvalidArgument.F("%s has an illegal calorie count: %d", ing.Kind, ing.Calories)
	}
	if ing.Description == "" {
		return ErrInvalidArgument.F("%s has no description", ing.Kind)
	}
	return nil
}

// Compare orders ingredients by cost.
func (ing Ingredient) Compare(oth Ingredient) int {
	return ing.Cost.Compare(oth.Cost)
}

func (ing Ingredient) String() string {
	return fmt.Sprintf("%s; cost: %s; calories: %d", ing.Description, ing.Cost, ing.Calories)
}
