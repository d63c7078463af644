package pizza_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"pizzamanager/domain/pizza"
)

type fixedRandom struct{ values []int }

func (r *fixedRandom) IntN(n int) int {
	v := r.values[0] % n
	r.values = r.values[1:]
	return v
}

func TestGenerator_Generate(t *testing.T) {
	g := pizza.Generator{Random: rand.New(rand.NewPCG(1, 2))}
	var (
		circles int
		squares int
	)
	for range 200 {
		p, err := g.Generate()
		require.NoError(t, err)
		require.NotEmpty(t, p.Name)
		require.NotEmpty(t, p.ID)

		var n int
		for range p.Ingredients() {
			n++
		}
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, pizza.DefaultMaxIngredients)

		switch shape := p.Shape().(type) {
		case pizza.Circle:
			circles++
			require.Equal(t, 20.0, shape.Radius)
		case pizza.Square:
			squares++
			require.Equal(t, 10.0, shape.Side)
		default:
			t.Fatalf("unexpected shape: %T", shape)
		}
	}
	require.NotZero(t, circles)
	require.NotZero(t, squares)
}

func TestGenerator_Generate_deterministic(t *testing.T) {
	// circle, 3 ingredients: sausage, olive, alfredo
	rnd := &fixedRandom{values: []int{0, 2, 5, 6, 0}}
	p, err := pizza.Generator{Random: rnd, MaxIngredients: 5}.Generate()
	require.NoError(t, err)
	require.IsType(t, pizza.Circle{}, p.Shape())
	require.Equal(t, 782+16+322, p.Calories())
	require.Equal(t, "$11.25", p.Cost().String())
	require.Empty(t, rnd.values)
}

func TestGenerator_Generate_maxIngredients(t *testing.T) {
	g := pizza.Generator{Random: rand.New(rand.NewPCG(3, 4)), MaxIngredients: 1}
	for range 20 {
		p, err := g.Generate()
		require.NoError(t, err)
		var n int
		for range p.Ingredients() {
			n++
		}
		require.Equal(t, 1, n)
	}
}
