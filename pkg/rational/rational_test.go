package rational_test

import (
	"strconv"
	"testing"

	"go.llib.dev/frameless/pkg/mathkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"pizzamanager/pkg/rational"
)

func TestNew(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		numerator   = let.IntB(s, -100, 100)
		denominator = let.Var(s, func(t *testcase.T) int {
			return random.Unique(func() int { return t.Random.IntB(-100, 100) }, 0)
		})
	)
	act := let.Act2(func(t *testcase.T) (rational.Rational, error) {
		return rational.New(numerator.Get(t), denominator.Get(t))
	})

	s.Then("the fields are kept as they were given", func(t *testcase.T) {
		r, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, numerator.Get(t), r.Numerator())
		assert.Equal(t, denominator.Get(t), r.Denominator())
	})

	s.When("denominator is the smallest int", func(s *testcase.Spec) {
		denominator.LetValue(s, mathkit.MinInt[int]())

		s.Then("overflow is reported since the sign can't be moved to the numerator", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rational.ErrOverflow)
		})
	})

	s.When("numerator is the smallest int", func(s *testcase.Spec) {
		numerator.LetValue(s, mathkit.MinInt[int]())

		s.Then("overflow is reported since the value can't be negated", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rational.ErrOverflow)
		})
	})

	s.When("denominator is zero", func(s *testcase.Spec) {
		denominator.LetValue(s, 0)

		s.Then("invalid argument error is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rational.ErrInvalidArgument)
		})
	})
}

func TestRational_Reduce(t *testing.T) {
	t.Run("sign is carried by the numerator", func(t *testing.T) {
		got := rational.Must(6, -8).Reduce()
		assert.Equal(t, -3, got.Numerator())
		assert.Equal(t, 4, got.Denominator())
		assert.True(t, got.Equal(rational.Must(-3, 4)))
	})
	t.Run("two negatives make a positive", func(t *testing.T) {
		got := rational.Must(-6, -8).Reduce()
		assert.Equal(t, 3, got.Numerator())
		assert.Equal(t, 4, got.Denominator())
	})
	t.Run("zero numerator is always 0/1", func(t *testing.T) {
		assert.Equal(t, rational.Zero(), rational.Must(0, -7).Reduce())
		assert.Equal(t, rational.Zero(), rational.Must(0, 42).Reduce())
	})
	t.Run("receiver is not mutated", func(t *testing.T) {
		r := rational.Must(2, -4)
		_ = r.Reduce()
		assert.Equal(t, 2, r.Numerator())
		assert.Equal(t, -4, r.Denominator())
	})
	t.Run("lowest terms with a positive denominator", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		rnd.Repeat(128, 256, func() {
			n := rnd.IntB(-1000, 1000)
			d := random.Unique(func() int { return rnd.IntB(-1000, 1000) }, 0)
			got := rational.Must(n, d).Reduce()
			assert.True(t, 0 < got.Denominator())
			if got.Numerator() == 0 {
				assert.Equal(t, 1, got.Denominator())
				return
			}
			assert.Equal(t, 1, gcd(abs(got.Numerator()), got.Denominator()))
			assert.Equal(t, n*got.Denominator(), got.Numerator()*d)
		})
	})
}

func TestRational_Compare(t *testing.T) {
	assert.Equal(t, 0, rational.Must(1, 2).Compare(rational.Must(-2, -4)))
	assert.Equal(t, -1, rational.Must(1, 3).Compare(rational.Must(1, 2)))
	assert.Equal(t, 1, rational.Must(3, 4).Compare(rational.Must(1, 2)))
	assert.Equal(t, -1, rational.Must(1, -2).Compare(rational.Zero()), "unreduced negative denominator")
	assert.Equal(t, 1, rational.Must(-1, -2).Compare(rational.Zero()))

	t.Run("large operands do not overflow", func(t *testing.T) {
		max := mathkit.MaxInt[int]()
		a := rational.Must(max-1, max)
		b := rational.Must(max-2, max-1)
		assert.Equal(t, 1, a.Compare(b))
		assert.Equal(t, -1, b.Compare(a))
	})
}

func TestRational_Equal(t *testing.T) {
	assert.True(t, rational.Must(2, 4).Equal(rational.Must(1, 2)))
	assert.True(t, rational.Must(0, 5).Equal(rational.Zero()))
	assert.False(t, rational.Must(1, 2).Equal(rational.Must(-1, 2)))
}

func TestRational_Sub(t *testing.T) {
	got, err := rational.One().Sub(rational.Must(1, 4))
	assert.NoError(t, err)
	assert.Equal(t, rational.Must(3, 4), got)

	got, err = rational.Must(1, 3).Sub(rational.Must(1, 3))
	assert.NoError(t, err)
	assert.Equal(t, rational.Zero(), got)

	got, err = rational.Must(1, 4).Sub(rational.Must(1, 2))
	assert.NoError(t, err)
	assert.Equal(t, rational.Must(-1, 4), got)

	_, err = rational.Must(mathkit.MaxInt[int](), 3).Sub(rational.Must(1, 2))
	assert.ErrorIs(t, err, rational.ErrOverflow)
}

func TestRational_Add(t *testing.T) {
	got, err := rational.Must(1, 6).Add(rational.Must(1, 3))
	assert.NoError(t, err)
	assert.Equal(t, rational.Must(1, 2), got)
}

func TestRational_Float64(t *testing.T) {
	assert.Equal(t, 0.75, rational.Must(3, 4).Float64())
	assert.Equal(t, -0.5, rational.Must(1, -2).Float64())
}

func TestRational_Sign(t *testing.T) {
	assert.Equal(t, 0, rational.Zero().Sign())
	assert.Equal(t, 1, rational.Must(-1, -3).Sign())
	assert.Equal(t, -1, rational.Must(1, -3).Sign())
	assert.Equal(t, -1, rational.Must(-1, 3).Sign())
}

func TestParse(t *testing.T) {
	got, err := rational.Parse(" 1/4 ")
	assert.NoError(t, err)
	assert.Equal(t, rational.Must(1, 4), got)

	got, err = rational.Parse("3")
	assert.NoError(t, err)
	assert.Equal(t, rational.Must(3, 1), got)

	_, err = rational.Parse("1/0")
	assert.ErrorIs(t, err, rational.ErrInvalidArgument)

	_, err = rational.Parse("1/" + strconv.Itoa(mathkit.MinInt[int]()))
	assert.ErrorIs(t, err, rational.ErrOverflow)

	for _, raw := range []string{"", "a/b", "1/", "/2", "1/2/3"} {
		_, err = rational.Parse(raw)
		assert.ErrorIs(t, err, rational.ErrParse, assert.MessageF("%q", raw))
	}
}

func TestRational_String(t *testing.T) {
	assert.Equal(t, "6/-8", rational.Must(6, -8).String())
	assert.Equal(t, "-3/4", rational.Must(6, -8).Reduce().String())
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
