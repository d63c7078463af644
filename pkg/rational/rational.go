// Package rational implements an exact fraction type.
//
// A Rational is not normalised when it is constructed.
// Call Reduce to get the canonical lowest terms form,
// where the numerator carries the sign and the denominator is always positive.
package rational

import (
	"fmt"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/mathkit"
)

const (
	ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"
	ErrOverflow        errorkit.Error = "ErrOverflow"
	ErrParse           errorkit.Error = "ErrParse"
)

// Rational is an immutable numerator/denominator pair.
// The zero value is not valid, use New, One or Zero.
type Rational struct {
	numerator   int
	denominator int
}

// New fails with ErrOverflow when either field is the smallest int,
// as its negation, needed to normalise the sign, is not representable.
func New(numerator, denominator int) (Rational, error) {
	if denominator == 0 {
		return Rational{}, ErrInvalidArgument.F("denominator of %d/%d is zero", numerator, denominator)
	}
	if numerator == mathkit.MinInt[int]() || denominator == mathkit.MinInt[int]() {
		return Rational{}, ErrOverflow.F("%d/%d can't be negated", numerator, denominator)
	}
	return Rational{numerator: numerator, denominator: denominator}, nil
}

// Must is a helper for constant like declarations.
// It panics when New would return an error.
func Must(numerator, denominator int) Rational {
	r, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return r
}

func One() Rational { return Rational{numerator: 1, denominator: 1} }

func Zero() Rational { return Rational{numerator: 0, denominator: 1} }

// Parse reads the "a/b" notation.
// Surrounding whitespace is ignored, and a plain integer is read as n/1.
func Parse(raw string) (Rational, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Rational{}, ErrParse.F("empty input")
	}
	num, den, ok := strings.Cut(raw, "/")
	if !ok {
		den = "1"
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Rational{}, ErrParse.F("invalid numerator in %q", raw)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil {
		return Rational{}, ErrParse.F("invalid denominator in %q", raw)
	}
	return New(n, d)
}

func (r Rational) Numerator() int { return r.numerator }

func (r Rational) Denominator() int { return r.denominator }

// Reduce returns r in lowest terms with a positive denominator.
// A zero numerator always reduces to 0/1.
func (r Rational) Reduce() Rational {
	if r.numerator == 0 {
		return Zero()
	}
	num, den := r.numerator, r.denominator
	if den < 0 {
		num, den = -num, -den
	}
	divisor := gcd(abs(num), den)
	return Rational{
		numerator:   num / divisor,
		denominator: den / divisor,
	}
}

// Compare returns -1 if r is less than oth, 0 if they are equal and +1 if r is greater.
func (r Rational) Compare(oth Rational) int {
	a, b := r.Reduce(), oth.Reduce()
	var bi mathkit.BigInt[int]
	x := bi.Of(a.numerator).Mul(bi.Of(b.denominator))
	y := bi.Of(b.numerator).Mul(bi.Of(a.denominator))
	return x.Compare(y)
}

// Equal reports whether r and oth represent the same number,
// thus 1/2 is equal to 2/4 and to -1/-2.
func (r Rational) Equal(oth Rational) bool {
	a, b := r.Reduce(), oth.Reduce()
	return a.numerator == b.numerator && a.denominator == b.denominator
}

func (r Rational) Sign() int {
	switch {
	case r.numerator == 0:
		return 0
	case (r.numerator < 0) == (r.denominator < 0):
		return 1
	default:
		return -1
	}
}

func (r Rational) IsZero() bool { return r.numerator == 0 }

func (r Rational) Add(oth Rational) (Rational, error) {
	return r.combine(oth, "+", mathkit.SumInt[int])
}

func (r Rational) Sub(oth Rational) (Rational, error) {
	return r.combine(oth, "-", func(x, y int) (int, bool) {
		if y == mathkit.MinInt[int]() {
			return 0, false
		}
		return mathkit.SumInt(x, -y)
	})
}

func (r Rational) combine(oth Rational, op string, fn func(x, y int) (int, bool)) (Rational, error) {
	a, b := r.Reduce(), oth.Reduce()
	if mathkit.CanIntMulOverflow(a.numerator, b.denominator) ||
		mathkit.CanIntMulOverflow(b.numerator, a.denominator) ||
		mathkit.CanIntMulOverflow(a.denominator, b.denominator) {
		return Rational{}, ErrOverflow.F("%s %s %s", a, op, b)
	}
	num, ok := fn(a.numerator*b.denominator, b.numerator*a.denominator)
	if !ok {
		return Rational{}, ErrOverflow.F("%s %s %s", a, op, b)
	}
	res, err := New(num, a.denominator*b.denominator)
	if err != nil {
		return Rational{}, err
	}
	return res.Reduce(), nil
}

// Float64 is a lossy decimal approximation of r.
func (r Rational) Float64() float64 {
	if r.denominator == 0 {
		return 0
	}
	return float64(r.numerator) / float64(r.denominator)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.numerator, r.denominator)
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
