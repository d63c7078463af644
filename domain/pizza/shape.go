package pizza

import (
	"context"
	"fmt"
	"math"
)

type Point struct{ X, Y int }

type Shape interface {
	Area() float64
	Origin() Point
	Validate(context.Context) error
	fmt.Stringer
}

type Circle struct {
	Center Point
	Radius float64
}

func NewCircle(center Point, radius float64) (Circle, error) {
	c := Circle{Center: center, Radius: radius}
	if err := c.Validate(context.Background()); err != nil {
		return Circle{}, err
	}
	return c, nil
}

func (c Circle) Validate(context.Context) error {
	if !(0 < c.Radius) || math.IsInf(c.Radius, 0) {
		return ErrInvalidArgument.F("illegal circle radius: %v", c.Radius)
	}
	return nil
}

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

func (c Circle) Origin() Point { return c.Center }

func (c Circle) String() string {
	return fmt.Sprintf("circle(x=%d, y=%d, r=%v)", c.Center.X, c.Center.Y, c.Radius)
}

type Square struct {
	Corner Point
	Side   float64
}

func NewSquare(corner Point, side float64) (Square, error) {
	s := Square{Corner: corner, Side: side}
	if err := s.Validate(context.Background()); err != nil {
		return Square{}, err
	}
	return s, nil
}

func (s Square) Validate(context.Context) error {
	if !(0 < s.Side) || math.IsInf(s.Side, 0) {
		return ErrInvalidArgument.F("illegal square side: %v", s.Side)
	}
	return nil
}

func (s Square) Area() float64 { return s.Side * s.Side }

func (s Square) Origin() Point { return s.Corner }

func (s Square) String() string {
	return fmt.Sprintf("square(x=%d, y=%d, side=%v)", s.Corner.X, s.Corner.Y, s.Side)
}
