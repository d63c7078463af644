// Package compare holds the three-way comparison conventions used across the module.
//
// A comparison result is an int:
//
//	-1 when a is less than b,
//	 0 when they are equal,
//	+1 when a is greater than b.
package compare

import (
	"cmp"
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/reflectkit"
)

const ErrUncomparable errorkit.Error = "ErrUncomparable"

// Interface is implemented by types which know how to order themselves against another value of the same type.
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(other MyNumber) int {
//		return compare.Numbers(m, other)
//	}
type Interface[T any] interface {
	Compare(T) int
}

// Func is a three-way comparison between two values of the same type.
type Func[T any] func(a, b T) int

func IsEqual(cmp int) bool { return cmp == 0 }

func IsLess(cmp int) bool { return cmp < 0 }

func IsLessOrEqual(cmp int) bool { return cmp <= 0 }

func IsMore(cmp int) bool { return 0 < cmp }

func IsMoreOrEqual(cmp int) bool { return 0 <= cmp }

func IsGreater(cmp int) bool { return IsMore(cmp) }

func IsGreaterOrEqual(cmp int) bool { return IsMoreOrEqual(cmp) }

func Numbers[T cmp.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// By derives a comparator from a scalar key of the compared values.
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return Numbers(key(a), key(b))
	}
}

// Method derives a comparator from the Compare method of T.
func Method[T Interface[T]]() Func[T] {
	return func(a, b T) int { return a.Compare(b) }
}

func Reverse[T any](fn Func[T]) Func[T] {
	return func(a, b T) int { return fn(b, a) }
}

// Values compares two dynamically typed values.
//
// Both values must have the same type,
// and the type must be a number, a string, or implement a Compare method for itself.
// Any other combination yields ErrUncomparable.
func Values(a, b any) (int, error) {
	if a == nil || b == nil {
		return 0, ErrUncomparable.F("nil value cannot be compared (%T, %T)", a, b)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return 0, ErrUncomparable.F("%T cannot be compared to %T", a, b)
	}
	res, err := reflectkit.Compare(a, b)
	if err != nil {
		return 0, ErrUncomparable.F("%T: %w", a, err)
	}
	return sign(res), nil
}

func sign(n int) int {
	return Numbers(n, 0)
}
