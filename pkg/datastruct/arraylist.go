package datastruct

import (
	"fmt"
	"iter"
	"strings"
)

const (
	// DefaultCapacity is the size of the backing storage on the first write.
	DefaultCapacity = 50
	// GrowthSize is the fixed number of slots added whenever the storage runs full.
	// Growth is linear, not doubling.
	GrowthSize = 10
)

// ArrayList is a growable, index addressable sequence backed by a fixed size storage.
// The zero value is an empty list ready to use.
//
// Invariant: 0 <= Len() <= Cap(), indexes in [0, Len()) hold live elements.
type ArrayList[T any] struct {
	vs     []T
	length int
}

var _ Sequence[any] = (*ArrayList[any])(nil)

// NewArrayList returns a list with DefaultCapacity preallocated and the given values appended.
func NewArrayList[T any](vs ...T) *ArrayList[T] {
	l := &ArrayList[T]{vs: make([]T, DefaultCapacity)}
	l.Append(vs...)
	return l
}

func (l *ArrayList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Cap returns the size of the backing storage.
func (l *ArrayList[T]) Cap() int {
	if l == nil {
		return 0
	}
	return len(l.vs)
}

func (l *ArrayList[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.vs[index], nil
}

func (l *ArrayList[T]) Lookup(index int) (T, bool) {
	v, err := l.Get(index)
	return v, err == nil
}

// Set replaces the element at the given index and returns the previous value.
func (l *ArrayList[T]) Set(index int, v T) (T, error) {
	prev, err := l.Get(index)
	if err != nil {
		return prev, err
	}
	l.vs[index] = v
	return prev, nil
}

// Insert places v at index and shifts every element at or after index by one slot towards the end.
// Index may be equal to Len(), which is the same as an append.
// On an out of range index the list is left untouched and ErrIndexOutOfRange is returned.
func (l *ArrayList[T]) Insert(index int, v T) error {
	if index < 0 || l.length < index {
		return ErrIndexOutOfRange.F("unable to insert at %d, length is %d", index, l.length)
	}
	l.length++
	if len(l.vs) <= l.length {
		l.grow()
	}
	copy(l.vs[index+1:l.length], l.vs[index:l.length-1])
	l.vs[index] = v
	return nil
}

func (l *ArrayList[T]) Append(vs ...T) {
	for _, v := range vs {
		_ = l.Insert(l.length, v) // index is always in range
	}
}

// RemoveAt deletes the element at index and shifts the rest of the list by one slot towards the start.
func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	v, err := l.Get(index)
	if err != nil {
		return v, err
	}
	copy(l.vs[index:], l.vs[index+1:l.length])
	l.length--
	var zero T
	l.vs[l.length] = zero
	return v, nil
}

func (l *ArrayList[T]) Swap(i, j int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	if err := l.checkIndex(j); err != nil {
		return err
	}
	l.vs[i], l.vs[j] = l.vs[j], l.vs[i]
	return nil
}

// IndexFunc returns the first index where fn reports true, or NotFound.
func (l *ArrayList[T]) IndexFunc(fn func(T) bool) int {
	for i, v := range l.Iter() {
		if fn(v) {
			return i
		}
	}
	return NotFound
}

func (l *ArrayList[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield(i, l.vs[i]) {
				return
			}
		}
	}
}

func (l *ArrayList[T]) ToSlice() []T {
	if l.IsEmpty() {
		return nil
	}
	out := make([]T, l.length)
	copy(out, l.vs[:l.length])
	return out
}

func (l *ArrayList[T]) String() string {
	var parts []string
	for _, v := range l.Iter() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *ArrayList[T]) grow() {
	size := len(l.vs) + GrowthSize
	if len(l.vs) == 0 {
		size = DefaultCapacity
	}
	for size <= l.length {
		size += GrowthSize
	}
	vs := make([]T, size)
	copy(vs, l.vs)
	l.vs = vs
}

func (l *ArrayList[T]) checkIndex(index int) error {
	if index < 0 || l.Len() <= index {
		return ErrIndexOutOfRange.F("%d is out of bounds, length is %d", index, l.Len())
	}
	return nil
}

// IndexOf scans the list from the start and returns the index of the first element equal to v.
func IndexOf[T comparable](l *ArrayList[T], v T) int {
	return l.IndexFunc(func(e T) bool { return e == v })
}

// Equal reports whether a and b have the same length and pairwise equal elements in order.
func Equal[T comparable](a, b *ArrayList[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T any](a, b *ArrayList[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.vs[i], b.vs[i]) {
			return false
		}
	}
	return true
}
