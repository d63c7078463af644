// Package seqkit implements sorting and searching over index addressable sequences.
package seqkit

import (
	"cmp"

	"go.llib.dev/frameless/pkg/errorkit"

	"pizzamanager/pkg/compare"
	"pizzamanager/pkg/datastruct"
)

// ErrPreconditionViolated names the failure mode of BinarySearch on a sequence
// that is not sorted by the searched key.
// It cannot be detected without a full scan, so BinarySearch never returns it.
const ErrPreconditionViolated errorkit.Error = "ErrPreconditionViolated"

const NotFound = datastruct.NotFound

type Searchable[T any] interface {
	datastruct.Sizer
	Lookup(index int) (T, bool)
}

type Sortable[T any] interface {
	Searchable[T]
	Swap(i, j int) error
}

var _ Sortable[any] = (*datastruct.ArrayList[any])(nil)

// SelectionSort sorts seq in ascending order in place.
//
// For every position i, the smallest element of [i, Len()) is selected and swapped into i.
// The ordering of equal elements is unspecified.
func SelectionSort[T any](seq Sortable[T], fn compare.Func[T]) error {
	n := seq.Len()
	for i := 0; i < n; i++ {
		smallest, ok := seq.Lookup(i)
		if !ok {
			return datastruct.ErrIndexOutOfRange.F("sequence shrank during sort at %d", i)
		}
		smallestIndex := i
		for j := i + 1; j < n; j++ {
			v, ok := seq.Lookup(j)
			if !ok {
				return datastruct.ErrIndexOutOfRange.F("sequence shrank during sort at %d", j)
			}
			if compare.IsLess(fn(v, smallest)) {
				smallest, smallestIndex = v, j
			}
		}
		if smallestIndex == i {
			continue
		}
		if err := seq.Swap(i, smallestIndex); err != nil {
			return err
		}
	}
	return nil
}

// IsSorted reports whether no adjacent pair of seq compares as greater.
func IsSorted[T any](seq Searchable[T], fn compare.Func[T]) bool {
	for i := 1; i < seq.Len(); i++ {
		prev, _ := seq.Lookup(i - 1)
		current, _ := seq.Lookup(i)
		if compare.IsMore(fn(prev, current)) {
			return false
		}
	}
	return true
}

// BinarySearch looks up the index of an element whose key equals target.
//
// seq must be sorted in ascending order by the same key,
// otherwise the result may be a false negative.
// When target is absent, NotFound and false are returned.
func BinarySearch[T any, K cmp.Ordered](seq Searchable[T], target K, key func(T) K) (int, bool) {
	low, high := 0, seq.Len()-1
	for low <= high {
		mid := low + (high-low)/2
		v, ok := seq.Lookup(mid)
		if !ok {
			return NotFound, false
		}
		switch compare.Numbers(key(v), target) {
		case -1:
			low = mid + 1
		case 1:
			high = mid - 1
		default:
			return mid, true
		}
	}
	return NotFound, false
}
