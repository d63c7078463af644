package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrIndexOutOfRange errorkit.Error = "ErrIndexOutOfRange"

// NotFound is the index reported when a lookup by value has no match.
const NotFound = -1

type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iter.Seq2[int, T]
	Sizer
}

type Sequence[T any] interface {
	List[T]
	Get(index int) (T, error)
	Lookup(index int) (T, bool)
	Set(index int, v T) (T, error)
	Insert(index int, v T) error
	RemoveAt(index int) (T, error)
	Swap(i, j int) error
}

type Sizer interface {
	Len() int
}
