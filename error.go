package arrayvec

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

type (
	constError string

	// CapacityError is returned when an insertion would exceed
	// a container's capacity. It carries the element that was rejected,
	// the container itself is left unmodified.
	CapacityError[T any] struct {
		element T
	}
	// SimpleCapacityError is a [CapacityError] without a payload.
	// See [CapacityError.Simplify].
	SimpleCapacityError = CapacityError[struct{}]

	// UnderfilledError is returned by operations that require
	// a completely filled [Vec] (such as [Vec.Array]).
	// It carries the vector, untouched, along with the
	// capacity and length the vector had when the error was created.
	UnderfilledError[T any] struct {
		inner            *Vec[T]
		capacity, length int
	}
)

const (
	// ErrInvalidCapacity may be returned from constructors
	// such as [New] and [NewString].
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrInsufficientCapacity matches every [CapacityError]
	// regardless of its element type, via [errors.Is].
	ErrInsufficientCapacity = constError("insufficient capacity")
	// ErrUnderfilled matches every [UnderfilledError]
	// regardless of its element type, via [errors.Is].
	ErrUnderfilled = constError("capacity is not filled")
	// ErrIndexOutOfRange may be returned from [Vec.Insert].
	ErrIndexOutOfRange = constError("index out of range")
	// ErrNotRuneBoundary may be returned from [String.Truncate].
	ErrNotRuneBoundary = constError("not a rune boundary")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}

func indexError(index, length int) error {
	return fmt.Errorf(
		"%w: index %d is out of bounds in vector of length %d",
		ErrIndexOutOfRange, index, length)
}

func boundaryError(index int) error {
	return fmt.Errorf(
		"%w: byte index %d",
		ErrNotRuneBoundary, index)
}

// NewCapacityError wraps element in a [CapacityError].
func NewCapacityError[T any](element T) CapacityError[T] {
	return CapacityError[T]{element: element}
}

// Element returns the element that could not be inserted.
func (ce CapacityError[T]) Element() T { return ce.element }

// Simplify discards the element.
// All simplified errors are equal to each other.
func (CapacityError[T]) Simplify() SimpleCapacityError {
	return SimpleCapacityError{}
}

func (CapacityError[T]) Error() string { return string(ErrInsufficientCapacity) }

func (CapacityError[T]) Unwrap() error { return ErrInsufficientCapacity }

// Format renders the error text for %s and %v.
// %+v and %#v prefix it with the type name.
func (ce CapacityError[T]) Format(f fmt.State, verb rune) {
	formatError(f, verb, "CapacityError", ce)
}

// CompareCapacityErrors orders errors by their elements.
func CompareCapacityErrors[T cmp.Ordered](a, b CapacityError[T]) int {
	return cmp.Compare(a.element, b.element)
}

// NewUnderfilledError wraps vec in an [UnderfilledError].
// The error's text and comparisons reflect vec as it is now;
// later changes to vec do not affect them.
// A nil vec is treated as a vector of capacity 0.
func NewUnderfilledError[T any](vec *Vec[T]) UnderfilledError[T] {
	ue := UnderfilledError[T]{inner: vec}
	if vec != nil {
		ue.capacity = vec.Cap()
		ue.length = vec.Len()
	}
	return ue
}

// TakeInner returns the partially filled vector.
func (ue UnderfilledError[T]) TakeInner() *Vec[T] { return ue.inner }

// Capacity returns the capacity of the carried vector;
// i.e. the length that was expected.
func (ue UnderfilledError[T]) Capacity() int { return ue.capacity }

// Len returns the length the carried vector had
// when the error was created.
func (ue UnderfilledError[T]) Len() int { return ue.length }

func (ue UnderfilledError[T]) Error() string {
	return fmt.Sprintf(
		"%s: expected %d, got %d",
		ErrUnderfilled, ue.capacity, ue.length)
}

func (UnderfilledError[T]) Unwrap() error { return ErrUnderfilled }

// Format renders the error text for %s and %v.
// %+v and %#v prefix it with the type name.
func (ue UnderfilledError[T]) Format(f fmt.State, verb rune) {
	formatError(f, verb, "UnderfilledError", ue)
}

// elements returns the first [UnderfilledError.Len] elements
// of the carried vector, or fewer if it has since been shortened.
func (ue UnderfilledError[T]) elements() []T {
	if ue.inner == nil {
		return nil
	}
	elements := ue.inner.Slice()
	return elements[:min(ue.length, len(elements))]
}

// EqualUnderfilled reports whether both errors carry vectors
// of the same capacity and length, holding equal elements.
// See [Equal].
func EqualUnderfilled[T comparable](a, b UnderfilledError[T]) bool {
	return a.capacity == b.capacity &&
		a.length == b.length &&
		slices.Equal(a.elements(), b.elements())
}

// CompareUnderfilled orders errors by their vectors' elements,
// then by capacity. See [Compare].
func CompareUnderfilled[T cmp.Ordered](a, b UnderfilledError[T]) int {
	if order := slices.Compare(a.elements(), b.elements()); order != 0 {
		return order
	}
	return cmp.Compare(a.capacity, b.capacity)
}

func formatError(f fmt.State, verb rune, name string, err error) {
	switch verb {
	case 'v':
		if f.Flag('+') || f.Flag('#') {
			fmt.Fprintf(f, "%s: %s", name, err.Error())
			return
		}
		io.WriteString(f, err.Error())
	case 's':
		io.WriteString(f, err.Error())
	case 'q':
		fmt.Fprintf(f, "%q", err.Error())
	default:
		fmt.Fprintf(f, "%%!%c(%s)", verb, err.Error())
	}
}
