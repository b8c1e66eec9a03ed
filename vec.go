package arrayvec

import (
	"cmp"
	"iter"
	"slices"

	"github.com/djdv/go-arrayvec/internal/slots"
)

type (
	// Vec is a sequence of up to [Vec.Cap] elements,
	// stored contiguously in a block allocated once by [New].
	// Concurrent access must be guarded by the caller.
	Vec[T any] struct {
		storage slots.Block[T]
		length  int
	}
)

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 0

// New creates an empty [Vec] which can hold up to capacity elements.
func New[T any](capacity int) (*Vec[T], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	return &Vec[T]{
		storage: slots.New[T](capacity),
	}, nil
}

// From creates a [Vec] with the given capacity, holding values.
// If values do not fit, a [CapacityError] carrying values is returned.
func From[T any](capacity int, values ...T) (*Vec[T], error) {
	vec, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	if err := vec.Extend(values...); err != nil {
		return nil, err
	}
	return vec, nil
}

// Len returns the number of elements in the vector.
func (v *Vec[_]) Len() int { return v.length }

// Cap returns the fixed capacity of the vector.
func (v *Vec[_]) Cap() int { return v.storage.Len() }

// Remaining returns how many more elements fit in the vector.
func (v *Vec[_]) Remaining() int { return v.Cap() - v.length }

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[_]) IsEmpty() bool { return v.length == 0 }

// IsFull reports whether the vector is at capacity.
func (v *Vec[_]) IsFull() bool { return v.length == v.Cap() }

// Push appends value to the end of the vector.
// If the vector is full, a [CapacityError]
// carrying value is returned instead.
func (v *Vec[T]) Push(value T) error {
	if v.IsFull() {
		return NewCapacityError(value)
	}
	v.storage.Store(v.length, value)
	v.length++
	if debugging {
		assert(v.length <= v.Cap(),
			"push exceeded capacity")
	}
	return nil
}

// Insert places value at index, shifting the elements
// at and after index to the right.
// An index outside of [0, Len] returns an error wrapping
// [ErrIndexOutOfRange]; a full vector returns a [CapacityError].
func (v *Vec[T]) Insert(index int, value T) error {
	if index < 0 || index > v.length {
		return indexError(index, v.length)
	}
	if v.IsFull() {
		return NewCapacityError(value)
	}
	v.storage.Shift(index+1, index, v.length-index)
	v.storage.Store(index, value)
	v.length++
	if debugging {
		assert(v.length <= v.Cap(),
			"insert exceeded capacity")
	}
	return nil
}

// Extend appends all of values to the vector.
// Either every value fits and is appended, or none are appended
// and a [CapacityError] carrying values is returned.
func (v *Vec[T]) Extend(values ...T) error {
	if len(values) > v.Remaining() {
		return NewCapacityError(values)
	}
	v.length += v.storage.Copy(v.length, values)
	if debugging {
		assert(v.length <= v.Cap(),
			"extend exceeded capacity")
	}
	return nil
}

// Pop removes and returns the last element;
// if the vector is empty it returns the zero value and false.
func (v *Vec[T]) Pop() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	v.length--
	return v.storage.Take(v.length), true
}

// Remove removes and returns the element at index,
// shifting the elements after it to the left.
// If index is out of range it returns the zero value and false.
func (v *Vec[T]) Remove(index int) (T, bool) {
	if !v.inRange(index) {
		var zero T
		return zero, false
	}
	value := v.storage.Load(index)
	v.storage.Shift(index, index+1, v.length-index-1)
	v.length--
	v.storage.Take(v.length)
	return value, true
}

// SwapRemove removes and returns the element at index,
// replacing it with the last element. This does not preserve ordering.
// If index is out of range it returns the zero value and false.
func (v *Vec[T]) SwapRemove(index int) (T, bool) {
	if !v.inRange(index) {
		var zero T
		return zero, false
	}
	var (
		value = v.storage.Load(index)
		last  = v.length - 1
	)
	v.storage.Store(index, v.storage.Load(last))
	v.storage.Take(last)
	v.length = last
	return value, true
}

// Truncate shortens the vector to n elements.
// n is clamped to [0, Len], so truncating to a longer length does nothing.
// Removed slots are zeroed.
func (v *Vec[_]) Truncate(n int) {
	n = max(n, 0)
	if n >= v.length {
		return
	}
	v.storage.Zero(n, v.length)
	v.length = n
}

// Clear removes all elements.
func (v *Vec[_]) Clear() { v.Truncate(0) }

// Retain removes every element for which keep returns false,
// preserving the order of the remaining elements.
func (v *Vec[T]) Retain(keep func(T) bool) {
	kept := 0
	for i := range v.length {
		value := v.storage.Load(i)
		if !keep(value) {
			continue
		}
		if kept != i {
			v.storage.Store(kept, value)
		}
		kept++
	}
	v.Truncate(kept)
}

// Get returns the element at index;
// if index is out of range it returns the zero value and false.
func (v *Vec[T]) Get(index int) (T, bool) {
	if !v.inRange(index) {
		var zero T
		return zero, false
	}
	return v.storage.Load(index), true
}

// Set replaces the element at index and reports whether index was in range.
// Set never changes the length of the vector.
func (v *Vec[T]) Set(index int, value T) bool {
	if !v.inRange(index) {
		return false
	}
	v.storage.Store(index, value)
	return true
}

func (v *Vec[_]) inRange(index int) bool {
	return index >= 0 && index < v.length
}

// Slice returns the elements of the vector.
// The slice shares storage with the vector and is valid until
// the next modification of it. Its capacity equals its length,
// so appending to it copies rather than writing into the vector.
func (v *Vec[T]) Slice() []T {
	return v.storage.View(0, v.length)
}

// Array returns exactly [Vec.Cap] elements if the vector is full.
// Otherwise an [UnderfilledError] carrying v is returned,
// and v is left as it was.
//
// The returned slice follows the same rules as [Vec.Slice].
// Since its length is known, it may be converted
// to an array type without panicking; e.g.
// [3]int(s) for a vector constructed with capacity 3.
func (v *Vec[T]) Array() ([]T, error) {
	if !v.IsFull() {
		if debugging {
			assert(v.length < v.Cap(),
				"underfilled vector is not short of capacity")
		}
		return nil, NewUnderfilledError(v)
	}
	return v.storage.View(0, v.Cap()), nil
}

// All returns an iterator over index-value pairs, in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.storage.Load(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.storage.Load(i)) {
				return
			}
		}
	}
}

// Clone returns a copy of v with its own storage.
// Elements are copied by assignment.
func (v *Vec[T]) Clone() *Vec[T] {
	return &Vec[T]{
		storage: v.storage.Clone(),
		length:  v.length,
	}
}

// Equal reports whether a and b have the same capacity
// and hold equal elements in the same order.
func Equal[T comparable](a, b *Vec[T]) bool {
	return a.Cap() == b.Cap() &&
		slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like [Equal] but compares elements with eq.
func EqualFunc[T, U any](a *Vec[T], b *Vec[U], eq func(T, U) bool) bool {
	return a.Cap() == b.Cap() &&
		slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders vectors lexicographically by their elements,
// then by capacity.
func Compare[T cmp.Ordered](a, b *Vec[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like [Compare] but compares elements with compare.
func CompareFunc[T, U any](a *Vec[T], b *Vec[U], compare func(T, U) int) int {
	if order := slices.CompareFunc(a.Slice(), b.Slice(), compare); order != 0 {
		return order
	}
	return cmp.Compare(a.Cap(), b.Cap())
}
