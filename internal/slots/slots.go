// Package slots provides the fixed storage block used by bounded containers.
package slots

type (
	// A Block is a contiguous run of slots whose count is fixed
	// when the block is created. Slots that were never stored to
	// (or were taken/zeroed) hold the zero value of T.
	//
	// Block does not track which slots are live;
	// length bookkeeping belongs to the container built on top of it.
	// Copying a Block aliases the same slots, use [Block.Clone] for
	// an independent copy.
	Block[T any] struct {
		slots []T
	}
)

// New allocates a block of n slots.
// This is the only allocation a block ever makes.
func New[T any](n int) Block[T] {
	return Block[T]{slots: make([]T, n)}
}

// Len returns the number of slots in the block.
func (b Block[T]) Len() int { return len(b.slots) }

// Load returns the value held in slot i.
func (b Block[T]) Load(i int) T { return b.slots[i] }

// Store places value into slot i, overwriting any previous value.
func (b Block[T]) Store(i int, value T) { b.slots[i] = value }

// Take returns the value held in slot i and resets the slot
// to the zero value, so the block no longer references it.
func (b Block[T]) Take(i int) T {
	var zero T
	value := b.slots[i]
	b.slots[i] = zero
	return value
}

// Shift moves count slots starting at src so that they start at dst.
// The ranges may overlap. Slots vacated by the move keep their old
// values; callers are expected to overwrite or [Block.Zero] them.
func (b Block[T]) Shift(dst, src, count int) {
	if count <= 0 || dst == src {
		return
	}
	copy(b.slots[dst:dst+count], b.slots[src:src+count])
}

// Copy stores values into consecutive slots starting at slot i
// and returns the number of slots written.
func (b Block[T]) Copy(i int, values []T) int {
	return copy(b.slots[i:], values)
}

// Zero resets slots [from, to) to the zero value.
func (b Block[T]) Zero(from, to int) {
	if from >= to {
		return
	}
	clear(b.slots[from:to])
}

// View returns the slots [from, to) as a slice whose capacity
// ends at to, so appending to the view reallocates instead of
// writing into the slots that follow it.
func (b Block[T]) View(from, to int) []T {
	return b.slots[from:to:to]
}

// Clone returns a new block with the same number of slots
// holding copies of b's values.
func (b Block[T]) Clone() Block[T] {
	clone := New[T](len(b.slots))
	copy(clone.slots, b.slots)
	return clone
}
