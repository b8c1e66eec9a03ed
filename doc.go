// Package arrayvec implements bounded containers: a vector ([Vec])
// and a text buffer ([String]) whose capacity is fixed when they are
// constructed, and which never reallocate.
//
// The containers never silently drop data at their capacity boundary.
// Instead, boundary violations are returned as error values which hand
// the data back to the caller.
//
// Glossary and invariants:
//
//   - Capacity
//
//     The number of slots allocated by [New] or [NewString].
//     Fixed for the lifetime of the container.
//
//   - Length
//
//     The number of slots in use; always 0 ≤ length ≤ capacity.
//
//   - Overflow
//
//     An insertion that would make length exceed capacity.
//     Reported by [CapacityError], which carries the rejected element
//     (or batch, for bulk insertions such as [Vec.Extend]).
//
//   - Underfill
//
//     A container whose length is less than its capacity,
//     observed by an operation that requires it to be full ([Vec.Array]).
//     Reported by [UnderfilledError], which carries the container.
//
// Operations:
//
//   - Insertion
//
//     Either succeeds completely or returns an error without modifying the
//     container. Bulk insertion is all-or-nothing; there is no partial write.
//
//   - Removal
//
//     Never produces capacity errors. Removing from an empty container
//     (or at an index out of range) is reported with a boolean.
//     Vacated slots are zeroed so that the container does not keep
//     removed values reachable.
//
// Errors:
//
// Both error types match a sentinel through [errors.Is]
// ([ErrInsufficientCapacity] and [ErrUnderfilled]), and their typed
// payload may be recovered with [errors.As].
// Their text is stable: "insufficient capacity" and
// "capacity is not filled: expected {capacity}, got {length}".
//
// Building with the `arrayvec_debug` tag enables internal assertions.
package arrayvec
