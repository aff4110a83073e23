// Package sorting defines the Strategy capability and its implementations.
//
// A Strategy receives a sequence of ints and returns a new sequence holding the
// same values in non-decreasing order. Implementations never mutate the
// caller's slice, so a Strategy can be shared freely once it is wired.
//
// Two implementations exist on purpose:
//
//   - Bubble: adjacent-pair swaps with early exit on a clean pass.
//   - Insertion: shifts each element left into its slot.
//
// Having two implementations of one interface is what makes selection at the
// composition root necessary; see package app.
package sorting
