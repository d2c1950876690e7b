package exprs

import "fmt"

// Input is a mutable leaf node. It holds the most recently set value and
// the registry of everything depending on it. Set is the only mutator
// and pushes a synchronous notification through the graph before
// returning.
//
// Input deliberately has no Update method: an input is only ever a
// source of notifications, never a target.
type Input[T any] struct {
	Dependents
	value T
}

var _ = Expr[int](&Input[int]{})

// NewInput creates an input holding an initial value.
func NewInput[T any](v T) *Input[T] {
	return &Input[T]{value: v}
}

// Eval returns the most recently set value.
func (n *Input[T]) Eval() T {
	return n.value
}

// Set stores v and synchronously notifies all dependents. When Set
// returns, every eager cache downstream has recomputed and every lazy
// cache downstream is dirty.
func (n *Input[T]) Set(v T) {
	n.value = v
	n.Notify()
}

// Inspect describes the node for diagnostics.
func (n *Input[T]) Inspect() Inspection {
	return Inspection{Label: fmt.Sprintf("input(%v)", n.value)}
}
