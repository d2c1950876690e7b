package exprs

import "fmt"

// Const is a leaf node holding a fixed value. It never changes, so it
// never needs dependents and both forwarding operations are no-ops. Use
// it to place a literal into an expression without an Input.
type Const[T any] struct {
	value T
}

var _ = Expr[int](&Const[int]{})

// NewConst wraps a value in a node.
func NewConst[T any](v T) *Const[T] {
	return &Const[T]{value: v}
}

// Eval returns the wrapped value.
func (c *Const[T]) Eval() T {
	return c.value
}

// ForwardAdd does nothing; a constant never notifies anyone.
func (c *Const[T]) ForwardAdd(Ref) {}

// ForwardRemove does nothing.
func (c *Const[T]) ForwardRemove(Dependent) {}

// Inspect describes the node for diagnostics.
func (c *Const[T]) Inspect() Inspection {
	return Inspection{Label: fmt.Sprintf("const(%v)", c.value)}
}
