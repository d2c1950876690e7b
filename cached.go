package exprs

import "fmt"

// Cached is the eager cache: it wraps an inner node, keeps a copy of its
// last output, and keeps that copy fresh by recomputing during every
// upstream notification. A read is a field access.
//
// Construction evaluates the inner node once and registers the cache
// with every mutable leaf under it. The stored value is stale only
// between an upstream write and this node's own Update running; code
// called from inside that propagation, such as another node's Update
// handler, can observe the intermediate state.
type Cached[T any] struct {
	Dependents
	inner Expr[T]
	value T
	self  Ref
}

var _ = Expr[int](&Cached[int]{})
var _ = Dependent(&Cached[int]{})

// NewCached wraps inner in an eager cache. inner is evaluated
// immediately.
func NewCached[T any](inner Expr[T]) *Cached[T] {
	c := &Cached[T]{inner: inner}
	c.value = inner.Eval()
	c.self = NewRef(c)
	inner.ForwardAdd(c.self)
	return c
}

// Eval returns the cached value.
func (c *Cached[T]) Eval() T {
	return c.value
}

// Update recomputes from the inner node, stores the result, and notifies
// this cache's own dependents. The inner node is evaluated before the
// stored value is replaced.
func (c *Cached[T]) Update() {
	v := c.inner.Eval()
	c.value = v
	c.Notify()
}

// SetInner rebinds the cache to a new inner node: unregister from the
// old node's leaves, swap, register with the new node's leaves, then
// recompute and propagate as if freshly constructed. Writes to the old
// subtree no longer reach this cache afterwards.
func (c *Cached[T]) SetInner(inner Expr[T]) {
	c.inner.ForwardRemove(c)
	c.inner = inner
	inner.ForwardAdd(c.self)
	c.Update()
}

// Inspect describes the node for diagnostics.
func (c *Cached[T]) Inspect() Inspection {
	return Inspection{Label: fmt.Sprintf("cached(%v)", c.value), Operands: operands(c.inner)}
}
