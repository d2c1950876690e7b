package exprs

// Node is anything that can produce a value of its output type on
// demand. Eval must be a total function of the node's current state: it
// may recursively evaluate children, but it must not touch any dependent
// registry. Pure nodes recompute on every call; stateful nodes answer
// from stored state.
type Node[T any] interface {
	Eval() T
}

// Dependent is the notification side of a node. It does not know the
// value types of the nodes it observes, because it would otherwise need
// an unbounded number of generic parameters; value types stay hidden
// inside the implementations and notification is type-erased.
//
// Update is invoked by an upstream registry when that node's value may
// have changed. An eager cache recomputes and propagates; a lazy cache
// discards its stored value and propagates the invalidation.
type Dependent interface {
	Update()
}

// Forwarder routes dependent registration through a node. A node with a
// registry of its own registers the dependent with itself; a pass-through
// node delegates to every child, so that a cache wrapping a deep
// expression ends up registered with every mutable leaf under it. A
// constant ignores both calls.
type Forwarder interface {
	ForwardAdd(r Ref)
	ForwardRemove(dep Dependent)
}

// Expr is the operand capability: a node that can be evaluated and that
// participates in dependent registration. Every node type in this
// package implements it; combinators and caches accept their children
// through it.
type Expr[T any] interface {
	Node[T]
	Forwarder
}
