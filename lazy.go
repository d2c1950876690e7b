package exprs

import "fmt"

// Lazy is the pull cache: it wraps an inner node and stores its output
// only when somebody reads it. An upstream notification clears the
// stored value and passes the invalidation on; the recomputation happens
// on the next Eval, and only then.
//
// Construction registers the cache with every mutable leaf under it but
// does not evaluate; a fresh Lazy is dirty.
type Lazy[T any] struct {
	Dependents
	inner      Expr[T]
	value      T
	populated  bool
	evaluating bool
	self       Ref
}

var _ = Expr[int](&Lazy[int]{})
var _ = Dependent(&Lazy[int]{})

// NewLazy wraps inner in a lazy cache. inner is not evaluated until the
// first Eval call.
func NewLazy[T any](inner Expr[T]) *Lazy[T] {
	l := &Lazy[T]{inner: inner}
	l.self = NewRef(l)
	inner.ForwardAdd(l.self)
	return l
}

// Eval returns the stored value, recomputing it first if the node is
// dirty. Re-entering Eval while that recomputation is already running
// can only happen through a cyclic graph and panics.
func (l *Lazy[T]) Eval() T {
	if l.populated {
		return l.value
	}
	if l.evaluating {
		panic("exprs: lazy evaluation re-entered (cyclic graph?)")
	}
	l.evaluating = true
	defer func() { l.evaluating = false }()
	l.value = l.inner.Eval()
	l.populated = true
	return l.value
}

// Update discards the stored value, marks the node dirty, and notifies
// this cache's own dependents. Nothing is recomputed here; downstream
// nodes decide for themselves when to read again.
func (l *Lazy[T]) Update() {
	if l.evaluating {
		panic("exprs: lazy cache invalidated during its own evaluation")
	}
	var zero T
	l.value = zero
	l.populated = false
	l.Notify()
}

// SetInner rebinds the cache to a new inner node: unregister from the
// old node's leaves, swap, register with the new node's leaves, then
// invalidate and propagate. The next Eval answers from the new subtree.
func (l *Lazy[T]) SetInner(inner Expr[T]) {
	l.inner.ForwardRemove(l)
	l.inner = inner
	inner.ForwardAdd(l.self)
	l.Update()
}

// Inspect describes the node for diagnostics. A dirty node reports
// itself dirty; Inspect never triggers a recomputation.
func (l *Lazy[T]) Inspect() Inspection {
	label := "lazy(dirty)"
	if l.populated {
		label = fmt.Sprintf("lazy(%v)", l.value)
	}
	return Inspection{Label: label, Operands: operands(l.inner)}
}
