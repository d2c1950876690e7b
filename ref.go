package exprs

import "weak"

// Ref is a weak handle to a Dependent. Registries store Refs so that
// they never keep a dependent alive: once the last ordinary reference to
// the dependent is gone, Resolve reports false and the entry is dropped
// on the next registry traversal.
type Ref interface {
	// Resolve returns the dependent this handle points at, or false if
	// it has been collected.
	Resolve() (Dependent, bool)
}

// NewRef creates a weak handle to a node. Both type arguments are
// inferred from the argument; the pointer type parameter exists so the
// handle can be taken on any concrete node with pointer receivers.
func NewRef[N any, PN interface {
	*N
	Dependent
}](node PN) Ref {
	return weakRef[N, PN]{p: weak.Make((*N)(node))}
}

type weakRef[N any, PN interface {
	*N
	Dependent
}] struct {
	p weak.Pointer[N]
}

func (r weakRef[N, PN]) Resolve() (Dependent, bool) {
	sp := r.p.Value()
	if sp == nil {
		return nil, false
	}
	return PN(sp), true
}
