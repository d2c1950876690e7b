package exprs

import "golang.org/x/exp/constraints"

// Number covers the operand types the arithmetic constructors accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// BinaryExpr combines the values of two child nodes with a fixed binary
// function. It is pure: no stored value, no registry of its own.
// Dependent registration is forwarded to both children, so anything
// caching this node ends up registered with every mutable leaf below it.
//
// The operator constructors in ops_generated.go are the usual way to
// build one; Combine is the primitive they share and also accepts mixed
// operand and output types.
type BinaryExpr[L, R, O any] struct {
	op  string
	lhs Expr[L]
	rhs Expr[R]
	fn  func(L, R) O
}

var _ = Expr[int](&BinaryExpr[int8, uint8, int]{})

// Combine builds a pure node computing fn over the current values of lhs
// and rhs. op names the operation in diagnostics.
func Combine[L, R, O any](op string, lhs Expr[L], rhs Expr[R], fn func(L, R) O) *BinaryExpr[L, R, O] {
	return &BinaryExpr[L, R, O]{op: op, lhs: lhs, rhs: rhs, fn: fn}
}

// Eval applies the operator to the children's current values. Every call
// re-evaluates both children.
func (e *BinaryExpr[L, R, O]) Eval() O {
	return e.fn(e.lhs.Eval(), e.rhs.Eval())
}

// ForwardAdd registers r with both children.
func (e *BinaryExpr[L, R, O]) ForwardAdd(r Ref) {
	e.lhs.ForwardAdd(r)
	e.rhs.ForwardAdd(r)
}

// ForwardRemove unregisters dep from both children.
func (e *BinaryExpr[L, R, O]) ForwardRemove(dep Dependent) {
	e.lhs.ForwardRemove(dep)
	e.rhs.ForwardRemove(dep)
}

// Inspect describes the node for diagnostics.
func (e *BinaryExpr[L, R, O]) Inspect() Inspection {
	return Inspection{Label: e.op, Operands: operands(e.lhs, e.rhs)}
}

// UnaryExpr derives a value from one child node through a fixed
// function. Like BinaryExpr it is pure and forwards registration.
type UnaryExpr[A, O any] struct {
	op    string
	inner Expr[A]
	fn    func(A) O
}

var _ = Expr[string](&UnaryExpr[int, string]{})

// Transform builds a pure node computing fn over inner's current value.
func Transform[A, O any](op string, inner Expr[A], fn func(A) O) *UnaryExpr[A, O] {
	return &UnaryExpr[A, O]{op: op, inner: inner, fn: fn}
}

func (e *UnaryExpr[A, O]) Eval() O {
	return e.fn(e.inner.Eval())
}

func (e *UnaryExpr[A, O]) ForwardAdd(r Ref) {
	e.inner.ForwardAdd(r)
}

func (e *UnaryExpr[A, O]) ForwardRemove(dep Dependent) {
	e.inner.ForwardRemove(dep)
}

func (e *UnaryExpr[A, O]) Inspect() Inspection {
	return Inspection{Label: e.op, Operands: operands(e.inner)}
}
