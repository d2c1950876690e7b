package exprs

//go:generate go run ./codegen -w

import "golang.org/x/exp/constraints"

// Add returns a pure node evaluating to the sum of its operands.
func Add[T Number](lhs Expr[T], rhs Expr[T]) *BinaryExpr[T, T, T] {
	return Combine("add", lhs, rhs, func(l, r T) T { return l + r })
}

// Sub returns a pure node evaluating to the difference of its operands.
func Sub[T Number](lhs Expr[T], rhs Expr[T]) *BinaryExpr[T, T, T] {
	return Combine("sub", lhs, rhs, func(l, r T) T { return l - r })
}

// Mul returns a pure node evaluating to the product of its operands.
func Mul[T Number](lhs Expr[T], rhs Expr[T]) *BinaryExpr[T, T, T] {
	return Combine("mul", lhs, rhs, func(l, r T) T { return l * r })
}

// Div returns a pure node evaluating to the quotient of its operands.
func Div[T Number](lhs Expr[T], rhs Expr[T]) *BinaryExpr[T, T, T] {
	return Combine("div", lhs, rhs, func(l, r T) T { return l / r })
}

// Rem returns a pure node evaluating to the remainder of its operands.
func Rem[T constraints.Integer](lhs Expr[T], rhs Expr[T]) *BinaryExpr[T, T, T] {
	return Combine("rem", lhs, rhs, func(l, r T) T { return l % r })
}

// Shl returns a pure node evaluating to its left operand shifted left by its right operand.
// The shift count may have its own integer type; the result has the left
// operand's type.
func Shl[T constraints.Integer, S constraints.Integer](lhs Expr[T], count Expr[S]) *BinaryExpr[T, S, T] {
	return Combine("shl", lhs, count, func(l T, c S) T { return l << c })
}

// Shr returns a pure node evaluating to its left operand shifted right by its right operand.
// The shift count may have its own integer type; the result has the left
// operand's type.
func Shr[T constraints.Integer, S constraints.Integer](lhs Expr[T], count Expr[S]) *BinaryExpr[T, S, T] {
	return Combine("shr", lhs, count, func(l T, c S) T { return l >> c })
}

// BitAnd returns a pure node evaluating to the bitwise AND of its operands.
func BitAnd[T constraints.Integer](lhs Expr[T], rhs Expr[T]) *BinaryExpr[T, T, T] {
	return Combine("and", lhs, rhs, func(l, r T) T { return l & r })
}

// BitOr returns a pure node evaluating to the bitwise OR of its operands.
func BitOr[T constraints.Integer](lhs Expr[T], rhs Expr[T]) *BinaryExpr[T, T, T] {
	return Combine("or", lhs, rhs, func(l, r T) T { return l | r })
}

// BitXor returns a pure node evaluating to the bitwise XOR of its operands.
func BitXor[T constraints.Integer](lhs Expr[T], rhs Expr[T]) *BinaryExpr[T, T, T] {
	return Combine("xor", lhs, rhs, func(l, r T) T { return l ^ r })
}
