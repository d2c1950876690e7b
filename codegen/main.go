package main

import (
	"fmt"
	"os"
	"strings"
)

type op struct {
	name  string
	label string
	token string
	kind  string // "number", "integer" or "shift"
	doc   string
}

var ops = []op{
	{"Add", "add", "+", "number", "the sum of its operands"},
	{"Sub", "sub", "-", "number", "the difference of its operands"},
	{"Mul", "mul", "*", "number", "the product of its operands"},
	{"Div", "div", "/", "number", "the quotient of its operands"},
	{"Rem", "rem", "%", "integer", "the remainder of its operands"},
	{"Shl", "shl", "<<", "shift", "its left operand shifted left by its right operand"},
	{"Shr", "shr", ">>", "shift", "its left operand shifted right by its right operand"},
	{"BitAnd", "and", "&", "integer", "the bitwise AND of its operands"},
	{"BitOr", "or", "|", "integer", "the bitwise OR of its operands"},
	{"BitXor", "xor", "^", "integer", "the bitwise XOR of its operands"},
}

func generateOp(o op) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "// %s returns a pure node evaluating to %s.\n", o.name, o.doc)

	switch o.kind {
	case "shift":
		sb.WriteString("// The shift count may have its own integer type; the result has the left\n")
		sb.WriteString("// operand's type.\n")
		fmt.Fprintf(&sb, "func %s[T constraints.Integer, S constraints.Integer](lhs Expr[T], count Expr[S]) *BinaryExpr[T, S, T] {\n", o.name)
		fmt.Fprintf(&sb, "\treturn Combine(%q, lhs, count, func(l T, c S) T { return l %s c })\n", o.label, o.token)
	default:
		constraint := "Number"
		if o.kind == "integer" {
			constraint = "constraints.Integer"
		}
		fmt.Fprintf(&sb, "func %s[T %s](lhs Expr[T], rhs Expr[T]) *BinaryExpr[T, T, T] {\n", o.name, constraint)
		fmt.Fprintf(&sb, "\treturn Combine(%q, lhs, rhs, func(l, r T) T { return l %s r })\n", o.label, o.token)
	}

	sb.WriteString("}\n\n")

	return sb.String()
}

const header = `package exprs

//go:generate go run ./codegen -w

import "golang.org/x/exp/constraints"

`

func main() {
	var output strings.Builder

	for _, o := range ops {
		output.WriteString(generateOp(o))
	}

	fmt.Print(output.String())

	if len(os.Args) > 1 && os.Args[1] == "-w" {
		file, err := os.OpenFile("ops_generated.go", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			panic(err)
		}
		defer file.Close()

		file.WriteString(header)
		file.WriteString(strings.TrimSuffix(output.String(), "\n"))
		fmt.Println("Generated ops_generated.go")
	}
}
