package inspect

import (
	"fmt"

	"github.com/futile/exprs"
)

// Test helper: an inspectable node with hand-wired operands, used to
// build shapes the expression constructors refuse to produce.
type fakeNode struct {
	label    string
	operands []exprs.Inspectable
}

func (f *fakeNode) Inspect() exprs.Inspection {
	return exprs.Inspection{Label: f.label, Operands: f.operands}
}

// Test helper: a straight chain of n fake nodes, returning the head.
func fakeChain(n int) *fakeNode {
	head := &fakeNode{label: "n0"}
	tail := head
	for i := 1; i < n; i++ {
		next := &fakeNode{label: fmt.Sprintf("n%d", i)}
		tail.operands = []exprs.Inspectable{next}
		tail = next
	}
	return head
}
