package inspect

import (
	"strings"

	"github.com/futile/exprs"
)

// Render returns a human-readable tree of the expression rooted at root,
// one node per line:
//
//	cached(38)
//	└─> mul
//	    ├─> input(9.5)
//	    └─> input(4)
//
// A node shared between branches is rendered once per occurrence. A node
// that appears on its own ancestor path is marked as a cycle and not
// descended into.
func Render(root exprs.Inspectable) string {
	var sb strings.Builder
	sb.WriteString(root.Inspect().Label)
	sb.WriteString("\n")
	renderOperands(&sb, root, "", map[exprs.Inspectable]bool{root: true})
	return sb.String()
}

func renderOperands(sb *strings.Builder, n exprs.Inspectable, prefix string, onPath map[exprs.Inspectable]bool) {
	ops := n.Inspect().Operands
	for i, op := range ops {
		connector, childPrefix := "├─> ", prefix+"│   "
		if i == len(ops)-1 {
			connector, childPrefix = "└─> ", prefix+"    "
		}

		if op == nil {
			sb.WriteString(prefix + connector + "<nil>\n")
			continue
		}

		label := op.Inspect().Label
		if onPath[op] {
			sb.WriteString(prefix + connector + label + " (cycle)\n")
			continue
		}

		sb.WriteString(prefix + connector + label + "\n")
		onPath[op] = true
		renderOperands(sb, op, childPrefix, onPath)
		delete(onPath, op)
	}
}
