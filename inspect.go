package exprs

// Inspection is a point-in-time description of a node: a short label and
// the children the node holds strong references to, in construction
// order.
type Inspection struct {
	Label    string
	Operands []Inspectable
}

// Inspectable is implemented by every node type in this package.
// Diagnostic tooling walks Inspect to render or lint a graph. Inspect
// never evaluates anything and never touches a registry; in particular a
// dirty lazy cache stays dirty.
//
// Custom node types may implement Inspectable to appear in diagnostics.
// Children that do not implement it are skipped.
type Inspectable interface {
	Inspect() Inspection
}

// operands collects the children able to describe themselves.
func operands(children ...any) []Inspectable {
	out := make([]Inspectable, 0, len(children))
	for _, c := range children {
		if in, ok := c.(Inspectable); ok {
			out = append(out, in)
		}
	}
	return out
}
