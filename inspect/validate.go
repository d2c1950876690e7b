package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/futile/exprs"
	"go.uber.org/multierr"
)

// Validation limits to keep pathological graphs from recursing forever.
const (
	DefaultMaxDepth    = 500
	DefaultMaxOperands = 1000
)

// Sentinel errors for structural findings.
var (
	ErrCycle      = errors.New("cycle detected in expression graph")
	ErrNilOperand = errors.New("nil operand")
	ErrTooDeep    = errors.New("maximum depth exceeded")
	ErrTooWide    = errors.New("maximum operand count exceeded")
)

// ValidateOption configures a Validate run.
type ValidateOption func(*validator)

// WithMaxDepth overrides DefaultMaxDepth.
var WithMaxDepth = func(n int) ValidateOption {
	return func(v *validator) {
		v.maxDepth = n
	}
}

// WithMaxOperands overrides DefaultMaxOperands.
var WithMaxOperands = func(n int) ValidateOption {
	return func(v *validator) {
		v.maxOperands = n
	}
}

// Validate lints the structure of the graph rooted at root: cycles, nil
// operands, and out-of-bound shapes. All findings of one walk are
// reported together; match them with errors.Is against the sentinel
// errors above. A nil result means the graph is sound.
//
// Cycles found here would otherwise surface as re-entrancy panics the
// first time a write propagates through them.
func Validate(root exprs.Inspectable, opts ...ValidateOption) error {
	v := &validator{
		maxDepth:    DefaultMaxDepth,
		maxOperands: DefaultMaxOperands,
		visited:     map[exprs.Inspectable]bool{},
		onPath:      map[exprs.Inspectable]bool{},
	}
	for _, opt := range opts {
		opt(v)
	}

	if root == nil {
		return fmt.Errorf("%w: root", ErrNilOperand)
	}

	v.walk(root, nil, 0)
	return v.errs
}

type validator struct {
	maxDepth    int
	maxOperands int
	visited     map[exprs.Inspectable]bool
	onPath      map[exprs.Inspectable]bool
	errs        error
}

// walk runs a depth-first search over strong child references, tracking
// the current ancestor path for cycle reporting. Nodes shared between
// branches are descended into once.
func (v *validator) walk(n exprs.Inspectable, path []string, depth int) {
	ins := n.Inspect()
	path = append(path, ins.Label)

	if depth > v.maxDepth {
		v.errs = multierr.Append(v.errs, fmt.Errorf("%w: depth %d at %s",
			ErrTooDeep, depth, strings.Join(path, " -> ")))
		return
	}
	if len(ins.Operands) > v.maxOperands {
		v.errs = multierr.Append(v.errs, fmt.Errorf("%w: node %s has %d operands, exceeds maximum %d",
			ErrTooWide, ins.Label, len(ins.Operands), v.maxOperands))
	}

	v.visited[n] = true
	v.onPath[n] = true

	for _, op := range ins.Operands {
		if op == nil {
			v.errs = multierr.Append(v.errs, fmt.Errorf("%w: under %s",
				ErrNilOperand, strings.Join(path, " -> ")))
			continue
		}
		if v.onPath[op] {
			cyclePath := strings.Join(append(path, op.Inspect().Label), " -> ")
			v.errs = multierr.Append(v.errs, fmt.Errorf("%w: %s", ErrCycle, cyclePath))
			continue
		}
		if v.visited[op] {
			continue
		}
		v.walk(op, path, depth+1)
	}

	v.onPath[n] = false
}
