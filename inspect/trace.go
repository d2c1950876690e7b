package inspect

import (
	"github.com/futile/exprs"
	"github.com/go-logr/logr"
)

// Traced is an observable relay: it wraps an inner node, logs
// evaluations and invalidations through logr, and otherwise behaves as a
// transparent pass-through. It owns a registry and registers itself with
// the wrapped subtree, so inserting it adds one hop to the propagation
// path but changes no values.
//
// Traced never caches; every Eval evaluates the inner node.
type Traced[T any] struct {
	exprs.Dependents
	inner exprs.Expr[T]
	name  string
	log   logr.Logger
	self  exprs.Ref
}

var _ = exprs.Expr[int](&Traced[int]{})
var _ = exprs.Dependent(&Traced[int]{})

// TraceOption configures a Traced node.
type TraceOption func(*traceConfig)

type traceConfig struct {
	name string
	log  logr.Logger
}

// WithLogr routes the node's output through the given logger. The
// default discards everything.
var WithLogr = func(log logr.Logger) TraceOption {
	return func(c *traceConfig) {
		c.log = log
	}
}

// WithName labels the node in log lines and in Render output.
var WithName = func(name string) TraceOption {
	return func(c *traceConfig) {
		c.name = name
	}
}

// NewTraced wraps inner in a tracing relay.
func NewTraced[T any](inner exprs.Expr[T], opts ...TraceOption) *Traced[T] {
	cfg := traceConfig{
		name: "traced",
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Traced[T]{inner: inner, name: cfg.name, log: cfg.log}
	t.self = exprs.NewRef(t)
	inner.ForwardAdd(t.self)
	return t
}

// Eval evaluates the inner node, logs the value, and returns it
// unchanged.
func (t *Traced[T]) Eval() T {
	v := t.inner.Eval()
	t.log.V(1).Info("eval", "node", t.name, "value", v)
	return v
}

// Update logs the invalidation and passes it on to this node's own
// dependents.
func (t *Traced[T]) Update() {
	t.log.Info("update", "node", t.name)
	t.Notify()
}

// ForwardAdd registers r with this node and logs the registration.
func (t *Traced[T]) ForwardAdd(r exprs.Ref) {
	t.log.V(1).Info("forward-add", "node", t.name)
	t.Dependents.ForwardAdd(r)
}

// ForwardRemove unregisters dep from this node and logs it.
func (t *Traced[T]) ForwardRemove(dep exprs.Dependent) {
	t.log.V(1).Info("forward-remove", "node", t.name)
	t.Dependents.ForwardRemove(dep)
}

// Inspect describes the node for diagnostics.
func (t *Traced[T]) Inspect() exprs.Inspection {
	ins := exprs.Inspection{Label: t.name}
	if in, ok := t.inner.(exprs.Inspectable); ok {
		ins.Operands = []exprs.Inspectable{in}
	}
	return ins
}
