// Package exprs provides an in-process incremental computation graph:
// expressions built from mutable inputs, pure combinators, and cache
// nodes that notice upstream changes on their own.
//
// # Overview
//
// A graph is built bottom-up out of nodes. Input is a mutable leaf;
// Const wraps a literal; the operator constructors (Add, Mul, Shl, ...)
// and Combine build pure nodes over two children; Cached and Lazy
// memoize a subtree. Reading flows top-down: Eval recursively evaluates
// children. Change propagation flows bottom-up: Input.Set pushes a
// synchronous notification through every directly or transitively
// registered dependent before it returns.
//
// Two caching strategies are available:
//
//   - Cached recomputes eagerly during the notification, so a later Eval
//     is a plain field read.
//   - Lazy only marks itself dirty during the notification and
//     recomputes on the next Eval.
//
// # Basic Usage
//
//	price := exprs.NewInput(9.50)
//	qty := exprs.NewInput(3.0)
//	total := exprs.NewCached[float64](exprs.Mul[float64](price, qty))
//
//	total.Eval() // 28.5
//	qty.Set(4)   // total recomputes before Set returns
//	total.Eval() // 38
//
// A cache can be rebound to a different subtree at runtime:
//
//	other := exprs.NewInput(100.0)
//	total.SetInner(other)
//	total.Eval() // 100; writes to price and qty no longer reach total
//
// # Dependency Tracking
//
// Every stateful node owns a registry of weak references to its
// dependents (Dependents). Pure nodes store no dependents themselves:
// registration is forwarded through them to the mutable leaves
// (Forwarder). The weak direction means dropping a cache is enough to
// unhook it; its leftover registrations go stale and are pruned on the
// next traversal instead of keeping the cache alive.
//
// Dependents of a node are notified in registration order. A diamond
// shaped graph may notify a reconvergent node more than once per write;
// recomputation of pure values is idempotent, so this costs time, not
// correctness.
//
// # Type Safety
//
// Node output types are ordinary generic type parameters. Mismatched
// operand types fail at compile time; no runtime type checking exists.
// Note that Go cannot infer a type argument from a concrete node passed
// as an Expr parameter, so constructor calls spell it out:
// exprs.NewCached[float64](...), exprs.Add[int](a, b).
//
// # Error Handling
//
// Evaluation and propagation return no errors. Numeric faults (integer
// division by zero, negative shift counts) surface as ordinary Go
// runtime panics at the evaluation site. Cyclic graphs are a client
// error: they are not detected during propagation and instead trip a
// re-entrancy guard with an exprs-prefixed panic. The companion package
// inspect offers an explicit structural lint and a tree renderer.
//
// # Thread Safety
//
// IMPORTANT: a graph is NOT safe for concurrent use. Construction,
// mutation, and evaluation of one graph must happen on a single
// goroutine; propagation runs as plain nested calls on the caller's
// stack. Distinct graphs share nothing and may be used from different
// goroutines independently.
package exprs
