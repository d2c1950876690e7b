// Package inspect provides diagnostics for expression graphs: a tree
// renderer, a structural lint, and a tracing relay node.
//
// Everything here is explicit tooling built on the exprs.Inspectable
// contract. Nothing in this package runs during propagation; in
// particular, Validate is how cycles are found before they trip the
// runtime re-entrancy guards, not an automatic safety net.
//
// Render and Validate walk strong child references only. Reverse
// dependencies are weak and carry no labels, so they are not part of the
// picture; insert a Traced node to watch notifications flow instead.
package inspect
