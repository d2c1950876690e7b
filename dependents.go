package exprs

// Dependents is an ordered registry of weak references to the nodes that
// want to hear about a value change. The zero value is ready to use.
//
// Stateful nodes embed Dependents. The promoted methods give them the
// registry operations and the registry-owning Forwarder implementation
// in one place, so the forwarding behavior is written once instead of
// per node type.
//
// A registry is single-writer: Notify panics when re-entered, and Add
// and Remove panic while a notification pass on the same registry is
// running. Either can only happen through a cyclic graph or a mutation
// performed inside an Update handler of the same node.
type Dependents struct {
	entries   []Ref
	notifying bool
}

// Add appends a weak reference. Duplicates are allowed; every entry is
// notified separately.
func (d *Dependents) Add(r Ref) {
	if d.notifying {
		panic("exprs: dependents modified during notification")
	}
	d.entries = append(d.entries, r)
}

// Remove drops every entry that resolves to dep. Matching is by object
// identity, never by value equality: a distinct node holding an equal
// value is a different dependent. Entries whose target has been
// collected are dropped along the way.
func (d *Dependents) Remove(dep Dependent) {
	if d.notifying {
		panic("exprs: dependents modified during notification")
	}
	kept := d.entries[:0]
	for _, r := range d.entries {
		got, ok := r.Resolve()
		if !ok || got == dep {
			continue
		}
		kept = append(kept, r)
	}
	d.entries = kept
}

// Notify calls Update on every live dependent, in registration order.
// Entries whose target has been collected are pruned. Update handlers
// may recursively notify other registries; the recursion depth is
// bounded by the graph depth.
func (d *Dependents) Notify() {
	if d.notifying {
		panic("exprs: dependents notified re-entrantly (cyclic graph?)")
	}
	d.notifying = true
	defer func() { d.notifying = false }()

	kept := d.entries[:0]
	for _, r := range d.entries {
		dep, ok := r.Resolve()
		if !ok {
			continue
		}
		dep.Update()
		kept = append(kept, r)
	}
	d.entries = kept
}

// Len reports the number of entries, live or not. Dead entries are only
// dropped when a traversal touches them.
func (d *Dependents) Len() int {
	return len(d.entries)
}

// ForwardAdd registers r with this registry. A node that owns a registry
// forwards to itself.
func (d *Dependents) ForwardAdd(r Ref) {
	d.Add(r)
}

// ForwardRemove unregisters dep from this registry.
func (d *Dependents) ForwardRemove(dep Dependent) {
	d.Remove(dep)
}
