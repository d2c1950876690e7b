package exprs

// Test helper: records update notifications in arrival order.
type recorder struct {
	name   string
	events *[]string
}

func (r *recorder) Update() {
	*r.events = append(*r.events, r.name)
}

// Test helper: runs an arbitrary function when notified.
type hook struct {
	fn func()
}

func (h *hook) Update() {
	h.fn()
}

// Test helper: counts how often the subtree below it is evaluated.
func counting[T any](inner Expr[T], calls *int) *UnaryExpr[T, T] {
	return Transform[T, T]("counting", inner, func(v T) T {
		*calls++
		return v
	})
}
