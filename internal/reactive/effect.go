package reactive

// Effect is a sink that reruns when any dependency changes.
type Effect struct {
	*node
	fn   func()
	runs int
}

// NewEffect registers an effect. It is pending until the next Flush.
func NewEffect(g *Graph, name string, fn func(), deps ...Node) *Effect {
	e := &Effect{
		node: g.newNode(name, deps),
		fn:   fn,
	}
	e.stale = true
	g.effects = append(g.effects, e)
	return e
}

// Runs returns how many times the effect has run.
func (e *Effect) Runs() int {
	return e.runs
}

// Pending reports whether the effect will run on the next Flush.
func (e *Effect) Pending() bool {
	return e.stale
}
