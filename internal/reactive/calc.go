package reactive

// Calc is a cached derived value.
type Calc[T any] struct {
	*node
	fn           func() (T, error)
	value        T
	err          error
	computations int
}

// NewCalc creates a derived node over deps. fn reads its dependencies
// through their Get methods. The first Get computes the value.
func NewCalc[T any](g *Graph, name string, fn func() (T, error), deps ...Node) *Calc[T] {
	c := &Calc[T]{
		node: g.newNode(name, deps),
		fn:   fn,
	}
	c.stale = true
	return c
}

// Get returns the cached value, recomputing it first if a dependency
// changed since the last computation.
func (c *Calc[T]) Get() (T, error) {
	if c.stale {
		c.value, c.err = c.fn()
		c.stale = false
		c.computations++
		c.graph.log().Debug("calc recomputed",
			"graph", c.graph.name, "calc", c.name, "computations", c.computations, "error", c.err)
	}
	return c.value, c.err
}

// Stale reports whether the next Get will recompute.
func (c *Calc[T]) Stale() bool {
	return c.stale
}

// Computations returns how many times the value has been computed.
func (c *Calc[T]) Computations() int {
	return c.computations
}
