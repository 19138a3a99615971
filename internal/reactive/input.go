package reactive

// Input is a settable source node.
type Input[T any] struct {
	*node
	value T
	equal func(a, b T) bool
}

// NewInput creates an input with an initial value. equal decides whether
// a Set is a change; nil means every Set is a change.
func NewInput[T any](g *Graph, name string, initial T, equal func(a, b T) bool) *Input[T] {
	return &Input[T]{
		node:  g.newNode(name, nil),
		value: initial,
		equal: equal,
	}
}

// Get returns the current value.
func (in *Input[T]) Get() T {
	return in.value
}

// Set stores v and invalidates dependents. It reports whether the value
// changed; an equal value leaves the graph untouched.
func (in *Input[T]) Set(v T) bool {
	if in.equal != nil && in.equal(in.value, v) {
		return false
	}
	in.value = v
	in.graph.log().Debug("input set", "graph", in.graph.name, "input", in.name)
	in.invalidate()
	return true
}

// Equal is an equality function for comparable types.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// EqualSets compares two string slices as sets.
func EqualSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		if seen[s] == 0 {
			return false
		}
		seen[s]--
	}
	return true
}
