// Package reactive is a small synchronous dependency graph.
//
// Inputs hold values set from outside. Calcs derive cached values from
// other nodes and recompute lazily when a dependency changed. Effects are
// sinks that Flush runs once per change batch. The graph is not safe for
// concurrent use; all mutation belongs to one event loop.
package reactive

import (
	"fmt"

	"github.com/cintel/penguins/internal/logging"
)

// Node is anything another node can depend on.
type Node interface {
	// Name identifies the node in logs and in Flush results.
	Name() string
	base() *node
}

// node carries the bookkeeping shared by all node kinds.
type node struct {
	graph      *Graph
	name       string
	dependents []*node
	stale      bool
}

func (n *node) Name() string { return n.name }
func (n *node) base() *node   { return n }

// invalidate marks every transitive dependent stale. A dependent that is
// already stale is still walked, since a calc nobody read since its last
// invalidation has fresh dependents of its own.
func (n *node) invalidate() {
	seen := make(map[*node]bool)
	var walk func(*node)
	walk = func(from *node) {
		for _, d := range from.dependents {
			if seen[d] {
				continue
			}
			seen[d] = true
			d.stale = true
			walk(d)
		}
	}
	walk(n)
}

// Graph owns a set of nodes.
type Graph struct {
	name    string
	effects []*Effect
	logger  *logging.Logger
}

// NewGraph creates an empty graph.
func NewGraph(name string) *Graph {
	return &Graph{name: name}
}

// SetLogger sets the logger used for recompute tracing. When nil the
// global logger is used.
func (g *Graph) SetLogger(l *logging.Logger) {
	g.logger = l
}

func (g *Graph) log() *logging.Logger {
	if g.logger != nil {
		return g.logger
	}
	return logging.Global()
}

// newNode registers a node and wires it after deps.
func (g *Graph) newNode(name string, deps []Node) *node {
	n := &node{graph: g, name: name}
	for _, dep := range deps {
		b := dep.base()
		if b.graph != g {
			panic(fmt.Sprintf("reactive: %s depends on %s from another graph", name, b.name))
		}
		b.dependents = append(b.dependents, n)
	}
	return n
}

// Pending returns the names of effects waiting to run, in creation order.
func (g *Graph) Pending() []string {
	var names []string
	for _, e := range g.effects {
		if e.stale {
			names = append(names, e.name)
		}
	}
	return names
}

// Flush runs every pending effect once, in creation order, and returns
// the names of the effects that ran.
func (g *Graph) Flush() []string {
	var ran []string
	for _, e := range g.effects {
		if !e.stale {
			continue
		}
		e.stale = false
		e.runs++
		g.log().Debug("effect run", "graph", g.name, "effect", e.name, "runs", e.runs)
		e.fn()
		ran = append(ran, e.name)
	}
	return ran
}
