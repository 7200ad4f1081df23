// Package declgraph records the dependencies between tuplegen
// declarations.
//
// A node is a declared tuple or something derived from one (a
// mapped or filtered tuple type, or a reduce function). An edge
// from a to b means that a refers to b, so b must be valid for a to
// be. Go type aliases cannot be recursive, so the graph of tuple
// declarations must be acyclic.
package declgraph

import (
	"fmt"
	"strings"
)

// Kind says what a node was declared as.
type Kind int

const (
	Tuple Kind = iota
	Mapped
	Filtered
	Reduced
)

var kindNames = [...]string{
	Tuple:    "tuple",
	Mapped:   "mapped",
	Filtered: "filtered",
	Reduced:  "reduced",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Node is a vertex in the graph.
type Node struct {
	// Name is the Go identifier of the declaration.
	Name string
	// Label is the text shown for the node. If empty, Name is used.
	Label string
	Kind  Kind
}

// Graph holds declarations and the dependencies between them. The
// zero Graph is empty and ready to use.
type Graph struct {
	nodes []Node
	index map[string]int
	// deps holds, for each node, the indexes of the nodes it refers to.
	deps [][]int
	// users is the reverse of deps.
	users [][]int
}

// AddNode adds a node. It reports false if a node with the same
// name already exists, in which case the graph is unchanged.
func (g *Graph) AddNode(n Node) bool {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	if _, ok := g.index[n.Name]; ok {
		return false
	}
	g.index[n.Name] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.deps = append(g.deps, nil)
	g.users = append(g.users, nil)
	return true
}

// AddEdge records that from refers to to. Both nodes must already
// have been added; AddEdge reports whether they had been.
// Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to string) bool {
	i, ok := g.index[from]
	if !ok {
		return false
	}
	j, ok := g.index[to]
	if !ok {
		return false
	}
	for _, k := range g.deps[i] {
		if k == j {
			return true
		}
	}
	g.deps[i] = append(g.deps[i], j)
	g.users[j] = append(g.users[j], i)
	return true
}

// Has reports whether the graph holds a node with the given name.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Node returns the node with the given name.
func (g *Graph) Node(name string) (Node, bool) {
	i, ok := g.index[name]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns all the nodes in the order they were added.
// The caller should not mutate the returned slice.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Deps returns the names of the nodes that the named node refers to,
// in the order the edges were added.
func (g *Graph) Deps(name string) []string {
	i, ok := g.index[name]
	if !ok || len(g.deps[i]) == 0 {
		return nil
	}
	names := make([]string, len(g.deps[i]))
	for k, j := range g.deps[i] {
		names[k] = g.nodes[j].Name
	}
	return names
}

// Sort returns the nodes ordered so that every node comes after
// the nodes it refers to. Where the order is not constrained by
// dependencies, nodes keep the order they were added in, so the
// result is deterministic.
//
// If the graph has cycles, Sort returns a *CycleError.
func (g *Graph) Sort() ([]Node, error) {
	pending := make([]int, len(g.nodes))
	ready := newQueue(nil)
	for i := range g.nodes {
		pending[i] = len(g.deps[i])
		if pending[i] == 0 {
			ready.push(i)
		}
	}
	sorted := make([]Node, 0, len(g.nodes))
	for ready.len() > 0 {
		i := ready.pop()
		sorted = append(sorted, g.nodes[i])
		for _, u := range g.users[i] {
			if pending[u]--; pending[u] == 0 {
				ready.push(u)
			}
		}
	}
	if len(sorted) < len(g.nodes) {
		return nil, &CycleError{Cycles: g.Cycles()}
	}
	return sorted, nil
}

// CycleError is returned by Sort when declarations refer to each
// other in a cycle.
type CycleError struct {
	// Cycles holds the names of the nodes in each cycle.
	Cycles [][]string
}

func (e *CycleError) Error() string {
	var b strings.Builder
	b.WriteString("cyclic declarations: ")
	for i, c := range e.Cycles {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strings.Join(c, " -> "))
	}
	return b.String()
}
