package declgraph

import "slices"

// Cycles returns the cycles in the graph. Each cycle is a strongly
// connected component with more than one node, or a single node
// that refers to itself. Cycles are ordered by their earliest
// declared member and the names within a cycle are in declaration
// order.
func (g *Graph) Cycles() [][]string {
	t := tarjan{
		g:          g,
		indexTable: make([]int, len(g.nodes)),
		lowLink:    make([]int, len(g.nodes)),
		onStack:    make([]bool, len(g.nodes)),
	}
	for v := range g.nodes {
		if t.indexTable[v] == 0 {
			t.strongconnect(v)
		}
	}
	var comps [][]int
	for _, scc := range t.sccs {
		if len(scc) == 1 && !slices.Contains(g.deps[scc[0]], scc[0]) {
			continue
		}
		slices.Sort(scc)
		comps = append(comps, scc)
	}
	slices.SortFunc(comps, func(a, b []int) int {
		return a[0] - b[0]
	})
	cycles := make([][]string, len(comps))
	for i, c := range comps {
		for _, v := range c {
			cycles[i] = append(cycles[i], g.nodes[v].Name)
		}
	}
	return cycles
}

// tarjan implements Tarjan's strongly connected component finding
// algorithm over node indexes. The implementation is from the
// pseudocode at
//
// http://en.wikipedia.org/wiki/Tarjan%27s_strongly_connected_components_algorithm?oldid=642744644
//
// Indexes in indexTable and lowLink start at 1 so that zero means
// unvisited.
type tarjan struct {
	g *Graph

	index      int
	indexTable []int
	lowLink    []int
	onStack    []bool

	stack []int

	sccs [][]int
}

func (t *tarjan) strongconnect(v int) {
	t.index++
	t.indexTable[v] = t.index
	t.lowLink[v] = t.index
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.deps[v] {
		if t.indexTable[w] == 0 {
			t.strongconnect(w)
			t.lowLink[v] = min(t.lowLink[v], t.lowLink[w])
		} else if t.onStack[w] {
			t.lowLink[v] = min(t.lowLink[v], t.indexTable[w])
		}
	}

	// If v is a root node, pop the stack and generate an SCC.
	if t.lowLink[v] == t.indexTable[v] {
		var scc []int
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}
