package graph

import "strings"

// smallDegree is the out-degree up to which duplicate edges are detected by
// scanning the successor slice. Past it the graph switches to an edge set.
const smallDegree = 16

// Graph is a directed graph over interned system names.
type Graph struct {
	names []string
	index map[string]int32
	succ  [][]int32

	// edgeSet is nil until some node exceeds smallDegree.
	edgeSet map[uint64]struct{}
	edges   int
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]int32),
	}
}

// AddNode adds a node with the given name if it does not exist yet and
// returns its index.
func (g *Graph) AddNode(name string) int {
	if i, ok := g.index[name]; ok {
		return int(i)
	}
	// Input lines are large allocations; keep only the name alive.
	name = strings.Clone(name)
	i := int32(len(g.names))
	g.names = append(g.names, name)
	g.succ = append(g.succ, nil)
	g.index[name] = i
	return int(i)
}

// AddEdge records a directed edge, creating both endpoints as needed. It
// returns false if the edge was already present.
func (g *Graph) AddEdge(from, to string) bool {
	f := int32(g.AddNode(from))
	t := int32(g.AddNode(to))

	if g.edgeSet != nil {
		key := edgeKey(f, t)
		if _, ok := g.edgeSet[key]; ok {
			return false
		}
		g.edgeSet[key] = struct{}{}
	} else {
		for _, s := range g.succ[f] {
			if s == t {
				return false
			}
		}
	}

	g.succ[f] = append(g.succ[f], t)
	g.edges++

	if g.edgeSet == nil && len(g.succ[f]) > smallDegree {
		g.buildEdgeSet()
	}
	return true
}

func (g *Graph) buildEdgeSet() {
	g.edgeSet = make(map[uint64]struct{}, g.edges)
	for from, succ := range g.succ {
		for _, to := range succ {
			g.edgeSet[edgeKey(int32(from), to)] = struct{}{}
		}
	}
}

func edgeKey(from, to int32) uint64 {
	return uint64(uint32(from))<<32 | uint64(uint32(to))
}

// NodeCount returns the number of distinct systems in the graph.
func (g *Graph) NodeCount() int {
	return len(g.names)
}

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Name returns the system name of node i.
func (g *Graph) Name(i int) string {
	return g.names[i]
}

// Index returns the index of a named node.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]
	return int(i), ok
}

// Successors returns the successor indexes of node i in insertion order.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) Successors(i int) []int32 {
	return g.succ[i]
}

// OutDegree returns the number of distinct outgoing edges of node i.
func (g *Graph) OutDegree(i int) int {
	return len(g.succ[i])
}

// HasEdge reports whether the edge from->to exists.
func (g *Graph) HasEdge(from, to string) bool {
	f, ok := g.index[from]
	if !ok {
		return false
	}
	t, ok := g.index[to]
	if !ok {
		return false
	}
	if g.edgeSet != nil {
		_, ok := g.edgeSet[edgeKey(f, t)]
		return ok
	}
	for _, s := range g.succ[f] {
		if s == t {
			return true
		}
	}
	return false
}
