package registry

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/specialistvlad/routecycle/internal/graph"
	"github.com/specialistvlad/routecycle/internal/hop"
)

// ErrReleased is returned when an edge arrives for a GraphID whose graph has
// already been released.
var ErrReleased = errors.New("graph was already released")

// Registry holds one graph per GraphID.
type Registry struct {
	graphs   map[hop.GraphID]*graph.Graph
	order    []hop.GraphID
	released map[hop.GraphID]struct{}

	hops  int
	edges int
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		graphs:   make(map[hop.GraphID]*graph.Graph),
		released: make(map[hop.GraphID]struct{}),
	}
}

// EnsureGraph returns the graph for id, creating an empty one on first use.
func (r *Registry) EnsureGraph(id hop.GraphID) *graph.Graph {
	if g, ok := r.graphs[id]; ok {
		return g
	}
	id = hop.GraphID{
		ClaimID:    strings.Clone(id.ClaimID),
		StatusCode: strings.Clone(id.StatusCode),
	}
	g := graph.New()
	r.graphs[id] = g
	r.order = append(r.order, id)
	return g
}

// AddEdge inserts edge into the graph for id. It returns whether the edge was
// new to that graph.
func (r *Registry) AddEdge(id hop.GraphID, edge hop.SystemEdge) (bool, error) {
	g, ok := r.graphs[id]
	if !ok {
		if _, gone := r.released[id]; gone {
			return false, fmt.Errorf("graph %s: %w", id, ErrReleased)
		}
		g = r.EnsureGraph(id)
	}
	r.hops++
	if !g.AddEdge(edge.Source, edge.Destination) {
		return false, nil
	}
	r.edges++
	return true, nil
}

// Graph returns the graph for id, if present.
func (r *Registry) Graph(id hop.GraphID) (*graph.Graph, bool) {
	g, ok := r.graphs[id]
	return g, ok
}

// All yields every live graph in first-seen order.
func (r *Registry) All() iter.Seq2[hop.GraphID, *graph.Graph] {
	return func(yield func(hop.GraphID, *graph.Graph) bool) {
		for _, id := range r.order {
			g, ok := r.graphs[id]
			if !ok {
				continue
			}
			if !yield(id, g) {
				return
			}
		}
	}
}

// Release drops the graph for id. Later edges for id fail with ErrReleased.
func (r *Registry) Release(id hop.GraphID) {
	if _, ok := r.graphs[id]; !ok {
		return
	}
	delete(r.graphs, id)
	r.released[id] = struct{}{}
	if n := len(r.order); n > 0 && r.order[n-1] == id {
		r.order = r.order[:n-1]
	}
}

// Len returns the number of live graphs.
func (r *Registry) Len() int {
	return len(r.graphs)
}

// Seen returns the number of distinct GraphIDs ever registered, including
// released ones.
func (r *Registry) Seen() int {
	return len(r.graphs) + len(r.released)
}

// Hops returns the number of edges offered to the registry, duplicates
// included.
func (r *Registry) Hops() int {
	return r.hops
}

// Edges returns the number of distinct edges across all graphs ever held.
func (r *Registry) Edges() int {
	return r.edges
}
