// Package graph holds the adjacency structure of one routing graph: the hops
// recorded under a single (claim, status) pair.
//
// # Representation
//
// System names are interned into dense int32 indexes in the order they are
// first seen, and each node keeps an ordered slice of successor indexes:
//
//	names: ["sys1", "sys2", "sys3"]
//	succ:  [[1], [2], [0]]          // sys1->sys2->sys3->sys1
//
// Dense indexes let the cycle search track its current path with a flat
// bitmap instead of a map keyed by string, and the ordered successor slices
// make every traversal deterministic for a given input order.
//
// # Invariants
//
//   - Both endpoints of every edge are nodes, even if they have no other edges.
//   - Parallel edges collapse to one; AddEdge reports whether the edge was new.
//   - A self-loop (A->A) is a regular edge.
//   - The graph only grows. Nothing is ever removed.
//
// A Graph is not safe for concurrent mutation. It is written during ingestion
// and read during search, never both at once.
package graph
