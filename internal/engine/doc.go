// Package engine finds the longest simple directed cycle in a single graph.
//
// The search is a depth-first enumeration of simple paths driven by an
// explicit frame stack instead of recursion, so its depth is bounded only by
// the number of nodes in the graph and not by the goroutine stack. Each frame
// holds a node and a cursor into that node's successor list; a bitmap keyed
// by node index marks the nodes currently on the path.
//
// From every start node s the search walks outward and, whenever an edge
// leads back to s, records a cycle whose length is the number of nodes on the
// path. Edges into a node that is already on the path would repeat a node and
// are pruned. The longest cycle over all start nodes is the result.
//
// Worst-case cost is exponential in the branching factor. That is acceptable
// because individual (claim, status) graphs are small and sparse; the volume
// lives in the number of graphs, not their size.
//
// # Options
//
// RootedAtMinimum makes the search from s ignore nodes with an index lower
// than s. Every cycle is then enumerated once, from its lowest node, instead
// of once per node it contains. The reported length does not change.
//
// Bound carries the best cycle length already known elsewhere. Start nodes
// that cannot possibly produce a longer cycle are skipped, and a graph with no
// more nodes than Bound is not searched at all. This only changes the work
// done: a cycle longer than Bound is always found.
package engine
