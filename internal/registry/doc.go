// Package registry maps every GraphID seen in the input to the graph built
// from its hops.
//
// The registry is the only owner of graph.Graph instances. During ingestion it
// grows one edge at a time; afterwards All walks the graphs in the order their
// GraphIDs were first seen so the search order, and with it the tie-break
// between equally long cycles, is stable for a given input.
//
// Release drops a graph once it has been searched. It exists for inputs that
// are grouped by GraphID, where a graph is complete as soon as the next
// GraphID starts; a released GraphID that shows up again is an error because
// its earlier edges are gone.
package registry
