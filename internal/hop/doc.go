// Package hop defines the identity of a routing hop and turns raw input lines
// into validated hops.
//
// A hop names a claim, a status code, and a directed edge between two systems.
// Hops that share a (claim, status) pair form one independent directed graph,
// identified by a GraphID. The Normalizer is a pure function of its input line:
// it never touches shared state and never aborts a run, it only reports why a
// line was rejected.
package hop
