package engine

import (
	"context"

	"github.com/specialistvlad/routecycle/internal/graph"
)

// pollInterval is the number of edge visits between context checks within
// the search from one start node.
const pollInterval = 1 << 12

// Options tune a Search.
type Options struct {
	// Bound is the length a cycle must exceed to matter. Zero disables
	// length-bound pruning.
	Bound int

	// RootedAtMinimum enumerates each cycle only from its lowest-index node.
	RootedAtMinimum bool
}

// DefaultOptions returns the options used by LongestCycle.
func DefaultOptions() Options {
	return Options{RootedAtMinimum: true}
}

// Result is the outcome of searching one graph.
type Result struct {
	Found  bool
	Length int

	// Pruned is set when Bound cut the search short. Found and Length then
	// describe the longest cycle seen, which is no longer than Bound.
	Pruned bool

	// Steps counts the edges examined.
	Steps int
}

type frame struct {
	node int32
	next int
}

// LongestCycle returns the length, in edges, of the longest simple directed
// cycle in g, and whether any cycle exists.
func LongestCycle(g *graph.Graph) (found bool, length int) {
	res, _ := Search(context.Background(), g, DefaultOptions())
	return res.Found, res.Length
}

// Search runs the bounded, non-recursive cycle search over g. g is only read.
// The only error it returns is ctx.Err().
func Search(ctx context.Context, g *graph.Graph, opts Options) (Result, error) {
	var res Result
	n := g.NodeCount()
	if n == 0 {
		return res, nil
	}
	if opts.Bound > 0 && n <= opts.Bound {
		res.Pruned = true
		return res, nil
	}

	onPath := make([]bool, n)
	stack := make([]frame, 0, 8)
	best := 0

	for s := 0; s < n; s++ {
		if g.OutDegree(s) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		// Upper limit on any cycle through s given the nodes it may use.
		ceiling := n
		if opts.RootedAtMinimum {
			ceiling = n - s
		}
		if ceiling <= best {
			break
		}
		if ceiling <= opts.Bound {
			res.Pruned = true
			break
		}

		stack = append(stack[:0], frame{node: int32(s)})
		onPath[s] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			succ := g.Successors(int(top.node))
			if top.next >= len(succ) {
				onPath[top.node] = false
				stack = stack[:len(stack)-1]
				continue
			}
			next := int(succ[top.next])
			top.next++

			res.Steps++
			if res.Steps%pollInterval == 0 {
				if err := ctx.Err(); err != nil {
					clearPath(onPath, stack)
					return res, err
				}
			}

			switch {
			case next == s:
				if len(stack) > best {
					best = len(stack)
				}
				if best >= ceiling {
					// Nothing longer is reachable from s.
					clearPath(onPath, stack)
					stack = stack[:0]
				}
			case opts.RootedAtMinimum && next < s:
			case onPath[next]:
			case g.OutDegree(next) == 0:
			default:
				stack = append(stack, frame{node: int32(next)})
				onPath[next] = true
			}
		}
	}

	if best > 0 {
		res.Found = true
		res.Length = best
	}
	return res, nil
}

func clearPath(onPath []bool, stack []frame) {
	for _, f := range stack {
		onPath[f.node] = false
	}
}
