package config

import (
	"context"

	"github.com/specialistvlad/routecycle/internal/hop"
)

// Model is the unified, format-agnostic representation of a run's input and
// search settings.
type Model struct {
	Layout hop.Layout
	Search Search
}

// Search holds the cycle search settings.
type Search struct {
	// Prune enables length-bound pruning against the best cycle so far.
	Prune bool
	// Grouped declares that all hops of a GraphID are contiguous in the input.
	Grouped bool
}

// Default returns the model used when no layout file is given.
func Default() *Model {
	return &Model{
		Layout: hop.CanonicalLayout,
		Search: Search{Prune: true},
	}
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the file at path and applies every setting it declares on
	// top of base. Settings the file omits keep their base values.
	Load(ctx context.Context, path string, base *Model) (*Model, error)
}
