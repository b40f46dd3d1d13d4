// Package schema declares the HCL structure of a layout file.
package schema

import "github.com/hashicorp/hcl/v2"

// File is the top-level structure of a layout file. Both blocks are optional.
type File struct {
	Input  *Input  `hcl:"input,block"`
	Search *Search `hcl:"search,block"`
}

// Input describes how hop lines are laid out.
type Input struct {
	// Layout names a preset ("canonical", "pipe") applied before the other
	// attributes of the block.
	Layout     *string        `hcl:"layout,optional"`
	Delimiter  *string        `hcl:"delimiter,optional"`
	Fields     hcl.Expression `hcl:"fields,optional"`
	SkipHeader *bool          `hcl:"skip_header,optional"`
}

// Search holds cycle search switches.
type Search struct {
	Prune   *bool `hcl:"prune,optional"`
	Grouped *bool `hcl:"grouped,optional"`
}
