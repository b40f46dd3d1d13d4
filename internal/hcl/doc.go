// Package hcl provides the HCL implementation of config.Loader. It parses a
// layout file, evaluates it against a fixed set of named constants, and
// translates the result into the format-agnostic config.Model.
//
// A layout file looks like:
//
//	input {
//	  delimiter   = delimiter.pipe
//	  fields      = [field.source_system, field.destination_system, field.claim_id, field.status_code]
//	  skip_header = false
//	}
//
//	search {
//	  prune = true
//	}
//
// Plain string literals are accepted wherever a constant is.
package hcl
