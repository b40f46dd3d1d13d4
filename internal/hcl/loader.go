package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/routecycle/internal/config"
	"github.com/specialistvlad/routecycle/internal/ctxlog"
	"github.com/specialistvlad/routecycle/internal/hop"
	"github.com/specialistvlad/routecycle/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL layout file loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses the layout file at path and applies it on top of base.
func (l *Loader) Load(ctx context.Context, path string, base *config.Model) (*config.Model, error) {
	ctx = ctxlog.With(ctx, "layout_file", path)
	ctxlog.FromContext(ctx).Debug("HCL loader started.")

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse layout file %s: %w", path, diags)
	}
	return l.decode(ctx, file.Body, base)
}

// LoadBytes is Load for in-memory sources; filename is only used in
// diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string, base *config.Model) (*config.Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse layout file %s: %w", filename, diags)
	}
	return l.decode(ctx, file.Body, base)
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, base *config.Model) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	evalCtx := EvalContext()
	var root schema.File
	if diags := gohcl.DecodeBody(body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode layout file: %w", diags)
	}

	if base == nil {
		base = config.Default()
	}
	model := *base

	if root.Input != nil {
		layout, err := translateInput(root.Input, model.Layout, evalCtx)
		if err != nil {
			return nil, err
		}
		model.Layout = layout
	}
	if root.Search != nil {
		model.Search = translateSearch(root.Search, model.Search)
	}

	logger.Debug("HCL loading complete.", "layout", model.Layout.String(), "delimiter", model.Layout.Delimiter, "prune", model.Search.Prune, "grouped", model.Search.Grouped)
	return &model, nil
}

// EvalContext exposes the constants a layout file may reference:
// field.<name> for every hop field and delimiter.<name> for common
// delimiters.
func EvalContext() *hcl.EvalContext {
	fields := make(map[string]cty.Value, hop.FieldCount)
	for _, f := range hop.AllFields {
		fields[string(f)] = cty.StringVal(string(f))
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"field": cty.ObjectVal(fields),
			"delimiter": cty.ObjectVal(map[string]cty.Value{
				"comma":     cty.StringVal(","),
				"pipe":      cty.StringVal("|"),
				"tab":       cty.StringVal("\t"),
				"semicolon": cty.StringVal(";"),
			}),
		},
	}
}
