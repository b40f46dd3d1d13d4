package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/routecycle/internal/config"
	"github.com/specialistvlad/routecycle/internal/hop"
	"github.com/specialistvlad/routecycle/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateInput applies an input block on top of base.
func translateInput(in *schema.Input, base hop.Layout, evalCtx *hcl.EvalContext) (hop.Layout, error) {
	layout := base
	if in.Layout != nil {
		preset, err := hop.LayoutByName(*in.Layout)
		if err != nil {
			return hop.Layout{}, err
		}
		layout = preset
	}
	if in.Delimiter != nil {
		layout.Delimiter = *in.Delimiter
	}
	if in.SkipHeader != nil {
		layout.SkipHeader = *in.SkipHeader
	}

	if in.Fields != nil {
		fields, err := decodeFields(in.Fields, evalCtx)
		if err != nil {
			return hop.Layout{}, err
		}
		if fields != nil {
			layout.Fields = *fields
		}
	}

	if err := layout.Validate(); err != nil {
		return hop.Layout{}, fmt.Errorf("invalid input block: %w", err)
	}
	return layout, nil
}

// decodeFields evaluates the fields expression. It returns nil when the
// attribute was omitted.
func decodeFields(expr hcl.Expression, evalCtx *hcl.EvalContext) (*[hop.FieldCount]hop.Field, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("fields must be a list of field names, got %s: %w", val.Type().FriendlyName(), err)
	}
	var names []string
	if err := gocty.FromCtyValue(converted, &names); err != nil {
		return nil, fmt.Errorf("failed to decode fields: %w", err)
	}
	if len(names) != hop.FieldCount {
		return nil, fmt.Errorf("fields must list exactly %d names, got %d", hop.FieldCount, len(names))
	}

	var fields [hop.FieldCount]hop.Field
	for i, name := range names {
		f, err := hop.ParseField(name)
		if err != nil {
			return nil, fmt.Errorf("fields[%d]: %w", i, err)
		}
		fields[i] = f
	}
	return &fields, nil
}

// translateSearch applies a search block on top of base.
func translateSearch(s *schema.Search, base config.Search) config.Search {
	out := base
	if s.Prune != nil {
		out.Prune = *s.Prune
	}
	if s.Grouped != nil {
		out.Grouped = *s.Grouped
	}
	return out
}
