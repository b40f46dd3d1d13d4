package hop

import (
	"errors"
	"fmt"
	"strings"
)

// Field names one column of an input line.
type Field string

const (
	FieldClaimID           Field = "claim_id"
	FieldStatusCode        Field = "status_code"
	FieldSourceSystem      Field = "source_system"
	FieldDestinationSystem Field = "destination_system"
)

// FieldCount is the number of delimited fields every hop line carries.
const FieldCount = 4

// AllFields lists every field in canonical order.
var AllFields = [FieldCount]Field{
	FieldClaimID,
	FieldStatusCode,
	FieldSourceSystem,
	FieldDestinationSystem,
}

// Layout describes how a line encodes a hop: the delimiter, the position of
// each field, and whether each input file starts with a header line.
type Layout struct {
	Delimiter  string
	Fields     [FieldCount]Field
	SkipHeader bool
}

var (
	// CanonicalLayout is "claim_id,status_code,source_system,destination_system".
	CanonicalLayout = Layout{
		Delimiter: ",",
		Fields:    AllFields,
	}

	// PipeLayout is "source_system|destination_system|claim_id|status_code",
	// the format of the upstream claim-routing export.
	PipeLayout = Layout{
		Delimiter: "|",
		Fields: [FieldCount]Field{
			FieldSourceSystem,
			FieldDestinationSystem,
			FieldClaimID,
			FieldStatusCode,
		},
	}
)

var presets = map[string]Layout{
	"canonical": CanonicalLayout,
	"pipe":      PipeLayout,
}

// LayoutByName returns a preset layout.
func LayoutByName(name string) (Layout, error) {
	l, ok := presets[strings.ToLower(name)]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q: must be 'canonical' or 'pipe'", name)
	}
	return l, nil
}

// ParseField converts a field name into a Field.
func ParseField(name string) (Field, error) {
	for _, f := range AllFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// Validate checks that the delimiter is set and that every field appears
// exactly once.
func (l Layout) Validate() error {
	if l.Delimiter == "" {
		return errors.New("layout delimiter must not be empty")
	}
	seen := make(map[Field]bool, FieldCount)
	for i, f := range l.Fields {
		if _, err := ParseField(string(f)); err != nil {
			return fmt.Errorf("layout field %d: %w", i, err)
		}
		if seen[f] {
			return fmt.Errorf("layout field %q appears more than once", f)
		}
		seen[f] = true
	}
	return nil
}

// String renders the layout the way a header line would look.
func (l Layout) String() string {
	names := make([]string, FieldCount)
	for i, f := range l.Fields {
		names[i] = string(f)
	}
	return strings.Join(names, l.Delimiter)
}
