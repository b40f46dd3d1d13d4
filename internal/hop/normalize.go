package hop

import (
	"strings"
)

// Normalizer converts raw lines into hops according to a Layout.
type Normalizer struct {
	delim string

	// column index of each field
	claim, status, source, dest int
}

// NewNormalizer validates the layout and precomputes field positions.
func NewNormalizer(layout Layout) (*Normalizer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	n := &Normalizer{delim: layout.Delimiter}
	for i, f := range layout.Fields {
		switch f {
		case FieldClaimID:
			n.claim = i
		case FieldStatusCode:
			n.status = i
		case FieldSourceSystem:
			n.source = i
		case FieldDestinationSystem:
			n.dest = i
		}
	}
	return n, nil
}

// Normalize parses one line. Only the line terminator is dropped; field
// values are returned verbatim, so whitespace delimiters keep their empty
// fields. A line holding nothing but whitespace is blank.
func (n *Normalizer) Normalize(line string) (GraphID, SystemEdge, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return GraphID{}, SystemEdge{}, ErrBlankLine
	}

	var cols [FieldCount]string
	rest := line
	count := 0
	for {
		head, tail, found := strings.Cut(rest, n.delim)
		if count < FieldCount {
			cols[count] = head
		}
		count++
		if !found {
			break
		}
		rest = tail
	}
	if count != FieldCount {
		return GraphID{}, SystemEdge{}, &MalformedError{Reason: "wrong field count", Fields: count}
	}
	for _, c := range cols {
		if c == "" {
			return GraphID{}, SystemEdge{}, &MalformedError{Reason: "empty required field", Fields: count}
		}
	}

	id := GraphID{ClaimID: cols[n.claim], StatusCode: cols[n.status]}
	edge := SystemEdge{Source: cols[n.source], Destination: cols[n.dest]}
	return id, edge, nil
}
