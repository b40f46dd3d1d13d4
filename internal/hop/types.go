package hop

// GraphID identifies one independent directed graph: every hop carrying the
// same claim and status code belongs to it. It is comparable and used as a
// map key.
type GraphID struct {
	ClaimID    string
	StatusCode string
}

// String returns the canonical "claim,status" form.
func (id GraphID) String() string {
	return id.ClaimID + "," + id.StatusCode
}

// SystemEdge is one directed hop from a source system to a destination system.
type SystemEdge struct {
	Source      string
	Destination string
}

// IsSelfLoop reports whether the hop starts and ends at the same system.
func (e SystemEdge) IsSelfLoop() bool {
	return e.Source == e.Destination
}
