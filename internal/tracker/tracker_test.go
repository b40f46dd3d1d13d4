package tracker

import (
	"testing"

	"github.com/specialistvlad/routecycle/internal/hop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	idA = hop.GraphID{ClaimID: "1", StatusCode: "A"}
	idB = hop.GraphID{ClaimID: "2", StatusCode: "B"}
	idC = hop.GraphID{ClaimID: "3", StatusCode: "C"}
)

func TestTracker_Empty(t *testing.T) {
	tr := New()
	_, ok := tr.Final()
	assert.False(t, ok)
	assert.Zero(t, tr.Best())
}

func TestTracker_Consider(t *testing.T) {
	tr := New()

	assert.False(t, tr.Consider(idA, false, 0), "not found is ignored")
	assert.False(t, tr.Consider(idA, false, 7), "length without found is ignored")
	_, ok := tr.Final()
	assert.False(t, ok)

	assert.True(t, tr.Consider(idA, true, 3))
	assert.True(t, tr.Consider(idB, true, 5))
	assert.False(t, tr.Consider(idC, true, 4), "shorter cycle never replaces")

	rec, ok := tr.Final()
	require.True(t, ok)
	assert.Equal(t, Record{GraphID: idB, Length: 5}, rec)
	assert.Equal(t, 5, tr.Best())
}

func TestTracker_FirstDiscoveredWinsTies(t *testing.T) {
	tr := New()
	tr.Consider(idA, true, 4)
	assert.False(t, tr.Consider(idB, true, 4))

	rec, ok := tr.Final()
	require.True(t, ok)
	assert.Equal(t, idA, rec.GraphID)
}

func TestTracker_OrderInvariantMaximum(t *testing.T) {
	results := []Record{{idA, 2}, {idB, 6}, {idC, 3}}

	forward := New()
	for _, r := range results {
		forward.Consider(r.GraphID, true, r.Length)
	}
	backward := New()
	for i := len(results) - 1; i >= 0; i-- {
		backward.Consider(results[i].GraphID, true, results[i].Length)
	}

	f, _ := forward.Final()
	b, _ := backward.Final()
	assert.Equal(t, f, b)
}

func TestRecordString(t *testing.T) {
	assert.Equal(t, "1,A,3", Record{GraphID: idA, Length: 3}.String())
}
