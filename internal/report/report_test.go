package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/specialistvlad/routecycle/internal/hop"
	"github.com/specialistvlad/routecycle/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	rec := tracker.Record{GraphID: hop.GraphID{ClaimID: "1", StatusCode: "A"}, Length: 3}

	require.NoError(t, WriteResult(&buf, rec, true))
	assert.Equal(t, "1,A,3\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteResult(&buf, tracker.Record{}, false))
	assert.Equal(t, "no cycle found\n", buf.String())
}

func TestSummary_WriteFile(t *testing.T) {
	rec := tracker.Record{GraphID: hop.GraphID{ClaimID: "123", StatusCode: "197"}, Length: 3}
	s := &Summary{
		RunID:          "run-1",
		Inputs:         []string{"a.psv"},
		Layout:         "claim_id,status_code,source_system,destination_system",
		Lines:          6,
		Skipped:        1,
		Graphs:         2,
		Hops:           5,
		Edges:          5,
		GraphsSearched: 2,
		Result:         NewResult(rec, true),
		Duration:       1500 * time.Millisecond,
	}

	path := filepath.Join(t.TempDir(), "summary.yaml")
	require.NoError(t, s.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id: run-1")
	assert.Contains(t, string(data), "claim_id: \"123\"")
	assert.Contains(t, string(data), "duration: 1.5s")

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, 1, back["skipped"])
}

func TestNewResult_NotFound(t *testing.T) {
	assert.Nil(t, NewResult(tracker.Record{}, false))

	var buf bytes.Buffer
	require.NoError(t, (&Summary{RunID: "x"}).Encode(&buf))
	assert.Contains(t, buf.String(), "result: null")
}
