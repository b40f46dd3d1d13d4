package system

import (
	"testing"

	"github.com/specialistvlad/routecycle/internal/app"
	"github.com/specialistvlad/routecycle/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: grouped input gives the same answer as full accumulation
func TestCoreExecution_GroupedModeMatchesDefault(t *testing.T) {
	// --- Arrange ---
	data := "" +
		"3,C,a,b\n3,C,b,a\n" +
		"1,A,a,b\n1,A,b,c\n1,A,c,d\n1,A,d,a\n" +
		"2,B,x,y\n2,B,y,z\n2,B,z,x\n" +
		"4,D,m,n\n"

	for _, grouped := range []bool{false, true} {
		// --- Act ---
		result := testutil.RunIntegrationTest(t, testutil.Case{
			Files: map[string]string{"hops.csv": data},
			Config: app.Config{
				Inputs:      []string{"hops.csv"},
				Grouped:     grouped,
				SummaryPath: "summary.yaml",
			},
		})

		// --- Assert ---
		require.NoError(t, result.Err)
		require.Equal(t, "1,A,4\n", result.Output, "grouped=%v", grouped)

		summary := readSummary(t, result)
		require.Equal(t, 4, summary.Graphs)
		require.Equal(t, 4, summary.GraphsSearched)
		require.Equal(t, 10, summary.Hops)
	}
}

// Test for: grouped mode with a graph reappearing later
func TestCoreExecution_GroupedModeRejectsUngroupedInput(t *testing.T) {
	// --- Arrange ---
	c := testutil.Case{
		Files:  map[string]string{"hops.csv": "1,A,a,b\n2,B,a,b\n1,A,b,a\n"},
		Config: app.Config{Inputs: []string{"hops.csv"}, Grouped: true},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, c)

	// --- Assert ---
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "input is not grouped by graph id")
	require.Contains(t, result.Err.Error(), "hops.csv:3")
	require.Empty(t, result.Output, "no result line may be printed on failure")
}
