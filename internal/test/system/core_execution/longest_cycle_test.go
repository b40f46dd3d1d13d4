package system

import (
	"strings"
	"testing"

	"github.com/specialistvlad/routecycle/internal/app"
	"github.com/specialistvlad/routecycle/internal/input"
	"github.com/specialistvlad/routecycle/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: the longest cycle across independent graphs
func TestCoreExecution_LongestCycle(t *testing.T) {
	testCases := []struct {
		name   string
		layout string
		data   string
		want   string
	}{
		{
			name: "triangle beats a missing back edge",
			data: "1,A,sys1,sys2\n1,A,sys2,sys3\n1,A,sys3,sys1\n2,B,sys1,sys2\n",
			want: "1,A,3\n",
		},
		{
			name:   "interleaved graphs",
			layout: "pipe",
			data:   testutil.CustomGraphs,
			want:   "CLAIM01,STATUS01,5\n",
		},
		{
			name:   "longest across graphs",
			layout: "pipe",
			data:   testutil.AcrossGraphs,
			want:   "123,197,3\n",
		},
		{
			name: "no cycle anywhere",
			data: "1,A,a,b\n1,A,b,c\n2,B,x,y\n",
			want: "no cycle found\n",
		},
		{
			name: "empty input",
			data: "",
			want: "no cycle found\n",
		},
		{
			name: "self loop is a cycle of one",
			data: "9,Z,a,a\n",
			want: "9,Z,1\n",
		},
		{
			name: "same systems under another status do not connect",
			data: "1,A,a,b\n1,B,b,a\n",
			want: "no cycle found\n",
		},
		{
			name: "first graph wins a tie",
			data: "2,B,x,y\n2,B,y,x\n1,A,p,q\n1,A,q,p\n",
			want: "2,B,2\n",
		},
		{
			name: "duplicate hops collapse",
			data: "1,A,a,b\n1,A,a,b\n1,A,b,a\n1,A,b,a\n",
			want: "1,A,2\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			c := testutil.Case{
				Files:  map[string]string{"hops.txt": tc.data},
				Config: app.Config{Inputs: []string{"hops.txt"}, Layout: tc.layout},
			}

			// --- Act ---
			result := testutil.RunIntegrationTest(t, c)

			// --- Assert ---
			require.NoError(t, result.Err)
			require.Equal(t, tc.want, result.Output)
		})
	}
}

// Test for: pruning never changes the answer
func TestCoreExecution_PruningMatchesFullSearch(t *testing.T) {
	data := testutil.CustomGraphs + testutil.AcrossGraphs

	for _, noPrune := range []bool{false, true} {
		result := testutil.RunIntegrationTest(t, testutil.Case{
			Files:  map[string]string{"hops.psv": data},
			Config: app.Config{Inputs: []string{"hops.psv"}, Layout: "pipe", NoPrune: noPrune},
		})
		require.NoError(t, result.Err)
		require.Equal(t, "CLAIM01,STATUS01,5\n", result.Output, "noPrune=%v", noPrune)
	}
}

// Test for: malformed and blank lines
func TestCoreExecution_MalformedLinesAreSkipped(t *testing.T) {
	// --- Arrange ---
	data := "1,A,a,b\n\n   \nnot a hop\n1,A,,b\n1,A,a,b,extra\n1,A,b,a\n"
	c := testutil.Case{
		Files: map[string]string{"hops.csv": data},
		Config: app.Config{
			Inputs:      []string{"hops.csv"},
			SummaryPath: "summary.yaml",
		},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, c)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "1,A,2\n", result.Output)
	require.Contains(t, result.LogOutput, "Skipping malformed line.")
	require.Contains(t, result.LogOutput, "Malformed lines were skipped.")

	summary := readSummary(t, result)
	require.Equal(t, 7, summary.Lines)
	require.Equal(t, 3, summary.Skipped)
}

// Test for: a line past the size limit between good lines
func TestCoreExecution_OversizedLineIsSkipped(t *testing.T) {
	// --- Arrange ---
	data := "1,A,a,b\n" + strings.Repeat("x", input.MaxLineSize+10) + "\n1,A,b,a\n"
	c := testutil.Case{
		Files: map[string]string{"hops.csv": data},
		Config: app.Config{
			Inputs:      []string{"hops.csv"},
			SummaryPath: "summary.yaml",
		},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, c)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "1,A,2\n", result.Output)
	require.Contains(t, result.LogOutput, "Skipping oversized line.")

	summary := readSummary(t, result)
	require.Equal(t, 3, summary.Lines)
	require.Equal(t, 1, summary.Skipped)
}

// Test for: whitespace delimiters keep their empty fields
func TestCoreExecution_TabDelimiterEmptyFieldsAreMalformed(t *testing.T) {
	// --- Arrange ---
	// The middle line has a trailing empty field and would close the
	// cycle if it were accepted.
	data := "1\tA\ta\tb\n1\tA\tb\ta\t\n2\tB\tx\ty\n"
	c := testutil.Case{
		Files: map[string]string{"hops.tsv": data},
		Config: app.Config{
			Inputs:      []string{"hops.tsv"},
			Delimiter:   "\t",
			SummaryPath: "summary.yaml",
		},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, c)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "no cycle found\n", result.Output)
	require.Equal(t, 1, readSummary(t, result).Skipped)
}
