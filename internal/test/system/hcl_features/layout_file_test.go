package system

import (
	"testing"

	"github.com/specialistvlad/routecycle/internal/app"
	"github.com/specialistvlad/routecycle/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: field and delimiter constants in a layout file
func TestHCL_LayoutFileConstants(t *testing.T) {
	// --- Arrange ---
	layout := `
		input {
		  delimiter   = delimiter.tab
		  fields      = [field.status_code, field.destination_system, field.source_system, field.claim_id]
		  skip_header = true
		}
	`
	data := "status\tdest\tsrc\tclaim\n" +
		"S\tb\ta\tC\n" +
		"S\tc\tb\tC\n" +
		"S\ta\tc\tC\n"

	c := testutil.Case{
		Files: map[string]string{
			"layout.hcl": layout,
			"hops.tsv":   data,
		},
		Config: app.Config{Inputs: []string{"hops.tsv"}, LayoutFile: "layout.hcl"},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, c)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "C,S,3\n", result.Output)
}

// Test for: grouped mode switched on from a layout file
func TestHCL_LayoutFileEnablesGroupedSearch(t *testing.T) {
	c := testutil.Case{
		Files: map[string]string{
			"layout.hcl": "search {\n  grouped = true\n}\n",
			"hops.csv":   "1,A,a,b\n2,B,a,b\n1,A,b,a\n",
		},
		Config: app.Config{Inputs: []string{"hops.csv"}, LayoutFile: "layout.hcl"},
	}

	result := testutil.RunIntegrationTest(t, c)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "not grouped")
}

// Test for: a broken layout file stops the run before any input is read
func TestHCL_InvalidLayoutFile(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", "input {", "failed to parse"},
		{"unknown field", `input { fields = ["a", "b", "c", "d"] }`, "unknown field"},
		{"unknown attribute", `input { format = "csv" }`, "failed to decode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunIntegrationTest(t, testutil.Case{
				Files: map[string]string{"layout.hcl": tc.src},
				// The input does not exist; it must never be opened.
				Config: app.Config{Inputs: []string{"missing.csv"}, LayoutFile: "layout.hcl"},
			})

			require.Error(t, result.Err)
			require.Nil(t, result.App)
			require.Contains(t, result.Err.Error(), "failed to load layout file")
			require.Contains(t, result.Err.Error(), tc.wantErr)
		})
	}
}
