package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/routecycle/internal/report"
	"github.com/specialistvlad/routecycle/internal/testutil"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// readSummary loads summary.yaml from the run's directory.
func readSummary(t *testing.T, result *testutil.HarnessResult) report.Summary {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(result.Dir, "summary.yaml"))
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, yaml.Unmarshal(data, &s))
	return s
}
