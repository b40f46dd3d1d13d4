// Package testutil holds the shared harness for end-to-end tests of a run.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/routecycle/internal/app"
	"github.com/specialistvlad/routecycle/internal/hcl"
	"github.com/specialistvlad/routecycle/internal/input"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Case describes one run. Paths in Files, Binary and Config (inputs, layout
// file, summary) are relative to a fresh temporary directory.
type Case struct {
	Files  map[string]string
	Binary map[string][]byte
	Stdin  string
	Config app.Config
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
	Dir       string
}

// RunIntegrationTest runs c with a background context.
func RunIntegrationTest(t *testing.T, c Case) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, c)
}

// RunIntegrationTestWithContext writes the case's files, builds the App the
// same way the CLI does, and runs it under ctx. Configuration errors are
// returned in Err like run errors.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, c Case) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range c.Files {
		writeFile(t, tmpDir, name, []byte(content))
	}
	for name, content := range c.Binary {
		writeFile(t, tmpDir, name, content)
	}

	cfg := c.Config
	inputs := make([]string, len(cfg.Inputs))
	for i, in := range cfg.Inputs {
		inputs[i] = resolve(tmpDir, in)
	}
	cfg.Inputs = inputs
	if cfg.LayoutFile != "" {
		cfg.LayoutFile = resolve(tmpDir, cfg.LayoutFile)
	}
	if cfg.SummaryPath != "" {
		cfg.SummaryPath = resolve(tmpDir, cfg.SummaryPath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	result := &HarnessResult{Dir: tmpDir}

	t.Cleanup(func() {
		if os.Getenv("ROUTECYCLE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		result.Err = err
		return result
	}

	var opts []app.Option
	if c.Stdin != "" {
		opts = append(opts, app.WithStdin(strings.NewReader(c.Stdin)))
	}
	testApp, err := app.NewApp(out, logBuffer, appConfig, hcl.NewLoader(), opts...)
	if err != nil {
		result.Err = err
		result.LogOutput = logBuffer.String()
		return result
	}

	result.App = testApp
	result.Err = testApp.Run(ctx)
	result.Output = out.String()
	result.LogOutput = logBuffer.String()
	return result
}

// resolve places relative paths and globs under dir. Stdin passes through.
func resolve(dir, p string) string {
	if p == input.Stdin || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
