package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ConstructsApp(t *testing.T) {
	a, err := New(Options{
		ConfigPath: filepath.Join("testdata", "config.yaml"),
		Root:       t.TempDir(),
	})
	require.NoError(t, err)
	require.NotNil(t, a.loader)
	require.NotNil(t, a.agent)
	require.NotNil(t, a.generator)
}

func TestNew_BadConfigPath(t *testing.T) {
	_, err := New(Options{ConfigPath: "nope.yaml"})
	require.Error(t, err)
}

func TestRun_DryRunPrintsContext(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CLAUDE.md"), []byte("dry-run rules"), 0o644))

	var out bytes.Buffer
	a, err := New(Options{
		ConfigPath: filepath.Join("testdata", "config.yaml"),
		Root:       dir,
		DryRun:     true,
		Out:        &out,
	})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	require.Contains(t, out.String(), "## Project Rules (CLAUDE.md)")
	require.Contains(t, out.String(), "dry-run rules")
	// metrics dump follows the context
	require.Contains(t, out.String(), "creator_context_loads_total")
}

func TestRun_GenerateRequiresFeature(t *testing.T) {
	var out bytes.Buffer
	a, err := New(Options{
		ConfigPath: filepath.Join("testdata", "config.yaml"),
		Root:       t.TempDir(),
		Out:        &out,
	})
	require.NoError(t, err)

	err = a.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "feature description is required")
}
