package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFile_Success(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("Test content"), 0o644))

	tool := NewReadFile(dir)
	res, err := tool.Execute(context.Background(), map[string]any{"path": "note.txt"})
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, res.Status)
	require.Equal(t, "Test content", res.Output)
}

func TestReadFile_NotFound(t *testing.T) {
	tool := NewReadFile(t.TempDir())
	res, err := tool.Execute(context.Background(), map[string]any{"path": "missing.txt"})
	require.NoError(t, err)
	require.Equal(t, StatusError, res.Status)
	require.Contains(t, res.Err, "not found")
}

func TestReadFile_MissingPathArg(t *testing.T) {
	tool := NewReadFile(t.TempDir())
	res, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)
	require.Equal(t, StatusError, res.Status)
	require.Contains(t, res.Err, "'path'")
}

func TestReadFile_EscapeBlocked(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(filepath.Dir(dir), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	tool := NewReadFile(dir)
	res, err := tool.Execute(context.Background(), map[string]any{"path": "../outside.txt"})
	require.NoError(t, err)
	require.Equal(t, StatusError, res.Status)
	require.Contains(t, res.Err, "escapes base directory")
}
