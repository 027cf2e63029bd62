package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeProjectFixture creates a temp project dir with the well-known files.
func writeProjectFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "CLAUDE.md"), []byte("Test project rules"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "PLANNING.md"), []byte("Test planning docs"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "TASK.md"), []byte("Test tasks"), 0o644))

	examples := filepath.Join(dir, "examples")
	require.NoError(t, os.Mkdir(examples, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(examples, "test_example.py"), []byte("# Test example code"), 0o644))

	prps := filepath.Join(dir, "PRPs")
	require.NoError(t, os.Mkdir(prps, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(prps, "test_prp.md"), []byte("# Test PRP"), 0o644))

	return dir
}

func TestLoad_FullProject(t *testing.T) {
	dir := writeProjectFixture(t)

	loader := NewLoader(dir)
	ctx := loader.Load()

	require.Equal(t, "Test project rules", ctx.ClaudeRules)
	require.Equal(t, "Test planning docs", ctx.Planning)
	require.Equal(t, "Test tasks", ctx.Tasks)
	require.Contains(t, ctx.Examples, "test_example.py")
	require.Equal(t, "# Test example code", ctx.Examples["test_example.py"])
	require.Contains(t, ctx.PRPs, "test_prp") // extension stripped
}

func TestLoad_Caching(t *testing.T) {
	dir := writeProjectFixture(t)
	loader := NewLoader(dir)

	ctx1 := loader.Load()

	// external modification must not show up while cached
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CLAUDE.md"), []byte("Modified rules"), 0o644))

	ctx2 := loader.Load()
	require.Same(t, ctx1, ctx2)
	require.Equal(t, "Test project rules", ctx2.ClaudeRules)

	loader.ClearCache()
	ctx3 := loader.Load()
	require.Equal(t, "Modified rules", ctx3.ClaudeRules)
}

func TestLoad_MissingOptionalFiles(t *testing.T) {
	dir := writeProjectFixture(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "PLANNING.md")))
	require.NoError(t, os.Remove(filepath.Join(dir, "TASK.md")))

	loader := NewLoader(dir)
	ctx := loader.Load()

	require.Equal(t, "Test project rules", ctx.ClaudeRules)
	require.Empty(t, ctx.Planning)
	require.Empty(t, ctx.Tasks)
}

func TestLoad_DefaultClaudeRules(t *testing.T) {
	loader := NewLoader(t.TempDir())
	ctx := loader.Load()

	require.Contains(t, ctx.ClaudeRules, "Project Awareness")
	require.Contains(t, ctx.ClaudeRules, "Code Structure")
	require.Contains(t, ctx.ClaudeRules, "Testing")
}

func TestLoad_MissingDirsYieldEmptyMaps(t *testing.T) {
	loader := NewLoader(t.TempDir())
	ctx := loader.Load()

	require.Empty(t, ctx.Examples)
	require.Empty(t, ctx.PRPs)
}

func TestLoad_SkipsSubdirectories(t *testing.T) {
	dir := writeProjectFixture(t)
	// nested dirs under examples/ are not scanned
	require.NoError(t, os.Mkdir(filepath.Join(dir, "examples", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "examples", "nested", "deep.py"), []byte("x"), 0o644))

	loader := NewLoader(dir)
	ctx := loader.Load()

	require.Contains(t, ctx.Examples, "test_example.py")
	require.NotContains(t, ctx.Examples, "deep.py")
	require.NotContains(t, ctx.Examples, "nested")
}

func TestClearCache_NoopWhenEmpty(t *testing.T) {
	loader := NewLoader(t.TempDir())
	loader.ClearCache() // nothing cached yet
	require.NotNil(t, loader.Load())
}
