package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vedantparmar12/multi-agent-creator/internal/logx"
	"github.com/vedantparmar12/multi-agent-creator/internal/metrics"
)

// DefaultClaudeRules is substituted when the project has no CLAUDE.md.
// Callers key off the section headers, so they stay verbatim.
const DefaultClaudeRules = `# Project Rules

## Project Awareness
- Read PLANNING.md before starting work on a new feature.
- Check TASK.md for open items before adding new ones.

## Code Structure
- Keep files focused; split modules that grow past a few hundred lines.
- Group code by feature, with clear package boundaries.

## Testing
- Every new feature needs unit tests: expected use, edge case, failure case.
- Tests live next to the code they cover.
`

// Loader reads the well-known project documentation files under a root
// directory. Disk is touched at most once per file until ClearCache.
type Loader struct {
	root string

	mu     sync.Mutex
	cached *ProjectContext
}

func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Load returns the project context, reading from disk only when no
// cached value exists. Missing optional files are not errors; nothing
// fails the call under normal filesystem conditions.
func (l *Loader) Load() *ProjectContext {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached != nil {
		metrics.ContextLoads.Inc(map[string]string{"source": "cache"})
		return l.cached
	}

	ctx := &ProjectContext{
		ClaudeRules: l.readOrDefault("CLAUDE.md", DefaultClaudeRules),
		Planning:    l.readOptional("PLANNING.md"),
		Tasks:       l.readOptional("TASK.md"),
		Examples:    l.scanDir("examples", false),
		PRPs:        l.scanDir("PRPs", true),
	}

	l.cached = ctx
	metrics.ContextLoads.Inc(map[string]string{"source": "disk"})
	return ctx
}

// ClearCache discards the cached context so the next Load re-reads disk.
func (l *Loader) ClearCache() {
	l.mu.Lock()
	l.cached = nil
	l.mu.Unlock()
}

func (l *Loader) readOptional(name string) string {
	data, err := os.ReadFile(filepath.Join(l.root, name))
	if err != nil {
		return ""
	}
	return string(data)
}

// readOrDefault treats an unreadable rules file the same as a missing one.
func (l *Loader) readOrDefault(name, fallback string) string {
	data, err := os.ReadFile(filepath.Join(l.root, name))
	if err != nil {
		logx.Debug("Context", "%s not readable, using default rules: %v", name, err)
		return fallback
	}
	return string(data)
}

// scanDir maps every direct-child file of root/dir to its content.
// With stripExt the key is the filename minus extension (PRP ids).
// Unreadable entries are skipped; a missing dir yields an empty map.
func (l *Loader) scanDir(dir string, stripExt bool) map[string]string {
	out := make(map[string]string)

	entries, err := os.ReadDir(filepath.Join(l.root, dir))
	if err != nil {
		return out
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(l.root, dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logx.Warn("Context", "skipping unreadable %s: %v", path, err)
			continue
		}
		key := e.Name()
		if stripExt {
			key = strings.TrimSuffix(key, filepath.Ext(key))
		}
		out[key] = string(data)
	}

	return out
}
