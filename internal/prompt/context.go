package prompt

import (
	"sort"
	"strings"
)

// ProjectContext aggregates the project documentation files that feed
// prompt construction. It is immutable after the loader builds it.
type ProjectContext struct {
	ClaudeRules string
	Planning    string
	Tasks       string
	Examples    map[string]string
	PRPs        map[string]string
}

// Formatted renders the context as a single prompt block. Sections are
// emitted in a fixed order and skipped entirely when their backing data
// is empty. Pure function of the fields, no I/O.
func (c *ProjectContext) Formatted() string {
	var sections []string

	sections = append(sections, "## Project Rules (CLAUDE.md)\n"+c.ClaudeRules)

	if c.Planning != "" {
		sections = append(sections, "## Architecture & Planning\n"+c.Planning)
	}

	if c.Tasks != "" {
		sections = append(sections, "## Current Tasks\n"+c.Tasks)
	}

	if len(c.Examples) > 0 {
		sections = append(sections, "## Available Examples\n"+bulletList(c.Examples))
	}

	if len(c.PRPs) > 0 {
		sections = append(sections, "## Available PRPs\n"+bulletList(c.PRPs))
	}

	return strings.Join(sections, "\n\n")
}

// bulletList renders sorted "- name" lines so output is stable across
// platforms regardless of directory scan order.
func bulletList(m map[string]string) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = "- " + name
	}
	return strings.Join(lines, "\n")
}
