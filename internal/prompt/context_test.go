package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatted_AllSections(t *testing.T) {
	ctx := &ProjectContext{
		ClaudeRules: "Test rules",
		Planning:    "Test planning",
		Tasks:       "Test tasks",
		Examples:    map[string]string{"example1.py": "code", "example2.py": "more code"},
		PRPs:        map[string]string{"prp1": "content"},
	}

	formatted := ctx.Formatted()

	require.Contains(t, formatted, "## Project Rules (CLAUDE.md)")
	require.Contains(t, formatted, "Test rules")
	require.Contains(t, formatted, "## Architecture & Planning")
	require.Contains(t, formatted, "## Current Tasks")
	require.Contains(t, formatted, "## Available Examples")
	require.Contains(t, formatted, "- example1.py")
	require.Contains(t, formatted, "- example2.py")
	require.Contains(t, formatted, "## Available PRPs")
	require.Contains(t, formatted, "- prp1")
}

func TestFormatted_MissingFields(t *testing.T) {
	ctx := &ProjectContext{
		ClaudeRules: "Test rules",
	}

	formatted := ctx.Formatted()

	require.Contains(t, formatted, "## Project Rules")
	require.NotContains(t, formatted, "## Architecture & Planning")
	require.NotContains(t, formatted, "## Current Tasks")
	require.NotContains(t, formatted, "## Available Examples")
	require.NotContains(t, formatted, "## Available PRPs")
}

func TestFormatted_SectionOrderAndSeparation(t *testing.T) {
	ctx := &ProjectContext{
		ClaudeRules: "rules",
		Planning:    "planning",
		Tasks:       "tasks",
	}

	formatted := ctx.Formatted()

	rules := strings.Index(formatted, "## Project Rules (CLAUDE.md)")
	planning := strings.Index(formatted, "## Architecture & Planning")
	tasks := strings.Index(formatted, "## Current Tasks")
	require.True(t, rules < planning && planning < tasks)

	// blank line between sections
	require.Contains(t, formatted, "rules\n\n## Architecture & Planning")
}

func TestFormatted_ExamplesAreSorted(t *testing.T) {
	ctx := &ProjectContext{
		ClaudeRules: "rules",
		Examples:    map[string]string{"b.py": "", "a.py": "", "c.py": ""},
	}

	formatted := ctx.Formatted()

	a := strings.Index(formatted, "- a.py")
	b := strings.Index(formatted, "- b.py")
	c := strings.Index(formatted, "- c.py")
	require.True(t, a >= 0 && a < b && b < c)
}
