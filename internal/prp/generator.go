package prp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vedantparmar12/multi-agent-creator/internal/llm"
	"github.com/vedantparmar12/multi-agent-creator/internal/logx"
	"github.com/vedantparmar12/multi-agent-creator/internal/metrics"
	"github.com/vedantparmar12/multi-agent-creator/internal/prompt"
)

// requiredSections must appear in every generated PRP document.
var requiredSections = []string{"## Goal", "## Implementation Plan", "## Validation Gates"}

// Generator turns a Request into a PRP document using the project
// context and an LLM, then validates the result.
type Generator struct {
	client llm.Client
	loader *prompt.Loader
}

func NewGenerator(client llm.Client, loader *prompt.Loader) *Generator {
	return &Generator{
		client: client,
		loader: loader,
	}
}

// Generate produces the PRP document and its validation result. The
// error return covers LLM/transport failures only; a document that fails
// validation still comes back with Success=false in the result.
func (g *Generator) Generate(ctx context.Context, req Request) (string, *ValidationResult, error) {
	projectCtx := g.loader.Load()

	p := g.buildPrompt(projectCtx, req)

	timer := logx.Start(req.ID, "Generator", "GeneratePRP")
	doc, err := g.client.Chat(ctx, p)
	timer.End()

	if err != nil {
		metrics.Generations.Inc(map[string]string{"outcome": "error"})
		return "", nil, fmt.Errorf("generating PRP for %s: %w", req.ID, err)
	}

	result := g.validate(ctx, doc, req, projectCtx)
	outcome := "ok"
	if !result.Success {
		outcome = "invalid"
	}
	metrics.Generations.Inc(map[string]string{"outcome": outcome})

	return doc, result, nil
}

func (g *Generator) buildPrompt(projectCtx *prompt.ProjectContext, req Request) string {
	var b strings.Builder

	b.WriteString(projectCtx.Formatted())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, `Write a PRP (project request/planning document) for the feature below.
The document MUST contain the sections %s.

Feature:
%s
`, strings.Join(requiredSections, ", "), req.FeatureDescription)

	if len(req.Examples) > 0 {
		fmt.Fprintf(&b, "\nRelevant examples:\n")
		for _, ex := range req.Examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
	}
	if len(req.DocumentationURLs) > 0 {
		fmt.Fprintf(&b, "\nDocumentation:\n")
		for _, u := range req.DocumentationURLs {
			fmt.Fprintf(&b, "- %s\n", u)
		}
	}
	if req.Considerations != "" {
		fmt.Fprintf(&b, "\nOther considerations:\n%s\n", req.Considerations)
	}

	return b.String()
}

// validate runs the independent document checks concurrently and folds
// their findings into a single result.
func (g *Generator) validate(ctx context.Context, doc string, req Request, projectCtx *prompt.ProjectContext) *ValidationResult {
	var (
		mu       sync.Mutex
		errors   []string
		warnings []string
	)
	addError := func(msg string) {
		mu.Lock()
		errors = append(errors, msg)
		mu.Unlock()
	}
	addWarning := func(msg string) {
		mu.Lock()
		warnings = append(warnings, msg)
		mu.Unlock()
	}

	eg, _ := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if strings.TrimSpace(doc) == "" {
			addError("generated document is empty")
		}
		return nil
	})

	eg.Go(func() error {
		for _, section := range requiredSections {
			if !strings.Contains(doc, section) {
				addError(fmt.Sprintf("missing section: %s", section))
			}
		}
		return nil
	})

	eg.Go(func() error {
		for _, ex := range req.Examples {
			if _, ok := projectCtx.Examples[ex]; !ok {
				addWarning(fmt.Sprintf("referenced example not found in project: %s", ex))
			}
		}
		return nil
	})

	// checks never return errors, they accumulate findings
	_ = eg.Wait()

	return &ValidationResult{
		Success:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
