package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vedantparmar12/multi-agent-creator/internal/config"
	"github.com/vedantparmar12/multi-agent-creator/internal/llm"
	"github.com/vedantparmar12/multi-agent-creator/internal/logx"
	"github.com/vedantparmar12/multi-agent-creator/internal/prompt"
	"github.com/vedantparmar12/multi-agent-creator/internal/tools"
)

// Agent answers queries with the configured LLM, optionally enriching
// the prompt with project context and dispatching one tool call per run.
type Agent struct {
	Config *config.Config
	Client llm.Client
	Tools  *tools.Registry

	// Loader is nil when the agent is not context-aware.
	Loader *prompt.Loader
}

func New(cfg *config.Config, client llm.Client, registry *tools.Registry, loader *prompt.Loader) (*Agent, error) {
	if cfg == nil {
		return nil, fmt.Errorf("agent: config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("agent: llm client is required")
	}
	if registry == nil {
		registry = tools.NewRegistry()
	}
	return &Agent{
		Config: cfg,
		Client: client,
		Tools:  registry,
		Loader: loader,
	}, nil
}

// toolCall is the strict JSON shape the model must reply with to invoke
// a tool. Anything that does not parse as this is a direct answer.
type toolCall struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
}

// Run asks the LLM; if the reply is a tool call it executes the tool and
// does one follow-up call with the tool output.
func (a *Agent) Run(ctx context.Context, query string) (string, error) {
	reply, err := a.Client.Chat(ctx, a.buildPrompt(query))
	if err != nil {
		return "", fmt.Errorf("agent chat: %w", err)
	}

	call, ok := parseToolCall(reply)
	if !ok {
		return reply, nil
	}

	logx.Debug("Agent", "dispatching tool %s", call.Tool)

	res, err := a.Tools.Execute(ctx, call.Tool, call.Args)
	if err != nil {
		return "", fmt.Errorf("executing tool %s: %w", call.Tool, err)
	}

	followup := fmt.Sprintf(`Tool %q returned:
status: %s
output: %s
error: %s

Answer the original question using this result:
%s
`, call.Tool, res.Status, res.Output, res.Err, query)

	final, err := a.Client.Chat(ctx, followup)
	if err != nil {
		return "", fmt.Errorf("agent followup chat: %w", err)
	}
	return final, nil
}

func (a *Agent) buildPrompt(query string) string {
	var b strings.Builder

	if a.Config.SystemPrompt != "" {
		b.WriteString(a.Config.SystemPrompt)
		b.WriteString("\n\n")
	}

	if a.Loader != nil {
		b.WriteString(a.Loader.Load().Formatted())
		b.WriteString("\n\n")
	}

	if descs := a.Tools.Descriptions(); len(descs) > 0 {
		b.WriteString("Available tools:\n")
		for _, d := range descs {
			b.WriteString("- " + d + "\n")
		}
		b.WriteString(`
To use a tool, reply EXCLUSIVELY with JSON:
{"tool": "<name>", "args": {...}}
Otherwise answer directly.
`)
		b.WriteString("\n")
	}

	b.WriteString("User question:\n")
	b.WriteString(query)
	return b.String()
}

func parseToolCall(reply string) (*toolCall, bool) {
	raw := strings.TrimSpace(reply)
	if !strings.HasPrefix(raw, "{") {
		return nil, false
	}
	var call toolCall
	if err := json.Unmarshal([]byte(raw), &call); err != nil || call.Tool == "" {
		return nil, false
	}
	return &call, true
}
