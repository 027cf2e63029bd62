package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/vedantparmar12/multi-agent-creator/internal/agent"
	"github.com/vedantparmar12/multi-agent-creator/internal/config"
	"github.com/vedantparmar12/multi-agent-creator/internal/llm"
	"github.com/vedantparmar12/multi-agent-creator/internal/logx"
	"github.com/vedantparmar12/multi-agent-creator/internal/metrics"
	"github.com/vedantparmar12/multi-agent-creator/internal/prompt"
	"github.com/vedantparmar12/multi-agent-creator/internal/prp"
	"github.com/vedantparmar12/multi-agent-creator/internal/tools"
)

// Options come from CLI flags.
type Options struct {
	ConfigPath string
	Root       string // overrides config project_root when set
	Feature    string // feature description to generate a PRP for
	DryRun     bool   // print the formatted context instead of generating

	// Out defaults to stdout.
	Out io.Writer
}

type App struct {
	cfg       *config.Config
	opts      Options
	loader    *prompt.Loader
	agent     *agent.Agent
	generator *prp.Generator
}

func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	root := cfg.ProjectRoot
	if opts.Root != "" {
		root = opts.Root
	}
	loader := prompt.NewLoader(root)

	client := llm.NewOpenRouterClient(cfg.OpenRouter.BaseURL, cfg.OpenRouter.APIKey, cfg.OpenRouter.Model)
	client.Timeout = cfg.Timeout()

	registry := tools.NewRegistry(
		tools.NewCalculator(),
		tools.NewReadFile(root),
		tools.NewSearch(cfg.Search.BaseURL, cfg.Search.MaxResults),
	)

	ag, err := agent.New(cfg, client, registry, loader)
	if err != nil {
		return nil, err
	}

	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	return &App{
		cfg:       cfg,
		opts:      opts,
		loader:    loader,
		agent:     ag,
		generator: prp.NewGenerator(client, loader),
	}, nil
}

// Run performs one generation (or a dry-run context print) and dumps the
// collected metrics at the end.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if a.opts.DryRun {
			fmt.Fprintln(a.opts.Out, a.loader.Load().Formatted())
			return nil
		}
		return a.generate(gctx)
	})

	logx.Info("App", "multi-agent-creator started")

	if err := g.Wait(); err != nil {
		return err
	}

	metrics.WriteTo(a.opts.Out)
	return nil
}

func (a *App) generate(ctx context.Context) error {
	if a.opts.Feature == "" {
		return fmt.Errorf("a feature description is required (use -feature)")
	}

	req := prp.NewRequest(a.opts.Feature)
	logx.L(req.ID, "App", "generating PRP")

	doc, result, err := a.generator.Generate(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.opts.Out, doc)
	fmt.Fprintln(a.opts.Out, result.Summary())
	return nil
}
