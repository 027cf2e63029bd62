package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vedantparmar12/multi-agent-creator/internal/app"
)

// runner is the minimal interface our app must satisfy for running.
type runner interface{ Run(context.Context) error }

// appCtor is a constructor indirection to enable testing without launching the real app.
var appCtor = func(opts app.Options) (runner, error) { return app.New(opts) }

// fatalf indirection allows testing fatal paths without exiting the test process.
var fatalf = log.Fatalf

func run(ctx context.Context, opts app.Options) {
	a, err := appCtor(opts)
	if err != nil {
		fatalf("error initializing app: %v", err)
		return
	}
	if err := a.Run(ctx); err != nil {
		fatalf("error running app: %v", err)
		return
	}
}

func main() {
	// .env is optional; env vars still apply without it
	_ = godotenv.Load()

	// CLI flags
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	root := flag.String("root", "", "project root directory (overrides config)")
	feature := flag.String("feature", "", "feature description to generate a PRP for")
	dryRun := flag.Bool("dry-run", false, "print the formatted project context and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, app.Options{
		ConfigPath: *configPath,
		Root:       *root,
		Feature:    *feature,
		DryRun:     *dryRun,
	})
}
