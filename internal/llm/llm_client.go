package llm

import "context"

type Client interface {
	Ping(ctx context.Context) error
	Chat(ctx context.Context, prompt string) (string, error)
}
