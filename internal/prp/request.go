// Package prp models PRP (project request/planning) generation: the
// request a caller submits, the generated document validation, and the
// generator that drives an LLM with the loaded project context.
package prp

import (
	"github.com/google/uuid"
)

// Request describes one feature to generate a PRP for. Slices are never
// nil after construction so callers can range over them directly.
type Request struct {
	ID                 string
	FeatureDescription string
	Examples           []string
	DocumentationURLs  []string
	Considerations     string
}

type Option func(*Request)

func WithExamples(examples ...string) Option {
	return func(r *Request) {
		r.Examples = append(r.Examples, examples...)
	}
}

func WithDocumentationURLs(urls ...string) Option {
	return func(r *Request) {
		r.DocumentationURLs = append(r.DocumentationURLs, urls...)
	}
}

func WithConsiderations(text string) Option {
	return func(r *Request) {
		r.Considerations = text
	}
}

// NewRequest builds a request with a fresh id. The feature description is
// taken as-is; stricter validation is left to the caller.
func NewRequest(feature string, opts ...Option) Request {
	r := Request{
		ID:                 uuid.NewString(),
		FeatureDescription: feature,
		Examples:           []string{},
		DocumentationURLs:  []string{},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
