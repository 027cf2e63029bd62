package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Search queries a search backend over HTTP GET. The base URL is
// configurable so tests can point it at a local server.
type Search struct {
	BaseURL    string
	MaxResults int
	HTTP       *http.Client
}

func NewSearch(baseURL string, maxResults int) *Search {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Search{
		BaseURL:    baseURL,
		MaxResults: maxResults,
		HTTP:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Search) Name() string {
	return "search"
}

func (s *Search) Description() string {
	return "Searches the web for the given query and returns the top results"
}

func (s *Search) Execute(ctx context.Context, args map[string]any) (*Result, error) {
	query, ok := args["query"].(string)
	if !ok {
		return errResult("missing or invalid 'query' argument"), nil
	}

	u := fmt.Sprintf("%s?q=%s&max=%d",
		strings.TrimRight(s.BaseURL, "/"),
		url.QueryEscape(query),
		s.MaxResults,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return errResult("search request failed: %v", err), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errResult("reading search response: %v", err), nil
	}
	if resp.StatusCode >= 300 {
		return errResult("search status %d: %s", resp.StatusCode, string(body)), nil
	}

	var out struct {
		Results []string `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return errResult("parsing search response: %v", err), nil
	}

	if len(out.Results) > s.MaxResults {
		out.Results = out.Results[:s.MaxResults]
	}
	return okResult(strings.Join(out.Results, "\n")), nil
}
