// Package clients holds the HTTP clients for the boundary services the
// discovery features call out to: the ingredient suggestion endpoint
// and the substitution endpoint. Both degrade deterministically. The
// suggester falls back to a local vocabulary when no endpoint is
// configured, and the substitution client serves a fixed local table on
// any transport or schema failure.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// MaxSuggestions caps how many ingredient names a lookup returns.
const MaxSuggestions = 10

type SuggestionClient struct {
	baseURL string
	http    *http.Client
}

func NewSuggestionClient(baseURL string) *SuggestionClient {
	return &SuggestionClient{baseURL: baseURL, http: &http.Client{}}
}

// Suggest posts the free-text query and returns up to MaxSuggestions
// matching ingredient names.
func (c *SuggestionClient) Suggest(ctx context.Context, query string) ([]string, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/suggestions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned %d", resp.StatusCode)
	}

	var suggestions []string
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions, nil
}

// LocalSuggester serves suggestions from a fixed vocabulary by
// case-insensitive substring match. Used when no suggestion endpoint
// is configured.
type LocalSuggester struct {
	known []string
}

func NewLocalSuggester(known []string) *LocalSuggester {
	return &LocalSuggester{known: known}
}

func (s *LocalSuggester) Suggest(_ context.Context, query string) ([]string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]string, 0, MaxSuggestions)
	for _, ing := range s.known {
		if strings.Contains(strings.ToLower(ing), q) {
			matches = append(matches, ing)
			if len(matches) == MaxSuggestions {
				break
			}
		}
	}
	return matches, nil
}
